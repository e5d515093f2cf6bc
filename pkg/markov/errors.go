package markov

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientCorpus is matched by InsufficientCorpusError via errors.Is.
	ErrInsufficientCorpus = errors.New("corpus is shorter than the window length")
	// ErrInvalidWindowLength is returned when a window length below 1 is requested.
	ErrInvalidWindowLength = errors.New("window length must be at least 1")
	// ErrEmptyTable is returned when sampling from a table with no entries.
	// Tables created by training always have at least one entry.
	ErrEmptyTable = errors.New("frequency table has no entries")
	// ErrTableNotFinalized is returned when sampling from a table whose
	// probabilities have not been computed.
	ErrTableNotFinalized = errors.New("frequency table is not finalized")
	// ErrFractionOutOfRange is returned when a sampling fraction is outside [0,1).
	ErrFractionOutOfRange = errors.New("sampling fraction must be in [0,1)")
	// ErrSampleExhausted means no entry reached the sampling fraction, which a
	// finalized table makes impossible.
	ErrSampleExhausted = errors.New("no entry reached the sampling fraction")
	// ErrNilRandomSource is returned when generation needs draws but has no source.
	ErrNilRandomSource = errors.New("random source is nil")
)

// InsufficientCorpusError reports a corpus that ended before a full window
// could be read.
type InsufficientCorpusError struct {
	WindowLength int
	Available    int
}

func (e *InsufficientCorpusError) Error() string {
	return fmt.Sprintf("corpus has %d characters, need at least %d for the first window", e.Available, e.WindowLength)
}

// Is lets errors.Is(err, ErrInsufficientCorpus) match.
func (e *InsufficientCorpusError) Is(target error) bool {
	return target == ErrInsufficientCorpus
}
