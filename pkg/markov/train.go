package markov

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Trainer builds character models with a fixed window length.
type Trainer struct {
	windowLength int
	logger       *slog.Logger
}

// NewTrainer creates a Trainer for windows of windowLength characters.
func NewTrainer(windowLength int) (*Trainer, error) {
	if windowLength < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWindowLength, windowLength)
	}
	return &Trainer{
		windowLength: windowLength,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, nil
}

// SetLogger sets the logger for the Trainer. By default, all logs are discarded.
func (t *Trainer) SetLogger(logger *slog.Logger) {
	if logger != nil {
		t.logger = logger
	}
}

// WindowLength returns the window length models are trained with.
func (t *Trainer) WindowLength() int {
	return t.windowLength
}

// Train reads a UTF-8 corpus from r and returns the finalized model. The
// reader is buffered unless it already implements io.RuneReader.
func (t *Trainer) Train(r io.Reader) (*Model, error) {
	rr, ok := r.(io.RuneReader)
	if !ok {
		rr = bufio.NewReader(r)
	}
	return t.TrainRunes(rr)
}

// TrainRunes trains a model from a stream of characters. The first
// WindowLength characters form the initial window; every following character
// is counted against the current window before the window advances over it.
// If the stream ends before a full window is read, the returned error is an
// *InsufficientCorpusError.
func (t *Trainer) TrainRunes(rr io.RuneReader) (*Model, error) {
	window := make(Window, t.windowLength)
	for i := range window {
		c, _, err := rr.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, &InsufficientCorpusError{WindowLength: t.windowLength, Available: i}
			}
			return nil, fmt.Errorf("failed to read initial window: %w", err)
		}
		window[i] = c
	}

	model := newModel(t.windowLength)
	read := t.windowLength
	for {
		c, _, err := rr.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("corpus read error after %d characters: %w", read, err)
		}
		read++
		model.observe(window.String(), c)
		window.Shift(c)
	}

	model.finalize()

	stats := model.Stats()
	t.logger.Info("Training completed",
		slog.Int("window_length", t.windowLength),
		slog.Int("characters_read", read),
		slog.Int("windows", stats.Windows),
		slog.Int("transitions", stats.Transitions),
	)

	return model, nil
}
