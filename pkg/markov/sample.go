package markov

import (
	"fmt"
	"math"
	"sort"
)

// Sample draws a character from a finalized table by inverting its cumulative
// distribution: it returns the first entry, in traversal order, whose
// cumulative probability is at least fraction. fraction must be in [0,1).
func Sample(t *FrequencyTable, fraction float64) (rune, error) {
	if t == nil || len(t.entries) == 0 {
		return 0, ErrEmptyTable
	}
	if !t.finalized {
		return 0, ErrTableNotFinalized
	}
	if math.IsNaN(fraction) || fraction < 0 || fraction >= 1 {
		return 0, fmt.Errorf("%w: got %v", ErrFractionOutOfRange, fraction)
	}

	// Cumulative probabilities never decrease, so the first match can be found
	// with a binary search.
	i := sort.Search(len(t.entries), func(i int) bool {
		return t.entries[i].Cumulative >= fraction
	})
	if i == len(t.entries) {
		return 0, fmt.Errorf("%w: fraction %v, last cumulative %v", ErrSampleExhausted, fraction, t.entries[i-1].Cumulative)
	}
	return t.entries[i].Char, nil
}
