package markov

import (
	"errors"
	"math"
	"testing"
)

// finalizedTable builds a finalized table from the given characters.
func finalizedTable(chars string) *FrequencyTable {
	table := newFrequencyTable()
	for _, c := range chars {
		table.observe(c)
	}
	table.finalize()
	return table
}

func TestSample(t *testing.T) {
	// Cumulative probabilities: a=0.5, b=0.75, c=1.0
	table := finalizedTable("aabc")

	testCases := []struct {
		fraction float64
		expected rune
	}{
		{0, 'a'},
		{0.25, 'a'},
		{0.5, 'a'},
		{0.5000001, 'b'},
		{0.75, 'b'},
		{0.76, 'c'},
		{0.9999999, 'c'},
	}

	for _, tc := range testCases {
		got, err := Sample(table, tc.fraction)
		if err != nil {
			t.Errorf("Sample(%v) error = %v", tc.fraction, err)
			continue
		}
		if got != tc.expected {
			t.Errorf("Sample(%v) = %q, want %q", tc.fraction, got, tc.expected)
		}
	}
}

func TestSampleErrors(t *testing.T) {
	unfinalized := newFrequencyTable()
	unfinalized.observe('a')

	exhausted := finalizedTable("a")
	exhausted.entries[0].Cumulative = 0.5

	testCases := []struct {
		name     string
		table    *FrequencyTable
		fraction float64
		expected error
	}{
		{name: "Nil table", table: nil, fraction: 0.1, expected: ErrEmptyTable},
		{name: "Empty table", table: newFrequencyTable(), fraction: 0.1, expected: ErrEmptyTable},
		{name: "Not finalized", table: unfinalized, fraction: 0.1, expected: ErrTableNotFinalized},
		{name: "Negative fraction", table: finalizedTable("ab"), fraction: -0.1, expected: ErrFractionOutOfRange},
		{name: "Fraction of one", table: finalizedTable("ab"), fraction: 1.0, expected: ErrFractionOutOfRange},
		{name: "NaN fraction", table: finalizedTable("ab"), fraction: math.NaN(), expected: ErrFractionOutOfRange},
		{name: "Broken cumulative", table: exhausted, fraction: 0.9, expected: ErrSampleExhausted},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Sample(tc.table, tc.fraction)
			if !errors.Is(err, tc.expected) {
				t.Errorf("expected %v, got %v", tc.expected, err)
			}
		})
	}
}

func TestSampleDistribution(t *testing.T) {
	table := finalizedTable("aabc")
	rnd := NewSeededSource(20)

	const draws = 100000
	counts := make(map[rune]int)
	for i := 0; i < draws; i++ {
		c, err := Sample(table, rnd.Float64())
		if err != nil {
			t.Fatalf("Sample() error = %v", err)
		}
		counts[c]++
	}

	for _, e := range table.Entries() {
		got := float64(counts[e.Char]) / draws
		if math.Abs(got-e.Probability) > 0.01 {
			t.Errorf("char %q drawn with frequency %.4f, expected about %.4f", e.Char, got, e.Probability)
		}
	}
}
