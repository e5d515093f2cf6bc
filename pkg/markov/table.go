package markov

import (
	"strconv"
	"strings"
)

// Entry is a single observed successor of a window: the character itself, how
// many times it followed the window, and its probabilities once the owning
// table has been finalized.
type Entry struct {
	Char        rune
	Count       int
	Probability float64
	// Cumulative is the running sum of Probability over the table's entries,
	// in the table's traversal order, up to and including this entry.
	Cumulative float64
}

// FrequencyTable records the distribution of characters that follow one
// window. Entries are kept in first-occurrence order, and that order is used
// both to build cumulative probabilities and to sample from them.
type FrequencyTable struct {
	entries   []Entry
	index     map[rune]int
	total     int
	finalized bool
}

func newFrequencyTable() *FrequencyTable {
	return &FrequencyTable{index: make(map[rune]int)}
}

// observe counts one more occurrence of c. Any previously computed
// probabilities become stale until the next finalize.
func (t *FrequencyTable) observe(c rune) {
	if i, ok := t.index[c]; ok {
		t.entries[i].Count++
	} else {
		t.index[c] = len(t.entries)
		t.entries = append(t.entries, Entry{Char: c, Count: 1})
	}
	t.total++
	t.finalized = false
}

// finalize computes Probability and Cumulative for every entry. The last
// entry's cumulative probability is pinned to exactly 1 so that any fraction
// in [0,1) is guaranteed to find a match when sampling.
func (t *FrequencyTable) finalize() {
	if len(t.entries) == 0 {
		return
	}
	total := float64(t.total)
	var cumulative float64
	for i := range t.entries {
		e := &t.entries[i]
		e.Probability = float64(e.Count) / total
		cumulative += e.Probability
		e.Cumulative = cumulative
	}
	t.entries[len(t.entries)-1].Cumulative = 1.0
	t.finalized = true
}

// Len returns the number of distinct characters in the table.
func (t *FrequencyTable) Len() int {
	return len(t.entries)
}

// Total returns the sum of all entry counts.
func (t *FrequencyTable) Total() int {
	return t.total
}

// Finalized reports whether probabilities are current.
func (t *FrequencyTable) Finalized() bool {
	return t.finalized
}

// Entries returns a copy of the table's entries in traversal order.
func (t *FrequencyTable) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Entry returns the entry for c, if c was ever observed.
func (t *FrequencyTable) Entry(c rune) (Entry, bool) {
	i, ok := t.index[c]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// String renders the table as "(c count p cp) ..." in traversal order.
func (t *FrequencyTable) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, e := range t.entries {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('(')
		sb.WriteString(strconv.QuoteRune(e.Char))
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(e.Count))
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatFloat(e.Probability, 'f', 4, 64))
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatFloat(e.Cumulative, 'f', 4, 64))
		sb.WriteByte(')')
	}
	sb.WriteByte(')')
	return sb.String()
}
