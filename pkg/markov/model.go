package markov

import (
	"sort"
	"strings"
)

// Model is a trained character model: for every window seen in the corpus, the
// distribution of the character that followed it. A Model is built and
// finalized by a Trainer and is read-only afterwards, so a single Model can be
// shared by any number of generators.
type Model struct {
	windowLength int
	tables       map[string]*FrequencyTable
}

func newModel(windowLength int) *Model {
	return &Model{
		windowLength: windowLength,
		tables:       make(map[string]*FrequencyTable),
	}
}

// observe records that c followed window, creating the window's table on
// first sight.
func (m *Model) observe(window string, c rune) {
	t, ok := m.tables[window]
	if !ok {
		t = newFrequencyTable()
		m.tables[window] = t
	}
	t.observe(c)
}

func (m *Model) finalize() {
	for _, t := range m.tables {
		t.finalize()
	}
}

// WindowLength returns the number of characters in each window of the model.
func (m *Model) WindowLength() int {
	return m.windowLength
}

// Table returns the frequency table for a window. The table must not be
// modified; it is shared by every user of the model.
func (m *Model) Table(window string) (*FrequencyTable, bool) {
	t, ok := m.tables[window]
	return t, ok
}

// Len returns the number of distinct windows in the model.
func (m *Model) Len() int {
	return len(m.tables)
}

// Windows returns every window in the model, sorted.
func (m *Model) Windows() []string {
	windows := make([]string, 0, len(m.tables))
	for w := range m.tables {
		windows = append(windows, w)
	}
	sort.Strings(windows)
	return windows
}

// String returns one "window : table" line per window, sorted by window.
func (m *Model) String() string {
	var sb strings.Builder
	for _, w := range m.Windows() {
		sb.WriteString(w)
		sb.WriteString(" : ")
		sb.WriteString(m.tables[w].String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
