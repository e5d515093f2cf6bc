package markov

// ModelStats holds aggregated statistics for a trained model.
type ModelStats struct {
	WindowLength       int // The number of characters in each window.
	Windows            int // The number of distinct windows.
	Transitions        int // The sum of all counts; the number of trained window->character steps.
	DistinctCharacters int // The number of distinct characters seen as a successor.
	MaxBranching       int // The largest number of distinct successors of any one window.
}

// Stats returns a snapshot of statistics for the model.
func (m *Model) Stats() ModelStats {
	stats := ModelStats{
		WindowLength: m.windowLength,
		Windows:      len(m.tables),
	}
	chars := make(map[rune]struct{})
	for _, t := range m.tables {
		stats.Transitions += t.total
		if len(t.entries) > stats.MaxBranching {
			stats.MaxBranching = len(t.entries)
		}
		for _, e := range t.entries {
			chars[e.Char] = struct{}{}
		}
	}
	stats.DistinctCharacters = len(chars)
	return stats
}
