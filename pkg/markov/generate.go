package markov

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// Generate continues initialText by up to outputLength characters and returns
// the seed followed by the generated characters.
//
// The last WindowLength characters of initialText form the first window. If
// initialText is shorter than that, it is returned unchanged. Generation stops
// early, without error, as soon as the current window was never seen during
// training, so the result may be shorter than requested.
func (g *Generator) Generate(initialText string, outputLength int, rnd RandomSource) (string, error) {
	var sb strings.Builder
	sb.Grow(len(initialText) + max(outputLength, 0))
	if _, err := g.GenerateTo(&sb, initialText, outputLength, rnd); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// GenerateTo writes initialText and then each generated character to w as it
// is produced. It returns the number of characters generated, which excludes
// the seed. Its stopping rules are those of Generate.
func (g *Generator) GenerateTo(w io.Writer, initialText string, outputLength int, rnd RandomSource) (int, error) {
	if _, err := io.WriteString(w, initialText); err != nil {
		return 0, fmt.Errorf("failed to write initial text: %w", err)
	}

	window, ok := NewWindow(initialText, g.model.windowLength)
	if !ok {
		g.logger.Debug("Initial text shorter than window, nothing generated",
			slog.Int("window_length", g.model.windowLength),
			slog.Int("initial_length", utf8.RuneCountInString(initialText)),
		)
		return 0, nil
	}
	if outputLength > 0 && rnd == nil {
		return 0, ErrNilRandomSource
	}

	buf := make([]byte, 0, utf8.UTFMax)
	generated := 0
	for generated < outputLength {
		key := window.String()
		table, ok := g.model.Table(key)
		if !ok {
			g.logger.Debug("Generation terminated by unseen window",
				slog.String("window", key),
				slog.Int("generated_length", generated),
				slog.Int("requested_length", outputLength),
			)
			return generated, nil
		}

		c, err := Sample(table, rnd.Float64())
		if err != nil {
			return generated, fmt.Errorf("failed to sample after window %q: %w", key, err)
		}

		buf = utf8.AppendRune(buf[:0], c)
		if _, err = w.Write(buf); err != nil {
			return generated, fmt.Errorf("failed to write generated character: %w", err)
		}
		window.Shift(c)
		generated++
	}

	g.logger.Debug("Generation terminated by reaching requested length",
		slog.Int("generated_length", generated),
	)
	return generated, nil
}
