package markov

import (
	"io"
	"log/slog"
)

// Generator produces text from a trained Model. It never modifies the model,
// so several generators may share one Model concurrently as long as each uses
// its own RandomSource.
type Generator struct {
	model  *Model
	logger *slog.Logger
}

// NewGenerator creates and returns a new Generator for the given model.
func NewGenerator(model *Model) *Generator {
	return &Generator{
		model:  model,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// SetLogger sets the logger for the Generator. By default, all logs are discarded.
// Providing a `log/slog.Logger` will enable debug logging of how each
// generation ended.
func (g *Generator) SetLogger(logger *slog.Logger) {
	if logger != nil {
		g.logger = logger
	}
}

// Model returns the model the generator samples from.
func (g *Generator) Model() *Model {
	return g.model
}
