package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/CTAG07/charlm/pkg/corpus"
	"github.com/natefinch/atomic"
)

// LogConfig holds the logging settings.
type LogConfig struct {
	Level  string `json:"log_level"`
	Format string `json:"log_format"`
}

// GenerationConfig holds settings for choosing the random source.
type GenerationConfig struct {
	// RandomMode is the mode argument that selects a non-deterministic source.
	// Any other mode runs with FixedSeed.
	RandomMode string `json:"random_mode"`
	FixedSeed  uint64 `json:"fixed_seed"`
}

// Config is the top-level configuration struct that aggregates all other configs.
type Config struct {
	Log        *LogConfig        `json:"log_config"`
	Generation *GenerationConfig `json:"generation_config"`
	Corpus     *corpus.Config    `json:"corpus_config"`
}

// DefaultLogConfig creates a logging configuration with default values.
func DefaultLogConfig() *LogConfig {
	return &LogConfig{
		Level:  "info",
		Format: "text",
	}
}

// DefaultGenerationConfig creates a generation configuration with default values.
func DefaultGenerationConfig() *GenerationConfig {
	return &GenerationConfig{
		RandomMode: "random",
		FixedSeed:  20,
	}
}

// DefaultConfig returns the full default configuration.
func DefaultConfig() *Config {
	return &Config{
		Log:        DefaultLogConfig(),
		Generation: DefaultGenerationConfig(),
		Corpus:     corpus.DefaultConfig(),
	}
}

// LoadConfig reads the configuration from a JSON file at the given path.
// An empty path means defaults. If the file doesn't exist, it is created with
// default values.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		// If the file doesn't exist, create it with the default config.
		if os.IsNotExist(err) {
			var data []byte
			data, err = json.MarshalIndent(config, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("failed to marshal default config: %w", err)
			}
			if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
				return nil, fmt.Errorf("failed to write default config file: %w", err)
			}
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err = json.Unmarshal(file, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	// Sections missing from the file keep their defaults.
	if config.Log == nil {
		config.Log = DefaultLogConfig()
	}
	if config.Generation == nil {
		config.Generation = DefaultGenerationConfig()
	}
	if config.Corpus == nil {
		config.Corpus = corpus.DefaultConfig()
	}
	return config, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newLogger builds the process logger. Logs never go to stdout, which carries
// only the generated text.
func newLogger(w io.Writer, cfg *LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLogLevel(cfg.Level)}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
