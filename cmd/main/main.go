package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/CTAG07/charlm/pkg/corpus"
	"github.com/CTAG07/charlm/pkg/markov"
	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// runArgs are the five positional arguments of the command.
type runArgs struct {
	windowLength int
	initialText  string
	length       int
	mode         string
	source       string
}

type runOptions struct {
	configPath string
	logLevel   string
	stats      bool
	dump       bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &runOptions{}
	rootCmd := &cobra.Command{
		Use:   "charlm <window-length> <initial-text> <length> <mode> <corpus>",
		Short: "Generate text from a character-level Markov model",
		Long: `charlm trains a sliding-window character model on a corpus and continues
the initial text by up to <length> characters.

A <mode> of "random" draws from a randomly seeded source; any other value
uses a fixed seed, so the same inputs always produce the same text.

<corpus> is a file path, "-" for standard input, or
"sqlite:<db>?table=<table>&column=<column>" to read rows from a SQLite table.`,
		Args:         cobra.ExactArgs(5),
		SilenceUsage: true,
		Version:      fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildDate),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	rootCmd.Flags().StringVar(&opts.configPath, "config", "", "path to a JSON config file (created with defaults if missing)")
	rootCmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error (overrides config)")
	rootCmd.Flags().BoolVar(&opts.stats, "stats", false, "log statistics about the trained model")
	rootCmd.Flags().BoolVar(&opts.dump, "dump", false, "write the trained model to stderr")

	return rootCmd
}

func parseArgs(args []string) (runArgs, error) {
	windowLength, err := strconv.Atoi(args[0])
	if err != nil || windowLength < 1 {
		return runArgs{}, fmt.Errorf("window length must be a positive integer, got %q", args[0])
	}
	length, err := strconv.Atoi(args[2])
	if err != nil || length < 0 {
		return runArgs{}, fmt.Errorf("length must be a non-negative integer, got %q", args[2])
	}
	return runArgs{
		windowLength: windowLength,
		initialText:  args[1],
		length:       length,
		mode:         args[3],
		source:       args[4],
	}, nil
}

func run(cmd *cobra.Command, args []string, opts *runOptions) error {
	a, err := parseArgs(args)
	if err != nil {
		return err
	}

	config, err := LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if opts.logLevel != "" {
		config.Log.Level = opts.logLevel
	}
	logger := newLogger(cmd.ErrOrStderr(), config.Log)

	model, err := trainModel(a, config, logger)
	if err != nil {
		return err
	}

	if opts.stats {
		stats := model.Stats()
		logger.Info("Model statistics",
			slog.Int("window_length", stats.WindowLength),
			slog.Int("windows", stats.Windows),
			slog.Int("transitions", stats.Transitions),
			slog.Int("distinct_characters", stats.DistinctCharacters),
			slog.Int("max_branching", stats.MaxBranching),
		)
	}
	if opts.dump {
		if _, err = fmt.Fprint(cmd.ErrOrStderr(), model.String()); err != nil {
			return fmt.Errorf("failed to dump model: %w", err)
		}
	}

	gen := markov.NewGenerator(model)
	gen.SetLogger(logger)
	output, err := gen.Generate(a.initialText, a.length, newRandomSource(a.mode, config.Generation, logger))
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
	return err
}

func trainModel(a runArgs, config *Config, logger *slog.Logger) (*markov.Model, error) {
	rc, err := corpus.Open(a.source, config.Corpus)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rc.Close(); cerr != nil {
			logger.Warn("Failed to close corpus", "source", a.source, "error", cerr)
		}
	}()

	trainer, err := markov.NewTrainer(a.windowLength)
	if err != nil {
		return nil, err
	}
	trainer.SetLogger(logger)

	model, err := trainer.Train(rc)
	if err != nil {
		return nil, fmt.Errorf("training on %q failed: %w", a.source, err)
	}
	return model, nil
}

func newRandomSource(mode string, cfg *GenerationConfig, logger *slog.Logger) markov.RandomSource {
	if mode == cfg.RandomMode {
		logger.Debug("Using a randomly seeded source", "mode", mode)
		return markov.NewRandomSource()
	}
	logger.Debug("Using a fixed seed", "mode", mode, "seed", cfg.FixedSeed)
	return markov.NewSeededSource(cfg.FixedSeed)
}
