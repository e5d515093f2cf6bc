// Package corpus resolves corpus source identifiers into character streams
// for training.
package corpus

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	// StdinSource reads the corpus from standard input.
	StdinSource = "-"
	// SQLitePrefix marks a source as a SQLite table, e.g.
	// "sqlite:./books.db?table=chapters&column=body".
	SQLitePrefix = "sqlite:"
)

// ErrInvalidIdentifier is returned when a table or column name is not a plain
// SQL identifier.
var ErrInvalidIdentifier = errors.New("invalid SQL identifier")

// Config holds defaults for corpus sources.
type Config struct {
	SQLiteTable  string `json:"sqlite_table"`
	SQLiteColumn string `json:"sqlite_column"`
	RowSeparator string `json:"row_separator"`
}

// DefaultConfig creates a corpus configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		SQLiteTable:  "corpus",
		SQLiteColumn: "text",
		RowSeparator: "\n",
	}
}

// stdin is swapped out in tests.
var stdin io.Reader = os.Stdin

// Open is OpenContext with a background context.
func Open(source string, cfg *Config) (io.ReadCloser, error) {
	return OpenContext(context.Background(), source, cfg)
}

// OpenContext opens the corpus named by source:
//
//   - "-" reads standard input, which Close leaves open.
//   - "sqlite:<dsn>?table=<t>&column=<c>" streams column c of table t in
//     rowid order, joined by cfg.RowSeparator. Extra query parameters are
//     passed on to the driver.
//   - anything else is a file path.
//
// A nil cfg means DefaultConfig.
func OpenContext(ctx context.Context, source string, cfg *Config) (io.ReadCloser, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	switch {
	case source == "":
		return nil, errors.New("corpus source is empty")
	case source == StdinSource:
		return io.NopCloser(stdin), nil
	case strings.HasPrefix(source, SQLitePrefix):
		return openSQLite(ctx, strings.TrimPrefix(source, SQLitePrefix), cfg)
	default:
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("failed to open corpus file: %w", err)
		}
		return f, nil
	}
}
