package corpus

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"
)

var identifierRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// sqliteSource is a parsed "sqlite:" corpus identifier.
type sqliteSource struct {
	dsn    string
	table  string
	column string
}

func parseSQLiteSource(rest string, cfg *Config) (sqliteSource, error) {
	path, rawQuery, _ := strings.Cut(rest, "?")
	if path == "" {
		return sqliteSource{}, errors.New("sqlite corpus source has no database path")
	}
	params, err := url.ParseQuery(rawQuery)
	if err != nil {
		return sqliteSource{}, fmt.Errorf("failed to parse sqlite corpus parameters: %w", err)
	}

	src := sqliteSource{
		dsn:    path,
		table:  cfg.SQLiteTable,
		column: cfg.SQLiteColumn,
	}
	if t := params.Get("table"); t != "" {
		src.table = t
	}
	if c := params.Get("column"); c != "" {
		src.column = c
	}
	params.Del("table")
	params.Del("column")
	if len(params) > 0 {
		src.dsn += "?" + params.Encode()
	}

	if !identifierRegex.MatchString(src.table) {
		return sqliteSource{}, fmt.Errorf("%w: table %q", ErrInvalidIdentifier, src.table)
	}
	if !identifierRegex.MatchString(src.column) {
		return sqliteSource{}, fmt.Errorf("%w: column %q", ErrInvalidIdentifier, src.column)
	}
	return src, nil
}

func openSQLite(ctx context.Context, rest string, cfg *Config) (io.ReadCloser, error) {
	src, err := parseSQLiteSource(rest, cfg)
	if err != nil {
		return nil, err
	}

	db, err := openDB(src.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus database: %w", err)
	}

	// Identifiers are validated above; they cannot be bound as parameters.
	query := fmt.Sprintf(`SELECT "%s" FROM "%s" ORDER BY rowid;`, src.column, src.table)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to query corpus table %q: %w", src.table, err)
	}

	return &rowReader{db: db, rows: rows, separator: cfg.RowSeparator}, nil
}

// rowReader streams text rows as one corpus, inserting separator between
// rows. NULL rows are skipped.
type rowReader struct {
	db        *sql.DB
	rows      *sql.Rows
	separator string
	buf       []byte
	started   bool
	err       error
}

func (r *rowReader) Read(p []byte) (int, error) {
	for len(r.buf) == 0 {
		if r.err != nil {
			return 0, r.err
		}
		if !r.rows.Next() {
			if err := r.rows.Err(); err != nil {
				r.err = fmt.Errorf("corpus row iteration failed: %w", err)
			} else {
				r.err = io.EOF
			}
			continue
		}
		var text sql.NullString
		if err := r.rows.Scan(&text); err != nil {
			r.err = fmt.Errorf("failed to scan corpus row: %w", err)
			continue
		}
		if !text.Valid {
			continue
		}
		if r.started {
			r.buf = append(r.buf, r.separator...)
		}
		r.started = true
		r.buf = append(r.buf, text.String...)
	}

	n := copy(p, r.buf)
	r.buf = r.buf[n:]
	return n, nil
}

func (r *rowReader) Close() error {
	return errors.Join(r.rows.Close(), r.db.Close())
}
