package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/tradedash/journal"
)

const entryColumns = `id, date, pnl, trades, direction, bias, reason, image, long_count, short_count`

// SQLite stores entries one row each, ordered by position (0 is newest).
type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Load(ctx context.Context) ([]journal.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+entryColumns+` FROM entries ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	return scanEntries(rows)
}

// Save replaces the stored collection in one transaction.
func (s *SQLite) Save(ctx context.Context, entries []journal.Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO entries
		(position, `+entryColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, e := range entries {
		_, err := stmt.ExecContext(ctx,
			i, e.ID, e.Date, e.PnL, e.Trades, string(e.Direction), string(e.Bias),
			e.Reason, e.Image, nullInt(e.LongCount), nullInt(e.ShortCount),
		)
		if err != nil {
			return fmt.Errorf("insert %s: %w", e.ID, err)
		}
	}
	return tx.Commit()
}

// Get returns a single entry by ID.
func (s *SQLite) Get(ctx context.Context, id string) (journal.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+entryColumns+` FROM entries WHERE id = ?`, id)
	if err != nil {
		return journal.Entry{}, err
	}
	entries, err := scanEntries(rows)
	if err != nil {
		return journal.Entry{}, err
	}
	if len(entries) == 0 {
		return journal.Entry{}, fmt.Errorf("entry %q: %w", id, ErrNotFound)
	}
	return entries[0], nil
}

// ListBetween returns entries dated within [from, to], newest first.
func (s *SQLite) ListBetween(ctx context.Context, from, to string) ([]journal.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+entryColumns+`
		FROM entries
		WHERE date >= ? AND date <= ?
		ORDER BY position ASC`, from, to)
	if err != nil {
		return nil, err
	}
	return scanEntries(rows)
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func scanEntries(rows *sql.Rows) ([]journal.Entry, error) {
	defer rows.Close()

	var out []journal.Entry
	for rows.Next() {
		var (
			e           journal.Entry
			dir, bias   string
			long, short sql.NullInt64
		)
		if err := rows.Scan(
			&e.ID,
			&e.Date,
			&e.PnL,
			&e.Trades,
			&dir,
			&bias,
			&e.Reason,
			&e.Image,
			&long,
			&short,
		); err != nil {
			return nil, err
		}
		e.Direction = journal.Direction(dir)
		e.Bias = journal.Bias(bias)
		e.LongCount = fromNullInt(long)
		e.ShortCount = fromNullInt(short)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func nullInt(p *int) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*p), Valid: true}
}

func fromNullInt(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}
