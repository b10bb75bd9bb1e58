package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/rinchi/internal/ir"
)

const entryColumns = `id, seq, rinchi, rauxinfo, long_key, short_key, web_key, run_id`

// ReadReaction retrieves a single entry by ID.
// Returns sql.ErrNoRows if not found.
func (s *Store) ReadReaction(ctx context.Context, id string) (Entry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+entryColumns+`
		FROM reactions
		WHERE id = ?
	`, id)

	e, err := scanEntry(row)
	if err != nil {
		return Entry{}, err
	}
	return e, nil
}

// LookupByKey returns every entry whose key of the given variant equals key.
// Results are ordered by seq ASC, id ASC.
//
// Returns an empty slice (not nil) when nothing matches.
func (s *Store) LookupByKey(ctx context.Context, v ir.KeyVariant, key string) ([]Entry, error) {
	col, err := keyColumn(v)
	if err != nil {
		return nil, fmt.Errorf("lookup: %w", err)
	}
	return s.queryEntries(ctx, "lookup", `
		SELECT `+entryColumns+`
		FROM reactions
		WHERE `+col+` = ?
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`, key)
}

// ListRun returns the entries written by one batch run, in write order.
func (s *Store) ListRun(ctx context.Context, runID string) ([]Entry, error) {
	return s.queryEntries(ctx, "list run", `
		SELECT `+entryColumns+`
		FROM reactions
		WHERE run_id = ?
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`, runID)
}

// ReadAll returns every entry in write order.
func (s *Store) ReadAll(ctx context.Context) ([]Entry, error) {
	return s.queryEntries(ctx, "read all", `
		SELECT `+entryColumns+`
		FROM reactions
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`)
}

func (s *Store) queryEntries(ctx context.Context, op, query string, args ...any) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: iterate: %w", op, err)
	}
	return entries, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (Entry, error) {
	var e Entry
	var aux []byte
	err := row.Scan(&e.ID, &e.Seq, &e.RInChI, &aux, &e.LongKey, &e.ShortKey, &e.WebKey, &e.RunID)
	if err == sql.ErrNoRows {
		return Entry{}, err
	}
	if err != nil {
		return Entry{}, fmt.Errorf("scan reaction: %w", err)
	}
	if e.RAuxInfo, err = unmarshalAuxInfo(aux); err != nil {
		return Entry{}, err
	}
	return e, nil
}
