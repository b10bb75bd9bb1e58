package store

import (
	"context"
	"fmt"

	"github.com/roach88/rinchi/internal/ir"
)

// WriteReaction inserts an entry and reports whether a new row was added.
//
// An empty ID is filled in from the RInChI and RAuxInfo. Uses
// ON CONFLICT(id) DO NOTHING, so indexing the same reaction again is a
// no-op that returns inserted=false.
func (s *Store) WriteReaction(ctx context.Context, e Entry) (inserted bool, err error) {
	if e.ID == "" {
		e.ID, err = ir.ReactionID(e.RInChI, e.RAuxInfo)
		if err != nil {
			return false, fmt.Errorf("write reaction: %w", err)
		}
	}

	aux, err := marshalAuxInfo(e.RAuxInfo, s.compress)
	if err != nil {
		return false, fmt.Errorf("write reaction: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO reactions
		(id, seq, rinchi, rauxinfo, long_key, short_key, web_key, run_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		e.ID,
		e.Seq,
		e.RInChI,
		aux,
		e.LongKey,
		e.ShortKey,
		e.WebKey,
		e.RunID,
	)
	if err != nil {
		return false, fmt.Errorf("write reaction: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("write reaction: rows affected: %w", err)
	}
	if n == 0 {
		s.logger.Debug("reaction already indexed", "id", e.ID)
	}
	return n > 0, nil
}
