package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/rinchi/internal/ir"
)

func TestReadReaction_NotFound(t *testing.T) {
	s := createTestStore(t)
	_, err := s.ReadReaction(context.Background(), "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestLookupByKey(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	a := createTestEntry("CH4", 2)
	b := createTestEntry("H2", 1)
	// Same Web key as a, different reaction.
	c := createTestEntry("C2H6", 3)
	c.WebKey = a.WebKey

	for _, e := range []Entry{a, b, c} {
		_, err := s.WriteReaction(ctx, e)
		require.NoError(t, err)
	}

	got, err := s.LookupByKey(ctx, ir.KeyLong, a.LongKey)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, a.ID, got[0].ID)

	got, err = s.LookupByKey(ctx, ir.KeyWeb, a.WebKey)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []string{a.ID, c.ID}, []string{got[0].ID, got[1].ID})

	got, err = s.LookupByKey(ctx, ir.KeyShort, "nope")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	_, err = s.LookupByKey(ctx, ir.KeyVariant("Q"), "x")
	assert.Error(t, err)
}

func TestListRunAndReadAll_Ordering(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	entries := []Entry{
		createTestEntry("C3", 3),
		createTestEntry("C1", 1),
		createTestEntry("C2", 2),
	}
	for i := range entries {
		entries[i].RunID = "run-1"
		_, err := s.WriteReaction(ctx, entries[i])
		require.NoError(t, err)
	}
	other := createTestEntry("C4", 4)
	other.RunID = "run-2"
	_, err := s.WriteReaction(ctx, other)
	require.NoError(t, err)

	got, err := s.ListRun(ctx, "run-1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, e := range got {
		assert.Equal(t, int64(i+1), e.Seq)
	}

	all, err := s.ReadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, other.ID, all[3].ID)

	maxSeq, err := s.MaxSeq(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), maxSeq)
}

func TestMaxSeq_Empty(t *testing.T) {
	s := createTestStore(t)
	seq, err := s.MaxSeq(context.Background())
	require.NoError(t, err)
	assert.Zero(t, seq)
}

func TestEntryKey(t *testing.T) {
	var e Entry
	for _, v := range ir.KeyVariants {
		e.SetKey(v, "key-"+string(v))
	}
	assert.Equal(t, "key-L", e.Key(ir.KeyLong))
	assert.Equal(t, "key-S", e.Key(ir.KeyShort))
	assert.Equal(t, "key-W", e.Key(ir.KeyWeb))
	assert.Empty(t, e.Key(ir.KeyVariant("Q")))
}
