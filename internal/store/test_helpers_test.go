package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/rinchi/internal/ir"
)

// createTestStore creates a new store in a temp directory.
func createTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path, opts...)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestEntry creates an entry with keys derived from name.
func createTestEntry(name string, seq int64) Entry {
	rinchi := "RInChI=1.00.1S/" + name + "/d+"
	rauxinfo := "RAuxInfo=1.00.1/0/N:1/rA:1n" + name + "/rB:/rC:;"
	return Entry{
		ID:       ir.MustReactionID(rinchi, rauxinfo),
		Seq:      seq,
		RInChI:   rinchi,
		RAuxInfo: rauxinfo,
		LongKey:  "Long-RInChIKey=SA-FUHFF-" + name,
		ShortKey: "Short-RInChIKey=SA-FUHFF-" + name,
		WebKey:   "Web-RInChIKey=" + name + "SA",
	}
}
