package store

import (
	"fmt"

	"github.com/roach88/rinchi/internal/ir"
)

// Entry is one indexed reaction.
type Entry struct {
	ID       string `json:"id"`
	Seq      int64  `json:"seq"`
	RInChI   string `json:"rinchi"`
	RAuxInfo string `json:"rauxinfo"`
	LongKey  string `json:"long_key"`
	ShortKey string `json:"short_key"`
	WebKey   string `json:"web_key"`
	RunID    string `json:"run_id"`
}

// Key returns the entry's key of the given variant.
func (e Entry) Key(v ir.KeyVariant) string {
	switch v {
	case ir.KeyLong:
		return e.LongKey
	case ir.KeyShort:
		return e.ShortKey
	case ir.KeyWeb:
		return e.WebKey
	}
	return ""
}

// SetKey stores key as the entry's key of the given variant.
func (e *Entry) SetKey(v ir.KeyVariant, key string) {
	switch v {
	case ir.KeyLong:
		e.LongKey = key
	case ir.KeyShort:
		e.ShortKey = key
	case ir.KeyWeb:
		e.WebKey = key
	}
}

// keyColumn maps a key variant to its column. The result is one of three
// fixed names and safe to splice into SQL.
func keyColumn(v ir.KeyVariant) (string, error) {
	switch v {
	case ir.KeyLong:
		return "long_key", nil
	case ir.KeyShort:
		return "short_key", nil
	case ir.KeyWeb:
		return "web_key", nil
	}
	return "", fmt.Errorf("unknown key variant %q", string(v))
}
