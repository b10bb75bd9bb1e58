package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content-addressed identity.
// The version suffix allows a future algorithm migration.
const (
	DomainReaction = "rinchi/reaction/v1"
	DomainScenario = "rinchi/scenario/v1"
)

// hashWithDomain computes SHA256(domain + 0x00 + data).
// The null separator prevents domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// ReactionID computes the content-addressed ID of a stored reaction.
// The ID depends only on the canonical RInChI and RAuxInfo strings, so
// re-indexing the same reaction is idempotent.
func ReactionID(rinchi, rauxinfo string) (string, error) {
	canonical, err := MarshalCanonical(map[string]any{
		"rinchi":   rinchi,
		"rauxinfo": rauxinfo,
	})
	if err != nil {
		return "", fmt.Errorf("ReactionID: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainReaction, canonical), nil
}

// RecordHash computes a stable hash of a decomposed reaction record.
func RecordHash(r *Reaction) (string, error) {
	canonical, err := MarshalCanonical(r)
	if err != nil {
		return "", fmt.Errorf("RecordHash: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainScenario, canonical), nil
}

// MustReactionID is like ReactionID but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustReactionID(rinchi, rauxinfo string) string {
	id, err := ReactionID(rinchi, rauxinfo)
	if err != nil {
		panic(err)
	}
	return id
}
