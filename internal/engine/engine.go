package engine

import (
	"github.com/roach88/rinchi/internal/ir"
	"github.com/roach88/rinchi/internal/protocol"
	"github.com/roach88/rinchi/internal/rinchi"
)

// Engine is the RInChI toolkit surface.
//
// Every error returned by an Engine carries the toolkit's message text,
// which callers surface unchanged.
type Engine interface {
	// RInChIFromFileText reads an RXN or RD file.
	RInChIFromFileText(format, text string, forceEquilibrium bool) (rinchi, rauxinfo string, err error)

	// KeyFromFileText reads an RXN or RD file and returns one of its keys.
	KeyFromFileText(format, text, keyType string, forceEquilibrium bool) (string, error)

	// FileTextFromRInChI writes a reaction as an RXN or RD file.
	FileTextFromRInChI(rinchi, rauxinfo, format string) (string, error)

	// InChIsFromRInChI returns the line-protocol text of a reaction.
	InChIsFromRInChI(rinchi, rauxinfo string) (string, error)

	// RInChIFromInChIs builds a reaction from three blocks of InChI text.
	RInChIFromInChIs(reactants, products, agents string) (rinchi, rauxinfo string, err error)

	// KeyFromRInChI returns the key selected by keyType ("L", "S" or "W").
	KeyFromRInChI(rinchi, keyType string) (string, error)
}

// Native is the Go implementation of Engine.
type Native struct{}

var _ Engine = Native{}

// NewNative returns the native engine.
func NewNative() Native {
	return Native{}
}

func (Native) RInChIFromFileText(format, text string, forceEquilibrium bool) (string, string, error) {
	if _, err := ResolveInputFormat(format, text); err != nil {
		return "", "", engineError("rinchi_from_file_text", err)
	}
	return "", "", engineError("rinchi_from_file_text", errMolfileUnsupported)
}

func (Native) KeyFromFileText(format, text, keyType string, forceEquilibrium bool) (string, error) {
	if _, err := ResolveInputFormat(format, text); err != nil {
		return "", engineError("rinchikey_from_file_text", err)
	}
	return "", engineError("rinchikey_from_file_text", errMolfileUnsupported)
}

func (Native) FileTextFromRInChI(rinchiText, rauxinfo, format string) (string, error) {
	if _, err := rinchi.Parse(rinchiText, rauxinfo); err != nil {
		return "", engineError("file_text_from_rinchi", err)
	}
	if _, err := ParseOutputFormat(format); err != nil {
		return "", engineError("file_text_from_rinchi", err)
	}
	return "", engineError("file_text_from_rinchi", errMolfileUnsupported)
}

func (Native) InChIsFromRInChI(rinchiText, rauxinfo string) (string, error) {
	r, err := rinchi.Parse(rinchiText, rauxinfo)
	if err != nil {
		return "", engineError("inchis_from_rinchi", err)
	}
	return protocol.Encode(r.Record()), nil
}

func (Native) RInChIFromInChIs(reactants, products, agents string) (string, string, error) {
	r, err := rinchi.FromInChIText(reactants, products, agents)
	if err != nil {
		return "", "", engineError("rinchi_from_inchis", err)
	}
	return r.String(), r.AuxInfo(), nil
}

func (Native) KeyFromRInChI(rinchiText, keyType string) (string, error) {
	r, err := rinchi.ParseKeyInput(rinchiText)
	if err != nil {
		return "", engineError("rinchikey_from_rinchi", err)
	}
	variant, err := parseKeySelector(keyType)
	if err != nil {
		return "", engineError("rinchikey_from_rinchi", err)
	}
	key, err := r.Key(variant)
	if err != nil {
		return "", engineError("rinchikey_from_rinchi", err)
	}
	return key, nil
}

// parseKeySelector checks a key type selector. Only its first character is
// read and it must be an upper-case L, S or W.
func parseKeySelector(keyType string) (ir.KeyVariant, error) {
	if keyType == "" {
		return "", errMissingKeySelector
	}
	switch v := ir.KeyVariant(keyType[:1]); v {
	case ir.KeyLong, ir.KeyShort, ir.KeyWeb:
		return v, nil
	}
	return "", errInvalidKeySelector
}
