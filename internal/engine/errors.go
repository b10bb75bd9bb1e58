package engine

import (
	"errors"

	"github.com/roach88/rinchi/internal/ir"
)

var (
	errMissingKeySelector = errors.New("Missing key selector: 'key_type' parameter must be 'L'(ong), 'S'(hort) or W(eb).")
	errInvalidKeySelector = errors.New("Invalid key selector. 'key_type' parameter must be 'L'(ong), 'S'(hort) or W(eb).")
	errMolfileUnsupported = errors.New("Molfile conversion requires an InChI toolkit engine; the native engine reads and writes RInChI text only.")
)

// engineError reports err as the failure of op. An error that already is an
// *ir.EngineError is returned as is.
func engineError(op string, err error) *ir.EngineError {
	var ee *ir.EngineError
	if errors.As(err, &ee) {
		return ee
	}
	return ir.NewEngineError(op, err.Error())
}

// asEngineError converts an error returned by an injected Engine, which may
// be any error type, into an *ir.EngineError.
func asEngineError(op string, err error) error {
	if err == nil {
		return nil
	}
	return engineError(op, err)
}
