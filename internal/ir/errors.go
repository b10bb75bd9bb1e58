package ir

import (
	"errors"
	"fmt"
)

// ProtocolErrorKind categorizes line-protocol violations.
type ProtocolErrorKind string

const (
	// ErrMalformedLineCount indicates an odd number of protocol lines.
	ErrMalformedLineCount ProtocolErrorKind = "MALFORMED_LINE_COUNT"

	// ErrMissingDirectionTag indicates the first line is not a D: line.
	ErrMissingDirectionTag ProtocolErrorKind = "MISSING_DIRECTION_TAG"

	// ErrMissingNoStructureTag indicates the second line is not an N: line.
	ErrMissingNoStructureTag ProtocolErrorKind = "MISSING_NO_STRUCTURE_TAG"

	// ErrInvalidCountToken indicates a no-structure count is not a non-negative integer.
	ErrInvalidCountToken ProtocolErrorKind = "INVALID_COUNT_TOKEN"

	// ErrInvalidInChIPrefix indicates a component line without the InChI prefix.
	ErrInvalidInChIPrefix ProtocolErrorKind = "INVALID_INCHI_PREFIX"

	// ErrInvalidAuxInfoPrefix indicates a non-empty AuxInfo line without the AuxInfo prefix.
	ErrInvalidAuxInfoPrefix ProtocolErrorKind = "INVALID_AUXINFO_PREFIX"

	// ErrUnknownRoleTag indicates a component tag other than R:, P: or A:.
	ErrUnknownRoleTag ProtocolErrorKind = "UNKNOWN_ROLE_TAG"
)

// ProtocolError is a grammar violation found while decomposing line-protocol text.
// It signals a wrapper/engine mismatch rather than bad chemistry input.
type ProtocolError struct {
	Kind ProtocolErrorKind

	// Line is the zero-based index of the offending line. For
	// ErrMalformedLineCount it is the observed line count.
	Line int

	// Text is the raw offending text.
	Text string
}

func (e *ProtocolError) Error() string {
	switch e.Kind {
	case ErrMalformedLineCount:
		return fmt.Sprintf("Invalid number of lines (%d) in component protocol.", e.Line)
	case ErrMissingDirectionTag:
		return "Invalid direction line (must be first line of component protocol)."
	case ErrMissingNoStructureTag:
		return "Invalid No-Structure count line (must be second line of component protocol)."
	case ErrInvalidCountToken:
		return fmt.Sprintf("Invalid No-Structure count '%s'.", e.Text)
	case ErrInvalidInChIPrefix:
		return fmt.Sprintf("Invalid InChI string '%s'.", e.Text)
	case ErrInvalidAuxInfoPrefix:
		return fmt.Sprintf("Invalid AuxInfo '%s'.", e.Text)
	case ErrUnknownRoleTag:
		return fmt.Sprintf("Unsupported component prefix '%s'.", e.Text)
	}
	return fmt.Sprintf("%s: line %d: %q", e.Kind, e.Line, e.Text)
}

// NewProtocolError creates a ProtocolError.
func NewProtocolError(kind ProtocolErrorKind, line int, text string) *ProtocolError {
	return &ProtocolError{Kind: kind, Line: line, Text: text}
}

// IsProtocolError returns true if err is or wraps a ProtocolError.
func IsProtocolError(err error) bool {
	var pe *ProtocolError
	return errors.As(err, &pe)
}

// ProtocolErrorKindOf returns the kind of a wrapped ProtocolError, or "".
func ProtocolErrorKindOf(err error) ProtocolErrorKind {
	var pe *ProtocolError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}

// EngineError carries a failure reported by the RInChI engine.
// Error returns Message unchanged; callers match on the literal text.
type EngineError struct {
	// Op names the engine call that failed (e.g. "RInChIFromInChIs").
	Op string

	// Message is the engine's diagnostic text.
	Message string
}

func (e *EngineError) Error() string {
	return e.Message
}

// NewEngineError creates an EngineError.
func NewEngineError(op, message string) *EngineError {
	return &EngineError{Op: op, Message: message}
}

// IsEngineError returns true if err is or wraps an EngineError.
func IsEngineError(err error) bool {
	var ee *EngineError
	return errors.As(err, &ee)
}

// KeyDerivationError is returned when a key cannot be derived from a RInChI.
type KeyDerivationError struct {
	Variant KeyVariant
	Err     error
}

func (e *KeyDerivationError) Error() string {
	return e.Err.Error()
}

func (e *KeyDerivationError) Unwrap() error {
	return e.Err
}

// IsKeyDerivationError returns true if err is or wraps a KeyDerivationError.
func IsKeyDerivationError(err error) bool {
	var ke *KeyDerivationError
	return errors.As(err, &ke)
}
