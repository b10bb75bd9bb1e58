// Package engine is the boundary between callers and the RInChI toolkit.
//
// Engine is the six-call surface of the toolkit: RInChI from molfile text,
// keys from molfile text, molfile text from a RInChI, line-protocol InChIs
// from a RInChI, a RInChI from InChI text, and keys from a RInChI. Native
// implements it in Go on top of package rinchi. A toolkit-backed engine can
// be injected instead for the molfile calls, which Native does not support.
//
// Client wraps an Engine with the three core operations:
//
//   - Decompose: RInChI + RAuxInfo to an ir.Reaction, via the line protocol
//   - Recompose: component lists to RInChI + RAuxInfo
//   - DeriveKey: RInChI to a Long, Short or Web RInChIKey
//
// Engine failures reach callers as *ir.EngineError with the engine's text
// unchanged. Key failures are additionally wrapped in *ir.KeyDerivationError.
//
// An Engine is created once and shared. Native holds no state, so one value
// may serve any number of goroutines.
package engine
