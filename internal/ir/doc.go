// Package ir provides the reaction record types shared by every RInChI package.
//
// ir imports nothing internal. The decomposer, the native engine, the key
// derivation code and the store all exchange values from this package.
//
// Key design constraints:
//   - A Reaction is built fresh per call and never mutated after return
//   - Component order is preserved exactly as encountered
//   - Error types keep the exact message text callers match on
//   - All JSON tags use snake_case
package ir
