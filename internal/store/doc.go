// Package store provides a SQLite index of derived reactions.
//
// Each row holds one canonical RInChI, its RAuxInfo and its three
// RInChIKeys, addressed by a content hash of the RInChI and RAuxInfo.
//
// # Patterns
//
// Idempotent writes:
//   - id is the content hash, so writing the same reaction twice is a no-op
//   - INSERT ... ON CONFLICT(id) DO NOTHING
//
// Logical ordering:
//   - rows carry a seq INTEGER assigned by the writer, never a timestamp
//   - all multi-row queries use ORDER BY seq ASC, id ASC COLLATE BINARY
//
// Compact AuxInfo:
//   - RAuxInfo is stored as a zstd frame when compression is on
//   - raw and compressed values can be mixed in one database
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks instead of failing
//   - Single connection: SQLite has one writer
package store
