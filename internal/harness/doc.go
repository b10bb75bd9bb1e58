// Package harness runs conformance scenarios against the RInChI client.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: epoxide_round_trip
//	description: "Decompose and rebuild the epoxide reaction"
//	run_id: run-epoxide
//	steps:
//	  - op: decompose
//	    args: { rinchi: "RInChI=1.00.1S/...", rauxinfo: "RAuxInfo=1.00.1/..." }
//	    expect:
//	      result: { direction: "-", no_structure_counts: [0, 0, 0] }
//	  - op: key
//	    args: { rinchi: "RInChI=1.00.1S/...", variant: S }
//	    expect:
//	      error: "..."
//	assertions:
//	  - type: trace_count
//	    op: key
//	    count: 1
//	  - type: final_state
//	    where: { long_key: "Long-RInChIKey=..." }
//	    expect: { seq: 1 }
//
// # Operations
//
//   - decompose: rinchi, rauxinfo → direction, no_structure_counts, reactants, products, agents
//   - decode: text (line-protocol document) → same fields as decompose
//   - recompose: reactants, products, agents (lists of InChI/AuxInfo lines) → rinchi, rauxinfo
//   - normalize: rinchi, rauxinfo → rinchi, rauxinfo
//   - key: rinchi, variant → key
//   - index: rinchi, rauxinfo → id, seq, inserted, long_key, short_key, web_key
//   - lookup: key → count, ids
//
// Results are checked with subset semantics: only the fields named under
// expect.result are compared. A step that names expect.error must fail with
// exactly that message.
//
// # Assertion Types
//
//   - trace_contains: an op was invoked with matching args
//   - trace_order: ops were invoked in the given order
//   - trace_count: an op was invoked exactly N times
//   - final_state: exactly one indexed reaction matches where, and its
//     fields match expect. where runs as a store query, so it may name any
//     column but rauxinfo.
//
// # Deterministic Testing
//
// Every scenario runs against a fresh in-memory store with a fixed run ID
// (run_id, or "test-run-default") and a deterministic clock, so traces are
// stable enough for golden comparison.
package harness
