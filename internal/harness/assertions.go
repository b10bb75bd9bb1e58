package harness

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/roach88/rinchi/internal/store"
)

// AssertionError is returned when an assertion fails.
// It includes detailed context to help debug the failure.
type AssertionError struct {
	Type     string       // Assertion type for categorization
	Expected string       // Human-readable expected outcome
	Actual   string       // Human-readable actual outcome
	Trace    []TraceEvent // Full trace for debugging context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	if len(e.Trace) > 0 {
		fmt.Fprintf(&buf, "\nFull trace:\n")
		for i, event := range e.Trace {
			if event.Type == EventInvocation {
				fmt.Fprintf(&buf, "  [%d] %s %v\n", i+1, event.Op, event.Args)
			}
		}
	}
	return buf.String()
}

// assertTraceContains checks if the trace contains an invocation of the op
// with matching args (subset match).
func assertTraceContains(trace []TraceEvent, assertion Assertion) error {
	for _, event := range trace {
		if event.Type == EventInvocation && event.Op == assertion.Op && matchArgs(event.Args, assertion.Args) {
			return nil
		}
	}

	return &AssertionError{
		Type:     AssertTraceContains,
		Expected: fmt.Sprintf("op %s with args %v", assertion.Op, assertion.Args),
		Actual:   "not found in trace",
		Trace:    trace,
	}
}

// assertTraceOrder checks that ops were first invoked in the given order.
// Intervening ops are allowed.
func assertTraceOrder(trace []TraceEvent, assertion Assertion) error {
	// 1-indexed first positions; 0 means not seen.
	positions := make(map[string]int)
	for i, event := range trace {
		if event.Type != EventInvocation {
			continue
		}
		if positions[event.Op] == 0 {
			positions[event.Op] = i + 1
		}
	}

	for _, op := range assertion.Ops {
		if positions[op] == 0 {
			return &AssertionError{
				Type:     AssertTraceOrder,
				Expected: fmt.Sprintf("all ops present: %v", assertion.Ops),
				Actual:   fmt.Sprintf("missing op: %s", op),
				Trace:    trace,
			}
		}
	}

	for i := 1; i < len(assertion.Ops); i++ {
		prev := assertion.Ops[i-1]
		curr := assertion.Ops[i]
		if positions[prev] >= positions[curr] {
			return &AssertionError{
				Type:     AssertTraceOrder,
				Expected: fmt.Sprintf("ops in order: %v", assertion.Ops),
				Actual: fmt.Sprintf("%s (pos %d) should be before %s (pos %d)",
					prev, positions[prev], curr, positions[curr]),
				Trace: trace,
			}
		}
	}
	return nil
}

// assertTraceCount checks that the op was invoked exactly Count times.
func assertTraceCount(trace []TraceEvent, assertion Assertion) error {
	count := 0
	for _, event := range trace {
		if event.Type == EventInvocation && event.Op == assertion.Op {
			count++
		}
	}

	if count != assertion.Count {
		return &AssertionError{
			Type:     AssertTraceCount,
			Expected: fmt.Sprintf("%d occurrences of %s", assertion.Count, assertion.Op),
			Actual:   fmt.Sprintf("%d occurrences", count),
			Trace:    trace,
		}
	}
	return nil
}

// assertFinalState checks that exactly one indexed reaction matches Where
// and that its fields match Expect (subset match).
func assertFinalState(ctx context.Context, st *store.Store, assertion Assertion) error {
	whereDesc := formatWhereClause(assertion.Where)
	entries, err := st.Find(ctx, store.Where(assertion.Where))
	if err != nil {
		return &AssertionError{
			Type:     AssertFinalState,
			Expected: fmt.Sprintf("query reactions where %s", whereDesc),
			Actual:   fmt.Sprintf("store error: %v", err),
		}
	}

	matched := make([]map[string]any, len(entries))
	for i, e := range entries {
		matched[i] = entryFields(e)
	}

	switch len(matched) {
	case 0:
		return &AssertionError{
			Type:     AssertFinalState,
			Expected: fmt.Sprintf("reaction where %s", whereDesc),
			Actual:   "reaction not found",
		}
	case 1:
	default:
		return &AssertionError{
			Type:     AssertFinalState,
			Expected: fmt.Sprintf("exactly one reaction where %s", whereDesc),
			Actual:   fmt.Sprintf("%d reactions matched (assertion is ambiguous)", len(matched)),
		}
	}

	actual := matched[0]
	for _, key := range sortedKeys(assertion.Expect) {
		got, ok := actual[key]
		if !ok {
			return &AssertionError{
				Type:     AssertFinalState,
				Expected: fmt.Sprintf("field %q to exist", key),
				Actual:   fmt.Sprintf("field %q not present in entry: %v", key, sortedKeys(actual)),
			}
		}
		want := assertion.Expect[key]
		if !valuesEqual(got, want) {
			return &AssertionError{
				Type:     AssertFinalState,
				Expected: fmt.Sprintf("field %q = %v (type %T)", key, want, want),
				Actual:   fmt.Sprintf("field %q = %v (type %T)", key, got, got),
			}
		}
	}
	return nil
}

// formatWhereClause creates a human-readable description of where conditions.
func formatWhereClause(where map[string]any) string {
	if len(where) == 0 {
		return "(no conditions)"
	}
	keys := sortedKeys(where)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, where[k]))
	}
	return strings.Join(parts, " AND ")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// matchArgs checks if actual contains all expected entries (subset match).
// Extra keys in actual are ignored.
func matchArgs(actual, expected map[string]any) bool {
	for key, want := range expected {
		got, ok := actual[key]
		if !ok || !valuesEqual(got, want) {
			return false
		}
	}
	return true
}

// valuesEqual compares two values for equality, treating integer types as
// interchangeable.
func valuesEqual(actual, expected any) bool {
	if actual == nil || expected == nil {
		return actual == nil && expected == nil
	}

	if a, ok := asInt64(actual); ok {
		e, ok := asInt64(expected)
		return ok && a == e
	}

	as, aok := actual.([]any)
	es, eok := expected.([]any)
	if aok && eok {
		if len(as) != len(es) {
			return false
		}
		for i := range as {
			if !valuesEqual(as[i], es[i]) {
				return false
			}
		}
		return true
	}
	return reflect.DeepEqual(actual, expected)
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		return int64(n), true
	}
	return 0, false
}

// AssertionContext provides context for evaluating assertions.
type AssertionContext struct {
	Store *store.Store
	Ctx   context.Context
}

// EvaluateAssertions evaluates all assertions against the result.
// Returns a slice of error messages for failed assertions.
// The actx parameter provides store access for final_state assertions.
func EvaluateAssertions(result *Result, assertions []Assertion, actx *AssertionContext) []string {
	var errors []string

	for i, assertion := range assertions {
		var err error

		switch assertion.Type {
		case AssertTraceContains:
			err = assertTraceContains(result.Trace, assertion)
		case AssertTraceOrder:
			err = assertTraceOrder(result.Trace, assertion)
		case AssertTraceCount:
			err = assertTraceCount(result.Trace, assertion)
		case AssertFinalState:
			if actx == nil || actx.Store == nil {
				err = fmt.Errorf("assertion[%d]: final_state requires store context", i)
			} else {
				err = assertFinalState(actx.Ctx, actx.Store, assertion)
			}
		default:
			err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, assertion.Type)
		}

		if err != nil {
			errors = append(errors, err.Error())
		}
	}
	return errors
}
