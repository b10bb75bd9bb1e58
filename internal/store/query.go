package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Predicate filters indexed reactions. It is compiled to a parameterized
// WHERE clause; values are never interpolated into SQL.
type Predicate interface {
	predicate()
}

// Equals matches rows whose column equals Value.
type Equals struct {
	Field string
	Value any
}

// And matches rows that satisfy every predicate. An empty And matches all
// rows.
type And []Predicate

func (Equals) predicate() {}
func (And) predicate()    {}

// filterColumns lists the columns a predicate may name. RAuxInfo is stored
// as an opaque, possibly compressed blob and cannot be filtered.
var filterColumns = map[string]bool{
	"id":        true,
	"seq":       true,
	"rinchi":    true,
	"long_key":  true,
	"short_key": true,
	"web_key":   true,
	"run_id":    true,
}

// Where builds an And of Equals predicates, one per field, in field order.
func Where(fields map[string]any) Predicate {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	and := make(And, 0, len(names))
	for _, name := range names {
		and = append(and, Equals{Field: name, Value: fields[name]})
	}
	return and
}

// Find returns the entries matching p, ordered by seq ASC, id ASC.
// Returns an empty slice (not nil) when nothing matches.
func (s *Store) Find(ctx context.Context, p Predicate) ([]Entry, error) {
	where, params, err := compilePredicate(p)
	if err != nil {
		return nil, fmt.Errorf("find: %w", err)
	}
	return s.queryEntries(ctx, "find", `
		SELECT `+entryColumns+`
		FROM reactions
		WHERE `+where+`
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`, params...)
}

// compilePredicate returns the WHERE clause fragment and its parameters.
func compilePredicate(p Predicate) (string, []any, error) {
	switch pred := p.(type) {
	case nil:
		return "1 = 1", nil, nil
	case Equals:
		return compileEquals(pred)
	case And:
		if len(pred) == 0 {
			return "1 = 1", nil, nil
		}
		parts := make([]string, 0, len(pred))
		var params []any
		for _, sub := range pred {
			sql, subParams, err := compilePredicate(sub)
			if err != nil {
				return "", nil, err
			}
			parts = append(parts, sql)
			params = append(params, subParams...)
		}
		return strings.Join(parts, " AND "), params, nil
	default:
		return "", nil, fmt.Errorf("unsupported predicate type: %T", p)
	}
}

func compileEquals(eq Equals) (string, []any, error) {
	if !filterColumns[eq.Field] {
		return "", nil, fmt.Errorf("invalid field %q in where clause", eq.Field)
	}
	param, err := filterParam(eq.Field, eq.Value)
	if err != nil {
		return "", nil, err
	}
	return eq.Field + " = ?", []any{param}, nil
}

// filterParam checks that v has the column's type. seq is an integer
// column; every other filterable column is text.
func filterParam(field string, v any) (any, error) {
	if field == "seq" {
		switch n := v.(type) {
		case int:
			return int64(n), nil
		case int64:
			return n, nil
		}
		return nil, fmt.Errorf("field %q: expected integer, got %T", field, v)
	}
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("field %q: expected string, got %T", field, v)
	}
	return s, nil
}
