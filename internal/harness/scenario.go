package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is one conformance scenario: a list of client operations with
// expected outcomes, then assertions over the trace and the store.
type Scenario struct {
	// Name uniquely identifies this scenario. It also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// RunID fixes the batch run ID used by index steps.
	// If empty, defaults to "test-run-default".
	RunID string `yaml:"run_id,omitempty"`

	// Steps run in order. A failing step does not stop the scenario.
	Steps []Step `yaml:"steps"`

	// Assertions validate the final trace and store contents.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Step invokes one client operation.
type Step struct {
	// Op is one of the Op* constants.
	Op string `yaml:"op"`

	// Args holds the operation arguments. Required keys depend on Op.
	Args map[string]any `yaml:"args"`

	// Expect specifies the expected outcome. If nil, the step must succeed
	// and its result is not checked.
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// ExpectClause specifies the expected outcome of a step.
type ExpectClause struct {
	// Error is the exact expected error message. Empty means success.
	Error string `yaml:"error,omitempty"`

	// Result contains expected result fields. Subset match.
	Result map[string]any `yaml:"result,omitempty"`
}

// Assertion validates trace or final state.
type Assertion struct {
	// Type is one of the Assert* constants.
	Type string `yaml:"type"`

	// Op is the operation name (trace_contains, trace_count).
	Op string `yaml:"op,omitempty"`

	// Args are the expected arguments (trace_contains). Subset match.
	Args map[string]any `yaml:"args,omitempty"`

	// Count is the expected number of invocations (trace_count).
	Count int `yaml:"count,omitempty"`

	// Ops is the expected invocation order (trace_order).
	Ops []string `yaml:"ops,omitempty"`

	// Where selects indexed reactions by field (final_state).
	Where map[string]any `yaml:"where,omitempty"`

	// Expect contains expected field values of the selected reaction
	// (final_state). Subset match.
	Expect map[string]any `yaml:"expect,omitempty"`
}

// Operation names.
const (
	OpDecompose = "decompose"
	OpDecode    = "decode"
	OpRecompose = "recompose"
	OpNormalize = "normalize"
	OpKey       = "key"
	OpIndex     = "index"
	OpLookup    = "lookup"
)

// Assertion type constants.
const (
	AssertTraceContains = "trace_contains"
	AssertTraceOrder    = "trace_order"
	AssertTraceCount    = "trace_count"
	AssertFinalState    = "final_state"
)

// requiredArgs lists the arguments each operation cannot run without.
var requiredArgs = map[string][]string{
	OpDecompose: {"rinchi"},
	OpDecode:    {"text"},
	OpRecompose: {},
	OpNormalize: {"rinchi"},
	OpKey:       {"rinchi", "variant"},
	OpIndex:     {"rinchi"},
	OpLookup:    {"key"},
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	// Strict fields catch typos like "assertion:" vs "assertions:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		required, ok := requiredArgs[step.Op]
		if !ok {
			if step.Op == "" {
				return fmt.Errorf("steps[%d]: op is required", i)
			}
			return fmt.Errorf("steps[%d]: unknown op %q", i, step.Op)
		}
		for _, name := range required {
			if _, ok := step.Args[name]; !ok {
				return fmt.Errorf("steps[%d]: %s requires arg %q", i, step.Op, name)
			}
		}
		for name, v := range step.Args {
			if v == nil {
				return fmt.Errorf("steps[%d]: arg %q is null", i, name)
			}
		}
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}
	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertTraceContains:
		if a.Op == "" {
			return fmt.Errorf("assertions[%d]: op is required for trace_contains", index)
		}
	case AssertTraceOrder:
		if len(a.Ops) == 0 {
			return fmt.Errorf("assertions[%d]: ops list is required for trace_order", index)
		}
	case AssertTraceCount:
		if a.Op == "" {
			return fmt.Errorf("assertions[%d]: op is required for trace_count", index)
		}
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for trace_count", index)
		}
	case AssertFinalState:
		if len(a.Where) == 0 {
			return fmt.Errorf("assertions[%d]: where is required for final_state", index)
		}
		if len(a.Expect) == 0 {
			return fmt.Errorf("assertions[%d]: expect is required for final_state", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}
