package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScenario_Valid(t *testing.T) {
	path := writeScenario(t, `
name: test_scenario
description: "Test scenario for validation"
run_id: run-1
steps:
  - op: key
    args:
      rinchi: "RInChI=1.00.1S/CH4/h1H4<>H2/h1H/d+"
      variant: S
    expect:
      result: { key: "Short-RInChIKey=X" }
assertions:
  - type: trace_contains
    op: key
`)

	scenario, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, "test_scenario", scenario.Name)
	assert.Equal(t, "run-1", scenario.RunID)
	require.Len(t, scenario.Steps, 1)
	assert.Equal(t, OpKey, scenario.Steps[0].Op)
	assert.Equal(t, "S", scenario.Steps[0].Args["variant"])
	require.NotNil(t, scenario.Steps[0].Expect)
	assert.Equal(t, "Short-RInChIKey=X", scenario.Steps[0].Expect.Result["key"])
	assert.Len(t, scenario.Assertions, 1)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario("/nonexistent/scenario.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenario_Testdata(t *testing.T) {
	paths, err := filepath.Glob("testdata/scenarios/*.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		_, err := LoadScenario(path)
		assert.NoError(t, err, path)
	}
}

func TestParseScenario_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "missing name",
			yaml: `
description: "x"
steps:
  - op: lookup
    args: { key: "Long-RInChIKey=SA-FUHFF" }
`,
			wantErr: "name is required",
		},
		{
			name: "missing description",
			yaml: `
name: x
steps:
  - op: lookup
    args: { key: "Long-RInChIKey=SA-FUHFF" }
`,
			wantErr: "description is required",
		},
		{
			name: "no steps",
			yaml: `
name: x
description: "x"
steps: []
`,
			wantErr: "steps list is required",
		},
		{
			name: "unknown field",
			yaml: `
name: x
description: "x"
step:
  - op: lookup
`,
			wantErr: "failed to parse YAML",
		},
		{
			name: "missing op",
			yaml: `
name: x
description: "x"
steps:
  - args: {}
`,
			wantErr: "steps[0]: op is required",
		},
		{
			name: "unknown op",
			yaml: `
name: x
description: "x"
steps:
  - op: explode
    args: {}
`,
			wantErr: `steps[0]: unknown op "explode"`,
		},
		{
			name: "missing required arg",
			yaml: `
name: x
description: "x"
steps:
  - op: key
    args: { rinchi: "RInChI=1.00.1S/" }
`,
			wantErr: `steps[0]: key requires arg "variant"`,
		},
		{
			name: "null arg",
			yaml: `
name: x
description: "x"
steps:
  - op: decompose
    args: { rinchi: ~ }
`,
			wantErr: `steps[0]: arg "rinchi" is null`,
		},
		{
			name: "unknown assertion type",
			yaml: `
name: x
description: "x"
steps:
  - op: lookup
    args: { key: "Long-RInChIKey=SA-FUHFF" }
assertions:
  - type: trace_magic
`,
			wantErr: `assertions[0]: unknown assertion type "trace_magic"`,
		},
		{
			name: "trace_order without ops",
			yaml: `
name: x
description: "x"
steps:
  - op: lookup
    args: { key: "Long-RInChIKey=SA-FUHFF" }
assertions:
  - type: trace_order
`,
			wantErr: "ops list is required for trace_order",
		},
		{
			name: "negative trace_count",
			yaml: `
name: x
description: "x"
steps:
  - op: lookup
    args: { key: "Long-RInChIKey=SA-FUHFF" }
assertions:
  - type: trace_count
    op: lookup
    count: -1
`,
			wantErr: "count must be non-negative",
		},
		{
			name: "final_state without where",
			yaml: `
name: x
description: "x"
steps:
  - op: lookup
    args: { key: "Long-RInChIKey=SA-FUHFF" }
assertions:
  - type: final_state
    expect: { seq: 1 }
`,
			wantErr: "where is required for final_state",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
