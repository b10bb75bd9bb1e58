package harness

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/rinchi/internal/engine"
	"github.com/roach88/rinchi/internal/testutil"
)

func TestRun_TestdataScenarios(t *testing.T) {
	paths, err := filepath.Glob("testdata/scenarios/*.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			scenario, err := LoadScenario(path)
			require.NoError(t, err)

			result, err := Run(scenario)
			require.NoError(t, err)
			assert.True(t, result.Pass, strings.Join(result.Errors, "\n"))
		})
	}
}

func TestRun_TraceShape(t *testing.T) {
	scenario := &Scenario{
		Name:        "trace_shape",
		Description: "Two steps, one failing",
		Steps: []Step{
			{Op: OpKey, Args: map[string]any{"rinchi": testutil.MethaneRInChI, "variant": "W"}},
			{
				Op:     OpKey,
				Args:   map[string]any{"rinchi": testutil.MethaneRInChI, "variant": ""},
				Expect: &ExpectClause{Error: "Missing key selector: 'key_type' parameter must be 'L'(ong), 'S'(hort) or W(eb)."},
			},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, strings.Join(result.Errors, "\n"))

	require.Len(t, result.Trace, 4)
	for i, event := range result.Trace {
		assert.Equal(t, int64(i+1), event.Seq)
		assert.Equal(t, OpKey, event.Op)
	}
	assert.Equal(t, EventInvocation, result.Trace[0].Type)
	assert.Equal(t, EventCompletion, result.Trace[1].Type)
	assert.True(t, strings.HasPrefix(result.Trace[1].Result["key"].(string), "Web-RInChIKey="))
	assert.Empty(t, result.Trace[1].Error)
	assert.Nil(t, result.Trace[3].Result)
	assert.NotEmpty(t, result.Trace[3].Error)
}

func TestRun_UnexpectedError(t *testing.T) {
	scenario := &Scenario{
		Name:        "unexpected_error",
		Description: "A step with no expect clause fails",
		Steps: []Step{
			{Op: OpDecompose, Args: map[string]any{"rinchi": "not a rinchi"}},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "step 0 (decompose): unexpected error: Invalid or incompatible RInChI header.", result.Errors[0])
}

func TestRun_ExpectedErrorButSuccess(t *testing.T) {
	scenario := &Scenario{
		Name:        "missing_error",
		Description: "A step expected to fail succeeds",
		Steps: []Step{
			{
				Op:     OpDecompose,
				Args:   map[string]any{"rinchi": testutil.MethaneRInChI},
				Expect: &ExpectClause{Error: "boom"},
			},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	assert.Equal(t, []string{`step 0 (decompose): expected error "boom", got success`}, result.Errors)
}

func TestRun_ResultMismatch(t *testing.T) {
	scenario := &Scenario{
		Name:        "mismatch",
		Description: "Result fields are compared",
		Steps: []Step{
			{
				Op:   OpDecompose,
				Args: map[string]any{"rinchi": testutil.MethaneRInChI},
				Expect: &ExpectClause{Result: map[string]any{
					"direction": "=",
					"missing":   "x",
				}},
			},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, `step 0 (decompose): result field "direction" = +, want =`, result.Errors[0])
	assert.Equal(t, `step 0 (decompose): result has no field "missing"`, result.Errors[1])
}

func TestRun_RecomposeWithAuxInfo(t *testing.T) {
	scenario := &Scenario{
		Name:        "recompose_aux",
		Description: "AuxInfo lines attach to the InChI before them",
		Steps: []Step{
			{
				Op: OpRecompose,
				Args: map[string]any{
					"reactants": []any{testutil.InChIBromo, testutil.AuxBromo, testutil.InChIHydroxide, testutil.AuxHydroxide},
					"products":  []any{testutil.InChIEpoxide, testutil.AuxEpoxide},
				},
				Expect: &ExpectClause{Result: map[string]any{
					"rinchi":   testutil.EpoxideRInChI,
					"rauxinfo": testutil.EpoxideRAuxInfo,
				}},
			},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, strings.Join(result.Errors, "\n"))
}

func TestRun_BadArgType(t *testing.T) {
	scenario := &Scenario{
		Name:        "bad_arg",
		Description: "Non-string arg",
		Steps: []Step{
			{
				Op:     OpDecompose,
				Args:   map[string]any{"rinchi": 7},
				Expect: &ExpectClause{Error: `arg "rinchi": expected string, got int`},
			},
			{
				Op:     OpLookup,
				Args:   map[string]any{"key": "InChIKey=X"},
				Expect: &ExpectClause{Error: `unrecognized RInChIKey "InChIKey=X"`},
			},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, strings.Join(result.Errors, "\n"))
}

// truncatingEngine returns protocol text with a missing line.
type truncatingEngine struct {
	engine.Native
}

func (truncatingEngine) InChIsFromRInChI(string, string) (string, error) {
	return "D:+\n", nil
}

func TestRunWithEngine_ProtocolError(t *testing.T) {
	scenario := &Scenario{
		Name:        "protocol_error",
		Description: "A broken engine surfaces a protocol error",
		Steps: []Step{
			{
				Op:     OpDecompose,
				Args:   map[string]any{"rinchi": testutil.MethaneRInChI},
				Expect: &ExpectClause{Error: "Invalid number of lines (1) in component protocol."},
			},
		},
	}

	result, err := RunWithEngine(context.Background(), truncatingEngine{}, scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, strings.Join(result.Errors, "\n"))
}

func TestRunWithEngine_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	scenario := &Scenario{
		Name:        "cancelled",
		Description: "Cancelled before the first step",
		Steps:       []Step{{Op: OpLookup, Args: map[string]any{"key": "Long-RInChIKey=SA-FUHFF"}}},
	}
	_, err := RunWithEngine(ctx, engine.NewNative(), scenario)
	require.ErrorIs(t, err, context.Canceled)
}

func TestComponentsFromLines(t *testing.T) {
	comps := componentsFromLines([]string{
		"AuxInfo=1/0/orphan",
		testutil.InChIMethane,
		testutil.InChIHydrogen,
		"AuxInfo=1/0/N:1",
	})
	require.Len(t, comps, 2)
	assert.Equal(t, testutil.InChIMethane, comps[0].InChI)
	assert.Empty(t, comps[0].AuxInfo)
	assert.Equal(t, "AuxInfo=1/0/N:1", comps[1].AuxInfo)
}
