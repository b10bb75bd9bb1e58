package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/rinchi/internal/ir"
)

// TraceSnapshot captures the complete trace for a scenario execution.
// All fields use canonical JSON serialization for deterministic comparison.
type TraceSnapshot struct {
	ScenarioName string       `json:"scenario_name"`
	RunID        string       `json:"run_id,omitempty"`
	Trace        []TraceEvent `json:"trace"`
}

// toCanonicalMap converts a TraceSnapshot to a map[string]any, the shape
// ir.MarshalCanonical accepts.
func (s *TraceSnapshot) toCanonicalMap() map[string]any {
	traceList := make([]any, len(s.Trace))
	for i, event := range s.Trace {
		eventMap := map[string]any{
			"type": event.Type,
			"op":   event.Op,
			"seq":  event.Seq,
		}
		if event.Args != nil {
			eventMap["args"] = event.Args
		}
		if event.Result != nil {
			eventMap["result"] = event.Result
		}
		if event.Error != "" {
			eventMap["error"] = event.Error
		}
		traceList[i] = eventMap
	}

	result := map[string]any{
		"scenario_name": s.ScenarioName,
		"trace":         traceList,
	}
	if s.RunID != "" {
		result["run_id"] = s.RunID
	}
	return result
}

// SnapshotJSON returns the canonical JSON of a scenario trace.
func SnapshotJSON(name, runID string, trace []TraceEvent) ([]byte, error) {
	snapshot := TraceSnapshot{
		ScenarioName: name,
		RunID:        runID,
		Trace:        trace,
	}
	return ir.MarshalCanonical(snapshot.toCanonicalMap())
}

// RunWithGolden executes a scenario and compares the trace against a golden file.
// The golden file is stored in testdata/golden/{scenario.Name}.golden
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails.
// Test failure (via goldie) occurs if trace doesn't match golden file.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}

	traceJSON, err := SnapshotJSON(scenario.Name, scenario.RunID, result.Trace)
	if err != nil {
		return nil, err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, traceJSON)

	return result, nil
}
