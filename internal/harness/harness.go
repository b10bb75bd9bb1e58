package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/roach88/rinchi/internal/batch"
	"github.com/roach88/rinchi/internal/engine"
	"github.com/roach88/rinchi/internal/ir"
	"github.com/roach88/rinchi/internal/protocol"
	"github.com/roach88/rinchi/internal/store"
	"github.com/roach88/rinchi/internal/testutil"
)

// Harness is the test execution engine.
// It runs scenario steps against a client with a deterministic clock and
// run ID.
type Harness struct {
	client    *engine.Client
	store     *store.Store
	processor *batch.Processor
	clock     *testutil.DeterministicClock
	logger    *slog.Logger
}

// Run executes a scenario against the native engine.
func Run(scenario *Scenario) (*Result, error) {
	return RunWithEngine(context.Background(), engine.NewNative(), scenario)
}

// RunWithEngine executes a scenario against eng.
//
// Each scenario runs in a fresh in-memory database for isolation. Step
// failures and assertion failures are reported in the Result; the returned
// error is reserved for harness failures such as a store that will not open.
func RunWithEngine(ctx context.Context, eng engine.Engine, scenario *Scenario) (*Result, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	st, err := store.Open(":memory:", store.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	client := engine.NewClient(eng, engine.WithLogger(logger))
	h := &Harness{
		client: client,
		store:  st,
		processor: batch.NewProcessor(client,
			batch.WithWriter(st),
			batch.WithWorkers(1),
			batch.WithRunIDGenerator(testutil.NewFixedRunIDGenerator(scenario.RunID)),
			batch.WithLogger(logger),
		),
		clock:  testutil.NewDeterministicClock(),
		logger: logger,
	}

	result := NewResult()
	if err := h.executeSteps(ctx, scenario.Steps, result); err != nil {
		return nil, fmt.Errorf("failed to execute steps: %w", err)
	}

	actx := &AssertionContext{
		Store: st,
		Ctx:   ctx,
	}
	for _, errMsg := range EvaluateAssertions(result, scenario.Assertions, actx) {
		result.AddError(errMsg)
	}
	return result, nil
}

// executeSteps runs every step, records the trace and checks expect
// clauses.
func (h *Harness) executeSteps(ctx context.Context, steps []Step, result *Result) error {
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}

		result.AddInvocationTrace(step.Op, step.Args, h.clock.Next())

		out, stepErr := h.execute(ctx, step)
		errMsg := ""
		if stepErr != nil {
			errMsg = stepErr.Error()
		}
		result.AddCompletionTrace(step.Op, out, errMsg, h.clock.Next())

		for _, msg := range checkExpect(i, step, out, errMsg) {
			result.AddError(msg)
		}

		h.logger.Info("step completed",
			"step", i,
			"op", step.Op,
			"error", errMsg,
		)
	}
	return nil
}

// checkExpect compares a step outcome with its expect clause.
func checkExpect(index int, step Step, out map[string]any, errMsg string) []string {
	want := step.Expect
	if want == nil {
		want = &ExpectClause{}
	}

	if errMsg != want.Error {
		if want.Error == "" {
			return []string{fmt.Sprintf("step %d (%s): unexpected error: %s", index, step.Op, errMsg)}
		}
		if errMsg == "" {
			return []string{fmt.Sprintf("step %d (%s): expected error %q, got success", index, step.Op, want.Error)}
		}
		return []string{fmt.Sprintf("step %d (%s): expected error %q, got %q", index, step.Op, want.Error, errMsg)}
	}

	var errs []string
	for _, key := range sortedKeys(want.Result) {
		got, ok := out[key]
		if !ok {
			errs = append(errs, fmt.Sprintf("step %d (%s): result has no field %q", index, step.Op, key))
			continue
		}
		if !valuesEqual(got, want.Result[key]) {
			errs = append(errs, fmt.Sprintf("step %d (%s): result field %q = %v, want %v",
				index, step.Op, key, got, want.Result[key]))
		}
	}
	return errs
}

// execute dispatches one step to the client. The returned map only holds
// values that canonical JSON accepts.
func (h *Harness) execute(ctx context.Context, step Step) (map[string]any, error) {
	args := step.Args
	switch step.Op {
	case OpDecompose:
		rinchi, rauxinfo, err := rinchiArgs(args)
		if err != nil {
			return nil, err
		}
		r, err := h.client.Decompose(ctx, rinchi, rauxinfo)
		if err != nil {
			return nil, err
		}
		return reactionResult(r), nil

	case OpDecode:
		text, err := stringArg(args, "text")
		if err != nil {
			return nil, err
		}
		r, err := protocol.Decompose(text)
		if err != nil {
			return nil, err
		}
		return reactionResult(r), nil

	case OpRecompose:
		var comps [ir.RoleCount][]ir.Component
		for role, name := range []string{"reactants", "products", "agents"} {
			lines, err := linesArg(args, name)
			if err != nil {
				return nil, err
			}
			comps[role] = componentsFromLines(lines)
		}
		rinchi, rauxinfo, err := h.client.Recompose(ctx, comps[ir.RoleReactant], comps[ir.RoleProduct],
			engine.InChIText(comps[ir.RoleAgent]))
		if err != nil {
			return nil, err
		}
		return map[string]any{"rinchi": rinchi, "rauxinfo": rauxinfo}, nil

	case OpNormalize:
		rinchi, rauxinfo, err := rinchiArgs(args)
		if err != nil {
			return nil, err
		}
		rinchi, rauxinfo, err = h.client.Normalize(ctx, rinchi, rauxinfo)
		if err != nil {
			return nil, err
		}
		return map[string]any{"rinchi": rinchi, "rauxinfo": rauxinfo}, nil

	case OpKey:
		rinchi, err := stringArg(args, "rinchi")
		if err != nil {
			return nil, err
		}
		selector, err := stringArg(args, "variant")
		if err != nil {
			return nil, err
		}
		// The selector goes to the engine unparsed so its own validation
		// is what the scenario sees.
		key, err := h.client.Engine().KeyFromRInChI(rinchi, selector)
		if err != nil {
			return nil, err
		}
		return map[string]any{"key": key}, nil

	case OpIndex:
		rinchi, rauxinfo, err := rinchiArgs(args)
		if err != nil {
			return nil, err
		}
		_, outputs, err := h.processor.Run(ctx, []batch.Input{{RInChI: rinchi, RAuxInfo: rauxinfo}})
		if err != nil {
			return nil, err
		}
		out := outputs[0]
		if out.Err != nil {
			return nil, out.Err
		}
		res := entryFields(out.Entry)
		delete(res, "rinchi")
		delete(res, "rauxinfo")
		res["inserted"] = out.Inserted
		return res, nil

	case OpLookup:
		key, err := stringArg(args, "key")
		if err != nil {
			return nil, err
		}
		variant, ok := ir.KeyVariantOf(key)
		if !ok {
			return nil, fmt.Errorf("unrecognized RInChIKey %q", key)
		}
		entries, err := h.store.LookupByKey(ctx, variant, key)
		if err != nil {
			return nil, err
		}
		ids := make([]any, len(entries))
		for i, e := range entries {
			ids[i] = e.ID
		}
		return map[string]any{"count": len(entries), "ids": ids}, nil
	}
	return nil, fmt.Errorf("unknown op %q", step.Op)
}

func reactionResult(r ir.Reaction) map[string]any {
	counts := make([]any, len(r.NoStructureCounts))
	for i, n := range r.NoStructureCounts {
		counts[i] = n
	}
	return map[string]any{
		"direction":           string(r.Direction),
		"no_structure_counts": counts,
		"reactants":           inchiList(r.Reactants),
		"products":            inchiList(r.Products),
		"agents":              inchiList(r.Agents),
	}
}

func inchiList(comps []ir.Component) []any {
	out := make([]any, len(comps))
	for i, c := range comps {
		out[i] = c.InChI
	}
	return out
}

func entryFields(e store.Entry) map[string]any {
	return map[string]any{
		"id":        e.ID,
		"seq":       int(e.Seq),
		"rinchi":    e.RInChI,
		"rauxinfo":  e.RAuxInfo,
		"long_key":  e.LongKey,
		"short_key": e.ShortKey,
		"web_key":   e.WebKey,
		"run_id":    e.RunID,
	}
}

// componentsFromLines groups InChI lines with the AuxInfo lines that follow
// them. An AuxInfo line with no InChI before it is dropped.
func componentsFromLines(lines []string) []ir.Component {
	var comps []ir.Component
	for _, line := range lines {
		if strings.HasPrefix(line, "AuxInfo=") {
			if len(comps) > 0 {
				comps[len(comps)-1].AuxInfo = line
			}
			continue
		}
		comps = append(comps, ir.Component{InChI: line})
	}
	return comps
}

func rinchiArgs(args map[string]any) (string, string, error) {
	rinchi, err := stringArg(args, "rinchi")
	if err != nil {
		return "", "", err
	}
	rauxinfo, err := optionalStringArg(args, "rauxinfo")
	if err != nil {
		return "", "", err
	}
	return rinchi, rauxinfo, nil
}

func stringArg(args map[string]any, name string) (string, error) {
	v, ok := args[name]
	if !ok {
		return "", fmt.Errorf("missing arg %q", name)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("arg %q: expected string, got %T", name, v)
	}
	return s, nil
}

func optionalStringArg(args map[string]any, name string) (string, error) {
	if _, ok := args[name]; !ok {
		return "", nil
	}
	return stringArg(args, name)
}

// linesArg reads a list of strings. A missing arg is an empty list.
func linesArg(args map[string]any, name string) ([]string, error) {
	v, ok := args[name]
	if !ok {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("arg %q: expected list, got %T", name, v)
	}
	lines := make([]string, len(list))
	for i, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("arg %q[%d]: expected string, got %T", name, i, item)
		}
		lines[i] = s
	}
	return lines, nil
}
