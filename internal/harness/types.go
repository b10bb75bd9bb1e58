package harness

// TraceEvent is one entry of a scenario trace: either the invocation of an
// operation or its completion.
type TraceEvent struct {
	Type   string         `json:"type"` // "invocation" or "completion"
	Op     string         `json:"op,omitempty"`
	Args   map[string]any `json:"args,omitempty"`
	Result map[string]any `json:"result,omitempty"`
	Error  string         `json:"error,omitempty"`
	Seq    int64          `json:"seq"`
}

// Trace event types.
const (
	EventInvocation = "invocation"
	EventCompletion = "completion"
)

// Result is the outcome of a test scenario execution.
type Result struct {
	// Pass is true if every step matched its expectation and every
	// assertion held.
	Pass bool `json:"pass"`

	// Trace contains all invocations and completions in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains validation error messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddInvocationTrace adds an invocation to the trace.
func (r *Result) AddInvocationTrace(op string, args map[string]any, seq int64) {
	r.Trace = append(r.Trace, TraceEvent{
		Type: EventInvocation,
		Op:   op,
		Args: args,
		Seq:  seq,
	})
}

// AddCompletionTrace adds a completion to the trace. errMsg is empty for a
// successful step.
func (r *Result) AddCompletionTrace(op string, result map[string]any, errMsg string, seq int64) {
	r.Trace = append(r.Trace, TraceEvent{
		Type:   EventCompletion,
		Op:     op,
		Result: result,
		Error:  errMsg,
		Seq:    seq,
	})
}
