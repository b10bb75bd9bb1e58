package batch

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/roach88/rinchi/internal/engine"
	"github.com/roach88/rinchi/internal/ir"
	"github.com/roach88/rinchi/internal/store"
)

// DefaultWorkers is the worker count used when none is configured.
const DefaultWorkers = 4

// Input is one reaction to index.
type Input struct {
	RInChI   string `json:"rinchi"`
	RAuxInfo string `json:"rauxinfo"`
}

// Output is the result for the input at the same index.
type Output struct {
	Input Input       `json:"input"`
	Entry store.Entry `json:"entry"`

	// Inserted is false when the store already held the reaction or no
	// store is attached.
	Inserted bool  `json:"inserted"`
	Err      error `json:"-"`
}

// Writer receives finished entries. *store.Store implements it.
type Writer interface {
	WriteReaction(ctx context.Context, e store.Entry) (bool, error)
}

// Sequencer hands out seq numbers. *Clock implements it.
type Sequencer interface {
	Next() int64
}

// Processor derives and stores keys for batches of reactions.
type Processor struct {
	client   *engine.Client
	writer   Writer
	workers  int
	variants []ir.KeyVariant
	runIDs   RunIDGenerator
	seq      Sequencer
	logger   *slog.Logger
}

// Option configures a Processor.
type Option func(*Processor)

// WithWorkers sets the number of concurrent derivations. Values below 1
// fall back to DefaultWorkers.
func WithWorkers(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithWriter attaches a store. Without one, Run only derives.
func WithWriter(w Writer) Option {
	return func(p *Processor) {
		p.writer = w
	}
}

// WithKeys limits which keys are derived. Default: all three.
func WithKeys(variants ...ir.KeyVariant) Option {
	return func(p *Processor) {
		if len(variants) > 0 {
			p.variants = variants
		}
	}
}

// WithRunIDGenerator replaces the UUIDv7 run ID generator.
func WithRunIDGenerator(g RunIDGenerator) Option {
	return func(p *Processor) {
		p.runIDs = g
	}
}

// WithSequencer sets where seq numbers come from. Default: a Clock at 0.
func WithSequencer(s Sequencer) Option {
	return func(p *Processor) {
		p.seq = s
	}
}

// WithLogger sets the processor logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Processor) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewProcessor returns a Processor over client.
func NewProcessor(client *engine.Client, opts ...Option) *Processor {
	p := &Processor{
		client:   client,
		workers:  DefaultWorkers,
		variants: ir.KeyVariants,
		runIDs:   UUIDv7Generator{},
		seq:      NewClock(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run processes inputs and returns the run ID and one Output per input, in
// input order.
//
// Per-input failures are reported in Output.Err. The returned error is
// non-nil only when ctx is cancelled or a store write fails.
func (p *Processor) Run(ctx context.Context, inputs []Input) (string, []Output, error) {
	runID := p.runIDs.Generate()
	p.logger.Info("batch run starting", "run_id", runID, "inputs", len(inputs), "workers", p.workers)

	outputs := make([]Output, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outputs[i] = p.derive(gctx, in)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return runID, nil, fmt.Errorf("batch run %s: %w", runID, err)
	}
	// errgroup only sees worker errors; a cancelled parent with all
	// workers finished still aborts.
	if err := ctx.Err(); err != nil {
		return runID, nil, fmt.Errorf("batch run %s: %w", runID, err)
	}

	failed := 0
	for i := range outputs {
		out := &outputs[i]
		if out.Err != nil {
			failed++
			p.logger.Warn("reaction skipped", "index", i, "rinchi", out.Input.RInChI, "error", out.Err)
			continue
		}
		out.Entry.RunID = runID
		out.Entry.Seq = p.seq.Next()
		if p.writer == nil {
			continue
		}
		inserted, err := p.writer.WriteReaction(ctx, out.Entry)
		if err != nil {
			return runID, nil, fmt.Errorf("batch run %s: %w", runID, err)
		}
		out.Inserted = inserted
	}

	p.logger.Info("batch run finished", "run_id", runID, "ok", len(outputs)-failed, "failed", failed)
	return runID, outputs, nil
}

func (p *Processor) derive(ctx context.Context, in Input) Output {
	out := Output{Input: in}

	rinchi, rauxinfo, err := p.client.Normalize(ctx, in.RInChI, in.RAuxInfo)
	if err != nil {
		out.Err = err
		return out
	}
	id, err := ir.ReactionID(rinchi, rauxinfo)
	if err != nil {
		out.Err = err
		return out
	}
	out.Entry = store.Entry{ID: id, RInChI: rinchi, RAuxInfo: rauxinfo}

	for _, v := range p.variants {
		key, err := p.client.DeriveKey(ctx, rinchi, v)
		if err != nil {
			out.Err = err
			return out
		}
		out.Entry.SetKey(v, key)
	}
	p.logger.Debug("reaction derived", "rinchi", rinchi, "id", id)
	return out
}
