package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/rinchi/internal/batch"
	"github.com/roach88/rinchi/internal/store"
)

// IndexOptions holds flags for the index command.
type IndexOptions struct {
	*RootOptions
	Database string
	Workers  int

	// RunIDGenerator overrides the UUIDv7 run IDs (for testing).
	RunIDGenerator batch.RunIDGenerator
}

// IndexItem is the outcome for one input reaction.
type IndexItem struct {
	RInChI   string `json:"rinchi"`
	ID       string `json:"id,omitempty"`
	Seq      int64  `json:"seq,omitempty"`
	LongKey  string `json:"long_key,omitempty"`
	ShortKey string `json:"short_key,omitempty"`
	WebKey   string `json:"web_key,omitempty"`
	Inserted bool   `json:"inserted"`
	Error    string `json:"error,omitempty"`
}

// IndexResult is the JSON payload of the index command.
type IndexResult struct {
	RunID    string      `json:"run_id"`
	Items    []IndexItem `json:"items"`
	Inserted int         `json:"inserted"`
	Existing int         `json:"existing"`
	Failed   int         `json:"failed"`
}

// NewIndexCommand creates the index command.
func NewIndexCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &IndexOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "index <file>...",
		Short: "Derive keys for RInChIs and store them",
		Long: `Normalize RInChIs, derive their keys and store them in a SQLite index.

Each file lists RInChI lines, each optionally followed by its RAuxInfo line.
Reactions already in the index are left unchanged. A reaction that cannot
be read is reported and skipped; the exit code is 1 if any was skipped.

Example:
  rinchi index --db reactions.db batch1.rinchi batch2.rinchi
  rinchi index --db reactions.db --workers 8 --format json big.rinchi`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndex(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (default: config database)")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "concurrent derivations (default: config workers)")

	return cmd
}

func runIndex(opts *IndexOptions, paths []string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)
	cfg := opts.config()
	logger := opts.log()

	dbPath := opts.Database
	if dbPath == "" {
		dbPath = cfg.Database
	}
	if dbPath == "" {
		return NewExitError(ExitCommandError, "no database: use --db or set database in the config")
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = cfg.Workers
	}
	variants, err := cfg.KeyVariants()
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid config keys", err)
	}

	var inputs []batch.Input
	for _, path := range paths {
		text, err := readInput(cmd, path)
		if err != nil {
			return err
		}
		found, skipped := parseIndexInputs(text)
		if skipped > 0 {
			logger.Warn("skipped lines without a RInChI", "file", path, "lines", skipped)
		}
		inputs = append(inputs, found...)
	}

	st, err := store.Open(dbPath, store.WithCompression(cfg.CompressAuxInfo), store.WithLogger(logger))
	if err != nil {
		return f.FailWithCode(CodeStore, ExitCommandError, err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			logger.Error("error closing database", "error", closeErr)
		}
	}()

	ctx := cmd.Context()
	maxSeq, err := st.MaxSeq(ctx)
	if err != nil {
		return f.FailWithCode(CodeStore, ExitCommandError, err)
	}

	popts := []batch.Option{
		batch.WithWriter(st),
		batch.WithWorkers(workers),
		batch.WithKeys(variants...),
		batch.WithSequencer(batch.NewClockAt(maxSeq)),
		batch.WithLogger(logger),
	}
	if opts.RunIDGenerator != nil {
		popts = append(popts, batch.WithRunIDGenerator(opts.RunIDGenerator))
	}

	runID, outputs, err := batch.NewProcessor(opts.client(), popts...).Run(ctx, inputs)
	if err != nil {
		return f.FailWithCode(CodeStore, ExitFailure, err)
	}

	result := IndexResult{RunID: runID, Items: make([]IndexItem, len(outputs))}
	for i, out := range outputs {
		item := IndexItem{RInChI: out.Input.RInChI}
		switch {
		case out.Err != nil:
			item.Error = out.Err.Error()
			result.Failed++
		default:
			item.ID = out.Entry.ID
			item.Seq = out.Entry.Seq
			item.LongKey = out.Entry.LongKey
			item.ShortKey = out.Entry.ShortKey
			item.WebKey = out.Entry.WebKey
			item.Inserted = out.Inserted
			if out.Inserted {
				result.Inserted++
			} else {
				result.Existing++
			}
		}
		result.Items[i] = item
	}

	if opts.Format == "json" {
		resp := CLIResponse{Status: "ok", Data: result, RunID: runID}
		if result.Failed > 0 {
			resp.Status = "error"
			resp.Error = &CLIError{Code: CodeEngine, Message: fmt.Sprintf("%d reaction(s) failed", result.Failed)}
		}
		if err := encodeJSON(cmd.OutOrStdout(), resp); err != nil {
			return err
		}
	} else {
		w := cmd.OutOrStdout()
		for _, item := range result.Items {
			switch {
			case item.Error != "":
				fmt.Fprintf(w, "✗ %s\n  %s\n", item.RInChI, item.Error)
			case item.Inserted:
				fmt.Fprintf(w, "+ %s\n", item.LongKey)
			default:
				fmt.Fprintf(w, "= %s\n", item.LongKey)
			}
		}
		fmt.Fprintf(w, "\nRun %s: %d inserted, %d existing, %d failed\n",
			runID, result.Inserted, result.Existing, result.Failed)
	}

	if result.Failed > 0 {
		return &ExitError{Code: ExitFailure, Message: fmt.Sprintf("%d reaction(s) failed", result.Failed), Reported: true}
	}
	return nil
}

// parseIndexInputs reads RInChI lines, each optionally followed by its
// RAuxInfo line. It returns the inputs and the number of other non-blank
// lines.
func parseIndexInputs(text string) ([]batch.Input, int) {
	var (
		inputs  []batch.Input
		skipped int
	)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
		case strings.HasPrefix(line, "RInChI="):
			inputs = append(inputs, batch.Input{RInChI: line})
		case strings.HasPrefix(line, "RAuxInfo=") && len(inputs) > 0 && inputs[len(inputs)-1].RAuxInfo == "":
			inputs[len(inputs)-1].RAuxInfo = line
		default:
			skipped++
		}
	}
	return inputs, skipped
}
