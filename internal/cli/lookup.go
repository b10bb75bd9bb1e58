package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/rinchi/internal/ir"
	"github.com/roach88/rinchi/internal/store"
)

// LookupOptions holds flags for the lookup command.
type LookupOptions struct {
	*RootOptions
	Database string
	AuxInfo  bool
}

// LookupResult is the JSON payload of the lookup command.
type LookupResult struct {
	Key     string        `json:"key"`
	Variant string        `json:"variant"`
	Entries []store.Entry `json:"entries"`
}

// NewLookupCommand creates the lookup command.
func NewLookupCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LookupOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "lookup <key>",
		Short: "Find indexed reactions by RInChIKey",
		Long: `Find the reactions in an index whose Long, Short or Web RInChIKey equals
the given key. The key variant is read from its header.

Exit codes:
  0 - At least one reaction found
  1 - No reaction found
  2 - Command error (unknown key format, database not found, etc.)

Example:
  rinchi lookup --db reactions.db "Long-RInChIKey=SA-FUHFF-..."
  rinchi lookup --db reactions.db --format json "$(rinchi key --variant S reaction.rinchi)"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (default: config database)")
	cmd.Flags().BoolVar(&opts.AuxInfo, "auxinfo", false, "print the RAuxInfo of each match (text output)")

	return cmd
}

func runLookup(opts *LookupOptions, key string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)
	logger := opts.log()

	variant, ok := ir.KeyVariantOf(key)
	if !ok {
		return f.FailWithCode(CodeKey, ExitCommandError, fmt.Errorf("unrecognized RInChIKey %q", key))
	}

	dbPath := opts.Database
	if dbPath == "" {
		dbPath = opts.config().Database
	}
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return NewExitError(ExitCommandError, fmt.Sprintf("database not found: %s", dbPath))
	}

	st, err := store.Open(dbPath, store.WithLogger(logger))
	if err != nil {
		return f.FailWithCode(CodeStore, ExitCommandError, err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			logger.Error("error closing database", "error", closeErr)
		}
	}()

	entries, err := st.LookupByKey(cmd.Context(), variant, key)
	if err != nil {
		return f.FailWithCode(CodeStore, ExitCommandError, err)
	}
	f.VerboseLog("%d match(es) for %s key", len(entries), variant)

	if opts.Format == "json" {
		if err := f.Success(LookupResult{Key: key, Variant: variant.String(), Entries: entries}); err != nil {
			return err
		}
	} else {
		w := cmd.OutOrStdout()
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%d\t%s\n", e.ID, e.Seq, e.RInChI)
			if opts.AuxInfo && e.RAuxInfo != "" {
				fmt.Fprintf(w, "\t\t%s\n", e.RAuxInfo)
			}
		}
	}

	if len(entries) == 0 {
		if opts.Format != "json" {
			fmt.Fprintln(cmd.OutOrStdout(), "No reactions found.")
		}
		return &ExitError{Code: ExitFailure, Message: "no reactions found", Reported: true}
	}
	return nil
}
