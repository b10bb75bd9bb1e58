package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/rinchi/internal/engine"
)

// KeyOptions holds flags for the key command.
type KeyOptions struct {
	*RootOptions
	Variant     string
	Equilibrium bool
}

// KeyResult is the JSON payload of the key command, keyed by variant name
// ("Long", "Short", "Web").
type KeyResult map[string]string

// NewKeyCommand creates the key command.
func NewKeyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &KeyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "key <file>",
		Short: "Derive RInChIKeys",
		Long: `Derive RInChIKeys from a RInChI file, or from an RXN or RD file.

Without --variant, the variants listed in the config's keys field are
derived (all three by default), one per line.

Example:
  rinchi key reaction.rinchi
  rinchi key --variant S reaction.rinchi
  rinchi key --variant web reaction.rxn`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKey(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Variant, "variant", "", "key variant: L(ong), S(hort) or W(eb)")
	cmd.Flags().BoolVar(&opts.Equilibrium, "equilibrium", false, "treat RXN/RD input as an equilibrium")

	return cmd
}

func runKey(opts *KeyOptions, path string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	variants, err := keyVariants(opts.RootOptions, opts.Variant)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --variant", err)
	}

	text, err := readInput(cmd, path)
	if err != nil {
		return err
	}

	client := opts.client()
	ctx := cmd.Context()
	result := make(KeyResult, len(variants))
	keys := make([]string, 0, len(variants))

	if isRInChIText(text) {
		rinchi, _, err := splitRInChIText(text)
		if err != nil {
			return f.FailWithCode(CodeInput, ExitCommandError, err)
		}
		for _, v := range variants {
			key, err := client.DeriveKey(ctx, rinchi, v)
			if err != nil {
				return f.Fail(err)
			}
			result[v.String()] = key
			keys = append(keys, key)
		}
	} else {
		format := engine.DetectFormat(text)
		f.VerboseLog("reading %s as %s", path, format)
		for _, v := range variants {
			key, err := client.KeyFromFileText(ctx, format, text, v, opts.Equilibrium || opts.config().Equilibrium)
			if err != nil {
				return f.Fail(err)
			}
			result[v.String()] = key
			keys = append(keys, key)
		}
	}

	if opts.Format == "json" {
		return f.Success(result)
	}
	for _, key := range keys {
		fmt.Fprintln(cmd.OutOrStdout(), key)
	}
	return nil
}
