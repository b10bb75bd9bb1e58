package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/rinchi/internal/protocol"
)

// NewDecomposeCommand creates the decompose command.
func NewDecomposeCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decompose <file>",
		Short: "Split a RInChI into its components",
		Long: `Split a RInChI and its optional RAuxInfo into reactants, products and
agents.

The file holds the RInChI on its first line and, optionally, the RAuxInfo on
the next. Use "-" to read standard input. Text output is the component line
protocol; JSON output is the decomposed record.

Example:
  rinchi decompose reaction.rinchi
  rinchi decompose --format json - < reaction.rinchi`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecompose(opts, args[0], cmd)
		},
	}
	return cmd
}

func runDecompose(opts *RootOptions, path string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	text, err := readInput(cmd, path)
	if err != nil {
		return err
	}
	rinchi, rauxinfo, err := splitRInChIText(text)
	if err != nil {
		return f.FailWithCode(CodeInput, ExitCommandError, err)
	}
	f.VerboseLog("decomposing %s (rauxinfo: %t)", path, rauxinfo != "")

	rec, err := opts.client().Decompose(cmd.Context(), rinchi, rauxinfo)
	if err != nil {
		return f.Fail(err)
	}

	if opts.Format == "json" {
		return f.Success(rec)
	}
	fmt.Fprint(cmd.OutOrStdout(), protocol.Encode(rec))
	return nil
}
