package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/rinchi/internal/engine"
)

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	*RootOptions
	RXN         bool
	RD          bool
	Equilibrium bool
}

// ConvertResult is the JSON payload of the convert command. Reading a
// reaction file fills RInChI, RAuxInfo and Keys; writing one fills Format
// and FileText.
type ConvertResult struct {
	RInChI   string            `json:"rinchi,omitempty"`
	RAuxInfo string            `json:"rauxinfo,omitempty"`
	Keys     map[string]string `json:"keys,omitempty"`
	Format   string            `json:"format,omitempty"`
	FileText string            `json:"file_text,omitempty"`
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert between RInChI and RXN/RD files",
		Long: `Convert a reaction file.

The input type is detected from its first line: "$RXN" is an RXN file, a
RInChI header is a RInChI file, anything else is an RD file.

A RXN or RD file is converted to a RInChI, its RAuxInfo and the configured
keys. A RInChI file is written as an RXN file, or as an RD file when it has
agents; --rxn and --rd force the output format.

Example:
  rinchi convert reaction.rxn
  rinchi convert --rd reaction.rinchi`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.RXN, "rxn", false, "write an RXN file")
	cmd.Flags().BoolVar(&opts.RD, "rd", false, "write an RD file")
	cmd.Flags().BoolVar(&opts.Equilibrium, "equilibrium", false, "treat RXN/RD input as an equilibrium")
	cmd.MarkFlagsMutuallyExclusive("rxn", "rd")

	return cmd
}

func runConvert(opts *ConvertOptions, path string, cmd *cobra.Command) error {
	text, err := readInput(cmd, path)
	if err != nil {
		return err
	}
	if isRInChIText(text) {
		return convertToFile(opts, text, cmd)
	}
	return convertFromFile(opts, text, cmd)
}

// convertToFile writes a RInChI file as RXN or RD.
func convertToFile(opts *ConvertOptions, text string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)
	client := opts.client()
	ctx := cmd.Context()

	rinchi, rauxinfo, err := splitRInChIText(text)
	if err != nil {
		return f.FailWithCode(CodeInput, ExitCommandError, err)
	}

	var format engine.FileFormat
	switch {
	case opts.RXN:
		format = engine.FormatRXN
	case opts.RD:
		format = engine.FormatRD
	default:
		rec, err := client.Decompose(ctx, rinchi, rauxinfo)
		if err != nil {
			return f.Fail(err)
		}
		format = engine.FormatRXN
		if len(rec.Agents) > 0 {
			format = engine.FormatRD
		}
	}
	f.VerboseLog("writing %s", format)

	out, err := client.ToFileText(ctx, rinchi, rauxinfo, format)
	if err != nil {
		return f.Fail(err)
	}

	if opts.Format == "json" {
		return f.Success(ConvertResult{Format: string(format), FileText: out})
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// convertFromFile reads an RXN or RD file into a RInChI and its keys.
func convertFromFile(opts *ConvertOptions, text string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)
	client := opts.client()
	ctx := cmd.Context()

	variants, err := opts.config().KeyVariants()
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid config keys", err)
	}

	format := engine.DetectFormat(text)
	f.VerboseLog("reading %s", format)
	rinchi, rauxinfo, err := client.FromFileText(ctx, format, text, opts.Equilibrium || opts.config().Equilibrium)
	if err != nil {
		return f.Fail(err)
	}

	result := ConvertResult{RInChI: rinchi, RAuxInfo: rauxinfo, Keys: make(map[string]string, len(variants))}
	keys := make([]string, 0, len(variants))
	for _, v := range variants {
		key, err := client.DeriveKey(ctx, rinchi, v)
		if err != nil {
			return f.Fail(err)
		}
		result.Keys[v.String()] = key
		keys = append(keys, key)
	}

	if opts.Format == "json" {
		return f.Success(result)
	}
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, rinchi)
	fmt.Fprintln(w, rauxinfo)
	for _, key := range keys {
		fmt.Fprintln(w, key)
	}
	return nil
}
