package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/rinchi/internal/engine"
)

// RecomposeOptions holds flags for the recompose command.
type RecomposeOptions struct {
	*RootOptions
	Reactants   string
	Products    string
	Agents      string
	Equilibrium bool
}

// RecomposeResult is the JSON payload of the recompose command.
type RecomposeResult struct {
	RInChI   string `json:"rinchi"`
	RAuxInfo string `json:"rauxinfo"`
}

// NewRecomposeCommand creates the recompose command.
func NewRecomposeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RecomposeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "recompose",
		Short: "Build a RInChI from InChI files",
		Long: `Build a RInChI and RAuxInfo from files of InChIs.

Each file lists InChI lines, each optionally followed by its AuxInfo line.
Components are sorted, so input order does not matter. With --equilibrium
the direction is written as "/d=".

Example:
  rinchi recompose --reactants r.txt --products p.txt
  rinchi recompose --reactants r.txt --products p.txt --agents a.txt --equilibrium`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecompose(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Reactants, "reactants", "", "file of reactant InChIs (required)")
	cmd.Flags().StringVar(&opts.Products, "products", "", "file of product InChIs (required)")
	cmd.Flags().StringVar(&opts.Agents, "agents", "", "file of agent InChIs")
	cmd.Flags().BoolVar(&opts.Equilibrium, "equilibrium", false, "write the reaction as an equilibrium")
	_ = cmd.MarkFlagRequired("reactants")
	_ = cmd.MarkFlagRequired("products")

	return cmd
}

func runRecompose(opts *RecomposeOptions, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	var texts [3]string
	for i, path := range []string{opts.Reactants, opts.Products, opts.Agents} {
		if path == "" {
			continue
		}
		text, err := readInput(cmd, path)
		if err != nil {
			return err
		}
		texts[i] = text
	}

	out, aux, err := opts.client().RecomposeText(cmd.Context(), texts[0], texts[1], texts[2])
	if err != nil {
		return f.Fail(err)
	}
	if opts.Equilibrium || opts.config().Equilibrium {
		out = engine.WithEquilibrium(out)
	}
	opts.log().Debug("recomposed", "reactants", opts.Reactants, "products", opts.Products, "rinchi", out)

	if opts.Format == "json" {
		return f.Success(RecomposeResult{RInChI: out, RAuxInfo: aux})
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	fmt.Fprintln(cmd.OutOrStdout(), aux)
	return nil
}
