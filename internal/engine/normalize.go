package engine

import (
	"context"
	"strings"

	"github.com/roach88/rinchi/internal/ir"
)

// Normalize rewrites a RInChI and RAuxInfo into canonical form by
// decomposing and recomposing them. An equilibrium stays an equilibrium.
func (c *Client) Normalize(ctx context.Context, rinchi, rauxinfo string) (string, string, error) {
	rec, err := c.Decompose(ctx, rinchi, rauxinfo)
	if err != nil {
		return "", "", err
	}
	outRInChI, outAux, err := c.Recompose(ctx, rec.Reactants, rec.Products, InChIText(rec.Agents))
	if err != nil {
		return "", "", err
	}
	if rec.Direction == ir.DirectionEquilibrium {
		outRInChI = WithEquilibrium(outRInChI)
	}
	return outRInChI, outAux, nil
}

// WithEquilibrium replaces the direction tag of a canonical RInChI with
// "/d=". Group order is unchanged.
func WithEquilibrium(rinchi string) string {
	for _, tag := range []string{ir.DirectionTag + "+", ir.DirectionTag + "-"} {
		if i := strings.LastIndex(rinchi, tag); i >= 0 {
			return rinchi[:i] + ir.DirectionTag + "=" + rinchi[i+len(tag):]
		}
	}
	return rinchi
}
