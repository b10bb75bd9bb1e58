package engine

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/roach88/rinchi/internal/ir"
	"github.com/roach88/rinchi/internal/protocol"
)

// Client runs the core RInChI operations against an Engine.
//
// Client holds no per-call state and is safe for concurrent use when its
// Engine is.
type Client struct {
	engine Engine
	logger *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient returns a Client over eng.
func NewClient(eng Engine, opts ...ClientOption) *Client {
	c := &Client{
		engine: eng,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Engine returns the engine the client calls.
func (c *Client) Engine() Engine {
	return c.engine
}

// Decompose splits a RInChI and its RAuxInfo into a reaction record.
//
// Protocol failures are *ir.ProtocolError; engine failures are
// *ir.EngineError.
func (c *Client) Decompose(ctx context.Context, rinchi, rauxinfo string) (ir.Reaction, error) {
	if err := ctx.Err(); err != nil {
		return ir.Reaction{}, err
	}
	text, err := c.engine.InChIsFromRInChI(rinchi, rauxinfo)
	if err != nil {
		return ir.Reaction{}, asEngineError("inchis_from_rinchi", err)
	}
	c.logger.Debug("decompose", "rinchi", rinchi, "lines", strings.Count(text, "\n"))
	return protocol.Decompose(text)
}

// Recompose builds a RInChI and RAuxInfo from reactant and product
// components. Component order is kept. hint is passed to the engine as the
// third text block unchanged.
func (c *Client) Recompose(ctx context.Context, reactants, products []ir.Component, hint string) (rinchi, rauxinfo string, err error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}
	rinchi, rauxinfo, err = c.engine.RInChIFromInChIs(InChIText(reactants), InChIText(products), hint)
	if err != nil {
		return "", "", asEngineError("rinchi_from_inchis", err)
	}
	c.logger.Debug("recompose", "reactants", len(reactants), "products", len(products), "rinchi", rinchi)
	return rinchi, rauxinfo, nil
}

// RecomposeText builds a RInChI and RAuxInfo from raw blocks of InChI and
// AuxInfo lines, one block per role. The engine reads the blocks, so its
// line-numbered errors come back unchanged.
func (c *Client) RecomposeText(ctx context.Context, reactants, products, agents string) (rinchi, rauxinfo string, err error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}
	rinchi, rauxinfo, err = c.engine.RInChIFromInChIs(reactants, products, agents)
	if err != nil {
		return "", "", asEngineError("rinchi_from_inchis", err)
	}
	c.logger.Debug("recompose", "rinchi", rinchi)
	return rinchi, rauxinfo, nil
}

// DeriveKey returns the RInChIKey of the given variant. Only the first line
// of rinchi is read.
func (c *Client) DeriveKey(ctx context.Context, rinchi string, variant ir.KeyVariant) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	key, err := c.engine.KeyFromRInChI(rinchi, string(variant))
	if err != nil {
		return "", &ir.KeyDerivationError{Variant: variant, Err: asEngineError("rinchikey_from_rinchi", err)}
	}
	c.logger.Debug("derive key", "variant", variant.String(), "key", key)
	return key, nil
}

// FromFileText reads an RXN or RD file into a RInChI and RAuxInfo.
func (c *Client) FromFileText(ctx context.Context, format FileFormat, text string, forceEquilibrium bool) (rinchi, rauxinfo string, err error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}
	rinchi, rauxinfo, err = c.engine.RInChIFromFileText(string(format), text, forceEquilibrium)
	if err != nil {
		return "", "", asEngineError("rinchi_from_file_text", err)
	}
	return rinchi, rauxinfo, nil
}

// KeyFromFileText reads an RXN or RD file and returns one of its keys.
func (c *Client) KeyFromFileText(ctx context.Context, format FileFormat, text string, variant ir.KeyVariant, forceEquilibrium bool) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	key, err := c.engine.KeyFromFileText(string(format), text, string(variant), forceEquilibrium)
	if err != nil {
		return "", &ir.KeyDerivationError{Variant: variant, Err: asEngineError("rinchikey_from_file_text", err)}
	}
	return key, nil
}

// ToFileText writes a reaction as an RXN or RD file.
func (c *Client) ToFileText(ctx context.Context, rinchi, rauxinfo string, format FileFormat) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	text, err := c.engine.FileTextFromRInChI(rinchi, rauxinfo, string(format))
	if err != nil {
		return "", asEngineError("file_text_from_rinchi", err)
	}
	return text, nil
}

// InChIText renders components as InChI text: each InChI line followed by
// its AuxInfo line when it has one.
func InChIText(comps []ir.Component) string {
	var b strings.Builder
	for _, c := range comps {
		b.WriteString(c.InChI)
		b.WriteByte('\n')
		if c.AuxInfo != "" {
			b.WriteString(c.AuxInfo)
			b.WriteByte('\n')
		}
	}
	return b.String()
}
