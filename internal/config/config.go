// Package config loads toolkit settings from CUE files.
//
// A config file is a plain CUE struct. It is unified with a built-in
// closed schema, so unknown fields, wrong types and out-of-range values are
// reported with their file position. Omitted fields take schema defaults.
//
//	database: "reactions.db"
//	workers:  8
//	keys: ["L", "W"]
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/load"
	"cuelang.org/go/cue/token"

	"github.com/roach88/rinchi/internal/ir"
)

//go:embed schema.cue
var schemaCUE string

// Config is the resolved toolkit configuration.
type Config struct {
	Database        string   `json:"database"`
	Workers         int      `json:"workers"`
	Keys            []string `json:"keys"`
	CompressAuxInfo bool     `json:"compress_auxinfo"`
	Equilibrium     bool     `json:"equilibrium"`

	// Version and License are not read from files. They are filled in from
	// the ir constants so callers can report them without globals.
	Version string `json:"-"`
	License string `json:"-"`
}

// Error codes for configuration failures.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeLoadFailed  = "E004" // CUE load failed
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodeBuildFailed = "E006" // CUE build failed
	ErrCodeInvalid     = "E301" // Value does not match the schema
)

// LoadError represents an error that occurred while loading configuration.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Workers:         4,
		Keys:            []string{"L", "S", "W"},
		CompressAuxInfo: true,
		Version:         ir.RInChIVersion,
		License:         ir.License,
	}
}

// Load reads a CUE config file. An empty path returns Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return Config{}, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("config file not found: %s", path)}
	}
	if err != nil {
		return Config{}, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing config file: %v", err)}
	}
	if info.IsDir() {
		return Config{}, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("config path is a directory: %s", path)}
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return Config{}, &LoadError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("building schema: %v", err)}
	}

	instances := load.Instances([]string{filepath.Base(path)}, &load.Config{Dir: filepath.Dir(path)})
	if len(instances) == 0 {
		return Config{}, &LoadError{Code: ErrCodeLoadFailed, Message: "no CUE instances loaded"}
	}
	inst := instances[0]
	if inst.Err != nil {
		return Config{}, cueLoadError(ErrCodeLoadFailed, inst.Err)
	}

	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return Config{}, cueLoadError(ErrCodeBuildFailed, err)
	}

	unified := schema.LookupPath(cue.ParsePath("#Config")).Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return Config{}, cueLoadError(ErrCodeInvalid, err)
	}

	cfg := Default()
	if err := unified.Decode(&cfg); err != nil {
		return Config{}, cueLoadError(ErrCodeInvalid, err)
	}
	return cfg, nil
}

// KeyVariants returns the configured key variants.
func (c Config) KeyVariants() ([]ir.KeyVariant, error) {
	out := make([]ir.KeyVariant, 0, len(c.Keys))
	for _, k := range c.Keys {
		v, err := ir.ParseKeyVariant(k)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// cueLoadError converts the first CUE error to a LoadError with its
// position.
func cueLoadError(code string, err error) *LoadError {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return &LoadError{Code: code, Message: err.Error()}
	}
	first := errs[0]
	le := &LoadError{Code: code, Message: first.Error()}
	if positions := cueerrors.Positions(first); len(positions) > 0 {
		le.Pos = positions[0]
	}
	return le
}
