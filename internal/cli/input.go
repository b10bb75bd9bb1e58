package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/rinchi/internal/ir"
)

// readInput reads a named file, or standard input for "-".
func readInput(cmd *cobra.Command, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", WrapExitError(ExitCommandError, "failed to read input", err)
	}
	return string(data), nil
}

// isRInChIText reports whether text starts with a RInChI header.
func isRInChIText(text string) bool {
	return strings.HasPrefix(strings.TrimLeft(text, " \t\r\n"), "RInChI=")
}

// splitRInChIText reads the first RInChI line of text and the RAuxInfo line
// right after it, if there is one. Blank lines are skipped.
func splitRInChIText(text string) (rinchi, rauxinfo string, err error) {
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if rinchi == "" {
			rinchi = line
			continue
		}
		if strings.HasPrefix(line, "RAuxInfo=") {
			rauxinfo = line
		}
		break
	}
	if err := sc.Err(); err != nil {
		return "", "", err
	}
	if rinchi == "" {
		return "", "", fmt.Errorf("input holds no RInChI")
	}
	return rinchi, rauxinfo, nil
}

// keyVariants resolves the --variant flag. With no flag the configured
// variants are used.
func keyVariants(opts *RootOptions, flag string) ([]ir.KeyVariant, error) {
	if flag != "" {
		v, err := ir.ParseKeyVariant(flag)
		if err != nil {
			return nil, err
		}
		return []ir.KeyVariant{v}, nil
	}
	return opts.config().KeyVariants()
}
