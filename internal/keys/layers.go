package keys

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Layer splitting errors, worded as the reference library words them.
var (
	ErrNoLayers      = errors.New("Invalid InChI string - no layers.")
	ErrNotStandard   = errors.New("Only standard InChIs are supported.")
	ErrNotVersionOne = errors.New("Only InChI version 1 supported.")
)

// IntegerError reports a layer value that should be an integer but is not.
type IntegerError struct {
	Text string
}

func (e *IntegerError) Error() string {
	return fmt.Sprintf("str2int: \"%s\" is not a valid integer.", e.Text)
}

const (
	majorsDelimiter = "!"
	layerDelimiter  = "/"
)

// Layers accumulates the major and minor layers of a series of InChIs.
// The zero value is ready to use.
type Layers struct {
	majors  string
	minors  string
	protons int
}

// Add splits one standard InChI and appends its layers. Empty strings are
// ignored.
//
// The formula layer is always major. The c, h and q layers that follow it
// are major too, a p layer adds to the proton count, and the first other
// layer switches every later layer to minor.
func (l *Layers) Add(inchi string) error {
	if inchi == "" {
		return nil
	}
	major, minor, protons, err := splitLayers(inchi)
	if err != nil {
		return err
	}
	if l.majors != "" {
		l.majors += majorsDelimiter
	}
	l.majors += major
	if l.minors != "" {
		l.minors += majorsDelimiter
	}
	l.minors += minor
	l.protons += protons
	return nil
}

// Majors returns the "!"-joined major layers.
func (l *Layers) Majors() string { return l.majors }

// Minors returns the "!"-joined minor layers.
func (l *Layers) Minors() string { return l.minors }

// Protons returns the summed protonation count.
func (l *Layers) Protons() int { return l.protons }

// ProtonChar returns the protonation flag character: 'N' for neutral,
// 'N'±n for up to 12 protons either way, and 'A' beyond that.
func (l *Layers) ProtonChar() byte {
	return protonChar(l.protons)
}

func protonChar(p int) byte {
	if p > 12 || p < -12 {
		return 'A'
	}
	return byte('N' + p)
}

// splitLayers returns the major layers, minor layers and proton count of
// a standard version 1 InChI. An empty major part is reported as "/".
func splitLayers(inchi string) (major, minor string, protons int, err error) {
	if strings.Index(inchi, layerDelimiter) != 8 {
		return "", "", 0, ErrNoLayers
	}
	if inchi[7] != 'S' {
		return "", "", 0, ErrNotStandard
	}
	if inchi[6] != '1' {
		return "", "", 0, ErrNotVersionOne
	}

	parts := strings.Split(inchi[9:], layerDelimiter)
	majors := []string{parts[0]}
	var minors []string
	inMajor := true
	for _, layer := range parts[1:] {
		if layer == "" {
			continue
		}
		if inMajor {
			switch layer[0] {
			case 'c', 'h', 'q':
				majors = append(majors, layer)
				continue
			case 'p':
				n, perr := strconv.Atoi(layer[1:])
				if perr != nil {
					return "", "", 0, &IntegerError{Text: layer[1:]}
				}
				protons += n
				continue
			}
			inMajor = false
		}
		minors = append(minors, layer)
	}

	major = strings.Join(majors, layerDelimiter)
	if major == "" {
		major = layerDelimiter
	}
	return major, strings.Join(minors, layerDelimiter), protons, nil
}
