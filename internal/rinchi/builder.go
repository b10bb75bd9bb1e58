package rinchi

import (
	"strings"

	"github.com/roach88/rinchi/internal/ir"
)

// FromInChIText builds a directional reaction from three blocks of
// component text, one per role. Each block holds InChI lines, each
// optionally followed by its AuxInfo line.
func FromInChIText(reactants, products, agents string) (*Reaction, error) {
	r := New()
	for role, text := range [ir.RoleCount]string{reactants, products, agents} {
		comps, err := ReadComponents(text)
		if err != nil {
			return nil, err
		}
		for _, c := range comps {
			r.Add(ir.Role(role), c)
		}
	}
	return r, nil
}

// ReadComponents reads one block of InChI and AuxInfo lines. A blank line
// must be the last line of the block.
func ReadComponents(text string) ([]ir.Component, error) {
	if text == "" {
		return nil, nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	var comps []ir.Component
	blank := false
	for i, line := range lines {
		lineNo := i + 1
		line = strings.TrimSuffix(line, "\r")
		if blank {
			return nil, newError("Line %d: Unexpected trailing data; expected an EOF after previous blank line.", lineNo)
		}
		switch {
		case strings.HasPrefix(line, "InChI="):
			if !strings.HasPrefix(line, ir.InChIHeader) {
				return nil, newError("Line %d: Invalid InChI string '%s'; expected a standard version 1 InChI.", lineNo, line)
			}
			comps = append(comps, ir.Component{InChI: line})
		case strings.HasPrefix(line, "AuxInfo="):
			if len(comps) == 0 {
				return nil, newError("Line %d: AuxInfo without preceeding InChI string.", lineNo)
			}
			comps[len(comps)-1].AuxInfo = line
		case line == "":
			blank = true
		default:
			return nil, newError("Line %d: Unexpected line data; expected an InChI or AuxInfo string.", lineNo)
		}
	}
	return comps, nil
}
