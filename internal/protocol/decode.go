package protocol

import (
	"strconv"
	"strings"

	"github.com/roach88/rinchi/internal/ir"
)

const (
	directionPrefix   = "D:"
	noStructurePrefix = "N:"
	tagLen            = 2
	inchiPrefix       = "InChI"
	auxInfoPrefix     = "AuxInfo"
)

// Decompose parses a line-protocol document into a reaction record.
//
// One trailing empty line is tolerated. Every other violation returns an
// *ir.ProtocolError naming the zero-based line and the offending text.
// Component order is preserved.
func Decompose(text string) (ir.Reaction, error) {
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	if len(lines)%2 != 0 {
		return ir.Reaction{}, ir.NewProtocolError(ir.ErrMalformedLineCount, len(lines), "")
	}

	if len(lines) == 0 || !strings.HasPrefix(lines[0], directionPrefix) {
		return ir.Reaction{}, ir.NewProtocolError(ir.ErrMissingDirectionTag, 0, lineAt(lines, 0))
	}
	rxn := ir.Reaction{
		Direction: ir.Direction(lines[0][len(directionPrefix):]),
		Reactants: []ir.Component{},
		Products:  []ir.Component{},
		Agents:    []ir.Component{},
	}

	if !strings.HasPrefix(lines[1], noStructurePrefix) {
		return ir.Reaction{}, ir.NewProtocolError(ir.ErrMissingNoStructureTag, 1, lines[1])
	}
	counts, err := parseCounts(lines[1][len(noStructurePrefix):])
	if err != nil {
		return ir.Reaction{}, err
	}
	rxn.NoStructureCounts = counts

	for i := 2; i < len(lines); i += 2 {
		comp, role, err := parsePair(i, lines[i], lines[i+1])
		if err != nil {
			return ir.Reaction{}, err
		}
		rxn.Append(role, comp)
	}

	return rxn, nil
}

func parseCounts(s string) ([]int, error) {
	tokens := strings.Split(s, ",")
	counts := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil || n < 0 {
			return nil, ir.NewProtocolError(ir.ErrInvalidCountToken, 1, tok)
		}
		counts = append(counts, n)
	}
	return counts, nil
}

// parsePair decodes the component whose InChI line sits at index line.
func parsePair(line int, inchiLine, auxLine string) (ir.Component, ir.Role, error) {
	tag := cut(inchiLine, tagLen)
	role, ok := ir.RoleForTag(tag)
	if !ok {
		return ir.Component{}, 0, ir.NewProtocolError(ir.ErrUnknownRoleTag, line, tag)
	}

	inchi := rest(inchiLine, tagLen)
	if !strings.HasPrefix(inchi, inchiPrefix) {
		return ir.Component{}, 0, ir.NewProtocolError(ir.ErrInvalidInChIPrefix, line, inchi)
	}

	aux := rest(auxLine, tagLen)
	if aux != "" && !strings.HasPrefix(aux, auxInfoPrefix) {
		return ir.Component{}, 0, ir.NewProtocolError(ir.ErrInvalidAuxInfoPrefix, line+1, aux)
	}

	return ir.Component{InChI: inchi, AuxInfo: aux}, role, nil
}

func lineAt(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}

// cut returns at most the first n bytes of s.
func cut(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}

// rest returns s without its first n bytes.
func rest(s string, n int) string {
	if len(s) < n {
		return ""
	}
	return s[n:]
}
