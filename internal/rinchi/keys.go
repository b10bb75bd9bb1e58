package rinchi

import (
	"slices"
	"strings"

	"github.com/roach88/rinchi/internal/ir"
	"github.com/roach88/rinchi/internal/keys"
)

const keyDirectionSuffix = "UHFF"

// directionCode is the key character for the reaction direction:
// F(orward), B(ackward) or E(quilibrium).
func (r *Reaction) directionCode(l *layout) string {
	switch {
	case r.equilibrium:
		return "E"
	case l.reverse:
		return "B"
	}
	return "F"
}

// Key returns the RInChIKey of the given variant.
func (r *Reaction) Key(v ir.KeyVariant) (string, error) {
	switch v {
	case ir.KeyLong:
		return r.LongKey()
	case ir.KeyShort:
		return r.ShortKey()
	case ir.KeyWeb:
		return r.WebKey()
	}
	return "", newError("Unknown RInChIKey variant '%s'.", string(v))
}

// LongKey returns the Long-RInChIKey: the InChIKeys of every component,
// grouped in output order, with one fixed key per no-structure.
func (r *Reaction) LongKey() (string, error) {
	l := r.layout()
	prefix := ir.LongKeyHeader + ir.KeyVersionID + ir.KeyBlockDelimiter +
		r.directionCode(l) + keyDirectionSuffix

	n := l.outputGroups(true)
	groups := make([]string, 0, n)
	for i := 0; i < n; i++ {
		role := l.order[i]
		var blocks []string
		for _, c := range l.ordered[role] {
			k, err := keys.InChIKey(c.InChI)
			if err != nil {
				return "", err
			}
			blocks = append(blocks, k)
		}
		for j := 0; j < l.nostructs[role]; j++ {
			blocks = append(blocks, ir.NoStructureKey)
		}
		groups = append(groups, strings.Join(blocks, ir.KeyBlockDelimiter))
	}

	body := strings.Join(groups, ir.KeyGroupDelimiter)
	if body == "" {
		return prefix, nil
	}
	return prefix + ir.KeyBlockDelimiter + body, nil
}

// ShortKey returns the Short-RInChIKey: a hash of the major layers per group,
// then the proton flag and a hash of the minor layers per group, then one
// no-structure count character per group.
func (r *Reaction) ShortKey() (string, error) {
	l := r.layout()

	var groupLayers [ir.RoleCount]keys.Layers
	for i, role := range l.order {
		for _, c := range l.ordered[role] {
			if err := groupLayers[i].Add(c.InChI); err != nil {
				return "", err
			}
		}
	}

	var b strings.Builder
	b.WriteString(ir.ShortKeyHeader)
	b.WriteString(ir.KeyVersionID + ir.KeyBlockDelimiter)
	b.WriteString(r.directionCode(l) + keyDirectionSuffix)
	for i := range groupLayers {
		b.WriteString(ir.KeyBlockDelimiter)
		b.WriteString(keys.Hash10(groupLayers[i].Majors()))
	}
	for i := range groupLayers {
		b.WriteString(ir.KeyBlockDelimiter)
		b.WriteByte(groupLayers[i].ProtonChar())
		b.WriteString(keys.Hash04(groupLayers[i].Minors()))
	}
	b.WriteString(ir.KeyBlockDelimiter)
	for _, role := range l.order {
		b.WriteByte(noStructureChar(l.nostructs[role]))
	}
	return b.String(), nil
}

// noStructureChar encodes a no-structure count: 'Z' for none, 'A' to 'X'
// for 1 to 24, 'Y' for more.
func noStructureChar(n int) byte {
	switch {
	case n == 0:
		return 'Z'
	case n > 24:
		return 'Y'
	}
	return byte('A' + n - 1)
}

// WebKey returns the Web-RInChIKey. It hashes the distinct component InChIs
// regardless of role or direction, so it identifies the set of structures
// taking part in the reaction.
func (r *Reaction) WebKey() (string, error) {
	seen := make(map[string]struct{})
	var inchis []string
	for _, group := range r.groups {
		for _, c := range group {
			if _, ok := seen[c.InChI]; ok {
				continue
			}
			seen[c.InChI] = struct{}{}
			inchis = append(inchis, c.InChI)
		}
	}
	slices.Sort(inchis)

	var layers keys.Layers
	for _, inchi := range inchis {
		if err := layers.Add(inchi); err != nil {
			return "", err
		}
	}
	return ir.WebKeyHeader + keys.Hash17(layers.Majors()) + ir.KeyBlockDelimiter +
		string(layers.ProtonChar()) + keys.Hash12(layers.Minors()) + ir.KeyVersionID, nil
}
