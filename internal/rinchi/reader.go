package rinchi

import (
	"strconv"
	"strings"

	"github.com/roach88/rinchi/internal/ir"
)

// maxTrailingTags is the number of "/d" and "/u" tags that may follow the
// last group of a RInChI.
const maxTrailingTags = 2

// Parse reads a RInChI and its optional RAuxInfo into a Reaction.
//
// Components are assigned to roles as the direction flag declares them. With
// an empty rauxinfo every component gets an empty AuxInfo.
func Parse(rinchi, rauxinfo string) (*Reaction, error) {
	if !strings.HasPrefix(rinchi, ir.RInChIHeader) {
		return nil, newError("Invalid or incompatible RInChI header.")
	}

	groups := strings.SplitN(rinchi[len(ir.RInChIHeader):], ir.GroupDelimiter, ir.RoleCount)
	last := len(groups) - 1
	lastGroup, direction, nostruct, err := splitTrailingTags(groups[last])
	if err != nil {
		return nil, err
	}
	groups[last] = lastGroup

	r := New()
	switch direction {
	case ir.DirectionForward:
	case ir.DirectionReverse:
		r.reversed = true
	case ir.DirectionEquilibrium:
		r.equilibrium = true
	default:
		return nil, newError("Invalid direction tag '%s' in RInChI input string.", ir.DirectionTag+string(direction))
	}

	roles := groupRoles(r.reversed)
	for i, group := range groups {
		comps, err := componentsFromGroup(group)
		if err != nil {
			return nil, err
		}
		for _, c := range comps {
			r.Add(roles[i], c)
		}
	}

	if rauxinfo != "" {
		if err := r.addAuxInfo(rauxinfo, roles); err != nil {
			return nil, err
		}
	}

	counts, err := parseNoStructureCounts(nostruct)
	if err != nil {
		return nil, err
	}
	if r.reversed {
		counts[0], counts[1] = counts[1], counts[0]
	}
	aux := ""
	if rauxinfo != "" {
		aux = ir.NoStructureAux
	}
	for role, n := range counts {
		for ; n > 0; n-- {
			r.Add(ir.Role(role), ir.Component{InChI: ir.NoStructureInChI, AuxInfo: aux})
		}
	}
	return r, nil
}

// ParseKeyInput reads the first line of s as a RInChI without RAuxInfo.
func ParseKeyInput(s string) (*Reaction, error) {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return Parse(strings.TrimSuffix(s, "\r"), "")
}

// splitTrailingTags strips the direction and no-structure tags off the last
// group. The direction defaults to forward when no tag is present.
func splitTrailingTags(group string) (rest string, direction ir.Direction, nostruct string, err error) {
	var dirTag string
	for i := 0; i < maxTrailingTags; i++ {
		pos := strings.LastIndex(group, "/")
		if pos < 0 || pos == len(group)-1 {
			break
		}
		tag := group[pos:]
		switch {
		case strings.HasPrefix(tag, ir.NoStructureTag):
			if nostruct != "" {
				return "", "", "", newError("Duplicate No-Structure tag in RInChI input string.")
			}
			nostruct = tag
		case strings.HasPrefix(tag, ir.DirectionTag):
			if dirTag != "" {
				return "", "", "", newError("Duplicate direction tag in RInChI input string.")
			}
			dirTag = tag
		default:
			return group, directionOf(dirTag), nostruct, nil
		}
		group = group[:pos]
	}
	return group, directionOf(dirTag), nostruct, nil
}

// directionOf reads the single character after "/d". Anything after it is
// ignored.
func directionOf(tag string) ir.Direction {
	switch {
	case tag == "":
		return ir.DirectionForward
	case len(tag) == len(ir.DirectionTag):
		return ""
	}
	return ir.Direction(tag[len(ir.DirectionTag) : len(ir.DirectionTag)+1])
}

// groupRoles maps RInChI group positions to roles.
func groupRoles(reversed bool) [ir.RoleCount]ir.Role {
	if reversed {
		return [ir.RoleCount]ir.Role{ir.RoleProduct, ir.RoleReactant, ir.RoleAgent}
	}
	return [ir.RoleCount]ir.Role{ir.RoleReactant, ir.RoleProduct, ir.RoleAgent}
}

func groupName(pos int, role ir.Role) string {
	switch pos {
	case 0:
		return "first group (" + role.String() + ")"
	case 1:
		return "second group (" + role.String() + ")"
	}
	return "third group (" + role.String() + ")"
}

func componentsFromGroup(group string) ([]ir.Component, error) {
	if group == "" {
		return nil, nil
	}
	parts := strings.Split(group, ir.ComponentDelim)
	comps := make([]ir.Component, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if strings.ContainsAny(p, " \n\t") {
			return nil, newError("Invalid trailing text in component InChI '%s'.", p)
		}
		if strings.Contains(p, ir.GroupDelimiter) {
			return nil, newError("Invalid component InChI '%s': too many groups in RInChI input string.", p)
		}
		comps = append(comps, ir.Component{InChI: ir.InChIHeader + p})
	}
	return comps, nil
}

func (r *Reaction) addAuxInfo(rauxinfo string, roles [ir.RoleCount]ir.Role) error {
	if !strings.HasPrefix(rauxinfo, ir.RAuxInfoHeader) {
		return newError("Invalid or incompatible RAuxInfo header.")
	}
	groups := strings.SplitN(rauxinfo[len(ir.RAuxInfoHeader):], ir.GroupDelimiter, ir.RoleCount)
	for i, group := range groups {
		if group == "" {
			continue
		}
		role := roles[i]
		comps := r.groups[role]
		for idx, aux := range strings.Split(group, ir.ComponentDelim) {
			if idx >= len(comps) {
				return newError("RAuxInfo contains too many elements in the %s.", groupName(i, role))
			}
			comps[idx].AuxInfo = ir.AuxInfoHeader + aux
		}
	}
	return nil
}

// parseNoStructureCounts reads a "/uA-B-C" tag. An empty tag means no
// no-structures.
func parseNoStructureCounts(tag string) ([ir.RoleCount]int, error) {
	var counts [ir.RoleCount]int
	if tag == "" {
		return counts, nil
	}
	data := tag[len(ir.NoStructureTag):]
	first := strings.Index(data, "-")
	last := strings.LastIndex(data, "-")
	if first < 0 || last < 0 {
		return counts, newError("Invalid No-Structure count format in '%s'.", data)
	}

	// With a single "-" the middle field runs to the end of the tag, so
	// "1-2" reads as 1, 2, 2.
	fields := [ir.RoleCount]string{data[:first], data[first+1:], data[last+1:]}
	if first < last {
		fields[1] = data[first+1 : last]
	}
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return counts, newError("str2int: \"%s\" is not a valid integer.", f)
		}
		if n < 0 {
			return counts, newError("Invalid No-Structure count format in '%s'.", data)
		}
		counts[i] = n
	}
	return counts, nil
}
