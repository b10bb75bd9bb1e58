package rinchi

import (
	"slices"
	"strconv"
	"strings"

	"github.com/roach88/rinchi/internal/ir"
)

// Reaction holds the components of one reaction, grouped by role.
//
// Each group keeps its components in the order they were read, including
// no-structure placeholders. Output methods sort a copy; the Reaction itself
// is never reordered.
type Reaction struct {
	groups      [ir.RoleCount][]ir.Component
	equilibrium bool

	// reversed records a "/d-" flag on a parsed RInChI.
	reversed bool
}

// New returns an empty directional reaction.
func New() *Reaction {
	return &Reaction{}
}

// Add appends a component to the group for role.
func (r *Reaction) Add(role ir.Role, c ir.Component) {
	r.groups[role] = append(r.groups[role], c)
}

// SetEquilibrium marks the reaction as an equilibrium.
func (r *Reaction) SetEquilibrium(eq bool) {
	r.equilibrium = eq
}

// Equilibrium reports whether the reaction is an equilibrium.
func (r *Reaction) Equilibrium() bool {
	return r.equilibrium
}

// Components returns the components of role in read order.
func (r *Reaction) Components(role ir.Role) []ir.Component {
	return r.groups[role]
}

// Empty reports whether the reaction has no components at all.
func (r *Reaction) Empty() bool {
	for _, g := range r.groups {
		if len(g) > 0 {
			return false
		}
	}
	return true
}

// NoStructureCount returns the number of no-structure components of role.
func (r *Reaction) NoStructureCount(role ir.Role) int {
	n := 0
	for _, c := range r.groups[role] {
		if c.IsNoStructure() {
			n++
		}
	}
	return n
}

// Record returns the decomposed form of the reaction, with the direction
// reported as read and components in read order.
func (r *Reaction) Record() ir.Reaction {
	dir := ir.DirectionForward
	switch {
	case r.equilibrium:
		dir = ir.DirectionEquilibrium
	case r.reversed:
		dir = ir.DirectionReverse
	}

	rec := ir.Reaction{
		Direction:         dir,
		NoStructureCounts: make([]int, ir.RoleCount),
	}
	for role := ir.RoleReactant; role <= ir.RoleAgent; role++ {
		rec.NoStructureCounts[role] = r.NoStructureCount(role)
		comps := make([]ir.Component, len(r.groups[role]))
		copy(comps, r.groups[role])
		switch role {
		case ir.RoleReactant:
			rec.Reactants = comps
		case ir.RoleProduct:
			rec.Products = comps
		case ir.RoleAgent:
			rec.Agents = comps
		}
	}
	return rec
}

// layout is the output view of a reaction: real components sorted by InChI,
// the rendered group strings and the group output order.
type layout struct {
	ordered   [ir.RoleCount][]ir.Component
	inchis    [ir.RoleCount]string
	auxinfos  [ir.RoleCount]string
	nostructs [ir.RoleCount]int
	order     [ir.RoleCount]ir.Role

	// reverse is true when the products group sorts before the reactants
	// group, which puts products first in every output.
	reverse bool
}

func (r *Reaction) layout() *layout {
	l := &layout{order: [ir.RoleCount]ir.Role{ir.RoleReactant, ir.RoleProduct, ir.RoleAgent}}

	for i, group := range r.groups {
		for _, c := range group {
			if c.IsNoStructure() {
				l.nostructs[i]++
				continue
			}
			l.ordered[i] = append(l.ordered[i], c)
		}
		slices.SortStableFunc(l.ordered[i], func(a, b ir.Component) int {
			return strings.Compare(a.InChI, b.InChI)
		})

		inchis := make([]string, len(l.ordered[i]))
		auxinfos := make([]string, len(l.ordered[i]))
		for k, c := range l.ordered[i] {
			inchis[k] = strings.TrimPrefix(c.InChI, ir.InChIHeader)
			if c.AuxInfo == "" {
				auxinfos[k] = "/"
			} else {
				auxinfos[k] = strings.TrimPrefix(c.AuxInfo, ir.AuxInfoHeader)
			}
		}
		l.inchis[i] = strings.Join(inchis, ir.ComponentDelim)
		l.auxinfos[i] = strings.Join(auxinfos, ir.ComponentDelim)
	}

	l.reverse = l.inchis[ir.RoleProduct] < l.inchis[ir.RoleReactant]
	if l.reverse {
		l.order[0], l.order[1] = l.order[1], l.order[0]
	}
	return l
}

// outputGroups returns how many groups are written. Trailing empty groups
// are dropped but at least one group is always written. With
// countNoStructures, a group holding only no-structures counts as used.
func (l *layout) outputGroups(countNoStructures bool) int {
	n := 1
	for i, role := range l.order {
		if l.inchis[role] != "" {
			n = i + 1
		}
		if countNoStructures && l.nostructs[role] != 0 {
			n = i + 1
		}
	}
	return n
}

func (l *layout) hasNoStructures() bool {
	for _, n := range l.nostructs {
		if n > 0 {
			return true
		}
	}
	return false
}

func (r *Reaction) directionFlag(l *layout) string {
	switch {
	case r.equilibrium:
		return ir.DirectionTag + string(ir.DirectionEquilibrium)
	case l.reverse:
		return ir.DirectionTag + string(ir.DirectionReverse)
	}
	return ir.DirectionTag + string(ir.DirectionForward)
}

// String returns the canonical RInChI of the reaction.
func (r *Reaction) String() string {
	l := r.layout()

	var b strings.Builder
	b.WriteString(ir.RInChIHeader)
	n := l.outputGroups(false)
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(ir.GroupDelimiter)
		}
		b.WriteString(l.inchis[l.order[i]])
	}
	b.WriteString(r.directionFlag(l))

	if l.hasNoStructures() {
		b.WriteString(ir.NoStructureTag)
		for i, role := range l.order {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteString(strconv.Itoa(l.nostructs[role]))
		}
	}
	return b.String()
}

// AuxInfo returns the RAuxInfo matching String.
func (r *Reaction) AuxInfo() string {
	l := r.layout()

	var b strings.Builder
	b.WriteString(ir.RAuxInfoHeader)
	n := l.outputGroups(false)
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(ir.GroupDelimiter)
		}
		b.WriteString(l.auxinfos[l.order[i]])
	}
	return b.String()
}
