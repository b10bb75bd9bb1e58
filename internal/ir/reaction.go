package ir

import (
	"fmt"
	"strings"
)

// Direction is the reaction direction declared in a RInChI.
type Direction string

const (
	DirectionForward     Direction = "+"
	DirectionReverse     Direction = "-"
	DirectionEquilibrium Direction = "="
	DirectionUndeclared  Direction = ""
)

// Valid reports whether d is one of the four known directions.
func (d Direction) Valid() bool {
	switch d {
	case DirectionForward, DirectionReverse, DirectionEquilibrium, DirectionUndeclared:
		return true
	}
	return false
}

// Role identifies which group of a reaction a component belongs to.
type Role int

const (
	RoleReactant Role = iota
	RoleProduct
	RoleAgent
)

// RoleCount is the fixed number of role groups in a reaction.
const RoleCount = 3

// Tag returns the two-character line-protocol tag for the role.
func (r Role) Tag() string {
	switch r {
	case RoleReactant:
		return "R:"
	case RoleProduct:
		return "P:"
	case RoleAgent:
		return "A:"
	}
	return ""
}

func (r Role) String() string {
	switch r {
	case RoleReactant:
		return "reactants"
	case RoleProduct:
		return "products"
	case RoleAgent:
		return "agents"
	}
	return fmt.Sprintf("role(%d)", int(r))
}

// RoleForTag maps a line-protocol tag to its role.
func RoleForTag(tag string) (Role, bool) {
	switch tag {
	case "R:":
		return RoleReactant, true
	case "P:":
		return RoleProduct, true
	case "A:":
		return RoleAgent, true
	}
	return 0, false
}

// Component is one structural entry of a reaction.
type Component struct {
	InChI   string `json:"inchi"`
	AuxInfo string `json:"aux_info"`
}

// IsNoStructure reports whether the component is a no-structure placeholder.
func (c Component) IsNoStructure() bool {
	return c.InChI == NoStructureInChI
}

// Reaction is the decomposed form of a RInChI.
//
// Component slices keep the order in which the components were encountered.
type Reaction struct {
	Direction         Direction   `json:"direction"`
	NoStructureCounts []int       `json:"no_structure_counts"`
	Reactants         []Component `json:"reactants"`
	Products          []Component `json:"products"`
	Agents            []Component `json:"agents"`
}

// Components returns the component list for role.
func (r *Reaction) Components(role Role) []Component {
	switch role {
	case RoleReactant:
		return r.Reactants
	case RoleProduct:
		return r.Products
	case RoleAgent:
		return r.Agents
	}
	return nil
}

// Append adds c to the list for role.
func (r *Reaction) Append(role Role, c Component) {
	switch role {
	case RoleReactant:
		r.Reactants = append(r.Reactants, c)
	case RoleProduct:
		r.Products = append(r.Products, c)
	case RoleAgent:
		r.Agents = append(r.Agents, c)
	}
}

// KeyVariant selects one of the three RInChIKey shapes.
type KeyVariant string

const (
	KeyLong  KeyVariant = "L"
	KeyShort KeyVariant = "S"
	KeyWeb   KeyVariant = "W"
)

// KeyVariants lists all variants in their canonical order.
var KeyVariants = []KeyVariant{KeyLong, KeyShort, KeyWeb}

func (v KeyVariant) String() string {
	switch v {
	case KeyLong:
		return "Long"
	case KeyShort:
		return "Short"
	case KeyWeb:
		return "Web"
	}
	return string(v)
}

// ParseKeyVariant accepts a selector such as "L", "long" or "Web".
// Only the first character is significant, case-insensitively.
func ParseKeyVariant(s string) (KeyVariant, error) {
	if s == "" {
		return "", fmt.Errorf("missing key variant: must be one of L, S, W")
	}
	switch s[0] {
	case 'L', 'l':
		return KeyLong, nil
	case 'S', 's':
		return KeyShort, nil
	case 'W', 'w':
		return KeyWeb, nil
	}
	return "", fmt.Errorf("invalid key variant %q: must be one of L, S, W", s)
}

// KeyVariantOf reports which variant a RInChIKey is, from its header.
func KeyVariantOf(key string) (KeyVariant, bool) {
	switch {
	case strings.HasPrefix(key, LongKeyHeader):
		return KeyLong, true
	case strings.HasPrefix(key, ShortKeyHeader):
		return KeyShort, true
	case strings.HasPrefix(key, WebKeyHeader):
		return KeyWeb, true
	}
	return "", false
}
