package protocol

import (
	"strconv"
	"strings"

	"github.com/roach88/rinchi/internal/ir"
)

// Encode renders a reaction record as a line-protocol document.
// Decompose(Encode(r)) returns a record equal to r whenever r carries at
// least one no-structure count.
func Encode(r ir.Reaction) string {
	var b strings.Builder

	b.WriteString(directionPrefix)
	b.WriteString(string(r.Direction))
	b.WriteByte('\n')

	b.WriteString(noStructurePrefix)
	for i, n := range r.NoStructureCounts {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(n))
	}
	b.WriteByte('\n')

	for _, role := range []ir.Role{ir.RoleReactant, ir.RoleProduct, ir.RoleAgent} {
		for _, c := range r.Components(role) {
			b.WriteString(role.Tag())
			b.WriteString(c.InChI)
			b.WriteByte('\n')
			b.WriteString(role.Tag())
			b.WriteString(c.AuxInfo)
			b.WriteByte('\n')
		}
	}

	return b.String()
}
