package rinchi

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/rinchi/internal/ir"
)

func TestParseAssignsRolesByDirection(t *testing.T) {
	r, err := Parse(noStructRInChI, "")
	require.NoError(t, err)

	reactants := r.Components(ir.RoleReactant)
	require.Len(t, reactants, 2)
	assert.Equal(t, inchiBromo, reactants[0].InChI)
	assert.True(t, reactants[1].IsNoStructure())

	assert.Equal(t, 2, r.NoStructureCount(ir.RoleProduct))
	assert.Equal(t, 1, r.NoStructureCount(ir.RoleReactant))
	assert.Equal(t, 2, r.NoStructureCount(ir.RoleAgent))
	assert.Equal(t, "InChI=1S/C4H8O/c1-3-4(2)5-3/h3-4H,1-2H3/t3-,4?/m0/s1", r.Components(ir.RoleProduct)[0].InChI)
	assert.False(t, r.Equilibrium())
}

func TestParseRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		rinchi   string
		rauxinfo string
		wantAux  string
	}{
		{
			name:    "no-structures in every group",
			rinchi:  noStructRInChI,
			wantAux: "RAuxInfo=1.00.1//<>/<>/",
		},
		{
			name:    "reactants only",
			rinchi:  "RInChI=1.00.1S/<>C5H12O/c1-4(2)5(3)6/h4-6H,1-3H3/d-",
			wantAux: "RAuxInfo=1.00.1/<>/",
		},
		{
			name:    "no-structure in products",
			rinchi:  "RInChI=1.00.1S/C4H8O/c1-3-4(2)5-3/h3-4H,1-2H3/t3-,4?/m0/s1<>C4H9BrO/c1-3(5)4(2)6/h3-4,6H,1-2H3/t3-,4+/m1/s1!Na.H2O/h;1H2/q+1;/p-1/d-/u0-1-0",
			wantAux: "RAuxInfo=1.00.1//<>/!/",
		},
		{
			name:    "only no-structures",
			rinchi:  "RInChI=1.00.1S//d+/u1-1-0",
			wantAux: "RAuxInfo=1.00.1/",
		},
		{
			name:    "single product",
			rinchi:  "RInChI=1.00.1S/<>CH4/h1H4/d-",
			wantAux: "RAuxInfo=1.00.1/<>/",
		},
		{
			name:     "with RAuxInfo",
			rinchi:   epoxideRInChI,
			rauxinfo: epoxideRAuxInfo,
			wantAux:  epoxideRAuxInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Parse(tt.rinchi, tt.rauxinfo)
			require.NoError(t, err)
			assert.Equal(t, tt.rinchi, r.String())
			assert.Equal(t, tt.wantAux, r.AuxInfo())
		})
	}
}

func TestParseAttachesAuxInfo(t *testing.T) {
	r, err := Parse(epoxideRInChI, epoxideRAuxInfo)
	require.NoError(t, err)

	want := []ir.Component{
		{InChI: inchiBromo, AuxInfo: auxBromo},
		{InChI: inchiHydroxid, AuxInfo: auxHydroxid},
	}
	if diff := cmp.Diff(want, r.Components(ir.RoleReactant)); diff != "" {
		t.Errorf("reactants mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, auxEpoxide, r.Components(ir.RoleProduct)[0].AuxInfo)
}

func TestParseNoStructureAuxInfo(t *testing.T) {
	r, err := Parse("RInChI=1.00.1S/CH4/h1H4/d+/u0-1-0", "RAuxInfo=1.00.1/1/N:1/rA:1nC/rB:/rC:;")
	require.NoError(t, err)
	products := r.Components(ir.RoleProduct)
	require.Len(t, products, 1)
	assert.Equal(t, ir.Component{InChI: ir.NoStructureInChI, AuxInfo: ir.NoStructureAux}, products[0])
}

func TestParseRecord(t *testing.T) {
	tests := []struct {
		rinchi string
		want   ir.Direction
	}{
		{"RInChI=1.00.1S/CH4/h1H4<>H2/h1H", ir.DirectionForward},
		{"RInChI=1.00.1S/CH4/h1H4<>H2/h1H/d+", ir.DirectionForward},
		{"RInChI=1.00.1S/<>CH4/h1H4/d-", ir.DirectionReverse},
		{"RInChI=1.00.1S/CH4/h1H4<>H2/h1H/d=", ir.DirectionEquilibrium},
	}
	for _, tt := range tests {
		t.Run(tt.rinchi, func(t *testing.T) {
			r, err := Parse(tt.rinchi, "")
			require.NoError(t, err)
			rec := r.Record()
			assert.Equal(t, tt.want, rec.Direction)
			assert.Len(t, rec.NoStructureCounts, ir.RoleCount)
			assert.NotNil(t, rec.Agents)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		rinchi   string
		rauxinfo string
		want     string
	}{
		{"bad header", "RInChI=1.00.1X/CH4/h1H4/d+", "", "Invalid or incompatible RInChI header."},
		{"duplicate direction", "RInChI=1.00.1S/CH4/h1H4/d+/d-", "", "Duplicate direction tag in RInChI input string."},
		{"duplicate no-structure", "RInChI=1.00.1S/CH4/h1H4/u1-0-0/u1-0-0", "", "Duplicate No-Structure tag in RInChI input string."},
		{"bare direction", "RInChI=1.00.1S/CH4/h1H4/d", "", "Invalid direction tag '/d' in RInChI input string."},
		{"unknown direction", "RInChI=1.00.1S/CH4/h1H4/d?", "", "Invalid direction tag '/d?' in RInChI input string."},
		{"count format", "RInChI=1.00.1S/CH4/h1H4/d+/u3", "", "Invalid No-Structure count format in '3'."},
		{"count value", "RInChI=1.00.1S/CH4/h1H4/d+/u1-x-0", "", `str2int: "x" is not a valid integer.`},
		{"embedded space", "RInChI=1.00.1S/CH4/h1 H4/d+", "", "Invalid trailing text in component InChI 'CH4/h1 H4'."},
		{"bad rauxinfo header", "RInChI=1.00.1S/CH4/h1H4/d+", "AuxInfo=1/0", "Invalid or incompatible RAuxInfo header."},
		{
			"four groups",
			"RInChI=1.00.1S/CH4/h1H4<>H2/h1H<>O2/c1-2<>N2/c1-2/d+", "",
			"Invalid component InChI 'O2/c1-2<>N2/c1-2': too many groups in RInChI input string.",
		},
		{
			"too many auxinfo",
			"RInChI=1.00.1S/CH4/h1H4/d+", "RAuxInfo=1.00.1/0/N:1!0/N:1",
			"RAuxInfo contains too many elements in the first group (reactants).",
		},
		{
			"too many auxinfo reversed",
			"RInChI=1.00.1S/<>CH4/h1H4/d-", "RAuxInfo=1.00.1/<>0/N:1!0/N:1",
			"RAuxInfo contains too many elements in the second group (reactants).",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.rinchi, tt.rauxinfo)
			require.Error(t, err)
			assert.True(t, IsError(err))
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestParseTrailingTags(t *testing.T) {
	t.Run("direction reads one character", func(t *testing.T) {
		r, err := Parse("RInChI=1.00.1S/CH4/h1H4<>H2/h1H/d+x", "")
		require.NoError(t, err)
		assert.False(t, r.Equilibrium())
		require.Len(t, r.Components(ir.RoleReactant), 1)
		assert.Equal(t, "InChI=1S/CH4/h1H4", r.Components(ir.RoleReactant)[0].InChI)

		r, err = Parse("RInChI=1.00.1S/CH4/h1H4<>H2/h1H/d=1", "")
		require.NoError(t, err)
		assert.True(t, r.Equilibrium())
	})

	t.Run("single dash count", func(t *testing.T) {
		r, err := Parse("RInChI=1.00.1S/CH4/h1H4<>H2/h1H/d+/u1-2", "")
		require.NoError(t, err)
		assert.Equal(t, 1, r.NoStructureCount(ir.RoleReactant))
		assert.Equal(t, 2, r.NoStructureCount(ir.RoleProduct))
		assert.Equal(t, 2, r.NoStructureCount(ir.RoleAgent))
	})
}

func TestParseKeyInput(t *testing.T) {
	r, err := ParseKeyInput(noStructRInChI + "\r\nRAuxInfo=1.00.1/ignored")
	require.NoError(t, err)
	assert.Equal(t, noStructRInChI, r.String())
}
