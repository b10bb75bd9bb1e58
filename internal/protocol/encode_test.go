package protocol

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/rinchi/internal/ir"
)

func TestEncode(t *testing.T) {
	rxn := ir.Reaction{
		Direction:         ir.DirectionReverse,
		NoStructureCounts: []int{2, 1, 0},
		Reactants:         []ir.Component{{InChI: "InChI=1S/A", AuxInfo: "AuxInfo=1/0"}},
		Products:          []ir.Component{{InChI: "InChI=1S/B"}},
	}

	assert.Equal(t,
		"D:-\nN:2,1,0\nR:InChI=1S/A\nR:AuxInfo=1/0\nP:InChI=1S/B\nP:\n",
		Encode(rxn))
}

func TestEncodeDecomposeRoundTrip(t *testing.T) {
	rxn := ir.Reaction{
		Direction:         ir.DirectionForward,
		NoStructureCounts: []int{0, 0, 1},
		Reactants: []ir.Component{
			{InChI: "InChI=1S/CH4S/c1-2/h2H,1H3", AuxInfo: "AuxInfo=1/0/N:1,2"},
			{InChI: "InChI=1S/F2/c1-2"},
		},
		Products: []ir.Component{{InChI: "InChI=1S/H3NO/c1-2/h2H,1H2"}},
		Agents:   []ir.Component{{InChI: ir.NoStructureInChI, AuxInfo: ir.NoStructureAux}},
	}

	got, err := Decompose(Encode(rxn))
	require.NoError(t, err)
	if diff := cmp.Diff(rxn, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
