package keys

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTripletTable(t *testing.T) {
	require.Len(t, triplets, 1<<14)
	assert.Equal(t, "AAA", triplets[0])
	assert.Equal(t, "TAA", triplets[18*676])
	assert.Equal(t, "TGD", triplets[18*676+tBlockLen-1])
	assert.Equal(t, "UAA", triplets[18*676+tBlockLen])
	assert.Equal(t, "ZZZ", triplets[len(triplets)-1])

	for _, tr := range triplets {
		assert.False(t, strings.HasPrefix(tr, "E"), tr)
	}
}

func TestDoubletTable(t *testing.T) {
	require.Len(t, doublets, 676)
	assert.Equal(t, "AA", doublets[0])
	assert.Equal(t, "TR", doublets[511])
}

func TestEmptyStringHashes(t *testing.T) {
	assert.Equal(t, Hash04Empty, Hash04(""))
	assert.Equal(t, Hash10Empty, Hash10(""))
	assert.Equal(t, Hash12Empty, Hash12(""))
	assert.Equal(t, Hash14Empty, Hash14(""))
	assert.Equal(t, Hash17Empty, Hash17(""))
}

func TestHashShapes(t *testing.T) {
	tests := []struct {
		input string
		h04   string
		h10   string
		h12   string
		h14   string
		h17   string
	}{
		{"hello", "UTWQ", "UTWQPVCGXQ", "UTWQPVCGXQMY", "UTWQPVCGXQMYAO", "UTWQPVCGXQMYAOQFI"},
		{
			"C4H8O/c1-3-4(2)5-3/h3-4H,1-2H3",
			"PQXK", "PQXKWPLDPF", "PQXKWPLDPFFD", "PQXKWPLDPFFDJP", "PQXKWPLDPFFDJPUHC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.h04, Hash04(tt.input))
			assert.Equal(t, tt.h10, Hash10(tt.input))
			assert.Equal(t, tt.h12, Hash12(tt.input))
			assert.Equal(t, tt.h14, Hash14(tt.input))
			assert.Equal(t, tt.h17, Hash17(tt.input))
		})
	}
}

func TestHash08Empty(t *testing.T) {
	assert.Equal(t, "UHFFFAOY", hash08(""))
}
