package section

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scxtools/scx/internal/wire"
	"github.com/scxtools/scx/pkg/scen"
)

func TestAIRoundTrip(t *testing.T) {
	ai := scen.AIInfo{
		Files: []scen.AIFile{
			{Name: "rush.per", Content: "(defrule (true) => (train militiaman))"},
			{Name: "boom.per", Content: ""},
		},
		UseAI: []bool{true, false, true, false},
	}

	w := wire.NewWriter()
	require.NoError(t, EncodeAI(w, scen.EditionConquerors, ai, 4))

	got, err := DecodeAI(wire.NewReader(bytes.NewReader(w.Bytes())), scen.EditionConquerors, 4)
	require.NoError(t, err)
	assert.Equal(t, ai, got)
}

func TestAIUnsupportedEdition(t *testing.T) {
	// The original layout has no AI section; decoding consumes nothing and
	// still yields a structurally present result.
	got, err := DecodeAI(wire.NewReader(bytes.NewReader(nil)), scen.EditionOriginal, 3)
	require.NoError(t, err)
	assert.Empty(t, got.Files)
	assert.Equal(t, []bool{false, false, false}, got.UseAI)

	w := wire.NewWriter()
	require.NoError(t, EncodeAI(w, scen.EditionOriginal, got, 3))
	assert.Empty(t, w.Bytes())

	err = EncodeAI(wire.NewWriter(), scen.EditionOriginal, scen.AIInfo{
		Files: []scen.AIFile{{Name: "rush.per"}},
		UseAI: []bool{false, false, false},
	}, 3)
	require.Error(t, err)
}

func TestAIFlagVectorMismatch(t *testing.T) {
	err := EncodeAI(wire.NewWriter(), scen.EditionHD, scen.AIInfo{UseAI: []bool{true}}, 4)
	var missing *scen.MissingRequiredFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "useAI", missing.Field)
}

func TestAIAbsurdFileCount(t *testing.T) {
	w := wire.NewWriter()
	w.Uint32(1 << 28)

	_, err := DecodeAI(wire.NewReader(bytes.NewReader(w.Bytes())), scen.EditionHD, 2)
	var oor *scen.ValueOutOfRangeError
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, "fileCount", oor.Field)
}
