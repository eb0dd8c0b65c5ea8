package section

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scxtools/scx/internal/wire"
	"github.com/scxtools/scx/pkg/scen"
)

func testTriggers() []scen.Trigger {
	return []scen.Trigger{
		{
			Name:    "reveal the relic",
			Enabled: true,
			Conditions: []scen.TriggerCondition{
				{Type: 1, Properties: []int32{10, 20, -1}},
				{Type: 4, Properties: []int32{}},
			},
			ConditionOrder: []int32{1, 0},
			Effects: []scen.TriggerEffect{
				{Type: 3, Properties: []int32{5}, ChatText: "the relic is near", SoundFile: "horn.wav"},
			},
			EffectOrder: []int32{0},
		},
		{
			Name:           "loop taunt",
			Looping:        true,
			Conditions:     []scen.TriggerCondition{},
			ConditionOrder: []int32{},
			Effects: []scen.TriggerEffect{
				{Type: 8, Properties: []int32{}, ChatText: "wololo", SoundFile: ""},
			},
			EffectOrder: []int32{0},
		},
	}
}

func TestTriggersRoundTrip(t *testing.T) {
	for _, ed := range []scen.Edition{scen.EditionConquerors, scen.EditionDefinitive} {
		t.Run(ed.String(), func(t *testing.T) {
			triggers := testTriggers()

			w := wire.NewWriter()
			require.NoError(t, EncodeTriggers(w, ed, triggers))

			got, err := DecodeTriggers(wire.NewReader(bytes.NewReader(w.Bytes())), ed)
			require.NoError(t, err)
			assert.Equal(t, triggers, got)
		})
	}
}

func TestTriggersUnsupportedEdition(t *testing.T) {
	// No bytes are consumed and the list is empty, not nil.
	got, err := DecodeTriggers(wire.NewReader(bytes.NewReader(nil)), scen.EditionOriginal)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)

	// Encoding an empty list is a no-op; a populated one is a defect.
	w := wire.NewWriter()
	require.NoError(t, EncodeTriggers(w, scen.EditionExpansion, nil))
	assert.Empty(t, w.Bytes())

	err = EncodeTriggers(wire.NewWriter(), scen.EditionExpansion, testTriggers())
	require.Error(t, err)
}

func TestTriggersDefaultDisplayOrder(t *testing.T) {
	triggers := testTriggers()
	triggers[0].ConditionOrder = nil
	triggers[0].EffectOrder = nil

	w := wire.NewWriter()
	require.NoError(t, EncodeTriggers(w, scen.EditionHD, triggers))

	got, err := DecodeTriggers(wire.NewReader(bytes.NewReader(w.Bytes())), scen.EditionHD)
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 1}, got[0].ConditionOrder)
	assert.Equal(t, []int32{0}, got[0].EffectOrder)
}

func TestTriggersAbsurdCount(t *testing.T) {
	w := wire.NewWriter()
	w.Uint32(1 << 30)

	_, err := DecodeTriggers(wire.NewReader(bytes.NewReader(w.Bytes())), scen.EditionHD)
	var oor *scen.ValueOutOfRangeError
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, "triggerCount", oor.Field)
}

func TestTriggersTruncated(t *testing.T) {
	w := wire.NewWriter()
	require.NoError(t, EncodeTriggers(w, scen.EditionHD, testTriggers()))
	cut := w.Bytes()[:len(w.Bytes())/2]

	_, err := DecodeTriggers(wire.NewReader(bytes.NewReader(cut)), scen.EditionHD)
	var truncated *scen.TruncatedInputError
	require.ErrorAs(t, err, &truncated)
	assert.Equal(t, "triggers", truncated.Section)
}
