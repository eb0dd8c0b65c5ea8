package scx

import (
	"bytes"
	"compress/flate"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scxtools/scx/internal/section"
	"github.com/scxtools/scx/internal/wire"
	"github.com/scxtools/scx/pkg/scen"
)

// fixture builds a scenario exercising every section the edition
// supports, sized to the edition's player limit.
func fixture(ed scen.Edition) *scen.Scenario {
	caps := ed.Capabilities()
	slots := caps.MaxPlayers

	s := &scen.Scenario{
		Edition: ed,
		Header: scen.Header{
			Timestamp:   1234567890,
			Description: "round-trip fixture",
			PlayerCount: uint32(slots),
		},
		Map:      scen.Map{Width: 5, Height: 3, Tiles: make([]scen.Tile, 15)},
		Players:  make([]scen.PlayerRecord, slots),
		Victory:  scen.VictorySettings{Conquest: true, RequiredRelics: 5, ExploredPercent: 100, Score: 12000, TimeLimit: 3600},
		Triggers: []scen.Trigger{},
		AI:       scen.AIInfo{Files: []scen.AIFile{}, UseAI: make([]bool, slots)},
	}
	if ed == scen.EditionDefinitive {
		s.Header.Author = "fixture author"
	}
	for i := range s.Map.Tiles {
		layer := uint16(0)
		if caps.TileLayerWidth == 2 {
			layer = uint16(i * 30)
		}
		s.Map.Tiles[i] = scen.Tile{Terrain: uint8(i), Elevation: uint8(i % 4), Layer: layer, Overlay: uint8(i % 2)}
	}
	for i := range s.Players {
		s.Players[i] = scen.PlayerRecord{
			Name:         fmt.Sprintf("slot %d", i+1),
			Civilization: int32(i % 6),
			Active:       i < 2,
			Resources:    scen.StartResources{Food: 200, Wood: 200, Gold: 100, Stone: 150, Population: 75},
			Stances:      make([]scen.Stance, slots),
		}
		for j := range s.Players[i].Stances {
			if j == i {
				s.Players[i].Stances[j] = scen.StanceAlly
			} else {
				s.Players[i].Stances[j] = scen.StanceNeutral
			}
		}
	}
	if caps.SupportsTriggers {
		s.Triggers = []scen.Trigger{{
			Name:           "greeting",
			Enabled:        true,
			Conditions:     []scen.TriggerCondition{{Type: 0, Properties: []int32{}}},
			ConditionOrder: []int32{0},
			Effects:        []scen.TriggerEffect{{Type: 1, Properties: []int32{-1, 7}, ChatText: "welcome", SoundFile: ""}},
			EffectOrder:    []int32{0},
		}}
	}
	if caps.SupportsAIInfo {
		s.AI.Files = []scen.AIFile{{Name: "main.per", Content: "(defrule (true) => (disable-self))"}}
		s.AI.UseAI[0] = true
	}
	return s
}

func TestRoundTripAllEditions(t *testing.T) {
	for _, ed := range scen.Editions() {
		t.Run(ed.String(), func(t *testing.T) {
			s := fixture(ed)

			data, notes, err := Save(s, ed)
			require.NoError(t, err)
			assert.Empty(t, notes)
			assert.Equal(t, ed.Tag(), [4]byte(data[:4]))

			got, err := Load(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, s, got)
		})
	}
}

func TestRoundTripStableAcrossLevels(t *testing.T) {
	s := fixture(scen.EditionConquerors)

	for _, level := range []int{flate.BestSpeed, flate.DefaultCompression, flate.BestCompression} {
		data, _, err := SaveLevel(s, scen.EditionConquerors, level)
		require.NoError(t, err)

		got, err := Load(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, s, got, "level %d", level)
	}
}

func TestLoadUnknownTag(t *testing.T) {
	data := append([]byte("9.99"), make([]byte, 64)...)

	_, err := Load(bytes.NewReader(data))
	var unknown *scen.UnknownEditionTagError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, [4]byte{'9', '.', '9', '9'}, unknown.Tag)
}

func TestLoadTruncatedTag(t *testing.T) {
	_, err := Load(bytes.NewReader([]byte("1.")))
	var truncated *scen.TruncatedInputError
	require.ErrorAs(t, err, &truncated)
	assert.Equal(t, "tag", truncated.Section)
}

func TestLoadCorruptBody(t *testing.T) {
	s := fixture(scen.EditionHD)
	data, _, err := Save(s, scen.EditionHD)
	require.NoError(t, err)

	// Replace the compressed payload with bytes that are not a deflate
	// stream, keeping the tag and header intact.
	hw := wire.NewWriter()
	require.NoError(t, section.EncodeHeader(hw, scen.EditionHD, s.Header))
	start := 4 + len(hw.Bytes())
	corrupt := append(append([]byte{}, data[:start]...), 0xDE, 0xAD, 0xBE, 0xEF)

	_, err = Load(bytes.NewReader(corrupt))
	var bad *scen.CorruptCompressedBlockError
	require.ErrorAs(t, err, &bad)
}

func TestSaveConvertsToTarget(t *testing.T) {
	s := fixture(scen.EditionDefinitive)
	// Keep the tile layers narrow enough for the one-byte editions.
	for i := range s.Map.Tiles {
		s.Map.Tiles[i].Layer = uint16(i % 4)
	}

	data, notes, err := Save(s, scen.EditionOriginal)
	require.NoError(t, err)
	require.Len(t, notes, 3)

	got, err := Load(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, scen.EditionOriginal, got.Edition)
	assert.Len(t, got.Players, 4)
	assert.Empty(t, got.Triggers)
	assert.Empty(t, got.AI.Files)

	// The input aggregate was not mutated.
	assert.Equal(t, scen.EditionDefinitive, s.Edition)
	assert.Len(t, s.Players, 16)
}

func TestSaveDescriptionTooLongForShortPrefix(t *testing.T) {
	s := fixture(scen.EditionOriginal)
	s.Header.Description = string(make([]byte, 0x10000))

	_, _, err := Save(s, scen.EditionOriginal)
	var tooLong *scen.StringTooLongError
	require.ErrorAs(t, err, &tooLong)
	assert.Equal(t, "description", tooLong.Field)

	// The wide prefix of later editions holds it fine.
	s.Edition = scen.EditionHD
	s.Header.PlayerCount = 4
	_, _, err = Save(s, scen.EditionHD)
	require.NoError(t, err)
}

func TestSaveFileLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.scx")
	s := fixture(scen.EditionConquerors)

	notes, err := SaveFile(s, scen.EditionConquerors, path)
	require.NoError(t, err)
	assert.Empty(t, notes)

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.scx"))
	require.Error(t, err)
}
