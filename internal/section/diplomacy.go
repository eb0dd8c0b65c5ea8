package section

import (
	"github.com/scxtools/scx/internal/wire"
	"github.com/scxtools/scx/pkg/scen"
)

// DecodeDiplomacy reads each player's stance vector into the already
// decoded player records, then the global victory settings. Stance
// vectors are stored per slot to preserve asymmetric legacy data.
func DecodeDiplomacy(r *wire.Reader, ed scen.Edition, players []scen.PlayerRecord) (scen.VictorySettings, error) {
	r.SetSection("diplomacy")

	for i := range players {
		count, err := r.Uint16("stanceCount")
		if err != nil {
			return scen.VictorySettings{}, err
		}
		if int(count) != len(players) {
			return scen.VictorySettings{}, &scen.ValueOutOfRangeError{
				Section: "diplomacy", Field: "stanceCount",
				Index: i, Value: int64(count), Max: int64(len(players)),
			}
		}
		stances := make([]scen.Stance, count)
		for j := range stances {
			v, err := r.Uint8("stance")
			if err != nil {
				return scen.VictorySettings{}, err
			}
			switch scen.Stance(v) {
			case scen.StanceAlly, scen.StanceNeutral, scen.StanceEnemy:
				stances[j] = scen.Stance(v)
			default:
				return scen.VictorySettings{}, &scen.ValueOutOfRangeError{
					Section: "diplomacy", Field: "stance",
					Index: i*len(players) + j, Value: int64(v), Max: int64(scen.StanceEnemy),
				}
			}
		}
		players[i].Stances = stances
	}

	var v scen.VictorySettings
	var err error
	if v.Conquest, err = r.Bool32("conquest"); err != nil {
		return v, err
	}
	if v.RequiredRelics, err = r.Int32("requiredRelics"); err != nil {
		return v, err
	}
	if v.ExploredPercent, err = r.Int32("exploredPercent"); err != nil {
		return v, err
	}
	if v.AllCustom, err = r.Bool32("allCustom"); err != nil {
		return v, err
	}
	if v.Score, err = r.Int32("score"); err != nil {
		return v, err
	}
	if v.TimeLimit, err = r.Int32("timeLimit"); err != nil {
		return v, err
	}
	return v, nil
}

// EncodeDiplomacy writes the stance vectors followed by the global
// victory settings. Every player must carry a full-length stance vector;
// a short one means the conversion engine failed to resize it.
func EncodeDiplomacy(w *wire.Writer, ed scen.Edition, players []scen.PlayerRecord, victory scen.VictorySettings) error {
	w.SetSection("diplomacy")

	for i := range players {
		if len(players[i].Stances) != len(players) {
			return &scen.MissingRequiredFieldError{
				Section: "diplomacy", Field: "stances", Target: ed,
			}
		}
		w.Uint16(uint16(len(players[i].Stances)))
		for _, s := range players[i].Stances {
			w.Uint8(uint8(s))
		}
	}

	w.Bool32(victory.Conquest)
	w.Int32(victory.RequiredRelics)
	w.Int32(victory.ExploredPercent)
	w.Bool32(victory.AllCustom)
	w.Int32(victory.Score)
	w.Int32(victory.TimeLimit)
	return nil
}
