// Package convert implements edition-to-edition migration of a scenario
// aggregate. It is the only place field values are transformed; the
// section codecs are structurally mechanical.
package convert

import (
	"fmt"

	"github.com/scxtools/scx/pkg/scen"
)

// Convert migrates the aggregate to the target edition and returns the
// result plus any loss notes. The identity conversion returns the input
// untouched. Conversion is all-or-nothing: it works on a deep copy and a
// failure leaves the input aggregate unchanged.
func Convert(s *scen.Scenario, target scen.Edition) (*scen.Scenario, []scen.LossNote, error) {
	if s.Edition == target {
		return s, nil, nil
	}
	src := s.Edition.Capabilities()
	dst := target.Capabilities()

	out := s.Clone()
	var notes []scen.LossNote

	// Narrowing the tile layer field must be validated up front so the
	// result is always encodable.
	if dst.TileLayerWidth < src.TileLayerWidth {
		for i := range out.Map.Tiles {
			if v := out.Map.Tiles[i].Layer; v > 0xFF {
				return nil, nil, &scen.ValueOutOfRangeError{
					Section: "map", Field: "layer",
					Index: i, Value: int64(v), Max: 0xFF,
				}
			}
		}
	}

	if dropped, err := fitPlayers(out, target, dst.MaxPlayers); err != nil {
		return nil, nil, err
	} else if dropped > 0 {
		notes = append(notes, scen.LossNote{
			Section: "players",
			Detail:  fmt.Sprintf("dropped %d inactive player slots to fit the %d-player limit", dropped, dst.MaxPlayers),
		})
	}
	resizeStances(out)
	out.Header.PlayerCount = uint32(len(out.Players))

	if !dst.SupportsTriggers {
		if n := len(out.Triggers); n > 0 {
			notes = append(notes, scen.LossNote{
				Section: "triggers",
				Detail:  fmt.Sprintf("dropped %d triggers; edition %v has no trigger section", n, target),
			})
		}
		out.Triggers = []scen.Trigger{}
	}

	useAI := resizeUseAI(out)
	if !dst.SupportsAIInfo {
		if len(out.AI.Files) > 0 || useAI {
			notes = append(notes, scen.LossNote{
				Section: "ai",
				Detail:  fmt.Sprintf("dropped embedded AI data; edition %v has no AI section", target),
			})
		}
		out.AI.Files = []scen.AIFile{}
		for i := range out.AI.UseAI {
			out.AI.UseAI[i] = false
		}
	}

	out.Edition = target
	return out, notes, nil
}

// fitPlayers truncates the player slots to the target bound. Active slots
// are never dropped: if they do not all fit the conversion fails, else
// they are kept in order and the remaining room is filled with inactive
// slots. Returns the number of dropped inactive slots.
func fitPlayers(s *scen.Scenario, target scen.Edition, maxPlayers int) (int, error) {
	if len(s.Players) <= maxPlayers {
		return 0, nil
	}
	active := s.ActivePlayers()
	if active > maxPlayers {
		return 0, &scen.PlayerCountExceededError{
			Active: active,
			Max:    maxPlayers,
			Target: target,
		}
	}
	kept := make([]scen.PlayerRecord, 0, maxPlayers)
	for i := range s.Players {
		if s.Players[i].Active {
			kept = append(kept, s.Players[i])
		}
	}
	for i := range s.Players {
		if len(kept) == maxPlayers {
			break
		}
		if !s.Players[i].Active {
			kept = append(kept, s.Players[i])
		}
	}
	dropped := len(s.Players) - len(kept)
	s.Players = kept
	return dropped, nil
}

// resizeStances makes every stance vector exactly one entry per player
// slot, extending with the neutral default and truncating extras.
func resizeStances(s *scen.Scenario) {
	n := len(s.Players)
	for i := range s.Players {
		st := s.Players[i].Stances
		for len(st) < n {
			st = append(st, scen.StanceNeutral)
		}
		s.Players[i].Stances = st[:n]
	}
}

// resizeUseAI makes the use-AI vector match the player slot count and
// reports whether any flag is set afterwards.
func resizeUseAI(s *scen.Scenario) bool {
	n := len(s.Players)
	flags := s.AI.UseAI
	for len(flags) < n {
		flags = append(flags, false)
	}
	s.AI.UseAI = flags[:n]
	any := false
	for _, f := range s.AI.UseAI {
		if f {
			any = true
		}
	}
	return any
}
