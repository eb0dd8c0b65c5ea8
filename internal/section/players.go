package section

import (
	"github.com/scxtools/scx/internal/wire"
	"github.com/scxtools/scx/pkg/scen"
)

// playerNameSize is the fixed null-padded name buffer, identical in every
// edition.
const playerNameSize = 64

// DecodePlayers reads one record per declared player slot: name buffer,
// civilization, active flag and starting resources. Diplomacy stances
// live in their own section.
func DecodePlayers(r *wire.Reader, ed scen.Edition, declared uint32) ([]scen.PlayerRecord, error) {
	r.SetSection("players")

	players := make([]scen.PlayerRecord, declared)
	for i := range players {
		p := &players[i]
		var err error
		if p.Name, err = r.FixedString("name", playerNameSize); err != nil {
			return nil, err
		}
		if p.Civilization, err = r.Int32("civilization"); err != nil {
			return nil, err
		}
		if p.Active, err = r.Bool32("active"); err != nil {
			return nil, err
		}
		res := &p.Resources
		if res.Food, err = r.Int32("food"); err != nil {
			return nil, err
		}
		if res.Wood, err = r.Int32("wood"); err != nil {
			return nil, err
		}
		if res.Gold, err = r.Int32("gold"); err != nil {
			return nil, err
		}
		if res.Stone, err = r.Int32("stone"); err != nil {
			return nil, err
		}
		if res.Population, err = r.Int32("population"); err != nil {
			return nil, err
		}
	}
	return players, nil
}

// EncodePlayers writes one record per declared player slot.
func EncodePlayers(w *wire.Writer, ed scen.Edition, players []scen.PlayerRecord, declared uint32) error {
	w.SetSection("players")

	if len(players) != int(declared) {
		return &scen.MissingRequiredFieldError{
			Section: "players", Field: "records", Target: ed,
		}
	}
	for i := range players {
		p := &players[i]
		if err := w.FixedString("name", playerNameSize, p.Name); err != nil {
			return err
		}
		w.Int32(p.Civilization)
		w.Bool32(p.Active)
		w.Int32(p.Resources.Food)
		w.Int32(p.Resources.Wood)
		w.Int32(p.Resources.Gold)
		w.Int32(p.Resources.Stone)
		w.Int32(p.Resources.Population)
	}
	return nil
}
