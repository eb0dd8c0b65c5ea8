package scen

import "time"

// Header is the uncompressed part of a scenario file: save timestamp,
// free-text description, player count and, in the definitive edition, the
// author name.
type Header struct {
	Timestamp   uint32
	Description string
	Author      string
	PlayerCount uint32
}

// Touch refreshes the save timestamp to the current time.
func (h *Header) Touch() {
	h.Timestamp = uint32(time.Now().Unix())
}

// Tile is one cell of the rectangular map grid. Layer is stored at the
// widest supported representation (two bytes); narrowing to one-byte
// editions is validated at encode time.
type Tile struct {
	Terrain   uint8
	Elevation uint8
	Layer     uint16
	Overlay   uint8
}

// Map is the tile grid, width by height, row-major. The grid is fixed at
// load time and never resized by conversion.
type Map struct {
	Width  uint32
	Height uint32
	Tiles  []Tile
}

// Tile returns a pointer to the tile at (x, y), or nil when out of bounds.
func (m *Map) Tile(x, y uint32) *Tile {
	if x >= m.Width || y >= m.Height {
		return nil
	}
	return &m.Tiles[y*m.Width+x]
}

// Stance is a player's diplomatic stance toward another player slot.
type Stance uint8

const (
	// StanceAlly marks the other player as an ally.
	StanceAlly Stance = 0
	// StanceNeutral is the neutral default.
	StanceNeutral Stance = 1
	// StanceEnemy marks the other player as an enemy.
	StanceEnemy Stance = 3
)

// StartResources are a player's stockpiles at scenario start.
type StartResources struct {
	Food       int32
	Wood       int32
	Gold       int32
	Stone      int32
	Population int32
}

// PlayerRecord is one player slot. Stances has one entry per declared
// player slot, self included; it is stored per-slot to preserve
// asymmetric legacy data.
type PlayerRecord struct {
	Name         string
	Civilization int32
	Active       bool
	Resources    StartResources
	Stances      []Stance
}

// VictorySettings are the global victory conditions of the scenario.
type VictorySettings struct {
	Conquest        bool
	RequiredRelics  int32
	ExploredPercent int32
	AllCustom       bool
	Score           int32
	TimeLimit       int32
}

// TriggerCondition describes when a trigger can fire.
type TriggerCondition struct {
	Type       int32
	Properties []int32
}

// TriggerEffect describes the response when a trigger fires.
type TriggerEffect struct {
	Type       int32
	Properties []int32
	ChatText   string
	SoundFile  string
}

// Trigger is one entry of the scenario's ordered trigger list.
// ConditionOrder and EffectOrder are display orders, carried verbatim.
type Trigger struct {
	Name           string
	Enabled        bool
	Looping        bool
	Conditions     []TriggerCondition
	ConditionOrder []int32
	Effects        []TriggerEffect
	EffectOrder    []int32
}

// AIFile is one embedded AI script: per-script file name plus content.
type AIFile struct {
	Name    string
	Content string
}

// AIInfo is the embedded AI section: script files plus a per-player-slot
// use-AI flag vector.
type AIInfo struct {
	Files []AIFile
	UseAI []bool
}

// Scenario is the canonical in-memory aggregate of a loaded scenario. It
// is the single owner of all section data; sections an edition does not
// support are present but empty, never nil-for-absent.
type Scenario struct {
	Edition  Edition
	Header   Header
	Map      Map
	Players  []PlayerRecord
	Victory  VictorySettings
	Triggers []Trigger
	AI       AIInfo
}

// ActivePlayers counts the player slots marked active.
func (s *Scenario) ActivePlayers() int {
	n := 0
	for i := range s.Players {
		if s.Players[i].Active {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the scenario. Conversion works on a clone
// so a failed conversion never leaves a partially mutated aggregate.
func (s *Scenario) Clone() *Scenario {
	out := *s
	out.Map.Tiles = append([]Tile(nil), s.Map.Tiles...)
	out.Players = make([]PlayerRecord, len(s.Players))
	for i, p := range s.Players {
		p.Stances = append([]Stance(nil), p.Stances...)
		out.Players[i] = p
	}
	out.Triggers = make([]Trigger, len(s.Triggers))
	for i, t := range s.Triggers {
		t.Conditions = cloneConditions(t.Conditions)
		t.ConditionOrder = append([]int32(nil), t.ConditionOrder...)
		t.Effects = cloneEffects(t.Effects)
		t.EffectOrder = append([]int32(nil), t.EffectOrder...)
		out.Triggers[i] = t
	}
	out.AI.Files = append([]AIFile(nil), s.AI.Files...)
	out.AI.UseAI = append([]bool(nil), s.AI.UseAI...)
	return &out
}

func cloneConditions(in []TriggerCondition) []TriggerCondition {
	out := make([]TriggerCondition, len(in))
	for i, c := range in {
		c.Properties = append([]int32(nil), c.Properties...)
		out[i] = c
	}
	return out
}

func cloneEffects(in []TriggerEffect) []TriggerEffect {
	out := make([]TriggerEffect, len(in))
	for i, e := range in {
		e.Properties = append([]int32(nil), e.Properties...)
		out[i] = e
	}
	return out
}
