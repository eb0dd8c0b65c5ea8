package section

import (
	"fmt"

	"github.com/scxtools/scx/internal/wire"
	"github.com/scxtools/scx/pkg/scen"
)

// maxListLength bounds wire-declared list lengths so corrupt input
// surfaces as a typed error instead of an absurd allocation.
const maxListLength = 1 << 16

func checkListLength(section, field string, n uint32) error {
	if n > maxListLength {
		return &scen.ValueOutOfRangeError{
			Section: section, Field: field,
			Value: int64(n), Max: maxListLength,
		}
	}
	return nil
}

// DecodeTriggers reads the trigger section. Editions without trigger
// support carry no bytes for it; the result is an empty list, never nil
// treated as an error.
func DecodeTriggers(r *wire.Reader, ed scen.Edition) ([]scen.Trigger, error) {
	caps := ed.Capabilities()
	if !caps.SupportsTriggers {
		return []scen.Trigger{}, nil
	}
	r.SetSection("triggers")

	count, err := r.Uint32("triggerCount")
	if err != nil {
		return nil, err
	}
	if err := checkListLength("triggers", "triggerCount", count); err != nil {
		return nil, err
	}
	triggers := make([]scen.Trigger, count)
	for i := range triggers {
		if triggers[i], err = decodeTrigger(r, caps); err != nil {
			return nil, err
		}
	}
	return triggers, nil
}

func decodeTrigger(r *wire.Reader, caps scen.Capabilities) (scen.Trigger, error) {
	var t scen.Trigger
	var err error
	if t.Name, err = r.String("name", caps.StringPrefixWidth); err != nil {
		return t, err
	}
	if t.Enabled, err = r.Bool32("enabled"); err != nil {
		return t, err
	}
	looping, err := r.Uint8("looping")
	if err != nil {
		return t, err
	}
	t.Looping = looping != 0

	ncond, err := r.Uint32("conditionCount")
	if err != nil {
		return t, err
	}
	if err := checkListLength("triggers", "conditionCount", ncond); err != nil {
		return t, err
	}
	t.Conditions = make([]scen.TriggerCondition, ncond)
	for i := range t.Conditions {
		if t.Conditions[i], err = decodeCondition(r); err != nil {
			return t, err
		}
	}
	if t.ConditionOrder, err = decodeOrder(r, "conditionOrder", ncond); err != nil {
		return t, err
	}

	neff, err := r.Uint32("effectCount")
	if err != nil {
		return t, err
	}
	if err := checkListLength("triggers", "effectCount", neff); err != nil {
		return t, err
	}
	t.Effects = make([]scen.TriggerEffect, neff)
	for i := range t.Effects {
		if t.Effects[i], err = decodeEffect(r, caps); err != nil {
			return t, err
		}
	}
	if t.EffectOrder, err = decodeOrder(r, "effectOrder", neff); err != nil {
		return t, err
	}
	return t, nil
}

func decodeCondition(r *wire.Reader) (scen.TriggerCondition, error) {
	var c scen.TriggerCondition
	var err error
	if c.Type, err = r.Int32("conditionType"); err != nil {
		return c, err
	}
	nprops, err := r.Uint32("conditionPropertyCount")
	if err != nil {
		return c, err
	}
	if err := checkListLength("triggers", "conditionPropertyCount", nprops); err != nil {
		return c, err
	}
	c.Properties = make([]int32, nprops)
	for i := range c.Properties {
		if c.Properties[i], err = r.Int32("conditionProperty"); err != nil {
			return c, err
		}
	}
	return c, nil
}

func decodeEffect(r *wire.Reader, caps scen.Capabilities) (scen.TriggerEffect, error) {
	var e scen.TriggerEffect
	var err error
	if e.Type, err = r.Int32("effectType"); err != nil {
		return e, err
	}
	nprops, err := r.Uint32("effectPropertyCount")
	if err != nil {
		return e, err
	}
	if err := checkListLength("triggers", "effectPropertyCount", nprops); err != nil {
		return e, err
	}
	e.Properties = make([]int32, nprops)
	for i := range e.Properties {
		if e.Properties[i], err = r.Int32("effectProperty"); err != nil {
			return e, err
		}
	}
	if e.ChatText, err = r.String("chatText", caps.StringPrefixWidth); err != nil {
		return e, err
	}
	if e.SoundFile, err = r.String("soundFile", caps.StringPrefixWidth); err != nil {
		return e, err
	}
	return e, nil
}

func decodeOrder(r *wire.Reader, field string, n uint32) ([]int32, error) {
	order := make([]int32, n)
	for i := range order {
		var err error
		if order[i], err = r.Int32(field); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// EncodeTriggers writes the trigger section for editions that support it.
// Carrying triggers into an unsupported edition is a conversion defect:
// the engine must have dropped them first.
func EncodeTriggers(w *wire.Writer, ed scen.Edition, triggers []scen.Trigger) error {
	caps := ed.Capabilities()
	if !caps.SupportsTriggers {
		if len(triggers) > 0 {
			return fmt.Errorf("%d triggers present but edition %v has no trigger section", len(triggers), ed)
		}
		return nil
	}
	w.SetSection("triggers")

	w.Uint32(uint32(len(triggers)))
	for i := range triggers {
		if err := encodeTrigger(w, caps, &triggers[i]); err != nil {
			return err
		}
	}
	return nil
}

func encodeTrigger(w *wire.Writer, caps scen.Capabilities, t *scen.Trigger) error {
	if err := w.String("name", caps.StringPrefixWidth, t.Name); err != nil {
		return err
	}
	w.Bool32(t.Enabled)
	if t.Looping {
		w.Uint8(1)
	} else {
		w.Uint8(0)
	}

	w.Uint32(uint32(len(t.Conditions)))
	for i := range t.Conditions {
		c := &t.Conditions[i]
		w.Int32(c.Type)
		w.Uint32(uint32(len(c.Properties)))
		for _, p := range c.Properties {
			w.Int32(p)
		}
	}
	for _, o := range orderOrDefault(t.ConditionOrder, len(t.Conditions)) {
		w.Int32(o)
	}

	w.Uint32(uint32(len(t.Effects)))
	for i := range t.Effects {
		e := &t.Effects[i]
		w.Int32(e.Type)
		w.Uint32(uint32(len(e.Properties)))
		for _, p := range e.Properties {
			w.Int32(p)
		}
		if err := w.String("chatText", caps.StringPrefixWidth, e.ChatText); err != nil {
			return err
		}
		if err := w.String("soundFile", caps.StringPrefixWidth, e.SoundFile); err != nil {
			return err
		}
	}
	for _, o := range orderOrDefault(t.EffectOrder, len(t.Effects)) {
		w.Int32(o)
	}
	return nil
}

// orderOrDefault falls back to identity display order when none was
// carried, so hand-built aggregates encode without one.
func orderOrDefault(order []int32, n int) []int32 {
	if len(order) == n {
		return order
	}
	out := make([]int32, n)
	for i := range out {
		out[i] = int32(i)
	}
	return out
}
