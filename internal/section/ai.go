package section

import (
	"fmt"

	"github.com/scxtools/scx/internal/wire"
	"github.com/scxtools/scx/pkg/scen"
)

// DecodeAI reads the embedded AI section: script files and the per-player
// use-AI flag vector. Editions without AI embedding carry no bytes; the
// result is structurally present with all flags off.
func DecodeAI(r *wire.Reader, ed scen.Edition, declared uint32) (scen.AIInfo, error) {
	caps := ed.Capabilities()
	ai := scen.AIInfo{
		Files: []scen.AIFile{},
		UseAI: make([]bool, declared),
	}
	if !caps.SupportsAIInfo {
		return ai, nil
	}
	r.SetSection("ai")

	nfiles, err := r.Uint32("fileCount")
	if err != nil {
		return ai, err
	}
	if err := checkListLength("ai", "fileCount", nfiles); err != nil {
		return ai, err
	}
	for i := uint32(0); i < nfiles; i++ {
		var f scen.AIFile
		if f.Name, err = r.String("fileName", caps.StringPrefixWidth); err != nil {
			return ai, err
		}
		if f.Content, err = r.String("fileContent", caps.StringPrefixWidth); err != nil {
			return ai, err
		}
		ai.Files = append(ai.Files, f)
	}
	for i := uint32(0); i < declared; i++ {
		v, err := r.Uint8("useAI")
		if err != nil {
			return ai, err
		}
		ai.UseAI[i] = v != 0
	}
	return ai, nil
}

// EncodeAI writes the embedded AI section for editions that support it.
func EncodeAI(w *wire.Writer, ed scen.Edition, ai scen.AIInfo, declared uint32) error {
	caps := ed.Capabilities()
	if !caps.SupportsAIInfo {
		if len(ai.Files) > 0 {
			return fmt.Errorf("%d AI files present but edition %v has no AI section", len(ai.Files), ed)
		}
		return nil
	}
	w.SetSection("ai")

	if len(ai.UseAI) != int(declared) {
		return &scen.MissingRequiredFieldError{
			Section: "ai", Field: "useAI", Target: ed,
		}
	}
	w.Uint32(uint32(len(ai.Files)))
	for _, f := range ai.Files {
		if err := w.String("fileName", caps.StringPrefixWidth, f.Name); err != nil {
			return err
		}
		if err := w.String("fileContent", caps.StringPrefixWidth, f.Content); err != nil {
			return err
		}
	}
	for _, use := range ai.UseAI {
		if use {
			w.Uint8(1)
		} else {
			w.Uint8(0)
		}
	}
	return nil
}
