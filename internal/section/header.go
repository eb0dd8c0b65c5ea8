// Package section implements the per-section codecs. Each codec reads
// exactly the fields the given edition's capability table declares, in a
// fixed order, and encodes the mirror image. All value transformation
// happens in the conversion engine; the codecs are structurally
// mechanical.
package section

import (
	"github.com/scxtools/scx/internal/wire"
	"github.com/scxtools/scx/pkg/scen"
)

// DecodeHeader reads the uncompressed header that follows the edition
// tag: timestamp, description, player count and, in the definitive
// edition, the author name.
func DecodeHeader(r *wire.Reader, ed scen.Edition) (scen.Header, error) {
	caps := ed.Capabilities()
	r.SetSection("header")

	var h scen.Header
	var err error
	if h.Timestamp, err = r.Uint32("timestamp"); err != nil {
		return h, err
	}
	if h.Description, err = r.String("description", caps.StringPrefixWidth); err != nil {
		return h, err
	}
	if h.PlayerCount, err = r.Uint32("playerCount"); err != nil {
		return h, err
	}
	if int(h.PlayerCount) > caps.MaxPlayers {
		return h, &scen.ValueOutOfRangeError{
			Section: "header",
			Field:   "playerCount",
			Value:   int64(h.PlayerCount),
			Max:     int64(caps.MaxPlayers),
		}
	}
	if ed == scen.EditionDefinitive {
		if h.Author, err = r.String("author", caps.StringPrefixWidth); err != nil {
			return h, err
		}
	}
	return h, nil
}

// EncodeHeader writes the header for the target edition.
func EncodeHeader(w *wire.Writer, ed scen.Edition, h scen.Header) error {
	caps := ed.Capabilities()
	w.SetSection("header")

	if int(h.PlayerCount) > caps.MaxPlayers {
		return &scen.ValueOutOfRangeError{
			Section: "header",
			Field:   "playerCount",
			Value:   int64(h.PlayerCount),
			Max:     int64(caps.MaxPlayers),
		}
	}
	w.Uint32(h.Timestamp)
	if err := w.String("description", caps.StringPrefixWidth, h.Description); err != nil {
		return err
	}
	w.Uint32(h.PlayerCount)
	if ed == scen.EditionDefinitive {
		if err := w.String("author", caps.StringPrefixWidth, h.Author); err != nil {
			return err
		}
	}
	return nil
}
