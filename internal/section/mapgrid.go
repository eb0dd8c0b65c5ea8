package section

import (
	"github.com/scxtools/scx/internal/wire"
	"github.com/scxtools/scx/pkg/scen"
)

// maxMapDimension bounds grid dimensions so corrupt input surfaces as a
// typed error instead of an absurd allocation.
const maxMapDimension = 1024

// DecodeMap reads the tile grid. The layered-terrain field is read at the
// edition's storage width (one or two bytes) and always stored widened.
func DecodeMap(r *wire.Reader, ed scen.Edition) (scen.Map, error) {
	caps := ed.Capabilities()
	r.SetSection("map")

	var m scen.Map
	var err error
	if m.Width, err = r.Uint32("width"); err != nil {
		return m, err
	}
	if m.Height, err = r.Uint32("height"); err != nil {
		return m, err
	}
	if m.Width == 0 || m.Width > maxMapDimension {
		return m, &scen.ValueOutOfRangeError{
			Section: "map", Field: "width",
			Value: int64(m.Width), Max: maxMapDimension,
		}
	}
	if m.Height == 0 || m.Height > maxMapDimension {
		return m, &scen.ValueOutOfRangeError{
			Section: "map", Field: "height",
			Value: int64(m.Height), Max: maxMapDimension,
		}
	}

	m.Tiles = make([]scen.Tile, m.Width*m.Height)
	for i := range m.Tiles {
		t := &m.Tiles[i]
		if t.Terrain, err = r.Uint8("terrain"); err != nil {
			return m, err
		}
		if t.Elevation, err = r.Uint8("elevation"); err != nil {
			return m, err
		}
		switch caps.TileLayerWidth {
		case 1:
			v, err := r.Uint8("layer")
			if err != nil {
				return m, err
			}
			t.Layer = uint16(v)
		case 2:
			if t.Layer, err = r.Uint16("layer"); err != nil {
				return m, err
			}
		}
		if t.Overlay, err = r.Uint8("overlay"); err != nil {
			return m, err
		}
	}
	return m, nil
}

// EncodeMap writes the tile grid for the target edition. Narrowing the
// two-byte layer field into a one-byte edition fails for values above
// 0xFF; data loss is explicit, never silent.
func EncodeMap(w *wire.Writer, ed scen.Edition, m scen.Map) error {
	caps := ed.Capabilities()
	w.SetSection("map")

	if len(m.Tiles) != int(m.Width*m.Height) {
		return &scen.MissingRequiredFieldError{
			Section: "map", Field: "tiles", Target: ed,
		}
	}
	w.Uint32(m.Width)
	w.Uint32(m.Height)
	for i := range m.Tiles {
		t := &m.Tiles[i]
		w.Uint8(t.Terrain)
		w.Uint8(t.Elevation)
		switch caps.TileLayerWidth {
		case 1:
			if t.Layer > 0xFF {
				return &scen.ValueOutOfRangeError{
					Section: "map", Field: "layer",
					Index: i, Value: int64(t.Layer), Max: 0xFF,
				}
			}
			w.Uint8(uint8(t.Layer))
		case 2:
			w.Uint16(t.Layer)
		}
		w.Uint8(t.Overlay)
	}
	return nil
}
