// Package scx is the codec facade: it loads scenario files of any
// supported edition into a scen.Scenario aggregate and saves an aggregate
// into the byte layout of any target edition, converting first when the
// editions differ.
package scx

import (
	"bytes"
	"compress/flate"
	"io"
	"os"

	"github.com/scxtools/scx/internal/convert"
	"github.com/scxtools/scx/internal/section"
	"github.com/scxtools/scx/internal/wire"
	"github.com/scxtools/scx/pkg/scen"
)

// Load reads a scenario of any supported edition. The edition is sniffed
// from the leading 4-byte tag; an unknown tag fails before any further
// input is consumed. Inner codec errors propagate with their original
// types intact.
func Load(r io.Reader) (*scen.Scenario, error) {
	var tag [4]byte
	if got, err := io.ReadFull(r, tag[:]); err != nil {
		return nil, &scen.TruncatedInputError{
			Section: "tag", Field: "edition",
			Offset: int64(got), Want: 4, Got: got,
		}
	}
	ed, err := scen.ParseTag(tag)
	if err != nil {
		return nil, err
	}
	caps := ed.Capabilities()

	hr := wire.NewReader(r)
	header, err := section.DecodeHeader(hr, ed)
	if err != nil {
		return nil, err
	}

	compressed, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	body, err := wire.Decompress(caps.Compression, compressed)
	if err != nil {
		return nil, err
	}

	br := wire.NewReader(bytes.NewReader(body))
	m, err := section.DecodeMap(br, ed)
	if err != nil {
		return nil, err
	}
	players, err := section.DecodePlayers(br, ed, header.PlayerCount)
	if err != nil {
		return nil, err
	}
	victory, err := section.DecodeDiplomacy(br, ed, players)
	if err != nil {
		return nil, err
	}
	triggers, err := section.DecodeTriggers(br, ed)
	if err != nil {
		return nil, err
	}
	ai, err := section.DecodeAI(br, ed, header.PlayerCount)
	if err != nil {
		return nil, err
	}

	return &scen.Scenario{
		Edition:  ed,
		Header:   header,
		Map:      m,
		Players:  players,
		Victory:  victory,
		Triggers: triggers,
		AI:       ai,
	}, nil
}

// LoadFile reads a scenario from a file on disk.
func LoadFile(path string) (*scen.Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Convert migrates the aggregate to the target edition without
// serializing it. The identity conversion is a no-op.
func Convert(s *scen.Scenario, target scen.Edition) (*scen.Scenario, []scen.LossNote, error) {
	return convert.Convert(s, target)
}

// Save serializes the aggregate into the target edition's layout with the
// default compression level, converting first when the target differs
// from the aggregate's edition. Loss notes from the conversion are
// returned alongside the bytes.
func Save(s *scen.Scenario, target scen.Edition) ([]byte, []scen.LossNote, error) {
	return SaveLevel(s, target, flate.DefaultCompression)
}

// SaveLevel is Save with an explicit deflate level.
func SaveLevel(s *scen.Scenario, target scen.Edition, level int) ([]byte, []scen.LossNote, error) {
	out, notes, err := convert.Convert(s, target)
	if err != nil {
		return nil, nil, err
	}
	caps := target.Capabilities()

	hw := wire.NewWriter()
	if err := section.EncodeHeader(hw, target, out.Header); err != nil {
		return nil, nil, err
	}

	bw := wire.NewWriter()
	if err := section.EncodeMap(bw, target, out.Map); err != nil {
		return nil, nil, err
	}
	if err := section.EncodePlayers(bw, target, out.Players, out.Header.PlayerCount); err != nil {
		return nil, nil, err
	}
	if err := section.EncodeDiplomacy(bw, target, out.Players, out.Victory); err != nil {
		return nil, nil, err
	}
	if err := section.EncodeTriggers(bw, target, out.Triggers); err != nil {
		return nil, nil, err
	}
	if err := section.EncodeAI(bw, target, out.AI, out.Header.PlayerCount); err != nil {
		return nil, nil, err
	}

	compressed, err := wire.Compress(caps.Compression, bw.Bytes(), level)
	if err != nil {
		return nil, nil, err
	}

	tag := target.Tag()
	buf := make([]byte, 0, 4+len(hw.Bytes())+len(compressed))
	buf = append(buf, tag[:]...)
	buf = append(buf, hw.Bytes()...)
	buf = append(buf, compressed...)
	return buf, notes, nil
}

// SaveFile serializes the aggregate and writes it to path. The output is
// built fully in memory first, so a failed encode never leaves a
// half-written file.
func SaveFile(s *scen.Scenario, target scen.Edition, path string) ([]scen.LossNote, error) {
	data, notes, err := Save(s, target)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, err
	}
	return notes, nil
}
