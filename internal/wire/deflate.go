package wire

import (
	"bytes"
	"compress/flate"
	"fmt"
	"io"

	"github.com/scxtools/scx/pkg/scen"
)

// Compress frames data per the given compression variant. For the
// raw-deflate variant the level follows compress/flate semantics
// (flate.DefaultCompression through flate.BestCompression).
func Compress(variant scen.CompressionVariant, data []byte, level int) ([]byte, error) {
	switch variant {
	case scen.VariantDeflateRaw:
		var buf bytes.Buffer
		zw, err := flate.NewWriter(&buf, level)
		if err != nil {
			return nil, fmt.Errorf("invalid compression level %d: %w", level, err)
		}
		if _, err := zw.Write(data); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported compression variant %d", variant)
	}
}

// Decompress unframes a payload block. A malformed stream yields
// CorruptCompressedBlock.
func Decompress(variant scen.CompressionVariant, data []byte) ([]byte, error) {
	switch variant {
	case scen.VariantDeflateRaw:
		zr := flate.NewReader(bytes.NewReader(data))
		defer zr.Close()
		out, err := io.ReadAll(zr)
		if err != nil {
			return nil, &scen.CorruptCompressedBlockError{Err: err}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported compression variant %d", variant)
	}
}
