// Package scen holds the pure scenario types shared by the codec, the
// conversion engine and external consumers: editions and their capability
// tables, the in-memory scenario aggregate, and the error taxonomy.
package scen

import "fmt"

// Edition identifies one of the six historically distinct binary layouts
// for a scenario save. The ordinal order is chronological and is used to
// decide upgrade/downgrade direction.
type Edition uint8

const (
	// EditionOriginal is the base game release.
	EditionOriginal Edition = iota
	// EditionExpansion is the first expansion.
	EditionExpansion
	// EditionConquerors is the "conquerors" expansion.
	EditionConquerors
	// EditionHD is the HD re-release.
	EditionHD
	// EditionCommunityPatched is the community-patched build.
	EditionCommunityPatched
	// EditionDefinitive is the modern definitive re-release.
	EditionDefinitive

	editionCount
)

// CompressionVariant selects how the payload block is framed.
type CompressionVariant uint8

// VariantDeflateRaw is a single raw-deflate stream with no container
// framing. Every supported edition uses it.
const VariantDeflateRaw CompressionVariant = 0

// Capabilities declares, per edition, which fields and sections exist in
// the file layout and how wide they are.
type Capabilities struct {
	// MaxPlayers is the highest player slot count the layout can store.
	MaxPlayers int
	// TileLayerWidth is the storage width in bytes of the layered-terrain
	// field of each tile: 1 in older editions, 2 in the definitive edition.
	TileLayerWidth int
	// SupportsTriggers reports whether the layout has a trigger section.
	SupportsTriggers bool
	// SupportsAIInfo reports whether the layout has an embedded AI section.
	SupportsAIInfo bool
	// StringPrefixWidth is the byte width (2 or 4) of string length
	// prefixes in this edition's sections.
	StringPrefixWidth int
	// Compression identifies the payload block framing.
	Compression CompressionVariant
}

var editionTags = [editionCount][4]byte{
	EditionOriginal:         {'1', '.', '1', '0'},
	EditionExpansion:        {'1', '.', '1', '4'},
	EditionConquerors:       {'1', '.', '2', '1'},
	EditionHD:               {'1', '.', '2', '6'},
	EditionCommunityPatched: {'1', '.', '3', '2'},
	EditionDefinitive:       {'1', '.', '3', '7'},
}

var editionNames = [editionCount]string{
	EditionOriginal:         "original",
	EditionExpansion:        "expansion",
	EditionConquerors:       "conquerors",
	EditionHD:               "hd",
	EditionCommunityPatched: "communityPatched",
	EditionDefinitive:       "definitive",
}

// Editions returns all supported editions in chronological order.
func Editions() []Edition {
	out := make([]Edition, 0, int(editionCount))
	for e := Edition(0); e < editionCount; e++ {
		out = append(out, e)
	}
	return out
}

// Tag returns the 4-byte ASCII version tag that leads a scenario file of
// this edition.
func (e Edition) Tag() [4]byte {
	return editionTags[e]
}

// String returns the short ASCII token for the edition, e.g. "conquerors".
func (e Edition) String() string {
	if e >= editionCount {
		return fmt.Sprintf("Edition(%d)", uint8(e))
	}
	return editionNames[e]
}

// Capabilities returns the capability table for the edition. The mapping
// is a pure lookup with no mutable state.
func (e Edition) Capabilities() Capabilities {
	switch e {
	case EditionOriginal:
		return Capabilities{
			MaxPlayers:        4,
			TileLayerWidth:    1,
			StringPrefixWidth: 2,
			Compression:       VariantDeflateRaw,
		}
	case EditionExpansion:
		return Capabilities{
			MaxPlayers:        8,
			TileLayerWidth:    1,
			SupportsAIInfo:    true,
			StringPrefixWidth: 4,
			Compression:       VariantDeflateRaw,
		}
	case EditionConquerors, EditionHD, EditionCommunityPatched:
		return Capabilities{
			MaxPlayers:        8,
			TileLayerWidth:    1,
			SupportsTriggers:  true,
			SupportsAIInfo:    true,
			StringPrefixWidth: 4,
			Compression:       VariantDeflateRaw,
		}
	case EditionDefinitive:
		return Capabilities{
			MaxPlayers:        16,
			TileLayerWidth:    2,
			SupportsTriggers:  true,
			SupportsAIInfo:    true,
			StringPrefixWidth: 4,
			Compression:       VariantDeflateRaw,
		}
	default:
		panic(fmt.Sprintf("scen: no capability table for %v", e))
	}
}

// ParseTag sniffs the edition from the leading 4-byte version tag of a
// scenario file. It is the only place version detection happens.
func ParseTag(tag [4]byte) (Edition, error) {
	for e := Edition(0); e < editionCount; e++ {
		if editionTags[e] == tag {
			return e, nil
		}
	}
	return 0, &UnknownEditionTagError{Tag: tag}
}

// ParseName resolves the short ASCII token used at the CLI and FFI
// boundaries ("original", "hd", ...) to an edition.
func ParseName(name string) (Edition, error) {
	for e := Edition(0); e < editionCount; e++ {
		if editionNames[e] == name {
			return e, nil
		}
	}
	var tag [4]byte
	copy(tag[:], name)
	return 0, &UnknownEditionTagError{Tag: tag}
}
