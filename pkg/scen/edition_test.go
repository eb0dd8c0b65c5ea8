package scen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		tag  string
		want Edition
	}{
		{"1.10", EditionOriginal},
		{"1.14", EditionExpansion},
		{"1.21", EditionConquerors},
		{"1.26", EditionHD},
		{"1.32", EditionCommunityPatched},
		{"1.37", EditionDefinitive},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			var tag [4]byte
			copy(tag[:], tt.tag)
			got, err := ParseTag(tag)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tag, got.Tag())
		})
	}
}

func TestParseTagUnknown(t *testing.T) {
	for _, raw := range []string{"1.00", "2.00", "\x00\x00\x00\x00", "scx!"} {
		var tag [4]byte
		copy(tag[:], raw)
		_, err := ParseTag(tag)
		var unknown *UnknownEditionTagError
		require.ErrorAs(t, err, &unknown, "tag %q", raw)
		assert.Equal(t, tag, unknown.Tag)
	}
}

func TestParseName(t *testing.T) {
	for _, e := range Editions() {
		got, err := ParseName(e.String())
		require.NoError(t, err)
		assert.Equal(t, e, got)
	}

	_, err := ParseName("bronze-age")
	var unknown *UnknownEditionTagError
	assert.ErrorAs(t, err, &unknown)
}

func TestCapabilities(t *testing.T) {
	tests := []struct {
		edition Edition
		check   func(*testing.T, Capabilities)
	}{
		{EditionOriginal, func(t *testing.T, c Capabilities) {
			assert.Equal(t, 4, c.MaxPlayers)
			assert.Equal(t, 1, c.TileLayerWidth)
			assert.False(t, c.SupportsTriggers)
			assert.False(t, c.SupportsAIInfo)
			assert.Equal(t, 2, c.StringPrefixWidth)
		}},
		{EditionExpansion, func(t *testing.T, c Capabilities) {
			assert.Equal(t, 8, c.MaxPlayers)
			assert.False(t, c.SupportsTriggers)
			assert.True(t, c.SupportsAIInfo)
			assert.Equal(t, 4, c.StringPrefixWidth)
		}},
		{EditionConquerors, func(t *testing.T, c Capabilities) {
			assert.Equal(t, 8, c.MaxPlayers)
			assert.True(t, c.SupportsTriggers)
			assert.True(t, c.SupportsAIInfo)
		}},
		{EditionDefinitive, func(t *testing.T, c Capabilities) {
			assert.Equal(t, 16, c.MaxPlayers)
			assert.Equal(t, 2, c.TileLayerWidth)
			assert.True(t, c.SupportsTriggers)
			assert.True(t, c.SupportsAIInfo)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.edition.String(), func(t *testing.T) {
			tt.check(t, tt.edition.Capabilities())
		})
	}
}

func TestCapabilitiesCoverAllEditions(t *testing.T) {
	for _, e := range Editions() {
		caps := e.Capabilities()
		assert.Positive(t, caps.MaxPlayers, "%v", e)
		assert.Contains(t, []int{1, 2}, caps.TileLayerWidth, "%v", e)
		assert.Contains(t, []int{2, 4}, caps.StringPrefixWidth, "%v", e)
		assert.Equal(t, VariantDeflateRaw, caps.Compression, "%v", e)
	}
}
