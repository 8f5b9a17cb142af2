package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/encoding/charmap"
)

func TestHostDisplayRoundTrip(t *testing.T) {
	seen := make(map[byte]int)
	for i := 0; i < 256; i++ {
		seen[HostToDisplay(byte(i))]++
	}

	checked := 0
	for i := 0; i < 256; i++ {
		b := byte(i)
		d := HostToDisplay(b)
		if seen[d] != 1 {
			continue
		}
		checked++
		assert.Equal(t, b, DisplayToHost(d), "host 0x%02x via display 0x%02x", b, d)
	}
	assert.Greater(t, checked, 180, "most host codes should map injectively")
}

func TestHostToDisplay_MatchesCP037(t *testing.T) {
	// 0x41 is a required space on the host; the table draws it as a plain space.
	for i := 0x42; i < 0xff; i++ {
		b := byte(i)
		want := charmap.CodePage037.DecodeByte(b)
		assert.Equal(t, want, HostToRune(b), "host 0x%02x", b)
	}
}

func TestUnmappedDefaults(t *testing.T) {
	assert.Equal(t, byte(' '), HostToDisplay(0x00))
	assert.Equal(t, byte(' '), HostToDisplay(0xff))
	assert.Equal(t, byte(0), DisplayToHost(0x80))
	assert.Equal(t, uint16(0), DisplayToGlyph(0x01))
}

func TestKnownCodes(t *testing.T) {
	assert.Equal(t, byte('A'), HostToDisplay(0xc1))
	assert.Equal(t, byte('0'), HostToDisplay(0xf0))
	assert.Equal(t, EBCDICSpace, DisplayToHost(' '))
	assert.Equal(t, uint16(0x10), DisplayToGlyph(' '))
	assert.Equal(t, uint16(0x10), HostToGlyph(EBCDICSpace))
	assert.Equal(t, DisplayToGlyph('A'), HostToGlyph(0xc1))
}

func TestRuneToHost(t *testing.T) {
	h, ok := RuneToHost('a')
	assert.True(t, ok)
	assert.Equal(t, byte(0x81), h)

	_, ok = RuneToHost('€')
	assert.False(t, ok)

	_, ok = RuneToHost('\u0085')
	assert.False(t, ok)
}
