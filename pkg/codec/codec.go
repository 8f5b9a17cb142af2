package codec

import (
	"golang.org/x/text/encoding/charmap"
)

// Well-known host codes.
const (
	EBCDICNull  byte = 0x00
	EBCDICSO    byte = 0x0e
	EBCDICSI    byte = 0x0f
	EBCDICSpace byte = 0x40
	EBCDICDup   byte = 0x1c
	EBCDICFM    byte = 0x1e
)

// HostToDisplay translates a host code to its display code.
func HostToDisplay(b byte) byte {
	return ebcdicToLatin1[b]
}

// DisplayToHost translates a display code to its host code.
// Display codes with no host equivalent map to zero.
func DisplayToHost(b byte) byte {
	return latin1ToEBCDIC[b]
}

// DisplayToGlyph returns the glyph index used to draw a display code.
func DisplayToGlyph(b byte) uint16 {
	return latin1ToGlyph[b]
}

// HostToGlyph returns the glyph index used to draw a host code.
func HostToGlyph(b byte) uint16 {
	return ebcdicToGlyph[b]
}

// HostToRune decodes a host code into the rune displayed for it.
func HostToRune(b byte) rune {
	return charmap.ISO8859_1.DecodeByte(HostToDisplay(b))
}

// RuneToHost encodes a rune as a host code. Runes outside the display
// character set report false.
func RuneToHost(r rune) (byte, bool) {
	d, ok := charmap.ISO8859_1.EncodeRune(r)
	if !ok {
		return 0, false
	}
	h := DisplayToHost(d)
	if h == 0 && d != 0 {
		return 0, false
	}
	return h, true
}
