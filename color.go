package lvgo

import (
	"image/color"

	"github.com/agiangrant/lvgo/internal/native"
)

// Color is a pixel in the engine's native RGB565 format.
type Color uint16

// RGB packs an 8-bit-per-channel color into RGB565.
func RGB(r, g, b uint8) Color {
	return Color(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// Hex converts a 0xRRGGBB value.
func Hex(rgb uint32) Color {
	return RGB(uint8(rgb>>16), uint8(rgb>>8), uint8(rgb))
}

// RGBA implements color.Color. Channels are widened by bit replication so
// full intensity maps to 0xffff.
func (c Color) RGBA() (r, g, b, a uint32) {
	r5 := uint32(c>>11) & 0x1f
	g6 := uint32(c>>5) & 0x3f
	b5 := uint32(c) & 0x1f
	r8 := r5<<3 | r5>>2
	g8 := g6<<2 | g6>>4
	b8 := b5<<3 | b5>>2
	return r8 | r8<<8, g8 | g8<<8, b8 | b8<<8, 0xffff
}

// ColorModel converts any color.Color to Color.
var ColorModel = color.ModelFunc(func(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
})

// Some colors of the default theme palette.
var (
	ColorWhite = Color(0xFFFF)
	ColorBlack = Color(0x0000)
	ColorRed   = Hex(0xF44336)
	ColorGreen = Hex(0x4CAF50)
	ColorBlue  = Hex(0x2196F3)
)

// Coord is an engine coordinate.
type Coord = native.Coord
