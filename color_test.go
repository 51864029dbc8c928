package lvgo

import (
	"image/color"
	"testing"
)

func TestRGB(t *testing.T) {
	tests := []struct {
		name string
		got  Color
		want Color
	}{
		{"white", RGB(255, 255, 255), 0xFFFF},
		{"black", RGB(0, 0, 0), 0x0000},
		{"red", RGB(255, 0, 0), 0xF800},
		{"green", RGB(0, 255, 0), 0x07E0},
		{"blue", Hex(0x0000FF), 0x001F},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %#04x, want %#04x", tt.name, uint16(tt.got), uint16(tt.want))
		}
	}
}

func TestColorModel(t *testing.T) {
	if got := ColorModel.Convert(color.RGBA{R: 0xFF, A: 0xFF}); got != Color(0xF800) {
		t.Errorf("Convert(red) = %v", got)
	}
	r, g, b, a := ColorWhite.RGBA()
	if r != 0xFFFF || g != 0xFFFF || b != 0xFFFF || a != 0xFFFF {
		t.Errorf("white.RGBA() = %x %x %x %x", r, g, b, a)
	}
}
