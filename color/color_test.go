package color

import (
	stdcolor "image/color"
	"testing"
)

// Verify at compile time that NRGBA's result implements color.Color.
var _ stdcolor.Color = ColorU8{}.NRGBA()

func TestColorU8Hex(t *testing.T) {
	c := FromHexU8(0x80FF0000)
	want := ColorU8{R: 255, G: 0, B: 0, A: 128}
	if c != want {
		t.Errorf("FromHexU8 = %+v, want %+v", c, want)
	}
	if got := c.Hex(); got != 0x80FF0000 {
		t.Errorf("Hex() = %#08x, want 0x80ff0000", got)
	}
}

func TestColorF32Hex(t *testing.T) {
	c := FromHexF32(0xFF00FF00)
	if c.R != 0 || c.G != 1 || c.B != 0 || c.A != 1 {
		t.Errorf("FromHexF32 = %+v, want opaque green", c)
	}
	if got := c.Hex(); got != 0xFF00FF00 {
		t.Errorf("Hex() = %#08x, want 0xff00ff00", got)
	}
}

func TestFromColor(t *testing.T) {
	tests := []struct {
		name string
		c    stdcolor.Color
		want uint32
	}{
		{"nrgba", stdcolor.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0x78}, 0x78123456},
		{"opaque rgba", stdcolor.RGBA{R: 10, G: 20, B: 30, A: 255}, 0xFF0A141E},
		{"transparent", stdcolor.Transparent, 0x00000000},
		{"opaque black", stdcolor.Black, 0xFF000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromColor(tt.c); got != tt.want {
				t.Errorf("FromColor(%v) = %#08x, want %#08x", tt.c, got, tt.want)
			}
		})
	}
}

func TestNRGBARoundTrip(t *testing.T) {
	for _, hex := range []uint32{0x80FF0000, 0x12345678, 0xFFFFFFFF, 0x01020304} {
		if got := FromColor(FromHexU8(hex).NRGBA()); got != hex {
			t.Errorf("FromColor(FromHexU8(%#08x).NRGBA()) = %#08x", hex, got)
		}
	}
}

func TestNamed(t *testing.T) {
	tests := []struct {
		name string
		want uint32
		ok   bool
	}{
		{"red", 0xFFFF0000, true},
		{"cornflowerblue", 0xFF6495ED, true},
		{"white", 0xFFFFFFFF, true},
		{"not-a-color", 0, false},
		{"Red", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Named(tt.name)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Named(%q) = (%#08x, %v), want (%#08x, %v)", tt.name, got, ok, tt.want, tt.ok)
			}
		})
	}
}
