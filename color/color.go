package color

import (
	stdcolor "image/color"

	"golang.org/x/image/colornames"
)

// ColorF32 represents a color with float32 components in [0,1].
type ColorF32 struct {
	R, G, B, A float32
}

// ColorU8 represents a color with uint8 components in [0,255].
type ColorU8 struct {
	R, G, B, A uint8
}

// FromHexF32 unpacks hex into a ColorF32.
func FromHexF32(hex uint32) ColorF32 {
	r, g, b, a := HexToRGBAFloat(hex)
	return ColorF32{R: r, G: g, B: b, A: a}
}

// FromHexU8 unpacks hex into a ColorU8.
func FromHexU8(hex uint32) ColorU8 {
	r, g, b, a := HexToRGBAInt(hex)
	return ColorU8{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}
}

// Hex packs c into 0xAARRGGBB, truncating each channel like RGBAToHex.
func (c ColorF32) Hex() uint32 {
	return RGBAToHex(c.R, c.G, c.B, c.A)
}

// Hex packs c into 0xAARRGGBB.
func (c ColorU8) Hex() uint32 {
	return PackRGBA(uint32(c.R), uint32(c.G), uint32(c.B), uint32(c.A))
}

// NRGBA converts c to the standard library's non-premultiplied color.
func (c ColorU8) NRGBA() stdcolor.NRGBA {
	return stdcolor.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor packs any color.Color into 0xAARRGGBB.
// Premultiplied colors are converted to straight alpha first.
func FromColor(c stdcolor.Color) uint32 {
	n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	return ColorU8{R: n.R, G: n.G, B: n.B, A: n.A}.Hex()
}

// Named returns the packed value of an SVG 1.1 color keyword such as
// "cornflowerblue". Keywords are lower case. All named colors are opaque.
func Named(name string) (uint32, bool) {
	c, ok := colornames.Map[name]
	if !ok {
		return 0, false
	}
	return FromColor(c), true
}
