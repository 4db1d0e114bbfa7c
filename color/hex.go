// Package color packs and unpacks 32-bit colors.
//
// The only packed layout is 0xAARRGGBB:
//
//	bits 31-24  alpha
//	bits 23-16  red
//	bits 15-8   green
//	bits 7-0    blue
package color

// HexToRGBAFloat unpacks hex into channels normalized to [0, 1].
func HexToRGBAFloat(hex uint32) (r, g, b, a float32) {
	ri, gi, bi, ai := HexToRGBAInt(hex)
	return normalize(ri), normalize(gi), normalize(bi), normalize(ai)
}

// HexToRGBAInt unpacks hex into channels in [0, 255].
func HexToRGBAInt(hex uint32) (r, g, b, a uint32) {
	a = (hex >> 24) & 0xFF
	r = (hex >> 16) & 0xFF
	g = (hex >> 8) & 0xFF
	b = hex & 0xFF
	return r, g, b, a
}

// PackRGBA packs 8-bit channels into 0xAARRGGBB. Only the low 8 bits of each
// channel are used. It is the exact inverse of HexToRGBAInt.
func PackRGBA(r, g, b, a uint32) uint32 {
	return (a&0xFF)<<24 | (r&0xFF)<<16 | (g&0xFF)<<8 | b&0xFF
}

// RGBAToHex packs normalized channels into 0xAARRGGBB.
//
// Each channel is scaled by 255 and truncated, not rounded, so
// RGBAToHex(HexToRGBAFloat(h)) may come back one step lower per channel.
// Values outside [0, 1] saturate.
func RGBAToHex(r, g, b, a float32) uint32 {
	return PackRGBA(toByte(r), toByte(g), toByte(b), toByte(a))
}

func normalize(c uint32) float32 {
	return float32(float64(c) / 255.0)
}

// toByte scales v to [0, 255] and truncates. NaN maps to 0.
func toByte(v float32) uint32 {
	x := v * 255.0
	if !(x > 0) {
		return 0
	}
	if x >= 255 {
		return 255
	}
	return uint32(x)
}
