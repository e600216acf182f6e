package loupe

// Pixels are stored as 32-bit packed ARGB words with straight alpha:
// alpha in bits 24-31, red in 16-23, green in 8-15, blue in 0-7.

// PackARGB packs four 8-bit channels into a single ARGB word.
func PackARGB(a, r, g, b uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Alpha extracts the alpha channel of a packed ARGB word.
func Alpha(p uint32) uint8 { return uint8(p >> 24) }

// Red extracts the red channel of a packed ARGB word.
func Red(p uint32) uint8 { return uint8(p >> 16) }

// Green extracts the green channel of a packed ARGB word.
func Green(p uint32) uint8 { return uint8(p >> 8) }

// Blue extracts the blue channel of a packed ARGB word.
func Blue(p uint32) uint8 { return uint8(p) }

// RGBA represents a straight-alpha color with components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Packed converts the color to a packed ARGB word.
func (c RGBA) Packed() uint32 {
	return PackARGB(
		uint8(clamp255(c.A*255+0.5)),
		uint8(clamp255(c.R*255+0.5)),
		uint8(clamp255(c.G*255+0.5)),
		uint8(clamp255(c.B*255+0.5)),
	)
}

// FromPacked converts a packed ARGB word to an RGBA color.
func FromPacked(p uint32) RGBA {
	return RGBA{
		R: float64(Red(p)) / 255,
		G: float64(Green(p)) / 255,
		B: float64(Blue(p)) / 255,
		A: float64(Alpha(p)) / 255,
	}
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA{}
)
