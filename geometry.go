package loupe

import "math"

// Point represents a normalized 2D position or size with components
// typically in [0, 1].
type Point struct {
	X, Y float64
}

// ResolvedRegion holds the pixel-space geometry of one region for a single
// frame: the integer source and destination rectangles and the zoom factor
// in effect at the current fade. Resolved geometry is recomputed every frame
// and never persisted.
type ResolvedRegion struct {
	SrcX0, SrcY0, SrcW, SrcH int
	DstX0, DstY0, DstW, DstH int
	RealZoom                 float64
}

// srcCenter returns the pixel-space center of the source rectangle.
// Integer division matches the drawing arithmetic of the effect.
func (r ResolvedRegion) srcCenter() (int, int) {
	return r.SrcX0 + r.SrcW/2, r.SrcY0 + r.SrcH/2
}

// dstCenter returns the pixel-space center of the destination rectangle.
func (r ResolvedRegion) dstCenter() (int, int) {
	return r.DstX0 + r.DstW/2, r.DstY0 + r.DstH/2
}

// ResolveRegion converts one region's normalized configuration plus the
// current fade into pixel-space geometry for a width×height frame.
//
// Both source dimensions scale off the frame height, so source rectangles
// keep their shape across aspect-ratio changes; the X axis is intentionally
// not scaled by the frame width. Centers go through a ×2−0.5 remapping:
// a normalized center of 0.5 lands on the true frame center while the
// usable range is doubled.
//
// At fade 0 the destination rectangle coincides with the source rectangle
// (zoom 1); as fade approaches 1 the zoom ramps to DstZoom×10 and the
// rectangle's center travels from SrcCenter to DstCenter. Out-of-range
// configuration values are not rejected; they merely produce off-frame or
// degenerate rectangles.
func ResolveRegion(region RegionConfig, fade float64, width, height int) ResolvedRegion {
	w := float64(width)
	h := float64(height)

	srcW := roundi(region.SrcSize.X * h)
	srcH := roundi(region.SrcSize.Y * h)
	srcX0 := roundi((region.SrcCenter.X*2-0.5)*w - float64(srcW)/2)
	srcY0 := roundi((region.SrcCenter.Y*2-0.5)*h - float64(srcH)/2)

	realZoom := lerp(fade, 1, region.DstZoom*10)
	dstW := roundi(float64(srcW) * realZoom)
	dstH := roundi(float64(srcH) * realZoom)
	dstX0 := roundi((lerp(fade, region.SrcCenter.X, region.DstCenter.X)*2-0.5)*w - float64(dstW)/2)
	dstY0 := roundi((lerp(fade, region.SrcCenter.Y, region.DstCenter.Y)*2-0.5)*h - float64(dstH)/2)

	return ResolvedRegion{
		SrcX0: srcX0, SrcY0: srcY0, SrcW: srcW, SrcH: srcH,
		DstX0: dstX0, DstY0: dstY0, DstW: dstW, DstH: dstH,
		RealZoom: realZoom,
	}
}

// roundi rounds to the nearest integer, halves up.
func roundi(v float64) int {
	return int(math.Floor(v + 0.5))
}
