// Package raster renders antialiased stroke and fill shapes into a pixel
// surface through a compositing operator.
//
// Shapes are converted to closed paths, rasterized to 8-bit coverage with
// golang.org/x/image/vector, and applied pixel by pixel through the
// surface's BlendPixel. Coverage application is clamped to the surface
// bounds, so callers may pass geometry that extends arbitrarily far outside
// the frame.
package raster

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// RGBA is a straight-alpha color with components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Op selects how rasterized coverage is combined with the surface.
type Op int

const (
	// OpOver is standard source-over compositing.
	OpOver Op = iota
	// OpDifference produces the absolute per-channel difference between
	// the shape color and the surface, following the W3C separable blend
	// formula.
	OpDifference
)

// Surface is the pixel sink shapes are rendered into. BlendPixel receives
// in-bounds coordinates only, the shape color, the antialiased coverage of
// the pixel in [0, 255], and the compositing operator.
type Surface interface {
	Width() int
	Height() int
	BlendPixel(x, y int, c RGBA, cov uint8, op Op)
}

// Rasterizer turns shapes into coverage and blends them onto a Surface.
// It reuses an internal mask buffer across shapes; a Rasterizer is not safe
// for concurrent use, but distinct Rasterizers are independent.
type Rasterizer struct {
	vec  vector.Rasterizer
	mask *image.Alpha
}

// NewRasterizer creates an empty rasterizer.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{}
}

// StrokeLine draws a straight butt-capped line of the given width.
func (r *Rasterizer) StrokeLine(dst Surface, x0, y0, x1, y1, width float64, c RGBA, op Op) {
	if width <= 0 {
		return
	}
	dx := x1 - x0
	dy := y1 - y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	// Perpendicular half-width offset.
	nx := -dy / length * width / 2
	ny := dx / length * width / 2

	minX := math.Min(math.Min(x0+nx, x1+nx), math.Min(x0-nx, x1-nx))
	maxX := math.Max(math.Max(x0+nx, x1+nx), math.Max(x0-nx, x1-nx))
	minY := math.Min(math.Min(y0+ny, y1+ny), math.Min(y0-ny, y1-ny))
	maxY := math.Max(math.Max(y0+ny, y1+ny), math.Max(y0-ny, y1-ny))

	r.render(dst, minX, minY, maxX, maxY, c, op, func(z *vector.Rasterizer, ox, oy float64) {
		z.MoveTo(float32(x0+nx-ox), float32(y0+ny-oy))
		z.LineTo(float32(x1+nx-ox), float32(y1+ny-oy))
		z.LineTo(float32(x1-nx-ox), float32(y1-ny-oy))
		z.LineTo(float32(x0-nx-ox), float32(y0-ny-oy))
		z.ClosePath()
	})
}

// FillCircle draws a filled circle.
func (r *Rasterizer) FillCircle(dst Surface, cx, cy, radius float64, c RGBA, op Op) {
	if radius <= 0 {
		return
	}
	r.render(dst, cx-radius, cy-radius, cx+radius, cy+radius, c, op, func(z *vector.Rasterizer, ox, oy float64) {
		addCircle(z, cx-ox, cy-oy, radius, false)
	})
}

// StrokeCircle draws an unfilled circle of the given radius with the given
// stroke width.
func (r *Rasterizer) StrokeCircle(dst Surface, cx, cy, radius, width float64, c RGBA, op Op) {
	if width <= 0 {
		return
	}
	outer := radius + width/2
	if outer <= 0 {
		return
	}
	inner := radius - width/2
	r.render(dst, cx-outer, cy-outer, cx+outer, cy+outer, c, op, func(z *vector.Rasterizer, ox, oy float64) {
		addCircle(z, cx-ox, cy-oy, outer, false)
		if inner > 0 {
			// Opposite winding carves the hole under the nonzero rule.
			addCircle(z, cx-ox, cy-oy, inner, true)
		}
	})
}

// StrokeRect draws an unfilled rectangle. The stroke is centered on the
// rectangle edges: ink covers half the width on either side.
func (r *Rasterizer) StrokeRect(dst Surface, x, y, w, h, width float64, c RGBA, op Op) {
	if width <= 0 {
		return
	}
	ox0 := x - width/2
	oy0 := y - width/2
	ow := w + width
	oh := h + width
	if ow <= 0 || oh <= 0 {
		return
	}
	iw := w - width
	ih := h - width
	r.render(dst, ox0, oy0, ox0+ow, oy0+oh, c, op, func(z *vector.Rasterizer, dx, dy float64) {
		addRect(z, ox0-dx, oy0-dy, ow, oh, false)
		if iw > 0 && ih > 0 {
			addRect(z, x+width/2-dx, y+width/2-dy, iw, ih, true)
		}
	})
}

// render rasterizes the shape built by build into a coverage mask clipped to
// the surface bounds and blends it onto dst. The bounding box is given in
// surface coordinates; build receives the mask origin so it can emit
// mask-local coordinates.
func (r *Rasterizer) render(dst Surface, minX, minY, maxX, maxY float64, c RGBA, op Op, build func(z *vector.Rasterizer, ox, oy float64)) {
	if !finite(minX) || !finite(minY) || !finite(maxX) || !finite(maxY) {
		return
	}
	clip := image.Rect(
		int(math.Floor(minX))-1, int(math.Floor(minY))-1,
		int(math.Ceil(maxX))+1, int(math.Ceil(maxY))+1,
	).Intersect(image.Rect(0, 0, dst.Width(), dst.Height()))
	if clip.Empty() {
		return
	}

	w := clip.Dx()
	h := clip.Dy()
	r.vec.Reset(w, h)
	r.vec.DrawOp = draw.Src
	build(&r.vec, float64(clip.Min.X), float64(clip.Min.Y))

	mask := r.ensureMask(w, h)
	r.vec.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	for y := 0; y < h; y++ {
		row := mask.Pix[y*mask.Stride : y*mask.Stride+w]
		for x, cov := range row {
			if cov == 0 {
				continue
			}
			dst.BlendPixel(clip.Min.X+x, clip.Min.Y+y, c, cov, op)
		}
	}
}

// ensureMask returns a w×h alpha mask backed by the reusable buffer.
func (r *Rasterizer) ensureMask(w, h int) *image.Alpha {
	if r.mask == nil || r.mask.Rect.Dx() < w || r.mask.Rect.Dy() < h {
		nw, nh := w, h
		if r.mask != nil {
			if r.mask.Rect.Dx() > nw {
				nw = r.mask.Rect.Dx()
			}
			if r.mask.Rect.Dy() > nh {
				nh = r.mask.Rect.Dy()
			}
		}
		r.mask = image.NewAlpha(image.Rect(0, 0, nw, nh))
	}
	return r.mask.SubImage(image.Rect(0, 0, w, h)).(*image.Alpha)
}

// circleK is the cubic Bézier control offset approximating a quarter circle.
const circleK = 0.5522847498307936

// addCircle appends a full circle to the path, clockwise or
// counter-clockwise depending on ccw.
func addCircle(z *vector.Rasterizer, cx, cy, radius float64, ccw bool) {
	s := 1.0
	if ccw {
		s = -1.0
	}
	k := circleK * radius
	x := func(v float64) float32 { return float32(cx + v) }
	y := func(v float64) float32 { return float32(cy + s*v) }

	z.MoveTo(x(radius), y(0))
	z.CubeTo(x(radius), y(k), x(k), y(radius), x(0), y(radius))
	z.CubeTo(x(-k), y(radius), x(-radius), y(k), x(-radius), y(0))
	z.CubeTo(x(-radius), y(-k), x(-k), y(-radius), x(0), y(-radius))
	z.CubeTo(x(k), y(-radius), x(radius), y(-k), x(radius), y(0))
	z.ClosePath()
}

// addRect appends an axis-aligned rectangle to the path, clockwise or
// counter-clockwise depending on ccw.
func addRect(z *vector.Rasterizer, x, y, w, h float64, ccw bool) {
	if ccw {
		z.MoveTo(float32(x), float32(y))
		z.LineTo(float32(x), float32(y+h))
		z.LineTo(float32(x+w), float32(y+h))
		z.LineTo(float32(x+w), float32(y))
		z.ClosePath()
		return
	}
	z.MoveTo(float32(x), float32(y))
	z.LineTo(float32(x+w), float32(y))
	z.LineTo(float32(x+w), float32(y+h))
	z.LineTo(float32(x), float32(y+h))
	z.ClosePath()
}

// finite reports whether v is neither NaN nor infinite.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
