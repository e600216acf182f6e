package loupe

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/framefx/loupe/internal/raster"
)

// Wireframe overlay constants: fixed stroke width, half-width outset and
// crosshair arm length, independent of frame size and fade.
const (
	wireLineWidth = 3.0
	wireCrossSize = 10.0
)

var (
	wireSrcColor = raster.RGBA{R: 1, G: 0.5, B: 0.5, A: 1}
	wireDstColor = raster.RGBA{R: 0.5, G: 1, B: 0.5, A: 1}
)

// composite renders one frame into dst. Draw order is fixed: base copy,
// then per enabled region the pointer, the magnified paint and the outline,
// then the wireframe overlays. Later draws blend over earlier ones.
func (f *Filter) composite(dst, src *Pixmap, fade float64, cfg *Config, regions []ResolvedRegion) {
	dst.CopyFrom(src)

	surface := &pixmapSurface{pixmap: dst}
	h := float64(f.height)

	if cfg.ShowMagnified {
		pointerWidth := lerp(fade, 0, cfg.PointerWidth*100*h/1080)
		bubbleWidth := lerp(fade, 0, cfg.PointerOutlineWidth*100*h/1080)
		// The outline fades three times as fast as the rest of the effect.
		outlineWidth := lerp(fade*3, 0, cfg.OutlineWidth*100*h/1080)

		for i := range regions {
			if !cfg.Regions[i].Enabled {
				continue
			}
			rr := &regions[i]
			f.drawPointer(surface, rr, pointerWidth, bubbleWidth)
			f.drawMagnified(dst, src, rr)
			f.drawOutline(surface, rr, outlineWidth)
		}
	}

	if cfg.ShowWireframe {
		for i := range regions {
			if !cfg.Regions[i].Enabled {
				continue
			}
			rr := &regions[i]
			f.drawWireFrame(surface, rr.SrcX0, rr.SrcY0, rr.SrcW, rr.SrcH, wireSrcColor)
			f.drawWireFrame(surface, rr.DstX0, rr.DstY0, rr.DstW, rr.DstH, wireDstColor)
		}
	}
}

// drawPointer draws the line from the source-rect center to the
// destination-rect center and the bubble marking the sampled spot: a black
// disc with a white ring, radius lineWidth + outlineWidth/2.
func (f *Filter) drawPointer(s *pixmapSurface, rr *ResolvedRegion, lineWidth, outlineWidth float64) {
	sx, sy := rr.srcCenter()
	dx, dy := rr.dstCenter()
	black := rasterColor(Black)

	f.ras.StrokeLine(s, float64(sx), float64(sy), float64(dx), float64(dy), lineWidth, black, raster.OpOver)

	radius := lineWidth + outlineWidth/2
	f.ras.FillCircle(s, float64(sx), float64(sy), radius, black, raster.OpOver)
	f.ras.StrokeCircle(s, float64(sx), float64(sy), radius, outlineWidth, rasterColor(White), raster.OpOver)
}

// drawMagnified paints the zoomed source into the destination rectangle.
// The affine maps source point (SrcX0, SrcY0) to destination point
// (DstX0, DstY0) at scale RealZoom; output is clipped to the destination
// rectangle. Degenerate geometry paints nothing.
func (f *Filter) drawMagnified(dst, src *Pixmap, rr *ResolvedRegion) {
	if rr.DstW <= 0 || rr.DstH <= 0 || !(rr.RealZoom > 0) {
		return
	}
	clip := image.Rect(rr.DstX0, rr.DstY0, rr.DstX0+rr.DstW, rr.DstY0+rr.DstH).Intersect(dst.Bounds())
	if clip.Empty() {
		return
	}
	z := rr.RealZoom
	m := f64.Aff3{
		z, 0, float64(rr.DstX0) - z*float64(rr.SrcX0),
		0, z, float64(rr.DstY0) - z*float64(rr.SrcY0),
	}
	f.interp.Transform(dst.Sub(clip), m, src, src.Bounds(), draw.Over, nil)
}

// drawOutline strokes a white frame around the destination rectangle,
// outset by half the stroke width so the ink sits on the rectangle edge.
func (f *Filter) drawOutline(s *pixmapSurface, rr *ResolvedRegion, width float64) {
	f.ras.StrokeRect(s,
		float64(rr.DstX0)-width/2, float64(rr.DstY0)-width/2,
		float64(rr.DstW)+width, float64(rr.DstH)+width,
		width, rasterColor(White), raster.OpOver)
}

// drawWireFrame draws the debug overlay for one rectangle: a stroked frame
// plus an X crosshair at the center, in difference blend so it stays
// visible on any background.
func (f *Filter) drawWireFrame(s *pixmapSurface, x, y, w, h int, c raster.RGBA) {
	f.ras.StrokeRect(s,
		float64(x)-wireLineWidth/2, float64(y)-wireLineWidth/2,
		float64(w)+wireLineWidth, float64(h)+wireLineWidth,
		wireLineWidth, c, raster.OpDifference)

	cx := float64(x + w/2)
	cy := float64(y + h/2)
	f.ras.StrokeLine(s, cx-wireCrossSize, cy-wireCrossSize, cx+wireCrossSize, cy+wireCrossSize, wireLineWidth, c, raster.OpDifference)
	f.ras.StrokeLine(s, cx-wireCrossSize, cy+wireCrossSize, cx+wireCrossSize, cy-wireCrossSize, wireLineWidth, c, raster.OpDifference)
}

// rasterColor converts a loupe color to the rasterizer's color type.
func rasterColor(c RGBA) raster.RGBA {
	return raster.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// pixmapSurface adapts Pixmap to the raster.Surface interface, implementing
// the compositing operators over straight-alpha packed ARGB.
type pixmapSurface struct {
	pixmap *Pixmap
}

func (s *pixmapSurface) Width() int {
	return s.pixmap.width
}

func (s *pixmapSurface) Height() int {
	return s.pixmap.height
}

// BlendPixel blends a color into the pixel at (x, y) with the given
// antialiased coverage and operator.
func (s *pixmapSurface) BlendPixel(x, y int, c raster.RGBA, cov uint8, op raster.Op) {
	if cov == 0 {
		return
	}
	if x < 0 || x >= s.pixmap.width || y < 0 || y >= s.pixmap.height {
		return
	}

	i := y*s.pixmap.width + x
	d := FromPacked(s.pixmap.pix[i])
	sa := c.A * float64(cov) / 255
	if sa <= 0 {
		return
	}

	var out RGBA
	switch op {
	case raster.OpDifference:
		out = blendDifference(c, d, sa)
	default:
		out = blendOver(c, d, sa)
	}
	s.pixmap.pix[i] = out.Packed()
}

// blendOver is source-over compositing on straight-alpha colors, with the
// source alpha already scaled by coverage.
func blendOver(c raster.RGBA, d RGBA, sa float64) RGBA {
	outA := sa + d.A*(1-sa)
	if outA <= 0 {
		return Transparent
	}
	return RGBA{
		R: (c.R*sa + d.R*d.A*(1-sa)) / outA,
		G: (c.G*sa + d.G*d.A*(1-sa)) / outA,
		B: (c.B*sa + d.B*d.A*(1-sa)) / outA,
		A: outA,
	}
}

// blendDifference applies the separable Difference blend:
// per channel |Cs - Cd|, composed with the standard
// Co = sa·(1-da)·Cs + da·(1-sa)·Cd + sa·da·B(Cs, Cd) formula.
func blendDifference(c raster.RGBA, d RGBA, sa float64) RGBA {
	da := d.A
	outA := sa + da - sa*da
	if outA <= 0 {
		return Transparent
	}
	diff := func(cs, cd float64) float64 {
		b := cs - cd
		if b < 0 {
			b = -b
		}
		return (sa*(1-da)*cs + da*(1-sa)*cd + sa*da*b) / outA
	}
	return RGBA{
		R: diff(c.R, d.R),
		G: diff(c.G, d.G),
		B: diff(c.B, d.B),
		A: outA,
	}
}
