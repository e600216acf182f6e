package loupe

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// Pixmap represents a rectangular frame buffer of 32-bit packed ARGB pixels
// with straight alpha. It can own its memory (NewPixmap) or borrow a host
// buffer (WrapPixels), and implements image.Image and draw.Image so the
// standard image packages can operate on it directly.
type Pixmap struct {
	width  int
	height int
	pix    []uint32
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
	}
}

// WrapPixels creates a pixmap backed by an existing packed-ARGB buffer.
// The buffer is used in place; writes through the pixmap are visible to the
// owner of the slice. The slice must hold at least width*height words.
func WrapPixels(width, height int, pix []uint32) (*Pixmap, error) {
	if len(pix) < width*height {
		return nil, fmt.Errorf("loupe: pixel buffer too short: have %d, need %d", len(pix), width*height)
	}
	return &Pixmap{width: width, height: height, pix: pix[:width*height]}, nil
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Pix returns the raw pixel data (packed ARGB, row-major).
func (p *Pixmap) Pix() []uint32 {
	return p.pix
}

// SetPixel sets a single pixel to a packed ARGB value.
// Out-of-bounds writes are ignored.
func (p *Pixmap) SetPixel(x, y int, argb uint32) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	p.pix[y*p.width+x] = argb
}

// PixelAt returns the packed ARGB value of a single pixel.
// Out-of-bounds reads return zero (transparent black).
func (p *Pixmap) PixelAt(x, y int) uint32 {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0
	}
	return p.pix[y*p.width+x]
}

// CopyFrom replaces the pixmap contents with those of src.
// Both pixmaps must have the same dimensions.
func (p *Pixmap) CopyFrom(src *Pixmap) {
	copy(p.pix, src.pix)
}

// Fill sets every pixel to a packed ARGB value.
func (p *Pixmap) Fill(argb uint32) {
	for i := range p.pix {
		p.pix[i] = argb
	}
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	v := p.PixelAt(x, y)
	return color.NRGBA{R: Red(v), G: Green(v), B: Blue(v), A: Alpha(v)}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}

// Set implements the draw.Image interface.
func (p *Pixmap) Set(x, y int, c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	p.SetPixel(x, y, PackARGB(n.A, n.R, n.G, n.B))
}

// Sub returns a view of the pixmap restricted to r, clipped to the pixmap
// bounds. The view shares pixels with the pixmap; drawing into it cannot
// touch pixels outside r.
func (p *Pixmap) Sub(r image.Rectangle) draw.Image {
	return &pixmapView{pixmap: p, rect: r.Intersect(p.Bounds())}
}

// pixmapView is a bounds-restricted window over a Pixmap.
type pixmapView struct {
	pixmap *Pixmap
	rect   image.Rectangle
}

func (v *pixmapView) ColorModel() color.Model { return color.NRGBAModel }

func (v *pixmapView) Bounds() image.Rectangle { return v.rect }

func (v *pixmapView) At(x, y int) color.Color {
	if !image.Pt(x, y).In(v.rect) {
		return color.NRGBA{}
	}
	return v.pixmap.At(x, y)
}

func (v *pixmapView) Set(x, y int, c color.Color) {
	if !image.Pt(x, y).In(v.rect) {
		return
	}
	v.pixmap.Set(x, y, c)
}

// ToImage converts the pixmap to an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			v := p.pix[y*p.width+x]
			i := img.PixOffset(x, y)
			img.Pix[i+0] = Red(v)
			img.Pix[i+1] = Green(v)
			img.Pix[i+2] = Blue(v)
			img.Pix[i+3] = Alpha(v)
		}
	}
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			pm.pix[y*width+x] = PackARGB(c.A, c.R, c.G, c.B)
		}
	}

	return pm
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	img := p.ToImage()
	return png.Encode(f, img)
}
