package loupe

import (
	"errors"

	"golang.org/x/image/draw"

	"github.com/framefx/loupe/internal/raster"
)

// Errors returned by Render for host contract violations.
var (
	// ErrNilBuffer indicates a nil destination or source frame buffer.
	ErrNilBuffer = errors.New("loupe: nil frame buffer")
	// ErrSizeMismatch indicates a frame buffer whose dimensions differ from
	// the filter's.
	ErrSizeMismatch = errors.New("loupe: frame buffer dimensions do not match filter")
)

// Filter is one loupe effect instance bound to a fixed frame size.
//
// The zero value is not usable; create instances with New. A Filter owns its
// configuration and per-frame scratch buffers, so a single instance must not
// be rendered from multiple goroutines at once, but distinct instances are
// fully independent.
type Filter struct {
	width  int
	height int

	config Config
	params []param

	ras      *raster.Rasterizer
	interp   draw.Interpolator
	resolved []ResolvedRegion // per-frame scratch
}

// New creates a filter for width×height frames with the documented default
// configuration.
func New(width, height int, opts ...Option) *Filter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	f := &Filter{
		width:  width,
		height: height,
		config: DefaultConfig(o.regionCount),
		ras:    raster.NewRasterizer(),
		interp: o.interp,
	}
	f.registerParams()
	return f
}

// Width returns the frame width the filter was constructed for.
func (f *Filter) Width() int {
	return f.width
}

// Height returns the frame height the filter was constructed for.
func (f *Filter) Height() int {
	return f.height
}

// Config returns the live configuration for the host to mutate between
// frames. Render reads a snapshot taken at call time, so mutations never
// affect a frame in progress.
func (f *Filter) Config() *Config {
	return &f.config
}

// Render processes one frame: it overwrites dst with srcB plus the loupe
// overlays in effect at the given time.
//
// time is the playback position in seconds. The filter follows a mixer-style
// dual-input contract; srcA is accepted for interface compatibility and
// ignored (it may be nil), only srcB feeds the effect. dst and srcB must
// match the filter dimensions.
//
// Render never fails on configuration values: out-of-range parameters
// produce degenerate or off-frame geometry, not errors.
func (f *Filter) Render(time float64, dst, srcA, srcB *Pixmap) error {
	if dst == nil || srcB == nil {
		return ErrNilBuffer
	}
	if dst.width != f.width || dst.height != f.height ||
		srcB.width != f.width || srcB.height != f.height {
		return ErrSizeMismatch
	}
	if srcA != nil && (srcA.width != f.width || srcA.height != f.height) {
		return ErrSizeMismatch
	}

	cfg := f.config.snapshot()
	fade := Fade(time, cfg.EndTime*1000, cfg.FadeDuration*10)

	if cap(f.resolved) < len(cfg.Regions) {
		f.resolved = make([]ResolvedRegion, len(cfg.Regions))
	}
	f.resolved = f.resolved[:len(cfg.Regions)]
	for i, region := range cfg.Regions {
		f.resolved[i] = ResolveRegion(region, fade, f.width, f.height)
	}

	f.composite(dst, srcB, fade, &cfg, f.resolved)

	Logger().Debug("frame rendered",
		"time", time,
		"fade", fade,
		"regions", len(cfg.Regions),
	)
	return nil
}
