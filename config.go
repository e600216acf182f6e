package loupe

// DefaultRegionCount is the number of regions a Filter carries unless
// overridden with WithRegionCount. The region count is not architecturally
// significant; any count renders uniformly.
const DefaultRegionCount = 3

// RegionConfig holds the normalized parameters of one magnifier region.
// All positions and sizes are host-normalized values in [0, 1]; DstZoom is
// stored pre-scaled (effective magnification = DstZoom × 10).
type RegionConfig struct {
	// Enabled turns the region on. Disabled regions contribute nothing to
	// the output beyond the base frame copy.
	Enabled bool
	// SrcCenter is the normalized center of the source rectangle.
	SrcCenter Point
	// SrcSize is the normalized size of the source rectangle. Both axes are
	// relative to the frame height.
	SrcSize Point
	// DstCenter is the normalized center of the destination rectangle at
	// full zoom.
	DstCenter Point
	// DstZoom is the magnification factor, pre-scaled by 1/10.
	DstZoom float64
}

// Config holds the global appearance and timing parameters plus the region
// list. The host parameter system mutates it between frames; Render reads a
// snapshot, never the live value.
//
// The width parameters are stored pre-scaled: the effective stroke width in
// pixels is value × 100 × frameHeight / 1080. FadeDuration is in units of
// 10 seconds and EndTime in units of 1000 seconds.
type Config struct {
	ShowWireframe       bool
	ShowMagnified       bool
	OutlineWidth        float64
	PointerWidth        float64
	PointerOutlineWidth float64
	FadeDuration        float64
	EndTime             float64
	Regions             []RegionConfig
}

// DefaultConfig returns the documented default configuration with
// regionCount regions. Negative counts are treated as zero.
func DefaultConfig(regionCount int) Config {
	if regionCount < 0 {
		regionCount = 0
	}
	cfg := Config{
		ShowWireframe:       true,
		ShowMagnified:       true,
		OutlineWidth:        0.03,
		PointerWidth:        0.06,
		PointerOutlineWidth: 0.03,
		FadeDuration:        0.1,
		EndTime:             0.01,
		Regions:             make([]RegionConfig, regionCount),
	}
	for i := range cfg.Regions {
		cfg.Regions[i] = RegionConfig{
			Enabled:   false,
			SrcCenter: Point{X: 0.5, Y: 0.5},
			SrcSize:   Point{X: 0.5, Y: 0.5},
			DstCenter: Point{X: 0.5, Y: 0.5},
			DstZoom:   0.2,
		}
	}
	return cfg
}

// snapshot returns a deep copy of the configuration. Render works from a
// snapshot so a host mutating the live Config between frames cannot tear a
// frame in progress.
func (c *Config) snapshot() Config {
	out := *c
	out.Regions = make([]RegionConfig, len(c.Regions))
	copy(out.Regions, c.Regions)
	return out
}
