package loupe

import "golang.org/x/image/draw"

// Option configures a Filter during creation.
// Use functional options to customize Filter behavior.
//
// Example:
//
//	// Default: three regions, bilinear resampling
//	f := loupe.New(1920, 1080)
//
//	// One region, nearest-neighbor resampling
//	f := loupe.New(1920, 1080,
//		loupe.WithRegionCount(1),
//		loupe.WithInterpolator(draw.NearestNeighbor))
type Option func(*options)

// options holds optional configuration for Filter creation.
type options struct {
	regionCount int
	interp      draw.Interpolator
}

// defaultOptions returns the default filter options.
func defaultOptions() options {
	return options{
		regionCount: DefaultRegionCount,
		interp:      draw.ApproxBiLinear,
	}
}

// WithRegionCount sets how many regions the filter carries. Any count works
// uniformly; negative values are treated as zero.
func WithRegionCount(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.regionCount = n
	}
}

// WithInterpolator sets the resampling kernel used for the magnified paint.
// The default is draw.ApproxBiLinear; draw.NearestNeighbor is fastest,
// draw.CatmullRom gives the highest quality.
func WithInterpolator(q draw.Interpolator) Option {
	return func(o *options) {
		if q != nil {
			o.interp = q
		}
	}
}
