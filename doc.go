// Package loupe implements a per-frame video compositing filter that
// overlays magnifying "loupe" regions onto a video frame.
//
// # Overview
//
// Each configured region samples a rectangular area of the source frame and
// paints a zoomed copy of it into a destination rectangle, together with a
// pointer line, a pointer bubble at the sampled location and an outline
// around the magnified view. The whole effect animates in and out over time
// through a sine easing curve, so the magnified view visually grows out of
// the source location and collapses back into it.
//
// # Quick Start
//
//	import "github.com/framefx/loupe"
//
//	f := loupe.New(1920, 1080)
//	cfg := f.Config()
//	cfg.Regions[0].Enabled = true
//	cfg.Regions[0].SrcCenter = loupe.Point{X: 0.5, Y: 0.5}
//	cfg.Regions[0].SrcSize = loupe.Point{X: 0.2, Y: 0.2}
//	cfg.Regions[0].DstCenter = loupe.Point{X: 0.8, Y: 0.25}
//	cfg.Regions[0].DstZoom = 0.3
//
//	dst := loupe.NewPixmap(1920, 1080)
//	// src holds the current frame, packed ARGB.
//	if err := f.Render(t, dst, nil, src); err != nil {
//		log.Fatal(err)
//	}
//
// # Pixel Format
//
// Frames are 32-bit packed ARGB with straight (non-premultiplied) alpha,
// alpha in the top byte. Pixmap wraps such a buffer and also implements
// image.Image and draw.Image so the standard image packages can read and
// write it directly.
//
// # Host Integration
//
// All tunable values are exposed as an ordered list of named, documented
// parameters normalized to [0, 1] (see Filter.ParamCount, Filter.Param,
// Filter.SetParamValue). A host parameter system may mutate the
// configuration between frames; Render snapshots the configuration before
// resolving geometry, so one frame never observes a half-applied update.
//
// # Concurrency
//
// A Filter owns no shared mutable state beyond its configuration. Rendering
// is single-threaded and synchronous; distinct Filter/buffer pairs may be
// driven concurrently without locking.
package loupe

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
