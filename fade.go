package loupe

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Fade maps a playback time to the entrance/exit factor of the effect.
//
// The raw progress is min(time, endTime-time)/fadeDuration clamped to
// [0, 1], so the effect ramps up at the start, holds at full strength, and
// ramps back down so that it is gone exactly at endTime. The ramp is shaped
// by an in-out sine easing, which starts and ends with zero velocity and is
// symmetric around its midpoint.
//
// All arguments are in effective units (seconds). The result is always in
// [0, 1]. Fade is pure: the same inputs always produce the same output.
func Fade(time, endTime, fadeDuration float64) float64 {
	raw := math.Min(time, endTime-time)
	if fadeDuration <= 0 {
		// Instant transition: fully on strictly inside (0, endTime).
		if raw > 0 {
			return 1
		}
		return 0
	}
	raw = clamp01(raw / fadeDuration)
	return float64(ease.InOutSine(float32(raw), 0, 1, 1))
}

// lerp performs linear interpolation between a and b.
// The factor f is clamped to [0, 1] before use.
func lerp(f, a, b float64) float64 {
	f = clamp01(f)
	return (1-f)*a + f*b
}

// clamp01 restricts a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
