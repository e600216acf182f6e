package loupe

import (
	"math"
	"testing"
)

// Fade uses a float32 easing kernel internally.
const fadeTolerance = 1e-6

func TestFade_AlwaysInRange(t *testing.T) {
	times := []float64{-100, -1, -0.001, 0, 0.0001, 0.5, 1, 2, 5, 9.999, 10, 10.001, 50, 1e6}
	for _, endTime := range []float64{0, 0.5, 10, 1000} {
		for _, fadeDuration := range []float64{0, 0.1, 1, 20} {
			for _, tm := range times {
				got := Fade(tm, endTime, fadeDuration)
				if got < 0 || got > 1 || math.IsNaN(got) {
					t.Errorf("Fade(%v, %v, %v) = %v, want in [0, 1]", tm, endTime, fadeDuration, got)
				}
			}
		}
	}
}

func TestFade_Boundaries(t *testing.T) {
	tests := []struct {
		name                     string
		time, endTime, fadeDur   float64
		want                     float64
	}{
		{"start is fully faded out", 0, 10, 1, 0},
		{"end is fully faded out", 10, 10, 1, 0},
		{"before start", -5, 10, 1, 0},
		{"after end", 15, 10, 1, 0},
		{"midpoint is fully faded in", 5, 10, 1, 1},
		{"midpoint with fadeDuration = endTime/2", 5, 10, 5, 1},
		{"just inside the fade ramp", 0.5, 10, 1, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fade(tt.time, tt.endTime, tt.fadeDur)
			if math.Abs(got-tt.want) > fadeTolerance {
				t.Errorf("Fade(%v, %v, %v) = %v, want %v", tt.time, tt.endTime, tt.fadeDur, got, tt.want)
			}
		})
	}
}

func TestFade_EasingSymmetry(t *testing.T) {
	// eased(t) + eased(1-t) = 1: the ramp is symmetric around its midpoint.
	// endTime is large so the raw progress is simply time/fadeDuration.
	const endTime = 1e6
	const fadeDuration = 1.0
	for _, raw := range []float64{0, 0.1, 0.25, 0.33, 0.5, 0.75, 0.9, 1} {
		a := Fade(raw*fadeDuration, endTime, fadeDuration)
		b := Fade((1-raw)*fadeDuration, endTime, fadeDuration)
		if math.Abs(a+b-1) > fadeTolerance {
			t.Errorf("Fade(%v) + Fade(%v) = %v, want 1", raw, 1-raw, a+b)
		}
	}
}

func TestFade_MonotonicRamp(t *testing.T) {
	const endTime = 1e6
	const fadeDuration = 2.0
	prev := -1.0
	for i := 0; i <= 100; i++ {
		tm := float64(i) / 100 * fadeDuration
		got := Fade(tm, endTime, fadeDuration)
		if got < prev-fadeTolerance {
			t.Fatalf("Fade not monotonic on ramp: Fade(%v) = %v < previous %v", tm, got, prev)
		}
		prev = got
	}
}

func TestFade_DegenerateDuration(t *testing.T) {
	tests := []struct {
		name                   string
		time, endTime, fadeDur float64
		want                   float64
	}{
		{"zero duration inside window", 5, 10, 0, 1},
		{"zero duration at start", 0, 10, 0, 0},
		{"zero duration at end", 10, 10, 0, 0},
		{"negative duration inside window", 5, 10, -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fade(tt.time, tt.endTime, tt.fadeDur)
			if got != tt.want {
				t.Errorf("Fade(%v, %v, %v) = %v, want %v", tt.time, tt.endTime, tt.fadeDur, got, tt.want)
			}
		})
	}
}

func TestLerp_ClampsFactor(t *testing.T) {
	tests := []struct {
		f, a, b, want float64
	}{
		{0, 2, 10, 2},
		{1, 2, 10, 10},
		{0.5, 2, 10, 6},
		{-1, 2, 10, 2},
		{3, 2, 10, 10},
	}
	for _, tt := range tests {
		if got := lerp(tt.f, tt.a, tt.b); got != tt.want {
			t.Errorf("lerp(%v, %v, %v) = %v, want %v", tt.f, tt.a, tt.b, got, tt.want)
		}
	}
}
