package loupe

import (
	"testing"

	"golang.org/x/image/draw"
)

func TestWithRegionCount(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 1},
		{8, 8},
		{-3, 0},
	}
	for _, tt := range tests {
		f := New(100, 100, WithRegionCount(tt.n))
		if got := len(f.Config().Regions); got != tt.want {
			t.Errorf("WithRegionCount(%d): %d regions, want %d", tt.n, got, tt.want)
		}
	}

	if got := len(New(100, 100).Config().Regions); got != DefaultRegionCount {
		t.Errorf("default region count = %d, want %d", got, DefaultRegionCount)
	}
}

func TestWithInterpolator(t *testing.T) {
	f := New(100, 100, WithInterpolator(draw.CatmullRom))
	if f.interp != draw.Interpolator(draw.CatmullRom) {
		t.Error("WithInterpolator did not install the kernel")
	}

	// nil keeps the default instead of breaking the filter.
	f = New(100, 100, WithInterpolator(nil))
	if f.interp == nil {
		t.Error("WithInterpolator(nil) left the filter without a kernel")
	}
}
