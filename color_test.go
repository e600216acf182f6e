package loupe

import "testing"

func TestPackARGB_Accessors(t *testing.T) {
	tests := []struct {
		name       string
		a, r, g, b uint8
		want       uint32
	}{
		{"opaque black", 255, 0, 0, 0, 0xff000000},
		{"opaque white", 255, 255, 255, 255, 0xffffffff},
		{"transparent", 0, 0, 0, 0, 0x00000000},
		{"mixed", 0x12, 0x34, 0x56, 0x78, 0x12345678},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PackARGB(tt.a, tt.r, tt.g, tt.b)
			if p != tt.want {
				t.Fatalf("PackARGB = %08x, want %08x", p, tt.want)
			}
			if Alpha(p) != tt.a || Red(p) != tt.r || Green(p) != tt.g || Blue(p) != tt.b {
				t.Errorf("unpack(%08x) = (%d,%d,%d,%d), want (%d,%d,%d,%d)",
					p, Alpha(p), Red(p), Green(p), Blue(p), tt.a, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestRGBA_PackedRoundtrip(t *testing.T) {
	// Every 8-bit channel value survives the float conversion.
	for v := 0; v < 256; v++ {
		p := PackARGB(uint8(v), uint8(v), uint8(255-v), uint8(v/2))
		if got := FromPacked(p).Packed(); got != p {
			t.Fatalf("roundtrip(%08x) = %08x", p, got)
		}
	}
}

func TestRGBA_PackedClamps(t *testing.T) {
	c := RGBA{R: 2, G: -1, B: 0.5, A: 1}
	p := c.Packed()
	if Alpha(p) != 255 || Red(p) != 255 || Green(p) != 0 {
		t.Errorf("Packed() = %08x, want clamped channels", p)
	}
	if b := Blue(p); b < 127 || b > 128 {
		t.Errorf("Blue = %d, want 127 or 128", b)
	}
}

func TestRGBA_Lerp(t *testing.T) {
	got := Black.Lerp(White, 0.5)
	want := RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}
	if got != want {
		t.Errorf("Black.Lerp(White, 0.5) = %+v, want %+v", got, want)
	}
	if got := Black.Lerp(White, 0); got != Black {
		t.Errorf("Lerp(0) = %+v, want black", got)
	}
	if got := Black.Lerp(White, 1); got != White {
		t.Errorf("Lerp(1) = %+v, want white", got)
	}
}
