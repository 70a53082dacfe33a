package render

import (
	"image/color"
	"testing"
)

// TestViridisEndpoints pins the colormap ends: dark purple at 0, yellow at 1.
func TestViridisEndpoints(t *testing.T) {
	if got := Viridis(0); got != (color.RGBA{68, 1, 84, 255}) {
		t.Fatalf("Viridis(0): expected dark purple, got %v", got)
	}
	if got := Viridis(1); got != (color.RGBA{253, 231, 37, 255}) {
		t.Fatalf("Viridis(1): expected yellow, got %v", got)
	}
}

// TestViridisClamps ensures out-of-range inputs clamp to the endpoints.
func TestViridisClamps(t *testing.T) {
	if Viridis(-0.5) != Viridis(0) {
		t.Fatal("expected negative input to clamp to 0")
	}
	if Viridis(1.5) != Viridis(1) {
		t.Fatal("expected input above 1 to clamp to 1")
	}
}

// TestViridisMonotoneAlpha checks every sample is fully opaque.
func TestViridisMonotoneAlpha(t *testing.T) {
	for i := 0; i <= 100; i++ {
		if c := Viridis(float64(i) / 100); c.A != 255 {
			t.Fatalf("Viridis(%v): expected opaque, got alpha %d", float64(i)/100, c.A)
		}
	}
}

// TestViridisPalette checks the palette size and the prepended background.
func TestViridisPalette(t *testing.T) {
	bg := color.RGBA{1, 2, 3, 255}
	p := ViridisPalette(255, bg)
	if len(p) != 256 {
		t.Fatalf("expected 256 palette entries, got %d", len(p))
	}
	if p[0] != bg {
		t.Fatalf("expected background first, got %v", p[0])
	}
	if p[255] != (color.RGBA{253, 231, 37, 255}) {
		t.Fatalf("expected yellow last, got %v", p[255])
	}
}
