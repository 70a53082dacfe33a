package render

import "image/color"

// Anchor points of the viridis colormap; intermediate values are linearly
// interpolated. Good enough for height coloring, no perceptual claims.
var viridisAnchors = [][3]float64{
	{68, 1, 84},
	{71, 44, 122},
	{59, 81, 139},
	{44, 113, 142},
	{33, 144, 141},
	{39, 173, 129},
	{92, 200, 99},
	{170, 220, 50},
	{253, 231, 37},
}

// Viridis maps t in [0,1] to a colormap sample. Values outside the range are
// clamped.
func Viridis(t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	pos := t * float64(len(viridisAnchors)-1)
	lo := int(pos)
	if lo >= len(viridisAnchors)-1 {
		a := viridisAnchors[len(viridisAnchors)-1]
		return color.RGBA{uint8(a[0]), uint8(a[1]), uint8(a[2]), 255}
	}
	f := pos - float64(lo)
	a, b := viridisAnchors[lo], viridisAnchors[lo+1]
	return color.RGBA{
		R: uint8(a[0] + (b[0]-a[0])*f),
		G: uint8(a[1] + (b[1]-a[1])*f),
		B: uint8(a[2] + (b[2]-a[2])*f),
		A: 255,
	}
}

// ViridisPalette returns an n-entry palette sampled over the colormap, with
// the background color prepended. Used for GIF encoding.
func ViridisPalette(n int, background color.RGBA) color.Palette {
	p := make(color.Palette, 0, n+1)
	p = append(p, background)
	for i := 0; i < n; i++ {
		p = append(p, Viridis(float64(i)/float64(n-1)))
	}
	return p
}
