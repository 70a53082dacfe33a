// Package render rasterizes a Mandelbrot height map into animation frames.
// The surface is drawn as a depth-sorted point cloud under an orthographic
// camera, which is cheap and needs no mesh.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"sort"

	"github.com/jvrnik/mandelsurf"
)

// Surface renders square frames of the escape-time surface.
type Surface struct {
	// Size is the edge length of the output frame in pixels.
	Size int
	// PointSize is the splat edge length; >1 closes gaps between samples.
	PointSize int
	// Background fills pixels not covered by the surface.
	Background color.RGBA
	// ZScale stretches the normalized height axis.
	ZScale float64
}

// NewSurface returns a renderer with the defaults used by all binaries.
func NewSurface(size int) *Surface {
	return &Surface{
		Size:       size,
		PointSize:  2,
		Background: color.RGBA{0x10, 0x10, 0x20, 0xff},
		ZScale:     0.9,
	}
}

var _ mandelsurf.FrameRenderer = (*Surface)(nil)

// RenderFrame draws hm as seen from pose. The grid's plane coordinates are
// normalized to [-1,1]² and heights to [0,ZScale], so the output is framed
// identically for every region. Pure: identical inputs give identical images.
func (s *Surface) RenderFrame(hm *mandelsurf.HeightMap, g *mandelsurf.Grid, pose mandelsurf.Pose) (*image.RGBA, error) {
	if hm.Width != g.Width() || hm.Height != g.Height() {
		return nil, fmt.Errorf("height map %dx%d does not match grid %dx%d",
			hm.Width, hm.Height, g.Width(), g.Height())
	}
	if s.Size < 1 {
		return nil, fmt.Errorf("frame size %d: %w", s.Size, mandelsurf.ErrInvalidDimension)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.Size, s.Size))
	draw.Draw(img, img.Bounds(), image.NewUniform(s.Background), image.Point{}, draw.Src)

	az := pose.Azimuth * math.Pi / 180
	el := pose.Elevation * math.Pi / 180
	sinA, cosA := math.Sincos(az)
	sinE, cosE := math.Sincos(el)

	nxs := normalize(g.Xs, g.Plane.Xmin, g.Plane.Xmax)
	nys := normalize(g.Ys, g.Plane.Ymin, g.Plane.Ymax)

	n := hm.Width * hm.Height
	sx := make([]float64, n)
	sy := make([]float64, n)
	depth := make([]float64, n)

	// Orthographic camera basis at (azimuth, elevation):
	//   right = (-sinA, cosA, 0)
	//   up    = (-cosA·sinE, -sinA·sinE, cosE)
	//   view  = (cosA·cosE, sinA·cosE, sinE)
	for j := 0; j < hm.Height; j++ {
		y := nys[j]
		for i := 0; i < hm.Width; i++ {
			x := nxs[i]
			z := s.ZScale * float64(hm.At(i, j)) / float64(max(hm.MaxIter, 1))
			fwd := x*cosA + y*sinA
			idx := j*hm.Width + i
			sx[idx] = -x*sinA + y*cosA
			sy[idx] = -fwd*sinE + z*cosE
			depth[idx] = fwd*cosE + z*sinE
		}
	}

	// Fit the projected extent into the frame with a small margin.
	minX, maxX := minMax(sx)
	minY, maxY := minMax(sy)
	margin := 0.05 * float64(s.Size)
	span := math.Max(maxX-minX, maxY-minY)
	if span == 0 {
		span = 1 // degenerate 1×1 grid
	}
	scale := (float64(s.Size) - 2*margin) / span
	cx := (minX + maxX) / 2
	cy := (minY + maxY) / 2
	half := float64(s.Size) / 2

	// Painter's order: far cells first, near cells drawn over them.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return depth[order[a]] < depth[order[b]] })

	ps := max(s.PointSize, 1)
	for _, idx := range order {
		iter := hm.At(idx%hm.Width, idx/hm.Width)
		col := Viridis(float64(iter) / float64(max(hm.MaxIter, 1)))
		px := int(half + (sx[idx]-cx)*scale)
		py := int(half - (sy[idx]-cy)*scale)
		splat(img, px, py, ps, col)
	}

	return img, nil
}

// splat fills a ps×ps block anchored at (px, py), clipped to the image.
func splat(img *image.RGBA, px, py, ps int, col color.RGBA) {
	b := img.Bounds()
	for dy := 0; dy < ps; dy++ {
		y := py + dy
		if y < b.Min.Y || y >= b.Max.Y {
			continue
		}
		for dx := 0; dx < ps; dx++ {
			x := px + dx
			if x < b.Min.X || x >= b.Max.X {
				continue
			}
			img.SetRGBA(x, y, col)
		}
	}
}

// normalize maps vs from [min, max] to [-1, 1]. A degenerate interval maps
// everything to 0.
func normalize(vs []float64, min, max float64) []float64 {
	out := make([]float64, len(vs))
	span := max - min
	if span == 0 {
		return out
	}
	for i, v := range vs {
		out[i] = 2*(v-min)/span - 1
	}
	return out
}

func minMax(vs []float64) (lo, hi float64) {
	lo, hi = vs[0], vs[0]
	for _, v := range vs[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
