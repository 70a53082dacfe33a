package render

import (
	"context"
	"fmt"
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/jvrnik/mandelsurf"
)

// Frames renders the full rotation cycle: frame f gets azimuth f·(360/frames)
// at the fixed elevation. Frames are independent reads of the same height
// map, so they render in parallel.
func Frames(ctx context.Context, r mandelsurf.FrameRenderer, hm *mandelsurf.HeightMap, g *mandelsurf.Grid, frames int, elevation float64) ([]*image.RGBA, error) {
	if frames < 1 {
		return nil, fmt.Errorf("frame count must be positive, got %d", frames)
	}

	imgs := make([]*image.RGBA, frames)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))

	for f := 0; f < frames; f++ {
		f := f
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			pose := mandelsurf.FramePose(f, frames, elevation)
			img, err := r.RenderFrame(hm, g, pose)
			if err != nil {
				return fmt.Errorf("frame %d: %w", f, err)
			}
			imgs[f] = img
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return imgs, nil
}
