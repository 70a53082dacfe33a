package mandelsurf

import (
	"context"
	"fmt"
	"image"
	"runtime"
	"sync"
)

// Tiles of this size are handed to workers; edge tiles are smaller.
const computeTileSize = 64

// HeightMap holds one escape-time iteration count per grid cell. It is
// written exactly once by ComputeHeightMap and read-only afterwards, so any
// number of render frames can share it without locking.
type HeightMap struct {
	Width   int
	Height  int
	MaxIter int

	cells []int // row-major, index j*Width + i
}

// At returns the iteration count at grid index (i, j).
func (hm *HeightMap) At(i, j int) int {
	return hm.cells[j*hm.Width+i]
}

// ComputeHeightMap evaluates EscapeIter over every cell of g using a pool of
// worker goroutines. The index space is split into tiles; workers pull tiles
// from a channel and each cell is written by exactly one worker, so the map
// needs no synchronization. workers ≤ 0 means GOMAXPROCS.
//
// The result is a pure function of g and maxIter: repeated calls with the
// same inputs produce identical maps.
func ComputeHeightMap(ctx context.Context, g *Grid, maxIter, workers int) (*HeightMap, error) {
	if g == nil || g.Width() < 1 || g.Height() < 1 {
		return nil, fmt.Errorf("compute height map: %w", ErrInvalidDimension)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	hm := &HeightMap{
		Width:   g.Width(),
		Height:  g.Height(),
		MaxIter: maxIter,
		cells:   make([]int, g.Width()*g.Height()),
	}

	tiles := splitTiles(image.Rect(0, 0, hm.Width, hm.Height), computeTileSize, computeTileSize)
	tileCh := make(chan image.Rectangle)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for tile := range tileCh {
				hm.fillTile(g, tile)
			}
		}()
	}

	var err error
feed:
	for _, tile := range tiles {
		if ctx.Err() != nil {
			err = context.Cause(ctx)
			break feed
		}
		select {
		case tileCh <- tile:
		case <-ctx.Done():
			err = context.Cause(ctx)
			break feed
		}
	}
	close(tileCh)
	wg.Wait()

	if err != nil {
		return nil, fmt.Errorf("compute height map: %w", err)
	}
	return hm, nil
}

func (hm *HeightMap) fillTile(g *Grid, tile image.Rectangle) {
	for j := tile.Min.Y; j < tile.Max.Y; j++ {
		row := hm.cells[j*hm.Width : (j+1)*hm.Width]
		for i := tile.Min.X; i < tile.Max.X; i++ {
			row[i] = EscapeIter(g.At(i, j), hm.MaxIter)
		}
	}
}

// splitTiles splits r into tiles of size tileW × tileH. Tiles at the right
// and bottom edges are smaller if r is not divisible.
func splitTiles(r image.Rectangle, tileW, tileH int) []image.Rectangle {
	if tileW <= 0 || tileH <= 0 {
		panic("tile dimensions must be positive")
	}

	w := r.Dx()
	h := r.Dy()

	var tiles []image.Rectangle
	for oy := 0; oy < h; oy += tileH {
		th := min(tileH, h-oy)
		for ox := 0; ox < w; ox += tileW {
			tw := min(tileW, w-ox)
			tiles = append(tiles, image.Rect(
				r.Min.X+ox,
				r.Min.Y+oy,
				r.Min.X+ox+tw,
				r.Min.Y+oy+th,
			))
		}
	}
	return tiles
}
