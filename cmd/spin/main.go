// Command spin opens a desktop window playing the rotating-surface
// animation. The height map is computed once up front; frames are rendered
// lazily on first use and replayed from cache for every later cycle.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/jvrnik/mandelsurf"
	"github.com/jvrnik/mandelsurf/render"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	cfg, err := mandelsurf.ParseConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	grid, err := mandelsurf.BuildGrid(cfg.Plane(), cfg.Width, cfg.Height)
	if err != nil {
		return err
	}

	log.Printf("computing %dx%d height map (max %d iterations)", cfg.Width, cfg.Height, cfg.MaxIter)
	hm, err := mandelsurf.ComputeHeightMap(context.Background(), grid, cfg.MaxIter, cfg.Workers)
	if err != nil {
		return err
	}

	renderer := render.NewSurface(cfg.Width)

	g := &game{
		cfg:      cfg,
		grid:     grid,
		hm:       hm,
		renderer: renderer,
		frames:   make([]*ebiten.Image, cfg.Frames),
		frame:    -1, // first Update advances to frame 0
	}

	ebiten.SetWindowTitle("mandelsurf")
	ebiten.SetWindowSize(renderer.Size, renderer.Size)
	// One tick per animation frame interval.
	ebiten.SetTPS(max(int(time.Second/cfg.FrameInterval), 1))
	return ebiten.RunGame(g)
}

type game struct {
	cfg      mandelsurf.Config
	grid     *mandelsurf.Grid
	hm       *mandelsurf.HeightMap
	renderer *render.Surface

	frames []*ebiten.Image
	frame  int
}

func (g *game) Update() error {
	g.frame = (g.frame + 1) % g.cfg.Frames
	// Rendering happens here rather than in Draw so errors can stop the game.
	if g.frames[g.frame] == nil {
		pose := mandelsurf.FramePose(g.frame, g.cfg.Frames, g.cfg.Elevation)
		img, err := g.renderer.RenderFrame(g.hm, g.grid, pose)
		if err != nil {
			return fmt.Errorf("render frame %d: %w", g.frame, err)
		}
		g.frames[g.frame] = ebiten.NewImageFromImage(img)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if frame := g.frames[g.frame]; frame != nil {
		screen.DrawImage(frame, nil)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.renderer.Size, g.renderer.Size
}
