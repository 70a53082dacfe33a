// Command gif renders the full rotation cycle of the Mandelbrot escape-time
// surface and saves it as an animated GIF, plus the first frame as a PNG.
package main

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"image/png"
	"log"
	"os"
	"time"

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
	start := time.Now()
	hm, err := mandelsurf.ComputeHeightMap(context.Background(), grid, cfg.MaxIter, cfg.Workers)
	if err != nil {
		return err
	}
	log.Printf("height map done in %s", time.Since(start))

	renderer := render.NewSurface(cfg.Width)
	log.Printf("rendering %d frames", cfg.Frames)
	frames, err := render.Frames(context.Background(), renderer, hm, grid, cfg.Frames, cfg.Elevation)
	if err != nil {
		return err
	}

	if err := writeGIF("mandelsurf.gif", frames, renderer, cfg.FrameInterval); err != nil {
		return err
	}
	if err := writePNG("mandelsurf.png", frames[0]); err != nil {
		return err
	}
	return nil
}

// writeGIF encodes the frames with a shared viridis palette. The per-frame
// delay is the configured interval in GIF centisecond units.
func writeGIF(filename string, frames []*image.RGBA, renderer *render.Surface, interval time.Duration) error {
	palette := render.ViridisPalette(255, renderer.Background)
	delay := int(interval / (10 * time.Millisecond))
	if delay < 1 {
		delay = 1
	}

	anim := &gif.GIF{}
	for _, frame := range frames {
		p := image.NewPaletted(frame.Bounds(), palette)
		draw.Draw(p, frame.Bounds(), frame, frame.Bounds().Min, draw.Src)
		anim.Image = append(anim.Image, p)
		anim.Delay = append(anim.Delay, delay)
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := gif.EncodeAll(f, anim); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	log.Printf("animation saved to %q", filename)
	return nil
}

func writePNG(filename string, frame *image.RGBA) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, frame); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	log.Printf("first frame saved to %q", filename)
	return nil
}
