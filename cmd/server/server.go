// Command server computes the escape-time surface once, pre-renders the full
// rotation cycle, and serves it to browsers: a static page with the wasm
// viewer plus a websocket endpoint that streams the PNG-encoded frames.
package main

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

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

	encoded, err := encodeFrames(frames)
	if err != nil {
		return err
	}
	log.Printf("frames encoded, starting web server")

	stream := &frameStream{
		size:     renderer.Size,
		frames:   encoded,
		interval: cfg.FrameInterval,
	}

	srv := webServer(8080, stream)
	return srv.ListenAndServe()
}

// encodeFrames PNG-encodes every frame once so each connected client replays
// the same cached bytes.
func encodeFrames(frames []*image.RGBA) ([][]byte, error) {
	encoded := make([][]byte, len(frames))
	var eg errgroup.Group
	for f, img := range frames {
		f, img := f, img
		eg.Go(func() error {
			var buf bytes.Buffer
			if err := png.Encode(&buf, img); err != nil {
				return fmt.Errorf("encode frame %d: %w", f, err)
			}
			encoded[f] = buf.Bytes()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return encoded, nil
}

func webServer(port int, stream *frameStream) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", stream.handler())
	mux.Handle("/", http.FileServer(http.Dir("./static")))

	log.Printf("listening on http://localhost:%d", port)
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
