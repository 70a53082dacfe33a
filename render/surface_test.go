package render

import (
	"bytes"
	"context"
	"testing"

	"github.com/jvrnik/mandelsurf"
)

func testHeightMap(t *testing.T, size int) (*mandelsurf.HeightMap, *mandelsurf.Grid) {
	t.Helper()
	g, err := mandelsurf.BuildGrid(mandelsurf.FullView, size, size)
	if err != nil {
		t.Fatalf("BuildGrid returned error: %v", err)
	}
	hm, err := mandelsurf.ComputeHeightMap(context.Background(), g, 50, 0)
	if err != nil {
		t.Fatalf("ComputeHeightMap returned error: %v", err)
	}
	return hm, g
}

// TestRenderFrameSizeAndBackground checks the output dimensions and that the
// frame corners stay background (the projected surface fits inside the
// margin).
func TestRenderFrameSizeAndBackground(t *testing.T) {
	hm, g := testHeightMap(t, 32)
	s := NewSurface(200)

	img, err := s.RenderFrame(hm, g, mandelsurf.FramePose(0, 60, 30))
	if err != nil {
		t.Fatalf("RenderFrame returned error: %v", err)
	}
	if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 200 {
		t.Fatalf("expected 200x200 frame, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
	for _, p := range [][2]int{{0, 0}, {199, 0}, {0, 199}, {199, 199}} {
		if got := img.RGBAAt(p[0], p[1]); got != s.Background {
			t.Fatalf("corner %v: expected background %v, got %v", p, s.Background, got)
		}
	}
}

// TestRenderFrameDeterministic ensures rendering is a pure function of the
// height map and pose.
func TestRenderFrameDeterministic(t *testing.T) {
	hm, g := testHeightMap(t, 24)
	s := NewSurface(120)
	pose := mandelsurf.FramePose(17, 60, 30)

	a, err := s.RenderFrame(hm, g, pose)
	if err != nil {
		t.Fatalf("RenderFrame returned error: %v", err)
	}
	b, err := s.RenderFrame(hm, g, pose)
	if err != nil {
		t.Fatalf("RenderFrame returned error: %v", err)
	}
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatal("two renders of the same pose differ")
	}
}

// TestRenderFramePoseChangesOutput ensures the azimuth actually rotates the
// view.
func TestRenderFramePoseChangesOutput(t *testing.T) {
	hm, g := testHeightMap(t, 24)
	s := NewSurface(120)

	a, err := s.RenderFrame(hm, g, mandelsurf.FramePose(0, 60, 30))
	if err != nil {
		t.Fatalf("RenderFrame returned error: %v", err)
	}
	b, err := s.RenderFrame(hm, g, mandelsurf.FramePose(10, 60, 30))
	if err != nil {
		t.Fatalf("RenderFrame returned error: %v", err)
	}
	if bytes.Equal(a.Pix, b.Pix) {
		t.Fatal("frames 0 and 10 rendered identically")
	}
}

// TestRenderFrameDimensionMismatch ensures a height map from a different grid
// is rejected.
func TestRenderFrameDimensionMismatch(t *testing.T) {
	hm, _ := testHeightMap(t, 16)
	_, other := testHeightMap(t, 24)

	if _, err := NewSurface(100).RenderFrame(hm, other, mandelsurf.Pose{Elevation: 30}); err == nil {
		t.Fatal("expected dimension mismatch error")
	}
}

// TestFramesRendersFullCycle checks the cycle length and that frame f equals
// a direct render at the same pose.
func TestFramesRendersFullCycle(t *testing.T) {
	hm, g := testHeightMap(t, 16)
	s := NewSurface(80)

	frames, err := Frames(context.Background(), s, hm, g, 12, 30)
	if err != nil {
		t.Fatalf("Frames returned error: %v", err)
	}
	if len(frames) != 12 {
		t.Fatalf("expected 12 frames, got %d", len(frames))
	}

	direct, err := s.RenderFrame(hm, g, mandelsurf.FramePose(7, 12, 30))
	if err != nil {
		t.Fatalf("RenderFrame returned error: %v", err)
	}
	if !bytes.Equal(frames[7].Pix, direct.Pix) {
		t.Fatal("cycle frame 7 differs from direct render")
	}
}

// TestFramesRejectsBadCount ensures a non-positive cycle length errors out.
func TestFramesRejectsBadCount(t *testing.T) {
	hm, g := testHeightMap(t, 8)
	if _, err := Frames(context.Background(), NewSurface(40), hm, g, 0, 30); err == nil {
		t.Fatal("expected error for zero frames")
	}
}
