package mandelsurf

// Pose is a camera orientation in degrees: azimuth sweeps around the vertical
// axis, elevation tilts above the plane.
type Pose struct {
	Azimuth   float64
	Elevation float64
}

// FramePose returns the camera pose for animation frame f out of frames.
// Azimuth advances by 360/frames per frame, so a full cycle spans exactly one
// revolution: frame 0 is 0° and frame frames-1 is 360·(frames-1)/frames°,
// never wrapping back to 0 within the cycle. Elevation is fixed.
func FramePose(f, frames int, elevation float64) Pose {
	return Pose{
		Azimuth:   float64(f) * 360 / float64(frames),
		Elevation: elevation,
	}
}
