package mandelsurf

import "image"

// FrameRenderer turns the static height map into one animation frame seen
// from the given camera pose. The grid supplies the plane coordinates of the
// cells. Implementations must treat hm and g as read-only; the same map is
// rendered once per frame of the rotation cycle.
type FrameRenderer interface {
	RenderFrame(hm *HeightMap, g *Grid, pose Pose) (*image.RGBA, error)
}
