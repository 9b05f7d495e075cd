package playback

import "image"

// Pose is the camera pose the engine estimates for a frame.
// Translation is in meters; Rotation is a unit quaternion (x, y, z, w).
type Pose struct {
	Tracked     bool
	Translation [3]float64
	Rotation    [4]float64
}

// IdentityPose is a tracked pose at the origin with no rotation.
var IdentityPose = Pose{Tracked: true, Rotation: [4]float64{0, 0, 0, 1}}

// Engine is the tracking engine the player feeds. Implementations may run
// their own background work; to the player every call is synchronous.
type Engine interface {
	// Track processes one frame. mask is nil when the frame has no mask.
	Track(img image.Image, timestamp float64, mask *image.Gray) (Pose, error)

	// Shutdown stops the engine. It is called exactly once per run.
	Shutdown() error

	// ExportTrajectory writes the estimated trajectory to path. It is only
	// called after a run that processed every frame.
	ExportTrajectory(path string) error
}

// ImageLoader decodes frames and masks.
type ImageLoader interface {
	LoadImage(path string) (image.Image, error)
	// LoadMask decodes a single-channel mask sized to match size when size is non-zero.
	LoadMask(path string, size image.Point) (*image.Gray, error)
}
