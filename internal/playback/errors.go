package playback

import (
	"context"
	"errors"
	"fmt"

	"monoplay/internal/platform/config"
	"monoplay/internal/sequence"
)

// ErrEmptySequence is returned when the sequence directory holds no images.
// It is a configuration error: a player with nothing to play was pointed at
// the wrong directory.
var ErrEmptySequence = fmt.Errorf("%w: sequence contains no images", config.ErrInvalid)

// FrameLoadError aborts a run when a frame cannot be decoded. Skipping the
// frame would shift every later index against the engine's state.
type FrameLoadError struct {
	Index int
	Path  string
	Err   error
}

func (e *FrameLoadError) Error() string {
	return fmt.Sprintf("failed to load frame %d at %s: %v", e.Index, e.Path, e.Err)
}

func (e *FrameLoadError) Unwrap() error { return e.Err }

// TrackError aborts a run when the engine rejects a frame.
type TrackError struct {
	Index int
	Err   error
}

func (e *TrackError) Error() string {
	return fmt.Sprintf("tracking frame %d: %v", e.Index, e.Err)
}

func (e *TrackError) Unwrap() error { return e.Err }

// Kind classifies run errors for reporting.
type Kind string

const (
	KindNone                 Kind = ""
	KindConfiguration        Kind = "configuration"
	KindDirectoryUnavailable Kind = "directory_unavailable"
	KindFrameLoad            Kind = "frame_load"
	KindTrack                Kind = "track"
	KindInterrupted          Kind = "interrupted"
	KindInternal             Kind = "internal"
)

// Classify returns the Kind of err.
func Classify(err error) Kind {
	var frameErr *FrameLoadError
	var trackErr *TrackError

	switch {
	case err == nil:
		return KindNone
	case errors.As(err, &frameErr):
		return KindFrameLoad
	case errors.As(err, &trackErr):
		return KindTrack
	case errors.Is(err, sequence.ErrDirectoryUnavailable):
		return KindDirectoryUnavailable
	case errors.Is(err, config.ErrInvalid):
		return KindConfiguration
	case errors.Is(err, context.Canceled):
		return KindInterrupted
	default:
		return KindInternal
	}
}

// ExitCode maps a run error to the process exit status.
func ExitCode(err error) int {
	if Classify(err) == KindNone {
		return 0
	}
	return 1
}
