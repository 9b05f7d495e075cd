// Package engine provides a stand-in tracking engine that lets the player run
// end to end without a visual SLAM backend linked in.
package engine

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"sync"

	"monoplay/internal/playback"
)

// ErrShutdown is returned by Track after Shutdown.
var ErrShutdown = errors.New("engine is shut down")

// Options are the inputs a tracking engine is initialised from.
type Options struct {
	VocabularyPath string
	SettingsPath   string
	UseViewer      bool
}

type keyFrame struct {
	timestamp float64
	pose      playback.Pose
}

// Recorder accepts every frame with an identity pose and exports the
// timestamps it saw as a TUM trajectory.
type Recorder struct {
	mu        sync.Mutex
	log       *slog.Logger
	keyFrames []keyFrame
	masked    int
	shutdown  bool
}

// NewRecorder checks that the vocabulary and settings files exist and
// returns a Recorder.
func NewRecorder(opts Options, log *slog.Logger) (*Recorder, error) {
	for _, p := range []struct{ name, path string }{
		{"vocabulary", opts.VocabularyPath},
		{"settings", opts.SettingsPath},
	} {
		if _, err := os.Stat(p.path); err != nil {
			return nil, fmt.Errorf("%s file: %w", p.name, err)
		}
	}
	if opts.UseViewer {
		log.Warn("viewer requested but the recorder engine has no viewer")
	}
	log.Info("recorder engine ready",
		slog.String("vocabulary", opts.VocabularyPath),
		slog.String("settings", opts.SettingsPath))
	return &Recorder{log: log}, nil
}

// Track implements playback.Engine.
func (r *Recorder) Track(img image.Image, timestamp float64, mask *image.Gray) (playback.Pose, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.shutdown {
		return playback.Pose{}, ErrShutdown
	}
	if img == nil {
		return playback.Pose{}, errors.New("nil frame")
	}
	if mask != nil {
		r.masked++
	}
	r.keyFrames = append(r.keyFrames, keyFrame{timestamp: timestamp, pose: playback.IdentityPose})
	return playback.IdentityPose, nil
}

// Shutdown implements playback.Engine. Calling it twice is harmless.
func (r *Recorder) Shutdown() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.shutdown {
		r.shutdown = true
		r.log.Debug("recorder engine stopped", slog.Int("frames", len(r.keyFrames)), slog.Int("masked", r.masked))
	}
	return nil
}

// ExportTrajectory implements playback.Engine. Each line is
// "timestamp tx ty tz qx qy qz qw".
func (r *Recorder) ExportTrajectory(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for _, kf := range r.keyFrames {
		t, q := kf.pose.Translation, kf.pose.Rotation
		fmt.Fprintf(w, "%.6f %.7f %.7f %.7f %.7f %.7f %.7f %.7f\n",
			kf.timestamp, t[0], t[1], t[2], q[0], q[1], q[2], q[3])
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
