package playback

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"time"

	"monoplay/internal/mask"
	"monoplay/internal/platform/metrics"
	"monoplay/internal/sequence"
)

// DefaultTrajectoryPath is where the trajectory is exported when no path is configured.
const DefaultTrajectoryPath = "KeyFrameTrajectory.txt"

// FrameResult describes one processed frame.
type FrameResult struct {
	Index      int
	Path       string
	Timestamp  float64
	Mask       mask.Reference
	MaskMissed bool
	Pose       Pose
	Latency    time.Duration
	Wait       time.Duration
	Behind     bool
}

// Progress receives per-frame updates for display. Implementations must not block.
type Progress interface {
	Start(total int)
	Frame(r FrameResult)
	Finish(err error)
}

// Options configure an Orchestrator. Zero values select defaults.
type Options struct {
	// MaskToken is the mask folder name, or "none".
	MaskToken string
	// Realtime enables pacing sleeps.
	Realtime bool
	// TrajectoryPath defaults to DefaultTrajectoryPath.
	TrajectoryPath string
	// Out receives the banner and summary. Defaults to io.Discard.
	Out io.Writer

	Log      *slog.Logger
	Metrics  *metrics.Metrics
	Tracker  *StatusTracker
	Progress Progress
}

// Orchestrator plays a sequence into an engine, one frame at a time.
type Orchestrator struct {
	seq       sequence.Sequence
	engine    Engine
	loader    ImageLoader
	scheduler *Scheduler
	stats     *Aggregator
	opts      Options
	log       *slog.Logger
}

// New returns an Orchestrator for seq.
func New(seq sequence.Sequence, engine Engine, loader ImageLoader, opts Options) *Orchestrator {
	if opts.MaskToken == "" {
		opts.MaskToken = mask.NoneToken
	}
	if opts.TrajectoryPath == "" {
		opts.TrajectoryPath = DefaultTrajectoryPath
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	log := opts.Log
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Orchestrator{
		seq:       seq,
		engine:    engine,
		loader:    loader,
		scheduler: NewScheduler(seq.Timestamps(), opts.Realtime),
		stats:     NewAggregator(seq.Len()),
		opts:      opts,
		log:       log,
	}
}

// Stats returns the aggregator holding the latency samples of the run.
func (o *Orchestrator) Stats() *Aggregator {
	return o.stats
}

// Run plays every frame, shuts the engine down, reports latency statistics
// and exports the trajectory. Any frame or track failure aborts the run:
// the engine is still shut down but no trajectory is exported.
func (o *Orchestrator) Run(ctx context.Context) (err error) {
	n := o.seq.Len()
	if n == 0 {
		return ErrEmptySequence
	}

	if o.opts.Metrics != nil {
		o.opts.Metrics.SetSequenceFrames(n)
	}
	if o.opts.Tracker != nil {
		o.opts.Tracker.Begin(n)
		defer func() { o.opts.Tracker.End(err) }()
	}
	if o.opts.Progress != nil {
		o.opts.Progress.Start(n)
		defer func() { o.opts.Progress.Finish(err) }()
	}

	fmt.Fprintf(o.opts.Out, "\n-------\nStart processing sequence ...\nImages in the sequence: %d\n\n", n)
	o.log.Info("playback started",
		slog.Int("frames", n),
		slog.String("mask_token", o.opts.MaskToken),
		slog.Bool("realtime", o.opts.Realtime))

	for i := 0; i < n; i++ {
		if err := o.step(ctx, i); err != nil {
			if o.opts.Metrics != nil && !errors.Is(err, context.Canceled) {
				o.opts.Metrics.IncFrameFailures()
			}
			o.shutdown()
			return err
		}
	}

	if err := o.shutdown(); err != nil {
		return err
	}

	if err := o.stats.Report(o.opts.Out); err != nil {
		o.log.Warn("write summary failed", slog.String("error", err.Error()))
	}
	if s, ok := o.stats.Summary(); ok {
		o.log.Info("playback finished",
			slog.Int("frames", s.Count),
			slog.Float64("median_seconds", s.Median),
			slog.Float64("mean_seconds", s.Mean),
			slog.Float64("max_seconds", s.Max))
	}

	if err := o.engine.ExportTrajectory(o.opts.TrajectoryPath); err != nil {
		return fmt.Errorf("export trajectory %s: %w", o.opts.TrajectoryPath, err)
	}
	o.log.Info("trajectory exported", slog.String("path", o.opts.TrajectoryPath))
	return nil
}

// step processes frame i: load, resolve mask, track, record, pace.
func (o *Orchestrator) step(ctx context.Context, i int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	frame := o.seq.At(i)
	img, err := o.loader.LoadImage(frame.Path)
	if err != nil {
		o.log.Error("failed to load image", slog.Int("index", i), slog.String("path", frame.Path), slog.String("error", err.Error()))
		return &FrameLoadError{Index: i, Path: frame.Path, Err: err}
	}

	ref := mask.Resolve(frame.Path, o.opts.MaskToken)
	m, missed := o.loadMask(ref, img.Bounds().Size())

	start := time.Now()
	pose, err := o.engine.Track(img, frame.Timestamp, m)
	latency := time.Since(start)
	if err != nil {
		o.log.Error("tracking failed", slog.Int("index", i), slog.String("path", frame.Path), slog.String("error", err.Error()))
		return &TrackError{Index: i, Err: err}
	}

	o.stats.Add(i, latency)

	wait, behind, err := o.scheduler.Pace(ctx, i, latency)
	result := FrameResult{
		Index:      i,
		Path:       frame.Path,
		Timestamp:  frame.Timestamp,
		Mask:       ref,
		MaskMissed: missed,
		Pose:       pose,
		Latency:    latency,
		Wait:       wait,
		Behind:     behind,
	}
	o.record(result)
	return err
}

// loadMask returns nil when ref is None or the mask cannot be read; missed
// reports the latter.
func (o *Orchestrator) loadMask(ref mask.Reference, size image.Point) (m *image.Gray, missed bool) {
	if ref.IsNone() {
		return nil, false
	}
	m, err := o.loader.LoadMask(ref.Path, size)
	if err != nil {
		o.log.Debug("mask unavailable", slog.String("mask", ref.Path), slog.String("error", err.Error()))
		if o.opts.Metrics != nil {
			o.opts.Metrics.IncMaskMisses()
		}
		return nil, true
	}
	return m, false
}

func (o *Orchestrator) record(r FrameResult) {
	if r.Behind {
		o.log.Debug("frame behind schedule",
			slog.Int("index", r.Index),
			slog.Duration("latency", r.Latency),
			slog.Duration("interval", o.scheduler.Interval(r.Index)))
	}
	if !r.Pose.Tracked {
		o.log.Debug("frame not tracked", slog.Int("index", r.Index), slog.Float64("timestamp", r.Timestamp))
	}
	if o.opts.Metrics != nil {
		o.opts.Metrics.ObserveFrame(r.Latency, r.Wait, r.Behind)
	}
	if o.opts.Tracker != nil {
		o.opts.Tracker.Record(r)
	}
	if o.opts.Progress != nil {
		o.opts.Progress.Frame(r)
	}
}

func (o *Orchestrator) shutdown() error {
	if err := o.engine.Shutdown(); err != nil {
		o.log.Error("engine shutdown failed", slog.String("error", err.Error()))
		return fmt.Errorf("shutdown engine: %w", err)
	}
	return nil
}
