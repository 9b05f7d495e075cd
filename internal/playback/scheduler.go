package playback

import (
	"context"
	"time"
)

// Scheduler paces frame delivery so that wall-clock time between frames
// matches the gap between their timestamps.
type Scheduler struct {
	timestamps []float64
	realtime   bool
	sleep      func(ctx context.Context, d time.Duration) error
}

// NewScheduler returns a Scheduler over timestamps (seconds). With realtime
// false the waits are still computed but never slept.
func NewScheduler(timestamps []float64, realtime bool) *Scheduler {
	ts := make([]float64, len(timestamps))
	copy(ts, timestamps)
	return &Scheduler{timestamps: ts, realtime: realtime, sleep: sleepContext}
}

// Interval returns the target gap after frame i: the distance to the next
// frame, or to the previous one for the last frame, or zero for a
// single-frame sequence.
func (s *Scheduler) Interval(i int) time.Duration {
	n := len(s.timestamps)
	var sec float64
	switch {
	case i < 0 || i >= n:
		return 0
	case i < n-1:
		sec = s.timestamps[i+1] - s.timestamps[i]
	case i > 0:
		sec = s.timestamps[i] - s.timestamps[i-1]
	}
	return secondsToDuration(sec)
}

// Wait returns how long to block after a frame that took latency to process
// when the target interval is interval. It is never negative.
func Wait(interval, latency time.Duration) time.Duration {
	if latency >= interval {
		return 0
	}
	return interval - latency
}

// Pace blocks for the remainder of frame i's interval after latency has been
// spent. behind reports that latency met or exceeded the interval. Pace
// returns early with ctx.Err() if ctx is cancelled.
func (s *Scheduler) Pace(ctx context.Context, i int, latency time.Duration) (wait time.Duration, behind bool, err error) {
	interval := s.Interval(i)
	wait = Wait(interval, latency)
	behind = interval > 0 && latency >= interval

	if wait == 0 || !s.realtime {
		return wait, behind, ctx.Err()
	}
	return wait, behind, s.sleep(ctx, wait)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func secondsToDuration(sec float64) time.Duration {
	return time.Duration(sec * float64(time.Second))
}
