package playback

import (
	"sync"
	"time"
)

// Status is a point-in-time view of a run, served on /status.
type Status struct {
	RunID          string    `json:"run_id"`
	SequenceDir    string    `json:"sequence_dir"`
	Total          int       `json:"total"`
	Processed      int       `json:"processed"`
	BehindSchedule int       `json:"behind_schedule"`
	MaskMisses     int       `json:"mask_misses"`
	LastIndex      int       `json:"last_index"`
	LastLatency    float64   `json:"last_latency_seconds"`
	StartedAt      time.Time `json:"started_at"`
	FinishedAt     time.Time `json:"finished_at,omitzero"`
	Finished       bool      `json:"finished"`
	Error          string    `json:"error,omitempty"`
}

// StatusTracker holds the Status of the current run. The playback loop is
// its only writer; HTTP handlers read snapshots concurrently.
type StatusTracker struct {
	mu     sync.RWMutex
	status Status
}

// NewStatusTracker returns a tracker for the run identified by runID.
func NewStatusTracker(runID, sequenceDir string) *StatusTracker {
	return &StatusTracker{status: Status{RunID: runID, SequenceDir: sequenceDir, LastIndex: -1}}
}

// Begin records the start of playback over total frames.
func (t *StatusTracker) Begin(total int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.status.Total = total
	t.status.StartedAt = time.Now().UTC()
}

// Record accounts for one processed frame.
func (t *StatusTracker) Record(r FrameResult) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.status.Processed++
	t.status.LastIndex = r.Index
	t.status.LastLatency = r.Latency.Seconds()
	if r.Behind {
		t.status.BehindSchedule++
	}
	if r.MaskMissed {
		t.status.MaskMisses++
	}
}

// End marks the run finished. err is nil on success.
func (t *StatusTracker) End(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.status.Finished = true
	t.status.FinishedAt = time.Now().UTC()
	if err != nil {
		t.status.Error = err.Error()
	}
}

// Snapshot returns a copy of the current status.
func (t *StatusTracker) Snapshot() Status {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.status
}
