package sequence

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestSynthesize(t *testing.T) {
	ts := Synthesize(4, 1.0/30)
	if len(ts) != 4 {
		t.Fatalf("expected 4 timestamps, got %d", len(ts))
	}
	for i, got := range ts {
		if want := float64(i) * (1.0 / 30); got != want {
			t.Errorf("ts[%d] = %v, want %v", i, got, want)
		}
	}
	for i := 1; i < len(ts); i++ {
		if ts[i] <= ts[i-1] {
			t.Errorf("timestamps not strictly increasing at %d: %v", i, ts)
		}
	}
}

func TestSynthesize_empty(t *testing.T) {
	if ts := Synthesize(0, 1.0/30); len(ts) != 0 {
		t.Errorf("expected no timestamps, got %v", ts)
	}
	if ts := Synthesize(-3, 1.0/30); len(ts) != 0 {
		t.Errorf("expected no timestamps for negative n, got %v", ts)
	}
}

func TestLoad_mixed_directory(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "0001.jpg", "0002.png", "readme.txt", "0003.JPEG")

	seq, err := Load(dir, 0)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if seq.Len() != 3 {
		t.Fatalf("expected 3 frames, got %d", seq.Len())
	}

	wantPaths := []string{dir + "/0001.jpg", dir + "/0002.png", dir + "/0003.JPEG"}
	wantTimes := []float64{0, 1.0 / 30, 2.0 / 30}
	for i, f := range seq.Frames() {
		if f.Path != wantPaths[i] {
			t.Errorf("frame %d path %q, want %q", i, f.Path, wantPaths[i])
		}
		if diff := f.Timestamp - wantTimes[i]; diff > 1e-12 || diff < -1e-12 {
			t.Errorf("frame %d timestamp %v, want %v", i, f.Timestamp, wantTimes[i])
		}
	}
}

func TestLoad_custom_frame_rate(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.png", "b.png")

	seq, err := Load(dir, 10)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := seq.At(1).Timestamp; got != 0.1 {
		t.Errorf("expected 0.1 s step at 10 fps, got %v", got)
	}
}

func TestLoad_missing_directory(t *testing.T) {
	seq, err := Load(filepath.Join(t.TempDir(), "nope"), 30)
	if !errors.Is(err, ErrDirectoryUnavailable) {
		t.Fatalf("expected ErrDirectoryUnavailable, got %v", err)
	}
	if seq.Len() != 0 {
		t.Errorf("expected empty sequence, got %d frames", seq.Len())
	}
}

func TestSequence_is_read_only(t *testing.T) {
	seq := New([]string{"a.png", "b.png"}, []float64{0, 0.5})

	frames := seq.Frames()
	frames[0].Path = "mutated"
	ts := seq.Timestamps()
	ts[1] = 99

	if seq.At(0).Path != "a.png" || seq.At(1).Timestamp != 0.5 {
		t.Errorf("sequence mutated through returned copies: %+v", seq.Frames())
	}
}
