package sequence

// FrameRecord is one discovered image and its playback timestamp in seconds.
type FrameRecord struct {
	Path      string
	Timestamp float64
}

// Sequence is an ordered, read-only list of frames. Order is the
// lexicographic order of the frame paths.
type Sequence struct {
	frames []FrameRecord
}

// New builds a Sequence from paths and timestamps of equal length.
// Both slices are copied.
func New(paths []string, timestamps []float64) Sequence {
	if len(paths) != len(timestamps) {
		panic("sequence: paths and timestamps differ in length")
	}
	frames := make([]FrameRecord, len(paths))
	for i := range paths {
		frames[i] = FrameRecord{Path: paths[i], Timestamp: timestamps[i]}
	}
	return Sequence{frames: frames}
}

// Len returns the number of frames.
func (s Sequence) Len() int {
	return len(s.frames)
}

// At returns frame i.
func (s Sequence) At(i int) FrameRecord {
	return s.frames[i]
}

// Frames returns a copy of all frames in order.
func (s Sequence) Frames() []FrameRecord {
	out := make([]FrameRecord, len(s.frames))
	copy(out, s.frames)
	return out
}

// Timestamps returns a copy of the frame timestamps in order.
func (s Sequence) Timestamps() []float64 {
	out := make([]float64, len(s.frames))
	for i, f := range s.frames {
		out[i] = f.Timestamp
	}
	return out
}
