package sequence

import "fmt"

// DefaultFrameRate is the capture rate assumed when the sequence carries no timestamps.
const DefaultFrameRate = 30.0

// Synthesize returns n timestamps t_i = i * interval seconds. The sequence
// has no embedded capture times, so a constant-rate clock stands in for them.
func Synthesize(n int, interval float64) []float64 {
	if n <= 0 {
		return []float64{}
	}
	ts := make([]float64, n)
	for i := range ts {
		ts[i] = float64(i) * interval
	}
	return ts
}

// Load scans dir and stamps each frame at frameRate frames per second.
// A non-positive frameRate selects DefaultFrameRate.
func Load(dir string, frameRate float64) (Sequence, error) {
	if frameRate <= 0 {
		frameRate = DefaultFrameRate
	}
	paths, err := Scan(dir)
	if err != nil {
		return Sequence{}, fmt.Errorf("load sequence %s: %w", dir, err)
	}
	return New(paths, Synthesize(len(paths), 1.0/frameRate)), nil
}
