package playback

import (
	"fmt"
	"io"
	"sort"
	"time"
)

// LatencySample is the tracking latency of one frame.
type LatencySample struct {
	Index   int
	Seconds float64
}

// Summary aggregates latency samples. It is the zero value when no frame was processed.
type Summary struct {
	Count  int
	Median float64
	Mean   float64
	Min    float64
	Max    float64
	Total  float64
}

// Aggregator collects latency samples in playback order.
type Aggregator struct {
	samples []LatencySample
}

// NewAggregator returns an Aggregator with room for n samples.
func NewAggregator(n int) *Aggregator {
	if n < 0 {
		n = 0
	}
	return &Aggregator{samples: make([]LatencySample, 0, n)}
}

// Add appends the latency of frame index.
func (a *Aggregator) Add(index int, latency time.Duration) {
	a.samples = append(a.samples, LatencySample{Index: index, Seconds: latency.Seconds()})
}

// AddSeconds appends a latency given in seconds.
func (a *Aggregator) AddSeconds(index int, seconds float64) {
	a.samples = append(a.samples, LatencySample{Index: index, Seconds: seconds})
}

// Len returns the number of samples.
func (a *Aggregator) Len() int {
	return len(a.samples)
}

// Samples returns a copy of the samples in playback order.
func (a *Aggregator) Samples() []LatencySample {
	out := make([]LatencySample, len(a.samples))
	copy(out, a.samples)
	return out
}

// Summary computes the statistics. The median of an even count is the
// lower of the two middle values. ok is false when there are no samples.
func (a *Aggregator) Summary() (s Summary, ok bool) {
	n := len(a.samples)
	if n == 0 {
		return Summary{}, false
	}

	sorted := make([]float64, n)
	for i, smp := range a.samples {
		sorted[i] = smp.Seconds
	}
	sort.Float64s(sorted)

	total := 0.0
	for _, v := range sorted {
		total += v
	}

	return Summary{
		Count:  n,
		Median: sorted[(n-1)/2],
		Mean:   total / float64(n),
		Min:    sorted[0],
		Max:    sorted[n-1],
		Total:  total,
	}, true
}

// Report writes the median and mean tracking time to w. Nothing is written
// when there are no samples.
func (a *Aggregator) Report(w io.Writer) error {
	s, ok := a.Summary()
	if !ok {
		return nil
	}
	_, err := fmt.Fprintf(w, "-------\n\nmedian tracking time: %g\nmean tracking time: %g\n", s.Median, s.Mean)
	return err
}
