package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Bar renders a frame counter on a terminal. A nil *Bar is valid and does nothing.
type Bar struct {
	bar *progressbar.ProgressBar
}

// New returns a Bar for total frames writing to w.
func New(w io.Writer, total int, desc string) *Bar {
	return &Bar{bar: progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(desc),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetItsString("frames"),
		progressbar.OptionShowIts(),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(w) }),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))}
}

// Add advances the bar by one frame and updates the description.
func (b *Bar) Add(desc string) {
	if b == nil {
		return
	}
	if desc != "" {
		b.bar.Describe(desc)
	}
	_ = b.bar.Add(1)
}

// Finish completes the bar.
func (b *Bar) Finish() {
	if b == nil {
		return
	}
	_ = b.bar.Finish()
}

// Abort clears the bar without completing it, leaving the line free for errors.
func (b *Bar) Abort() {
	if b == nil {
		return
	}
	_ = b.bar.Clear()
}
