package main

import (
	"fmt"
	"io"

	"monoplay/internal/platform/progress"
	"monoplay/internal/playback"
)

// barProgress draws playback progress with a terminal progress bar.
type barProgress struct {
	w   io.Writer
	bar *progress.Bar
}

func (p *barProgress) Start(total int) {
	p.bar = progress.New(p.w, total, "tracking")
}

func (p *barProgress) Frame(r playback.FrameResult) {
	desc := "tracking"
	if r.Behind {
		desc = fmt.Sprintf("tracking (behind at frame %d)", r.Index)
	}
	p.bar.Add(desc)
}

func (p *barProgress) Finish(err error) {
	if err != nil {
		p.bar.Abort()
		return
	}
	p.bar.Finish()
}
