package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"
)

// CountProgress tracks a fixed number of discrete steps, such as publishing
// commands to the chat platform. Safe for concurrent use.
type CountProgress struct {
	label string
	total int

	mu         sync.Mutex
	start      time.Time
	done       int
	failed     int
	lastRender time.Time
	nextLogPct int
	finished   bool

	interactive bool
	out         io.Writer
}

func NewCountProgress(label string, total int) *CountProgress {
	return &CountProgress{
		label:       label,
		total:       total,
		start:       time.Now(),
		nextLogPct:  25,
		interactive: term.IsTerminal(int(os.Stderr.Fd())),
		out:         os.Stderr,
	}
}

// Step records one finished item. A non-nil err counts it as failed.
func (p *CountProgress) Step(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.finished {
		return
	}
	p.done++
	if err != nil {
		p.failed++
	}
	p.maybeRenderLocked(false)
	p.maybeLogLocked()
}

// Counts returns finished and failed item counts.
func (p *CountProgress) Counts() (done, failed int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.done, p.failed
}

func (p *CountProgress) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.finished {
		return
	}
	p.finished = true
	p.maybeRenderLocked(true)

	elapsed := time.Since(p.start).Round(time.Millisecond).String()
	if p.failed > 0 {
		L().Warn("task finished with failures", "task", p.label, "done", p.done, "failed", p.failed, "elapsed", elapsed)
		return
	}
	L().Info("task complete", "task", p.label, "done", p.done, "elapsed", elapsed)
}

func (p *CountProgress) maybeRenderLocked(force bool) {
	if !p.interactive {
		return
	}
	if !force && time.Since(p.lastRender) < 100*time.Millisecond {
		return
	}

	fraction := 1.0
	if p.total > 0 {
		fraction = float64(p.done) / float64(p.total)
	}
	fmt.Fprintf(p.out, "\r%s %s %d/%d", p.label, renderBar(fraction, 34), p.done, p.total)
	if p.failed > 0 {
		fmt.Fprintf(p.out, " (%d failed)", p.failed)
	}
	if force {
		fmt.Fprint(p.out, "\n")
	}
	p.lastRender = time.Now()
}

func (p *CountProgress) maybeLogLocked() {
	if p.interactive || p.total <= 0 {
		return
	}
	percent := p.done * 100 / p.total
	if percent >= p.nextLogPct {
		L().Info("progress", "task", p.label, "percent", percent, "done", p.done, "total", p.total)
		for p.nextLogPct <= percent {
			p.nextLogPct += 25
		}
	}
}

func renderBar(fraction float64, width int) string {
	if width < 10 {
		width = 10
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	full := min(int(fraction*float64(width)), width)
	empty := width - full
	return fmt.Sprintf("[%s%s] %3.0f%%", strings.Repeat("#", full), strings.Repeat("-", empty), fraction*100)
}
