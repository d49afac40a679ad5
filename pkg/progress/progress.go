// Package progress reports pipeline throughput: how many of the total
// pairwise comparisons have completed so far, optional per-genome and
// per-pair trace lines, and the run's total elapsed time. It follows the
// atomic counter plus label/total/current layout of this project's
// progress bar, adapted to satisfy pipeline.Progress, and restores the original implementation's "loading N of M" /
// "comparing i against j" trace lines and elapsed-time summary.
package progress

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"
)

// Bar tracks Current against Total, renders a single-line bar to Out
// every time ComparisonDone is called, and can print per-genome and
// per-pair trace lines. It implements pipeline.Progress. Writes to Out
// are serialized, since pipeline stages call Bar concurrently from
// several worker goroutines.
type Bar struct {
	Label   string
	Total   uint64
	Out     io.Writer
	Current uint64

	mu sync.Mutex
}

// GenomeLoaded prints a "loading N of M" trace line for the genome that
// just finished the Counter stage.
func (b *Bar) GenomeLoaded(index, total int, path string) {
	if b.Out == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	fmt.Fprintf(b.Out, "loading %d of %d: %s\n", index+1, total, path)
}

// ComparisonStarted prints a "comparing i against j" trace line before a
// comparator worker computes one pair's correlation.
func (b *Bar) ComparisonStarted(i, j int) {
	if b.Out == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	fmt.Fprintf(b.Out, "comparing %d against %d\n", i, j)
}

// ComparisonDone increments the counter and redraws the bar. The
// correlation value itself is not displayed; the bar only tracks count.
func (b *Bar) ComparisonDone(i, j int, correlation float64) {
	cur := atomic.AddUint64(&b.Current, 1)
	b.draw(cur)
}

func (b *Bar) draw(cur uint64) {
	if b.Out == nil || b.Total == 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	width := 40
	ticks := int((uint64(width) * cur) / b.Total)
	if ticks > width {
		ticks = width
	}
	fmt.Fprintf(b.Out, "\r%s [", b.Label)
	for i := 0; i < ticks; i++ {
		fmt.Fprint(b.Out, "=")
	}
	for i := ticks; i < width; i++ {
		fmt.Fprint(b.Out, " ")
	}
	fmt.Fprintf(b.Out, "] %d / %d", cur, b.Total)
	if cur == b.Total {
		fmt.Fprintln(b.Out)
	}
}

// ReportElapsed prints a one-line wall-clock elapsed time summary, the
// same report the original implementation always printed once a run's
// comparisons were done.
func (b *Bar) ReportElapsed(d time.Duration) {
	if b.Out == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	fmt.Fprintf(b.Out, "time elapsed: %.0f seconds\n", d.Seconds())
}
