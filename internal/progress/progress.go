// Package progress reports transform progress to a diagnostic sink,
// keeping the core transform decoupled from any specific output channel.
package progress

import (
	"fmt"
	"io"
)

// Sink receives progress updates during a streaming transform.
type Sink interface {
	// Report is called after each chunk with the cumulative number of
	// bytes consumed and the total input size in bytes. A non-positive
	// total means the size is unknown.
	Report(processed, total int64)

	// Done is called once after the input is fully processed.
	Done()
}

// Discard is a Sink that ignores all updates.
var Discard Sink = discard{}

type discard struct{}

func (discard) Report(processed, total int64) {}
func (discard) Done()                         {}

// Meter writes percentage lines to a diagnostic stream. A new line is
// emitted only when the completed percentage has grown by at least one
// whole point since the last report.
type Meter struct {
	out  io.Writer
	last float64
}

// NewMeter creates a Meter writing to out.
func NewMeter(out io.Writer) *Meter {
	return &Meter{out: out, last: -1.0}
}

// Report emits a " NN.N%..." line when the percentage crossed another
// whole point. An unknown total reports as 100%.
func (m *Meter) Report(processed, total int64) {
	percent := 100.0
	if total > 0 {
		percent = float64(processed) / float64(total) * 100
	}
	if percent-m.last >= 1.0 {
		m.last = percent
		fmt.Fprintf(m.out, "%5.1f%%...\n", percent)
	}
}

// Done emits the final completion line.
func (m *Meter) Done() {
	fmt.Fprintln(m.out, "100.0%... done.")
}
