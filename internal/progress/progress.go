// Package progress provides a visible counter for batch operations.
package progress

import (
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
)

const barTemplate = `{{ bar . " " "━" "━" " " " "}} {{percent .}} {{rtime .}}`

// Bar wraps a pb progress bar with a fixed template. It is purely
// observational: it never alters control flow or suppresses errors raised
// while a work item is processed.
type Bar struct {
	bar *pb.ProgressBar
}

// New creates and starts a bar for a known number of work items.
// A nil writer defaults to stdout; tests pass io.Discard.
func New(total int, out io.Writer) *Bar {
	if out == nil {
		out = os.Stdout
	}

	bar := pb.New(total).
		SetTemplateString(barTemplate).
		SetWriter(out).
		Start()

	return &Bar{bar: bar}
}

// Increment advances the counter by one work item.
func (b *Bar) Increment() {
	b.bar.Increment()
}

// Current reports how many work items have been counted so far.
func (b *Bar) Current() int64 {
	return b.bar.Current()
}

// Finish closes out the bar's visual state. It is safe to call on every
// exit path, including after a failure mid-batch.
func (b *Bar) Finish() {
	b.bar.Finish()
}
