package ioload

import (
	"io"

	"github.com/cheggaaa/pb/v3"
)

// newProgressBar creates a new progress bar with consistent
// settings. A nil writer hides the bar.
func newProgressBar(
	total int,
	prefix string,
	w io.Writer,
) *pb.ProgressBar {
	bar := pb.Full.New(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)
	if w == nil {
		bar.SetWriter(io.Discard)
	} else {
		bar.SetWriter(w)
	}
	return bar.Start()
}
