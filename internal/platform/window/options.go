package window

import (
	"io"

	"github.com/charmbracelet/log"
)

// Options configures the window driver.
type Options struct {
	CellPixels int // side of one grid cell in pixels
	FPS        int
	Logger     *log.Logger
}

// DefaultOptions returns 20 pixel cells at 60 frames per second.
func DefaultOptions() Options {
	return Options{CellPixels: 20, FPS: 60}
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}
