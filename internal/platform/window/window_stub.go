//go:build !raylib

package window

import (
	"errors"

	"github.com/vovakirdan/tui-snake/internal/game"
)

// Available reports whether the binary was built with window support.
const Available = false

// ErrUnavailable is returned by Run in builds without the raylib tag.
var ErrUnavailable = errors.New("window: built without raylib support (rebuild with -tags raylib)")

// Run always fails in builds without the raylib tag.
func Run(_ *game.State, opts Options) error {
	opts.logger().Debug("window driver unavailable")
	return ErrUnavailable
}
