//go:build !raylib

package window

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/game"
)

func TestRunUnavailable(t *testing.T) {
	if Available {
		t.Fatal("stub build should report Available = false")
	}
	state := game.New(game.DefaultOptions(), game.NewRandom(1))
	if err := Run(state, DefaultOptions()); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Run() = %v, expected ErrUnavailable", err)
	}
}
