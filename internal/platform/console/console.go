// Package console drives a game from line-oriented text input. Every line
// read is one movement, which is what the tick-per-call mode is for.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// ErrInputClosed is returned by Run when the input reaches end of stream or
// fails to read.
var ErrInputClosed = errors.New("console: input closed")

// clearScreen is the ANSI erase-display sequence.
const clearScreen = "\x1b[2J\x1b[H"

// Prompt is printed after every frame.
const Prompt = "Enter a direction: wasd"

// Driver runs a game against a reader and a writer.
type Driver struct {
	state  *game.State
	in     *bufio.Scanner
	out    io.Writer
	glyphs game.Glyphs
	screen *core.Screen
	logger *log.Logger
	clear  bool
}

// Option configures a Driver.
type Option func(*Driver)

// WithGlyphs sets the characters used for the grid.
func WithGlyphs(g game.Glyphs) Option {
	return func(d *Driver) {
		d.glyphs = g
	}
}

// WithClearScreen emits the clear-screen sequence before every frame.
// Only useful when out is a terminal.
func WithClearScreen(clear bool) Option {
	return func(d *Driver) {
		d.clear = clear
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(d *Driver) {
		d.logger = l
	}
}

// New creates a console driver for state.
func New(state *game.State, in io.Reader, out io.Writer, opts ...Option) *Driver {
	d := &Driver{
		state:  state,
		in:     bufio.NewScanner(in),
		out:    out,
		glyphs: game.DefaultGlyphs(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(d)
	}

	size := state.GridSize()
	d.screen = core.NewScreen(size, size)
	return d
}

// Run draws the grid, reads a line, applies it and steps the game, until
// the context is cancelled, the player enters "q", or input ends.
// End of input is returned as ErrInputClosed.
func (d *Driver) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := d.Draw(); err != nil {
			return err
		}

		if !d.in.Scan() {
			if err := d.in.Err(); err != nil {
				return fmt.Errorf("%w: %w", ErrInputClosed, err)
			}
			return ErrInputClosed
		}

		line := strings.TrimSpace(d.in.Text())
		if line == "q" {
			d.logger.Info("quit requested", "ticks", d.state.Ticks(), "len", d.state.Len())
			return nil
		}
		d.Apply(line)
	}
}

// Apply handles one line of input: an optional heading token followed by a
// single movement.
func (d *Driver) Apply(line string) game.StepResult {
	if h, ok := game.ParseHeading(line); ok {
		d.state.ChangeHeading(h)
	} else if line != "" {
		d.logger.Debug("unrecognized input", "token", line)
	}

	// A full threshold per line keeps time-gated games moving once per line.
	res := d.state.Step(d.state.Options().TickThreshold)
	switch {
	case res.Collided:
		d.logger.Info("self-collision", "capacity", d.state.Capacity(), "head", d.state.Head())
	case res.Ate:
		d.logger.Debug("target reached", "capacity", d.state.Capacity(), "target", d.state.Target())
	}
	return res
}

// Draw writes the current frame and the prompt.
func (d *Driver) Draw() error {
	d.screen.Clear()
	d.state.Render(d.screen, 0, 0, d.glyphs)

	var sb strings.Builder
	if d.clear {
		sb.WriteString(clearScreen)
	}
	sb.WriteString(d.screen.String())
	sb.WriteString("\n")
	sb.WriteString(Prompt)
	sb.WriteString("\n")

	if _, err := io.WriteString(d.out, sb.String()); err != nil {
		return fmt.Errorf("console: write frame: %w", err)
	}
	return nil
}
