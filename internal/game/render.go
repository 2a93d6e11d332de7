package game

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Glyphs chooses the rune and color drawn for each kind of grid cell.
type Glyphs struct {
	Head        rune
	Trail       rune
	Target      rune
	Empty       rune
	TrailColor  core.Color
	HeadColor   core.Color
	TargetColor core.Color
}

// DefaultGlyphs matches the classic console look: '*' for the trail, '#'
// for the target and blanks elsewhere.
func DefaultGlyphs() Glyphs {
	return Glyphs{
		Head:        '*',
		Trail:       '*',
		Target:      '#',
		Empty:       ' ',
		TrailColor:  core.ColorGreen,
		HeadColor:   core.ColorBrightGreen,
		TargetColor: core.ColorRed,
	}
}

// Render draws the grid into dst with its top-left cell at (originX,
// originY), one screen cell per grid cell, row by row. Cells that fall
// outside dst are clipped.
func (s *State) Render(dst *core.Screen, originX, originY int, g Glyphs) {
	head := s.Head()
	size := s.opts.GridSize

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := Cell{X: x, Y: y}
			switch {
			case c == head:
				dst.SetColored(originX+x, originY+y, g.Head, g.HeadColor)
			case s.Occupies(c):
				dst.SetColored(originX+x, originY+y, g.Trail, g.TrailColor)
			case s.IsTarget(c):
				dst.SetColored(originX+x, originY+y, g.Target, g.TargetColor)
			default:
				dst.Set(originX+x, originY+y, g.Empty)
			}
		}
	}
}
