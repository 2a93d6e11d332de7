package game

import "slices"

// StepResult reports what a Step call did.
type StepResult struct {
	Moved    bool // a movement happened this call
	Ate      bool // the new head landed on the target
	Collided bool // the new head was already part of the trail
}

// State is the whole game: grid, trail, target, heading and the time
// accumulated since the last movement. It is owned by a single driver loop
// and is not safe for concurrent use.
type State struct {
	opts Options
	rng  Random

	trail    []Cell // Head at index 0
	capacity int
	heading  Heading
	target   Cell
	elapsed  float64 // seconds since the last movement
	ticks    uint64  // movements performed
}

// New creates a game with the head and the target placed at random in
// [1, grid size) on both axes. The heading starts Right.
func New(opts Options, rng Random) *State {
	opts = opts.normalized()
	if rng == nil {
		rng = NewRandom(0)
	}

	head := randomCell(rng, opts.GridSize)
	target := randomCell(rng, opts.GridSize)
	return newState(opts, rng, []Cell{head}, target)
}

// NewAt creates a game with a fixed trail (head first) and target. Cells
// outside the grid are wrapped onto it. An empty trail starts at the
// grid centre.
func NewAt(opts Options, rng Random, trail []Cell, target Cell) *State {
	opts = opts.normalized()
	if rng == nil {
		rng = NewRandom(0)
	}

	cells := make([]Cell, 0, max(len(trail), 1))
	for _, c := range trail {
		cells = append(cells, Cell{X: wrap(c.X, opts.GridSize), Y: wrap(c.Y, opts.GridSize)})
	}
	if len(cells) == 0 {
		cells = append(cells, Cell{X: opts.GridSize / 2, Y: opts.GridSize / 2})
	}
	target = Cell{X: wrap(target.X, opts.GridSize), Y: wrap(target.Y, opts.GridSize)}

	return newState(opts, rng, cells, target)
}

func newState(opts Options, rng Random, trail []Cell, target Cell) *State {
	s := &State{
		opts:     opts,
		rng:      rng,
		trail:    trail,
		capacity: max(opts.BaselineCapacity, len(trail)),
		heading:  Right,
		target:   target,
	}
	return s
}

// ChangeHeading sets the heading for the next movement. A request for the
// exact opposite of the current heading is ignored, since it would turn the
// head straight into the body.
func (s *State) ChangeHeading(h Heading) {
	if h == s.heading.Opposite() {
		return
	}
	switch h {
	case Up, Down, Left, Right:
		s.heading = h
	}
}

// Step feeds elapsed seconds into the engine and performs at most one
// movement.
//
// In TimeGated mode the seconds accumulate and nothing else changes until
// the total reaches the tick threshold; the accumulator then resets to zero
// and one movement happens. In TickPerCall mode every call moves.
func (s *State) Step(elapsedSeconds float64) StepResult {
	if s.opts.Mode == TimeGated {
		s.elapsed += elapsedSeconds
		if s.elapsed < s.opts.TickThreshold {
			return StepResult{}
		}
		s.elapsed = 0
	}

	return s.advance()
}

// advance performs one discrete movement.
func (s *State) advance() StepResult {
	res := StepResult{Moved: true}
	s.ticks++

	next := s.Head().Move(s.heading, s.opts.GridSize)

	if next == s.target {
		res.Ate = true
		s.capacity++
		s.target = randomCell(s.rng, s.opts.GridSize)
	}

	if s.Occupies(next) {
		res.Collided = true
		s.capacity = s.opts.BaselineCapacity
		if s.opts.Collision == CollisionGrowThenShrink {
			s.push(next)
		}
	} else {
		s.push(next)
	}

	if len(s.trail) > s.capacity {
		s.trail = s.trail[:s.capacity]
	}

	return res
}

// push places c in front of the trail.
func (s *State) push(c Cell) {
	s.trail = append([]Cell{c}, s.trail...)
}

// Occupies reports whether c is part of the trail.
func (s *State) Occupies(c Cell) bool {
	return slices.Contains(s.trail, c)
}

// IsTarget reports whether c is the target cell.
func (s *State) IsTarget(c Cell) bool {
	return c == s.target
}

// Head returns the most recently occupied cell.
func (s *State) Head() Cell {
	return s.trail[0]
}

// Trail returns a copy of the trail, head first.
func (s *State) Trail() []Cell {
	return slices.Clone(s.trail)
}

// Len returns the number of cells in the trail.
func (s *State) Len() int {
	return len(s.trail)
}

// Target returns the target cell.
func (s *State) Target() Cell {
	return s.target
}

// Heading returns the heading of the next movement.
func (s *State) Heading() Heading {
	return s.heading
}

// Capacity returns the maximum trail length.
func (s *State) Capacity() int {
	return s.capacity
}

// GridSize returns the side length of the grid.
func (s *State) GridSize() int {
	return s.opts.GridSize
}

// Options returns the normalized options the game runs with.
func (s *State) Options() Options {
	return s.opts
}

// Ticks returns the number of movements performed so far.
func (s *State) Ticks() uint64 {
	return s.ticks
}
