package game

// Snapshot captures the observable engine state, for logging, HUDs and
// determinism checks.
type Snapshot struct {
	Ticks    uint64
	GridSize int
	Len      int
	Capacity int
	HeadX    int
	HeadY    int
	Heading  Heading
	TargetX  int
	TargetY  int
	Elapsed  float64
}

// Snapshot returns the current game snapshot.
func (s *State) Snapshot() Snapshot {
	head := s.Head()
	return Snapshot{
		Ticks:    s.ticks,
		GridSize: s.opts.GridSize,
		Len:      len(s.trail),
		Capacity: s.capacity,
		HeadX:    head.X,
		HeadY:    head.Y,
		Heading:  s.heading,
		TargetX:  s.target.X,
		TargetY:  s.target.Y,
		Elapsed:  s.elapsed,
	}
}
