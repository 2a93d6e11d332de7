package game

import (
	"github.com/vovakirdan/tui-snake/internal/config"
)

// Engine defaults. The random placement range [1, DefaultGridSize) excludes
// coordinate 0 on both axes.
const (
	DefaultGridSize         = 20
	DefaultBaselineCapacity = 5
	DefaultTickThreshold    = 0.1 // seconds
)

// StepMode selects how Step turns calls into movements.
type StepMode int

const (
	// TimeGated moves once every TickThreshold seconds of accumulated
	// elapsed time, however often Step is called. Used by render loops.
	TimeGated StepMode = iota
	// TickPerCall moves exactly once per Step call. Used by drivers that
	// already pace their calls, e.g. one call per line of console input.
	TickPerCall
)

func (m StepMode) String() string {
	switch m {
	case TimeGated:
		return config.ModeTimeGated
	case TickPerCall:
		return config.ModeTickPerCall
	default:
		return "unknown"
	}
}

// CollisionPolicy selects what happens to the colliding head on a
// self-collision. Either way capacity drops back to the baseline.
type CollisionPolicy int

const (
	// CollisionShrink does not push the colliding head; the trail is only
	// truncated to the baseline capacity.
	CollisionShrink CollisionPolicy = iota
	// CollisionGrowThenShrink pushes the colliding head first, then
	// truncates. The head cell briefly appears twice in the trail.
	CollisionGrowThenShrink
)

func (p CollisionPolicy) String() string {
	switch p {
	case CollisionShrink:
		return config.CollisionShrink
	case CollisionGrowThenShrink:
		return config.CollisionGrowThenShrink
	default:
		return "unknown"
	}
}

// Options configures a State. The zero value is usable: every invalid
// field falls back to its default during construction.
type Options struct {
	GridSize         int
	BaselineCapacity int
	TickThreshold    float64 // seconds
	Mode             StepMode
	Collision        CollisionPolicy
}

// DefaultOptions returns a 20x20 time-gated engine with a baseline capacity
// of 5 and a 0.1s tick.
func DefaultOptions() Options {
	return Options{
		GridSize:         DefaultGridSize,
		BaselineCapacity: DefaultBaselineCapacity,
		TickThreshold:    DefaultTickThreshold,
		Mode:             TimeGated,
		Collision:        CollisionShrink,
	}
}

// normalized replaces out-of-range fields with defaults. A grid needs at
// least two cells per axis for random placement in [1, size).
func (o Options) normalized() Options {
	if o.GridSize < 2 {
		o.GridSize = DefaultGridSize
	}
	if o.BaselineCapacity < 1 {
		o.BaselineCapacity = DefaultBaselineCapacity
	}
	if o.TickThreshold <= 0 {
		o.TickThreshold = DefaultTickThreshold
	}
	if o.Mode != TimeGated && o.Mode != TickPerCall {
		o.Mode = TimeGated
	}
	if o.Collision != CollisionShrink && o.Collision != CollisionGrowThenShrink {
		o.Collision = CollisionShrink
	}
	return o
}

// OptionsFromConfig converts a loaded configuration into engine options.
// Unknown mode or collision strings fall back to the defaults; use
// config.SnakeConfig.Validate to reject them up front.
func OptionsFromConfig(cfg config.SnakeConfig) Options {
	opts := Options{
		GridSize:         cfg.Grid.Size,
		BaselineCapacity: cfg.Trail.Baseline,
		TickThreshold:    cfg.Tick.Threshold,
	}

	switch cfg.Tick.Mode {
	case config.ModeTickPerCall:
		opts.Mode = TickPerCall
	default:
		opts.Mode = TimeGated
	}

	switch cfg.Collision {
	case config.CollisionGrowThenShrink:
		opts.Collision = CollisionGrowThenShrink
	default:
		opts.Collision = CollisionShrink
	}

	return opts.normalized()
}
