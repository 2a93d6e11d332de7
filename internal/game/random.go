package game

import (
	"math/rand"
	"time"
)

// Random is the source used for initial placement and target relocation.
// *rand.Rand satisfies it.
type Random interface {
	// Intn returns a value in [0, n). n is always > 0.
	Intn(n int) int
}

// NewRandom returns the default random source. A zero seed picks one from
// the current time.
func NewRandom(seed int64) Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// randomCell draws a cell uniformly from [1, gridSize) on both axes.
func randomCell(rng Random, gridSize int) Cell {
	return Cell{
		X: 1 + rng.Intn(gridSize-1),
		Y: 1 + rng.Intn(gridSize-1),
	}
}
