package systems

import (
	"math/rand/v2"
	"time"
)

var rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15))

// Rand returns the generator shared by spawners and patrol timing
func Rand() *rand.Rand {
	return rng
}

// SeedRandom makes spawns and patrol durations reproducible
func SeedRandom(seed uint64) {
	rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
