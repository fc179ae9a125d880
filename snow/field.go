package snow

import (
	"math/rand/v2"

	"github.com/lixenwraith/snowtree/constants"
)

// Count returns the population size for a cols x rows terminal
func Count(cols, rows int) int {
	return max(constants.SnowMinCount, int(float64(cols*rows)*constants.SnowDensity))
}

// NewField creates a full population, each flake with its own generator derived from rng
func NewField(cols, rows int, rng *rand.Rand) []*Particle {
	n := Count(cols, rows)
	field := make([]*Particle, n)
	for i := range field {
		field[i] = New(cols, rows, rand.New(rand.NewPCG(rng.Uint64(), rng.Uint64())))
	}
	return field
}
