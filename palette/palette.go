// Package palette provides the color sources used when a square is painted.
package palette

import (
	"image/color"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
)

// Source produces the color for a square centered at p.
type Source interface {
	Color(p cp.Vector) color.RGBA
}

// Random samples every channel uniformly from [0, 255). Alpha is always opaque.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a random source drawing from rng. A nil rng gets a fresh
// PCG generator seeded from the runtime.
func NewRandom(rng *rand.Rand) *Random {
	if rng == nil {
		rng = NewRand()
	}
	return &Random{rng: rng}
}

// NewRand returns an unseeded-looking PCG generator for callers that do not
// care about reproducibility.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func (r *Random) Color(_ cp.Vector) color.RGBA {
	return color.RGBA{
		R: uint8(r.rng.IntN(255)),
		G: uint8(r.rng.IntN(255)),
		B: uint8(r.rng.IntN(255)),
		A: 0xff,
	}
}
