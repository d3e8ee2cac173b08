package bed

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridCodes(t *testing.T) {
	assert.Equal(t, 253, GridCodes)
}

func TestGridResolverCorners(t *testing.T) {
	g := NewGridResolver()

	cases := map[Genotype][3]float64{
		HomozygousA:  {1, 0, 0},
		Heterozygous: {0, 1, 0},
		HomozygousB:  {0, 0, 1},
	}
	for code, want := range cases {
		a, h, b := g.Posterior(uint8(code))
		assert.Equal(t, want, [3]float64{a, h, b}, "%s", code)
	}
}

func TestGridResolverCoversAllCodes(t *testing.T) {
	g := NewGridResolver()

	for code := 1; code <= GridCodes; code++ {
		a, h, b := g.Posterior(uint8(code))
		assert.InDelta(t, 1.0, a+h+b, 1e-9, "code %d", code)
		assert.True(t, a >= 0 && h >= 0 && b >= 0, "code %d", code)

		assert.Equal(t, uint8(code), g.Code(a, h, b), "code %d", code)
	}

	for _, code := range []uint8{0, 254, 255} {
		a, h, b := g.Posterior(code)
		assert.Equal(t, [3]float64{0, 0, 0}, [3]float64{a, h, b}, "code %d", code)
	}
}

func TestGridResolverCodeRounds(t *testing.T) {
	g := NewGridResolver()

	code := g.Code(0.5, 0, 0.5)
	assert.True(t, code > uint8(HomozygousB))
	_, h, b := g.Posterior(code)
	assert.Zero(t, h)
	assert.InDelta(t, 0.5, b, 1.0/GridResolution)

	// Unnormalized input is scaled first.
	assert.Equal(t, uint8(Heterozygous), g.Code(0, 5, 0))
	assert.Equal(t, uint8(Missing), g.Code(0, 0, 0))

	// Rounding both up would overflow the grid.
	code = g.Code(0, 0.5, 0.5)
	a, h, b := g.Posterior(code)
	assert.InDelta(t, 1.0, a+h+b, 1e-9)
	assert.False(t, math.IsNaN(h))
}

func TestResolverFunc(t *testing.T) {
	var r Resolver = ResolverFunc(func(code uint8) (float64, float64, float64) {
		return 0.25, 0.5, 0.25
	})
	a, h, b := r.Posterior(9)
	assert.Equal(t, [3]float64{0.25, 0.5, 0.25}, [3]float64{a, h, b})
}
