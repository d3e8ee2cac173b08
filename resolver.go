package bed

import (
	"math"
)

// Resolver supplies the posterior genotype probabilities behind an uncertain
// code (any code above HomozygousB). The three values are trusted to be
// non-negative and to sum to one.
type Resolver interface {
	Posterior(code uint8) (pHomA, pHet, pHomB float64)
}

// ResolverFunc adapts an ordinary function to a Resolver.
type ResolverFunc func(code uint8) (pHomA, pHet, pHomB float64)

func (f ResolverFunc) Posterior(code uint8) (pHomA, pHet, pHomB float64) {
	return f(code)
}

// GridResolution is the number of steps along each edge of the posterior
// grid. Posteriors are stored as multiples of 1/GridResolution.
const GridResolution = 21

// GridCodes is the number of points on the posterior grid, i.e. the number
// of nonzero codes that carry a posterior: 253.
var GridCodes = Choose(GridResolution+2, 2)

type gridPoint struct {
	het, homB int
}

// GridResolver maps codes 1..253 onto the points of a regular grid over the
// genotype simplex. The three corners are the canonical codes 1, 2 and 3;
// codes 4..253 enumerate the remaining points, heterozygous weight first.
// Codes 0, 254 and 255 have no posterior and resolve to all zeros.
type GridResolver struct {
	points [256]gridPoint
	valid  [256]bool
	codes  [GridResolution + 1][GridResolution + 1]uint8
}

// DefaultResolver is the grid resolver used when a caller passes no
// Resolver.
var DefaultResolver = NewGridResolver()

func NewGridResolver() *GridResolver {
	g := &GridResolver{}

	g.assign(uint8(HomozygousA), gridPoint{het: 0, homB: 0})
	g.assign(uint8(Heterozygous), gridPoint{het: GridResolution, homB: 0})
	g.assign(uint8(HomozygousB), gridPoint{het: 0, homB: GridResolution})

	code := int(HomozygousB) + 1
	for het := 0; het <= GridResolution; het++ {
		for homB := 0; homB <= GridResolution-het; homB++ {
			p := gridPoint{het: het, homB: homB}
			if g.isCorner(p) {
				continue
			}
			g.assign(uint8(code), p)
			code++
		}
	}

	return g
}

func (g *GridResolver) assign(code uint8, p gridPoint) {
	g.points[code] = p
	g.valid[code] = true
	g.codes[p.het][p.homB] = code
}

func (g *GridResolver) isCorner(p gridPoint) bool {
	return (p.het == 0 && p.homB == 0) ||
		(p.het == GridResolution && p.homB == 0) ||
		(p.het == 0 && p.homB == GridResolution)
}

func (g *GridResolver) Posterior(code uint8) (pHomA, pHet, pHomB float64) {
	if !g.valid[code] {
		return 0, 0, 0
	}
	p := g.points[code]
	pHet = float64(p.het) / GridResolution
	pHomB = float64(p.homB) / GridResolution
	pHomA = float64(GridResolution-p.het-p.homB) / GridResolution
	return pHomA, pHet, pHomB
}

// Code returns the grid code nearest to the given posterior. The
// probabilities are normalized first; an all-zero posterior is Missing.
func (g *GridResolver) Code(pHomA, pHet, pHomB float64) uint8 {
	total := pHomA + pHet + pHomB
	if total <= 0 {
		return uint8(Missing)
	}

	het := int(math.Round(GridResolution * pHet / total))
	homB := int(math.Round(GridResolution * pHomB / total))
	for het+homB > GridResolution {
		if het > homB {
			het--
		} else {
			homB--
		}
	}

	return g.codes[het][homB]
}
