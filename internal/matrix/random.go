package matrix

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// granularity is the number of grid steps per unit used by Randomize.
const granularity = 100

// gridEpsilon absorbs the rounding error of v*granularity for values that
// sit on the grid, such as 0.29*100 = 28.999999999999996.
const gridEpsilon = 1e-9

// maxGridValue bounds the magnitudes that fit the int64 grid comfortably.
const maxGridValue = 1e15

// NewRand returns a PCG-backed generator seeded deterministically from seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Randomize overwrites every element with an independent value drawn
// uniformly from the closed interval [lo, hi] on a 0.01 grid.
//
// Endpoints on the grid are reachable. When lo == hi every element is set
// to lo exactly. If no grid point falls inside [lo, hi], or the bounds are
// too large for the grid, values are drawn from the continuous interval
// instead.
//
// Panics if lo > hi or either bound is NaN or infinite.
func (m *Matrix) Randomize(rng *rand.Rand, lo, hi float64) {
	if !finite(lo) || !finite(hi) || lo > hi {
		panic(fmt.Sprintf("matrix: invalid randomize range [%v,%v]", lo, hi))
	}
	if lo == hi {
		for i := range m.data {
			m.data[i] = lo
		}
		return
	}

	first, last := int64(1), int64(0)
	if math.Abs(lo) <= maxGridValue && math.Abs(hi) <= maxGridValue {
		first, last = gridIndex(lo, true), gridIndex(hi, false)
	}
	if first > last {
		for i := range m.data {
			m.data[i] = min(lo+rng.Float64()*(hi-lo), hi)
		}
		return
	}

	span := last - first + 1
	for i := range m.data {
		m.data[i] = float64(first+rng.Int64N(span)) / granularity
	}
}

// gridIndex maps v onto the integer grid, rounding toward the inside of the
// interval when v is not a grid point.
func gridIndex(v float64, up bool) int64 {
	scaled := v * granularity
	if r := math.Round(scaled); math.Abs(scaled-r) < gridEpsilon {
		return int64(r)
	}
	if up {
		return int64(math.Ceil(scaled))
	}
	return int64(math.Floor(scaled))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
