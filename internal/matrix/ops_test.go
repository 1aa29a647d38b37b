package matrix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomMatrix(seed uint64, rows, cols int) *Matrix {
	m := New(rows, cols)
	m.Randomize(NewRand(seed), -5, 5)
	return m
}

func TestAdd(t *testing.T) {
	a := mustFromSlice(t, 2, 2, 1, 2, 3, 4)
	b := mustFromSlice(t, 2, 2, 10, 20, 30, 40)

	sum := a.Add(b)
	assert.Equal(t, []float64{11, 22, 33, 44}, sum.Data())

	// Operands are untouched.
	assert.Equal(t, []float64{1, 2, 3, 4}, a.Data())
	assert.Equal(t, []float64{10, 20, 30, 40}, b.Data())
}

func TestAddCommutative(t *testing.T) {
	for seed := uint64(0); seed < 10; seed++ {
		a := randomMatrix(seed, 3, 4)
		b := randomMatrix(seed+100, 3, 4)
		assert.True(t, a.Add(b).Equal(b.Add(a)), "seed %d", seed)
	}
}

func TestSubtract(t *testing.T) {
	a := mustFromSlice(t, 1, 3, 5, 5, 5)
	b := mustFromSlice(t, 1, 3, 1, 2, 3)
	assert.Equal(t, []float64{4, 3, 2}, a.Subtract(b).Data())
}

func TestSubtractIsAddNegated(t *testing.T) {
	for seed := uint64(0); seed < 10; seed++ {
		a := randomMatrix(seed, 4, 2)
		b := randomMatrix(seed+7, 4, 2)
		assert.True(t, a.Subtract(b).Equal(a.Add(b.Scale(-1.0))), "seed %d", seed)
	}
}

func TestElementwiseShapeMismatch(t *testing.T) {
	a := New(2, 3)
	b := New(3, 2)

	assertMismatch(t, func() { a.Add(b) })
	assertMismatch(t, func() { a.Subtract(b) })
	assertMismatch(t, func() { a.Hadamard(b) })
}

func TestHadamard(t *testing.T) {
	a := mustFromSlice(t, 1, 3, 1, -2, 3)
	b := mustFromSlice(t, 1, 3, 4, 5, -6)
	assert.Equal(t, []float64{4, -10, -18}, a.Hadamard(b).Data())
}

func TestMultiply(t *testing.T) {
	a := mustFromSlice(t, 2, 3,
		1, 2, 3,
		4, 5, 6,
	)
	b := mustFromSlice(t, 3, 2,
		7, 8,
		9, 10,
		11, 12,
	)

	c := a.Multiply(b)
	require.Equal(t, 2, c.Rows())
	require.Equal(t, 2, c.Cols())
	assert.Equal(t, []float64{58, 64, 139, 154}, c.Data())
}

func TestMultiplyRowVector(t *testing.T) {
	v := mustFromSlice(t, 1, 2, 0.5, -0.5)
	w := mustFromSlice(t, 2, 3,
		1, 2, 3,
		4, 5, 6,
	)
	assert.Equal(t, []float64{-1.5, -1.5, -1.5}, v.Multiply(w).Data())
}

func TestMultiplyMismatch(t *testing.T) {
	a := New(2, 3)
	b := New(4, 2)
	assertMismatch(t, func() { a.Multiply(b) })
}

func TestMultiplyEmpty(t *testing.T) {
	tests := []struct {
		name       string
		a, b       *Matrix
		rows, cols int
	}{
		{"empty inner", New(2, 0), New(0, 3), 2, 3},
		{"empty rows", New(0, 2), New(2, 3), 0, 3},
		{"empty cols", New(2, 2), New(2, 0), 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.a.Multiply(tt.b)
			assert.Equal(t, tt.rows, c.Rows())
			assert.Equal(t, tt.cols, c.Cols())
			for _, v := range c.Data() {
				assert.Zero(t, v)
			}
		})
	}
}

func TestMultiplyAssociative(t *testing.T) {
	for seed := uint64(0); seed < 5; seed++ {
		a := randomMatrix(seed, 3, 4)
		b := randomMatrix(seed+10, 4, 5)
		c := randomMatrix(seed+20, 5, 2)

		left := a.Multiply(b).Multiply(c)
		right := a.Multiply(b.Multiply(c))
		assert.True(t, left.EqualApprox(right, 1e-9), "seed %d: %v vs %v", seed, left, right)
	}
}

func TestScale(t *testing.T) {
	a := mustFromSlice(t, 2, 2, 1, -2, 3, -4)
	assert.Equal(t, []float64{2, -4, 6, -8}, a.Scale(2).Data())
}

func TestScaleByZero(t *testing.T) {
	a := mustFromSlice(t, 2, 3, 1, math.Inf(1), math.NaN(), -4, 5, 6)

	z := a.Scale(0)
	assert.Equal(t, 2, z.Rows())
	assert.Equal(t, 3, z.Cols())
	for _, v := range z.Data() {
		assert.Zero(t, v)
	}
}

func TestTranspose(t *testing.T) {
	a := mustFromSlice(t, 2, 3,
		1, 2, 3,
		4, 5, 6,
	)
	at := a.Transpose()
	assert.Equal(t, 3, at.Rows())
	assert.Equal(t, 2, at.Cols())
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, at.Data())
	assert.True(t, at.Transpose().Equal(a))

	e := New(0, 2).Transpose()
	assert.Equal(t, 2, e.Rows())
	assert.Equal(t, 0, e.Cols())
}

func TestApply(t *testing.T) {
	a := mustFromSlice(t, 1, 3, -1, 0, 2)
	sq := a.Apply(func(v float64) float64 { return v * v })
	assert.Equal(t, []float64{1, 0, 4}, sq.Data())
	assert.Equal(t, []float64{-1, 0, 2}, a.Data())
}

func TestSumAndNormalize(t *testing.T) {
	a := mustFromSlice(t, 2, 2, 1, 1, 1, 1)
	assert.Equal(t, 4.0, a.Sum())

	n := a.Normalize()
	assert.InDeltaSlice(t, []float64{0.25, 0.25, 0.25, 0.25}, n.Data(), 1e-15)
	assert.InDelta(t, 1.0, n.Sum(), 1e-15)

	// Zero sum follows IEEE-754.
	z := mustFromSlice(t, 1, 2, 1, -1).Normalize()
	assert.True(t, math.IsInf(z.At(0, 0), 1))
	assert.True(t, math.IsInf(z.At(0, 1), -1))
}

func BenchmarkMultiply(b *testing.B) {
	x := randomMatrix(1, 64, 784)
	w := randomMatrix(2, 784, 16)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Multiply(w)
	}
}
