// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/mlp/matrix"
)

func TestPublicMatrix(t *testing.T) {
	a, err := matrix.FromSlice(1, 2, []float64{1, 2})
	require.NoError(t, err)
	b, err := matrix.FromSlice(2, 1, []float64{3, 4})
	require.NoError(t, err)

	assert.Equal(t, []float64{11}, a.Multiply(b).Data())

	_, err = matrix.FromSlice(2, 2, []float64{1})
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestPublicMismatchPanics(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, matrix.ErrDimensionMismatch))
	}()
	matrix.New(2, 3).Multiply(matrix.New(4, 2))
}
