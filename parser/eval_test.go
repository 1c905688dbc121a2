// Copyright 2020-2023 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirberich/rs274-parser/ast"
	"github.com/kirberich/rs274-parser/reporter"
	"github.com/kirberich/rs274-parser/types"
)

var zeroPos = ast.Position{}

func TestEvalUnaryTrigInDegrees(t *testing.T) {
	t.Parallel()
	v, err := evalUnary(zeroPos, "sin", types.Int(90))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, v.Float(), 1e-9)

	v, err = evalUnary(zeroPos, "cos", types.Int(0))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, v.Float(), 1e-9)

	v, err = evalUnary(zeroPos, "atan", types.Int(1))
	require.NoError(t, err)
	assert.InDelta(t, 45.0, v.Float(), 1e-9)
}

func TestEvalUnaryRoundHalfAwayFromZero(t *testing.T) {
	t.Parallel()
	v, err := evalUnary(zeroPos, "round", types.Float(5.49))
	require.NoError(t, err)
	assert.Equal(t, int64(5), v.Int())

	v, err = evalUnary(zeroPos, "round", types.Float(5.5))
	require.NoError(t, err)
	assert.Equal(t, int64(6), v.Int())

	v, err = evalUnary(zeroPos, "round", types.Float(-5.5))
	require.NoError(t, err)
	assert.Equal(t, int64(-6), v.Int())
}

func TestEvalUnaryFixFloorsTowardNegativeInfinity(t *testing.T) {
	t.Parallel()
	v, err := evalUnary(zeroPos, "fix", types.Float(-0.2))
	require.NoError(t, err)
	assert.Equal(t, int64(-1), v.Int())
	assert.True(t, v.IsInt())
}

func TestEvalUnaryFupCeilsTowardPositiveInfinity(t *testing.T) {
	t.Parallel()
	v, err := evalUnary(zeroPos, "fup", types.Float(-0.9))
	require.NoError(t, err)
	assert.Equal(t, int64(0), v.Int())
}

func TestEvalUnaryLnOfOneIsZero(t *testing.T) {
	t.Parallel()
	v, err := evalUnary(zeroPos, "ln", types.Int(1))
	require.NoError(t, err)
	assert.InDelta(t, 0.0, v.Float(), 1e-9)
}

func TestEvalUnaryArithmeticErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		op   string
		arg  types.Number
	}{
		{"ln of zero", "ln", types.Int(0)},
		{"ln of negative", "ln", types.Int(-1)},
		{"sqrt of negative", "sqrt", types.Int(-4)},
		{"asin out of range", "asin", types.Float(1.5)},
		{"acos out of range", "acos", types.Float(-1.5)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := evalUnary(zeroPos, tc.op, tc.arg)
			var arith *reporter.ArithmeticError
			require.ErrorAs(t, err, &arith)
		})
	}
}

func TestEvalDivByZeroIsArithmeticError(t *testing.T) {
	t.Parallel()
	_, err := evalDiv(zeroPos, types.Int(1), types.Int(0))
	var arith *reporter.ArithmeticError
	require.ErrorAs(t, err, &arith)
}

func TestEvalDivAlwaysFloat(t *testing.T) {
	t.Parallel()
	v, err := evalDiv(zeroPos, types.Int(4), types.Int(2))
	require.NoError(t, err)
	assert.False(t, v.IsInt())
	assert.Equal(t, 2.0, v.Float())
}
