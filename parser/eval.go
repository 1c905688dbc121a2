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
	"math"

	"github.com/kirberich/rs274-parser/ast"
	"github.com/kirberich/rs274-parser/reporter"
	"github.com/kirberich/rs274-parser/types"
)

// unaryOperators lists the case-insensitive unary function names, in an
// order where no name is a prefix of an earlier one, so a simple
// first-match scan is unambiguous.
var unaryOperators = []string{
	"abs", "acos", "asin", "atan", "cos", "exp",
	"fix", "fup", "ln", "round", "sin", "sqrt", "tan",
}

func toRad(deg float64) float64 { return deg * math.Pi / 180 }
func toDeg(rad float64) float64 { return rad * 180 / math.Pi }

// roundHalfAwayFromZero implements round[], which rounds 5.5 to 6 and -5.5
// to -6, unlike Go's banker's rounding in some other contexts.
func roundHalfAwayFromZero(v float64) int64 {
	if v >= 0 {
		return int64(math.Floor(v + 0.5))
	}
	return int64(math.Ceil(v - 0.5))
}

// evalUnary applies unary operator op to v, v having already been
// evaluated from the operator's bracketed expression argument.
func evalUnary(pos ast.Position, op string, v types.Number) (types.Number, error) {
	f := v.Float()
	switch op {
	case "abs":
		if v.IsInt() {
			if v.Int() < 0 {
				return types.Int(-v.Int()), nil
			}
			return v, nil
		}
		return types.Float(math.Abs(f)), nil
	case "acos":
		if f < -1 || f > 1 {
			return types.Number{}, reporter.Error(pos, &reporter.ArithmeticError{Op: "acos", Detail: "argument outside [-1, 1]"})
		}
		return types.Float(toDeg(math.Acos(f))), nil
	case "asin":
		if f < -1 || f > 1 {
			return types.Number{}, reporter.Error(pos, &reporter.ArithmeticError{Op: "asin", Detail: "argument outside [-1, 1]"})
		}
		return types.Float(toDeg(math.Asin(f))), nil
	case "atan":
		return types.Float(toDeg(math.Atan(f))), nil
	case "cos":
		return types.Float(math.Cos(toRad(f))), nil
	case "sin":
		return types.Float(math.Sin(toRad(f))), nil
	case "tan":
		return types.Float(math.Tan(toRad(f))), nil
	case "exp":
		return types.Float(math.Exp(f)), nil
	case "ln":
		if f <= 0 {
			return types.Number{}, reporter.Error(pos, &reporter.ArithmeticError{Op: "ln", Detail: "argument must be positive"})
		}
		return types.Float(math.Log(f)), nil
	case "sqrt":
		if f < 0 {
			return types.Number{}, reporter.Error(pos, &reporter.ArithmeticError{Op: "sqrt", Detail: "argument must be non-negative"})
		}
		return types.Float(math.Sqrt(f)), nil
	case "fix":
		return types.Int(int64(math.Floor(f))), nil
	case "fup":
		return types.Int(int64(math.Ceil(f))), nil
	case "round":
		return types.Int(roundHalfAwayFromZero(f)), nil
	}
	panic("parser: unreachable unary operator " + op)
}

// evalDiv implements "/": always a float quotient, failing with
// ArithmeticError rather than producing an infinity on a zero divisor.
func evalDiv(pos ast.Position, a, b types.Number) (types.Number, error) {
	if b.IsZero() {
		return types.Number{}, reporter.Error(pos, &reporter.ArithmeticError{Op: "/", Detail: "division by zero"})
	}
	return a.Div(b), nil
}
