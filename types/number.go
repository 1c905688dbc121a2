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

// Package types holds the data model shared by the lexer, parser, word
// tables and machine state: Number, Word, Line and the parameter
// assignment records. It mirrors the shape of the original rs274_parser's
// types module, one level removed from any particular dialect.
package types

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number is either an exact integer or a floating-point number. The tag is
// preserved across integer-closed operations (+, -, *, **, and, or, xor);
// division always yields a float, and so do the real-valued unary
// functions (trig, exp, ln, sqrt). fix, fup and round yield integers.
type Number struct {
	isInt bool
	i     int64
	f     float64
}

// Int returns an integer-tagged Number.
func Int(v int64) Number {
	return Number{isInt: true, i: v}
}

// Float returns a float-tagged Number.
func Float(v float64) Number {
	return Number{f: v}
}

// IsInt reports whether n carries the integer tag.
func (n Number) IsInt() bool {
	return n.isInt
}

// Int returns n's value as an int64, truncating toward zero if n is a float.
func (n Number) Int() int64 {
	if n.isInt {
		return n.i
	}
	return int64(n.f)
}

// Float returns n's value as a float64.
func (n Number) Float() float64 {
	if n.isInt {
		return float64(n.i)
	}
	return n.f
}

// Truthy reports whether n is considered true by and/or/xor: any nonzero
// value, including fractional floats like 0.001.
func (n Number) Truthy() bool {
	return n.Float() != 0
}

// IsZero reports whether n is exactly zero.
func (n Number) IsZero() bool {
	return n.Float() == 0
}

// String renders n the way it must appear when looking up a word table key
// or serializing a Line: integers without a trailing ".0", floats in their
// minimal decimal form.
func (n Number) String() string {
	if n.isInt {
		return strconv.FormatInt(n.i, 10)
	}
	s := strconv.FormatFloat(n.f, 'f', -1, 64)
	return s
}

// Add implements the integer-preserving "+" operator.
func (a Number) Add(b Number) Number {
	if a.isInt && b.isInt {
		return Int(a.i + b.i)
	}
	return Float(a.Float() + b.Float())
}

// Sub implements the integer-preserving "-" operator.
func (a Number) Sub(b Number) Number {
	if a.isInt && b.isInt {
		return Int(a.i - b.i)
	}
	return Float(a.Float() - b.Float())
}

// Mul implements the integer-preserving "*" operator.
func (a Number) Mul(b Number) Number {
	if a.isInt && b.isInt {
		return Int(a.i * b.i)
	}
	return Float(a.Float() * b.Float())
}

// Div implements "/": always a float quotient. The caller must check for a
// zero divisor before calling, since that case is an ArithmeticError, not a
// Go panic or an infinity.
func (a Number) Div(b Number) Number {
	return Float(a.Float() / b.Float())
}

// Pow implements "**": integer base with a non-negative integer exponent
// yields an integer (0**0 is pinned to 1), anything else yields a float via
// the standard math library.
func (a Number) Pow(b Number) Number {
	if a.isInt && b.isInt && b.i >= 0 {
		return Int(intPow(a.i, b.i))
	}
	return Float(math.Pow(a.Float(), b.Float()))
}

func intPow(base, exp int64) int64 {
	result := int64(1)
	for i := int64(0); i < exp; i++ {
		result *= base
	}
	return result
}

func boolNumber(v bool) Number {
	if v {
		return Int(1)
	}
	return Int(0)
}

// And implements truthiness-based "and".
func (a Number) And(b Number) Number { return boolNumber(a.Truthy() && b.Truthy()) }

// Or implements truthiness-based "or".
func (a Number) Or(b Number) Number { return boolNumber(a.Truthy() || b.Truthy()) }

// Xor implements truthiness-based "xor".
func (a Number) Xor(b Number) Number { return boolNumber(a.Truthy() != b.Truthy()) }

// Neg negates n, preserving its integer/float tag.
func (a Number) Neg() Number {
	if a.isInt {
		return Int(-a.i)
	}
	return Float(-a.f)
}

// Equal reports whether a and b have the same tag and value. Used by tests
// that want exact (non-approximate) comparisons.
func (a Number) Equal(b Number) bool {
	if a.isInt != b.isInt {
		return false
	}
	if a.isInt {
		return a.i == b.i
	}
	return a.f == b.f
}

// GoString supports %#v for table-driven test failure output.
func (n Number) GoString() string {
	if n.isInt {
		return fmt.Sprintf("types.Int(%d)", n.i)
	}
	return fmt.Sprintf("types.Float(%s)", strings.TrimRight(strconv.FormatFloat(n.f, 'f', -1, 64), "."))
}
