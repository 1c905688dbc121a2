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

// Package reporter provides the error-with-position wrapper used throughout
// the lexer, parser and machine state, plus the concrete error kinds they
// raise.
package reporter

import (
	"fmt"

	"github.com/kirberich/rs274-parser/ast"
)

// ErrorWithPos is an error about a line of G-code that adds information
// about where in the line caused the error.
type ErrorWithPos interface {
	error
	// GetPosition returns the source position that caused the underlying error.
	GetPosition() ast.Position
	// Unwrap returns the underlying error.
	Unwrap() error
}

// Error creates a new ErrorWithPos from the given error and source position.
func Error(pos ast.Position, err error) ErrorWithPos {
	return errorWithPos{pos: pos, underlying: err}
}

// Errorf creates a new ErrorWithPos whose underlying error is created using
// the given message format and arguments (via fmt.Errorf).
func Errorf(pos ast.Position, format string, args ...interface{}) ErrorWithPos {
	return errorWithPos{pos: pos, underlying: fmt.Errorf(format, args...)}
}

type errorWithPos struct {
	underlying error
	pos        ast.Position
}

func (e errorWithPos) Error() string {
	return fmt.Sprintf("%s: %v", e.pos, e.underlying)
}

func (e errorWithPos) GetPosition() ast.Position {
	return e.pos
}

func (e errorWithPos) Unwrap() error {
	return e.underlying
}

var _ ErrorWithPos = errorWithPos{}

// Custom error kinds. The parser wraps each in an errorWithPos carrying the
// source position: ParseError, ExpectedIntegerError and ArithmeticError are
// wrapped where the parser detects them, while UndefinedParameterError and
// UnknownWordError come back unwrapped from the machine state and word
// tables and are wrapped by the parser code that called them.

// ParseError reports that a line (or a sub-rule, when one is parsed
// directly for testing) did not match the grammar.
type ParseError struct {
	// Fragment is the remaining, unconsumed input at the point of failure.
	Fragment string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse %q", e.Fragment)
}

// UndefinedParameterError reports a lookup of a numeric or named parameter
// that has no committed value. Exactly one of Index or Name is set.
type UndefinedParameterError struct {
	Index *int
	Name  string
}

func (e *UndefinedParameterError) Error() string {
	if e.Index != nil {
		return fmt.Sprintf("parameter #%d is undefined", *e.Index)
	}
	return fmt.Sprintf("named parameter #<%s> is undefined", e.Name)
}

// ExpectedIntegerError reports that a numeric parameter index evaluated to
// a number with a non-zero fractional part.
type ExpectedIntegerError struct {
	Got float64
}

func (e *ExpectedIntegerError) Error() string {
	return fmt.Sprintf("expected an integer parameter index, got %v", e.Got)
}

// UnknownWordError reports a letter+number pair with no entry in the
// dialect's word tables.
type UnknownWordError struct {
	Letter byte
	Key    string
}

func (e *UnknownWordError) Error() string {
	return fmt.Sprintf("unknown word %q", e.Key)
}

// ArithmeticError reports an operation with no real-valued result: division
// by zero, ln of a non-positive number, sqrt of a negative number, or
// asin/acos outside [-1, 1].
type ArithmeticError struct {
	Op     string
	Detail string
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("arithmetic error in %s: %s", e.Op, e.Detail)
}
