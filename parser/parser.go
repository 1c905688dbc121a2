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

// Package parser is a hand-written recursive-descent implementation of the
// G-code expression grammar: numeric literals, the three binary precedence
// levels, unary functions, numeric and named parameter references, word
// construction and the per-line grammar that ties them together.
package parser

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"unicode"

	"github.com/kirberich/rs274-parser/ast"
	"github.com/kirberich/rs274-parser/dialect"
	"github.com/kirberich/rs274-parser/machine"
	"github.com/kirberich/rs274-parser/reporter"
	"github.com/kirberich/rs274-parser/types"
)

// ctx bundles the state every grammar production needs: the cursor, the
// dialect (for word tables and feature flags) and the machine state (for
// parameter lookups and assignments).
type ctx struct {
	s     *scanner
	d     dialect.Dialect
	state *machine.State
}

func parseErr(s *scanner) error {
	return reporter.Error(s.position(), &reporter.ParseError{Fragment: s.rest()})
}

// parseNumber implements the "number" production: an optional leading
// '-', then an integer or float literal whose digits may have embedded
// spaces and tabs that are stripped before conversion.
func parseNumber(s *scanner) (types.Number, error) {
	start := s.mark()
	neg := s.consumeRune('-')
	intDigits := s.scanDigitsAndBlanks()

	if r, ok := s.peek(); ok && r == '.' {
		dotMark := s.mark()
		s.pos++
		fracDigits := s.scanDigitsAndBlanks()
		if fracDigits != "" {
			text := intDigits
			if text == "" {
				text = "0"
			}
			text += "." + fracDigits
			val, err := strconv.ParseFloat(text, 64)
			if err != nil {
				s.reset(start)
				return types.Number{}, parseErr(s)
			}
			if neg {
				val = -val
			}
			return types.Float(val), nil
		}
		s.reset(dotMark)
	}

	if intDigits == "" {
		s.reset(start)
		return types.Number{}, parseErr(s)
	}
	val, err := strconv.ParseInt(intDigits, 10, 64)
	if err != nil {
		s.reset(start)
		return types.Number{}, parseErr(s)
	}
	if neg {
		val = -val
	}
	return types.Int(val), nil
}

// scanDigitsAndBlanks consumes a maximal run of digits, spaces and tabs,
// returning only the digit characters. It stops at the first rune outside
// that set, so it never reaches past the current token's boundary.
func (s *scanner) scanDigitsAndBlanks() string {
	var digits []rune
	for {
		r, ok := s.peek()
		if !ok {
			break
		}
		if isDigit(r) {
			digits = append(digits, r)
			s.pos++
		} else if r == ' ' || r == '\t' {
			s.pos++
		} else {
			break
		}
	}
	return string(digits)
}

// parseIntegerLiteral implements the "integer" production used by line
// numbers and numeric parameter indices: no decimal point permitted.
func parseIntegerLiteral(s *scanner) (int64, error) {
	start := s.mark()
	neg := s.consumeRune('-')
	digits := s.scanDigitsAndBlanks()
	if digits == "" {
		s.reset(start)
		return 0, parseErr(s)
	}
	val, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		s.reset(start)
		return 0, parseErr(s)
	}
	if neg {
		val = -val
	}
	return val, nil
}

// requireInteger enforces that a parameter index evaluates to a
// whole-number value, per ExpectedIntegerError.
func requireInteger(pos ast.Position, n types.Number) (int, error) {
	if n.IsInt() {
		return int(n.Int()), nil
	}
	f := n.Float()
	if f != math.Trunc(f) {
		return 0, reporter.Error(pos, &reporter.ExpectedIntegerError{Got: f})
	}
	return int(f), nil
}

// parseRealValue implements the "real_value" production's ordered choice.
func (c *ctx) parseRealValue() (types.Number, error) {
	s := c.s
	s.skipBlank()
	r, ok := s.peek()
	if !ok {
		return types.Number{}, parseErr(s)
	}
	switch {
	case r == '[':
		return c.parseExpression()
	case r == '#':
		if c.d.Features.NamedParameters {
			if r2, ok2 := s.peekAt(1); ok2 && r2 == '<' {
				return c.parseNamedParameterRef()
			}
		}
		return c.parseNumericParameterRef()
	case isAlpha(r):
		return c.parseUnaryOperation()
	default:
		return parseNumber(s)
	}
}

// parseSignedRealValue implements "operand" / "word_number": an optional
// leading sign applied to a real_value.
func (c *ctx) parseSignedRealValue() (types.Number, error) {
	s := c.s
	s.skipBlank()
	neg := false
	if r, ok := s.peek(); ok && (r == '+' || r == '-') {
		neg = r == '-'
		s.pos++
	}
	v, err := c.parseRealValue()
	if err != nil {
		return types.Number{}, err
	}
	if neg {
		v = v.Neg()
	}
	return v, nil
}

// parseExpression implements "expression ← '[' l1_operation ']'".
func (c *ctx) parseExpression() (types.Number, error) {
	s := c.s
	if !s.consumeRune('[') {
		return types.Number{}, parseErr(s)
	}
	v, err := c.parseL1()
	if err != nil {
		return types.Number{}, err
	}
	s.skipBlank()
	if !s.consumeRune(']') {
		return types.Number{}, parseErr(s)
	}
	return v, nil
}

// parseL3 implements the highest binary precedence level, "**".
func (c *ctx) parseL3() (types.Number, error) {
	s := c.s
	acc, err := c.parseSignedRealValue()
	if err != nil {
		return types.Number{}, err
	}
	for {
		s.skipBlank()
		if !s.matchLiteral("**") {
			return acc, nil
		}
		s.skipBlank()
		rhs, err := c.parseSignedRealValue()
		if err != nil {
			return types.Number{}, err
		}
		acc = acc.Pow(rhs)
	}
}

// parseL2 implements the middle binary precedence level, "*" and "/".
func (c *ctx) parseL2() (types.Number, error) {
	s := c.s
	acc, err := c.parseL3()
	if err != nil {
		return types.Number{}, err
	}
	for {
		s.skipBlank()
		pos := s.position()
		switch {
		case s.consumeRune('*'):
			s.skipBlank()
			rhs, err := c.parseL3()
			if err != nil {
				return types.Number{}, err
			}
			acc = acc.Mul(rhs)
		case s.consumeRune('/'):
			s.skipBlank()
			rhs, err := c.parseL3()
			if err != nil {
				return types.Number{}, err
			}
			v, err := evalDiv(pos, acc, rhs)
			if err != nil {
				return types.Number{}, err
			}
			acc = v
		default:
			return acc, nil
		}
	}
}

// parseL1 implements the lowest binary precedence level: "+", "-", "and",
// "or", "xor".
func (c *ctx) parseL1() (types.Number, error) {
	s := c.s
	acc, err := c.parseL2()
	if err != nil {
		return types.Number{}, err
	}
	for {
		s.skipBlank()
		switch {
		case s.consumeRune('+'):
			s.skipBlank()
			rhs, err := c.parseL2()
			if err != nil {
				return types.Number{}, err
			}
			acc = acc.Add(rhs)
		case s.consumeRune('-'):
			s.skipBlank()
			rhs, err := c.parseL2()
			if err != nil {
				return types.Number{}, err
			}
			acc = acc.Sub(rhs)
		case s.matchKeyword("and"):
			s.skipBlank()
			rhs, err := c.parseL2()
			if err != nil {
				return types.Number{}, err
			}
			acc = acc.And(rhs)
		case s.matchKeyword("or"):
			s.skipBlank()
			rhs, err := c.parseL2()
			if err != nil {
				return types.Number{}, err
			}
			acc = acc.Or(rhs)
		case s.matchKeyword("xor"):
			s.skipBlank()
			rhs, err := c.parseL2()
			if err != nil {
				return types.Number{}, err
			}
			acc = acc.Xor(rhs)
		default:
			return acc, nil
		}
	}
}

// parseUnaryOperation implements "unary_operation ← unary_op expression".
func (c *ctx) parseUnaryOperation() (types.Number, error) {
	s := c.s
	pos := s.position()
	matched := ""
	for _, op := range unaryOperators {
		if s.matchKeyword(op) {
			matched = op
			break
		}
	}
	if matched == "" {
		return types.Number{}, parseErr(s)
	}
	s.skipBlank()
	v, err := c.parseExpression()
	if err != nil {
		return types.Number{}, err
	}
	return evalUnary(pos, matched, v)
}

// parseNumericParameterRef implements "numeric_parameter ← '#' (integer /
// expression)" followed by a lookup against the committed table.
func (c *ctx) parseNumericParameterRef() (types.Number, error) {
	s := c.s
	pos := s.position()
	if !s.consumeRune('#') {
		return types.Number{}, parseErr(s)
	}
	var idxNum types.Number
	if r, ok := s.peek(); ok && r == '[' {
		v, err := c.parseExpression()
		if err != nil {
			return types.Number{}, err
		}
		idxNum = v
	} else {
		iv, err := parseIntegerLiteral(s)
		if err != nil {
			return types.Number{}, err
		}
		idxNum = types.Int(iv)
	}
	idx, err := requireInteger(pos, idxNum)
	if err != nil {
		return types.Number{}, err
	}
	v, err := c.state.LookupNumeric(idx)
	if err != nil {
		return types.Number{}, reporter.Error(pos, err)
	}
	return v, nil
}

// parseAngleName implements the "(not '>' .)+" body of a named parameter.
func (c *ctx) parseAngleName() (string, error) {
	s := c.s
	var sb []rune
	for {
		r, ok := s.peek()
		if !ok || r == '>' {
			break
		}
		sb = append(sb, r)
		s.pos++
	}
	if len(sb) == 0 {
		return "", parseErr(s)
	}
	if !s.consumeRune('>') {
		return "", parseErr(s)
	}
	return string(sb), nil
}

// parseNamedParameterRef implements "named_parameter ← '#<' name '>'"
// followed by a case-folded lookup against the committed table.
func (c *ctx) parseNamedParameterRef() (types.Number, error) {
	s := c.s
	pos := s.position()
	if !s.matchLiteral("#<") {
		return types.Number{}, parseErr(s)
	}
	name, err := c.parseAngleName()
	if err != nil {
		return types.Number{}, err
	}
	v, err := c.state.LookupNamed(name)
	if err != nil {
		return types.Number{}, reporter.Error(pos, err)
	}
	return v, nil
}

// parseNumericParameterSetting implements "'#' integer '=' real_value",
// writing the evaluated value into the pending table.
func (c *ctx) parseNumericParameterSetting() (int, types.Number, error) {
	s := c.s
	if !s.consumeRune('#') {
		return 0, types.Number{}, parseErr(s)
	}
	iv, err := parseIntegerLiteral(s)
	if err != nil {
		return 0, types.Number{}, err
	}
	idx := int(iv)
	s.skipBlank()
	if !s.consumeRune('=') {
		return 0, types.Number{}, parseErr(s)
	}
	s.skipBlank()
	val, err := c.parseRealValue()
	if err != nil {
		return 0, types.Number{}, err
	}
	c.state.AssignNumeric(idx, val)
	return idx, val, nil
}

// parseNamedParameterSetting implements "'#<' name '>' '=' real_value".
func (c *ctx) parseNamedParameterSetting() (string, types.Number, error) {
	s := c.s
	if !s.matchLiteral("#<") {
		return "", types.Number{}, parseErr(s)
	}
	name, err := c.parseAngleName()
	if err != nil {
		return "", types.Number{}, err
	}
	s.skipBlank()
	if !s.consumeRune('=') {
		return "", types.Number{}, parseErr(s)
	}
	s.skipBlank()
	val, err := c.parseRealValue()
	if err != nil {
		return "", types.Number{}, err
	}
	c.state.AssignNamed(name, val)
	return name, val, nil
}

// parseParenComment implements "comment ← '(' (not ')' . )* ')'".
func (c *ctx) parseParenComment() (string, error) {
	s := c.s
	if !s.consumeRune('(') {
		return "", parseErr(s)
	}
	var sb []rune
	for {
		r, ok := s.peek()
		if !ok {
			return "", parseErr(s)
		}
		if r == ')' {
			s.pos++
			return string(sb), nil
		}
		sb = append(sb, r)
		s.pos++
	}
}

// parseSemicolonComment implements "semicolon_comment ← ';' (.*) EOF": it
// always consumes to the end of the line. A single run of blank space right
// after the ';' is insignificant, the same as everywhere else outside a
// numeric literal, so "; foo" and ";foo" both record the comment "foo".
func (c *ctx) parseSemicolonComment() string {
	s := c.s
	s.consumeRune(';')
	s.skipBlank()
	text := s.rest()
	s.pos = len(s.runes)
	return text
}

// parseWord implements "word ← letter word_number" and resolves the
// result against the dialect's word tables.
func (c *ctx) parseWord() (types.Word, error) {
	s := c.s
	pos := s.position()
	r, ok := s.peek()
	if !ok || !isAlpha(r) {
		return types.Word{}, parseErr(s)
	}
	s.pos++
	letter := byte(unicode.ToUpper(r))
	n, err := c.parseSignedRealValue()
	if err != nil {
		return types.Word{}, err
	}
	info, err := c.d.Words.Resolve(letter, n)
	if err != nil {
		return types.Word{}, reporter.Error(pos, err)
	}
	return types.Word{Letter: letter, Number: n, Ordering: info.Ordering}, nil
}

// tryParseLineNumber implements "line_number ← 'N' integer", attempted at
// most once, immediately after an optional block-delete mark.
func (c *ctx) tryParseLineNumber() (*int, error) {
	s := c.s
	m := s.mark()
	if !s.matchKeyword("n") {
		return nil, nil
	}
	iv, err := parseIntegerLiteral(s)
	if err != nil {
		s.reset(m)
		return nil, nil
	}
	v := int(iv)
	return &v, nil
}

// ParseLine parses one line of source against dialect d, evaluating
// expressions and parameter references against state and committing any
// parameter writes once the line parses successfully. lineNum is the
// 1-based source line number, used only for error positions.
func ParseLine(d dialect.Dialect, state *machine.State, lineNum int, raw string) (types.Line, error) {
	s := newScanner(lineNum, raw)
	c := &ctx{s: s, d: d, state: state}

	s.skipBlank()
	blockDelete := s.consumeRune('/')
	if blockDelete && state.IsBlockDeleteSwitchEnabled {
		return types.Line{Comments: []string{raw}}, nil
	}

	s.skipBlank()
	lineNumber, err := c.tryParseLineNumber()
	if err != nil {
		return types.Line{}, err
	}

	var words []types.Word
	var comments []string
	numericAssignments := map[int]types.Number{}
	namedAssignments := map[string]types.Number{}

	for {
		s.skipBlank()
		if s.eof() {
			break
		}
		r, _ := s.peek()
		switch {
		case r == '(':
			cm, err := c.parseParenComment()
			if err != nil {
				return types.Line{}, err
			}
			comments = append(comments, cm)
		case d.Features.SemicolonComments && r == ';':
			comments = append(comments, c.parseSemicolonComment())
		case r == '#':
			if d.Features.NamedParameters {
				m := s.mark()
				isNamed := s.matchLiteral("#<")
				s.reset(m)
				if isNamed {
					name, val, err := c.parseNamedParameterSetting()
					if err != nil {
						return types.Line{}, err
					}
					namedAssignments[name] = val
					continue
				}
			}
			idx, val, err := c.parseNumericParameterSetting()
			if err != nil {
				return types.Line{}, err
			}
			numericAssignments[idx] = val
		case isAlpha(r):
			w, err := c.parseWord()
			if err != nil {
				return types.Line{}, err
			}
			words = append(words, w)
		default:
			return types.Line{}, parseErr(s)
		}
	}

	sort.SliceStable(words, func(i, j int) bool {
		return words[i].Ordering < words[j].Ordering
	})

	line := types.Line{
		LineNumber:         lineNumber,
		Words:              words,
		Comments:           comments,
		NumericAssignments: numericAssignments,
		NamedAssignments:   namedAssignments,
	}
	state.Commit()
	return line, nil
}

// ParseRule parses source against a single named grammar production,
// requiring the whole input to be consumed. It's used for testing
// sub-expressions and for evaluating a single construct outside the
// context of a full line.
func ParseRule(d dialect.Dialect, state *machine.State, rule string, source string) (interface{}, error) {
	s := newScanner(1, source)
	c := &ctx{s: s, d: d, state: state}

	var (
		result interface{}
		err    error
	)
	switch rule {
	case "line":
		return ParseLine(d, state, 1, source)
	case "number":
		result, err = parseNumber(s)
	case "l1_operation":
		result, err = c.parseL1()
	case "numeric_parameter":
		result, err = c.parseNumericParameterRef()
	case "named_parameter":
		if !d.Features.NamedParameters {
			return nil, parseErr(s)
		}
		result, err = c.parseNamedParameterRef()
	case "word":
		result, err = c.parseWord()
	default:
		return nil, fmt.Errorf("parser: unknown rule %q", rule)
	}
	if err != nil {
		return nil, err
	}
	s.skipBlank()
	if !s.eof() {
		return nil, parseErr(s)
	}
	return result, nil
}
