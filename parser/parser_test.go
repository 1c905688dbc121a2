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
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirberich/rs274-parser/dialect"
	"github.com/kirberich/rs274-parser/machine"
	"github.com/kirberich/rs274-parser/types"
)

func TestParseLineSimpleWords(t *testing.T) {
	t.Parallel()
	state := machine.New(nil, false)
	line, err := ParseLine(dialect.RS274NGC, state, 1, "G0 X1")
	require.NoError(t, err)

	require.Len(t, line.Words, 2)
	assert.Equal(t, "G0", line.Words[0].String())
	assert.Equal(t, "X1", line.Words[1].String())
	assert.Empty(t, line.Comments)
	assert.Empty(t, line.NumericAssignments)
}

func TestParseLineWhitespaceInsideNumbersAndLowercase(t *testing.T) {
	t.Parallel()
	state := machine.New(nil, false)
	line, err := ParseLine(dialect.RS274NGC, state, 1, "g0x 0. 1234y 7")
	require.NoError(t, err)

	require.Len(t, line.Words, 3)
	assert.Equal(t, "G0", line.Words[0].String())
	assert.Equal(t, "X0.1234", line.Words[1].String())
	assert.Equal(t, "Y7", line.Words[2].String())
}

func TestParseLineParameterAssignmentSeenBeforeStartOfLine(t *testing.T) {
	t.Parallel()
	state := machine.New(&machine.Seed{ParameterValues: map[int]types.Number{1: types.Int(1000)}}, false)

	line, err := ParseLine(dialect.RS274NGC, state, 1, "#1 = 1 G0 X#1 #1 = 2")
	require.NoError(t, err)

	require.Len(t, line.Words, 2)
	assert.Equal(t, "G0", line.Words[0].String())
	assert.Equal(t, "X1000", line.Words[1].String(), "X#1 reads the pre-commit value of parameter 1")

	require.Contains(t, line.NumericAssignments, 1)
	assert.True(t, types.Int(2).Equal(line.NumericAssignments[1]), "last write in the line wins")

	v, err := state.LookupNumeric(1)
	require.NoError(t, err)
	assert.True(t, types.Int(2).Equal(v))
}

func TestParseLineBlockDeleteDisabled(t *testing.T) {
	t.Parallel()
	state := machine.New(nil, false)
	line, err := ParseLine(dialect.RS274NGC, state, 1, "/ M2")
	require.NoError(t, err)

	require.Len(t, line.Words, 1)
	assert.Equal(t, "M2", line.Words[0].String())
}

func TestParseLineBlockDeleteEnabled(t *testing.T) {
	t.Parallel()
	state := machine.New(nil, true)
	line, err := ParseLine(dialect.RS274NGC, state, 1, "/ M2")
	require.NoError(t, err)

	assert.Empty(t, line.Words)
	assert.Equal(t, []string{"/ M2"}, line.Comments)
}

func TestParseLineNestedExpressionsAndPrecedence(t *testing.T) {
	t.Parallel()
	state := machine.New(&machine.Seed{ParameterValues: map[int]types.Number{
		0: types.Int(0),
		1: types.Int(1),
	}}, false)

	line, err := ParseLine(dialect.RS274NGC, state, 1, "G[#[#1-sin[90]]] X[1 * 1/1 - 1 ** 1 + ln[1]]")
	require.NoError(t, err)

	require.Len(t, line.Words, 2)
	assert.Equal(t, "G0", line.Words[0].String())
	assert.Equal(t, "X0", line.Words[1].String())
}

func TestParseLineSemicolonCommentExtendedDialect(t *testing.T) {
	t.Parallel()
	state := machine.New(nil, false)
	line, err := ParseLine(dialect.LinuxCNC, state, 1, "; a comment")
	require.NoError(t, err)

	assert.Empty(t, line.Words)
	assert.Equal(t, []string{"a comment"}, line.Comments)
}

func TestParseLineNamedParameterAssignmentAndLookup(t *testing.T) {
	t.Parallel()
	state := machine.New(&machine.Seed{NamedParameterValues: map[string]types.Number{
		"defined": types.Int(10),
		"param":   types.Int(1),
	}}, false)

	line, err := ParseLine(dialect.LinuxCNC, state, 1, "#<param> = #<defined> G0 X#<param>")
	require.NoError(t, err)

	require.Len(t, line.Words, 2)
	assert.Equal(t, "G0", line.Words[0].String())
	assert.Equal(t, "X1", line.Words[1].String(), "X#<param> reads the pre-commit value")

	require.Contains(t, line.NamedAssignments, "param")
	assert.True(t, types.Int(10).Equal(line.NamedAssignments["param"]))

	named := state.NamedParameterValues()
	assert.True(t, types.Int(10).Equal(named["defined"]))
	assert.True(t, types.Int(10).Equal(named["param"]))
}

func TestParseLineUnknownWordFails(t *testing.T) {
	t.Parallel()
	state := machine.New(nil, false)
	_, err := ParseLine(dialect.RS274NGC, state, 1, "W99")
	assert.Error(t, err)
}

func TestParseLineUndefinedParameterFails(t *testing.T) {
	t.Parallel()
	state := machine.New(nil, false)
	_, err := ParseLine(dialect.RS274NGC, state, 1, "G0 X#5")
	assert.Error(t, err)
}

func TestParseLineExpectedIntegerParameterIndex(t *testing.T) {
	t.Parallel()
	state := machine.New(nil, false)
	_, err := ParseLine(dialect.RS274NGC, state, 1, "G0 X#[1.5]")
	assert.Error(t, err)
}

func TestParseLineFailureLeavesCommittedStateUntouchedAfterRollback(t *testing.T) {
	t.Parallel()
	state := machine.New(&machine.Seed{ParameterValues: map[int]types.Number{1: types.Int(5)}}, false)

	_, err := ParseLine(dialect.RS274NGC, state, 1, "#1 = 99 W1")
	require.Error(t, err, "W1 is not a recognized word")

	state.Rollback()
	v, err := state.LookupNumeric(1)
	require.NoError(t, err)
	assert.True(t, types.Int(5).Equal(v), "a failed line's assignments must never reach the committed table")
}

func TestParseLineEmptyLineIsLegal(t *testing.T) {
	t.Parallel()
	state := machine.New(nil, false)
	line, err := ParseLine(dialect.RS274NGC, state, 1, "")
	require.NoError(t, err)
	assert.Empty(t, line.Words)
	assert.Empty(t, line.Comments)
}

func TestParseLineWordsAreSortedStablyByOrdering(t *testing.T) {
	t.Parallel()
	state := machine.New(nil, false)
	line, err := ParseLine(dialect.RS274NGC, state, 1, "X1 Y2 G0 Z3")
	require.NoError(t, err)

	assert.True(t, sort.SliceIsSorted(line.Words, func(i, j int) bool {
		return line.Words[i].Ordering < line.Words[j].Ordering
	}))
	assert.Equal(t, "G0", line.Words[0].String(), "G0 has a lower ordering than the axis words")
	// X, Y and Z share the same ordering (999): stability must keep source order.
	require.Len(t, line.Words, 4)
	assert.Equal(t, []string{"X1", "Y2", "Z3"}, []string{
		line.Words[1].String(), line.Words[2].String(), line.Words[3].String(),
	})
}

func TestParseRuleNumber(t *testing.T) {
	t.Parallel()
	state := machine.New(nil, false)
	result, err := ParseRule(dialect.RS274NGC, state, "number", "12.5")
	require.NoError(t, err)
	n, ok := result.(types.Number)
	require.True(t, ok)
	assert.Equal(t, 12.5, n.Float())
}

func TestParseRuleRejectsTrailingGarbage(t *testing.T) {
	t.Parallel()
	state := machine.New(nil, false)
	_, err := ParseRule(dialect.RS274NGC, state, "number", "12.5X")
	assert.Error(t, err)
}

func TestParseRuleNamedParameterRequiresExtendedDialect(t *testing.T) {
	t.Parallel()
	state := machine.New(&machine.Seed{NamedParameterValues: map[string]types.Number{"p": types.Int(1)}}, false)
	_, err := ParseRule(dialect.RS274NGC, state, "named_parameter", "#<p>")
	assert.Error(t, err)
}
