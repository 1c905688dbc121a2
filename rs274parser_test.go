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

package rs274parser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirberich/rs274-parser/dialect"
	"github.com/kirberich/rs274-parser/types"
)

func TestParseSimpleLine(t *testing.T) {
	t.Parallel()
	p := New(dialect.RS274NGC, ConstructionOptions{})
	lines, err := p.Parse("G0 X1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "G0 X1", lines[0].String())
}

func TestParseMultipleLinesPersistsMachineState(t *testing.T) {
	t.Parallel()
	p := New(dialect.RS274NGC, ConstructionOptions{
		InitialParameterValues: map[int]types.Number{1: types.Int(1000)},
	})

	lines, err := p.Parse("#1 = 1 G0 X#1 #1 = 2\nG0 X#1")
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, "G0 X1000", lines[0].String())
	assert.Equal(t, "G0 X2", lines[1].String(), "the second line sees the first line's committed write")

	assert.True(t, types.Int(2).Equal(p.ParameterValues()[1]))
}

func TestParseDoesNotMutateCallerSeed(t *testing.T) {
	t.Parallel()
	seed := map[int]types.Number{1: types.Int(1)}
	p := New(dialect.RS274NGC, ConstructionOptions{InitialParameterValues: seed})

	_, err := p.Parse("#1 = 99")
	require.NoError(t, err)

	assert.True(t, types.Int(1).Equal(seed[1]), "the caller's seed map must never be mutated")
}

func TestParseBlockDeleteToggle(t *testing.T) {
	t.Parallel()

	disabled := New(dialect.RS274NGC, ConstructionOptions{IsBlockDeleteSwitchEnabled: false})
	lines, err := disabled.Parse("/ M2")
	require.NoError(t, err)
	assert.Equal(t, "M2", lines[0].String())

	enabled := New(dialect.RS274NGC, ConstructionOptions{IsBlockDeleteSwitchEnabled: true})
	lines, err = enabled.Parse("/ M2")
	require.NoError(t, err)
	assert.Empty(t, lines[0].Words)
	assert.Equal(t, []string{"/ M2"}, lines[0].Comments)
}

func TestParseFailureRollsBackPendingStateForTheNextCall(t *testing.T) {
	t.Parallel()
	p := New(dialect.RS274NGC, ConstructionOptions{
		InitialParameterValues: map[int]types.Number{1: types.Int(5)},
	})

	_, err := p.Parse("#1 = 99 NOTAWORD")
	require.Error(t, err)

	lines, err := p.Parse("G0 X#1")
	require.NoError(t, err)
	assert.Equal(t, "G0 X5", lines[0].String(), "the failed line's assignment must not have leaked through")
}

func TestParseSemicolonCommentRequiresExtendedDialect(t *testing.T) {
	t.Parallel()
	p := New(dialect.RS274NGC, ConstructionOptions{})
	_, err := p.Parse("; a comment")
	assert.Error(t, err, "the baseline dialect has no semicolon comments")
}

func TestParseNamedParametersEndToEnd(t *testing.T) {
	t.Parallel()
	p := New(dialect.LinuxCNC, ConstructionOptions{
		InitialNamedParameterValues: map[string]types.Number{"defined": types.Int(10), "param": types.Int(1)},
	})

	lines, err := p.Parse("#<param> = #<defined> G0 X#<param>")
	require.NoError(t, err)
	assert.Equal(t, "G0 X1", lines[0].String())

	named := p.NamedParameterValues()
	assert.True(t, types.Int(10).Equal(named["defined"]))
	assert.True(t, types.Int(10).Equal(named["param"]))
}

func TestParseRuleDelegatesToSubRule(t *testing.T) {
	t.Parallel()
	p := New(dialect.RS274NGC, ConstructionOptions{})
	result, err := p.ParseRule("number", "1234")
	require.NoError(t, err)
	n, ok := result.(types.Number)
	require.True(t, ok)
	assert.Equal(t, int64(1234), n.Int())
}

func TestParseConcurrentlyGivesEachSourceIndependentState(t *testing.T) {
	t.Parallel()
	opts := ConstructionOptions{InitialParameterValues: map[int]types.Number{1: types.Int(0)}}
	sources := []string{
		"#1 = 1 G0 X#1",
		"#1 = 2 G0 X#1",
		"#1 = 3 G0 X#1",
	}
	results, err := ParseConcurrently(context.Background(), dialect.RS274NGC, sources, opts, 2)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Every source is seeded identically, so X#1 reads the same pre-commit
	// value (0) in all three regardless of execution order: each source got
	// its own machine.State, so one source's assignment never leaks into
	// another's read.
	for _, res := range results {
		require.Len(t, res, 1)
		assert.Equal(t, "G0 X0", res[0].String())
	}
}

func TestParseConcurrentlyPropagatesErrors(t *testing.T) {
	t.Parallel()
	sources := []string{"G0 X1", "NOTAWORD", "G0 X2"}
	_, err := ParseConcurrently(context.Background(), dialect.RS274NGC, sources, ConstructionOptions{}, 0)
	assert.Error(t, err)
}
