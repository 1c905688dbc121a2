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

// Package machine holds the two-phase parameter state a Parser evaluates
// expressions against: a committed table, visible to reads, and a pending
// table that assignments on the current line write to until the line
// finishes parsing successfully.
package machine

import (
	art "github.com/plar/go-adaptive-radix-tree"

	"github.com/kirberich/rs274-parser/reporter"
	"github.com/kirberich/rs274-parser/types"
)

// Seed is the initial parameter state a State is constructed from.
type Seed struct {
	ParameterValues      map[int]types.Number
	NamedParameterValues map[string]types.Number
}

// State holds numeric parameters (indexed by integer, on a plain map since
// the key space is small and sparse) and named parameters (indexed by
// case-folded name, on an adaptive radix tree rather than a plain map).
// Committing or rolling back still walks every entry via ForEach (see
// cloneTree below) -- the same O(N) bound as cloning a map -- so the tree
// is not a shortcut around that cost; it buys lexicographically ordered
// traversal of the named-parameter key space instead.
//
// Reads during a line only ever see the committed tables; writes during
// that same line land in the pending tables. Commit folds pending into
// committed at the end of a successfully parsed line; Rollback discards
// pending after a line fails to parse.
type State struct {
	committed map[int]types.Number
	pending   map[int]types.Number

	namedCommitted art.Tree
	namedPending   art.Tree

	// IsBlockDeleteSwitchEnabled controls whether lines beginning with "/"
	// are skipped rather than parsed.
	IsBlockDeleteSwitchEnabled bool
}

// New builds a State from an optional seed (nil seeds to empty tables) and
// whether the block-delete switch starts enabled.
func New(seed *Seed, blockDeleteEnabled bool) *State {
	s := &State{
		committed:                  map[int]types.Number{},
		namedCommitted:             art.New(),
		IsBlockDeleteSwitchEnabled: blockDeleteEnabled,
	}
	if seed != nil {
		for k, v := range seed.ParameterValues {
			s.committed[k] = v
		}
		for k, v := range seed.NamedParameterValues {
			s.namedCommitted.Insert(art.Key(normalizeName(k)), v)
		}
	}
	s.pending = cloneInts(s.committed)
	s.namedPending = cloneTree(s.namedCommitted)
	return s
}

func cloneInts(m map[int]types.Number) map[int]types.Number {
	c := make(map[int]types.Number, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

// cloneTree rebuilds an independent tree with the same entries as t. This
// walks every node, the same O(N) cost as cloneInts above -- the library
// exposes no cheaper root-sharing snapshot, so a named-parameter commit
// costs the same as a numeric-parameter one.
func cloneTree(t art.Tree) art.Tree {
	c := art.New()
	t.ForEach(func(n art.Node) bool {
		c.Insert(n.Key(), n.Value())
		return true
	})
	return c
}

// LookupNumeric returns the committed value of numeric parameter index, or
// an UndefinedParameterError if it has no committed value.
func (s *State) LookupNumeric(index int) (types.Number, error) {
	v, ok := s.committed[index]
	if !ok {
		return types.Number{}, &reporter.UndefinedParameterError{Index: &index}
	}
	return v, nil
}

// AssignNumeric writes value into the pending table for numeric parameter
// index. The write is not visible to LookupNumeric until Commit.
func (s *State) AssignNumeric(index int, value types.Number) {
	s.pending[index] = value
}

// LookupNamed returns the committed value of named parameter name
// (case-folded), or an UndefinedParameterError if it has no committed
// value.
func (s *State) LookupNamed(name string) (types.Number, error) {
	key := normalizeName(name)
	v, ok := s.namedCommitted.Search(art.Key(key))
	if !ok {
		return types.Number{}, &reporter.UndefinedParameterError{Name: name}
	}
	return v.(types.Number), nil
}

// AssignNamed writes value into the pending table for named parameter name
// (case-folded). The write is not visible to LookupNamed until Commit.
func (s *State) AssignNamed(name string, value types.Number) {
	s.namedPending.Insert(art.Key(normalizeName(name)), value)
}

func normalizeName(name string) string {
	b := []byte(name)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// Commit folds the pending tables into the committed tables, as the last
// step of successfully parsing a line, and resets pending to match the new
// committed state.
func (s *State) Commit() {
	s.committed = s.pending
	s.namedCommitted = s.namedPending
	s.pending = cloneInts(s.committed)
	s.namedPending = cloneTree(s.namedCommitted)
}

// Rollback discards pending writes made while parsing a line that failed,
// resetting pending back to the last committed state.
func (s *State) Rollback() {
	s.pending = cloneInts(s.committed)
	s.namedPending = cloneTree(s.namedCommitted)
}

// ParameterValues returns a snapshot of the committed numeric parameter
// table.
func (s *State) ParameterValues() map[int]types.Number {
	return cloneInts(s.committed)
}

// NamedParameterValues returns a snapshot of the committed named parameter
// table.
func (s *State) NamedParameterValues() map[string]types.Number {
	out := map[string]types.Number{}
	s.namedCommitted.ForEach(func(n art.Node) bool {
		out[string(n.Key())] = n.Value().(types.Number)
		return true
	})
	return out
}
