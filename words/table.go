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

// Package words holds the per-dialect word tables: the set of valid
// letter+number combinations (e.g. "G1", "M30") and letter-only entries
// (e.g. "X", "F") that a parser resolves a parsed Word against.
package words

import (
	"github.com/kirberich/rs274-parser/reporter"
	"github.com/kirberich/rs274-parser/types"
)

// Table is a dialect's full set of recognized words. Words maps a full
// "letter+number" key (e.g. "G1", "G17.1") to its metadata; Letters maps a
// bare letter (e.g. "X", "F") to metadata for words that take an arbitrary
// numeric argument rather than one of a fixed set of numbers.
type Table struct {
	Words   map[string]types.WordInfo
	Letters map[byte]types.WordInfo
}

// New builds an empty Table ready to be populated by a dialect's
// constructor.
func New() *Table {
	return &Table{
		Words:   make(map[string]types.WordInfo),
		Letters: make(map[byte]types.WordInfo),
	}
}

// AddWord registers a fixed letter+number word, such as "G1" or "M30".
func (t *Table) AddWord(letter byte, number string, info types.WordInfo) {
	t.Words[string([]byte{letter})+number] = info
}

// AddLetter registers a letter that takes an arbitrary numeric argument,
// such as "X" or "F".
func (t *Table) AddLetter(letter byte, info types.WordInfo) {
	t.Letters[letter] = info
}

// Remove deletes a fixed letter+number word, used by dialects that drop a
// word the base table defines (LinuxCNC removes G84/G87).
func (t *Table) Remove(letter byte, number string) {
	delete(t.Words, string([]byte{letter})+number)
}

// Clone returns a copy of t with its own maps, so adding or removing words
// on the copy leaves t unchanged; suitable as a starting point for a
// dialect that extends another dialect's table.
func (t *Table) Clone() *Table {
	c := New()
	for k, v := range t.Words {
		c.Words[k] = v
	}
	for k, v := range t.Letters {
		c.Letters[k] = v
	}
	return c
}

// Resolve looks up the WordInfo for a parsed letter+number pair: first as a
// fixed word (letter+number key), then as a letter taking an arbitrary
// number. It returns an UnknownWordError if neither matches.
func (t *Table) Resolve(letter byte, n types.Number) (types.WordInfo, error) {
	key := string([]byte{letter}) + n.String()
	if info, ok := t.Words[key]; ok {
		return info, nil
	}
	if info, ok := t.Letters[letter]; ok {
		return info, nil
	}
	return types.WordInfo{}, &reporter.UnknownWordError{Letter: letter, Key: key}
}
