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

package types

import (
	"fmt"
	"strings"
)

// WordInfo is static per-dialect metadata about a word: a descriptive name,
// the modal group it belongs to (0 for non-modal/argument-like words), and
// the ordering used to sort words within a line into execution order.
type WordInfo struct {
	Name       string
	ModalGroup int
	Ordering   int
}

// Word is a parsed letter+number token: a command (G/M) or an argument
// (X/Y/F/...). Ordering is denormalized from the WordInfo that was
// resolved for it, so that a Line's words can be sorted without consulting
// the word tables again.
type Word struct {
	Letter   byte
	Number   Number
	Ordering int
}

func (w Word) String() string {
	return string([]byte{w.Letter}) + w.Number.String()
}

// NumericParameterAssignment records a "#<index> = <value>" assignment.
type NumericParameterAssignment struct {
	Index int
	Value Number
}

// NamedParameterAssignment records a "#<<name>> = <value>" assignment
// (extended dialect only).
type NamedParameterAssignment struct {
	Name  string
	Value Number
}

// Line is the structured record produced for one line of source: its
// words in canonical execution order, its comments in source order, its
// optional N<n> label, and the parameter assignments it performed (last
// write wins per key).
type Line struct {
	LineNumber         *int
	Words              []Word
	Comments           []string
	NumericAssignments map[int]Number
	NamedAssignments   map[string]Number
}

// String renders a Line back to G-code text: optional N<n>, then
// space-joined word renderings, then each comment parenthesized (even if
// it originated as a semicolon comment).
func (l Line) String() string {
	var frags []string
	if l.LineNumber != nil {
		frags = append(frags, fmt.Sprintf("N%d", *l.LineNumber))
	}
	for _, w := range l.Words {
		frags = append(frags, w.String())
	}
	for _, c := range l.Comments {
		frags = append(frags, fmt.Sprintf("(%s)", c))
	}
	return strings.Join(frags, " ")
}
