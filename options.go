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

// Package rs274parser parses RS274/NGC G-code (and its LinuxCNC extension)
// into an ordered sequence of structured Lines, evaluating every
// expression, parameter reference and assignment along the way.
//
// A Parser owns exactly one machine.State and is not safe for concurrent
// use from multiple goroutines; to parse several independent sources at
// once, use ParseConcurrently, which gives each source its own State.
package rs274parser

import (
	"log/slog"

	"github.com/kirberich/rs274-parser/dialect"
	"github.com/kirberich/rs274-parser/machine"
	"github.com/kirberich/rs274-parser/types"
)

// ConstructionOptions configures a new Parser as a struct of exported
// fields rather than functional options.
type ConstructionOptions struct {
	// InitialParameterValues seeds the committed numeric parameter table.
	// The map is deep-copied; the caller's map is never mutated.
	InitialParameterValues map[int]types.Number
	// InitialNamedParameterValues seeds the committed named parameter
	// table. Only meaningful for a dialect with Features.NamedParameters.
	InitialNamedParameterValues map[string]types.Number
	// IsBlockDeleteSwitchEnabled controls whether lines beginning with "/"
	// are skipped rather than parsed.
	IsBlockDeleteSwitchEnabled bool
	// StartRule names the grammar production ParseRule enters when called
	// with an empty rule argument. Defaults to "line".
	StartRule string
	// Logger receives Debug-level events for each parsed line and
	// Warn-level events for block-delete skips. Defaults to slog.Default().
	// Parameter values are never logged, since machine state may carry
	// caller-sensitive data.
	Logger *slog.Logger
}

// Parser parses G-code source against one Dialect, evaluating expressions
// and parameter references against one machine.State that persists across
// calls to Parse.
type Parser struct {
	dialect   dialect.Dialect
	state     *machine.State
	startRule string
	logger    *slog.Logger
}

// New builds a Parser for dialect d, seeded per opts.
func New(d dialect.Dialect, opts ConstructionOptions) *Parser {
	seed := &machine.Seed{
		ParameterValues:      opts.InitialParameterValues,
		NamedParameterValues: opts.InitialNamedParameterValues,
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	startRule := opts.StartRule
	if startRule == "" {
		startRule = "line"
	}
	return &Parser{
		dialect:   d,
		state:     machine.New(seed, opts.IsBlockDeleteSwitchEnabled),
		startRule: startRule,
		logger:    logger,
	}
}

// ParameterValues returns a snapshot of the committed numeric parameter
// table, reflecting every line parsed so far.
func (p *Parser) ParameterValues() map[int]types.Number {
	return p.state.ParameterValues()
}

// NamedParameterValues returns a snapshot of the committed named parameter
// table, reflecting every line parsed so far.
func (p *Parser) NamedParameterValues() map[string]types.Number {
	return p.state.NamedParameterValues()
}
