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
	"strings"

	"github.com/kirberich/rs274-parser/parser"
	"github.com/kirberich/rs274-parser/types"
)

// Parse splits source on newlines and parses each line in order against
// p's dialect and machine state. A line that fails to parse stops the
// whole call: the error is returned, the lines already parsed are
// discarded, and the parameter state is rolled back so the failed line's
// partial writes never leak into a later call to Parse.
//
// Empty lines are legal and produce an empty Line each.
func (p *Parser) Parse(source string) ([]types.Line, error) {
	rawLines := strings.Split(source, "\n")
	result := make([]types.Line, 0, len(rawLines))

	for i, raw := range rawLines {
		lineNum := i + 1
		line, err := parser.ParseLine(p.dialect, p.state, lineNum, raw)
		if err != nil {
			p.state.Rollback()
			p.logger.Error("failed to parse line", "line", lineNum, "err", err)
			return nil, err
		}

		if p.isBlockDeleteSkip(raw) {
			p.logger.Warn("skipped block-delete line", "line", lineNum)
		} else {
			p.logger.Debug("parsed line", "line", lineNum, "words", len(line.Words))
		}

		result = append(result, line)
	}

	return result, nil
}

// isBlockDeleteSkip reports whether raw would have been skipped by the
// block-delete switch, purely for the log line above: ParseLine already
// made this decision internally and doesn't hand it back out.
func (p *Parser) isBlockDeleteSkip(raw string) bool {
	if !p.state.IsBlockDeleteSwitchEnabled {
		return false
	}
	trimmed := strings.TrimLeft(raw, " \t")
	return strings.HasPrefix(trimmed, "/")
}

// ParseRule parses source against a single named grammar production
// instead of the full line grammar, requiring the whole input to be
// consumed. An empty rule falls back to the StartRule given at
// construction. Used for testing sub-expressions in isolation.
func (p *Parser) ParseRule(rule string, source string) (interface{}, error) {
	if rule == "" {
		rule = p.startRule
	}
	return parser.ParseRule(p.dialect, p.state, rule, source)
}
