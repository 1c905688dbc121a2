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

// Package dialect composes a word table with the set of grammar features a
// parser should enable. The original Python implementation expressed
// LinuxCNC as a subclass of the baseline RS274 dialect; here a dialect is
// plain data, and the parser branches on its Features rather than on type.
package dialect

import (
	"github.com/kirberich/rs274-parser/words"
	"github.com/kirberich/rs274-parser/words/linuxcnc"
	"github.com/kirberich/rs274-parser/words/rs274ngc"
)

// Features toggles grammar extensions that differ between dialects.
type Features struct {
	// NamedParameters enables "#<name>" parameter references and
	// "#<name> = expr" assignments, in addition to numeric parameters.
	NamedParameters bool
	// SemicolonComments enables "; rest of line" comments, in addition to
	// parenthesized "(...)" comments.
	SemicolonComments bool
}

// Dialect is a named word table plus the grammar features available when
// parsing with it.
type Dialect struct {
	Name     string
	Words    *words.Table
	Features Features
}

// RS274NGC is the baseline dialect: numeric parameters only, parenthesized
// comments only.
var RS274NGC = Dialect{
	Name:     "rs274ngc",
	Words:    rs274ngc.Table(),
	Features: Features{},
}

// LinuxCNC is the extended dialect: named parameters and semicolon
// comments, on top of LinuxCNC's word table.
var LinuxCNC = Dialect{
	Name:  "linuxcnc",
	Words: linuxcnc.Table(),
	Features: Features{
		NamedParameters:   true,
		SemicolonComments: true,
	},
}
