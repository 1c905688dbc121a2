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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/kirberich/rs274-parser/dialect"
	"github.com/kirberich/rs274-parser/machine"
	"github.com/kirberich/rs274-parser/types"
)

// TestParseLineStructuralDiff exercises full structural comparison of a
// parsed Line, diffing the whole value with cmp.Diff rather than
// asserting field by field.
func TestParseLineStructuralDiff(t *testing.T) {
	t.Parallel()
	state := machine.New(nil, false)
	got, err := ParseLine(dialect.RS274NGC, state, 1, "G0 X1 Y2")
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}

	want := types.Line{
		Words: []types.Word{
			{Letter: 'G', Number: types.Int(0), Ordering: 210},
			{Letter: 'X', Number: types.Int(1), Ordering: 999},
			{Letter: 'Y', Number: types.Int(2), Ordering: 999},
		},
		NumericAssignments: map[int]types.Number{},
		NamedAssignments:   map[string]types.Number{},
	}

	if diff := cmp.Diff(want, got, cmp.AllowUnexported(types.Number{}), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("ParseLine result mismatch (-want +got):\n%s", diff)
	}
}
