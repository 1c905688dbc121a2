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

// Package rs274ngc holds the baseline RS274/NGC word table: the letters
// that take an arbitrary numeric argument, and the fixed set of G/M words
// recognized without any dialect extension.
package rs274ngc

import (
	"github.com/kirberich/rs274-parser/types"
	"github.com/kirberich/rs274-parser/words"
)

// Table returns a fresh baseline RS274/NGC word table. Orderings are left
// with gaps (steps of 10) so that dialects built on top of this table can
// insert words between existing groups, matching the ordering scheme of
// the original constants this table is transcribed from.
func Table() *words.Table {
	t := words.New()

	// Letters taking an arbitrary numeric argument. A Line's words are all
	// sorted by ordering, arguments included: F, S and T sort ahead of the
	// G/M commands, and the letters at 999 sort after every fixed word.
	t.AddLetter('F', types.WordInfo{Name: "Set feedrate", ModalGroup: 0, Ordering: 30})
	t.AddLetter('S', types.WordInfo{Name: "Set spindle RPM", ModalGroup: 0, Ordering: 40})
	t.AddLetter('T', types.WordInfo{Name: "Select tool", ModalGroup: 0, Ordering: 50})
	t.AddLetter('X', types.WordInfo{Name: "X coordinate", ModalGroup: 0, Ordering: 999})
	t.AddLetter('Y', types.WordInfo{Name: "Y coordinate", ModalGroup: 0, Ordering: 999})
	t.AddLetter('Z', types.WordInfo{Name: "Z coordinate", ModalGroup: 0, Ordering: 999})
	t.AddLetter('A', types.WordInfo{Name: "A coordinate", ModalGroup: 0, Ordering: 999})
	t.AddLetter('B', types.WordInfo{Name: "B coordinate", ModalGroup: 0, Ordering: 999})
	t.AddLetter('C', types.WordInfo{Name: "C coordinate", ModalGroup: 0, Ordering: 999})
	t.AddLetter('D', types.WordInfo{Name: "Tool compensation radius", ModalGroup: 0, Ordering: 999})
	t.AddLetter('H', types.WordInfo{Name: "Tool length offset index", ModalGroup: 0, Ordering: 999})
	t.AddLetter('I', types.WordInfo{Name: "X-axis offset for arcs or G87 canned cycles", ModalGroup: 0, Ordering: 999})
	t.AddLetter('J', types.WordInfo{Name: "Y-axis offset for arcs or G87 canned cycles", ModalGroup: 0, Ordering: 999})
	t.AddLetter('K', types.WordInfo{Name: "Z-axis offset for arcs or G87 canned cycles", ModalGroup: 0, Ordering: 999})
	t.AddLetter('G', types.WordInfo{Name: "General function", ModalGroup: 0, Ordering: 999})
	t.AddLetter('L', types.WordInfo{Name: "Number of repetitions of canned cycle, key used in G10", ModalGroup: 0, Ordering: 999})
	t.AddLetter('M', types.WordInfo{Name: "Miscellaneous", ModalGroup: 0, Ordering: 999})
	t.AddLetter('P', types.WordInfo{Name: "Dwell time in canned cycles or G4, key used in G10", ModalGroup: 0, Ordering: 999})
	t.AddLetter('Q', types.WordInfo{Name: "Feed increment in G83 canned cycle", ModalGroup: 0, Ordering: 999})
	t.AddLetter('R', types.WordInfo{Name: "Arc radius, canned cycle plane", ModalGroup: 0, Ordering: 999})

	// Non-modal.
	t.AddWord('G', "4", types.WordInfo{Name: "Dwell", ModalGroup: 0, Ordering: 100})
	t.AddWord('G', "10", types.WordInfo{Name: "Coordinate system or tool table data", ModalGroup: 0, Ordering: 190})
	t.AddWord('G', "28", types.WordInfo{Name: "Go/set predefined position", ModalGroup: 0, Ordering: 190})
	t.AddWord('G', "30", types.WordInfo{Name: "Go/set predefined position", ModalGroup: 0, Ordering: 190})
	t.AddWord('G', "53", types.WordInfo{Name: "Move in machine coordinates", ModalGroup: 0, Ordering: 200})
	t.AddWord('G', "92", types.WordInfo{Name: "Coordinate system offset", ModalGroup: 0, Ordering: 190})
	t.AddWord('G', "92.1", types.WordInfo{Name: "Reset G92 offsets", ModalGroup: 0, Ordering: 190})
	t.AddWord('G', "92.2", types.WordInfo{Name: "Reset G92 offsets", ModalGroup: 0, Ordering: 190})
	t.AddWord('G', "92.3", types.WordInfo{Name: "Restore G92 offsets", ModalGroup: 0, Ordering: 190})

	// Modal group 1 (motion).
	t.AddWord('G', "0", types.WordInfo{Name: "Rapid move", ModalGroup: 1, Ordering: 210})
	t.AddWord('G', "1", types.WordInfo{Name: "Linear move", ModalGroup: 1, Ordering: 210})
	t.AddWord('G', "2", types.WordInfo{Name: "Clockwise arc", ModalGroup: 1, Ordering: 210})
	t.AddWord('G', "3", types.WordInfo{Name: "Counterclockwise arc", ModalGroup: 1, Ordering: 210})
	t.AddWord('G', "38.2", types.WordInfo{Name: "Straight probe (towards piece with alarm)", ModalGroup: 1, Ordering: 210})
	t.AddWord('G', "80", types.WordInfo{Name: "Cancel canned cycle", ModalGroup: 1, Ordering: 210})
	t.AddWord('G', "81", types.WordInfo{Name: "Drilling cycle", ModalGroup: 1, Ordering: 210})
	t.AddWord('G', "82", types.WordInfo{Name: "Drilling cycle, dwell", ModalGroup: 1, Ordering: 210})
	t.AddWord('G', "83", types.WordInfo{Name: "Drilling cycle, peck", ModalGroup: 1, Ordering: 210})
	t.AddWord('G', "84", types.WordInfo{Name: "Right-hand tapping cycle, dwell", ModalGroup: 1, Ordering: 210})
	t.AddWord('G', "85", types.WordInfo{Name: "Boring cycle, feed out", ModalGroup: 1, Ordering: 210})
	t.AddWord('G', "86", types.WordInfo{Name: "Boring cycle, dwell", ModalGroup: 1, Ordering: 210})
	t.AddWord('G', "87", types.WordInfo{Name: "Back boring cycle", ModalGroup: 1, Ordering: 210})
	t.AddWord('G', "88", types.WordInfo{Name: "Boring cycle, dwell", ModalGroup: 1, Ordering: 210})
	t.AddWord('G', "89", types.WordInfo{Name: "Boring cycle, dwell", ModalGroup: 1, Ordering: 210})

	// Modal group 2 (plane selection).
	t.AddWord('G', "17", types.WordInfo{Name: "Select XY plane", ModalGroup: 2, Ordering: 110})
	t.AddWord('G', "18", types.WordInfo{Name: "Select ZX plane", ModalGroup: 2, Ordering: 110})
	t.AddWord('G', "19", types.WordInfo{Name: "Select YZ plane", ModalGroup: 2, Ordering: 110})

	// Modal group 3 (distance mode).
	t.AddWord('G', "90", types.WordInfo{Name: "Absolute distance mode", ModalGroup: 3, Ordering: 170})
	t.AddWord('G', "91", types.WordInfo{Name: "Incremental distance mode", ModalGroup: 3, Ordering: 170})

	// Modal group 5 (feed rate mode).
	t.AddWord('G', "93", types.WordInfo{Name: "Inverse time mode", ModalGroup: 5, Ordering: 20})
	t.AddWord('G', "94", types.WordInfo{Name: "Units per minute mode", ModalGroup: 5, Ordering: 20})

	// Modal group 6 (units).
	t.AddWord('G', "20", types.WordInfo{Name: "Use inches", ModalGroup: 6, Ordering: 120})
	t.AddWord('G', "21", types.WordInfo{Name: "Use mm", ModalGroup: 6, Ordering: 120})

	// Modal group 7 (cutter radius compensation).
	t.AddWord('G', "40", types.WordInfo{Name: "Cutter radius compensation off", ModalGroup: 7, Ordering: 130})
	t.AddWord('G', "41", types.WordInfo{Name: "Cutter compensation (left of path)", ModalGroup: 7, Ordering: 130})
	t.AddWord('G', "42", types.WordInfo{Name: "Cutter compensation (right of path)", ModalGroup: 7, Ordering: 130})

	// Modal group 8 (tool length offset).
	t.AddWord('G', "43", types.WordInfo{Name: "Tool length offset", ModalGroup: 8, Ordering: 140})
	t.AddWord('G', "49", types.WordInfo{Name: "Cancel tool length compensation", ModalGroup: 8, Ordering: 140})

	// Modal group 10 (canned cycle return level).
	t.AddWord('G', "98", types.WordInfo{Name: "Canned cycle return level", ModalGroup: 10, Ordering: 180})
	t.AddWord('G', "99", types.WordInfo{Name: "Canned cycle return level", ModalGroup: 10, Ordering: 180})

	// Modal group 12 (coordinate system selection).
	t.AddWord('G', "54", types.WordInfo{Name: "Select coordinate system 1", ModalGroup: 12, Ordering: 150})
	t.AddWord('G', "55", types.WordInfo{Name: "Select coordinate system 2", ModalGroup: 12, Ordering: 150})
	t.AddWord('G', "56", types.WordInfo{Name: "Select coordinate system 3", ModalGroup: 12, Ordering: 150})
	t.AddWord('G', "57", types.WordInfo{Name: "Select coordinate system 4", ModalGroup: 12, Ordering: 150})
	t.AddWord('G', "58", types.WordInfo{Name: "Select coordinate system 5", ModalGroup: 12, Ordering: 150})
	t.AddWord('G', "59", types.WordInfo{Name: "Select coordinate system 6", ModalGroup: 12, Ordering: 150})
	t.AddWord('G', "59.1", types.WordInfo{Name: "Select coordinate system 7", ModalGroup: 12, Ordering: 150})
	t.AddWord('G', "59.2", types.WordInfo{Name: "Select coordinate system 8", ModalGroup: 12, Ordering: 150})
	t.AddWord('G', "59.3", types.WordInfo{Name: "Select coordinate system 9", ModalGroup: 12, Ordering: 150})

	// Modal group 13 (path control mode).
	t.AddWord('G', "61", types.WordInfo{Name: "Exact path mode", ModalGroup: 13, Ordering: 160})
	t.AddWord('G', "61.1", types.WordInfo{Name: "Exact stop mode", ModalGroup: 13, Ordering: 160})
	t.AddWord('G', "64", types.WordInfo{Name: "Path blending", ModalGroup: 13, Ordering: 160})

	// M-code modal group 4 (stopping).
	t.AddWord('M', "0", types.WordInfo{Name: "Pause", ModalGroup: 4, Ordering: 220})
	t.AddWord('M', "1", types.WordInfo{Name: "Optional stop", ModalGroup: 4, Ordering: 220})
	t.AddWord('M', "2", types.WordInfo{Name: "Program end", ModalGroup: 4, Ordering: 220})
	t.AddWord('M', "30", types.WordInfo{Name: "Program end, exchange pallet shuttles", ModalGroup: 4, Ordering: 220})

	// M-code modal group 6 (tool change).
	t.AddWord('M', "6", types.WordInfo{Name: "Change tool", ModalGroup: 6, Ordering: 60})

	// M-code modal group 7 (spindle).
	t.AddWord('M', "3", types.WordInfo{Name: "Spindle clockwise", ModalGroup: 7, Ordering: 70})
	t.AddWord('M', "4", types.WordInfo{Name: "Spindle counterclockwise", ModalGroup: 7, Ordering: 70})
	t.AddWord('M', "5", types.WordInfo{Name: "Stop spindle", ModalGroup: 7, Ordering: 70})

	// M-code modal group 8 (coolant).
	t.AddWord('M', "7", types.WordInfo{Name: "Mist coolant on", ModalGroup: 8, Ordering: 80})
	t.AddWord('M', "8", types.WordInfo{Name: "Flood coolant on", ModalGroup: 8, Ordering: 80})
	t.AddWord('M', "9", types.WordInfo{Name: "Coolant off", ModalGroup: 8, Ordering: 80})

	// M-code modal group 9 (override controls).
	t.AddWord('M', "48", types.WordInfo{Name: "Enable override controls", ModalGroup: 9, Ordering: 90})
	t.AddWord('M', "49", types.WordInfo{Name: "Disable override controls", ModalGroup: 9, Ordering: 90})

	return t
}
