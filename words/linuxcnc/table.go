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

// Package linuxcnc holds the LinuxCNC word table: the baseline
// RS274/NGC table extended with LinuxCNC-specific words, minus the two
// words LinuxCNC does not support.
package linuxcnc

import (
	"github.com/kirberich/rs274-parser/types"
	"github.com/kirberich/rs274-parser/words"
	"github.com/kirberich/rs274-parser/words/rs274ngc"
)

// Table returns a fresh LinuxCNC word table: every baseline RS274/NGC word
// except G84 and G87 (LinuxCNC does not implement the right-hand tapping
// and back boring cycles), plus LinuxCNC's extension words.
func Table() *words.Table {
	t := rs274ngc.Table().Clone()

	t.Remove('G', "84")
	t.Remove('G', "87")

	// The ordering/modal-group values below are transcribed as given in the
	// original constants: LinuxCNC's documentation doesn't pin all of these
	// down precisely.
	t.AddWord('G', "5", types.WordInfo{Name: "Cubic spline", ModalGroup: 1, Ordering: 210})
	t.AddWord('G', "5.1", types.WordInfo{Name: "Quadratic spline", ModalGroup: 1, Ordering: 210})
	t.AddWord('G', "5.2", types.WordInfo{Name: "NURBS block", ModalGroup: 1, Ordering: 210})
	t.AddWord('G', "5.3", types.WordInfo{Name: "NURBS block", ModalGroup: 1, Ordering: 210})
	t.AddWord('G', "7", types.WordInfo{Name: "Lathe diameter mode", ModalGroup: 15, Ordering: 170})
	t.AddWord('G', "8", types.WordInfo{Name: "Lathe radius mode", ModalGroup: 15, Ordering: 170})
	t.AddWord('G', "17.1", types.WordInfo{Name: "Select UV plane", ModalGroup: 2, Ordering: 110})
	t.AddWord('G', "18.1", types.WordInfo{Name: "Select WU plane", ModalGroup: 2, Ordering: 110})
	t.AddWord('G', "19.1", types.WordInfo{Name: "Select WU plane", ModalGroup: 2, Ordering: 110})
	t.AddWord('G', "33", types.WordInfo{Name: "Spindle synchronized motion", ModalGroup: 1, Ordering: 210})
	t.AddWord('G', "33.1", types.WordInfo{Name: "Rigid tapping", ModalGroup: 1, Ordering: 210})
	t.AddWord('G', "38.3", types.WordInfo{Name: "Straight probe (towards piece without alarm)", ModalGroup: 1, Ordering: 210})
	t.AddWord('G', "38.4", types.WordInfo{Name: "Straight probe (away from piece with alarm)", ModalGroup: 1, Ordering: 210})
	t.AddWord('G', "38.5", types.WordInfo{Name: "Straight probe (away from piece without alarm)", ModalGroup: 1, Ordering: 210})
	t.AddWord('G', "41.1", types.WordInfo{Name: "Dynamic cutter compensation (left of path)", ModalGroup: 7, Ordering: 130})
	t.AddWord('G', "42.1", types.WordInfo{Name: "Dynamic cutter compensation (right of path)", ModalGroup: 7, Ordering: 130})
	t.AddWord('G', "43.1", types.WordInfo{Name: "Dynamic tool length offset", ModalGroup: 8, Ordering: 140})
	t.AddWord('G', "43.2", types.WordInfo{Name: "Apply additional tool length offset", ModalGroup: 8, Ordering: 140})
	t.AddWord('G', "52", types.WordInfo{Name: "Local coordinate system offset", ModalGroup: 0, Ordering: 190})
	t.AddWord('G', "73", types.WordInfo{Name: "Drilling cycle with chip breaking", ModalGroup: 1, Ordering: 210})
	t.AddWord('G', "74", types.WordInfo{Name: "Left-hand tapping cycle, dwell", ModalGroup: 1, Ordering: 210})
	t.AddWord('G', "76", types.WordInfo{Name: "Threading cycle", ModalGroup: 1, Ordering: 210})
	t.AddWord('G', "90.1", types.WordInfo{Name: "Arc absolute distance mode", ModalGroup: 4, Ordering: 170})
	t.AddWord('G', "91.1", types.WordInfo{Name: "Arc incremental distance mode", ModalGroup: 4, Ordering: 170})
	t.AddWord('G', "95", types.WordInfo{Name: "Units per revolution mode", ModalGroup: 5, Ordering: 20})
	t.AddWord('G', "96", types.WordInfo{Name: "Spindle constant surface speed mode", ModalGroup: 14, Ordering: 170})
	t.AddWord('G', "97", types.WordInfo{Name: "Spindle RPM mode", ModalGroup: 14, Ordering: 170})
	t.AddWord('M', "50", types.WordInfo{Name: "Feed override control", ModalGroup: 9, Ordering: 90})
	t.AddWord('M', "51", types.WordInfo{Name: "Spindle speed override control", ModalGroup: 9, Ordering: 90})
	t.AddWord('M', "52", types.WordInfo{Name: "Adaptive feed control", ModalGroup: 9, Ordering: 90})
	t.AddWord('M', "53", types.WordInfo{Name: "Feed stop control", ModalGroup: 9, Ordering: 90})
	t.AddWord('M', "61", types.WordInfo{Name: "Set current tool", ModalGroup: 6, Ordering: 60})
	t.AddWord('M', "62", types.WordInfo{Name: "Digital output control", ModalGroup: 5, Ordering: 55})
	t.AddWord('M', "63", types.WordInfo{Name: "Digital output control", ModalGroup: 5, Ordering: 55})
	t.AddWord('M', "64", types.WordInfo{Name: "Digital output control", ModalGroup: 5, Ordering: 55})
	t.AddWord('M', "65", types.WordInfo{Name: "Digital output control", ModalGroup: 5, Ordering: 55})
	t.AddWord('M', "66", types.WordInfo{Name: "Wait on input", ModalGroup: 5, Ordering: 55})
	t.AddWord('M', "67", types.WordInfo{Name: "Analog output, synchronized", ModalGroup: 5, Ordering: 55})
	t.AddWord('M', "68", types.WordInfo{Name: "Analog output, immediate", ModalGroup: 5, Ordering: 55})
	t.AddWord('M', "70", types.WordInfo{Name: "Save modal state", ModalGroup: 10, Ordering: 75})
	t.AddWord('M', "71", types.WordInfo{Name: "Save modal state", ModalGroup: 10, Ordering: 75})
	t.AddWord('M', "72", types.WordInfo{Name: "Save modal state", ModalGroup: 10, Ordering: 75})

	return t
}
