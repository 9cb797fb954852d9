// sprout - recovers symbolic music events from vector-graphics page content
// Copyright (C) 2026  The sprout authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package voice

import "math"

// middleC is the MIDI note number this module roots diatonic position 0
// at, per spec.md §4.D.
const middleC = 0x3c

// diatonicSteps holds the semitone offset of each of the 7 diatonic
// degrees within an octave, starting at C.
var diatonicSteps = [7]int{0, 2, 4, 5, 7, 9, 11}

// semitone maps a diatonic staff position d (0 = middle C, 0.5 = one
// line/space up, ...) to a MIDI note number, per spec.md §4.D:
// i = 2d, semitone = floor(i/7)*12 + diatonicSteps[i mod 7], with i's
// division and modulus both Euclidean so negative positions (below
// middle C) wrap the same way positive ones do.
func semitone(d float64) int8 {
	i := int(math.Round(d * 2))
	octave := eucDiv(i, 7)
	step := eucMod(i, 7)
	return int8(middleC + octave*12 + diatonicSteps[step])
}

// wingSemitone is the Wing-flush mapping spec.md §9 records as a
// suspected source bug rather than correcting: 4*d taken as an integer
// offset from middle C, not the diatonic formula used everywhere else.
// Kept as-is; see DESIGN.md for the decision.
func wingSemitone(d float64) int8 {
	return int8(middleC + int(4*d))
}

func eucDiv(a, b int) int {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}

func eucMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
