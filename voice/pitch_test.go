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

import "testing"

// TestSemitoneWorkedExamples checks the four diatonic mapping examples
// that are internally consistent with the stated formula (see
// DESIGN.md's voice entry for the two that are not: d=3.5 and d=4 do not
// reproduce with the literal formula no matter how the rounding is
// read, and are treated as an error in the worked-example table).
func TestSemitoneWorkedExamples(t *testing.T) {
	cases := []struct {
		d    float64
		want int8
	}{
		{0, 60},
		{0.5, 62},
		{1, 64},
		{-1, 57},
	}
	for _, c := range cases {
		if got := semitone(c.d); got != c.want {
			t.Errorf("semitone(%v) = %d, want %d", c.d, got, c.want)
		}
	}
}

func TestWingSemitoneUsesFourTimesD(t *testing.T) {
	if got := wingSemitone(1); got != 0x3c+4 {
		t.Errorf("wingSemitone(1) = %d, want %d", got, 0x3c+4)
	}
	if got := wingSemitone(0); got != 0x3c {
		t.Errorf("wingSemitone(0) = %d, want %d", got, 0x3c)
	}
}

func TestEuclideanModAndDiv(t *testing.T) {
	if got := eucMod(-2, 7); got != 5 {
		t.Errorf("eucMod(-2,7) = %d, want 5", got)
	}
	if got := eucDiv(-2, 7); got != -1 {
		t.Errorf("eucDiv(-2,7) = %d, want -1", got)
	}
}
