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

package recognizer

import (
	"sort"

	"github.com/inq/sprout/fixed"
)

// Stanza is one physical staff (spec.md §3's "staff pair", ten lines
// total): an anchor x, the y of its topmost staff line, its width,
// height (the span between top and bottom staff line) and scale (the
// constant staff-line spacing), plus the ordered Bars recovered within
// it. HeadSize is learned from the first successful notehead attachment
// and never revised thereafter.
type Stanza struct {
	X, Y, Width, Height, Scale fixed.Fixed
	Bars                       []*Bar
	HeadSize                   *fixed.Fixed
}

func newStanza(x, y, width, height, scale fixed.Fixed) *Stanza {
	return &Stanza{X: x, Y: y, Width: width, Height: height, Scale: scale}
}

// insertBar registers a Bar at vertLine.X if vertLine spans exactly the
// stanza's full height (top y to top+height), matching
// original_source/src/recognizer/stanza.rs::insert_bar. It reports
// whether the line was claimed.
func (s *Stanza) insertBar(x, y1, y2 fixed.Fixed) bool {
	if y1 != s.Y {
		return false
	}
	if y2 != s.Y.Add(s.Height) {
		return false
	}
	s.Bars = append(s.Bars, newBar(x))
	return true
}

// sortBarsDroppingTrailing sorts Bars ascending by x and drops the last
// one: it is the closing bar line and holds no musical content, matching
// original_source/src/recognizer/stanza.rs::sort_bars.
func (s *Stanza) sortBarsDroppingTrailing() {
	sort.Slice(s.Bars, func(i, j int) bool { return s.Bars[i].X.Less(s.Bars[j].X) })
	if len(s.Bars) > 0 {
		s.Bars = s.Bars[:len(s.Bars)-1]
	}
}

// lastBarBefore returns the last Bar whose x is strictly less than x, or
// nil if none qualifies. Used by both symbol-to-bar assignment (spec.md
// §4.C.4) and stem-to-bar assignment (§4.C.5).
func (s *Stanza) lastBarBefore(x fixed.Fixed) *Bar {
	var found *Bar
	for _, b := range s.Bars {
		if b.X.Less(x) {
			found = b
		}
	}
	return found
}
