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

import "github.com/inq/sprout/vecstream"

// Recognize runs the full stanza/bar/stem recognition pipeline described
// in spec.md §4.C over one page's Geometry: staff width and stanza
// detection, bar detection, symbol-to-bar assignment, and stem
// classification, in that order (each stage depends on the output of
// the one before it).
func Recognize(geo *vecstream.Geometry) ([]*Stanza, error) {
	width, err := DetectWidth(geo)
	if err != nil {
		return nil, err
	}
	stanzas, err := DetectStanzas(geo, width)
	if err != nil {
		return nil, err
	}
	consumedBars := DetectBars(stanzas, geo.Vert)
	AssignSymbols(stanzas, geo.Symbols)
	if err := ClassifyStems(stanzas, geo.Vert, consumedBars); err != nil {
		return nil, err
	}
	// Each bar's Stems.Sort is called by voice.CollectStanza immediately
	// before attaching, not here: sorting now would be redundant work
	// repeated at collection time for no benefit.
	return stanzas, nil
}
