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

// Package recognizer infers staves ("stanzas"), bars, and stem voice
// assignment from the geometry vecstream recovers, per spec.md §4.C.
package recognizer

import (
	"sort"

	"github.com/inq/sprout/fault"
	"github.com/inq/sprout/fixed"
	"github.com/inq/sprout/vecstream"
)

// DetectWidth finds the staff-line width: the largest HorzLine length
// whose occurrence count is a multiple of 5 (staff lines come in groups
// of 5), per spec.md §4.C.1.
func DetectWidth(geo *vecstream.Geometry) (fixed.Fixed, error) {
	counts := make(map[fixed.Fixed]int)
	var lengths []fixed.Fixed
	for h := range geo.Horz {
		l := h.Len()
		if counts[l] == 0 {
			lengths = append(lengths, l)
		}
		counts[l]++
	}
	sort.Slice(lengths, func(i, j int) bool { return lengths[i].Less(lengths[j]) })

	for i := len(lengths) - 1; i >= 0; i-- {
		if counts[lengths[i]]%5 == 0 {
			return lengths[i], nil
		}
	}
	return 0, fault.New(fault.NoStanza, "no staff-line-length class has a count divisible by 5")
}

// DetectStanzas partitions the horizontal lines into staff-line
// candidates (length exactly width) and extracts one Stanza per group of
// 10 consecutive distinct candidate y values, per spec.md §4.C.2.
func DetectStanzas(geo *vecstream.Geometry, width fixed.Fixed) ([]*Stanza, error) {
	var anchorX fixed.Fixed
	haveAnchor := false
	ySet := make(map[fixed.Fixed]struct{})
	for h := range geo.Horz {
		if h.Len() != width {
			continue
		}
		if !haveAnchor {
			anchorX = h.X1
			haveAnchor = true
		}
		ySet[h.Y] = struct{}{}
	}
	if !haveAnchor {
		return nil, fault.New(fault.NoStanza, "no staff anchor x detected")
	}

	ys := make([]fixed.Fixed, 0, len(ySet))
	for y := range ySet {
		ys = append(ys, y)
	}
	sort.Slice(ys, func(i, j int) bool { return ys[i].Less(ys[j]) })

	var stanzas []*Stanza
	for start := 0; start < len(ys); start += 10 {
		end := start + 10
		if end > len(ys) {
			end = len(ys)
		}
		chunk := ys[start:end]
		if len(chunk) < 10 {
			return nil, fault.New(fault.EmptyChunk, "trailing staff-line group has fewer than 10 lines")
		}
		top := chunk[0]
		bottom := chunk[9]

		topScale, err := uniformSpacing(chunk[0:5])
		if err != nil {
			return nil, err
		}
		bottomScale, err := uniformSpacing(chunk[5:10])
		if err != nil {
			return nil, err
		}
		if topScale != bottomScale {
			return nil, fault.New(fault.NoStanza, "non-uniform staff-line spacing between top and bottom groups")
		}

		stanzas = append(stanzas, newStanza(anchorX, top, width, bottom.Sub(top), topScale))
	}
	return stanzas, nil
}

// uniformSpacing asserts that the five given ys are equally spaced and
// returns that spacing.
func uniformSpacing(ys []fixed.Fixed) (fixed.Fixed, error) {
	if len(ys) != 5 {
		return 0, fault.New(fault.NoStanza, "expected 5 staff lines in group")
	}
	spacing := ys[1].Sub(ys[0])
	for i := 2; i < len(ys); i++ {
		if ys[i].Sub(ys[i-1]) != spacing {
			return 0, fault.New(fault.NoStanza, "staff-line spacing is not uniform")
		}
	}
	return spacing, nil
}

// DetectBars scans the remaining (non-staff-line) VertLines for lines
// that span a stanza's full height; each such line becomes a Bar, per
// spec.md §4.C.3. Consumed lines are returned so callers can route the
// rest to stem classification.
func DetectBars(stanzas []*Stanza, vert map[fixed.VertLine]struct{}) map[fixed.VertLine]struct{} {
	consumed := make(map[fixed.VertLine]struct{})
	for v := range vert {
		for _, s := range stanzas {
			if s.insertBar(v.X, v.Y1, v.Y2) {
				consumed[v] = struct{}{}
				break
			}
		}
	}
	for _, s := range stanzas {
		s.sortBarsDroppingTrailing()
	}
	return consumed
}

// AssignSymbols claims each Symbol for the first stanza, scanned in
// reverse (bottom to top), whose top y is less than the symbol's y, then
// appends it to the last Bar within that stanza whose x is less than the
// symbol's x, per spec.md §4.C.4.
func AssignSymbols(stanzas []*Stanza, symbols []vecstream.Symbol) {
	for _, sym := range symbols {
		for i := len(stanzas) - 1; i >= 0; i-- {
			st := stanzas[i]
			if st.Y.Less(sym.Point.Y) {
				if bar := st.lastBarBefore(sym.Point.X); bar != nil {
					bar.Symbols = append(bar.Symbols, sym)
				}
				break
			}
		}
	}
}

// ClassifyStems classifies every VertLine not already consumed as a bar
// line as a stem candidate (high, low or mid voice), and pushes it into
// the corresponding sub-store of the last bar, in the first stanza that
// accepts it, whose x is less than the stem's x, per spec.md §4.C.5.
func ClassifyStems(stanzas []*Stanza, vert map[fixed.VertLine]struct{}, consumedBars map[fixed.VertLine]struct{}) error {
	for v := range vert {
		if _, isBar := consumedBars[v]; isBar {
			continue
		}
		if err := classifyOneStem(stanzas, v); err != nil {
			return err
		}
	}
	return nil
}

func classifyOneStem(stanzas []*Stanza, v fixed.VertLine) error {
	for _, st := range stanzas {
		five := st.Scale.MulInt(5)
		high := bandOverlaps(v.Y1, v.Y2, st.Y, st.Y.Add(five))
		low := bandOverlaps(v.Y1, v.Y2, st.Y.Add(st.Height).Sub(five), st.Y.Add(st.Height))
		mid := bandOverlaps(v.Y1, v.Y2, st.Y.Add(five), st.Y.Add(st.Height).Sub(five))

		if !high && !low && !mid {
			continue
		}
		if high && low {
			return fault.NewAt(fault.RecognitionFailure, "stem classified as both high and low voice", "VertLine", fixed.NewPoint(v.X, v.Y1))
		}

		bar := st.lastBarBefore(v.X)
		if bar == nil {
			continue
		}
		switch {
		case high:
			bar.Stems.High.push(v)
		case low:
			bar.Stems.Low.push(v)
		default:
			bar.Stems.Mid.push(v)
		}
		return nil
	}
	return nil
}

// bandOverlaps reports whether the interval [y1,y2] overlaps the band
// [bandY1,bandY2], using the "combined span is shorter than the sum of
// the two lengths" test spec.md §4.C.5 describes.
func bandOverlaps(y1, y2, bandY1, bandY2 fixed.Fixed) bool {
	lo := y1
	if bandY1.Less(lo) {
		lo = bandY1
	}
	hi := y2
	if hi.Less(bandY2) {
		hi = bandY2
	}
	span := hi.Sub(lo)
	sum := y2.Sub(y1) + bandY2.Sub(bandY1)
	return span.Less(sum)
}
