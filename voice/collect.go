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

import (
	"golang.org/x/exp/slices"

	"github.com/inq/sprout/fault"
	"github.com/inq/sprout/fixed"
	"github.com/inq/sprout/recognizer"
	"github.com/inq/sprout/vecstream"
)

// CollectStanza runs the bar-by-bar symbol-to-stem attachment and
// pitch-mapping pass over one Stanza, returning the two channel
// Collectors fully populated in bar order, per spec.md §4.D. Channel 0
// is the lower voice, channel 1 the upper voice.
func CollectStanza(st *recognizer.Stanza, tunables recognizer.Tunables) ([2]*Collector, error) {
	channels := [2]*Collector{NewCollector(), NewCollector()}

	for _, bar := range st.Bars {
		if err := collectBar(st, bar, channels, tunables); err != nil {
			return channels, err
		}
	}
	channels[0].Finish()
	channels[1].Finish()
	return channels, nil
}

func collectBar(st *recognizer.Stanza, bar *recognizer.Bar, channels [2]*Collector, tunables recognizer.Tunables) error {
	symbols := make([]vecstream.Symbol, len(bar.Symbols))
	copy(symbols, bar.Symbols)
	slices.SortFunc(symbols, func(a, b vecstream.Symbol) int {
		switch {
		case a.Point.X.Less(b.Point.X):
			return -1
		case b.Point.X.Less(a.Point.X):
			return 1
		case b.Point.Y.Less(a.Point.Y):
			return -1
		case a.Point.Y.Less(b.Point.Y):
			return 1
		default:
			return 0
		}
	})

	bar.Stems.Sort()
	bar.Stems.Reset()
	channels[0].Prepare()
	channels[1].Prepare()

	five := st.Scale.MulInt(5)
	six := st.Scale.MulInt(6)
	var borders [2]fixed.Fixed
	borders[0] = st.Y.Add(st.Height).Sub(six)
	borders[1] = st.Y.Add(five)
	lowerThreshold := st.Y.Add(st.Height).Sub(five)

	flexibility := st.Scale.MulReal(tunables.StemFlexRatio)

	for _, sym := range symbols {
		channel := 1
		if !sym.Point.Y.Less(lowerThreshold) {
			channel = 0
		}

		switch sym.Class {
		case vecstream.Head:
			if st.HeadSize == nil {
				if candidate, ok := bar.Stems.HeadSizeCandidate(sym); ok && st.Scale.Less(candidate) {
					hs := candidate.MulReal(tunables.HeadSizeSlack)
					st.HeadSize = &hs
				}
			}
			if !bar.Stems.Attach(sym, flexibility, st.HeadSize) {
				return fault.NewAt(fault.RecognitionFailure, "notehead did not attach to any stem", "Symbol", sym.Point)
			}
			d := borders[channel].Sub(sym.Point.Y).Div(st.Scale)
			switch sym.Size {
			case 1:
				channels[channel].PutWhole(sym.Point.X, d)
			case 2:
				channels[channel].PutHalf(sym.Point.X, d)
			default:
				channels[channel].PutQuarter(sym.Point.X, d)
			}
		case vecstream.Wing:
			if sym.Size == 8 {
				channels[channel].PutWing(sym.Point.X)
			}
		case vecstream.Rest:
			channels[channel].PutRest(sym.Point.X, sym.Size)
		}
	}
	return nil
}
