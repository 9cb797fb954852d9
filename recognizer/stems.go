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
	"golang.org/x/exp/slices"

	"github.com/inq/sprout/fixed"
	"github.com/inq/sprout/vecstream"
)

// Tunables exposes the ad-hoc constants spec.md §9 flags as implementer
// knobs rather than hard-coded literals: stem-attach flexibility
// (default scale/2) and the head-size learning slack factor (default
// 1.1x).
type Tunables struct {
	StemFlexRatio float64
	HeadSizeSlack float64
}

// DefaultTunables returns the constants observed in the source this
// module is modelled on.
func DefaultTunables() Tunables {
	return Tunables{StemFlexRatio: 0.5, HeadSizeSlack: 1.1}
}

// stemStore is one of a bar's three stem sub-stores (high, low, mid): a
// "current" stem most recently attached in this bar, plus an ordered
// remainder, matching original_source/src/recognizer/bar/stems.rs's
// Store exactly: promotion from the remainder to current happens only on
// a successful attach.
type stemStore struct {
	current *fixed.VertLine
	rest    []fixed.VertLine
}

func (s *stemStore) push(v fixed.VertLine) {
	s.rest = append(s.rest, v)
}

// sort orders the remainder by descending x. Must only be called before
// any attach has happened in this bar (current must still be nil),
// matching the source's assertion.
func (s *stemStore) sort() {
	if s.current != nil {
		panic("stemStore.sort called with a current stem already set")
	}
	slices.SortFunc(s.rest, func(a, b fixed.VertLine) int {
		switch {
		case b.X.Less(a.X):
			return -1
		case a.X.Less(b.X):
			return 1
		default:
			return 0
		}
	})
}

func attachable(stem fixed.VertLine, obj vecstream.Symbol, flexibility fixed.Fixed, headSize *fixed.Fixed) bool {
	withinX := obj.Point.X.Less(stem.X) || obj.Point.X == stem.X
	if withinX && headSize != nil {
		withinX = !(obj.Point.X.Add(*headSize)).Less(stem.X)
	}
	lowBound := stem.Y1.Sub(flexibility)
	highBound := stem.Y2.Add(flexibility)
	withinY := lowBound.Less(obj.Point.Y) && obj.Point.Y.Less(highBound)
	return withinX && withinY
}

// attach tries the current stem first, then the top of the remainder,
// promoting it to current on success. It reports whether obj attached to
// this sub-store.
func (s *stemStore) attach(obj vecstream.Symbol, flexibility fixed.Fixed, headSize *fixed.Fixed) bool {
	if s.current != nil && attachable(*s.current, obj, flexibility, headSize) {
		return true
	}
	if n := len(s.rest); n > 0 {
		top := s.rest[n-1]
		if attachable(top, obj, flexibility, headSize) {
			s.rest = s.rest[:n-1]
			s.current = &top
			return true
		}
	}
	return false
}

func (s *stemStore) headSizeCandidate(obj vecstream.Symbol) (fixed.Fixed, bool) {
	if len(s.rest) == 0 {
		return 0, false
	}
	// rest is sorted descending by x, so the topmost (closest) stem still
	// unattached is the last element.
	topmost := s.rest[len(s.rest)-1]
	return topmost.X.Sub(obj.Point.X), true
}

func (s *stemStore) reset() {
	s.current = nil
}

// Stems holds a bar's three stem sub-stores.
type Stems struct {
	High, Low, Mid stemStore
}

// Sort orders every sub-store's remainder by descending x. Call once per
// bar before voice collection begins.
func (s *Stems) Sort() {
	s.High.sort()
	s.Low.sort()
	s.Mid.sort()
}

// Reset clears the "current" stem of every sub-store, for the start of a
// new voice-collection pass over this bar.
func (s *Stems) Reset() {
	s.High.reset()
	s.Low.reset()
	s.Mid.reset()
}

// HeadSizeCandidate returns the minimum, over every non-empty sub-store,
// of (topmost stem.x - obj.x), used to learn a stanza's head size on the
// first attachment, per spec.md §4.D.
func (s *Stems) HeadSizeCandidate(obj vecstream.Symbol) (fixed.Fixed, bool) {
	var best fixed.Fixed
	found := false
	for _, store := range []*stemStore{&s.High, &s.Low, &s.Mid} {
		if c, ok := store.headSizeCandidate(obj); ok {
			if !found || c.Less(best) {
				best = c
				found = true
			}
		}
	}
	return best, found
}

// Attach tries to attach obj to any of the three sub-stores, in
// high/low/mid order, and reports whether any accepted it.
func (s *Stems) Attach(obj vecstream.Symbol, flexibility fixed.Fixed, headSize *fixed.Fixed) bool {
	high := s.High.attach(obj, flexibility, headSize)
	low := s.Low.attach(obj, flexibility, headSize)
	mid := s.Mid.attach(obj, flexibility, headSize)
	return high || low || mid
}
