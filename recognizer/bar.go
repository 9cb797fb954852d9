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
	"github.com/inq/sprout/fixed"
	"github.com/inq/sprout/vecstream"
)

// Bar is identified by its leftmost x and owns the Symbols falling within
// its horizontal span plus the Stems classified into it. Ownership is
// unidirectional per spec.md §9: a Bar never holds a back-pointer to its
// Stanza; callers that need stanza parameters (scale, y, height) pass
// them in explicitly.
type Bar struct {
	X       fixed.Fixed
	Symbols []vecstream.Symbol
	Stems   Stems
}

func newBar(x fixed.Fixed) *Bar {
	return &Bar{X: x}
}
