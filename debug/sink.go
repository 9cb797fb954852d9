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

// Package debug renders recovered geometry for visual inspection. It is
// an out-of-scope collaborator per spec.md §1/§6, specified only by
// interface: nothing in vecstream or recognizer depends on it, and it
// never feeds back into recognition.
package debug

import "github.com/inq/sprout/fixed"

// Sink receives recovered geometry, one primitive at a time, for
// rendering. Grounded on original_source/src/svg/mod.rs's method set
// (horz_line/vert_line), extended to the other three primitive shapes
// vecstream.Geometry can hold.
type Sink interface {
	HorzLine(h fixed.HorzLine)
	VertLine(v fixed.VertLine)
	Line(l fixed.Line)
	Quadrangle(q fixed.Quadrangle)
	Point(p fixed.Point)
}
