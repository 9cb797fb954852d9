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

package fixed

// Point is a 2D point in page coordinates. Plain value type: comparable
// and hashable for free, as spec.md §3 requires of every point in the
// geometry sets.
type Point struct {
	X, Y Fixed
}

// NewPoint builds a Point from two Fixed coordinates.
func NewPoint(x, y Fixed) Point {
	return Point{X: x, Y: y}
}

// HorzLine is a horizontal segment with X1 <= X2 by construction.
type HorzLine struct {
	X1, X2, Y Fixed
}

// NewHorzLine canonicalises its two x endpoints so X1 <= X2 always holds,
// regardless of the order the path supplied them in.
func NewHorzLine(xa, xb, y Fixed) HorzLine {
	if xa > xb {
		xa, xb = xb, xa
	}
	return HorzLine{X1: xa, X2: xb, Y: y}
}

// Len returns the segment's length, X2-X1.
func (h HorzLine) Len() Fixed {
	return h.X2 - h.X1
}

// VertLine is a vertical segment with Y1 <= Y2 by construction.
type VertLine struct {
	X, Y1, Y2 Fixed
}

// NewVertLine canonicalises its two y endpoints so Y1 <= Y2 always holds.
func NewVertLine(x, ya, yb Fixed) VertLine {
	if ya > yb {
		ya, yb = yb, ya
	}
	return VertLine{X: x, Y1: ya, Y2: yb}
}

// Len returns the segment's length, Y2-Y1.
func (v VertLine) Len() Fixed {
	return v.Y2 - v.Y1
}

// Line is an arbitrary single segment, retained for the debug visualiser
// only; nothing downstream of vecstream consumes it.
type Line struct {
	X1, Y1, X2, Y2 Fixed
}

// Quadrangle is a closed 4-vertex path, retained for the debug visualiser
// only, in the order the path encountered its vertices.
type Quadrangle struct {
	P1, P2, P3, P4 Point
}
