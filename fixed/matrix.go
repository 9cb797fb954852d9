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

// Vector is a homogeneous row (a, b, c) used to carry one row of an affine
// map, or a homogeneous point (x, y, 1) being transformed by one.
type Vector struct {
	A, B, C Fixed
}

// NewVector builds a Vector from three Fixed components.
func NewVector(a, b, c Fixed) Vector {
	return Vector{A: a, B: b, C: c}
}

// Dot returns the dot product of two homogeneous rows.
func (v Vector) Dot(w Vector) Fixed {
	return v.A.Mul(w.A) + v.B.Mul(w.B) + v.C.Mul(w.C)
}

// Matrix is a 2x3 affine map: two explicit rows, with the implicit third
// row (0, 0, 1) that makes the map affine rather than fully projective.
// Both rows are public-free Fixed vectors — no float ever participates in
// a matrix that has reached this package.
type Matrix struct {
	Row0, Row1 Vector
}

// NewMatrix builds the affine map
//
//	[ a c e ]
//	[ b d f ]
//	[ 0 0 1 ]
//
// from its six PDF-content-stream-style operands, matching the "cm"/"Tm"
// operand order from spec.md §4.B.
func NewMatrix(a, b, c, d, e, f Fixed) Matrix {
	return Matrix{
		Row0: NewVector(a, c, e),
		Row1: NewVector(b, d, f),
	}
}

// Identity returns the design-space identity matrix for a page of the
// given height: it flips the y axis so page-space (origin bottom-left)
// lands in the top-left-origin coordinate system everything downstream of
// vecstream assumes. spec.md §4.A parameterises this by page height
// rather than hard-coding it, unlike the source this module is modelled
// on.
func Identity(height Fixed) Matrix {
	return Matrix{
		Row0: NewVector(FromInt(1), FromInt(0), FromInt(0)),
		Row1: NewVector(FromInt(0), FromInt(-1), height),
	}
}

// Transform applies the affine map to the homogeneous point (x, y, 1).
func (m Matrix) Transform(x, y Fixed) (Fixed, Fixed) {
	p := NewVector(x, y, FromInt(1))
	return p.Dot(m.Row0), p.Dot(m.Row1)
}

// Mul composes two affine maps so that (a.Mul(b)).Transform(x, y) equals
// a.Transform(b.Transform(x, y)) — the mathematically correct 2x3
// composition. The source this module is modelled on doubled-up a
// translation component when composing; spec.md §4.A calls that out as a
// bug not to replicate, so the third column here is computed as the full
// A*t + a_col contraction, not a shortcut.
func (a Matrix) Mul(b Matrix) Matrix {
	r00 := a.Row0.A.Mul(b.Row0.A) + a.Row0.B.Mul(b.Row1.A)
	r01 := a.Row0.A.Mul(b.Row0.B) + a.Row0.B.Mul(b.Row1.B)
	r02 := a.Row0.A.Mul(b.Row0.C) + a.Row0.B.Mul(b.Row1.C) + a.Row0.C

	r10 := a.Row1.A.Mul(b.Row0.A) + a.Row1.B.Mul(b.Row1.A)
	r11 := a.Row1.A.Mul(b.Row0.B) + a.Row1.B.Mul(b.Row1.B)
	r12 := a.Row1.A.Mul(b.Row0.C) + a.Row1.B.Mul(b.Row1.C) + a.Row1.C

	return Matrix{
		Row0: NewVector(r00, r01, r02),
		Row1: NewVector(r10, r11, r12),
	}
}
