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

import "testing"

func TestIdentityTransform(t *testing.T) {
	m := Identity(FromInt(900))
	x, y := m.Transform(FromInt(10), FromInt(20))
	if x != FromInt(10) {
		t.Errorf("x = %v, want 10", x)
	}
	if y != FromInt(880) {
		t.Errorf("y = %v, want 880 (900-20)", y)
	}
}

func TestMulCompositionMatchesSequentialTransform(t *testing.T) {
	a := NewMatrix(FromReal(2), FromReal(0), FromReal(0), FromReal(2), FromInt(10), FromInt(5))
	b := NewMatrix(FromReal(1), FromReal(0), FromReal(0), FromReal(1), FromInt(1), FromInt(1))

	x, y := FromInt(3), FromInt(4)

	bx, by := b.Transform(x, y)
	viaSequential0, viaSequential1 := a.Transform(bx, by)

	composed := a.Mul(b)
	viaComposed0, viaComposed1 := composed.Transform(x, y)

	if viaSequential0 != viaComposed0 || viaSequential1 != viaComposed1 {
		t.Errorf("composition mismatch: sequential=(%v,%v) composed=(%v,%v)",
			viaSequential0, viaSequential1, viaComposed0, viaComposed1)
	}
}

func TestMulIdentityMatrix(t *testing.T) {
	id := Matrix{
		Row0: NewVector(FromReal(1), FromReal(0), FromReal(0)),
		Row1: NewVector(FromReal(0), FromReal(1), FromReal(0)),
	}
	m := NewMatrix(FromReal(2), FromReal(0.5), FromReal(-0.5), FromReal(3), FromInt(7), FromInt(-2))
	composed := m.Mul(id)
	x, y := FromInt(5), FromInt(-5)
	a0, a1 := m.Transform(x, y)
	b0, b1 := composed.Transform(x, y)
	if a0 != b0 || a1 != b1 {
		t.Errorf("m * identity changed the transform: got (%v,%v) want (%v,%v)", b0, b1, a0, a1)
	}
}
