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

func TestFromRealRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 1, -1, 3.1415, -123.4567, 999999.9999} {
		got := FromReal(v).ToReal()
		if diff := got - v; diff > 1.0/scale || diff < -1.0/scale {
			t.Errorf("FromReal(%v).ToReal() = %v, want within 1/%d", v, got, scale)
		}
	}
}

func TestAddCommutativeAssociative(t *testing.T) {
	a, b, c := FromInt(3), FromInt(-7), FromReal(2.5)
	if a.Add(b) != b.Add(a) {
		t.Error("Add is not commutative")
	}
	if a.Add(b).Add(c) != a.Add(b.Add(c)) {
		t.Error("Add is not associative")
	}
}

func TestMulCommutative(t *testing.T) {
	a, b := FromReal(2.5), FromReal(-1.25)
	if a.Mul(b) != b.Mul(a) {
		t.Error("Mul is not commutative")
	}
}

func TestMulIdentity(t *testing.T) {
	a := FromReal(42.5)
	one := FromReal(1.0)
	if a.Mul(one) != a {
		t.Errorf("Mul(1.0) = %v, want %v", a.Mul(one), a)
	}
}

func TestOrdering(t *testing.T) {
	if !FromInt(1).Less(FromInt(2)) {
		t.Error("1 should order before 2")
	}
	if FromInt(2).Less(FromInt(1)) {
		t.Error("2 should not order before 1")
	}
}

func TestHorzLineCanonicalises(t *testing.T) {
	h := NewHorzLine(FromInt(110), FromInt(10), FromInt(20))
	if h.X1 != FromInt(10) || h.X2 != FromInt(110) {
		t.Errorf("NewHorzLine did not canonicalise: %+v", h)
	}
	if h.Len() != FromInt(100) {
		t.Errorf("Len() = %v, want 100", h.Len())
	}
}

func TestVertLineCanonicalises(t *testing.T) {
	v := NewVertLine(FromInt(5), FromInt(40), FromInt(10))
	if v.Y1 != FromInt(10) || v.Y2 != FromInt(40) {
		t.Errorf("NewVertLine did not canonicalise: %+v", v)
	}
}
