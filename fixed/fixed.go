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

// Package fixed provides a hashable, totally-ordered fixed-point number
// type used for every piece of geometry in this module. Floats are only
// ever accepted at the outermost parsing boundary and are narrowed to
// Fixed immediately; no float leaks into a map key, a set element, or an
// equality comparison anywhere downstream.
package fixed

import "fmt"

// scale is the number of Fixed units per integer unit. The source this
// module is modelled on uses a decimal scale of 10000; we keep that
// exactly so the arithmetic (and its rounding behaviour) matches.
const scale = 10000

// Fixed is a signed fixed-point quantity with scale 1/10000. It is plain
// int64 underneath, so the zero value, equality, ordering and hashing all
// fall out of the language for free — exactly what spec.md §3 requires of
// every geometry primitive.
type Fixed int64

// FromInt converts a whole number to Fixed exactly.
func FromInt(v int64) Fixed {
	return Fixed(v * scale)
}

// FromReal narrows a float64 operand to Fixed. This is the one place a
// float is allowed to touch this package; callers at the vecstream
// boundary call this once per operand and never hold onto the float.
func FromReal(v float64) Fixed {
	return Fixed(v * scale)
}

// ToReal widens a Fixed back to float64, for callers (the debug
// visualiser) that need real arithmetic again after recognition.
func (f Fixed) ToReal() float64 {
	return float64(f) / scale
}

// Add returns f+g.
func (f Fixed) Add(g Fixed) Fixed {
	return f + g
}

// Sub returns f-g.
func (f Fixed) Sub(g Fixed) Fixed {
	return f - g
}

// Mul returns f*g, truncating the rescale by the fixed-point scale — the
// same truncating-integer-divide contract as cff.Fixed16's operand
// arithmetic, just over a decimal scale instead of a binary one.
func (f Fixed) Mul(g Fixed) Fixed {
	return Fixed(int64(f) * int64(g) / scale)
}

// MulReal returns f scaled by a real number.
func (f Fixed) MulReal(g float64) Fixed {
	return Fixed(float64(f) * g)
}

// MulInt returns f scaled by a whole number.
func (f Fixed) MulInt(g int64) Fixed {
	return f * Fixed(g)
}

// Div returns the real-valued ratio f/g. Division is the one operation
// that legitimately produces a float: a ratio of two lengths is
// dimensionless and has no natural fixed-point home.
func (f Fixed) Div(g Fixed) float64 {
	return float64(f) / float64(g)
}

// Less reports whether f orders strictly before g.
func (f Fixed) Less(g Fixed) bool {
	return f < g
}

func (f Fixed) String() string {
	return fmt.Sprintf("%.4f", f.ToReal())
}
