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

package vecstream

import "github.com/inq/sprout/fixed"

// SymbolClass is the broad category of a point symbol.
type SymbolClass int

const (
	// Head is a notehead; Size is its head size (1=whole, 2=half, 4=quarter).
	Head SymbolClass = iota
	// Wing is a duration-subdivision flag; Size is 8 or 16.
	Wing
	// Rest is a rest glyph; Size is its denominator (1,2,4,8,16).
	Rest
)

// Symbol is a typed point recovered from a Tj show-string operation.
type Symbol struct {
	Class SymbolClass
	Size  uint8
	Point fixed.Point
}

// codepoints is the small fixed glyph-index-pair -> symbol lookup table
// from spec.md §4.B, observed from the source's glyph indices. Any string
// not present here produces no Symbol and no error.
var codepoints = map[[2]byte]Symbol{
	{0x00, 0x07}: {Class: Head, Size: 4},  // quarter notehead
	{0x00, 0x08}: {Class: Wing, Size: 8},  // eighth flag
	{0x00, 0x09}: {Class: Rest, Size: 8},  // eighth rest
	{0x00, 0x0A}: {Class: Head, Size: 1},  // whole notehead
	{0x00, 0x10}: {Class: Head, Size: 2},  // half notehead
	{0x00, 0x03}: {Class: Rest, Size: 1},  // whole rest
}

// lookupCodepoint returns the symbol kind for a 2-byte glyph index pair,
// and false if the bytes are not a recognised codepoint.
func lookupCodepoint(raw []byte) (Symbol, bool) {
	if len(raw) != 2 {
		return Symbol{}, false
	}
	s, ok := codepoints[[2]byte{raw[0], raw[1]}]
	return s, ok
}
