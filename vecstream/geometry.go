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

// Geometry is everything the interpreter recovers from one content
// stream: four disjoint deduplicated geometry sets, plus the ordered
// Symbols list, matching original_source/src/parser/mod.rs's Parser
// struct shape (a typed container owned by the caller) rather than four
// free-standing return values.
type Geometry struct {
	Horz    map[fixed.HorzLine]struct{}
	Vert    map[fixed.VertLine]struct{}
	Lines   map[fixed.Line]struct{}
	Quads   map[fixed.Quadrangle]struct{}
	Symbols []Symbol
}

func newGeometry() *Geometry {
	return &Geometry{
		Horz:  make(map[fixed.HorzLine]struct{}),
		Vert:  make(map[fixed.VertLine]struct{}),
		Lines: make(map[fixed.Line]struct{}),
		Quads: make(map[fixed.Quadrangle]struct{}),
	}
}

func (g *Geometry) addHorz(h fixed.HorzLine)      { g.Horz[h] = struct{}{} }
func (g *Geometry) addVert(v fixed.VertLine)      { g.Vert[v] = struct{}{} }
func (g *Geometry) addLine(l fixed.Line)          { g.Lines[l] = struct{}{} }
func (g *Geometry) addQuad(q fixed.Quadrangle)    { g.Quads[q] = struct{}{} }
func (g *Geometry) addSymbol(s Symbol)            { g.Symbols = append(g.Symbols, s) }
