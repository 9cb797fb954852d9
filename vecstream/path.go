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

import (
	"github.com/inq/sprout/fault"
	"github.com/inq/sprout/fixed"
)

// polygon accumulates the vertices of one path, in page coordinates,
// between a "m" and the next finalisation ("m", "h", or the end of the
// stream). This mirrors the
// teacher's cff Glyph path builder (MoveTo/LineTo accumulation, finished
// by segment count) rather than the source's "PolygonRes" enum: the
// finishing classification lives in finish() below instead of being
// spread across call sites.
type polygon struct {
	points []fixed.Point
}

func newPolygon(start fixed.Point) *polygon {
	return &polygon{points: []fixed.Point{start}}
}

func (p *polygon) lineTo(pt fixed.Point) {
	p.points = append(p.points, pt)
}

// segments returns how many line segments this path accumulated.
func (p *polygon) segments() int {
	if len(p.points) == 0 {
		return 0
	}
	return len(p.points) - 1
}

// finish classifies the accumulated path per spec.md §4.B's path
// finalisation rule and folds the result into g. It returns a
// *fault.Error of Kind PathShape for any segment count other than 0, 1 or
// 4.
func (p *polygon) finish(g *Geometry) error {
	switch p.segments() {
	case 0:
		return nil
	case 1:
		p0, p1 := p.points[0], p.points[1]
		switch {
		case p0.Y == p1.Y:
			g.addHorz(fixed.NewHorzLine(p0.X, p1.X, p0.Y))
		case p0.X == p1.X:
			g.addVert(fixed.NewVertLine(p0.X, p0.Y, p1.Y))
		default:
			g.addLine(fixed.Line{X1: p0.X, Y1: p0.Y, X2: p1.X, Y2: p1.Y})
		}
		return nil
	case 4:
		g.addQuad(fixed.Quadrangle{
			P1: p.points[0],
			P2: p.points[1],
			P3: p.points[2],
			P4: p.points[3],
		})
		return nil
	default:
		return fault.NewAt(fault.PathShape, "unsupported path segment count", "path", p.points[0])
	}
}
