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

package debug

import (
	"fmt"
	"io"

	"github.com/inq/sprout/fixed"
)

// SVG is a Sink that writes an SVG document incrementally to an
// io.Writer, one path element per line-shaped primitive and one circle
// element per point. Grounded on
// original_source/src/svg/mod.rs (move-to/line-to/close per line,
// fixed viewBox, black 1px stroke); hand-rolled rather than built on a
// dependency because no SVG-writing package appears anywhere in the
// retrieved examples (the original used the Rust svg crate, which has
// no Go sibling here).
type SVG struct {
	w       io.Writer
	width   int
	height  int
	started bool
}

// NewSVG returns an SVG sink with the given viewBox dimensions.
func NewSVG(w io.Writer, width, height int) *SVG {
	return &SVG{w: w, width: width, height: height}
}

func (s *SVG) header() {
	if s.started {
		return
	}
	fmt.Fprintf(s.w, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d">`+"\n", s.width, s.height)
	s.started = true
}

func (s *SVG) path(d string) {
	s.header()
	fmt.Fprintf(s.w, `<path fill="none" stroke="black" stroke-width="1" d="%s"/>`+"\n", d)
}

func (s *SVG) HorzLine(h fixed.HorzLine) {
	s.path(fmt.Sprintf("M%g %g L%g %g Z", h.X1.ToReal(), h.Y.ToReal(), h.X2.ToReal(), h.Y.ToReal()))
}

func (s *SVG) VertLine(v fixed.VertLine) {
	s.path(fmt.Sprintf("M%g %g L%g %g Z", v.X.ToReal(), v.Y1.ToReal(), v.X.ToReal(), v.Y2.ToReal()))
}

func (s *SVG) Line(l fixed.Line) {
	s.path(fmt.Sprintf("M%g %g L%g %g Z", l.X1.ToReal(), l.Y1.ToReal(), l.X2.ToReal(), l.Y2.ToReal()))
}

func (s *SVG) Quadrangle(q fixed.Quadrangle) {
	s.path(fmt.Sprintf("M%g %g L%g %g L%g %g L%g %g Z",
		q.P1.X.ToReal(), q.P1.Y.ToReal(),
		q.P2.X.ToReal(), q.P2.Y.ToReal(),
		q.P3.X.ToReal(), q.P3.Y.ToReal(),
		q.P4.X.ToReal(), q.P4.Y.ToReal()))
}

func (s *SVG) Point(p fixed.Point) {
	s.header()
	fmt.Fprintf(s.w, `<circle cx="%g" cy="%g" r="1.5" fill="red"/>`+"\n", p.X.ToReal(), p.Y.ToReal())
}

// Close writes the closing tag. Call once all primitives are sent.
func (s *SVG) Close() {
	s.header()
	fmt.Fprint(s.w, "</svg>\n")
}
