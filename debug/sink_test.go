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
	"bytes"
	"strings"
	"testing"

	"github.com/inq/sprout/fixed"
)

func f(v int64) fixed.Fixed { return fixed.FromInt(v) }

// sample primitives exercising every Sink method: a staff line, a bar
// line, an arbitrary segment, a notehead quadrangle and a stem-head
// anchor point.
func feed(s Sink) {
	s.HorzLine(fixed.NewHorzLine(f(0), f(100), f(10)))
	s.VertLine(fixed.NewVertLine(f(50), f(0), f(20)))
	s.Line(fixed.Line{X1: f(0), Y1: f(0), X2: f(10), Y2: f(10)})
	s.Quadrangle(fixed.Quadrangle{
		P1: fixed.NewPoint(f(0), f(0)),
		P2: fixed.NewPoint(f(4), f(0)),
		P3: fixed.NewPoint(f(4), f(4)),
		P4: fixed.NewPoint(f(0), f(4)),
	})
	s.Point(fixed.NewPoint(f(50), f(10)))
}

func TestSVGWritesOnePathPerPrimitiveAndClosesTheDocument(t *testing.T) {
	var buf bytes.Buffer
	s := NewSVG(&buf, 200, 100)
	feed(s)
	s.Close()

	out := buf.String()
	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 200 100">`) {
		t.Fatalf("missing or malformed svg header: %q", out)
	}
	if !strings.HasSuffix(strings.TrimRight(out, "\n"), "</svg>") {
		t.Fatalf("missing closing tag: %q", out)
	}
	if got := strings.Count(out, "<path"); got != 4 {
		t.Fatalf("want 4 <path> elements (horz, vert, line, quad), got %d", got)
	}
	if got := strings.Count(out, "<circle"); got != 1 {
		t.Fatalf("want 1 <circle> element for the point, got %d", got)
	}
}

func TestSVGHeaderIsWrittenOnceEvenWithNoPrimitives(t *testing.T) {
	var buf bytes.Buffer
	s := NewSVG(&buf, 50, 50)
	s.Close()

	if got := strings.Count(buf.String(), "<svg "); got != 1 {
		t.Fatalf("want exactly one <svg> open tag, got %d", got)
	}
}

func TestRasterProducesANonEmptyPNGAndTracksBBox(t *testing.T) {
	r := NewRaster(200, 100)
	feed(r)

	box := r.BBox()
	if box.XMin != 0 || box.YMin != 0 {
		t.Fatalf("want bbox to start at the origin, got %+v", box)
	}
	if box.XMax < 50 || box.YMax < 20 {
		t.Fatalf("want bbox to extend to the farthest primitive, got %+v", box)
	}

	var buf bytes.Buffer
	if err := r.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("WritePNG wrote no bytes")
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")) {
		t.Fatal("output is missing the PNG magic header")
	}
}
