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
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/rect"

	"github.com/inq/sprout/fixed"
)

// lineWidth is the stroke thickness, in device pixels, every segment is
// rasterised at.
const lineWidth = float32(0.75)

// Raster is a Sink that rasterises every primitive into a bitmap and
// writes it as a PNG, restoring a second debug output
// (recognizer/mod.rs::debug_vert_lines only ever wrote SVG; see
// SPEC_FULL.md "Supplemented features"). Every segment is rendered as a
// thin filled quadrilateral, since vector.Rasterizer fills closed
// contours rather than stroking open paths.
type Raster struct {
	z      *vector.Rasterizer
	bbox   rect.Rect
	first  bool
	width  int
	height int
}

// NewRaster returns a Raster sink that accumulates into a width x
// height canvas.
func NewRaster(width, height int) *Raster {
	return &Raster{z: vector.NewRasterizer(width, height), first: true, width: width, height: height}
}

// extend folds one more point into the running bounding box, following
// font.go's FontBBoxPDF pattern: Extend mutates its receiver in place, so
// the first point is assigned directly rather than extending the zero
// Rect (which would wrongly pull the box to include the origin).
func (r *Raster) extend(x, y float64) {
	box := rect.Rect{XMin: x, YMin: y, XMax: x, YMax: y}
	if r.first {
		r.bbox = box
		r.first = false
		return
	}
	r.bbox.Extend(box)
}

// fillSegment rasterises a thin quadrilateral around the segment
// (x1,y1)-(x2,y2), approximating a stroked line.
func (r *Raster) fillSegment(x1, y1, x2, y2 float64) {
	r.extend(x1, y1)
	r.extend(x2, y2)

	dx, dy := x2-x1, y2-y1
	length := dx*dx + dy*dy
	var nx, ny float64
	if length > 0 {
		inv := float64(lineWidth) / 2
		// Perpendicular unit vector scaled by half the stroke width.
		nx, ny = -dy, dx
		norm := (nx*nx + ny*ny)
		if norm > 0 {
			scale := inv / math.Sqrt(norm)
			nx, ny = nx*scale, ny*scale
		}
	}

	r.z.MoveTo(float32(x1+nx), float32(y1+ny))
	r.z.LineTo(float32(x2+nx), float32(y2+ny))
	r.z.LineTo(float32(x2-nx), float32(y2-ny))
	r.z.LineTo(float32(x1-nx), float32(y1-ny))
	r.z.ClosePath()
}

func (r *Raster) HorzLine(h fixed.HorzLine) {
	r.fillSegment(h.X1.ToReal(), h.Y.ToReal(), h.X2.ToReal(), h.Y.ToReal())
}

func (r *Raster) VertLine(v fixed.VertLine) {
	r.fillSegment(v.X.ToReal(), v.Y1.ToReal(), v.X.ToReal(), v.Y2.ToReal())
}

func (r *Raster) Line(l fixed.Line) {
	r.fillSegment(l.X1.ToReal(), l.Y1.ToReal(), l.X2.ToReal(), l.Y2.ToReal())
}

func (r *Raster) Quadrangle(q fixed.Quadrangle) {
	pts := [4]fixed.Point{q.P1, q.P2, q.P3, q.P4}
	for i := range pts {
		j := (i + 1) % len(pts)
		r.fillSegment(pts[i].X.ToReal(), pts[i].Y.ToReal(), pts[j].X.ToReal(), pts[j].Y.ToReal())
	}
}

func (r *Raster) Point(p fixed.Point) {
	x, y := p.X.ToReal(), p.Y.ToReal()
	r.fillSegment(x-1, y, x+1, y)
}

// BBox returns the bounding box of every primitive rendered so far.
func (r *Raster) BBox() rect.Rect {
	return r.bbox
}

// WritePNG finalises the rasteriser and encodes the accumulated bitmap
// as a PNG.
func (r *Raster) WritePNG(w io.Writer) error {
	dst := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	r.z.Draw(dst, dst.Bounds(), image.NewUniform(color.Black), image.Point{})
	return png.Encode(w, dst)
}
