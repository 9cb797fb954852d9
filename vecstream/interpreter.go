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

// noop lists operators with no geometric effect, per spec.md §4.B's
// operator table. An operator not in this set, and not one of the
// operators handled explicitly in the dispatch switch below, is fatal.
var noop = map[string]bool{
	"gs": true, "cs": true, "CS": true, "SCN": true, "scn": true,
	"w": true, "J": true, "j": true, "d": true, "S": true, "B*": true,
	"n": true, "f*": true, "Do": true, "W*": true, "BT": true, "ET": true,
	"Tf": true,
}

// interpreter walks one content stream and accumulates Geometry. It holds
// exactly the state spec.md §4.B names: the graphics-state stack, the
// current transformation matrix, the text matrix/position pair, and the
// path currently under construction.
type interpreter struct {
	geo     *Geometry
	ctm     fixed.Matrix
	stack   []fixed.Matrix
	tm      fixed.Matrix
	td      [2]fixed.Fixed
	current *polygon
}

// Run interprets ops under a page of the given height and returns the
// recovered Geometry. The first fatal condition — an unrecognised
// operator, a malformed operand, an unsupported path shape, or a "Q" with
// no matching "q" — aborts immediately with no partial output, per
// spec.md §5.
func Run(ops []Op, pageHeight fixed.Fixed) (*Geometry, error) {
	it := &interpreter{
		geo: newGeometry(),
		ctm: fixed.Identity(pageHeight),
		tm:  fixed.Identity(pageHeight),
	}
	for _, op := range ops {
		if err := it.step(op); err != nil {
			return nil, err
		}
	}
	// A path still open when the stream ends is finalised like one closed
	// by "h".
	if err := it.finishCurrent(); err != nil {
		return nil, err
	}
	return it.geo, nil
}

func (it *interpreter) step(op Op) error {
	switch op.Name {
	case "m":
		x, y, err := it.readPoint(op)
		if err != nil {
			return err
		}
		if err := it.finishCurrent(); err != nil {
			return err
		}
		px, py := it.ctm.Transform(x, y)
		it.current = newPolygon(fixed.NewPoint(px, py))

	case "l":
		x, y, err := it.readPoint(op)
		if err != nil {
			return err
		}
		px, py := it.ctm.Transform(x, y)
		if it.current != nil {
			it.current.lineTo(fixed.NewPoint(px, py))
		}

	case "c":
		// Curves are not analysed; operands are read and discarded so a
		// malformed "c" still surfaces as BadInput like every other
		// operator, but no geometry is recorded.
		if len(op.Operands) != 6 {
			return fault.New(fault.BadInput, "c requires 6 operands")
		}
		for _, operand := range op.Operands {
			if operand.Kind != OperandNumber {
				return fault.New(fault.BadInput, "c operands must be numeric")
			}
		}

	case "h":
		if err := it.finishCurrent(); err != nil {
			return err
		}
		it.current = nil

	case "q":
		it.stack = append(it.stack, it.ctm)

	case "Q":
		if len(it.stack) == 0 {
			return fault.New(fault.StackUnderflow, `"Q" with empty graphics-state stack`)
		}
		it.ctm = it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]

	case "cm":
		m, err := it.readMatrix(op)
		if err != nil {
			return err
		}
		it.ctm = it.ctm.Mul(m)

	case "Tm":
		m, err := it.readMatrix(op)
		if err != nil {
			return err
		}
		it.tm = m

	case "Td":
		if len(op.Operands) != 2 {
			return fault.New(fault.BadInput, "Td requires 2 operands")
		}
		x, err := it.readNumber(op.Operands[0])
		if err != nil {
			return err
		}
		y, err := it.readNumber(op.Operands[1])
		if err != nil {
			return err
		}
		it.td[0], it.td[1] = x, y

	case "Tj":
		return it.showText(op)

	default:
		if noop[op.Name] {
			return nil
		}
		return fault.New(fault.NotSupported, `unrecognised operator "`+op.Name+`"`)
	}
	return nil
}

func (it *interpreter) finishCurrent() error {
	if it.current == nil {
		return nil
	}
	return it.current.finish(it.geo)
}

func (it *interpreter) readNumber(o Operand) (fixed.Fixed, error) {
	if o.Kind != OperandNumber {
		return 0, fault.New(fault.BadInput, "expected numeric operand")
	}
	return fixed.FromReal(o.Num), nil
}

func (it *interpreter) readPoint(op Op) (fixed.Fixed, fixed.Fixed, error) {
	if len(op.Operands) != 2 {
		return 0, 0, fault.New(fault.BadInput, op.Name+" requires 2 operands")
	}
	x, err := it.readNumber(op.Operands[0])
	if err != nil {
		return 0, 0, err
	}
	y, err := it.readNumber(op.Operands[1])
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func (it *interpreter) readMatrix(op Op) (fixed.Matrix, error) {
	if len(op.Operands) != 6 {
		return fixed.Matrix{}, fault.New(fault.BadInput, op.Name+" requires 6 operands")
	}
	vals := make([]fixed.Fixed, 6)
	for i, operand := range op.Operands {
		v, err := it.readNumber(operand)
		if err != nil {
			return fixed.Matrix{}, err
		}
		vals[i] = v
	}
	return fixed.NewMatrix(vals[0], vals[1], vals[2], vals[3], vals[4], vals[5]), nil
}

// showText handles "Tj": if the string operand matches a recognised
// codepoint pair, a Symbol is emitted at CTM*(TM*TD); any other string
// emits no symbol and no error, per spec.md §4.B.
func (it *interpreter) showText(op Op) error {
	if len(op.Operands) != 1 || op.Operands[0].Kind != OperandString {
		return fault.New(fault.BadInput, "Tj requires a single string operand")
	}
	sym, ok := lookupCodepoint(op.Operands[0].Str)
	if !ok {
		return nil
	}
	tx, ty := it.tm.Transform(it.td[0], it.td[1])
	px, py := it.ctm.Transform(tx, ty)
	sym.Point = fixed.NewPoint(px, py)
	it.geo.addSymbol(sym)
	return nil
}
