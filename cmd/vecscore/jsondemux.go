package main

import (
	"encoding/json"
	"io"

	"github.com/inq/sprout/fixed"
	"github.com/inq/sprout/vecstream"
)

// jsonOperand and jsonOp mirror vecstream.Operand/Op in a form
// encoding/json can decode directly: the real demultiplexer (spec.md
// §6, out of scope) would read a page-description container format
// such as the PDF content streams original_source/src/main.rs loads
// via lopdf; this file stands in for that container reader with the
// simplest format this module can decode on its own, so cmd/vecscore
// has something concrete to run end to end.
type jsonOperand struct {
	Num *float64 `json:"num,omitempty"`
	Str string   `json:"str,omitempty"`
}

type jsonOp struct {
	Name     string        `json:"name"`
	Operands []jsonOperand `json:"operands"`
}

type jsonPage struct {
	Height float64  `json:"height"`
	Ops    []jsonOp `json:"ops"`
}

type jsonDocument struct {
	Pages []jsonPage `json:"pages"`
}

// fileDemux adapts a decoded jsonDocument to sprout.Demultiplexer.
type fileDemux struct {
	doc jsonDocument
}

func readDemux(r io.Reader) (*fileDemux, error) {
	var doc jsonDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	return &fileDemux{doc: doc}, nil
}

func (d *fileDemux) Pages() ([][]vecstream.Op, []fixed.Fixed, error) {
	ops := make([][]vecstream.Op, len(d.doc.Pages))
	heights := make([]fixed.Fixed, len(d.doc.Pages))
	for i, page := range d.doc.Pages {
		heights[i] = fixed.FromReal(page.Height)
		pageOps := make([]vecstream.Op, len(page.Ops))
		for j, op := range page.Ops {
			operands := make([]vecstream.Operand, len(op.Operands))
			for k, o := range op.Operands {
				if o.Num != nil {
					operands[k] = vecstream.Number(*o.Num)
				} else {
					operands[k] = vecstream.String([]byte(o.Str))
				}
			}
			pageOps[j] = vecstream.Op{Name: op.Name, Operands: operands}
		}
		ops[i] = pageOps
	}
	return ops, heights, nil
}
