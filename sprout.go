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

// Package sprout wires the stream interpreter, stanza/bar detector,
// voice collector and event emitter into a single per-page, then
// per-document, pipeline. It owns no recognition logic of its own —
// like font.go's Font/Read, it is a thin top-level orchestrator over
// its sub-packages.
package sprout

import (
	"github.com/inq/sprout/fault"
	"github.com/inq/sprout/fixed"
	"github.com/inq/sprout/recognizer"
	"github.com/inq/sprout/smf"
	"github.com/inq/sprout/vecstream"
	"github.com/inq/sprout/voice"
)

// DefaultBPM is the tempo used when the caller has no better source for
// one; the original source hard-codes a tempo in exactly this way.
const DefaultBPM = 120

// Demultiplexer is the out-of-scope "vector-stream demultiplexer"
// (spec.md §1): it is responsible for splitting a multi-page container
// into one ordered operator sequence per page. The only implementation in
// this module is cmd/vecscore's minimal JSON reader; Run accepts whatever
// a caller's demultiplexer already produced.
type Demultiplexer interface {
	// Pages returns one operator sequence and page height per page, in
	// document order.
	Pages() (ops [][]vecstream.Op, pageHeights []fixed.Fixed, err error)
}

// Page is one page's fully recognized, collected and emitted output:
// the recovered geometry, the stanzas recognized within it, and the
// merged event track ready for the (out-of-scope) serializer.
type Page struct {
	Geometry *vecstream.Geometry
	Stanzas  []*recognizer.Stanza
	Track    []smf.Message
}

// Run processes every page a Demultiplexer yields, in order, restoring
// the multi-page loop original_source/src/main.rs truncated after the
// first page (see SPEC_FULL.md "Supplemented features"). Any error
// aborts the whole run: recognition is deterministic, so there is
// nothing to retry.
func Run(d Demultiplexer, tunables recognizer.Tunables, bpm uint32) ([]Page, error) {
	ops, pageHeights, err := d.Pages()
	if err != nil {
		return nil, err
	}
	if len(ops) != len(pageHeights) {
		return nil, fault.New(fault.BadInput, "demultiplexer returned mismatched page/height counts")
	}

	pages := make([]Page, len(ops))
	for i := range ops {
		page, err := runPage(ops[i], pageHeights[i], tunables, bpm)
		if err != nil {
			return nil, err
		}
		pages[i] = page
	}
	return pages, nil
}

func runPage(ops []vecstream.Op, pageHeight fixed.Fixed, tunables recognizer.Tunables, bpm uint32) (Page, error) {
	geo, err := vecstream.Run(ops, pageHeight)
	if err != nil {
		return Page{}, err
	}

	stanzas, err := recognizer.Recognize(geo)
	if err != nil {
		return Page{}, err
	}

	var channels [][]smf.NoteEvent
	for _, st := range stanzas {
		collected, err := voice.CollectStanza(st, tunables)
		if err != nil {
			return Page{}, err
		}
		for _, c := range collected {
			channels = append(channels, adaptEvents(c.Notes))
		}
	}

	return Page{
		Geometry: geo,
		Stanzas:  stanzas,
		Track:    smf.BuildTrack(channels, bpm),
	}, nil
}

// adaptEvents narrows a Collector's output to the shape smf.BuildTrack
// consumes, keeping voice and smf free of a dependency on each other.
func adaptEvents(events []voice.Event) []smf.NoteEvent {
	out := make([]smf.NoteEvent, len(events))
	for i, e := range events {
		out[i] = smf.NoteEvent{
			IsRest: e.Kind == voice.EventRest,
			Tones:  e.Tones,
			Len:    e.Len,
		}
	}
	return out
}
