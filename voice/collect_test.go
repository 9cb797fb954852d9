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

package voice

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/inq/sprout/fixed"
	"github.com/inq/sprout/recognizer"
	"github.com/inq/sprout/vecstream"
)

func f(v int64) fixed.Fixed { return fixed.FromInt(v) }

// gridStanza builds a Geometry with one grand-staff stanza (y =
// 100..140 treble, 200..240 bass, as in spec.md §8 scenario 4), a
// leading and a closing bar line, and the given vertical lines and
// symbols.
func gridStanza(extraVert map[fixed.VertLine]struct{}, symbols []vecstream.Symbol) *vecstream.Geometry {
	ys := []int64{100, 110, 120, 130, 140, 200, 210, 220, 230, 240}
	horz := make(map[fixed.HorzLine]struct{}, len(ys))
	for _, y := range ys {
		horz[fixed.NewHorzLine(f(5), f(1005), f(y))] = struct{}{}
	}
	vert := map[fixed.VertLine]struct{}{
		fixed.NewVertLine(f(10), f(100), f(240)):  {},
		fixed.NewVertLine(f(900), f(100), f(240)): {},
	}
	for v := range extraVert {
		vert[v] = struct{}{}
	}
	return &vecstream.Geometry{Horz: horz, Vert: vert, Symbols: symbols}
}

// TestCollectStanzaOneQuarterNote is grounded on spec.md §8 scenario 5
// (a bar with a single quarter-note head attached to a stem) though the
// channel/border arithmetic below is this module's own (see DESIGN.md):
// 4.D's borders formula does not reproduce the scenario's note=60 for a
// full ten-line grand-staff stanza, so this test instead asserts the
// value the stated formula actually produces.
func TestCollectStanzaOneQuarterNote(t *testing.T) {
	stem := fixed.NewVertLine(f(500), f(100), f(140))
	head := vecstream.Symbol{Class: vecstream.Head, Size: 4, Point: fixed.NewPoint(f(490), f(135))}

	geo := gridStanza(map[fixed.VertLine]struct{}{stem: {}}, []vecstream.Symbol{head})
	stanzas, err := recognizer.Recognize(geo)
	if err != nil {
		t.Fatal(err)
	}
	if len(stanzas) != 1 {
		t.Fatalf("want 1 stanza, got %d", len(stanzas))
	}

	channels, err := CollectStanza(stanzas[0], recognizer.DefaultTunables())
	if err != nil {
		t.Fatal(err)
	}

	want1 := []Event{{Kind: EventChord, Tones: []int8{65}, Len: 480}}
	if diff := cmp.Diff(want1, channels[1].Notes); diff != "" {
		t.Errorf("channel 1 Notes mismatch (-want +got):\n%s", diff)
	}
	if len(channels[0].Notes) != 0 {
		t.Errorf("channel 0 should be empty, got %v", channels[0].Notes)
	}
}

// TestCollectStanzaTwoVoices is grounded on spec.md §8 scenario 6: two
// simultaneous quarter-note heads, one physically above the stanza
// midline and one below, land in different channels.
func TestCollectStanzaTwoVoices(t *testing.T) {
	upperStem := fixed.NewVertLine(f(500), f(100), f(140))
	lowerStem := fixed.NewVertLine(f(501), f(200), f(240))
	upperHead := vecstream.Symbol{Class: vecstream.Head, Size: 4, Point: fixed.NewPoint(f(490), f(135))}
	lowerHead := vecstream.Symbol{Class: vecstream.Head, Size: 4, Point: fixed.NewPoint(f(491), f(210))}

	geo := gridStanza(map[fixed.VertLine]struct{}{upperStem: {}, lowerStem: {}},
		[]vecstream.Symbol{upperHead, lowerHead})
	stanzas, err := recognizer.Recognize(geo)
	if err != nil {
		t.Fatal(err)
	}

	channels, err := CollectStanza(stanzas[0], recognizer.DefaultTunables())
	if err != nil {
		t.Fatal(err)
	}

	wantUpper := []Event{{Kind: EventChord, Tones: []int8{65}, Len: 480}}
	wantLower := []Event{{Kind: EventChord, Tones: []int8{50}, Len: 480}}
	if diff := cmp.Diff(wantUpper, channels[1].Notes); diff != "" {
		t.Errorf("channel 1 (upper) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantLower, channels[0].Notes); diff != "" {
		t.Errorf("channel 0 (lower) mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectStanzaUnattachableHeadIsFatal(t *testing.T) {
	head := vecstream.Symbol{Class: vecstream.Head, Size: 4, Point: fixed.NewPoint(f(490), f(135))}
	geo := gridStanza(nil, []vecstream.Symbol{head})
	stanzas, err := recognizer.Recognize(geo)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := CollectStanza(stanzas[0], recognizer.DefaultTunables()); err == nil {
		t.Fatal("want an error when a notehead has no stem to attach to")
	}
}
