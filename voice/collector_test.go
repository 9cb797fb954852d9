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
)

func TestPutWingFlushesQuartersAs240TickChord(t *testing.T) {
	c := NewCollector()
	c.PutQuarter(fixed.FromInt(1), 0)
	c.PutQuarter(fixed.FromInt(2), 1)
	c.PutWing(fixed.FromInt(3))

	want := []Event{{Kind: EventChord, Tones: []int8{0x3c, 0x3c + 4}, Len: 240}}
	if diff := cmp.Diff(want, c.Notes); diff != "" {
		t.Errorf("Notes mismatch (-want +got):\n%s", diff)
	}
}

func TestPutRestFlushesPendingQuartersThenEmitsRest(t *testing.T) {
	c := NewCollector()
	c.PutQuarter(fixed.FromInt(1), 0)
	c.PutRest(fixed.FromInt(2), 8)

	want := []Event{
		{Kind: EventChord, Tones: []int8{60}, Len: 480},
		{Kind: EventRest, Len: 240},
	}
	if diff := cmp.Diff(want, c.Notes); diff != "" {
		t.Errorf("Notes mismatch (-want +got):\n%s", diff)
	}
}

func TestPutRestWithNoPendingQuartersEmitsOnlyRest(t *testing.T) {
	c := NewCollector()
	c.PutRest(fixed.FromInt(2), 4)

	want := []Event{{Kind: EventRest, Len: 480}}
	if diff := cmp.Diff(want, c.Notes); diff != "" {
		t.Errorf("Notes mismatch (-want +got):\n%s", diff)
	}
}

func TestPutHalfFlushesPendingQuartersFirst(t *testing.T) {
	c := NewCollector()
	c.PutQuarter(fixed.FromInt(1), 0)
	c.PutHalf(fixed.FromInt(2), 1)

	want := []Event{
		{Kind: EventChord, Tones: []int8{60}, Len: 480},
		{Kind: EventChord, Tones: []int8{64}, Len: 960},
	}
	if diff := cmp.Diff(want, c.Notes); diff != "" {
		t.Errorf("Notes mismatch (-want +got):\n%s", diff)
	}
}

func TestFinishFlushesWholesAs1920TickChord(t *testing.T) {
	c := NewCollector()
	c.PutWhole(fixed.FromInt(1), 0)
	c.Finish()

	want := []Event{{Kind: EventChord, Tones: []int8{60}, Len: 1920}}
	if diff := cmp.Diff(want, c.Notes); diff != "" {
		t.Errorf("Notes mismatch (-want +got):\n%s", diff)
	}
}

func TestPrepareDoesNotClearPendingNotes(t *testing.T) {
	c := NewCollector()
	c.PutQuarter(fixed.FromInt(1), 0)
	c.Prepare()
	if len(c.quarters) != 1 {
		t.Fatalf("Prepare must not clear pending quarters, got %d", len(c.quarters))
	}
}
