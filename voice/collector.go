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

// Package voice attaches noteheads to stems within a bar, maps staff
// position to diatonic pitch, and flattens the result into the two
// monophonic voices (channels) spec.md §4.D describes.
package voice

import (
	"github.com/inq/sprout/fixed"
)

// EventKind distinguishes a sounding chord from silence in a Collector's
// output sequence.
type EventKind int

const (
	EventChord EventKind = iota
	EventRest
)

// Event is one entry of a Collector's flattened output: either a chord
// of simultaneous MIDI note numbers held for Len ticks, or a rest of
// Len ticks, matching original_source/src/recognizer/collector.rs's
// Note enum.
type Event struct {
	Kind  EventKind
	Tones []int8
	Len   int32
}

// Collector accumulates a single channel's pending beamed group
// (quarters) and pending long-note group (wholes) and flattens them,
// plus standalone half notes and rests, into an ordered Event sequence.
// Grounded on original_source/src/recognizer/collector.rs; extended
// with a wholes accumulator and a put-half path the source's Collector
// never implemented (see DESIGN.md).
type Collector struct {
	quarters []float64
	wholes   []float64
	x        fixed.Fixed
	hasX     bool

	Notes []Event
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Prepare clears the last-seen x, matching Collector::prepare in the
// source. It does not touch accumulated quarters, wholes, or Notes:
// those persist across bar boundaries until a Wing, Rest, half note, or
// the final Finish flushes them.
func (c *Collector) Prepare() {
	c.hasX = false
}

// PutQuarter records a quarter-note head at diatonic position d,
// pending classification as part of a beamed group (flushed by a later
// Wing) or, failing that, as a plain quarter chord (flushed by Finish,
// a Rest, or a half note).
func (c *Collector) PutQuarter(x fixed.Fixed, d float64) {
	c.quarters = append(c.quarters, d)
	c.x, c.hasX = x, true
}

// PutWhole records a whole-note head at diatonic position d, pending a
// later flush as a 1920-tick chord.
func (c *Collector) PutWhole(x fixed.Fixed, d float64) {
	c.wholes = append(c.wholes, d)
	c.x, c.hasX = x, true
}

// PutHalf emits a standalone 960-tick chord for a half-note head at
// diatonic position d. Half notes are not beamed, so unlike quarters
// they never accumulate: any pending quarters or wholes flush first,
// then the half note is emitted on its own.
func (c *Collector) PutHalf(x fixed.Fixed, d float64) {
	c.flushQuarters(480)
	c.flushWholes()
	c.Notes = append(c.Notes, Event{Kind: EventChord, Tones: []int8{semitone(d)}, Len: 960})
	c.x, c.hasX = x, true
}

// PutWing flushes the pending quarters as a single 240-tick chord using
// the Wing-flush pitch mapping (see wingSemitone), per spec.md §4.D. A
// Wing with no pending quarters is a no-op beyond recording x.
func (c *Collector) PutWing(x fixed.Fixed) {
	if len(c.quarters) > 0 {
		tones := make([]int8, len(c.quarters))
		for i, d := range c.quarters {
			tones[i] = wingSemitone(d)
		}
		c.Notes = append(c.Notes, Event{Kind: EventChord, Tones: tones, Len: 240})
		c.quarters = c.quarters[:0]
	}
	c.x, c.hasX = x, true
}

// PutRest flushes any pending quarters as a 480-tick chord, then emits
// a Rest of 1920/len ticks, per spec.md §4.D.
func (c *Collector) PutRest(x fixed.Fixed, length uint8) {
	c.flushQuarters(480)
	c.Notes = append(c.Notes, Event{Kind: EventRest, Len: 1920 / int32(length)})
	c.x, c.hasX = x, true
}

// Finish flushes any quarters and wholes still pending. Call once after
// the last bar of a stanza has been collected.
func (c *Collector) Finish() {
	c.flushQuarters(480)
	c.flushWholes()
}

func (c *Collector) flushQuarters(length int32) {
	if len(c.quarters) == 0 {
		return
	}
	tones := make([]int8, len(c.quarters))
	for i, d := range c.quarters {
		tones[i] = semitone(d)
	}
	c.Notes = append(c.Notes, Event{Kind: EventChord, Tones: tones, Len: length})
	c.quarters = c.quarters[:0]
}

func (c *Collector) flushWholes() {
	if len(c.wholes) == 0 {
		return
	}
	tones := make([]int8, len(c.wholes))
	for i, d := range c.wholes {
		tones[i] = semitone(d)
	}
	c.Notes = append(c.Notes, Event{Kind: EventChord, Tones: tones, Len: 1920})
	c.wholes = c.wholes[:0]
}
