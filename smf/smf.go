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

// Package smf merges per-channel Note/Rest sequences into a single
// absolute-time-ordered, delta-time-encoded message stream, per
// spec.md §4.E. It stops at the typed message slice: encoding that
// slice into Standard MIDI File bytes is the out-of-scope
// serialisation library's job (spec.md §1), the way this module's
// teacher stops at a typed in-memory table and leaves byte-level
// encoding to a separate Write step.
package smf

import "sort"

// MessageKind distinguishes the three message shapes a track can hold.
type MessageKind int

const (
	MetaEvent MessageKind = iota
	MidiEvent
	TrackChange
)

// MetaEventType is the meta-event subtype of a MetaEvent message.
type MetaEventType int

const (
	SetTempo MetaEventType = iota
	EndOfTrack
)

// MidiEventType is the channel-event subtype of a MidiEvent message.
type MidiEventType int

const (
	NoteOn MidiEventType = iota
	NoteOff
)

// Message is one entry of a track's event stream. Its fields are a
// flat union of whichever Kind it holds, mirroring vecstream.Op's
// flat operator-record shape rather than a Rust-style tagged enum.
type Message struct {
	DeltaTime uint32
	Kind      MessageKind

	MetaType MetaEventType
	MetaData []byte

	MidiType MidiEventType
	Channel  uint8
	Note     int8
	Velocity uint8
}

// NoteEvent is one Note (chord) or Rest in a single channel's timeline,
// independent of voice.Event so this package has no dependency on the
// collector package; callers adapt voice.Event values to this shape.
type NoteEvent struct {
	IsRest bool
	Tones  []int8
	Len    int32
}

// action is an absolute-time NoteOn/NoteOff prior to delta-time
// encoding, used only to sort across channels before the replay pass.
type action struct {
	time     int32
	channel  uint8
	kind     MidiEventType
	note     int8
	velocity uint8
}

// walkChannel advances a local clock over one channel's NoteEvents,
// producing the absolute-time NoteOn/NoteOff actions spec.md §4.E step
// 1 describes: every tone of a chord gets its own NoteOn at the
// current clock and NoteOff at clock+len; a Rest only advances the
// clock.
func walkChannel(channel uint8, events []NoteEvent) []action {
	var actions []action
	var t int32
	for _, e := range events {
		if e.IsRest {
			t += e.Len
			continue
		}
		for _, tone := range e.Tones {
			actions = append(actions, action{time: t, channel: channel, kind: NoteOn, note: tone, velocity: 96})
			actions = append(actions, action{time: t + e.Len, channel: channel, kind: NoteOff, note: tone, velocity: 64})
		}
		t += e.Len
	}
	return actions
}

// BuildTrack merges every channel's NoteEvent sequence into a single
// track: a SetTempo/TrackChange preamble, the delta-time-encoded
// NoteOn/NoteOff stream in time order, and an EndOfTrack trailer with
// delta 1024, per spec.md §4.E.
func BuildTrack(channels [][]NoteEvent, bpm uint32) []Message {
	var actions []action
	for i, events := range channels {
		actions = append(actions, walkChannel(uint8(i), events)...)
	}
	sort.SliceStable(actions, func(i, j int) bool { return actions[i].time < actions[j].time })

	tempo := 60000000 / bpm
	messages := []Message{
		{Kind: MetaEvent, MetaType: SetTempo, MetaData: []byte{byte(tempo >> 16), byte(tempo >> 8), byte(tempo)}},
		{Kind: TrackChange},
	}

	var clock int32
	for _, a := range actions {
		delta := a.time - clock
		clock = a.time
		messages = append(messages, Message{
			DeltaTime: uint32(delta),
			Kind:      MidiEvent,
			MidiType:  a.kind,
			Channel:   a.channel,
			Note:      a.note,
			Velocity:  a.velocity,
		})
	}
	messages = append(messages, Message{DeltaTime: 1024, Kind: MetaEvent, MetaType: EndOfTrack})
	return messages
}
