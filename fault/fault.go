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

// Package fault defines the single error type threaded through every
// stage of the pipeline that can fail (vecstream, recognizer, voice and
// the root orchestrator; smf never returns an error), mirroring the teacher's header.ErrMissing/IsMissing
// shape: a struct-typed error plus a predicate helper, never a sentinel
// string compared with ==.
package fault

import (
	"fmt"

	"github.com/inq/sprout/fixed"
)

// Kind identifies the class of a pipeline failure, per spec.md §7.
type Kind int

const (
	// BadInput: a malformed operand (non-numeric where numeric was
	// expected, or wrong arity).
	BadInput Kind = iota
	// NotSupported: an unrecognised operator.
	NotSupported
	// PathShape: a path was finalised with an unsupported segment count.
	PathShape
	// NoStanza: no horizontal-length class had a count divisible by 5, or
	// no staff anchor x was found, or staff-line spacing was non-uniform.
	NoStanza
	// EmptyChunk: fewer than 10 staff-line y values in a trailing group.
	EmptyChunk
	// StackUnderflow: a "Q" operator was seen with an empty graphics-state
	// stack.
	StackUnderflow
	// RecognitionFailure: a notehead could not be attached to any stem, or
	// a stanza's learned head size was required but never set.
	RecognitionFailure
)

func (k Kind) String() string {
	switch k {
	case BadInput:
		return "bad input"
	case NotSupported:
		return "not supported"
	case PathShape:
		return "path shape"
	case NoStanza:
		return "no stanza"
	case EmptyChunk:
		return "empty chunk"
	case StackUnderflow:
		return "stack underflow"
	case RecognitionFailure:
		return "recognition failure"
	default:
		return "unknown"
	}
}

// Error is the single error type carried end to end by the pipeline.
type Error struct {
	K    Kind
	Msg  string
	At   *fixed.Point // offending coordinate, if one is known
	Prim string       // the offending primitive's name, if known ("HorzLine", "Tj", ...)
}

func (e *Error) Error() string {
	if e.At != nil {
		return fmt.Sprintf("%s: %s (%s at %s,%s)", e.K, e.Msg, e.Prim, e.At.X, e.At.Y)
	}
	return fmt.Sprintf("%s: %s", e.K, e.Msg)
}

// Kind returns the error's failure class.
func (e *Error) Kind() Kind {
	return e.K
}

// New builds a plain Error with no coordinate attached.
func New(k Kind, msg string) *Error {
	return &Error{K: k, Msg: msg}
}

// NewAt builds an Error tagged with the offending primitive's page
// coordinate, for the "diagnostic naming the fatal class and the
// offending primitive's coordinates" spec.md §7 requires.
func NewAt(k Kind, msg, prim string, at fixed.Point) *Error {
	return &Error{K: k, Msg: msg, At: &at, Prim: prim}
}

// Is reports whether err is a *Error of the given Kind.
func Is(err error, k Kind) bool {
	pe, ok := err.(*Error)
	return ok && pe.K == k
}
