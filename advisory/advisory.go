// SPDX-License-Identifier: MIT

// Package advisory defines the non-fatal notes that accompany a successful
// seating plan.
//
// A note is produced whenever a default was applied, a parameter was
// corrected, or the resolved configuration will leave sponsors with poor
// coverage. Notes never block generation; fatal conditions are reported as
// errors by the producing package instead.
//
// Notes are kept in production order. Callers that merge lists from several
// stages (roster reconciliation, parameter resolution, assignment) append in
// pipeline order so the final list reads top-down like the run itself.
package advisory

import (
	"errors"
	"fmt"
)

// ErrUnknownKind indicates a kind name that UnmarshalText does not know.
var ErrUnknownKind = errors.New("advisory: unknown kind")

// Kind classifies a note by the stage and reason that produced it.
type Kind int

const (
	// KindDefaultApplied marks a parameter that was not supplied and was derived.
	KindDefaultApplied Kind = iota

	// KindCapacityAdjustment marks a supplied people-per-table value that was
	// too small for the rotating population and was raised.
	KindCapacityAdjustment

	// KindCoverage marks a rounds/people-per-table combination under which each
	// sponsor can meet only part of the rotating population.
	KindCoverage

	// KindRosterReconciled marks rotators promoted to hosts, or sponsors demoted
	// to rotators, to match the requested table count.
	KindRosterReconciled

	// KindAssignmentStall marks seats that stayed empty because a round ran out
	// of unassigned rotators before every table was full.
	KindAssignmentStall
)

var kindNames = [...]string{
	KindDefaultApplied:     "default_applied",
	KindCapacityAdjustment: "capacity_adjustment",
	KindCoverage:           "coverage",
	KindRosterReconciled:   "roster_reconciled",
	KindAssignmentStall:    "assignment_stall",
}

// String returns the snake_case name of k, used in logs, metrics and JSON.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// MarshalText encodes k by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a name produced by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name == string(text) {
			*k = Kind(i)
			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrUnknownKind, text)
}

// Note is a single advisory message.
type Note struct {
	Kind    Kind   `json:"kind" yaml:"kind"`
	Message string `json:"message" yaml:"message"`
}

// List is an ordered sequence of notes. The zero value is an empty list.
type List []Note

// Add appends a note of the given kind.
func (l *List) Add(kind Kind, message string) {
	*l = append(*l, Note{Kind: kind, Message: message})
}

// Append appends every note of other, preserving order.
func (l *List) Append(other List) {
	*l = append(*l, other...)
}

// Messages returns the message text of every note in order.
func (l List) Messages() []string {
	out := make([]string, len(l))
	for i, n := range l {
		out[i] = n.Message
	}

	return out
}

// Has reports whether the list holds at least one note of kind.
func (l List) Has(kind Kind) bool {
	for _, n := range l {
		if n.Kind == kind {
			return true
		}
	}

	return false
}

// Count returns the number of notes of kind.
func (l List) Count(kind Kind) int {
	c := 0
	for _, n := range l {
		if n.Kind == kind {
			c++
		}
	}

	return c
}
