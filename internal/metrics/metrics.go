// SPDX-License-Identifier: MIT

// Package metrics records planner outcomes. Recorder is the planner-facing
// interface; Nop discards everything and Prometheus exports counters and a
// duration histogram.
package metrics

// Outcome labels for RecordPlan.
const (
	OutcomeOK        = "ok"
	OutcomeInvalid   = "invalid"
	OutcomeCancelled = "cancelled"
	OutcomeError     = "error"
)

// Recorder receives one call per finished plan plus one per advisory note.
type Recorder interface {
	// RecordPlan observes a finished Plan call and how long it took.
	RecordPlan(outcome string, seconds float64)
	// RecordAdvisory counts one advisory note of the given kind.
	RecordAdvisory(kind string)
	// RecordUnfilledSeats adds the number of seats left empty by a run.
	RecordUnfilledSeats(n int)
}

// Nop implements Recorder by discarding every observation.
type Nop struct{}

var _ Recorder = Nop{}

// NewNop returns a Recorder that does nothing.
func NewNop() Nop { return Nop{} }

// RecordPlan discards the observation.
func (Nop) RecordPlan(_ /* outcome */ string, _ /* seconds */ float64) {}

// RecordAdvisory discards the observation.
func (Nop) RecordAdvisory(_ /* kind */ string) {}

// RecordUnfilledSeats discards the observation.
func (Nop) RecordUnfilledSeats(_ /* n */ int) {}
