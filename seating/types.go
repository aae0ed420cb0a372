// SPDX-License-Identifier: MIT

package seating

import (
	"errors"

	"github.com/katalvlaran/seatplan/ledger"
	"github.com/katalvlaran/seatplan/params"
)

// Unassigned marks an assignment cell with no table.
const Unassigned = -1

// RepeatWeight scales the squared repeat-meeting term of the seat penalty.
const RepeatWeight = 3

// MaxCells bounds participants × rounds, the size of the assignment table.
const MaxCells = 1 << 24

var (
	// ErrOutOfRange indicates a participant, round or table index outside the result.
	ErrOutOfRange = errors.New("seating: index out of range")

	// ErrTooLarge indicates a plan whose state would not fit the run limits.
	ErrTooLarge = errors.New("seating: plan too large")
)

// Stall records seats left empty because the round's pool ran out of rotators.
type Stall struct {
	Round    int `json:"round"`
	Table    int `json:"table"`
	Unfilled int `json:"unfilled"`
}

// Result is the immutable outcome of one Generate run.
type Result struct {
	params   params.Params
	cells    []int       // participant*rounds + round → table or Unassigned
	seats    [][][]int   // [round][table] → host, then rotators in seating order
	meetings *ledger.Snapshot
	stalls   []Stall
}

// Params returns the parameters the result was generated from.
func (r *Result) Params() params.Params { return r.params }

// Table returns the table of participant in round. ok is false when the
// participant was not seated that round or an index is out of range.
func (r *Result) Table(participant, round int) (table int, ok bool) {
	if participant < 0 || participant >= r.params.Total() || round < 0 || round >= r.params.Rounds {
		return Unassigned, false
	}
	t := r.cells[participant*r.params.Rounds+round]

	return t, t != Unassigned
}

// Assignments returns a fresh [participant][round] copy of the assignment
// table. Unseated cells hold Unassigned.
func (r *Result) Assignments() [][]int {
	n, rounds := r.params.Total(), r.params.Rounds
	out := make([][]int, n)
	for i := 0; i < n; i++ {
		out[i] = make([]int, rounds)
		copy(out[i], r.cells[i*rounds:(i+1)*rounds])
	}

	return out
}

// Members returns who sat at table in round: the host first, then rotators
// in the order they were seated.
func (r *Result) Members(round, table int) ([]int, error) {
	if round < 0 || round >= r.params.Rounds || table < 0 || table >= r.params.Tables {
		return nil, ErrOutOfRange
	}
	src := r.seats[round][table]
	out := make([]int, len(src))
	copy(out, src)

	return out, nil
}

// Meetings returns the read-only pair meeting matrix.
func (r *Result) Meetings() *ledger.Snapshot { return r.meetings }

// Stalls returns a copy of every recorded stall in (round, table) order.
func (r *Result) Stalls() []Stall {
	out := make([]Stall, len(r.stalls))
	copy(out, r.stalls)

	return out
}

// Unseated returns the rotators without a table in round, ascending.
func (r *Result) Unseated(round int) ([]int, error) {
	if round < 0 || round >= r.params.Rounds {
		return nil, ErrOutOfRange
	}
	var out []int
	for i := 0; i < r.params.Rotators; i++ {
		if r.cells[i*r.params.Rounds+round] == Unassigned {
			out = append(out, i)
		}
	}

	return out, nil
}

// UnfilledSeats returns the total number of empty rotator seats across all rounds.
func (r *Result) UnfilledSeats() int {
	total := 0
	for _, s := range r.stalls {
		total += s.Unfilled
	}

	return total
}
