// SPDX-License-Identifier: MIT

package seating

import (
	"fmt"

	"github.com/katalvlaran/seatplan/ledger"
	"github.com/katalvlaran/seatplan/params"
)

// Generate runs the greedy round-by-round assignment for p.
//
// Preconditions and validation:
//  1. p must satisfy params.Params.Validate (errors wrap params.ErrInvalidParams).
//  2. p must pass CheckSize (errors wrap ErrTooLarge).
//
// Returns:
//   - *Result: assignment table, per-table seating, meeting snapshot and stalls.
//   - error: invalid or oversized params, or a wrapped ledger error (not expected
//     for valid params).
//
// An empty seat or an unseated rotator is not an error; callers must tolerate
// Unassigned cells.
//
// Complexity:
//   - Time O(rounds × tables × seats² × rotators), Space O(N² + N × rounds).
func Generate(p params.Params) (*Result, error) {
	// 1) Validate the resolved tuple.
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("seating: %w", err)
	}
	if err := CheckSize(p); err != nil {
		return nil, err
	}

	// 2) Allocate state owned exclusively by this run.
	led, err := ledger.New(p.Total())
	if err != nil {
		return nil, fmt.Errorf("seating: %w", err)
	}
	r := newRunner(p, led)

	// 3) Rounds are independent except for the ledger.
	for round := 0; round < p.Rounds; round++ {
		if err = r.runRound(round); err != nil {
			return nil, fmt.Errorf("seating: round %d: %w", round, err)
		}
	}

	// 4) Freeze.
	return &Result{
		params:   p,
		cells:    r.cells,
		seats:    r.seats,
		meetings: led.Snapshot(),
		stalls:   r.stalls,
	}, nil
}

// CheckSize rejects params whose ledger or assignment table would exceed
// ledger.MaxParticipants or MaxCells, or whose tables are wider than
// ledger.MaxParticipants seats. It does not allocate.
func CheckSize(p params.Params) error {
	n := p.Total()
	switch {
	case n > ledger.MaxParticipants:
		return fmt.Errorf("%w: %d participants, max %d", ErrTooLarge, n, ledger.MaxParticipants)
	case n > 0 && p.Rounds > MaxCells/n:
		return fmt.Errorf("%w: %d participants x %d rounds, max %d cells", ErrTooLarge, n, p.Rounds, MaxCells)
	case p.PeoplePerTable > ledger.MaxParticipants:
		return fmt.Errorf("%w: %d people per table, max %d", ErrTooLarge, p.PeoplePerTable, ledger.MaxParticipants)
	}

	return nil
}

// runner holds the mutable state of one Generate call.
type runner struct {
	p      params.Params
	led    *ledger.Ledger
	cells  []int
	seats  [][][]int
	stalls []Stall
	pool   pool
}

func newRunner(p params.Params, led *ledger.Ledger) *runner {
	cells := make([]int, p.Total()*p.Rounds)
	for i := range cells {
		cells[i] = Unassigned
	}
	seats := make([][][]int, p.Rounds)
	for round := range seats {
		seats[round] = make([][]int, p.Tables)
	}

	return &runner{
		p:     p,
		led:   led,
		cells: cells,
		seats: seats,
		pool:  pool{members: make([]int, 0, p.Rotators)},
	}
}

// runRound pins sponsors, then fills each table from the pool.
func (r *runner) runRound(round int) error {
	// Sponsor i always hosts table i.
	for t := 0; t < r.p.Tables; t++ {
		r.cells[r.p.SponsorIndex(t)*r.p.Rounds+round] = t
	}

	r.pool.reset(r.p.Rotators)
	seatsPerTable := r.p.RotatingSeats()

	for t := 0; t < r.p.Tables; t++ {
		at := make([]int, 1, min(seatsPerTable, r.p.Rotators)+1)
		at[0] = r.p.SponsorIndex(t)

		for seat := 0; seat < seatsPerTable; seat++ {
			if r.pool.empty() {
				r.stalls = append(r.stalls, Stall{Round: round, Table: t, Unfilled: seatsPerTable - seat})
				break
			}
			pos, cand, err := r.pick(at)
			if err != nil {
				return err
			}
			if err = r.seat(cand, at); err != nil {
				return err
			}
			r.cells[cand*r.p.Rounds+round] = t
			at = append(at, cand)
			r.pool.removeAt(pos)
		}
		r.seats[round][t] = at
	}

	return nil
}

// pick returns the pool position and index of the lowest-penalty candidate
// for a table currently holding at. Strict comparison over an ascending pool
// resolves ties to the lowest index.
func (r *runner) pick(at []int) (pos, cand int, err error) {
	pos, cand = -1, -1
	best := 0
	for i, c := range r.pool.members {
		pen, err := r.penalty(c, at)
		if err != nil {
			return -1, -1, err
		}
		if pos < 0 || pen < best {
			pos, cand, best = i, c, pen
		}
	}

	return pos, cand, nil
}

// penalty scores candidate c against everyone at the table.
func (r *runner) penalty(c int, at []int) (int, error) {
	repeat := 0
	for _, x := range at {
		m, err := r.led.At(c, x)
		if err != nil {
			return 0, err
		}
		repeat += m * m
	}
	unique, err := r.led.Unique(c)
	if err != nil {
		return 0, err
	}

	return RepeatWeight*repeat + unique, nil
}

// seat records one meeting between c and every person already at the table.
func (r *runner) seat(c int, at []int) error {
	for _, x := range at {
		if _, err := r.led.Record(c, x); err != nil {
			return err
		}
	}

	return nil
}
