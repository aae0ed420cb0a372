// SPDX-License-Identifier: MIT

package params

import (
	"fmt"

	"github.com/katalvlaran/seatplan/advisory"
)

// Resolve derives a feasible Params tuple from in.
//
// Returns:
//   - Params: the resolved configuration (zero value on error).
//   - advisory.List: notes for every default or correction, in resolution order
//     (nil on error).
//   - error: ErrNoAttendees, ErrTooFewAttendees, ErrPeoplePerTableTooSmall
//     (all wrap ErrInvalidInput) or ErrInvalidOption. Nothing partial is
//     returned alongside an error.
//
// Determinism:
//   - Identical input and options always yield identical output, including
//     note text.
//
// Complexity:
//   - Time O(1), Space O(1).
func Resolve(in Input, opts ...Option) (Params, advisory.List, error) {
	// Stage 0: options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validateOptions(cfg); err != nil {
		return Params{}, nil, err
	}
	pr := newPrinter(cfg.Language)

	var notes advisory.List

	// Stage 1: attendee count.
	if err := validateAttendees(in.TotalAttendees); err != nil {
		return Params{}, nil, err
	}
	total := in.TotalAttendees

	// Stage 2: tables.
	tables := in.Tables
	if tables <= 0 {
		if in.PeoplePerTable > 1 {
			tables = ceilDiv(total, in.PeoplePerTable)
			notes.Add(advisory.KindDefaultApplied, pr.Sprintf(msgTablesFromPeoplePerTable, tables))
		} else {
			tables = ceilDiv(total, cfg.DefaultDensity)
			notes.Add(advisory.KindDefaultApplied, pr.Sprintf(msgTablesFromDensity, tables, cfg.DefaultDensity))
		}
		tables = max(1, tables)
	}

	// Stage 3: one sponsor per table.
	sponsors := tables

	// Stage 4: there must be someone to rotate.
	if err := validateAttendeesExceedTables(total, sponsors); err != nil {
		return Params{}, nil, err
	}

	// Stage 5: rotators.
	rotators := total - sponsors

	// Stage 6: people per table.
	if err := validatePeoplePerTable(in.PeoplePerTable); err != nil {
		return Params{}, nil, err
	}
	fitting := ceilDiv(rotators, tables) + 1
	ppt := in.PeoplePerTable
	switch {
	case ppt >= 2:
		if tables*(ppt-1) < rotators {
			notes.Add(advisory.KindCapacityAdjustment, pr.Sprintf(msgPeoplePerTableRaised, ppt, rotators, fitting))
			ppt = fitting
		}
	default:
		ppt = fitting
		notes.Add(advisory.KindDefaultApplied, pr.Sprintf(msgPeoplePerTableDerived, ppt))
	}

	// Stage 7: rounds.
	rounds := in.Rounds
	if rounds <= 0 {
		rounds = sponsors
		notes.Add(advisory.KindDefaultApplied, pr.Sprintf(msgRoundsDerived, rounds))
	}

	// Stage 8: sponsor coverage.
	if reach := rounds * (ppt - 1); reach < rotators {
		notes.Add(advisory.KindCoverage, pr.Sprintf(msgSponsorCoverage, reach, rotators))
	}

	p := Params{
		Rotators:       rotators,
		Sponsors:       sponsors,
		Tables:         tables,
		Rounds:         rounds,
		PeoplePerTable: ppt,
	}
	// The stages above establish every invariant; a failure here is a bug.
	if err := p.Validate(); err != nil {
		return Params{}, nil, fmt.Errorf("resolve: %w", err)
	}

	return p, notes, nil
}

// ceilDiv returns ceil(a/b) for a >= 0 and b > 0.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
