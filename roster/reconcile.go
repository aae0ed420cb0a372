// SPDX-License-Identifier: MIT

package roster

import (
	"fmt"

	"github.com/katalvlaran/seatplan/advisory"
)

// Reconcile adjusts r so that it has exactly tables sponsors.
//
//   - tables > sponsors: the first (tables−sponsors) rotators are promoted.
//     Order becomes remaining rotators, original sponsors, promoted.
//   - tables < sponsors: sponsors beyond the first tables are demoted.
//     Order becomes rotators, demoted, kept sponsors.
//   - tables == sponsors or tables <= 0: r is returned unchanged.
//
// Each change adds one KindRosterReconciled note.
//
// Errors:
//   - ErrNotEnoughHosts when promotions exceed the available rotators.
//   - ErrDuplicateSponsor when a promoted rotator shares a sponsor's name.
func Reconcile(r Roster, tables int) (Roster, advisory.List, error) {
	sponsors := r.Sponsors()
	if tables <= 0 || tables == sponsors {
		return r, nil, nil
	}

	rot := r.people[:r.rotators]
	spon := r.people[r.rotators:]
	var notes advisory.List

	if tables > sponsors {
		need := tables - sponsors
		if need > len(rot) {
			return Roster{}, nil, fmt.Errorf("%w: requested %d tables, have %d sponsors and %d rotators",
				ErrNotEnoughHosts, tables, sponsors, len(rot))
		}
		hosts := make([]Participant, 0, tables)
		hosts = append(hosts, spon...)
		hosts = append(hosts, rot[:need]...)
		out, err := build(rot[need:], hosts)
		if err != nil {
			return Roster{}, nil, err
		}
		notes.Add(advisory.KindRosterReconciled, fmt.Sprintf(
			"%d rotating attendee(s) were assigned as table hosts to meet the specified %d tables.", need, tables))

		return out, notes, nil
	}

	drop := sponsors - tables
	movers := make([]Participant, 0, len(rot)+drop)
	movers = append(movers, rot...)
	movers = append(movers, spon[tables:]...)
	out, err := build(movers, spon[:tables])
	if err != nil {
		return Roster{}, nil, err
	}
	notes.Add(advisory.KindRosterReconciled, fmt.Sprintf(
		"%d sponsor(s) were reassigned as rotating attendees to match the specified %d tables.", drop, tables))

	return out, notes, nil
}
