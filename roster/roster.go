// SPDX-License-Identifier: MIT

// Package roster models the named participant list behind an event: who
// rotates, who hosts, and how the list is reconciled with a table count.
//
// A Roster is always ordered rotators first, then sponsors, which matches the
// participant index layout of package params: rotator i is participant i and
// sponsor k (hosting table k) is participant Rotators()+k.
package roster

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors.
var (
	// ErrEmptyRoster indicates a list with no named participants.
	ErrEmptyRoster = errors.New("roster: no participants")

	// ErrDuplicateSponsor indicates two sponsors share a name; sponsor names
	// label tables and must be unique.
	ErrDuplicateSponsor = errors.New("roster: sponsor names must be unique")

	// ErrNotEnoughHosts indicates more tables were requested than there are
	// sponsors plus rotators available to promote.
	ErrNotEnoughHosts = errors.New("roster: not enough participants to host every table")

	// ErrUnsupportedFormat indicates a roster file with an unknown extension.
	ErrUnsupportedFormat = errors.New("roster: unsupported file format")

	// ErrMissingColumn indicates a CSV roster without a name column.
	ErrMissingColumn = errors.New("roster: missing name column")
)

// Role is a participant's part in the event.
type Role int

const (
	// Rotator changes tables between rounds.
	Rotator Role = iota
	// Sponsor hosts one fixed table for every round.
	Sponsor
)

// String returns "rotator" or "sponsor".
func (r Role) String() string {
	if r == Sponsor {
		return "sponsor"
	}

	return "rotator"
}

// MarshalText encodes the role by name.
func (r Role) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// ParseRole maps free text to a role: "sponsor" (any case, surrounding space
// ignored) is a sponsor, anything else is a rotator.
func ParseRole(s string) Role {
	if strings.EqualFold(strings.TrimSpace(s), "sponsor") {
		return Sponsor
	}

	return Rotator
}

// Participant is one named person.
type Participant struct {
	Name string `json:"name" yaml:"name"`
	Role Role   `json:"role" yaml:"role"`
}

// Roster is an ordered, validated participant list.
type Roster struct {
	people   []Participant
	rotators int
}

// New builds a Roster from ps.
//
// Implementation:
//   - Stage 1: trim names and drop entries whose name is empty.
//   - Stage 2: stable-partition into rotators then sponsors.
//   - Stage 3: reject duplicate sponsor names.
//
// Errors: ErrEmptyRoster, ErrDuplicateSponsor.
func New(ps []Participant) (Roster, error) {
	var rot, spon []Participant
	for _, p := range ps {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			continue
		}
		p.Name = name
		if p.Role == Sponsor {
			spon = append(spon, p)
		} else {
			rot = append(rot, Participant{Name: name, Role: Rotator})
		}
	}
	if len(rot)+len(spon) == 0 {
		return Roster{}, ErrEmptyRoster
	}

	return build(rot, spon)
}

// build joins already-partitioned slices and checks sponsor uniqueness.
func build(rot, spon []Participant) (Roster, error) {
	seen := make(map[string]struct{}, len(spon))
	for _, s := range spon {
		if _, dup := seen[s.Name]; dup {
			return Roster{}, fmt.Errorf("%w: %q", ErrDuplicateSponsor, s.Name)
		}
		seen[s.Name] = struct{}{}
	}
	people := make([]Participant, 0, len(rot)+len(spon))
	for _, p := range rot {
		people = append(people, Participant{Name: p.Name, Role: Rotator})
	}
	for _, p := range spon {
		people = append(people, Participant{Name: p.Name, Role: Sponsor})
	}

	return Roster{people: people, rotators: len(rot)}, nil
}

// Len returns the participant count.
func (r Roster) Len() int { return len(r.people) }

// Rotators returns the number of rotators.
func (r Roster) Rotators() int { return r.rotators }

// Sponsors returns the number of sponsors.
func (r Roster) Sponsors() int { return len(r.people) - r.rotators }

// Participants returns a copy of the ordered list.
func (r Roster) Participants() []Participant {
	out := make([]Participant, len(r.people))
	copy(out, r.people)

	return out
}

// Labels returns one display label per participant index. Sponsors are
// labelled "Name (Table k)" with k 1-based.
func (r Roster) Labels() []string {
	out := make([]string, len(r.people))
	for i, p := range r.people {
		if p.Role == Sponsor {
			out[i] = fmt.Sprintf("%s (Table %d)", p.Name, i-r.rotators+1)
			continue
		}
		out[i] = p.Name
	}

	return out
}

// GenericLabels returns placeholder labels for an unnamed event:
// "Attendee 1".."Attendee R", then "Sponsor 1 (Table 1)".."Sponsor S (Table S)".
func GenericLabels(rotators, sponsors int) []string {
	out := make([]string, 0, rotators+sponsors)
	for i := 1; i <= rotators; i++ {
		out = append(out, fmt.Sprintf("Attendee %d", i))
	}
	for i := 1; i <= sponsors; i++ {
		out = append(out, fmt.Sprintf("Sponsor %d (Table %d)", i, i))
	}

	return out
}
