// SPDX-License-Identifier: MIT

package params

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// Sentinel errors returned by Resolve and Params.Validate.
//
// Every input failure wraps ErrInvalidInput, so callers may match either the
// class or the specific condition with errors.Is.
var (
	// ErrInvalidInput is the class of all fatal, pre-computation input failures.
	ErrInvalidInput = errors.New("params: invalid input")

	// ErrNoAttendees indicates TotalAttendees <= 0.
	ErrNoAttendees = fmt.Errorf("%w: attendees must be greater than 0", ErrInvalidInput)

	// ErrTooFewAttendees indicates the attendee count does not exceed the table
	// (and therefore sponsor) count.
	ErrTooFewAttendees = fmt.Errorf("%w: attendees must exceed tables", ErrInvalidInput)

	// ErrPeoplePerTableTooSmall indicates a supplied PeoplePerTable below 2.
	ErrPeoplePerTableTooSmall = fmt.Errorf("%w: peoplePerTable cannot be less than 2", ErrInvalidInput)

	// ErrInvalidOption indicates an option value outside its documented range.
	ErrInvalidOption = errors.New("params: invalid option")

	// ErrInvalidParams indicates a Params value that violates the resolved-tuple
	// invariants (see Params.Validate).
	ErrInvalidParams = errors.New("params: invalid resolved parameters")
)

// DefaultDensity is the target people-per-table used to derive a table count
// when neither Tables nor PeoplePerTable is supplied.
const DefaultDensity = 5

// Input is the partial, user-supplied event description.
//
// Zero means "unset" for every optional field. Tables and Rounds values <= 0
// are treated as unset. PeoplePerTable is different: 0 is unset, but any other
// value below 2 is a supplied value and fails validation.
type Input struct {
	TotalAttendees int `json:"totalAttendees" yaml:"total_attendees"`
	Tables         int `json:"tables,omitempty" yaml:"tables,omitempty"`
	Rounds         int `json:"rounds,omitempty" yaml:"rounds,omitempty"`
	PeoplePerTable int `json:"peoplePerTable,omitempty" yaml:"people_per_table,omitempty"`
}

// Params is a consistent, feasible event configuration.
//
// Participant indices follow a fixed layout: rotators occupy [0, Rotators),
// sponsors occupy [Rotators, Rotators+Sponsors), and sponsor i hosts table i.
// Params is a plain value; copies never alias.
type Params struct {
	Rotators       int `json:"rotators" yaml:"rotators"`
	Sponsors       int `json:"sponsors" yaml:"sponsors"`
	Tables         int `json:"tables" yaml:"tables"`
	Rounds         int `json:"rounds" yaml:"rounds"`
	PeoplePerTable int `json:"peoplePerTable" yaml:"people_per_table"`
}

// Total returns the participant count (rotators + sponsors).
func (p Params) Total() int { return p.Rotators + p.Sponsors }

// RotatingSeats returns the number of rotator seats at each table.
func (p Params) RotatingSeats() int { return p.PeoplePerTable - 1 }

// Capacity returns the rotator seats available in one round.
func (p Params) Capacity() int { return p.Tables * p.RotatingSeats() }

// SponsorIndex returns the participant index of the sponsor hosting table.
func (p Params) SponsorIndex(table int) int { return p.Rotators + table }

// IsSponsor reports whether participant is a sponsor.
func (p Params) IsSponsor(participant int) bool {
	return participant >= p.Rotators && participant < p.Total()
}

// Validate checks the resolved-tuple invariants:
// rotators >= 0, sponsors >= 1, tables == sponsors, rounds >= 1, peoplePerTable >= 2.
//
// Failures wrap ErrInvalidParams and name the offending field.
func (p Params) Validate() error {
	switch {
	case p.Rotators < 0:
		return fmt.Errorf("%w: rotators=%d must be >= 0", ErrInvalidParams, p.Rotators)
	case p.Sponsors < 1:
		return fmt.Errorf("%w: sponsors=%d must be >= 1", ErrInvalidParams, p.Sponsors)
	case p.Tables != p.Sponsors:
		return fmt.Errorf("%w: tables=%d must equal sponsors=%d", ErrInvalidParams, p.Tables, p.Sponsors)
	case p.Rounds < 1:
		return fmt.Errorf("%w: rounds=%d must be >= 1", ErrInvalidParams, p.Rounds)
	case p.PeoplePerTable < 2:
		return fmt.Errorf("%w: peoplePerTable=%d must be >= 2", ErrInvalidParams, p.PeoplePerTable)
	}

	return nil
}

// Options configures Resolve.
type Options struct {
	Language       language.Tag // advisory language; see Languages for translated tags
	DefaultDensity int          // derived-table target density, >= 2
}

// Option represents a functional option for configuring Resolve.
type Option func(*Options)

// WithLanguage selects the language of advisory messages. Tags without a
// translation keep the English text but still group numbers per locale.
func WithLanguage(tag language.Tag) Option {
	return func(o *Options) {
		o.Language = tag
	}
}

// WithDefaultDensity overrides the derived-table target density.
// Values below 2 make Resolve fail with ErrInvalidOption.
func WithDefaultDensity(n int) Option {
	return func(o *Options) {
		o.DefaultDensity = n
	}
}

// DefaultOptions returns the Options used when no Option is passed.
func DefaultOptions() Options {
	return Options{
		Language:       language.English,
		DefaultDensity: DefaultDensity,
	}
}
