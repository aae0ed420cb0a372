// SPDX-License-Identifier: MIT

package params

import "fmt"

// validateOptions rejects option values outside their documented range.
func validateOptions(o Options) error {
	if o.DefaultDensity < 2 {
		return fmt.Errorf("%w: default density %d must be >= 2", ErrInvalidOption, o.DefaultDensity)
	}

	return nil
}

// validateAttendees requires a positive attendee count.
func validateAttendees(total int) error {
	if total <= 0 {
		return ErrNoAttendees
	}

	return nil
}

// validateAttendeesExceedTables requires at least one rotator.
func validateAttendeesExceedTables(total, tables int) error {
	if total <= tables {
		return ErrTooFewAttendees
	}

	return nil
}

// validatePeoplePerTable rejects supplied values below 2; 0 means unset.
func validatePeoplePerTable(ppt int) error {
	if ppt != 0 && ppt < 2 {
		return ErrPeoplePerTableTooSmall
	}

	return nil
}
