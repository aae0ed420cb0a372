// SPDX-License-Identifier: MIT
// Package ledger: sentinel error set.
// Every message is prefixed with "ledger: ..." so it greps cleanly in logs.
// Accessors return these instead of panicking; callers match with errors.Is.

package ledger

import "errors"

var (
	// ErrBadSize is returned when a ledger is requested for fewer than one participant.
	ErrBadSize = errors.New("ledger: participant count must be > 0")

	// ErrTooLarge is returned when n exceeds MaxParticipants.
	ErrTooLarge = errors.New("ledger: participant count exceeds MaxParticipants")

	// ErrOutOfRange indicates a participant index outside [0, n).
	ErrOutOfRange = errors.New("ledger: participant index out of range")

	// ErrSelfPair indicates an operation on the unused diagonal (i == j).
	ErrSelfPair = errors.New("ledger: participant cannot meet itself")

	// ErrAsymmetry signals meetings[i][j] != meetings[j][i].
	ErrAsymmetry = errors.New("ledger: meeting matrix is not symmetric")

	// ErrUniqueMismatch signals that a unique-connection counter disagrees with
	// the number of non-zero entries in its row.
	ErrUniqueMismatch = errors.New("ledger: unique connection count mismatch")
)
