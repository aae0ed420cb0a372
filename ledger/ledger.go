// SPDX-License-Identifier: MIT

// Package ledger - pair meeting bookkeeping (row-major) & read-only snapshots.
//
// Purpose:
//   - Count, for every pair of participants, the rounds in which they shared a table.
//   - Maintain, per participant, the number of distinct others met at least once.
//   - Keep both structures consistent on every update: the matrix stays symmetric,
//     and unique[i] == |{j : meetings[i][j] > 0}| at all times.
//
// Ownership:
//   - A *Ledger is owned and mutated by exactly one generation run.
//   - Snapshot() produces an independent copy that is never mutated again; that copy
//     is the only form handed to callers.
//
// Complexity quicksheet:
//   - New: O(n²) zero-init; At/Unique/Record: O(1); Snapshot: O(n²) copy.
package ledger

import "fmt"

// ledgerErrorf wraps a sentinel with method context and coordinates.
func ledgerErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Ledger.%s(%d,%d): %w", method, i, j, err)
}

// MaxParticipants bounds n so the n×n buffer stays within 512 MiB on 64-bit
// platforms and n*n never overflows int.
const MaxParticipants = 1 << 13

// Ledger is the mutable meeting state of one run.
//   - n is the participant count.
//   - meet is a flat n×n buffer; offset = i*n + j. The diagonal is unused.
//   - unique[i] counts the j with meet[i*n+j] > 0.
type Ledger struct {
	n      int
	meet   []int
	unique []int
}

// New allocates a zero-filled ledger for n participants.
//
// Errors:
//   - ErrBadSize if n < 1.
//   - ErrTooLarge if n > MaxParticipants.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func New(n int) (*Ledger, error) {
	if n < 1 {
		return nil, ErrBadSize
	}
	if n > MaxParticipants {
		return nil, fmt.Errorf("%w: n=%d, max %d", ErrTooLarge, n, MaxParticipants)
	}

	return &Ledger{
		n:      n,
		meet:   make([]int, n*n),
		unique: make([]int, n),
	}, nil
}

// Size returns the participant count.
func (l *Ledger) Size() int { return l.n }

// At returns the number of rounds i and j have shared a table.
//
// Errors:
//   - ErrOutOfRange for indices outside [0, n).
//   - ErrSelfPair for i == j.
func (l *Ledger) At(i, j int) (int, error) {
	if err := l.checkPair(i, j); err != nil {
		return 0, ledgerErrorf("At", i, j, err)
	}

	return l.meet[i*l.n+j], nil
}

// Unique returns the number of distinct participants i has met.
func (l *Ledger) Unique(i int) (int, error) {
	if i < 0 || i >= l.n {
		return 0, ledgerErrorf("Unique", i, i, ErrOutOfRange)
	}

	return l.unique[i], nil
}

// Record registers one shared round for the pair (i, j).
//
// Implementation:
//   - Stage 1: validate indices and reject the diagonal.
//   - Stage 2: on a 0→1 transition increment both unique counters.
//   - Stage 3: increment both [i][j] and [j][i].
//
// Returns:
//   - first: true when this was the pair's first meeting.
//
// Complexity:
//   - Time O(1).
func (l *Ledger) Record(i, j int) (first bool, err error) {
	if err = l.checkPair(i, j); err != nil {
		return false, ledgerErrorf("Record", i, j, err)
	}

	ij, ji := i*l.n+j, j*l.n+i
	if l.meet[ij] == 0 {
		l.unique[i]++
		l.unique[j]++
		first = true
	}
	l.meet[ij]++
	l.meet[ji]++

	return first, nil
}

// Snapshot returns an independent, read-only copy of the current state.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func (l *Ledger) Snapshot() *Snapshot {
	s := &Snapshot{
		n:      l.n,
		meet:   make([]int, len(l.meet)),
		unique: make([]int, len(l.unique)),
	}
	copy(s.meet, l.meet)
	copy(s.unique, l.unique)

	return s
}

func (l *Ledger) checkPair(i, j int) error {
	if i < 0 || i >= l.n || j < 0 || j >= l.n {
		return ErrOutOfRange
	}
	if i == j {
		return ErrSelfPair
	}

	return nil
}
