// SPDX-License-Identifier: MIT

package ledger

import "fmt"

// Snapshot is a frozen copy of a Ledger. It exposes no mutators, and every
// slice it returns is a fresh copy, so a Snapshot can be shared freely
// between goroutines.
type Snapshot struct {
	n      int
	meet   []int
	unique []int
}

// Size returns the participant count.
func (s *Snapshot) Size() int { return s.n }

// At returns the number of rounds i and j shared a table.
// The diagonal reads as 0 rather than failing, which keeps row scans simple.
func (s *Snapshot) At(i, j int) (int, error) {
	if i < 0 || i >= s.n || j < 0 || j >= s.n {
		return 0, fmt.Errorf("Snapshot.At(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if i == j {
		return 0, nil
	}

	return s.meet[i*s.n+j], nil
}

// Unique returns the number of distinct participants i met.
func (s *Snapshot) Unique(i int) (int, error) {
	if i < 0 || i >= s.n {
		return 0, fmt.Errorf("Snapshot.Unique(%d): %w", i, ErrOutOfRange)
	}

	return s.unique[i], nil
}

// Row returns a copy of participant i's meeting counts (len n, diagonal 0).
func (s *Snapshot) Row(i int) ([]int, error) {
	if i < 0 || i >= s.n {
		return nil, fmt.Errorf("Snapshot.Row(%d): %w", i, ErrOutOfRange)
	}
	row := make([]int, s.n)
	copy(row, s.meet[i*s.n:(i+1)*s.n])
	row[i] = 0

	return row, nil
}

// Matrix returns the full meeting matrix as a fresh [n][n] copy.
func (s *Snapshot) Matrix() [][]int {
	out := make([][]int, s.n)
	for i := 0; i < s.n; i++ {
		out[i] = make([]int, s.n)
		copy(out[i], s.meet[i*s.n:(i+1)*s.n])
		out[i][i] = 0
	}

	return out
}

// UniqueCounts returns a copy of every participant's unique-connection count.
func (s *Snapshot) UniqueCounts() []int {
	out := make([]int, s.n)
	copy(out, s.unique)

	return out
}

// EachPair calls fn once for every unordered pair i < j in row-major order.
// Iteration stops early when fn returns false.
func (s *Snapshot) EachPair(fn func(i, j, meetings int) bool) {
	for i := 0; i < s.n; i++ {
		base := i * s.n
		for j := i + 1; j < s.n; j++ {
			if !fn(i, j, s.meet[base+j]) {
				return
			}
		}
	}
}

// Verify checks the ledger invariants:
//   - meetings[i][j] == meetings[j][i] for every pair (ErrAsymmetry);
//   - unique[i] == |{j : meetings[i][j] > 0}| for every i (ErrUniqueMismatch).
//
// Complexity: O(n²).
func (s *Snapshot) Verify() error {
	for i := 0; i < s.n; i++ {
		met := 0
		for j := 0; j < s.n; j++ {
			if i == j {
				continue
			}
			v := s.meet[i*s.n+j]
			if v != s.meet[j*s.n+i] {
				return fmt.Errorf("Snapshot.Verify(%d,%d): %w", i, j, ErrAsymmetry)
			}
			if v > 0 {
				met++
			}
		}
		if met != s.unique[i] {
			return fmt.Errorf("Snapshot.Verify(%d): unique=%d met=%d: %w", i, s.unique[i], met, ErrUniqueMismatch)
		}
	}

	return nil
}
