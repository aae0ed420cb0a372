package ledger

// SetRawForTest overwrites a single matrix cell without touching its mirror
// or the unique counters, so tests can build corrupted snapshots.
func (s *Snapshot) SetRawForTest(i, j, v int) { s.meet[i*s.n+j] = v }

// SetUniqueForTest overwrites a unique-connection counter.
func (s *Snapshot) SetUniqueForTest(i, v int) { s.unique[i] = v }
