// Package seating assigns rotating attendees to sponsor-hosted tables round by
// round, minimizing repeat pairings.
//
// 🚀 What does it compute?
//
//	Given resolved event parameters (see package params), Generate produces
//	an assignment table [participant][round] → table and a symmetric pair
//	meeting matrix counting the rounds each pair shared a table.
//
// ✨ Algorithm (greedy, per round):
//
//  1. Pin sponsor i to table i.
//  2. Reset the pool of unassigned rotators to 0..R−1, ascending.
//  3. For each table in index order, fill up to PeoplePerTable−1 seats one
//     at a time. Every pooled candidate c is scored
//
//     penalty(c) = 3 × Σ meetings[c][x]²  +  unique[c]
//
//     over x ∈ {host} ∪ {rotators already seated at this table}. The squared
//     term makes a second meeting with the same person cost far more than a
//     first meeting with someone new; the linear term favors candidates with
//     fewer distinct connections so far. The strict minimum wins and ties go
//     to the lowest participant index.
//  4. Seat the winner, record a meeting with everyone already at the table,
//     and drop it from the pool. A pool that runs dry leaves seats empty
//     (recorded as a Stall); rotators left over keep Unassigned.
//
// Only the meeting ledger carries over between rounds.
//
// Guarantees:
//   - Deterministic: no randomness, no map iteration; identical Params give
//     identical Results.
//   - Pure: no I/O, no goroutines, no shared state. Concurrent calls are safe,
//     since each owns freshly allocated state.
//   - The returned Result is immutable; accessors hand out copies.
//
// Complexity:
//
//	Time  = O(rounds × tables × seats × rotators × seats)
//	Memory = O(N² + N × rounds), N = rotators + sponsors
//
// Usage:
//
//	p, _, err := params.Resolve(params.Input{TotalAttendees: 20})
//	res, err := seating.Generate(p)
//	table, ok := res.Table(0, 2) // rotator 0, round 3
package seating
