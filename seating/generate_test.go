// Package seating_test validates the greedy engine: sponsor pinning, seat
// capacity, ledger invariants, determinism and the worked scenarios.
package seating_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seatplan/ledger"
	"github.com/katalvlaran/seatplan/params"
	"github.com/katalvlaran/seatplan/seating"
)

// resolve is a test helper that fails fast on resolver errors.
func resolve(t *testing.T, in params.Input) params.Params {
	t.Helper()
	p, _, err := params.Resolve(in)
	require.NoError(t, err)

	return p
}

// checkInvariants asserts every structural property a Result must satisfy.
func checkInvariants(t *testing.T, res *seating.Result) {
	t.Helper()
	p := res.Params()
	asg := res.Assignments()
	require.Len(t, asg, p.Total())

	// Sponsors are pinned to their own table every round.
	for s := 0; s < p.Sponsors; s++ {
		for round := 0; round < p.Rounds; round++ {
			assert.Equal(t, s, asg[p.SponsorIndex(s)][round], "sponsor %d round %d", s, round)
		}
	}

	// Table occupancy matches Members and never exceeds capacity; each
	// participant appears at one table at most per round.
	expectedPairMeetings := 0
	for round := 0; round < p.Rounds; round++ {
		seen := make(map[int]bool)
		for tbl := 0; tbl < p.Tables; tbl++ {
			members, err := res.Members(round, tbl)
			require.NoError(t, err)
			require.NotEmpty(t, members)
			assert.Equal(t, p.SponsorIndex(tbl), members[0], "host sits first")
			assert.LessOrEqual(t, len(members), p.PeoplePerTable)
			for _, m := range members {
				assert.False(t, seen[m], "participant %d seated twice in round %d", m, round)
				seen[m] = true
				assert.Equal(t, tbl, asg[m][round])
			}
			k := len(members)
			expectedPairMeetings += k * (k - 1) / 2
		}
		for i := 0; i < p.Total(); i++ {
			if !seen[i] {
				assert.Equal(t, seating.Unassigned, asg[i][round])
			}
		}
	}

	// Ledger: symmetric, unique counters consistent, and its total equals the
	// pair meetings implied by the assignment table.
	snap := res.Meetings()
	require.NoError(t, snap.Verify())
	total := 0
	snap.EachPair(func(_, _, m int) bool {
		total += m
		return true
	})
	assert.Equal(t, expectedPairMeetings, total)
}

func TestGenerate_InvalidParams(t *testing.T) {
	_, err := seating.Generate(params.Params{Rotators: 4, Sponsors: 2, Tables: 3, Rounds: 1, PeoplePerTable: 3})
	assert.ErrorIs(t, err, params.ErrInvalidParams)

	_, err = seating.Generate(params.Params{})
	assert.ErrorIs(t, err, params.ErrInvalidParams)
}

func TestGenerate_TooLargeFailsWithoutAllocating(t *testing.T) {
	maxInt := int(^uint(0) >> 1)

	// Resolves cleanly, but the ledger would need n*n cells.
	p, _, err := params.Resolve(params.Input{TotalAttendees: maxInt / 2, Tables: 1, Rounds: 1})
	require.NoError(t, err)
	_, err = seating.Generate(p)
	assert.ErrorIs(t, err, seating.ErrTooLarge)

	cases := []params.Params{
		{Rotators: ledger.MaxParticipants, Sponsors: 1, Tables: 1, Rounds: 1, PeoplePerTable: 2},
		{Rotators: 9, Sponsors: 1, Tables: 1, Rounds: seating.MaxCells/10 + 1, PeoplePerTable: 4},
		{Rotators: 9, Sponsors: 1, Tables: 1, Rounds: maxInt, PeoplePerTable: 4},
		{Rotators: 4, Sponsors: 1, Tables: 1, Rounds: 1, PeoplePerTable: maxInt},
	}
	for _, p := range cases {
		_, err := seating.Generate(p)
		assert.ErrorIs(t, err, seating.ErrTooLarge, "%+v", p)
	}
}

func TestCheckSize_AtLimits(t *testing.T) {
	assert.NoError(t, seating.CheckSize(params.Params{
		Rotators: ledger.MaxParticipants - 1, Sponsors: 1, Tables: 1, Rounds: 1, PeoplePerTable: 2}))
	assert.NoError(t, seating.CheckSize(params.Params{
		Rotators: 7, Sponsors: 1, Tables: 1, Rounds: seating.MaxCells / 8, PeoplePerTable: ledger.MaxParticipants}))
}

func TestGenerate_WideTablesStallWithoutPanicking(t *testing.T) {
	// Seats far beyond the rotator count: every rotator sits at table 0.
	p := params.Params{Rotators: 3, Sponsors: 2, Tables: 2, Rounds: 1, PeoplePerTable: ledger.MaxParticipants}
	res, err := seating.Generate(p)
	require.NoError(t, err)

	members, err := res.Members(0, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 0, 1, 2}, members)
	assert.Equal(t, 2*(ledger.MaxParticipants-1)-3, res.UnfilledSeats())
	checkInvariants(t, res)
}

func TestGenerate_ScenarioA(t *testing.T) {
	p := resolve(t, params.Input{TotalAttendees: 20})
	res, err := seating.Generate(p)
	require.NoError(t, err)

	asg := res.Assignments()
	require.Len(t, asg, 20)
	for _, row := range asg {
		require.Len(t, row, 4)
	}
	for i := 0; i < p.Rotators; i++ {
		for round := 0; round < p.Rounds; round++ {
			_, ok := res.Table(i, round)
			assert.True(t, ok, "16 rotators fill 4x4 seats exactly")
		}
	}
	assert.Empty(t, res.Stalls())
	checkInvariants(t, res)
}

func TestGenerate_ScenarioA_FirstRoundsTraced(t *testing.T) {
	res, err := seating.Generate(resolve(t, params.Input{TotalAttendees: 20}))
	require.NoError(t, err)

	// Round 0: every penalty is 0, so tables fill with consecutive rotators.
	for tbl := 0; tbl < 4; tbl++ {
		members, err := res.Members(0, tbl)
		require.NoError(t, err)
		assert.Equal(t, []int{16 + tbl, 4 * tbl, 4*tbl + 1, 4*tbl + 2, 4*tbl + 3}, members)
	}

	// Round 1, table 0: candidates who met sponsor 16 or an already seated
	// rotator score 7, fresh candidates score 4; once everyone scores 7 the
	// lowest index wins.
	members, err := res.Members(1, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{16, 4, 8, 12, 0}, members)
}

func TestGenerate_ScenarioD(t *testing.T) {
	p, notes, err := params.Resolve(params.Input{TotalAttendees: 12, Tables: 3, PeoplePerTable: 2, Rounds: 4})
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.Equal(t, 4, p.PeoplePerTable)

	res, err := seating.Generate(p)
	require.NoError(t, err)

	for round := 0; round < p.Rounds; round++ {
		for tbl := 0; tbl < p.Tables; tbl++ {
			members, err := res.Members(round, tbl)
			require.NoError(t, err)
			assert.Len(t, members, 4, "host + 3 rotators at table %d round %d", tbl, round)
		}
		unseated, err := res.Unseated(round)
		require.NoError(t, err)
		assert.Empty(t, unseated)
	}
	assert.Zero(t, res.UnfilledSeats())
	checkInvariants(t, res)
}

func TestGenerate_DemandBelowCapacityStalls(t *testing.T) {
	// 5 rotators, 2 tables x 3 seats: table 1 gets 2 rotators and one empty seat per round.
	p := params.Params{Rotators: 5, Sponsors: 2, Tables: 2, Rounds: 3, PeoplePerTable: 4}
	res, err := seating.Generate(p)
	require.NoError(t, err)

	stalls := res.Stalls()
	require.Len(t, stalls, 3)
	for round, s := range stalls {
		assert.Equal(t, seating.Stall{Round: round, Table: 1, Unfilled: 1}, s)
	}
	assert.Equal(t, 3, res.UnfilledSeats())
	checkInvariants(t, res)
}

func TestGenerate_DemandAboveCapacityLeavesUnseated(t *testing.T) {
	// Direct params bypass the resolver: 10 rotators, 4 seats per round.
	p := params.Params{Rotators: 10, Sponsors: 2, Tables: 2, Rounds: 2, PeoplePerTable: 3}
	res, err := seating.Generate(p)
	require.NoError(t, err)

	for round := 0; round < p.Rounds; round++ {
		unseated, err := res.Unseated(round)
		require.NoError(t, err)
		assert.Len(t, unseated, 6)
	}
	assert.Empty(t, res.Stalls(), "every seat was filled")
	checkInvariants(t, res)
}

func TestGenerate_NoRotators(t *testing.T) {
	p := params.Params{Rotators: 0, Sponsors: 2, Tables: 2, Rounds: 2, PeoplePerTable: 3}
	res, err := seating.Generate(p)
	require.NoError(t, err)

	assert.Len(t, res.Stalls(), 4)
	assert.Equal(t, 8, res.UnfilledSeats())
	checkInvariants(t, res)
}

func TestGenerate_InvariantsAcrossInputs(t *testing.T) {
	for total := 3; total <= 40; total += 3 {
		for _, ppt := range []int{0, 2, 3, 6} {
			for _, rounds := range []int{0, 1, 5} {
				in := params.Input{TotalAttendees: total, PeoplePerTable: ppt, Rounds: rounds}
				p, _, err := params.Resolve(in)
				require.NoError(t, err, "%+v", in)
				res, err := seating.Generate(p)
				require.NoError(t, err, "%+v", in)
				checkInvariants(t, res)
				for i := 0; i < p.Rotators; i++ {
					for round := 0; round < p.Rounds; round++ {
						_, ok := res.Table(i, round)
						assert.True(t, ok, "resolved params seat every rotator: %+v", in)
					}
				}
			}
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	p := resolve(t, params.Input{TotalAttendees: 37, PeoplePerTable: 4, Rounds: 6})
	a, err := seating.Generate(p)
	require.NoError(t, err)
	b, err := seating.Generate(p)
	require.NoError(t, err)

	assert.Equal(t, a.Assignments(), b.Assignments())
	assert.Equal(t, a.Meetings().Matrix(), b.Meetings().Matrix())
	assert.Equal(t, a.Stalls(), b.Stalls())
}

func TestGenerate_ConcurrentRunsAreIsolated(t *testing.T) {
	p := resolve(t, params.Input{TotalAttendees: 30})
	want, err := seating.Generate(p)
	require.NoError(t, err)

	const workers = 8
	results := make(chan *seating.Result, workers)
	for i := 0; i < workers; i++ {
		go func() {
			res, err := seating.Generate(p)
			if err != nil {
				results <- nil
				return
			}
			results <- res
		}()
	}
	for i := 0; i < workers; i++ {
		got := <-results
		require.NotNil(t, got)
		assert.Equal(t, want.Assignments(), got.Assignments())
	}
}

func TestGenerate_AvoidsRepeatsWhenPossible(t *testing.T) {
	// 2 tables, 2 seats, 4 rotators: round 1 can pair everyone with new people.
	p := params.Params{Rotators: 4, Sponsors: 2, Tables: 2, Rounds: 2, PeoplePerTable: 3}
	res, err := seating.Generate(p)
	require.NoError(t, err)

	snap := res.Meetings()
	for i := 0; i < p.Rotators; i++ {
		for j := i + 1; j < p.Rotators; j++ {
			m, err := snap.At(i, j)
			require.NoError(t, err)
			assert.LessOrEqual(t, m, 1, "rotators %d and %d", i, j)
		}
	}
}

func TestResult_AccessorsCopyAndBounds(t *testing.T) {
	res, err := seating.Generate(resolve(t, params.Input{TotalAttendees: 12}))
	require.NoError(t, err)

	asg := res.Assignments()
	asg[0][0] = 99
	tbl, ok := res.Table(0, 0)
	assert.True(t, ok)
	assert.NotEqual(t, 99, tbl, "Assignments returns a copy")

	_, ok = res.Table(-1, 0)
	assert.False(t, ok)
	_, ok = res.Table(0, res.Params().Rounds)
	assert.False(t, ok)

	_, err = res.Members(0, res.Params().Tables)
	assert.ErrorIs(t, err, seating.ErrOutOfRange)
	_, err = res.Unseated(-1)
	assert.ErrorIs(t, err, seating.ErrOutOfRange)

	members, err := res.Members(0, 0)
	require.NoError(t, err)
	members[0] = -42
	again, _ := res.Members(0, 0)
	assert.NotEqual(t, -42, again[0], "Members returns a copy")
}
