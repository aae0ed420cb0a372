// Package export_test checks CSV layout and that terminal renderings carry
// every label and figure.
package export_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seatplan/advisory"
	"github.com/katalvlaran/seatplan/export"
	"github.com/katalvlaran/seatplan/params"
	"github.com/katalvlaran/seatplan/roster"
	"github.com/katalvlaran/seatplan/seating"
	"github.com/katalvlaran/seatplan/stats"
)

func generate(t *testing.T, p params.Params) *seating.Result {
	t.Helper()
	res, err := seating.Generate(p)
	require.NoError(t, err)

	return res
}

func TestCellAndHeaders(t *testing.T) {
	assert.Equal(t, "Table 1", export.Cell(0, true))
	assert.Equal(t, "N/A", export.Cell(seating.Unassigned, false))
	assert.Equal(t, []string{"Round 1", "Round 2"}, export.RoundHeaders(2))
	assert.Empty(t, export.RoundHeaders(0))
}

func TestWriteCSV(t *testing.T) {
	// 2 rotators, 1 table with 2 rotating seats, 2 rounds.
	p := params.Params{Rotators: 2, Sponsors: 1, Tables: 1, Rounds: 2, PeoplePerTable: 3}
	res := generate(t, p)
	labels := []string{`Smith, Jo`, `Al "Bird"`, "Acme (Table 1)"}

	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, res, labels))

	want := strings.Join([]string{
		"Participant,Round 1,Round 2",
		`"Smith, Jo",Table 1,Table 1`,
		`"Al ""Bird""",Table 1,Table 1`,
		"Acme (Table 1),Table 1,Table 1",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestWriteCSV_Unassigned(t *testing.T) {
	// 4 rotators, 2 rotating seats: two rotators sit out each round.
	p := params.Params{Rotators: 4, Sponsors: 1, Tables: 1, Rounds: 1, PeoplePerTable: 3}
	res := generate(t, p)

	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, res, roster.GenericLabels(4, 1)))
	assert.Equal(t, 2, strings.Count(buf.String(), "N/A"))
	assert.Contains(t, buf.String(), "Attendee 1,Table 1\n")
}

func TestLabelMismatch(t *testing.T) {
	res := generate(t, params.Params{Rotators: 2, Sponsors: 1, Tables: 1, Rounds: 1, PeoplePerTable: 3})

	var buf bytes.Buffer
	assert.ErrorIs(t, export.WriteCSV(&buf, res, []string{"only one"}), export.ErrLabelCount)
	_, err := export.RenderTable(res, nil)
	assert.ErrorIs(t, err, export.ErrLabelCount)
}

func TestRenderTable(t *testing.T) {
	p, _, err := params.Resolve(params.Input{TotalAttendees: 8})
	require.NoError(t, err)
	res := generate(t, p)
	labels := roster.GenericLabels(p.Rotators, p.Sponsors)

	out, err := export.RenderTable(res, labels)
	require.NoError(t, err)
	for _, l := range labels {
		assert.Contains(t, out, l)
	}
	assert.Contains(t, out, "Round 1")
	assert.Contains(t, out, "Table 2")
}

func TestRenderSummaryAndNotes(t *testing.T) {
	sum := stats.Summary{
		TotalPairs: 6, PairsMet: 2, PairsUnmet: 4, PercentUnmet: 200.0 / 3,
		MaxOverlap: 2, TargetOverlap: 1, ExceedsTarget: true,
		Distribution: []stats.Bucket{{Meetings: 0, Pairs: 4}, {Meetings: 2, Pairs: 2}},
	}
	out := export.RenderSummary(sum)
	assert.Contains(t, out, "66.7%")
	assert.Contains(t, out, "4 pairs met 0 time(s).")
	assert.Contains(t, out, "exceeded the target")

	var notes advisory.List
	assert.Empty(t, export.RenderNotes(notes))
	notes.Add(advisory.KindDefaultApplied, "rounds derived")
	assert.Contains(t, export.RenderNotes(notes), "rounds derived")

	assert.Empty(t, export.RenderUnmet(nil))
	assert.Contains(t, export.RenderUnmet([]stats.UnmetEntry{{Label: "Ada", Count: 3}}), "Ada")
}
