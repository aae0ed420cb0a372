// SPDX-License-Identifier: MIT

// Package export renders a seating result for people: a CSV chart for
// spreadsheets and lipgloss-styled tables for terminals.
//
// Tables and rounds are shown 1-based ("Table 1", "Round 1"); an empty cell
// is written as "N/A".
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/seatplan/seating"
)

// ErrLabelCount indicates a label slice whose length differs from the
// participant count of the result.
var ErrLabelCount = errors.New("export: label count does not match participants")

// NotAssigned is the cell text for a participant without a table.
const NotAssigned = "N/A"

// RoundHeaders returns "Round 1".."Round n".
func RoundHeaders(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "Round " + strconv.Itoa(i+1)
	}

	return out
}

// Cell renders a 0-based table index, or NotAssigned when ok is false.
func Cell(table int, ok bool) string {
	if !ok {
		return NotAssigned
	}

	return "Table " + strconv.Itoa(table+1)
}

// Rows returns one row per participant: label first, then one cell per round.
func Rows(res *seating.Result, labels []string) ([][]string, error) {
	p := res.Params()
	if len(labels) != p.Total() {
		return nil, fmt.Errorf("%w: %d labels, %d participants", ErrLabelCount, len(labels), p.Total())
	}
	rows := make([][]string, p.Total())
	for i := range rows {
		row := make([]string, 0, p.Rounds+1)
		row = append(row, labels[i])
		for round := 0; round < p.Rounds; round++ {
			row = append(row, Cell(res.Table(i, round)))
		}
		rows[i] = row
	}

	return rows, nil
}

// WriteCSV writes the seating chart with header "Participant,Round 1,..".
// Labels containing commas or quotes are quoted per RFC 4180.
func WriteCSV(w io.Writer, res *seating.Result, labels []string) error {
	rows, err := Rows(res, labels)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	header := append([]string{"Participant"}, RoundHeaders(res.Params().Rounds)...)
	if err = cw.Write(header); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}
	if err = cw.WriteAll(rows); err != nil {
		return fmt.Errorf("export: write rows: %w", err)
	}

	return nil
}
