// SPDX-License-Identifier: MIT

package export

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/seatplan/advisory"
	"github.com/katalvlaran/seatplan/seating"
	"github.com/katalvlaran/seatplan/stats"
)

var (
	headStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#DDDDDD")).Padding(0, 1)
	sponsorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4FD1C5")).Padding(0, 1)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F6C344"))
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")).MarginBottom(1)
	boxStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)
)

// RenderTable draws the seating chart. Sponsor rows use a distinct colour.
func RenderTable(res *seating.Result, labels []string) (string, error) {
	rows, err := Rows(res, labels)
	if err != nil {
		return "", err
	}
	rotators := res.Params().Rotators

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers(append([]string{"Participant"}, RoundHeaders(res.Params().Rounds)...)...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headStyle
			case row >= rotators:
				return sponsorStyle
			default:
				return cellStyle
			}
		})

	return t.String(), nil
}

// RenderSummary draws the coverage figures and the meeting distribution.
func RenderSummary(sum stats.Summary) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Meeting statistics"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Possible pairs:   %d\n", sum.TotalPairs)
	fmt.Fprintf(&b, "Pairs that met:   %d\n", sum.PairsMet)
	fmt.Fprintf(&b, "Pairs unmet:      %d (%s%%)\n", sum.PairsUnmet, stats.FormatPercent(sum.PercentUnmet))
	fmt.Fprintf(&b, "Target overlap:   %d\n", sum.TargetOverlap)
	fmt.Fprintf(&b, "Actual overlap:   %d\n", sum.MaxOverlap)
	if sum.ExceedsTarget {
		b.WriteString(warnStyle.Render("Some pairs exceeded the target max overlap."))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Distribution"))
	for _, d := range sum.Distribution {
		fmt.Fprintf(&b, "\n- %d pairs met %d time(s).", d.Pairs, d.Meetings)
	}

	return boxStyle.Render(b.String())
}

// RenderNotes draws advisory notes, one per line; empty input renders "".
func RenderNotes(notes advisory.List) string {
	if len(notes) == 0 {
		return ""
	}
	lines := make([]string, len(notes))
	for i, n := range notes {
		lines[i] = warnStyle.Render("! ") + n.Message
	}

	return boxStyle.Render(strings.Join(lines, "\n"))
}

// RenderUnmet draws the per-participant unmet report.
func RenderUnmet(entries []stats.UnmetEntry) string {
	if len(entries) == 0 {
		return ""
	}
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{e.Label, fmt.Sprint(e.Count)}
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers("Participant", "Unmet").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headStyle
			}
			return cellStyle
		})

	return t.String()
}
