// SPDX-License-Identifier: MIT

package httpapi

import (
	"github.com/katalvlaran/seatplan/advisory"
	"github.com/katalvlaran/seatplan/params"
	"github.com/katalvlaran/seatplan/planner"
	"github.com/katalvlaran/seatplan/stats"
)

type participantJSON struct {
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}

type planRequest struct {
	TotalAttendees int               `json:"total_attendees"`
	Tables         int               `json:"tables"`
	Rounds         int               `json:"rounds"`
	PeoplePerTable int               `json:"people_per_table"`
	MaxOverlap     int               `json:"max_overlap"`
	Language       string            `json:"language"`
	Participants   []participantJSON `json:"participants"`
}

func (b planRequest) toRequest() (planner.Request, error) {
	tag, err := parseLanguage(b.Language)
	if err != nil {
		return planner.Request{}, err
	}
	r, err := buildRoster(b.Participants)
	if err != nil {
		return planner.Request{}, err
	}

	return planner.Request{
		TotalAttendees: b.TotalAttendees,
		Tables:         b.Tables,
		Rounds:         b.Rounds,
		PeoplePerTable: b.PeoplePerTable,
		MaxOverlap:     b.MaxOverlap,
		Roster:         r,
		Language:       tag,
	}, nil
}

// seatRow is one participant's tables, 1-based; null where unseated.
type seatRow struct {
	Label   string `json:"label"`
	Sponsor bool   `json:"sponsor"`
	Tables  []*int `json:"tables"`
}

type planResponse struct {
	ID        string             `json:"id"`
	RequestID string             `json:"request_id"`
	Params    paramsJSON         `json:"params"`
	Notes     advisory.List      `json:"notes"`
	Seating   []seatRow          `json:"seating"`
	Summary   stats.Summary      `json:"summary"`
	Unmet     []stats.UnmetEntry `json:"unmet"`
}

type paramsJSON struct {
	Rotators       int `json:"rotators"`
	Sponsors       int `json:"sponsors"`
	Tables         int `json:"tables"`
	Rounds         int `json:"rounds"`
	PeoplePerTable int `json:"people_per_table"`
}

func toParamsJSON(p params.Params) paramsJSON {
	return paramsJSON{
		Rotators:       p.Rotators,
		Sponsors:       p.Sponsors,
		Tables:         p.Tables,
		Rounds:         p.Rounds,
		PeoplePerTable: p.PeoplePerTable,
	}
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func newPlanResponse(plan *planner.Plan, requestID string) (planResponse, error) {
	unmet, err := plan.UnmetReport()
	if err != nil {
		return planResponse{}, err
	}
	p := plan.Params
	rows := make([]seatRow, p.Total())
	for i := range rows {
		tables := make([]*int, p.Rounds)
		for round := range tables {
			if t, ok := plan.Result.Table(i, round); ok {
				n := t + 1
				tables[round] = &n
			}
		}
		rows[i] = seatRow{Label: plan.Labels[i], Sponsor: p.IsSponsor(i), Tables: tables}
	}
	notes := plan.Notes
	if notes == nil {
		notes = advisory.List{}
	}

	return planResponse{
		ID:        plan.ID,
		RequestID: requestID,
		Params:    toParamsJSON(p),
		Notes:     notes,
		Seating:   rows,
		Summary:   plan.Summary,
		Unmet:     unmet,
	}, nil
}
