// Package seatplan plans seating for rotating networking events: sponsors
// host fixed tables while everyone else moves between rounds, and each new
// table is filled with the people a guest has met least.
//
// 🚀 What is seatplan?
//
//	A deterministic, dependency-light toolkit that brings together:
//		• params:   resolve a partial request into a feasible layout
//		• seating:  greedy round-by-round assignment with repeat penalties
//		• ledger:   symmetric pair-meeting counts with integrity checks
//		• roster:   named participants, YAML/CSV loading, host reconciliation
//		• stats:    pair coverage, overlap distribution and unmet reports
//		• export:   CSV charts and lipgloss terminal tables
//		• planner:  the whole pipeline with logging, tracing and metrics
//
// ✨ Why choose seatplan?
//
//   - Same input, same chart: ties always go to the lowest index
//   - Non-fatal problems come back as advisory notes, never as surprises
//   - Every run owns its state, so plans can be built concurrently
//
// Binaries:
//
//	cmd/seatplan      CLI: table, csv, json or yaml output
//	cmd/seatplan-api  HTTP API: POST /v1/plans, POST /v1/plans.csv
//
// Quick example:
//
//	plan, err := planner.New().Plan(ctx, planner.Request{TotalAttendees: 20})
//	// 16 rotators, 4 sponsor tables of 5, 4 rounds
//
//	go install github.com/katalvlaran/seatplan/cmd/seatplan@latest
package seatplan
