// SPDX-License-Identifier: MIT

// Package planner runs the full seating pipeline for one event request.
//
// 🚀 Pipeline
//
//  1. Named roster (optional): attendee total and table count come from the
//     roster unless the request overrides tables.
//  2. params.Resolve turns the partial request into a feasible tuple.
//  3. roster.Reconcile promotes or demotes hosts to match the resolved tables.
//  4. seating.Generate runs as a single opaque unit. Cancelling ctx abandons
//     the run and its result is discarded.
//  5. stats.Summarize reports coverage against the target max overlap.
//
// ⚙️ Observability
//
// A Service logs through slog, opens "planner.Plan", "params.Resolve" and
// "seating.Generate" spans on its tracer, and reports outcomes to a
// metrics.Recorder. All three default to no-ops.
//
// Every Plan call owns its engine state, so one Service may serve many
// goroutines.
package planner
