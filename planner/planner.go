// SPDX-License-Identifier: MIT

package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/language"

	"github.com/katalvlaran/seatplan/advisory"
	"github.com/katalvlaran/seatplan/internal/logging"
	"github.com/katalvlaran/seatplan/internal/metrics"
	"github.com/katalvlaran/seatplan/internal/platform/otel"
	"github.com/katalvlaran/seatplan/params"
	"github.com/katalvlaran/seatplan/roster"
	"github.com/katalvlaran/seatplan/seating"
	"github.com/katalvlaran/seatplan/stats"
)

// DefaultMaxOverlap is the target used when a request leaves MaxOverlap unset.
const DefaultMaxOverlap = 1

// ErrInvalidRequest wraps every error caused by the request itself (bad
// counts, roster conflicts) as opposed to cancellation or internal failure.
var ErrInvalidRequest = errors.New("planner: invalid request")

// Request is one event to plan. Zero counts mean "derive".
type Request struct {
	TotalAttendees int            `json:"total_attendees" yaml:"total_attendees"`
	Tables         int            `json:"tables" yaml:"tables"`
	Rounds         int            `json:"rounds" yaml:"rounds"`
	PeoplePerTable int            `json:"people_per_table" yaml:"people_per_table"`
	MaxOverlap     int            `json:"max_overlap" yaml:"max_overlap"`
	Roster         *roster.Roster `json:"-" yaml:"-"`
	Language       language.Tag   `json:"-" yaml:"-"`
}

// Plan is a finished run.
type Plan struct {
	ID      string
	Params  params.Params
	Notes   advisory.List
	Result  *seating.Result
	Summary stats.Summary
	Labels  []string
	Roster  *roster.Roster // reconciled roster, nil for an unnamed event
}

// UnmetReport lists participants by unmet count, most isolated first.
func (p *Plan) UnmetReport() ([]stats.UnmetEntry, error) {
	return stats.UnmetReport(p.Summary, p.Labels)
}

// Service runs plans. The zero value is not usable; call New.
type Service struct {
	logger *slog.Logger
	rec    metrics.Recorder
	tracer trace.Tracer
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger; nil keeps the default discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRecorder sets the metrics recorder; nil keeps metrics.Nop.
func WithRecorder(r metrics.Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.rec = r
		}
	}
}

// WithTracer sets the tracer; nil keeps the global seatplan tracer.
func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		if t != nil {
			s.tracer = t
		}
	}
}

// New builds a Service.
func New(opts ...Option) *Service {
	s := &Service{
		logger: logging.Discard(),
		rec:    metrics.NewNop(),
		tracer: otel.Tracer(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Plan resolves, reconciles, generates and summarises req.
//
// Errors:
//   - wrapping ErrInvalidRequest (and the underlying params or roster
//     sentinel) for unusable input.
//   - ctx.Err() when ctx ends before generation finishes.
func (s *Service) Plan(ctx context.Context, req Request) (*Plan, error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "planner.Plan")
	defer span.End()

	plan, err := s.run(ctx, span, req)
	outcome := classify(err)
	s.rec.RecordPlan(outcome, time.Since(start).Seconds())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		level := slog.LevelError
		if outcome != metrics.OutcomeError {
			level = slog.LevelWarn
		}
		s.logger.Log(ctx, level, "plan failed", "outcome", outcome, "err", err)
		return nil, err
	}

	for _, n := range plan.Notes {
		s.rec.RecordAdvisory(n.Kind.String())
		s.logger.Warn("advisory", "plan_id", plan.ID, "kind", n.Kind.String(), "message", n.Message)
	}
	s.rec.RecordUnfilledSeats(plan.Result.UnfilledSeats())
	s.logger.Info("plan ready",
		"plan_id", plan.ID,
		"rotators", plan.Params.Rotators,
		"sponsors", plan.Params.Sponsors,
		"rounds", plan.Params.Rounds,
		"people_per_table", plan.Params.PeoplePerTable,
		"max_overlap", plan.Summary.MaxOverlap,
		"percent_unmet", stats.FormatPercent(plan.Summary.PercentUnmet),
		"elapsed", time.Since(start),
	)

	return plan, nil
}

func (s *Service) run(ctx context.Context, span trace.Span, req Request) (*Plan, error) {
	// 1) Derive totals from the roster when one is attached.
	in := params.Input{
		TotalAttendees: req.TotalAttendees,
		Tables:         req.Tables,
		Rounds:         req.Rounds,
		PeoplePerTable: req.PeoplePerTable,
	}
	if req.Roster != nil {
		in.TotalAttendees = req.Roster.Len()
		if in.Tables <= 0 {
			in.Tables = req.Roster.Sponsors()
		}
	}

	// 2) Resolve.
	p, paramNotes, err := s.resolve(ctx, in, req.Language)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	if err := seating.CheckSize(p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	span.SetAttributes(
		attribute.Int("seatplan.rotators", p.Rotators),
		attribute.Int("seatplan.tables", p.Tables),
		attribute.Int("seatplan.rounds", p.Rounds),
		attribute.Int("seatplan.people_per_table", p.PeoplePerTable),
	)

	// 3) Reconcile hosts; roster notes lead the list.
	var notes advisory.List
	var labels []string
	var reconciled *roster.Roster
	if req.Roster != nil {
		r, rosterNotes, err := roster.Reconcile(*req.Roster, p.Tables)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
		notes.Append(rosterNotes)
		labels = r.Labels()
		reconciled = &r
	} else {
		labels = roster.GenericLabels(p.Rotators, p.Sponsors)
	}
	notes.Append(paramNotes)

	// 4) Generate.
	res, err := s.generate(ctx, p)
	if err != nil {
		return nil, err
	}
	if n := res.UnfilledSeats(); n > 0 {
		notes.Add(advisory.KindAssignmentStall, fmt.Sprintf(
			"%d seat(s) across %d table-round(s) stayed empty because every rotating attendee was already seated.",
			n, len(res.Stalls())))
	}

	// 5) Summarise.
	target := req.MaxOverlap
	if target <= 0 {
		target = DefaultMaxOverlap
	}

	return &Plan{
		ID:      uuid.NewString(),
		Params:  p,
		Notes:   notes,
		Result:  res,
		Summary: stats.Summarize(res.Meetings(), target),
		Labels:  labels,
		Roster:  reconciled,
	}, nil
}

func (s *Service) resolve(ctx context.Context, in params.Input, lang language.Tag) (params.Params, advisory.List, error) {
	_, span := s.tracer.Start(ctx, "params.Resolve")
	defer span.End()

	var opts []params.Option
	if lang != language.Und {
		opts = append(opts, params.WithLanguage(lang))
	}
	p, notes, err := params.Resolve(in, opts...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "resolve")
	}
	span.SetAttributes(attribute.Int("seatplan.advisories", len(notes)))

	return p, notes, err
}

// generate runs the engine off the caller's goroutine so ctx can abandon it.
// The engine is not interruptible; an abandoned run finishes in the
// background and its result is dropped.
func (s *Service) generate(ctx context.Context, p params.Params) (*seating.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	_, span := s.tracer.Start(ctx, "seating.Generate")
	defer span.End()

	type outcome struct {
		res *seating.Result
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := seating.Generate(p)
		done <- outcome{res: res, err: err}
	}()

	select {
	case <-ctx.Done():
		span.SetStatus(codes.Error, "abandoned")
		return nil, ctx.Err()
	case o := <-done:
		if o.err != nil {
			span.RecordError(o.err)
			span.SetStatus(codes.Error, "generate")
			return nil, fmt.Errorf("planner: %w", o.err)
		}
		span.SetAttributes(attribute.Int("seatplan.unfilled_seats", o.res.UnfilledSeats()))
		return o.res, nil
	}
}

// classify maps an error to a metrics outcome label.
func classify(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, ErrInvalidRequest):
		return metrics.OutcomeInvalid
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return metrics.OutcomeCancelled
	default:
		return metrics.OutcomeError
	}
}
