// SPDX-License-Identifier: MIT

// Package httpapi exposes the planner over HTTP.
//
//	POST /v1/plans      JSON plan
//	POST /v1/plans.csv  seating chart as CSV
//	GET  /healthz       liveness
//	GET  /metrics       Prometheus exposition
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/text/language"

	"github.com/katalvlaran/seatplan/export"
	"github.com/katalvlaran/seatplan/internal/logging"
	"github.com/katalvlaran/seatplan/planner"
	"github.com/katalvlaran/seatplan/roster"
)

// HeaderRequestID carries the request id in and out.
const HeaderRequestID = "X-Request-ID"

const (
	defaultTimeout = 30 * time.Second
	maxBodyBytes   = 1 << 20
)

// Default request caps.
const (
	DefaultMaxAttendees = 1000
	DefaultMaxRounds    = 50
)

// ErrLimitExceeded rejects a request larger than the handler's Limits.
var ErrLimitExceeded = errors.New("httpapi: request exceeds server limits")

// Limits caps the work one request may ask for. MaxAttendees also bounds
// tables and people per table. Zero fields keep the defaults.
type Limits struct {
	MaxAttendees int
	MaxRounds    int
}

// check reports the first field of req over the caps.
func (l Limits) check(req planner.Request) error {
	attendees := req.TotalAttendees
	if req.Roster != nil {
		attendees = req.Roster.Len()
	}
	for _, f := range []struct {
		name       string
		got, limit int
	}{
		{"total_attendees", attendees, l.MaxAttendees},
		{"tables", req.Tables, l.MaxAttendees},
		{"people_per_table", req.PeoplePerTable, l.MaxAttendees},
		{"rounds", req.Rounds, l.MaxRounds},
	} {
		if f.got > f.limit {
			return fmt.Errorf("%w: %s=%d exceeds %d", ErrLimitExceeded, f.name, f.got, f.limit)
		}
	}

	return nil
}

// Handler routes API requests to a planner.Service.
type Handler struct {
	svc      *planner.Service
	logger   *slog.Logger
	timeout  time.Duration
	limits   Limits
	gatherer prometheus.Gatherer
	mux      *http.ServeMux
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithTimeout bounds each plan request; d <= 0 keeps the default.
func WithTimeout(d time.Duration) Option {
	return func(h *Handler) {
		if d > 0 {
			h.timeout = d
		}
	}
}

// WithLimits sets the per-request caps.
func WithLimits(l Limits) Option {
	return func(h *Handler) {
		if l.MaxAttendees > 0 {
			h.limits.MaxAttendees = l.MaxAttendees
		}
		if l.MaxRounds > 0 {
			h.limits.MaxRounds = l.MaxRounds
		}
	}
}

// WithGatherer selects the registry served on /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(h *Handler) {
		if g != nil {
			h.gatherer = g
		}
	}
}

// New builds the API handler around svc.
func New(svc *planner.Service, opts ...Option) *Handler {
	h := &Handler{
		svc:      svc,
		logger:   logging.Discard(),
		timeout:  defaultTimeout,
		limits:   Limits{MaxAttendees: DefaultMaxAttendees, MaxRounds: DefaultMaxRounds},
		gatherer: prometheus.DefaultGatherer,
		mux:      http.NewServeMux(),
	}
	for _, opt := range opts {
		opt(h)
	}

	h.mux.HandleFunc("POST /v1/plans", h.handlePlan)
	h.mux.HandleFunc("POST /v1/plans.csv", h.handlePlanCSV)
	h.mux.HandleFunc("GET /healthz", h.handleHealth)
	h.mux.Handle("GET /metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))

	return h
}

// ServeHTTP assigns a request id, then dispatches.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.Header.Get(HeaderRequestID))
	if id == "" {
		id = uuid.NewString()
	}
	w.Header().Set(HeaderRequestID, id)
	h.mux.ServeHTTP(w, r.WithContext(withRequestID(r.Context(), id)))
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handlePlan(w http.ResponseWriter, r *http.Request) {
	plan, ok := h.plan(w, r)
	if !ok {
		return
	}
	resp, err := newPlanResponse(plan, requestIDFromContext(r.Context()))
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handlePlanCSV(w http.ResponseWriter, r *http.Request) {
	plan, ok := h.plan(w, r)
	if !ok {
		return
	}
	var buf strings.Builder
	if err := export.WriteCSV(&buf, plan.Result, plan.Labels); err != nil {
		h.fail(w, r, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="seating-chart.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, buf.String())
}

// plan decodes the body and runs the planner under the request timeout.
// On failure it has already written the error response.
func (h *Handler) plan(w http.ResponseWriter, r *http.Request) (*planner.Plan, bool) {
	var body planRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		h.fail(w, r, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return nil, false
	}
	req, err := body.toRequest()
	if err != nil {
		h.fail(w, r, http.StatusBadRequest, err)
		return nil, false
	}
	if err := h.limits.check(req); err != nil {
		h.fail(w, r, http.StatusUnprocessableEntity, err)
		return nil, false
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()
	plan, err := h.svc.Plan(ctx, req)
	if err != nil {
		h.fail(w, r, statusFor(err), err)
		return nil, false
	}

	return plan, true
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	id := requestIDFromContext(r.Context())
	h.logger.Warn("request failed", "request_id", id, "path", r.URL.Path, "status", status, "err", err)
	writeJSON(w, status, errorResponse{Error: err.Error(), RequestID: id})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, planner.ErrInvalidRequest):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type requestIDKey struct{}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// parseLanguage accepts a BCP 47 tag; empty means the planner default.
func parseLanguage(s string) (language.Tag, error) {
	if strings.TrimSpace(s) == "" {
		return language.Und, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("language %q: %w", s, err)
	}

	return tag, nil
}

// buildRoster converts wire participants; an empty list means no roster.
func buildRoster(ps []participantJSON) (*roster.Roster, error) {
	if len(ps) == 0 {
		return nil, nil
	}
	in := make([]roster.Participant, len(ps))
	for i, p := range ps {
		in[i] = roster.Participant{Name: p.Name, Role: roster.ParseRole(p.Role)}
	}
	r, err := roster.New(in)
	if err != nil {
		return nil, err
	}

	return &r, nil
}
