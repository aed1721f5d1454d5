// Package http exposes a control over a small JSON API.
//
//	GET  /control              current ControlState
//	POST /control/target       {"value": "A"}
//	POST /control/subtarget    {"value": "s1"}
//	POST /control/parameter    {"value": "p1"}
//	POST /control/value        {"value": 3}
//	POST /control/label        {"value": "Volume"}
//	POST /control/enable
//	POST /control/disable
//	POST /control/refresh
//	POST /control/save
//	GET  /metrics              when a metrics handler is configured
//
// Every POST answers with the resulting ControlState. Selection failures are
// contained by the control itself, so they show up as an unchanged state rather
// than an HTTP error.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/aretw0/paramlink"
	"github.com/aretw0/paramlink/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Control is the part of *paramlink.Control the server drives.
type Control interface {
	State() domain.ControlState
	SelectTarget(id string)
	SelectSubTarget(id string)
	SelectParameter(name string)
	SetValue(v float64)
	SetLabel(label string)
	Enable()
	Disable()
	Refresh()
	Save(ctx context.Context) error
}

var _ Control = (*paramlink.Control)(nil)

// Server serializes HTTP requests onto a single control.
type Server struct {
	mu      sync.Mutex
	control Control
	metrics http.Handler
	logger  *slog.Logger
}

type Option func(*Server)

// WithMetrics mounts h on GET /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

type stringBody struct {
	Value string `json:"value"`
}

type numberBody struct {
	Value *float64 `json:"value"`
}

// NewHandler builds the router for ctl.
func NewHandler(ctl Control, opts ...Option) http.Handler {
	s := &Server{control: ctl, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/control", func(r chi.Router) {
		r.Get("/", s.getState)
		r.Post("/target", s.selectWith(ctl.SelectTarget))
		r.Post("/subtarget", s.selectWith(ctl.SelectSubTarget))
		r.Post("/parameter", s.selectWith(ctl.SelectParameter))
		r.Post("/label", s.selectWith(ctl.SetLabel))
		r.Post("/value", s.setValue)
		r.Post("/enable", s.do(ctl.Enable))
		r.Post("/disable", s.do(ctl.Disable))
		r.Post("/refresh", s.do(ctl.Refresh))
		r.Post("/save", s.save)
	})
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) getState(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	st := s.control.State()
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, st)
}

func (s *Server) selectWith(apply func(string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body stringBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			s.logger.Warn("invalid request body", "path", r.URL.Path, "err", err)
			return
		}
		s.apply(w, func() { apply(body.Value) })
	}
}

func (s *Server) setValue(w http.ResponseWriter, r *http.Request) {
	var body numberBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Value == nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("invalid request body", "path", r.URL.Path, "err", err)
		return
	}
	s.apply(w, func() { s.control.SetValue(*body.Value) })
}

func (s *Server) do(fn func()) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.apply(w, fn)
	}
}

func (s *Server) save(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	err := s.control.Save(r.Context())
	st := s.control.State()
	s.mu.Unlock()

	switch {
	case errors.Is(err, paramlink.ErrNoStore):
		http.Error(w, err.Error(), http.StatusConflict)
	case err != nil:
		s.logger.Error("save failed", "err", err)
		http.Error(w, "Save failed", http.StatusInternalServerError)
	default:
		s.writeJSON(w, http.StatusOK, st)
	}
}

func (s *Server) apply(w http.ResponseWriter, fn func()) {
	s.mu.Lock()
	fn()
	st := s.control.State()
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, st)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}
