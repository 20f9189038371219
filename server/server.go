package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/wayfind/maze"
	"github.com/katalvlaran/wayfind/runner"
	"github.com/katalvlaran/wayfind/search"
)

// Option configures the handler.
type Option func(*handler)

// WithLogger replaces the default request logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *handler) {
		if l != nil {
			h.log = l
		}
	}
}

// WithRegistry serves /metrics from a dedicated Prometheus registry instead
// of the process-global default.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(h *handler) { h.reg = reg }
}

type handler struct {
	run *runner.Runner
	log *slog.Logger
	reg *prometheus.Registry
}

// New builds the HTTP handler around r.
func New(r *runner.Runner, opts ...Option) http.Handler {
	h := &handler{run: r, log: slog.Default()}
	for _, opt := range opts {
		opt(h)
	}

	mux := chi.NewRouter()
	mux.Use(middleware.RequestID)
	mux.Use(h.requestLogger)
	mux.Use(middleware.Recoverer)

	mux.Route("/api/v1", func(api chi.Router) {
		api.Post("/solve", h.solve)
		api.Get("/layouts", h.layouts)
		api.Get("/layouts/{name}", h.layout)
	})
	mux.Get("/healthz", h.healthz)

	metrics := promhttp.Handler()
	if h.reg != nil {
		metrics = promhttp.HandlerFor(h.reg, promhttp.HandlerOpts{})
	}
	mux.Method(http.MethodGet, "/metrics", metrics)

	return mux
}

// requestLogger emits one structured line per request, after it completes.
func (h *handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		began := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.log.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(began),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func (h *handler) solve(w http.ResponseWriter, r *http.Request) {
	var req runner.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body: "+err.Error())

		return
	}

	rep, err := h.run.Run(r.Context(), req)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, rep)
	case runner.IsBadRequest(err):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, search.ErrNoPath):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		h.log.Error("solve failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (h *handler) layouts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"layouts": maze.List()})
}

func (h *handler) layout(w http.ResponseWriter, r *http.Request) {
	m, err := maze.Load(chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())

		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(m.String() + "\n"))
}

func (h *handler) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
