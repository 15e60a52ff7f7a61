package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/traverse"
	"github.com/aretw0/traverse/internal/logging"
	"github.com/aretw0/traverse/internal/presentation/diagram"
	"github.com/aretw0/traverse/internal/report"
	"github.com/aretw0/traverse/internal/surveys"
	"github.com/aretw0/traverse/pkg/domain"
)

// Engine is the slice of the traverse engine the HTTP surface needs.
type Engine interface {
	Traverses() []string
	Lookup(name string) (domain.Traverse, error)
	Run(t domain.Traverse) (*report.Report, error)
}

// Summary is one entry of the catalogue listing.
type Summary struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Sides int    `json:"sides"`
}

// Server serves read-only views of the catalogue traverses.
type Server struct {
	Engine   Engine
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger
}

// NewHandler creates a new HTTP handler for the engine.
// A nil gatherer leaves /metrics unmounted.
func NewHandler(engine Engine, gatherer prometheus.Gatherer, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{Engine: engine, Gatherer: gatherer, Logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Route("/traverses", func(r chi.Router) {
		r.Get("/", s.ListTraverses)
		r.Get("/{name}", s.GetReport)
		r.Get("/{name}/diagram.svg", s.GetDiagram)
	})
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":     "traverse-http",
		"version": strings.TrimSpace(traverse.Version),
	})
}

// ListTraverses handles the GET /traverses request.
func (s *Server) ListTraverses(w http.ResponseWriter, r *http.Request) {
	names := s.Engine.Traverses()
	out := make([]Summary, 0, len(names))
	for _, name := range names {
		t, err := s.Engine.Lookup(name)
		if err != nil {
			s.writeError(w, err)
			return
		}
		out = append(out, Summary{Name: t.Name, Title: t.Title, Sides: len(t.Sides)})
	}
	s.writeJSON(w, http.StatusOK, out)
}

// GetReport handles the GET /traverses/{name} request.
// The optional unit query parameter selects ft, m or mm.
func (s *Server) GetReport(w http.ResponseWriter, r *http.Request) {
	unit, err := unitParam(r, domain.Feet)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rep, err := s.run(chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, rep.In(unit))
}

// GetDiagram handles the GET /traverses/{name}/diagram.svg request.
func (s *Server) GetDiagram(w http.ResponseWriter, r *http.Request) {
	opts := diagram.DefaultOptions()
	var err error
	if opts.Unit, err = unitParam(r, opts.Unit); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if opts.Width, err = intParam(r, "width", opts.Width); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if opts.Height, err = intParam(r, "height", opts.Height); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rep, err := s.run(chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	if err := diagram.WriteSVG(w, rep, opts); err != nil {
		s.Logger.Error("Diagram write failed", "error", err)
	}
}

func (s *Server) run(name string) (*report.Report, error) {
	t, err := s.Engine.Lookup(name)
	if err != nil {
		return nil, err
	}
	return s.Engine.Run(t)
}

// -- Helpers --

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("Response encode failed", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.Logger.Error("Request failed", "error", err)
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, surveys.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInsufficientVertices),
		errors.Is(err, domain.ErrNormalizationOverflow):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func unitParam(r *http.Request, def domain.Unit) (domain.Unit, error) {
	raw := r.URL.Query().Get("unit")
	if raw == "" {
		return def, nil
	}
	return domain.ParseUnit(raw)
}

func intParam(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s %q", key, raw)
	}
	return v, nil
}
