package traverse

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/traverse/internal/logging"
	"github.com/aretw0/traverse/internal/report"
	"github.com/aretw0/traverse/internal/solver"
	"github.com/aretw0/traverse/internal/surveys"
	"github.com/aretw0/traverse/pkg/domain"
)

// Hooks are observability callbacks fired after each run.
type Hooks struct {
	OnSolved func(name string, rep *report.Report)
	OnFailed func(name string, err error)
}

// Engine is the high-level entry point of the module.
// It wraps the solver and reporter and resolves traverses from a catalogue.
type Engine struct {
	catalog *surveys.Catalog
	logger  *slog.Logger
	hooks   Hooks
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithCatalog replaces the built-in survey catalogue.
func WithCatalog(c *surveys.Catalog) Option {
	return func(e *Engine) {
		e.catalog = c
	}
}

// WithHooks registers observability hooks.
func WithHooks(h Hooks) Option {
	return func(e *Engine) {
		e.hooks = h
	}
}

// New initializes an Engine backed by the built-in catalogue.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.catalog == nil {
		eng.catalog = surveys.Default()
	}
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	return eng
}

// Traverses lists the names of the catalogue's traverses.
func (e *Engine) Traverses() []string {
	return e.catalog.Names()
}

// Lookup returns a catalogue traverse by name.
func (e *Engine) Lookup(name string) (domain.Traverse, error) {
	return e.catalog.Get(name)
}

// Solve walks the traverse into vertices and resolved bearings.
func (e *Engine) Solve(t domain.Traverse) (*solver.Solution, error) {
	return solver.Solve(t, solver.WithLogger(e.logger.With("traverse", t.Name)))
}

// Analyze computes area, perimeter, closure error and closing bearing.
func (e *Engine) Analyze(sol *solver.Solution) (*report.Report, error) {
	return report.Analyze(sol)
}

// Run solves and analyzes a traverse in one call.
func (e *Engine) Run(t domain.Traverse) (*report.Report, error) {
	rep, err := e.run(t)
	if err != nil {
		e.logger.Error("Traverse failed", "traverse", t.Name, "error", err)
		if e.hooks.OnFailed != nil {
			e.hooks.OnFailed(t.Name, err)
		}
		return nil, err
	}
	e.logger.Info("Traverse analyzed",
		"traverse", t.Name,
		"area", rep.Area,
		"closure_error", rep.ClosureError,
	)
	if e.hooks.OnSolved != nil {
		e.hooks.OnSolved(t.Name, rep)
	}
	return rep, nil
}

func (e *Engine) run(t domain.Traverse) (*report.Report, error) {
	sol, err := e.Solve(t)
	if err != nil {
		return nil, fmt.Errorf("solve %q: %w", t.Name, err)
	}
	rep, err := e.Analyze(sol)
	if err != nil {
		return nil, fmt.Errorf("analyze %q: %w", t.Name, err)
	}
	return rep, nil
}

// RunNamed runs the catalogue traverse registered under name.
func (e *Engine) RunNamed(name string) (*report.Report, error) {
	t, err := e.Lookup(name)
	if err != nil {
		return nil, err
	}
	return e.Run(t)
}
