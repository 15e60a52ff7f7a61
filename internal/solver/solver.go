package solver

import (
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/aretw0/traverse/internal/logging"
	"github.com/aretw0/traverse/pkg/domain"
)

// Solution is the output of a single solve: N+1 vertices and N resolved bearings.
// Vertices[N] approximates the origin; the gap is the closure error and is never corrected.
// After rotation and declination the vertices stay in the same frame as the bearings.
type Solution struct {
	Traverse    domain.Traverse `json:"traverse" yaml:"traverse"`
	Vertices    []domain.Vertex `json:"vertices" yaml:"vertices"`
	Bearings    []float64       `json:"bearings" yaml:"bearings"`
	Rotation    float64         `json:"rotation" yaml:"rotation"`       // Degrees added to every bearing by the rotation pass
	Declination float64         `json:"declination" yaml:"declination"` // Degrees added to every bearing by the declination pass
	Steps       []Step          `json:"steps" yaml:"steps"`
}

// Step records how one side was resolved during the walk, before any correction.
type Step struct {
	Side     int      `json:"side" yaml:"side"` // 1-based
	Incoming float64  `json:"incoming" yaml:"incoming"`
	Bearing  float64  `json:"bearing" yaml:"bearing"`
	Interior *float64 `json:"interior,omitempty" yaml:"interior,omitempty"`
	DX       float64  `json:"dx" yaml:"dx"`
	DY       float64  `json:"dy" yaml:"dy"`
}

// Option configures a solve.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for per-side debug traces.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// step is one immutable state of the forward walk.
type step struct {
	bearing float64
	at      r2.Vec
}

// Solve walks the traverse from the origin and applies its optional corrections.
// It fails with domain.ErrInvalidInput before any geometry is produced if the
// traverse is malformed.
func Solve(t domain.Traverse, opts ...Option) (*Solution, error) {
	cfg := config{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}

	steps, err := walk(t, cfg.logger)
	if err != nil {
		return nil, err
	}

	sol := &Solution{
		Traverse: t,
		Vertices: make([]domain.Vertex, 0, len(steps)+1),
		Bearings: make([]float64, 0, len(steps)),
		Steps:    make([]Step, 0, len(steps)),
	}
	sol.Vertices = append(sol.Vertices, domain.Origin)
	prev := step{bearing: domain.Normalize(t.StartBearing)}
	for i, s := range steps {
		sol.Vertices = append(sol.Vertices, domain.VertexOf(s.at))
		sol.Bearings = append(sol.Bearings, s.bearing)
		sol.Steps = append(sol.Steps, record(i, t.Sides[i], prev, s))
		prev = s
	}

	switch t.CorrectionOrder() {
	case domain.DeclinateThenRotate:
		err = sol.declinate()
		if err == nil {
			err = sol.rotate()
		}
	default:
		err = sol.rotate()
		if err == nil {
			err = sol.declinate()
		}
	}
	if err != nil {
		return nil, err
	}

	cfg.logger.Debug("Traverse solved",
		"traverse", t.Name,
		"sides", len(t.Sides),
		"rotation", sol.Rotation,
		"declination", sol.Declination,
	)
	return sol, nil
}

// walk folds the sides into a sequence of steps, each derived from its predecessor.
func walk(t domain.Traverse, logger *slog.Logger) ([]step, error) {
	steps := make([]step, 0, len(t.Sides))
	prev := step{bearing: domain.Normalize(t.StartBearing)}
	for i, side := range t.Sides {
		next, err := advance(prev, side)
		if err != nil {
			return nil, fmt.Errorf("side %d: %w", i+1, err)
		}
		logger.Debug("Side resolved",
			"side", i+1,
			"label", side.Name(),
			"turn", side.Turn.Kind,
			"bearing", next.bearing,
			"x", next.at.X,
			"y", next.at.Y,
		)
		steps = append(steps, next)
		prev = next
	}
	return steps, nil
}

func advance(prev step, side domain.Side) (step, error) {
	bearing, err := domain.CheckedNormalize(side.Turn.Resolve(prev.bearing))
	if err != nil {
		return step{}, err
	}
	theta := domain.ToRadians(bearing)
	d := r2.Vec{X: side.Length * math.Cos(theta), Y: side.Length * math.Sin(theta)}
	return step{bearing: bearing, at: r2.Add(prev.at, d)}, nil
}

func record(i int, side domain.Side, prev, next step) Step {
	d := r2.Sub(next.at, prev.at)
	st := Step{
		Side:     i + 1,
		Incoming: prev.bearing,
		Bearing:  next.bearing,
		DX:       d.X,
		DY:       d.Y,
	}
	if a, ok := side.Turn.InteriorAngle(); ok {
		st.Interior = &a
	}
	return st
}

// rotate reconciles the walk with the known bearing of the reference side.
func (s *Solution) rotate() error {
	target := s.Traverse.Rotation
	if target == nil {
		return nil
	}
	delta := domain.NormalizeSigned(target.Bearing - s.Bearings[target.Side])
	if err := s.turn(delta); err != nil {
		return fmt.Errorf("rotation: %w", err)
	}
	s.Rotation = delta
	return nil
}

// declinate converts every bearing between magnetic and true north.
func (s *Solution) declinate() error {
	if s.Traverse.Declination == nil {
		return nil
	}
	d := *s.Traverse.Declination
	if err := s.turn(d); err != nil {
		return fmt.Errorf("declination: %w", err)
	}
	s.Declination = d
	return nil
}

// turn adds delta degrees to every bearing and rotates every vertex about the origin
// to match. Bearings grow clockwise, so the vertices turn by -delta in the
// counter-clockwise mathematical convention.
func (s *Solution) turn(delta float64) error {
	for i, b := range s.Bearings {
		nb, err := domain.CheckedNormalize(b + delta)
		if err != nil {
			return err
		}
		s.Bearings[i] = nb
	}
	alpha := -delta * math.Pi / 180
	for i, v := range s.Vertices {
		s.Vertices[i] = domain.VertexOf(r2.Rotate(v.Vec(), alpha, r2.Vec{}))
	}
	return nil
}

// Final returns the last computed vertex, before any synthetic closing segment.
func (s *Solution) Final() domain.Vertex {
	return s.Vertices[len(s.Vertices)-1]
}
