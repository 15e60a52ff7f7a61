package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/traverse/internal/presentation/diagram"
	"github.com/aretw0/traverse/internal/surveys"
	"github.com/aretw0/traverse/internal/validator"
	"github.com/aretw0/traverse/pkg/domain"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"markdown", FormatMarkdown, false},
		{"md", FormatMarkdown, false},
		{"json", FormatJSON, false},
		{"yml", FormatYAML, false},
		{"csv", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunSolve_JSON(t *testing.T) {
	var buf bytes.Buffer
	err := RunSolve(&buf, SolveOptions{Name: "rectangle", Format: FormatJSON, Unit: domain.Feet})
	require.NoError(t, err)

	var resp struct {
		Area     float64         `json:"area"`
		Vertices []domain.Vertex `json:"vertices"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.InDelta(t, 50, resp.Area, 1e-9)
	assert.Len(t, resp.Vertices, 5)
}

func TestRunSolve_YAML(t *testing.T) {
	var buf bytes.Buffer
	err := RunSolve(&buf, SolveOptions{Name: "plot7", Format: FormatYAML, Unit: domain.Meters})
	require.NoError(t, err)

	var resp struct {
		Unit         string  `yaml:"unit"`
		Perimeter    float64 `yaml:"perimeter"`
		ClosureError float64 `yaml:"closure_error"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "m", resp.Unit)
	assert.InDelta(t, 108.6358, resp.Perimeter, 1e-3)
	assert.InDelta(t, 0.0133, resp.ClosureError, 1e-4)
}

func TestRunSolve_TextOnPipe(t *testing.T) {
	var buf bytes.Buffer
	err := RunSolve(&buf, SolveOptions{Name: "plot7", Format: FormatText, Unit: domain.Feet})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "| Perimeter |")
	assert.Contains(t, out, ">>> closure 0.044 ft (1:8169)")
	assert.NotContains(t, out, "\x1b[")
}

func TestRunSolve_UnknownTraverse(t *testing.T) {
	err := RunSolve(&bytes.Buffer{}, SolveOptions{Name: "nowhere", Format: FormatJSON, Unit: domain.Feet})
	assert.ErrorIs(t, err, surveys.ErrNotFound)
}

func TestRunList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RunList(&buf, false))
	out := buf.String()
	assert.Contains(t, out, "plot7 ")
	assert.Contains(t, out, "plot7-rotated")
	assert.Contains(t, out, "rectangle")
}

func TestRunDiagram(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RunDiagram(&buf, "rectangle", diagram.DefaultOptions(), false))
	assert.Contains(t, buf.String(), "<svg")
	assert.Contains(t, buf.String(), "</svg>")
}

func TestRunServe_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	srv := NewServer("127.0.0.1:0", false)
	require.NoError(t, RunServe(ctx, &buf, srv))
	assert.Contains(t, buf.String(), "Starting Traverse Server")
}

func TestRunValidate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RunValidate(&buf, "plot7", validator.DefaultOptions(), false))
	assert.Contains(t, buf.String(), "Traverse 'plot7' is valid: closure 0.044 ft (1:8169)")

	err := RunValidate(&buf, "plot7", validator.Options{MinPrecision: 10000}, false)
	assert.ErrorIs(t, err, validator.ErrQuality)
}

func TestSignalContext_CapturesSignal(t *testing.T) {
	sc := NewSignalContext(context.Background())
	defer sc.Cancel()

	assert.Nil(t, sc.Signal())
	sc.sigCh <- syscall.SIGTERM
	<-sc.Done()
	assert.Equal(t, syscall.SIGTERM, sc.Signal())

	var buf bytes.Buffer
	require.NoError(t, RunServe(sc, &buf, NewServer("127.0.0.1:0", false)))
	assert.Contains(t, buf.String(), "Start shutdown... Signal: terminated")
}
