package cli

import (
	"io"

	"github.com/aretw0/traverse/internal/presentation/diagram"
)

// RunDiagram writes the SVG diagram of a catalogue traverse to w.
func RunDiagram(w io.Writer, name string, opts diagram.Options, debug bool) error {
	rep, err := newEngine(debug).RunNamed(name)
	if err != nil {
		return err
	}
	return diagram.WriteSVG(w, rep, opts)
}
