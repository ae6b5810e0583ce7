package bridge

import (
	"fmt"
	"io"

	"github.com/jhignight2004/ProjectBlu360/pkg/x360"
)

// Telemetry publishes decoded states as text lines.
type Telemetry struct {
	W      io.Writer
	Sticks bool // append normalized stick positions
}

// NewTelemetry returns a line publisher writing to w.
func NewTelemetry(w io.Writer, sticks bool) *Telemetry {
	return &Telemetry{W: w, Sticks: sticks}
}

func (t *Telemetry) Publish(st x360.State) error {
	line := x360.FormatLine(st)
	if t.Sticks {
		line += fmt.Sprintf("  | L=(%+.2f,%+.2f) R=(%+.2f,%+.2f)",
			x360.Norm(st.LX), x360.Norm(st.LY),
			x360.Norm(st.RX), x360.Norm(st.RY))
	}
	_, err := fmt.Fprintln(t.W, line)
	return err
}
