package bridge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhignight2004/ProjectBlu360/pkg/x360"
)

func TestTelemetryPublishLine(t *testing.T) {
	var buf strings.Builder
	pub := NewTelemetry(&buf, false)

	st := x360.State{Buttons: uint32(x360.ButtonA), LT: 255}
	require.NoError(t, pub.Publish(st))

	line := buf.String()
	assert.True(t, strings.HasSuffix(line, "\n"))
	assert.Contains(t, line, "held: A")
	assert.Contains(t, line, "LT=255 (100.0%)")
	assert.NotContains(t, line, "L=(")
}

func TestTelemetryPublishSticks(t *testing.T) {
	var buf strings.Builder
	pub := NewTelemetry(&buf, true)

	st := x360.State{LX: -32768, LY: 0, RX: 16384, RY: 0}
	require.NoError(t, pub.Publish(st))

	assert.Contains(t, buf.String(), "L=(-1.00,+0.00)")
	assert.Contains(t, buf.String(), "R=(+0.50,+0.00)")
}
