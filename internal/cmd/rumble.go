package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhignight2004/ProjectBlu360/internal/usbx"
	"github.com/jhignight2004/ProjectBlu360/pkg/x360"
)

// RumbleCmd drives the motors through the wireless receiver's interrupt OUT
// endpoint. Defaults to the receiver PID, not the bridge's.
type RumbleCmd struct {
	VID     HexID         `help:"USB vendor id." default:"0x045E" env:"BLU360_VID"`
	PID     HexID         `help:"USB product id of the receiver." default:"0x0719"`
	Timeout time.Duration `help:"Per-transfer USB timeout." default:"1s"`

	Left     uint8         `help:"Heavy (left) motor strength." default:"255"`
	Right    uint8         `help:"Light (right) motor strength." default:"255"`
	Duration time.Duration `help:"How long to rumble before stopping." default:"2s"`
}

func (c *RumbleCmd) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dev, err := usbx.Open(uint16(c.VID), uint16(c.PID), c.Timeout)
	if err != nil {
		return err
	}
	defer func() { _ = dev.Close() }()

	logger.Info("rumble on", "left", c.Left, "right", c.Right, "duration", c.Duration)
	if err := dev.WriteInterrupt(x360.RumblePacket(c.Left, c.Right)); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
	case <-time.After(c.Duration):
	}

	// Stop the motors even when interrupted.
	return dev.WriteInterrupt(x360.RumblePacket(0, 0))
}
