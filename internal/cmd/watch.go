package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/jhignight2004/ProjectBlu360/internal/bridge"
	"github.com/jhignight2004/ProjectBlu360/internal/usbx"
)

// WatchCmd prints telemetry lines as the controller state changes.
type WatchCmd struct {
	DeviceFlags `embed:""`

	Interval time.Duration `help:"Delay between polls." default:"2ms"`
	Sticks   bool          `help:"Append normalized stick positions to each line."`
}

func (c *WatchCmd) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dev, err := usbx.Open(uint16(c.VID), uint16(c.PID), c.Timeout)
	if err != nil {
		return err
	}
	defer func() { _ = dev.Close() }()

	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println("Live Xbox 360 parser (buttons + triggers)")
		fmt.Println()
	}

	drv := &bridge.Driver{
		Transport: dev,
		Publisher: bridge.NewTelemetry(os.Stdout, c.Sticks),
		Interval:  c.Interval,
		Logger:    logger,
	}
	return drv.Run(ctx)
}
