package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhignight2004/ProjectBlu360/internal/bridge"
	"github.com/jhignight2004/ProjectBlu360/internal/uinput"
	"github.com/jhignight2004/ProjectBlu360/internal/usbx"
)

// BridgeCmd republishes the controller as a virtual evdev gamepad.
type BridgeCmd struct {
	DeviceFlags `embed:""`

	Interval time.Duration `help:"Delay between polls." default:"2ms"`
	Name     string        `help:"Name of the created virtual device." default:"x360 vendor bridge (evdev)"`
}

func (c *BridgeCmd) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dev, err := usbx.Open(uint16(c.VID), uint16(c.PID), c.Timeout)
	if err != nil {
		return err
	}
	defer func() { _ = dev.Close() }()

	sink, err := uinput.Open(uinput.Config{
		Name:    c.Name,
		Vendor:  uint16(c.VID),
		Product: uint16(c.PID),
		Version: 1,
		Keys:    bridge.DeviceKeys(),
		Axes:    bridge.DeviceAxes(),
	})
	if err != nil {
		return fmt.Errorf("create virtual device: %w", err)
	}
	defer func() { _ = sink.Close() }()

	logger.Info("bridging controller", "device", fmt.Sprintf("%s:%s", c.VID, c.PID), "name", c.Name)

	drv := &bridge.Driver{
		Transport: dev,
		Publisher: bridge.NewEvdev(sink),
		Interval:  c.Interval,
		Logger:    logger,
	}
	return drv.Run(ctx)
}
