package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/jhignight2004/ProjectBlu360/internal/usbx"
)

// SendCmd fires raw vendor OUT control requests at the controller. Probing
// glue for protocol exploration; the values are passed through untouched.
type SendCmd struct {
	DeviceFlags `embed:""`

	Req   string        `arg:"" help:"bRequest, e.g. 0x47."`
	Value string        `arg:"" optional:"" default:"0" help:"wValue."`
	Index string        `arg:"" optional:"" default:"0" help:"wIndex."`
	Count int           `help:"Number of times to send the request." default:"1"`
	Delay time.Duration `help:"Delay between repeated sends."`
	Arm   bool          `help:"Arm the report stream before sending." default:"true" negatable:""`
}

func (c *SendCmd) Run(logger *slog.Logger) error {
	req, err := parseNum(c.Req, 8)
	if err != nil {
		return fmt.Errorf("bad request: %w", err)
	}
	value, err := parseNum(c.Value, 16)
	if err != nil {
		return fmt.Errorf("bad wValue: %w", err)
	}
	index, err := parseNum(c.Index, 16)
	if err != nil {
		return fmt.Errorf("bad wIndex: %w", err)
	}

	dev, err := usbx.Open(uint16(c.VID), uint16(c.PID), c.Timeout)
	if err != nil {
		return err
	}
	defer func() { _ = dev.Close() }()

	if c.Arm {
		if err := dev.Arm(); err != nil {
			logger.Warn("arm command failed", slog.Any("error", err))
		}
	}

	for i := 0; i < c.Count; i++ {
		n, err := dev.Control(uint8(req), uint16(value), uint16(index))
		fmt.Printf("OUT 0x40 req=%02x val=%04x idx=%04x -> %d\n", req, value, index, n)
		if err != nil {
			logger.Warn("control request failed", slog.Any("error", err))
		}
		if c.Delay > 0 && i < c.Count-1 {
			time.Sleep(c.Delay)
		}
	}
	return nil
}

func parseNum(s string, bits int) (uint64, error) {
	return strconv.ParseUint(s, 0, bits)
}
