// Package cmd defines the blu360 command tree. Each subcommand's Run method
// receives the configured logger through kong's binding.
package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CLI is the root command structure parsed by kong.
type CLI struct {
	Log LogFlags `embed:"" prefix:"log."`

	Bridge BridgeCmd `cmd:"" help:"Bridge the controller onto a virtual evdev gamepad."`
	Watch  WatchCmd  `cmd:"" help:"Print a telemetry line whenever the controller state changes."`
	List   ListCmd   `cmd:"" help:"List USB and HID devices to locate the controller."`
	Send   SendCmd   `cmd:"" help:"Send raw vendor control requests to the controller."`
	Rumble RumbleCmd `cmd:"" help:"Pulse the rumble motors through the wireless receiver."`
}

// LogFlags configures the process logger.
type LogFlags struct {
	Level string `help:"Log level (trace, debug, info, warn, error)." default:"info" env:"BLU360_LOG_LEVEL"`
	File  string `help:"Append logs to this file instead of stderr." env:"BLU360_LOG_FILE"`
}

// DeviceFlags selects the USB device and transfer timing. Shared by every
// command that opens the controller.
type DeviceFlags struct {
	VID     HexID         `help:"USB vendor id." default:"0x045E" env:"BLU360_VID"`
	PID     HexID         `help:"USB product id." default:"0x028F" env:"BLU360_PID"`
	Timeout time.Duration `help:"Per-transfer USB timeout." default:"1s"`
}

// HexID is a uint16 flag accepting 0x-prefixed, octal or decimal notation.
type HexID uint16

func (h *HexID) UnmarshalText(text []byte) error {
	v, err := strconv.ParseUint(strings.TrimSpace(string(text)), 0, 16)
	if err != nil {
		return fmt.Errorf("invalid id %q: %w", text, err)
	}
	*h = HexID(v)
	return nil
}

func (h HexID) String() string {
	return fmt.Sprintf("0x%04X", uint16(h))
}
