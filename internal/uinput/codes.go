// Package uinput creates a virtual evdev input device through the Linux
// uinput interface and emits events into it. Event type and code constants
// are defined here (from linux/input-event-codes.h) so consumers and tests
// build on every platform; the device itself is Linux-only.
package uinput

import "fmt"

// Event types.
const (
	EvSyn uint16 = 0x00
	EvKey uint16 = 0x01
	EvAbs uint16 = 0x03

	SynReport uint16 = 0x00
)

// Gamepad key codes. Note the kernel aliases: BTN_NORTH is BTN_X and
// BTN_WEST is BTN_Y, so the X button maps to BtnNorth and Y to BtnWest.
const (
	BtnSouth  uint16 = 0x130 // BTN_A
	BtnEast   uint16 = 0x131 // BTN_B
	BtnNorth  uint16 = 0x133 // BTN_X
	BtnWest   uint16 = 0x134 // BTN_Y
	BtnTL     uint16 = 0x136
	BtnTR     uint16 = 0x137
	BtnSelect uint16 = 0x13a
	BtnStart  uint16 = 0x13b
	BtnMode   uint16 = 0x13c
	BtnThumbL uint16 = 0x13d
	BtnThumbR uint16 = 0x13e
)

// Absolute axis codes.
const (
	AbsX     uint16 = 0x00
	AbsY     uint16 = 0x01
	AbsZ     uint16 = 0x02
	AbsRX    uint16 = 0x03
	AbsRY    uint16 = 0x04
	AbsRZ    uint16 = 0x05
	AbsHat0X uint16 = 0x10
	AbsHat0Y uint16 = 0x11
)

// AbsAxis declares one absolute axis the virtual device exposes.
type AbsAxis struct {
	Code       uint16
	Min, Max   int32
	Fuzz, Flat int32
}

// Config describes the virtual device to create.
type Config struct {
	Name    string
	Vendor  uint16
	Product uint16
	Version uint16
	Keys    []uint16
	Axes    []AbsAxis
}

// EmitError reports a single event write the device node rejected.
type EmitError struct {
	Type, Code uint16
	Err        error
}

func (e *EmitError) Error() string {
	return fmt.Sprintf("emit event type=0x%02x code=0x%03x: %v", e.Type, e.Code, e.Err)
}

func (e *EmitError) Unwrap() error { return e.Err }
