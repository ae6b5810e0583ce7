//go:build linux

package uinput

import (
	"encoding/binary"
	"fmt"
	"os"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

// uinput ioctls, from linux/uinput.h.
const (
	uiDevCreate  = 0x5501
	uiDevDestroy = 0x5502
	uiDevSetup   = 0x405c5503 // _IOW('U', 3, struct uinput_setup)
	uiAbsSetup   = 0x401c5504 // _IOW('U', 4, struct uinput_abs_setup)
	uiSetEvBit   = 0x40045564
	uiSetKeyBit  = 0x40045565
	uiSetAbsBit  = 0x40045567

	busUSB = 0x03

	maxNameSize = 80
)

type inputID struct {
	BusType uint16
	Vendor  uint16
	Product uint16
	Version uint16
}

type uinputSetup struct {
	ID           inputID
	Name         [maxNameSize]byte
	FFEffectsMax uint32
}

type absInfo struct {
	Value      int32
	Minimum    int32
	Maximum    int32
	Fuzz       int32
	Flat       int32
	Resolution int32
}

type uinputAbsSetup struct {
	Code uint16
	_    uint16
	Info absInfo
}

type inputEvent struct {
	Sec   int64
	Usec  int64
	Type  uint16
	Code  uint16
	Value int32
}

// Device is a created uinput device node.
type Device struct {
	f *os.File
}

// Open creates the virtual device described by cfg on /dev/uinput.
func Open(cfg Config) (*Device, error) {
	f, err := os.OpenFile("/dev/uinput", os.O_WRONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, fmt.Errorf("open /dev/uinput: %w", err)
	}
	d := &Device{f: f}

	fail := func(err error) (*Device, error) {
		_ = f.Close()
		return nil, err
	}

	if len(cfg.Keys) > 0 {
		if err := d.ioctl(uiSetEvBit, uintptr(EvKey)); err != nil {
			return fail(fmt.Errorf("enable EV_KEY: %w", err))
		}
		for _, code := range cfg.Keys {
			if err := d.ioctl(uiSetKeyBit, uintptr(code)); err != nil {
				return fail(fmt.Errorf("register key 0x%03x: %w", code, err))
			}
		}
	}
	if len(cfg.Axes) > 0 {
		if err := d.ioctl(uiSetEvBit, uintptr(EvAbs)); err != nil {
			return fail(fmt.Errorf("enable EV_ABS: %w", err))
		}
		for _, ax := range cfg.Axes {
			if err := d.ioctl(uiSetAbsBit, uintptr(ax.Code)); err != nil {
				return fail(fmt.Errorf("register axis 0x%02x: %w", ax.Code, err))
			}
			setup := uinputAbsSetup{
				Code: ax.Code,
				Info: absInfo{Minimum: ax.Min, Maximum: ax.Max, Fuzz: ax.Fuzz, Flat: ax.Flat},
			}
			if err := d.ioctl(uiAbsSetup, uintptr(unsafe.Pointer(&setup))); err != nil {
				return fail(fmt.Errorf("setup axis 0x%02x: %w", ax.Code, err))
			}
		}
	}

	setup := uinputSetup{
		ID: inputID{
			BusType: busUSB,
			Vendor:  cfg.Vendor,
			Product: cfg.Product,
			Version: cfg.Version,
		},
	}
	copy(setup.Name[:maxNameSize-1], cfg.Name)
	if err := d.ioctl(uiDevSetup, uintptr(unsafe.Pointer(&setup))); err != nil {
		return fail(fmt.Errorf("device setup: %w", err))
	}
	if err := d.ioctl(uiDevCreate, 0); err != nil {
		return fail(fmt.Errorf("device create: %w", err))
	}

	// Give userspace consumers a moment to pick up the new node before the
	// first event batch lands.
	time.Sleep(200 * time.Millisecond)
	return d, nil
}

// Emit writes one input event.
func (d *Device) Emit(typ, code uint16, value int32) error {
	ev := inputEvent{Type: typ, Code: code, Value: value}
	if err := binary.Write(d.f, binary.LittleEndian, ev); err != nil {
		return &EmitError{Type: typ, Code: code, Err: err}
	}
	return nil
}

// Sync terminates the current event batch with EV_SYN/SYN_REPORT.
func (d *Device) Sync() error {
	return d.Emit(EvSyn, SynReport, 0)
}

// Close destroys the virtual device and releases the node.
func (d *Device) Close() error {
	err := d.ioctl(uiDevDestroy, 0)
	if cerr := d.f.Close(); err == nil {
		err = cerr
	}
	return err
}

func (d *Device) ioctl(req uintptr, arg uintptr) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, d.f.Fd(), req, arg)
	if errno != 0 {
		return errno
	}
	return nil
}
