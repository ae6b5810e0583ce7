package usbx

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/gousb"

	"github.com/jhignight2004/ProjectBlu360/pkg/x360"
)

// Device is a controller opened on its vendor-specific interface via libusb.
// It implements Transport and additionally exposes the raw vendor control
// and interrupt operations used by the send and rumble tools.
type Device struct {
	ctx  *gousb.Context
	dev  *gousb.Device
	intf *gousb.Interface
	done func()
	out  *gousb.OutEndpoint
}

// Open claims the default interface of the device at vid:pid. The kernel
// driver (xpad) is detached automatically so it does not consume reports.
func Open(vid, pid uint16, timeout time.Duration) (*Device, error) {
	ctx := gousb.NewContext()

	dev, err := ctx.OpenDeviceWithVIDPID(gousb.ID(vid), gousb.ID(pid))
	if err != nil {
		_ = ctx.Close()
		return nil, fmt.Errorf("open device %04x:%04x: %w", vid, pid, err)
	}
	if dev == nil {
		_ = ctx.Close()
		return nil, fmt.Errorf("device %04x:%04x not found", vid, pid)
	}

	if err := dev.SetAutoDetach(true); err != nil {
		_ = dev.Close()
		_ = ctx.Close()
		return nil, fmt.Errorf("auto-detach kernel driver: %w", err)
	}
	dev.ControlTimeout = timeout

	intf, done, err := dev.DefaultInterface()
	if err != nil {
		_ = dev.Close()
		_ = ctx.Close()
		return nil, fmt.Errorf("claim interface: %w", err)
	}

	return &Device{ctx: ctx, dev: dev, intf: intf, done: done}, nil
}

// Arm issues the stream-enable vendor request.
func (d *Device) Arm() error {
	if _, err := d.dev.Control(x360.RequestTypeOut, x360.RequestArm, x360.ArmValue, 0, nil); err != nil {
		return fmt.Errorf("arm stream: %w", mapErr(err))
	}
	return nil
}

// ReadReport polls one vendor report into buf.
func (d *Device) ReadReport(buf []byte) (int, error) {
	n, err := d.dev.Control(x360.RequestTypeIn, x360.RequestPoll, 0, 0, buf)
	if err != nil {
		return n, mapErr(err)
	}
	return n, nil
}

// Control sends an arbitrary host-to-device vendor request with no payload.
func (d *Device) Control(req uint8, value, index uint16) (int, error) {
	n, err := d.dev.Control(x360.RequestTypeOut, req, value, index, nil)
	if err != nil {
		return n, mapErr(err)
	}
	return n, nil
}

// WriteInterrupt sends data on the interface's interrupt OUT endpoint,
// resolving the endpoint on first use.
func (d *Device) WriteInterrupt(data []byte) error {
	if d.out == nil {
		for _, ep := range d.intf.Setting.Endpoints {
			if ep.Direction == gousb.EndpointDirectionOut && ep.TransferType == gousb.TransferTypeInterrupt {
				out, err := d.intf.OutEndpoint(ep.Number)
				if err != nil {
					return fmt.Errorf("open interrupt OUT endpoint %d: %w", ep.Number, err)
				}
				d.out = out
				break
			}
		}
		if d.out == nil {
			return errors.New("no interrupt OUT endpoint on claimed interface")
		}
	}
	if _, err := d.out.Write(data); err != nil {
		return fmt.Errorf("interrupt write: %w", mapErr(err))
	}
	return nil
}

// Close releases the interface and the device handle.
func (d *Device) Close() error {
	if d.done != nil {
		d.done()
	}
	err := d.dev.Close()
	if cerr := d.ctx.Close(); err == nil {
		err = cerr
	}
	return err
}

// mapErr folds libusb's recoverable conditions onto the package sentinels so
// callers can classify without importing gousb.
func mapErr(err error) error {
	switch {
	case errors.Is(err, gousb.ErrorTimeout):
		return ErrTimeout
	case errors.Is(err, gousb.ErrorPipe):
		return ErrStall
	}
	return err
}
