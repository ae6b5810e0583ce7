//go:build !linux

package uinput

import "errors"

// Device is only available on Linux.
type Device struct{}

func Open(Config) (*Device, error) {
	return nil, errors.New("uinput virtual devices require linux")
}

func (d *Device) Emit(typ, code uint16, value int32) error { return errors.ErrUnsupported }
func (d *Device) Sync() error                              { return errors.ErrUnsupported }
func (d *Device) Close() error                             { return nil }
