// Package usbx owns the USB transport for the controller's vendor interface:
// a gousb-backed control-transfer implementation, a scripted in-memory
// transport for tests, and device discovery helpers.
package usbx

import "errors"

// Transport is the poll-side collaborator consumed by the bridge driver.
// Exactly one read is in flight at a time; ReadReport blocks for up to the
// transport's own timeout.
type Transport interface {
	// Arm sends the one-time stream-enable command. Reports polled before a
	// successful arm may be stale or zero.
	Arm() error
	// ReadReport polls one input report into buf and returns the number of
	// bytes the device produced. Timeouts and stalls are reported as
	// ErrTimeout and ErrStall.
	ReadReport(buf []byte) (int, error)
	Close() error
}

var (
	// ErrTimeout means the device produced no report within the transfer
	// timeout. Recoverable; poll again.
	ErrTimeout = errors.New("usb transfer timed out")
	// ErrStall means the endpoint stalled on this transfer. Recoverable.
	ErrStall = errors.New("usb endpoint stalled")
)

// Recoverable reports whether a ReadReport error means "no report this
// cycle" rather than a dead transport.
func Recoverable(err error) bool {
	return errors.Is(err, ErrTimeout) || errors.Is(err, ErrStall)
}
