package usbx

import (
	"fmt"

	"github.com/karalabe/usb"
	usbhid "rafaelmartins.com/p/usbhid"
)

// Info describes one discovered device.
type Info struct {
	Bus          string // "usb" or "hid"
	Path         string
	VendorID     uint16
	ProductID    uint16
	Product      string
	Manufacturer string
}

// List enumerates raw USB devices and, separately, devices visible through
// the HID layer. The controller's vendor interface is not HID-class, so it
// only appears in the usb view; the hid view helps tell lookalike devices
// apart. Either enumeration failing is an error only if both fail.
func List() ([]Info, error) {
	var out []Info

	devs, usbErr := usb.Enumerate(0, 0)
	for _, d := range devs {
		out = append(out, Info{
			Bus:          "usb",
			Path:         d.Path,
			VendorID:     d.VendorID,
			ProductID:    d.ProductID,
			Product:      d.Product,
			Manufacturer: d.Manufacturer,
		})
	}

	hids, hidErr := usbhid.Enumerate(nil)
	for _, d := range hids {
		out = append(out, Info{
			Bus:          "hid",
			Path:         d.Path(),
			VendorID:     d.VendorId(),
			ProductID:    d.ProductId(),
			Product:      d.Product(),
			Manufacturer: d.Manufacturer(),
		})
	}

	if usbErr != nil && hidErr != nil {
		return nil, fmt.Errorf("usb enumerate: %v; hid enumerate: %v", usbErr, hidErr)
	}
	return out, nil
}
