package cmd

import (
	"fmt"
	"log/slog"

	"github.com/jhignight2004/ProjectBlu360/internal/usbx"
	"github.com/jhignight2004/ProjectBlu360/pkg/x360"
)

// ListCmd prints discovered USB and HID devices, marking likely controllers.
type ListCmd struct {
	All bool `help:"Show every device instead of only Microsoft ones."`
}

func (c *ListCmd) Run(logger *slog.Logger) error {
	infos, err := usbx.List()
	if err != nil {
		return err
	}

	shown := 0
	for _, d := range infos {
		if !c.All && d.VendorID != x360.VendorID {
			continue
		}
		mark := ""
		if d.VendorID == x360.VendorID && (d.ProductID == x360.ProductID || d.ProductID == x360.ReceiverPID) {
			mark = "  <-- controller"
		}
		fmt.Printf("%-3s %04x:%04x  %-28s %-20s %s%s\n",
			d.Bus, d.VendorID, d.ProductID, d.Product, d.Manufacturer, d.Path, mark)
		shown++
	}
	if shown == 0 {
		logger.Info("no matching devices found, try --all")
	}
	return nil
}
