package x360

import (
	"fmt"
	"strings"
)

// telemetryOrder is the button subset shown on telemetry lines. Guide and
// the stick clicks are decoded but deliberately left off the line format.
var telemetryOrder = []Button{
	ButtonA, ButtonB, ButtonX, ButtonY,
	ButtonDPadUp, ButtonDPadDown, ButtonDPadLeft, ButtonDPadRight,
	ButtonStart, ButtonBack,
	ButtonLShoulder, ButtonRShoulder,
}

// HeldNames renders the held buttons from a raw button dword as a " + "
// joined list in canonical order, or "(none)" when nothing is held.
func HeldNames(buttons uint32) string {
	var parts []string
	for _, b := range telemetryOrder {
		if buttons&uint32(b) != 0 {
			parts = append(parts, b.String())
		}
	}
	if len(parts) == 0 {
		return "(none)"
	}
	return strings.Join(parts, " + ")
}

// Percent maps a trigger magnitude onto 0-100.
func Percent(v uint8) float64 {
	return float64(v) / 255.0 * 100.0
}

// FormatLine renders one telemetry line for a decoded state: the raw button
// dword in hex, the held button names, and both triggers as raw value plus
// percentage with one decimal place.
func FormatLine(s State) string {
	return fmt.Sprintf("btn=0x%08X  | held: %s  | LT=%3d (%5.1f%%)  | RT=%3d (%5.1f%%)",
		s.Buttons, HeldNames(s.Buttons),
		s.LT, Percent(s.LT),
		s.RT, Percent(s.RT))
}
