package x360

// Changes identifies exactly which fields differ between two states.
type Changes struct {
	Buttons Button // mask of buttons that toggled
	LT, RT  bool
	LX, LY  bool
	RX, RY  bool
}

// Changed reports whether any field differs between the two states.
func Changed(prev, next State) bool {
	return prev != next
}

// Diff computes the per-field change set between two states.
func Diff(prev, next State) Changes {
	return Changes{
		Buttons: Button((prev.Buttons ^ next.Buttons) & ButtonMask),
		LT:      prev.LT != next.LT,
		RT:      prev.RT != next.RT,
		LX:      prev.LX != next.LX,
		LY:      prev.LY != next.LY,
		RX:      prev.RX != next.RX,
		RY:      prev.RY != next.RY,
	}
}

// Any reports whether the change set is non-empty.
func (c Changes) Any() bool {
	return c != Changes{}
}
