package x360

// Button identifies one logical controller button by its bitmask in the
// report's button dword. The masks match XInput's wButtons layout.
type Button uint32

const (
	ButtonDPadUp    Button = 0x0001
	ButtonDPadDown  Button = 0x0002
	ButtonDPadLeft  Button = 0x0004
	ButtonDPadRight Button = 0x0008
	ButtonStart     Button = 0x0010
	ButtonBack      Button = 0x0020
	ButtonLThumb    Button = 0x0040 // left stick click (L3)
	ButtonRThumb    Button = 0x0080 // right stick click (R3)
	ButtonLShoulder Button = 0x0100 // left bumper (LB)
	ButtonRShoulder Button = 0x0200 // right bumper (RB)
	ButtonGuide     Button = 0x0400 // Xbox/Guide button (center logo)
	ButtonA         Button = 0x1000
	ButtonB         Button = 0x2000
	ButtonX         Button = 0x4000
	ButtonY         Button = 0x8000
)

// ButtonMask covers every defined button bit. Bits outside it (including the
// trigger bytes riding in the dword's upper half) are not buttons.
const ButtonMask uint32 = 0xF7FF

// Order lists every button in canonical display order.
var Order = []Button{
	ButtonA, ButtonB, ButtonX, ButtonY,
	ButtonDPadUp, ButtonDPadDown, ButtonDPadLeft, ButtonDPadRight,
	ButtonStart, ButtonBack,
	ButtonLShoulder, ButtonRShoulder,
	ButtonGuide, ButtonLThumb, ButtonRThumb,
}

func (b Button) String() string {
	switch b {
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	case ButtonX:
		return "X"
	case ButtonY:
		return "Y"
	case ButtonDPadUp:
		return "DPAD_UP"
	case ButtonDPadDown:
		return "DPAD_DOWN"
	case ButtonDPadLeft:
		return "DPAD_LEFT"
	case ButtonDPadRight:
		return "DPAD_RIGHT"
	case ButtonStart:
		return "START"
	case ButtonBack:
		return "BACK"
	case ButtonLShoulder:
		return "LB"
	case ButtonRShoulder:
		return "RB"
	case ButtonGuide:
		return "GUIDE"
	case ButtonLThumb:
		return "L3"
	case ButtonRThumb:
		return "R3"
	}
	return "UNKNOWN"
}
