package bridge

import (
	"github.com/jhignight2004/ProjectBlu360/internal/uinput"
	"github.com/jhignight2004/ProjectBlu360/pkg/x360"
)

// Sink receives the evdev publisher's event batches. *uinput.Device
// satisfies it; tests substitute a recorder.
type Sink interface {
	Emit(typ, code uint16, value int32) error
	Sync() error
}

// keyMap is the button-to-key-code mapping, in batch emission order.
// BtnNorth/BtnWest follow the kernel aliases (BTN_X/BTN_Y), which is why Y
// lands on BtnWest.
var keyMap = []struct {
	btn  x360.Button
	code uint16
}{
	{x360.ButtonA, uinput.BtnSouth},
	{x360.ButtonB, uinput.BtnEast},
	{x360.ButtonY, uinput.BtnWest},
	{x360.ButtonX, uinput.BtnNorth},
	{x360.ButtonLShoulder, uinput.BtnTL},
	{x360.ButtonRShoulder, uinput.BtnTR},
	{x360.ButtonStart, uinput.BtnStart},
	{x360.ButtonBack, uinput.BtnSelect},
	{x360.ButtonGuide, uinput.BtnMode},
	{x360.ButtonLThumb, uinput.BtnThumbL},
	{x360.ButtonRThumb, uinput.BtnThumbR},
}

// DeviceKeys lists every key code the virtual gamepad must register.
func DeviceKeys() []uint16 {
	codes := make([]uint16, len(keyMap))
	for i, m := range keyMap {
		codes[i] = m.code
	}
	return codes
}

// DeviceAxes lists the virtual gamepad's absolute axes with their ranges:
// sticks over the full signed 16-bit domain, triggers over 0-255, and the
// two hat axes over -1..1.
func DeviceAxes() []uinput.AbsAxis {
	return []uinput.AbsAxis{
		{Code: uinput.AbsX, Min: -32768, Max: 32767, Fuzz: 16, Flat: 128},
		{Code: uinput.AbsY, Min: -32768, Max: 32767, Fuzz: 16, Flat: 128},
		{Code: uinput.AbsRX, Min: -32768, Max: 32767, Fuzz: 16, Flat: 128},
		{Code: uinput.AbsRY, Min: -32768, Max: 32767, Fuzz: 16, Flat: 128},
		{Code: uinput.AbsZ, Min: 0, Max: 255},
		{Code: uinput.AbsRZ, Min: 0, Max: 255},
		{Code: uinput.AbsHat0X, Min: -1, Max: 1},
		{Code: uinput.AbsHat0Y, Min: -1, Max: 1},
	}
}

// hatFromDPad folds the four D-pad bits into the two signed hat axes.
// Opposite directions cancel to 0.
func hatFromDPad(buttons uint32) (x, y int32) {
	if buttons&uint32(x360.ButtonDPadLeft) != 0 {
		x--
	}
	if buttons&uint32(x360.ButtonDPadRight) != 0 {
		x++
	}
	if buttons&uint32(x360.ButtonDPadUp) != 0 {
		y--
	}
	if buttons&uint32(x360.ButtonDPadDown) != 0 {
		y++
	}
	return x, y
}

// Evdev publishes decoded states as virtual gamepad event batches.
type Evdev struct {
	sink Sink
}

// NewEvdev returns a publisher emitting into sink.
func NewEvdev(sink Sink) *Evdev {
	return &Evdev{sink: sink}
}

// Publish emits the complete state as one batch: every button's level, the
// folded hat axes, sticks (vertical sign inverted to match the evdev "up is
// negative raw" convention mismatch), triggers, then a single sync marker.
// The full batch goes out on any change so the consumer's state stays
// consistent even if it missed an earlier sync. A rejected event does not
// stop the batch; the first failure is returned after the sync.
func (p *Evdev) Publish(st x360.State) error {
	var firstErr error
	emit := func(typ, code uint16, value int32) {
		if err := p.sink.Emit(typ, code, value); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	for _, m := range keyMap {
		var v int32
		if st.Held(m.btn) {
			v = 1
		}
		emit(uinput.EvKey, m.code, v)
	}

	hx, hy := hatFromDPad(st.Buttons)
	emit(uinput.EvAbs, uinput.AbsHat0X, hx)
	emit(uinput.EvAbs, uinput.AbsHat0Y, hy)

	emit(uinput.EvAbs, uinput.AbsX, int32(st.LX))
	emit(uinput.EvAbs, uinput.AbsY, -int32(st.LY))
	emit(uinput.EvAbs, uinput.AbsRX, int32(st.RX))
	emit(uinput.EvAbs, uinput.AbsRY, -int32(st.RY))

	emit(uinput.EvAbs, uinput.AbsZ, int32(st.LT))
	emit(uinput.EvAbs, uinput.AbsRZ, int32(st.RT))

	if err := p.sink.Sync(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
