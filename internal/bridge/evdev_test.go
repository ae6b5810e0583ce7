package bridge

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhignight2004/ProjectBlu360/internal/uinput"
	"github.com/jhignight2004/ProjectBlu360/pkg/x360"
)

type event struct {
	typ, code uint16
	value     int32
}

// recordSink captures emitted events; failCode makes that code's emit fail.
type recordSink struct {
	events   []event
	synced   int
	failCode uint16
	failErr  error
}

func (s *recordSink) Emit(typ, code uint16, value int32) error {
	if s.failErr != nil && code == s.failCode {
		return &uinput.EmitError{Type: typ, Code: code, Err: s.failErr}
	}
	s.events = append(s.events, event{typ, code, value})
	return nil
}

func (s *recordSink) Sync() error {
	s.synced++
	s.events = append(s.events, event{uinput.EvSyn, uinput.SynReport, 0})
	return nil
}

func TestPublishEmitsFullBatch(t *testing.T) {
	sink := &recordSink{}
	pub := NewEvdev(sink)

	st := x360.State{
		Buttons: uint32(x360.ButtonA | x360.ButtonGuide),
		LT:      7, RT: 250,
		LX: 100, LY: 200, RX: -300, RY: -400,
	}
	require.NoError(t, pub.Publish(st))

	// 11 key events, 2 hat axes, 4 stick axes, 2 triggers, 1 sync.
	require.Len(t, sink.events, 20)
	assert.Equal(t, 1, sink.synced)

	// Every batch reports every button's level, not only the changed ones.
	want := []event{
		{uinput.EvKey, uinput.BtnSouth, 1},
		{uinput.EvKey, uinput.BtnEast, 0},
		{uinput.EvKey, uinput.BtnWest, 0},
		{uinput.EvKey, uinput.BtnNorth, 0},
		{uinput.EvKey, uinput.BtnTL, 0},
		{uinput.EvKey, uinput.BtnTR, 0},
		{uinput.EvKey, uinput.BtnStart, 0},
		{uinput.EvKey, uinput.BtnSelect, 0},
		{uinput.EvKey, uinput.BtnMode, 1},
		{uinput.EvKey, uinput.BtnThumbL, 0},
		{uinput.EvKey, uinput.BtnThumbR, 0},
		{uinput.EvAbs, uinput.AbsHat0X, 0},
		{uinput.EvAbs, uinput.AbsHat0Y, 0},
		{uinput.EvAbs, uinput.AbsX, 100},
		{uinput.EvAbs, uinput.AbsY, -200},
		{uinput.EvAbs, uinput.AbsRX, -300},
		{uinput.EvAbs, uinput.AbsRY, 400},
		{uinput.EvAbs, uinput.AbsZ, 7},
		{uinput.EvAbs, uinput.AbsRZ, 250},
		{uinput.EvSyn, uinput.SynReport, 0},
	}
	assert.Equal(t, want, sink.events)
}

func TestButtonXYLandOnKernelAliases(t *testing.T) {
	sink := &recordSink{}
	pub := NewEvdev(sink)

	st := x360.State{Buttons: uint32(x360.ButtonX)}
	require.NoError(t, pub.Publish(st))

	// BTN_NORTH aliases BTN_X, BTN_WEST aliases BTN_Y.
	assert.Contains(t, sink.events, event{uinput.EvKey, uinput.BtnNorth, 1})
	assert.Contains(t, sink.events, event{uinput.EvKey, uinput.BtnWest, 0})
}

func TestHatFolding(t *testing.T) {
	cases := []struct {
		name    string
		buttons x360.Button
		hx, hy  int32
	}{
		{"neutral", 0, 0, 0},
		{"right", x360.ButtonDPadRight, 1, 0},
		{"left", x360.ButtonDPadLeft, -1, 0},
		{"up", x360.ButtonDPadUp, 0, -1},
		{"down", x360.ButtonDPadDown, 0, 1},
		{"left+right cancel", x360.ButtonDPadLeft | x360.ButtonDPadRight, 0, 0},
		{"up+down cancel", x360.ButtonDPadUp | x360.ButtonDPadDown, 0, 0},
		{"up-right diagonal", x360.ButtonDPadUp | x360.ButtonDPadRight, 1, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hx, hy := hatFromDPad(uint32(tc.buttons))
			assert.Equal(t, tc.hx, hx)
			assert.Equal(t, tc.hy, hy)
		})
	}
}

func TestStickVerticalInversion(t *testing.T) {
	sink := &recordSink{}
	pub := NewEvdev(sink)

	st := x360.State{LY: -32768, RY: 32767}
	require.NoError(t, pub.Publish(st))

	// -(-32768) widens past int16; the sink speaks int32.
	assert.Contains(t, sink.events, event{uinput.EvAbs, uinput.AbsY, 32768})
	assert.Contains(t, sink.events, event{uinput.EvAbs, uinput.AbsRY, -32767})
}

func TestEmitErrorDoesNotAbortBatch(t *testing.T) {
	cause := errors.New("write failed")
	sink := &recordSink{failCode: uinput.BtnSouth, failErr: cause}
	pub := NewEvdev(sink)

	err := pub.Publish(x360.State{})
	require.Error(t, err)

	var emitErr *uinput.EmitError
	require.ErrorAs(t, err, &emitErr)
	assert.Equal(t, uinput.EvKey, emitErr.Type)
	assert.Equal(t, uinput.BtnSouth, emitErr.Code)

	// The remaining 18 events and the sync still went out.
	assert.Len(t, sink.events, 19)
	assert.Equal(t, 1, sink.synced)
	assert.Equal(t, event{uinput.EvSyn, uinput.SynReport, 0}, sink.events[len(sink.events)-1])
}

func TestDeviceSpecCoversMapping(t *testing.T) {
	keys := DeviceKeys()
	assert.Len(t, keys, len(keyMap))

	axes := DeviceAxes()
	codes := map[uint16]bool{}
	for _, a := range axes {
		codes[a.Code] = true
	}
	for _, want := range []uint16{
		uinput.AbsX, uinput.AbsY, uinput.AbsRX, uinput.AbsRY,
		uinput.AbsZ, uinput.AbsRZ, uinput.AbsHat0X, uinput.AbsHat0Y,
	} {
		assert.True(t, codes[want], "missing axis 0x%02x", want)
	}
}
