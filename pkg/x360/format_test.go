package x360

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeldNamesNone(t *testing.T) {
	assert.Equal(t, "(none)", HeldNames(0))
}

func TestHeldNamesOrder(t *testing.T) {
	held := uint32(ButtonStart | ButtonA | ButtonDPadLeft)
	assert.Equal(t, "A + DPAD_LEFT + START", HeldNames(held))
}

func TestHeldNamesExcludesGuideAndThumbs(t *testing.T) {
	held := uint32(ButtonGuide | ButtonLThumb | ButtonRThumb)
	assert.Equal(t, "(none)", HeldNames(held))
}

func TestFormatLineFullTrigger(t *testing.T) {
	st := State{Buttons: uint32(255) << 16, LT: 255}
	line := FormatLine(st)
	assert.Contains(t, line, "LT=255 (100.0%)")
	assert.Contains(t, line, "RT=  0 (  0.0%)")
	assert.Contains(t, line, "btn=0x00FF0000")
	assert.Contains(t, line, "held: (none)")
}

func TestFormatLineHeldButtons(t *testing.T) {
	st := State{Buttons: uint32(ButtonB | ButtonRShoulder), RT: 128}
	line := FormatLine(st)
	assert.Contains(t, line, "held: B + RB")
	assert.Contains(t, line, "RT=128 ( 50.2%)")
}

func TestButtonStrings(t *testing.T) {
	assert.Equal(t, "GUIDE", ButtonGuide.String())
	assert.Equal(t, "L3", ButtonLThumb.String())
	assert.Equal(t, "R3", ButtonRThumb.String())
	assert.Equal(t, "UNKNOWN", Button(0x0800).String())
}
