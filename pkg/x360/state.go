package x360

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// ReportLen is the full report buffer size returned by a poll.
	ReportLen = 20
	// minDecodeLen is the shortest report carrying the complete state: the
	// stick words end at offset 13, so anything shorter cannot be decoded.
	minDecodeLen = 14
)

// ErrShortReport is returned by Decode for reports too short to carry the
// full state. Callers should skip the poll cycle rather than abort.
var ErrShortReport = errors.New("report too short")

// State is the decoded controller state.
//
// Buttons holds the raw little-endian dword at report offsets 2-5. The
// defined button bits live in the low 16 bits (see Button); the trigger
// bytes ride along in the upper half, so comparing two States' Buttons
// fields also compares triggers. LT and RT repeat those two bytes as plain
// magnitudes for direct use.
type State struct {
	Buttons uint32
	LT, RT  uint8
	LX, LY  int16
	RX, RY  int16
}

// Decode interprets a raw poll report. It is a pure function of the first
// 14 bytes; trailing bytes up to ReportLen are reserved and ignored.
//
// Layout: bytes 2-5 are the button/trigger dword (LE), with byte 4 the left
// trigger and byte 5 the right trigger; bytes 6-13 are LX, LY, RX, RY as
// little-endian signed 16-bit words.
func Decode(raw []byte) (State, error) {
	if len(raw) < minDecodeLen {
		return State{}, fmt.Errorf("%w: %d bytes", ErrShortReport, len(raw))
	}
	return State{
		Buttons: binary.LittleEndian.Uint32(raw[2:6]),
		LT:      raw[4],
		RT:      raw[5],
		LX:      int16(binary.LittleEndian.Uint16(raw[6:8])),
		LY:      int16(binary.LittleEndian.Uint16(raw[8:10])),
		RX:      int16(binary.LittleEndian.Uint16(raw[10:12])),
		RY:      int16(binary.LittleEndian.Uint16(raw[12:14])),
	}, nil
}

// Held reports whether the given button bit is set.
func (s State) Held(b Button) bool {
	return s.Buttons&uint32(b) != 0
}

// Equal is exact field-wise equality. No epsilon, no hysteresis.
func (s State) Equal(o State) bool {
	return s == o
}

// Encode builds a synthetic ReportLen-byte report that decodes back to s.
// The low 16 button bits are written at offsets 2-3 and the trigger bytes at
// offsets 4-5, so the decoded Buttons dword carries LT and RT in its upper
// half; a State round-trips exactly when its Buttons field was composed the
// same way (as every Decode result is).
func (s State) Encode() []byte {
	b := make([]byte, ReportLen)
	binary.LittleEndian.PutUint16(b[2:4], uint16(s.Buttons))
	b[4] = s.LT
	b[5] = s.RT
	binary.LittleEndian.PutUint16(b[6:8], uint16(s.LX))
	binary.LittleEndian.PutUint16(b[8:10], uint16(s.LY))
	binary.LittleEndian.PutUint16(b[10:12], uint16(s.RX))
	binary.LittleEndian.PutUint16(b[12:14], uint16(s.RY))
	return b
}

// Norm projects a raw stick component into the symmetric range [-1, 1].
func Norm(v int16) float64 {
	f := float64(v) / 32768.0
	if f < -1 {
		return -1
	}
	if f > 1 {
		return 1
	}
	return f
}
