// Package x360 implements the vendor control-transfer report protocol
// exposed by Microsoft Xbox 360 controller hardware on its vendor-specific
// interface: the poll/arm request constants, the fixed 20-byte input report
// layout, and change detection over the decoded state.
package x360

const (
	// VendorID is Microsoft's USB vendor id.
	VendorID uint16 = 0x045E
	// ProductID is the wired controller exposing the vendor bridge interface.
	ProductID uint16 = 0x028F
	// ReceiverPID is the wireless receiver dongle (rumble goes through it).
	ReceiverPID uint16 = 0x0719
)

// Vendor control requests. Polls are device-to-host reads of RequestPoll;
// the stream must first be armed with a host-to-device RequestArm carrying
// ArmValue in wValue. The device tolerates polling without a prior arm, but
// reports may be stale until one succeeds.
const (
	RequestTypeIn  uint8 = 0xC0 // vendor | device | device-to-host
	RequestTypeOut uint8 = 0x40 // vendor | device | host-to-device

	RequestPoll uint8 = 0xC2
	RequestArm  uint8 = 0x48

	ArmValue uint16 = 0x0006
)

// RumblePacket builds the 8-byte interrupt-OUT motor command understood by
// the wireless receiver. left drives the heavy motor, right the light one.
func RumblePacket(left, right uint8) []byte {
	return []byte{0x00, 0x08, left, right, 0x00, 0x00, 0x00, 0x00}
}
