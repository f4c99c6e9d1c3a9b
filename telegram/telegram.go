// Package telegram defines the boundary to the wire-protocol layer of a
// daisy-chained LED bus. One telegram is one request/response round trip to a
// node (or a broadcast). The framing, CRC and retry policy of the wire
// protocol live below this interface and are not part of this module; every
// method simply returns the transport's verdict.
//
// Addresses are 1-based; address Broadcast (0) addresses the whole chain
// where the operation supports it.
package telegram

// Broadcast is the address that targets every node on the chain.
const Broadcast uint16 = 0

// Transport is the telegram-level view of the chain. Calls block for one
// round trip; there are no internal retries or timeouts at this layer.
type Transport interface {
	// ResetInit resets and initialises the whole chain. It reports the
	// address of the last node and whether the chain runs in loop
	// direction (true) or bidirectional (false).
	ResetInit() (last uint16, loop bool, err error)

	// Identify returns the 32-bit identity word of the node at addr.
	Identify(addr uint16) (uint32, error)

	// I2CBridgeEnabled reports whether the node's third channel is
	// configured as an I2C bridge instead of a triplet driver.
	I2CBridgeEnabled(addr uint16) (bool, error)

	// ClearError clears latched fault flags (under-voltage and friends).
	// A node refuses to go active while a fault flag is set.
	ClearError(addr uint16) error

	// SetSetup writes the node's setup flags (CRC checking and defaults).
	SetSetup(addr uint16, flags uint8) error

	// SetCurrentChannel programs the drive current of one channel.
	// The r, g, b arguments are current-tier selectors, not brightness.
	SetCurrentChannel(addr uint16, chn uint8, flags uint8, r, g, b uint8) error

	// GoActive switches nodes to the active state (outputs enabled).
	GoActive(addr uint16) error

	// SetPWM sets the color of a whole node (single-triplet nodes).
	// The flags carry the day/night current selection.
	SetPWM(addr uint16, r, g, b uint16, flags uint8) error

	// SetPWMChannel sets the color of one channel of a multi-channel node.
	SetPWMChannel(addr uint16, chn uint8, r, g, b uint16) error

	// I2CRead reads len(buf) bytes from register raddr of I2C device
	// daddr7 behind the bridge of node addr. len(buf) must not exceed
	// I2CMaxRead.
	I2CRead(addr uint16, daddr7 uint8, raddr uint8, buf []byte) error

	// I2CWrite writes data to register raddr of I2C device daddr7 behind
	// the bridge of node addr. len(data) must be one of I2CWriteSizes.
	I2CWrite(addr uint16, daddr7 uint8, raddr uint8, data []byte) error
}

// Telegram payload limits for the I2C passthrough.
const (
	// I2CMaxRead is the largest read a single passthrough telegram carries.
	I2CMaxRead = 8
)

// I2CWriteSizes lists the payload sizes a passthrough write telegram accepts.
var I2CWriteSizes = [...]int{6, 4, 2, 1}

// Setup register flags.
const (
	SetupCRCEnable   uint8 = 0x20 // verify telegram CRC on reception
	SetupDefaultRGBI uint8 = 0x08 // power-on defaults of a single-triplet node
	SetupDefaultSAID uint8 = 0x09 // power-on defaults of a multi-channel node
)

// Current register flags.
const (
	CurrentDefault uint8 = 0x00
	CurrentDither  uint8 = 0x01 // per-LED dithering of the vacated PWM bit
)

// PWM flags for SetPWM. Single-triplet nodes fold current selection into the
// color telegram: night mode drives the lower current tier.
const (
	PWMNight uint8 = 0x0 // low current; matches the chain-wide calibration
	PWMDay   uint8 = 0x7 // full current
)
