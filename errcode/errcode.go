package errcode

// Code is a stable error identifier for chain and I2C failures.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK Code = "ok"

	// Transport/communication class.
	Timeout    Code = "timeout"     // node did not answer in time
	CRC        Code = "crc"         // response failed its CRC check
	NoAck      Code = "no_ack"      // telegram was not acknowledged
	I2CNack    Code = "i2c_nack"    // I2C device did not acknowledge
	I2CTimeout Code = "i2c_timeout" // I2C transaction timed out

	// Chain/topology class.
	UnknownID        Code = "unknown_id"        // identity is neither RGBI nor SAID
	ChainChanged     Code = "chain_changed"     // scan count disagrees with reported last address
	CapacityExceeded Code = "capacity_exceeded" // node/triplet/bridge arena full
	NoI2CDev         Code = "no_i2c_dev"        // no bridge has the requested device
	NoI2CBridge      Code = "no_i2c_bridge"     // node's third channel is not an I2C bridge

	// Misc.
	CompareFail   Code = "compare_fail" // readback differs from expected data
	Unsupported   Code = "unsupported"
	InvalidParams Code = "invalid_params"

	Error Code = "error" // generic fallback
)

// Optional wrapper when we want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	if e.Msg != "" {
		return string(e.C) + ": " + e.Msg
	}
	return string(e.C)
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}

// IsI2CFail reports whether err is the "no device here" class of I2C probe
// failure (nack or timeout), as opposed to a chain transport error.
func IsI2CFail(err error) bool {
	c := Of(err)
	return c == I2CNack || c == I2CTimeout
}
