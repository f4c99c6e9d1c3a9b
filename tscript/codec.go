package tscript

import (
	"encoding/binary"

	"ledchain-go/errcode"
)

// Encode serializes a script to the byte layout used on the board EEPROMs:
// two little-endian bytes per instruction.
func Encode(script []uint16) []byte {
	buf := make([]byte, 2*len(script))
	for i, code := range script {
		binary.LittleEndian.PutUint16(buf[2*i:], code)
	}
	return buf
}

// Decode parses an EEPROM image back into a script. The image is cut off at
// the first end-of-script marker; an image without one, or with an odd
// length, yields errcode.InvalidParams.
func Decode(img []byte) ([]uint16, error) {
	if len(img)%2 != 0 {
		return nil, errcode.InvalidParams
	}
	script := make([]uint16, 0, len(img)/2)
	for i := 0; i < len(img); i += 2 {
		code := binary.LittleEndian.Uint16(img[i:])
		script = append(script, code)
		if code>>12&7 > code>>9&7 {
			return script, nil
		}
	}
	return nil, errcode.InvalidParams
}
