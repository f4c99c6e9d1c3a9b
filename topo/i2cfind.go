package topo

import "ledchain-go/errcode"

// I2CFind scans the discovered bridges from upstream (low address) to
// downstream for an I2C device with the 7-bit address daddr7, by issuing a
// one-byte probe read of register 0 on each bridge bus. A nack or timeout
// means "no device on this bridge" and the scan continues; any other
// transport error aborts the scan. Returns the owning node address of the
// first bridge that acknowledged, or errcode.NoI2CDev when none did.
func (t *Topo) I2CFind(daddr7 uint8) (uint16, error) {
	var buf [1]byte
	for bix := uint16(0); bix < t.numBridges; bix++ {
		addr := t.bridgeAddr[bix]
		err := t.tr.I2CRead(addr, daddr7, 0x00, buf[:])
		if err == nil {
			return addr, nil
		}
		if !errcode.IsI2CFail(err) {
			return 0, err
		}
	}
	return 0, errcode.NoI2CDev
}
