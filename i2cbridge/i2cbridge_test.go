package i2cbridge

import (
	"bytes"
	"errors"
	"testing"

	"ledchain-go/errcode"
	"ledchain-go/sim"
	"ledchain-go/topo"
)

func bridgedEEPROM(t *testing.T) (*sim.Chain, *sim.EEPROM, *Bus) {
	t.Helper()
	eeprom := &sim.EEPROM{}
	chain := sim.New(false,
		sim.RGBI(),
		sim.SAIDBridge(map[uint8]sim.Device{0x50: eeprom}),
	)
	tp := topo.New(chain, topo.Limits{})
	if err := tp.Build(); err != nil {
		t.Fatalf("build failed: %v", err)
	}
	return chain, eeprom, ForBridge(tp, 0)
}

func TestTxRead(t *testing.T) {
	chain, eeprom, bus := bridgedEEPROM(t)
	for i := range eeprom.Mem {
		eeprom.Mem[i] = byte(i)
	}

	// 20 bytes from register 5 takes three passthrough telegrams (8+8+4)
	// with the register address advanced between them
	before := chain.Count("i2cread")
	buf := make([]byte, 20)
	if err := bus.Tx(0x50, []byte{5}, buf); err != nil {
		t.Fatalf("Tx read: %v", err)
	}
	for i := range buf {
		if buf[i] != byte(5+i) {
			t.Fatalf("buf[%d] = %d, want %d", i, buf[i], 5+i)
		}
	}
	if got := chain.Count("i2cread") - before; got != 3 {
		t.Errorf("read took %d telegrams, want 3", got)
	}

	var raddrs []uint8
	for _, call := range chain.Calls {
		if call.Op == "i2cread" {
			raddrs = append(raddrs, call.Flags)
		}
	}
	want := []uint8{5, 13, 21}
	for i := range want {
		if raddrs[i] != want[i] {
			t.Errorf("telegram %d register = %d, want %d", i, raddrs[i], want[i])
		}
	}
}

func TestTxWrite(t *testing.T) {
	chain, eeprom, bus := bridgedEEPROM(t)

	// 13 data bytes split into telegram payloads of 6, 6 and 1
	data := make([]byte, 13)
	for i := range data {
		data[i] = byte(0x80 + i)
	}
	if err := bus.Tx(0x50, append([]byte{10}, data...), nil); err != nil {
		t.Fatalf("Tx write: %v", err)
	}
	if !bytes.Equal(eeprom.Mem[10:23], data) {
		t.Errorf("memory = % X, want % X", eeprom.Mem[10:23], data)
	}
	if got := chain.Count("i2cwrite"); got != 3 {
		t.Errorf("write took %d telegrams, want 3", got)
	}
}

func TestTxRequiresRegister(t *testing.T) {
	_, _, bus := bridgedEEPROM(t)

	var buf [1]byte
	if err := bus.Tx(0x50, nil, buf[:]); !errors.Is(err, errcode.Unsupported) {
		t.Errorf("current-address read error = %v, want %v", err, errcode.Unsupported)
	}
	if err := bus.Tx(0x50, []byte{0, 1}, buf[:]); !errors.Is(err, errcode.Unsupported) {
		t.Errorf("write+read error = %v, want %v", err, errcode.Unsupported)
	}
	if err := bus.Tx(0x50, []byte{0}, nil); !errors.Is(err, errcode.Unsupported) {
		t.Errorf("bare register write error = %v, want %v", err, errcode.Unsupported)
	}
}

func TestTxAbsentDevice(t *testing.T) {
	_, _, bus := bridgedEEPROM(t)

	var buf [1]byte
	if err := bus.Tx(0x23, []byte{0}, buf[:]); !errors.Is(err, errcode.I2CNack) {
		t.Errorf("absent device error = %v, want %v", err, errcode.I2CNack)
	}
}

func TestNodeAddr(t *testing.T) {
	_, _, bus := bridgedEEPROM(t)
	if got := bus.NodeAddr(); got != 2 {
		t.Errorf("NodeAddr = %d, want 2", got)
	}
}
