package topo

import (
	"errors"
	"testing"

	"ledchain-go/errcode"
	"ledchain-go/sim"
)

func TestI2CFind(t *testing.T) {
	chain := sim.New(false,
		sim.RGBI(),
		sim.SAIDBridge(nil),
		sim.SAIDBridge(map[uint8]sim.Device{0x50: &sim.EEPROM{}}),
	)
	topo := New(chain, Limits{})
	if err := topo.Build(); err != nil {
		t.Fatalf("build failed: %v", err)
	}

	addr, err := topo.I2CFind(0x50)
	if err != nil {
		t.Fatalf("I2CFind(0x50): %v", err)
	}
	if addr != 3 {
		t.Errorf("I2CFind(0x50) = node %d, want 3", addr)
	}

	if _, err := topo.I2CFind(0x13); !errors.Is(err, errcode.NoI2CDev) {
		t.Errorf("I2CFind(0x13) error = %v, want %v", err, errcode.NoI2CDev)
	}
}

func TestI2CFindNoBridges(t *testing.T) {
	chain := sim.New(false, sim.RGBI(), sim.SAID())
	topo := New(chain, Limits{})
	if err := topo.Build(); err != nil {
		t.Fatalf("build failed: %v", err)
	}

	probes := chain.Count("i2cread")
	if _, err := topo.I2CFind(0x50); !errors.Is(err, errcode.NoI2CDev) {
		t.Errorf("I2CFind error = %v, want %v", err, errcode.NoI2CDev)
	}
	if got := chain.Count("i2cread"); got != probes {
		t.Errorf("I2CFind over zero bridges issued %d probes", got-probes)
	}
}
