package sim

import (
	"fmt"

	"ledchain-go/config"
)

// Device addresses FromConfig wires peripherals to, matching the demo board
// wiring (EEPROM stick, I/O expander).
const (
	eepromAddr = 0x50
	ioxAddr    = 0x20
)

// FromConfig builds a simulated chain from a demo configuration.
func FromConfig(cfg config.ChainConf) (*Chain, error) {
	nodes := make([]*Node, 0, len(cfg.Nodes))
	for i, nc := range cfg.Nodes {
		switch nc.Kind {
		case "rgbi":
			if nc.Bridge || nc.EEPROM || nc.IOX {
				return nil, fmt.Errorf("chain node %d: rgbi nodes carry no bridge", i+1)
			}
			nodes = append(nodes, RGBI())
		case "said":
			if !nc.Bridge {
				if nc.EEPROM || nc.IOX {
					return nil, fmt.Errorf("chain node %d: peripherals need bridge = true", i+1)
				}
				nodes = append(nodes, SAID())
				continue
			}
			devices := map[uint8]Device{}
			if nc.EEPROM {
				devices[eepromAddr] = &EEPROM{}
			}
			if nc.IOX {
				devices[ioxAddr] = NewIOX()
			}
			nodes = append(nodes, SAIDBridge(devices))
		default:
			return nil, fmt.Errorf("chain node %d: unknown kind %q", i+1, nc.Kind)
		}
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("chain: no nodes configured")
	}
	return New(cfg.Loop, nodes...), nil
}
