// Package config loads the TOML configuration of the demo binaries: log
// level, MQTT endpoint, and the layout of the simulated chain.
package config

import (
	"github.com/BurntSushi/toml"
)

// Config is the full configuration file.
type Config struct {
	Logger LogConf
	MQTT   MQTTConf
	Chain  ChainConf
}

// LogConf configures the logger.
type LogConf struct {
	Level string `toml:"log-level"`
}

// MQTTConf configures the MQTT client.
type MQTTConf struct {
	ClientID string `toml:"clientID"`
	Host     string `toml:"server"`
	Port     string `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Qos      byte   `toml:"qos"`
	Prefix   string `toml:"prefix"` // topic prefix, e.g. "ledchain"
}

// ChainConf describes the simulated chain the demo binaries run against.
type ChainConf struct {
	Loop  bool       `toml:"loop"`
	Nodes []NodeConf `toml:"nodes"`

	MaxNodes    int `toml:"max-nodes"`
	MaxTriplets int `toml:"max-triplets"`
	MaxBridges  int `toml:"max-bridges"`
}

// NodeConf is one node on the simulated chain. Kind is "rgbi" or "said";
// Bridge makes a said node expose its I2C bridge, and EEPROM/IOX attach the
// matching peripherals behind it.
type NodeConf struct {
	Kind   string `toml:"kind"`
	Bridge bool   `toml:"bridge"`
	EEPROM bool   `toml:"eeprom"`
	IOX    bool   `toml:"iox"`
}

// New loads a configuration file. Absent keys keep their defaults: info
// logging and a small mixed demo chain.
func New(path string) (*Config, error) {
	cfg := Config{
		Logger: LogConf{Level: "info"},
		MQTT:   MQTTConf{ClientID: "ledchain", Host: "localhost", Port: "1883", Prefix: "ledchain"},
		Chain: ChainConf{
			Nodes: []NodeConf{
				{Kind: "rgbi"},
				{Kind: "said", Bridge: true, EEPROM: true},
				{Kind: "said"},
			},
		},
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return &cfg, err
	}
	return &cfg, nil
}
