package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.toml")
	body := `
[logger]
log-level = "debug"

[mqtt]
server = "broker.local"
prefix = "lab"

[chain]
loop = true
max-nodes = 10

[[chain.nodes]]
kind = "said"
bridge = true
iox = true
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if cfg.Logger.Level != "debug" {
		t.Errorf("log level = %q", cfg.Logger.Level)
	}
	if cfg.MQTT.Host != "broker.local" || cfg.MQTT.Prefix != "lab" {
		t.Errorf("mqtt = %+v", cfg.MQTT)
	}
	// defaults survive for keys the file does not set
	if cfg.MQTT.Port != "1883" {
		t.Errorf("port = %q, want default 1883", cfg.MQTT.Port)
	}
	if !cfg.Chain.Loop || cfg.Chain.MaxNodes != 10 {
		t.Errorf("chain = %+v", cfg.Chain)
	}
	if len(cfg.Chain.Nodes) != 1 || cfg.Chain.Nodes[0].Kind != "said" || !cfg.Chain.Nodes[0].IOX {
		t.Errorf("nodes = %+v", cfg.Chain.Nodes)
	}
}

func TestNewMissingFileKeepsDefaults(t *testing.T) {
	cfg, err := New(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Error("missing file reported no error")
	}
	if cfg.Logger.Level != "info" {
		t.Errorf("default log level = %q", cfg.Logger.Level)
	}
	if len(cfg.Chain.Nodes) == 0 {
		t.Error("default chain is empty")
	}
}
