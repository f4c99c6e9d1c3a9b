// Command ledchain2mqtt exposes a chain over an MQTT broker: triplet and
// dim set topics in, retained topology summary out. It runs against the
// simulated chain; swapping in a real transport is a one-line change where
// the Topo is constructed.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ledchain-go/config"
	"ledchain-go/logger"
	"ledchain-go/mqttbridge"
	"ledchain-go/sim"
	"ledchain-go/topo"
)

var configFile string

func init() {
	flag.StringVar(&configFile, "config", "configs/ledchain2mqtt.toml", "Path to configuration file")
}

func main() {
	flag.Parse()

	cfg, err := config.New(configFile)
	if err != nil {
		fmt.Printf("configuration file %s not loaded, using defaults: %v\n", configFile, err)
	}

	log, err := logger.New(cfg.Logger)
	if err != nil {
		fmt.Printf("failed to create a logger: %v\n", err)
		os.Exit(1)
	}

	chain, err := sim.FromConfig(cfg.Chain)
	if err != nil {
		log.Errorf("bad chain configuration: %v", err)
		os.Exit(1)
	}

	t := topo.New(chain, topo.Limits{
		MaxNodes:    cfg.Chain.MaxNodes,
		MaxTriplets: cfg.Chain.MaxTriplets,
		MaxBridges:  cfg.Chain.MaxBridges,
	})

	bridge := mqttbridge.New(log, cfg.MQTT, t)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer cancel()

	if err := bridge.Start(ctx); err != nil {
		log.Errorf("failed to start MQTT service: %v", err)
		os.Exit(1)
	}

	if err := bridge.Build(); err != nil {
		log.Errorf("initial build failed: %v", err)
	}

	<-ctx.Done()
	bridge.Stop()
	log.Info("shutdown complete")
}
