// Command ledchainsim runs the chain console against a simulated chain. The
// chain layout comes from a TOML configuration file; the console reads
// commands from stdin.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"ledchain-go/config"
	"ledchain-go/console"
	"ledchain-go/logger"
	"ledchain-go/sim"
	"ledchain-go/topo"
)

var configFile string

func init() {
	flag.StringVar(&configFile, "config", "configs/ledchainsim.toml", "Path to configuration file")
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

	// Step the builder by hand once, the way a cooperative host loop would;
	// later rebuilds go through the console's blocking "topo build".
	t.BuildStart()
	steps := 0
	for !t.BuildDone() {
		if err := t.BuildStep(); err != nil {
			log.Errorf("build failed after %d steps: %v", steps, err)
			os.Exit(1)
		}
		steps++
	}
	log.With(logger.Fields{"module": "topo"}).
		Infof("built %d nodes, %d triplets, %d bridges in %d steps",
			t.NumNodes(), t.NumTriplets(), t.NumBridges(), steps)

	c := console.New(t, os.Stdout)
	in := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for in.Scan() {
		if err := c.Exec(in.Text()); err != nil {
			fmt.Printf("ERROR: %v\n", err)
		}
		fmt.Print("> ")
	}
	fmt.Println()
}
