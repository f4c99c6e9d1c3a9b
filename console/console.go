// Package console binds the chain operations to a tiny textual command
// interpreter, for driving a chain interactively from a serial port, stdin
// or a network shell. Output goes to an io.Writer; every command returns an
// error for the host to render, so the interpreter itself stays silent on
// failure.
//
// Command words match on unique prefixes: "t b" runs "topo build" as long
// as no other command starts with "t".
package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/shlex"

	"ledchain-go/errcode"
	"ledchain-go/painter"
	"ledchain-go/topo"
	"ledchain-go/tscript"
)

// Console interprets command lines against one chain.
type Console struct {
	t *topo.Topo
	w io.Writer

	player     *tscript.Player
	scriptName string
}

// New returns a console for chain t writing its output to w.
func New(t *topo.Topo, w io.Writer) *Console {
	return &Console{t: t, w: w}
}

type command struct {
	name string
	help string
	run  func(c *Console, args []string) error
}

var commands []command

func init() {
	commands = []command{
		{"topo", "topo build|enum|dim [level]|pwm <tix> <r> <g> <b>|<color>", cmdTopo},
		{"flag", "flag list|<name>", cmdFlag},
		{"script", "script <name>|frame [count]", cmdScript},
		{"i2c", "i2c find <daddr7>", cmdI2C},
		{"help", "help", cmdHelp},
	}
}

// Exec parses and runs one command line. An empty line is a no-op. The
// returned error covers parse problems and failures of the operation the
// command invoked.
func (c *Console) Exec(line string) error {
	args, err := shlex.Split(line)
	if err != nil {
		return &errcode.E{C: errcode.InvalidParams, Op: "console", Err: err}
	}
	if len(args) == 0 {
		return nil
	}
	var hit *command
	for i := range commands {
		if !strings.HasPrefix(commands[i].name, args[0]) {
			continue
		}
		if hit != nil {
			return fmt.Errorf("ambiguous command %q", args[0])
		}
		hit = &commands[i]
	}
	if hit == nil {
		return fmt.Errorf("unknown command %q (try help)", args[0])
	}
	return hit.run(c, args[1:])
}

// pick resolves a unique prefix against a word list; empty input or an
// ambiguous or unknown prefix is an error.
func pick(tok string, words []string) (int, error) {
	if tok == "" {
		return 0, fmt.Errorf("missing subcommand")
	}
	hit := -1
	for i, w := range words {
		if !strings.HasPrefix(w, tok) {
			continue
		}
		if hit >= 0 {
			return 0, fmt.Errorf("ambiguous %q", tok)
		}
		hit = i
	}
	if hit < 0 {
		return 0, fmt.Errorf("unknown %q", tok)
	}
	return hit, nil
}

func parseUint(tok string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(tok, 0, bits)
	if err != nil {
		return 0, fmt.Errorf("bad number %q", tok)
	}
	return v, nil
}

func cmdTopo(c *Console, args []string) error {
	if len(args) == 0 {
		c.t.DumpSummary(c.w)
		return nil
	}
	sub, err := pick(args[0], []string{"build", "enum", "dim", "pwm"})
	if err != nil {
		return err
	}
	switch sub {
	case 0: // build
		if err := c.t.Build(); err != nil {
			return err
		}
		c.t.DumpSummary(c.w)
		return nil
	case 1: // enum
		c.t.DumpNodes(c.w)
		c.t.DumpTriplets(c.w)
		c.t.DumpBridges(c.w)
		return nil
	case 2: // dim
		if len(args) == 1 {
			fmt.Fprintf(c.w, "dim %d/1024\n", c.t.Dim())
			return nil
		}
		level, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("bad dim level %q", args[1])
		}
		c.t.SetDim(level)
		fmt.Fprintf(c.w, "dim %d/1024\n", c.t.Dim())
		return nil
	case 3: // pwm
		return cmdTopoPWM(c, args[1:])
	}
	return nil
}

func cmdTopoPWM(c *Console, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: topo pwm <tix> <r> <g> <b> | <color>")
	}
	tix, err := parseUint(args[0], 16)
	if err != nil {
		return err
	}
	if uint16(tix) >= c.t.NumTriplets() {
		return fmt.Errorf("triplet %d out of range 0..%d", tix, int(c.t.NumTriplets())-1)
	}
	var rgb topo.RGB
	if len(args) == 2 {
		named, ok := topo.ColorByName(args[1])
		if !ok {
			return fmt.Errorf("unknown color %q", args[1])
		}
		rgb = named
	} else if len(args) == 4 {
		var v [3]uint64
		for i := 0; i < 3; i++ {
			if v[i], err = parseUint(args[1+i], 16); err != nil {
				return err
			}
			if v[i] > topo.BrightnessMax {
				return fmt.Errorf("value %q exceeds %d", args[1+i], topo.BrightnessMax)
			}
		}
		rgb = topo.RGB{R: uint16(v[0]), G: uint16(v[1]), B: uint16(v[2])}
	} else {
		return fmt.Errorf("usage: topo pwm <tix> <r> <g> <b> | <color>")
	}
	return c.t.SetTriplet(uint16(tix), rgb)
}

func cmdFlag(c *Console, args []string) error {
	if len(args) == 0 || args[0] == "list" {
		for f := 0; f < painter.Count(); f++ {
			fmt.Fprintln(c.w, painter.Flag(f).Name())
		}
		return nil
	}
	names := make([]string, painter.Count())
	for f := range names {
		names[f] = painter.Flag(f).Name()
	}
	hit, err := pick(args[0], names)
	if err != nil {
		return err
	}
	if err := painter.Paint(c.t, painter.Flag(hit)); err != nil {
		return err
	}
	fmt.Fprintf(c.w, "painted %s\n", names[hit])
	return nil
}

var stockScripts = []struct {
	name  string
	insts []uint16
}{
	{"rainbow", tscript.Rainbow},
	{"bouncingblock", tscript.BouncingBlock},
	{"colormix", tscript.ColorMix},
	{"heartbeat", tscript.Heartbeat},
}

func cmdScript(c *Console, args []string) error {
	if len(args) == 0 {
		if c.player == nil {
			fmt.Fprintln(c.w, "no script installed")
			return nil
		}
		fmt.Fprintf(c.w, "script %s at instruction %d\n", c.scriptName, c.player.Get().Cursor)
		return nil
	}
	names := make([]string, len(stockScripts)+1)
	for i, s := range stockScripts {
		names[i] = s.name
	}
	names[len(stockScripts)] = "frame"
	hit, err := pick(args[0], names)
	if err != nil {
		return err
	}
	if hit < len(stockScripts) {
		c.player = tscript.New(stockScripts[hit].insts, c.t.NumTriplets(), c.t)
		c.scriptName = stockScripts[hit].name
		fmt.Fprintf(c.w, "installed %s\n", c.scriptName)
		return nil
	}
	// frame
	if c.player == nil {
		return fmt.Errorf("no script installed")
	}
	count := 1
	if len(args) > 1 {
		if count, err = strconv.Atoi(args[1]); err != nil || count < 1 {
			return fmt.Errorf("bad frame count %q", args[1])
		}
	}
	for i := 0; i < count; i++ {
		if err := c.player.PlayFrame(); err != nil {
			return err
		}
	}
	return nil
}

func cmdI2C(c *Console, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: i2c find <daddr7>")
	}
	if _, err := pick(args[0], []string{"find"}); err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("usage: i2c find <daddr7>")
	}
	daddr, err := parseUint(args[1], 7)
	if err != nil {
		return err
	}
	addr, err := c.t.I2CFind(uint8(daddr))
	if err != nil {
		return err
	}
	fmt.Fprintf(c.w, "device %02X behind bridge of node %03X\n", daddr, addr)
	return nil
}

func cmdHelp(c *Console, args []string) error {
	for _, cmd := range commands {
		fmt.Fprintln(c.w, cmd.help)
	}
	return nil
}
