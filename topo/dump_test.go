package topo

import (
	"bytes"
	"strings"
	"testing"
)

func TestDumpSummary(t *testing.T) {
	_, topo := builtMixed(t)

	var buf bytes.Buffer
	topo.DumpSummary(&buf)
	want := "nodes(N) 1..4, triplets(T) 0..6, i2cbridges(I) 0..0, dir loop\n"
	if got := buf.String(); got != want {
		t.Errorf("summary = %q, want %q", got, want)
	}
}

func TestDumpNodes(t *testing.T) {
	_, topo := builtMixed(t)

	var buf bytes.Buffer
	topo.DumpNodes(&buf)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("dump has %d lines, want 4", len(lines))
	}
	// the bridge SAID at node 2 drives triplets 1,2 and owns bridge 0
	if !strings.HasPrefix(lines[1], "N002 ") ||
		!strings.HasSuffix(lines[1], " T1 T2 I0") {
		t.Errorf("node 2 line = %q", lines[1])
	}
}
