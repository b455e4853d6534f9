package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunBench(t *testing.T) {
	var sb strings.Builder
	cfg := benchConfig{Size: 64, Ops: 10_000, Keyspace: 128}

	if err := runBench(cfg, &sb); err != nil {
		t.Fatalf("runBench failed: %v", err)
	}

	out := sb.String()
	for _, want := range []string{"ops:", "hits:", "misses:", "hit ratio:", "size:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "size:      64 / 64") {
		t.Errorf("expected a full cache of 64 entries:\n%s", out)
	}
}

func TestRunBench_BadConfig(t *testing.T) {
	var sb strings.Builder
	if err := runBench(benchConfig{Size: 8, Ops: 0, Keyspace: 16}, &sb); err == nil {
		t.Fatal("expected error for zero ops")
	}
}

func TestRunReplay(t *testing.T) {
	trace := "put,a,1\nput,b,2\nput,c,3\nget,a\nput,d,4\n"
	path := filepath.Join(t.TempDir(), "trace.csv")
	if err := os.WriteFile(path, []byte(trace), 0o600); err != nil {
		t.Fatal(err)
	}

	var sb strings.Builder
	if err := runReplay(path, 3, &sb); err != nil {
		t.Fatalf("runReplay failed: %v", err)
	}

	out := sb.String()
	if !strings.Contains(out, "keys:      d > a > c") {
		t.Errorf("unexpected final order:\n%s", out)
	}
	if !strings.Contains(out, "evictions: 1") {
		t.Errorf("expected one eviction:\n%s", out)
	}
}

func TestRunReplay_MissingFile(t *testing.T) {
	var sb strings.Builder
	if err := runReplay(filepath.Join(t.TempDir(), "absent.csv"), 3, &sb); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestPrintVersion(t *testing.T) {
	var sb strings.Builder
	if err := printVersion(&sb); err != nil {
		t.Fatalf("printVersion failed: %v", err)
	}
	if !strings.Contains(sb.String(), "cachectl") {
		t.Errorf("output missing tool name:\n%s", sb.String())
	}
}
