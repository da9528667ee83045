package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cpu-scheduler-simulator/internal/workload"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRunGeneratedWorkload(t *testing.T) {
	out, err := execute(t, "run", "--count", "4", "--seed", "9")
	if err != nil {
		t.Fatalf("run failed: %v\n%s", err, out)
	}
	for _, title := range []string{"First-come, first-serve", "Shortest-job-first", "Priority", "Round-robin"} {
		if !strings.Contains(out, title) {
			t.Fatalf("output is missing %q:\n%s", title, out)
		}
	}
	if strings.Count(out, "Gantt schedule") != 4 {
		t.Fatalf("expected 4 gantt charts:\n%s", out)
	}
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "procs.csv")
	if err := os.WriteFile(path, []byte("P1,0,5\nP2,1,3\nP3,2,3\n"), 0o600); err != nil {
		t.Fatalf("writing workload: %v", err)
	}

	out, err := execute(t, "run", "--file", path, "--policy", "rr", "--quantum", "2")
	if err != nil {
		t.Fatalf("run failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Round-robin") || strings.Contains(out, "Shortest-job-first") {
		t.Fatalf("expected only the round robin report:\n%s", out)
	}
	if !strings.Contains(out, "|   P1   |   P2   |   P3   |   P1   |") {
		t.Fatalf("unexpected gantt chart:\n%s", out)
	}
}

func TestRunZeroCount(t *testing.T) {
	out, err := execute(t, "run", "--count", "0", "--seed", "1", "--policy", "FCFS")
	if err != nil {
		t.Fatalf("run failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "(empty)") {
		t.Fatalf("expected an empty gantt chart:\n%s", out)
	}
	if !strings.Contains(out, "idle 0 of 0") {
		t.Fatalf("expected an empty schedule:\n%s", out)
	}
}

func TestRunErrors(t *testing.T) {
	if _, err := execute(t, "run", "--count", "2", "--policy", "lottery"); err == nil {
		t.Fatalf("expected error for unknown policy")
	}
	if _, err := execute(t, "run", "--count", "2", "--quantum", "-1", "--policy", "RoundRobin"); err == nil {
		t.Fatalf("expected error for negative quantum")
	}
	if _, err := execute(t, "run", "--count", "2", "--quantum", "0", "--policy", "rr"); err == nil {
		t.Fatalf("expected error for explicit zero quantum")
	}
	_, err := execute(t, "run", "--file", filepath.Join(t.TempDir(), "missing.csv"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist for missing file, got %v", err)
	}
}

func TestGenerateLoadsBack(t *testing.T) {
	out, err := execute(t, "generate", "--count", "6", "--seed", "21")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if !strings.HasPrefix(out, "# seed 21\n") {
		t.Fatalf("expected seed comment, got:\n%s", out)
	}

	processes, err := workload.LoadCSV(strings.NewReader(out))
	if err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}
	seed := int64(21)
	want, err := workload.GenerateWorkload(6, &seed, workload.DefaultRanges())
	if err != nil {
		t.Fatalf("GenerateWorkload failed: %v", err)
	}
	if len(processes) != len(want) {
		t.Fatalf("expected %d processes, got %d", len(want), len(processes))
	}
	for i := range want {
		if processes[i] != want[i] {
			t.Fatalf("process %d: got %+v, want %+v", i, processes[i], want[i])
		}
	}
}
