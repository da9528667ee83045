package core

import (
	"errors"
	"testing"
)

func TestProcessInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      ProcessInput
		wantErr bool
	}{
		{"valid", ProcessInput{ID: "P1", ArrivalTime: 0, BurstTime: 3}, false},
		{"negative priority", ProcessInput{ID: "P1", BurstTime: 3, Priority: -4}, false},
		{"missing id", ProcessInput{BurstTime: 3}, true},
		{"negative arrival", ProcessInput{ID: "P1", ArrivalTime: -1, BurstTime: 3}, true},
		{"zero burst", ProcessInput{ID: "P1", BurstTime: 0}, true},
		{"negative burst", ProcessInput{ID: "P1", BurstTime: -2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidProcess) {
					t.Fatalf("expected ErrInvalidProcess, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestNewProcesses(t *testing.T) {
	inputs := []ProcessInput{
		{ID: "P1", ArrivalTime: 2, BurstTime: 4, Priority: 1},
		{ID: "P1", ArrivalTime: 0, BurstTime: 1},
	}

	processes, err := NewProcesses(inputs)
	if err != nil {
		t.Fatalf("NewProcesses failed: %v", err)
	}
	if len(processes) != 2 {
		t.Fatalf("expected 2 processes, got %d", len(processes))
	}
	for i, p := range processes {
		if p.Order() != i {
			t.Fatalf("process %d: expected order %d, got %d", i, i, p.Order())
		}
		if p.State != ProcessStateReady {
			t.Fatalf("process %d: expected Ready, got %v", i, p.State)
		}
		if p.RemainingTime != inputs[i].BurstTime {
			t.Fatalf("process %d: remaining time %d, want %d", i, p.RemainingTime, inputs[i].BurstTime)
		}
	}

	processes[0].BurstTime = 100
	if inputs[0].BurstTime != 4 {
		t.Fatalf("caller input was mutated")
	}
}

func TestNewProcessesRejectsInvalid(t *testing.T) {
	_, err := NewProcesses([]ProcessInput{{ID: "P1", BurstTime: 2}, {ID: "P2", BurstTime: 0}})
	if !errors.Is(err, ErrInvalidProcess) {
		t.Fatalf("expected ErrInvalidProcess, got %v", err)
	}
}

func TestProcessStateString(t *testing.T) {
	if ProcessStateReady.String() != "Ready" || ProcessStateRunning.String() != "Running" || ProcessStateCompleted.String() != "Completed" {
		t.Fatalf("unexpected state names")
	}
	if ProcessState(42).String() != "Unknown" {
		t.Fatalf("expected Unknown for out of range state")
	}
}
