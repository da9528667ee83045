package util

import (
	"testing"

	"cpu-scheduler-simulator/internal/core"
)

func TestAggregateEmpty(t *testing.T) {
	stats := Aggregate(nil)
	if stats.AverageTurnaroundTime != 0 || stats.AverageWaitingTime != 0 || stats.AverageResponseTime != 0 {
		t.Fatalf("expected zero stats for empty input, got %+v", stats)
	}
	stats = Aggregate([]core.Process{})
	if stats != (Stats{}) {
		t.Fatalf("expected zero stats for empty slice, got %+v", stats)
	}
}

func TestAggregate(t *testing.T) {
	processes := []core.Process{
		{TurnaroundTime: 5, WaitingTime: 0, ResponseTime: 0},
		{TurnaroundTime: 7, WaitingTime: 4, ResponseTime: 4},
		{TurnaroundTime: 14, WaitingTime: 6, ResponseTime: 3},
	}

	stats := Aggregate(processes)
	if stats.AverageTurnaroundTime != 26.0/3 {
		t.Fatalf("average turnaround: got %v", stats.AverageTurnaroundTime)
	}
	if stats.AverageWaitingTime != 10.0/3 {
		t.Fatalf("average waiting: got %v", stats.AverageWaitingTime)
	}
	if stats.AverageResponseTime != 7.0/3 {
		t.Fatalf("average response: got %v", stats.AverageResponseTime)
	}
}
