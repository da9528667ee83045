package util

import "cpu-scheduler-simulator/internal/core"

type Stats struct {
	AverageTurnaroundTime float64
	AverageWaitingTime    float64
	AverageResponseTime   float64
}

// Aggregate returns the mean turnaround, waiting and response times of
// completed processes. An empty list yields zero for every field.
func Aggregate(processes []core.Process) Stats {
	if len(processes) == 0 {
		return Stats{}
	}

	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64

	for _, process := range processes {
		waitingTimeSum += float64(process.WaitingTime)
		responseTimeSum += float64(process.ResponseTime)
		turnAroundTimeSum += float64(process.TurnaroundTime)
	}

	processCount := float64(len(processes))

	return Stats{
		AverageTurnaroundTime: turnAroundTimeSum / processCount,
		AverageWaitingTime:    waitingTimeSum / processCount,
		AverageResponseTime:   responseTimeSum / processCount,
	}
}
