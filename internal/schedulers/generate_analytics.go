package schedulers

import (
	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/util"
)

// ScheduleResult is the outcome of one policy run. Processes are in input
// order; Timeline is chronological.
type ScheduleResult struct {
	Policy      string
	Processes   []core.Process
	Timeline    []core.Segment
	Stats       util.Stats
	Cpu         core.CpuMetric
	Utilization float64
	Throughput  float64
}

func generateResult(policy string, processes []*core.Process, cpu *core.CPU) ScheduleResult {
	completed := make([]core.Process, len(processes))
	for i, process := range processes {
		completed[i] = *process
	}

	metric := cpu.Metric()
	result := ScheduleResult{
		Policy:    policy,
		Processes: completed,
		Timeline:  cpu.Timeline(),
		Stats:     util.Aggregate(completed),
		Cpu:       metric,
	}
	if metric.TotalTime > 0 {
		result.Utilization = float64(metric.UtilizationTime) / float64(metric.TotalTime)
		result.Throughput = float64(len(completed)) / float64(metric.TotalTime)
	}
	return result
}
