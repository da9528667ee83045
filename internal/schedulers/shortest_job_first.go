package schedulers

import (
	"log"

	"cpu-scheduler-simulator/internal/core"
)

func ScheduleShortestJobFirst(inputs []core.ProcessInput) (ScheduleResult, error) {
	log.Println("running sjf algorithm ...")
	return run(PolicyShortestJobFirst, inputs, Params{}, shortestJobFirst)
}

func shortestJobFirst(cpu *core.CPU, processes []*core.Process, _ Params) error {
	return scheduleNonPreemptive(cpu, processes, shorterJob)
}

func shorterJob(a, b *core.Process) bool {
	if a.BurstTime != b.BurstTime {
		return a.BurstTime < b.BurstTime
	}
	return byArrivalThenOrder(a, b)
}
