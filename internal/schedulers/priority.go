package schedulers

import (
	"log"

	"cpu-scheduler-simulator/internal/core"
)

// SchedulePriority is non-preemptive; a lower Priority value runs first.
func SchedulePriority(inputs []core.ProcessInput) (ScheduleResult, error) {
	log.Println("running priority algorithm ...")
	return run(PolicyPriority, inputs, Params{}, priority)
}

func priority(cpu *core.CPU, processes []*core.Process, _ Params) error {
	return scheduleNonPreemptive(cpu, processes, morePriority)
}

func morePriority(a, b *core.Process) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return byArrivalThenOrder(a, b)
}
