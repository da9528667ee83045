package schedulers

import (
	"fmt"
	"log"

	"cpu-scheduler-simulator/internal/core"
)

func ScheduleRoundRobin(inputs []core.ProcessInput, timeQuantum int) (ScheduleResult, error) {
	log.Println("running roundRobin algorithm with timeQuantum =", timeQuantum)
	if timeQuantum <= 0 {
		return ScheduleResult{}, fmt.Errorf("%w: time quantum must be positive, got %d", core.ErrInvalidParameter, timeQuantum)
	}
	return run(PolicyRoundRobin, inputs, Params{TimeQuantum: timeQuantum}, roundRobin)
}

// roundRobin keeps a FIFO ready queue. Processes that arrive during a slice
// join the queue before the preempted process is put back.
func roundRobin(cpu *core.CPU, processes []*core.Process, params Params) error {
	arrivals := sortByArrival(processes)
	queue := make([]*core.Process, 0, len(processes))

	next := 0
	admit := func() {
		for next < len(arrivals) && arrivals[next].ArrivalTime <= cpu.Now() {
			queue = append(queue, arrivals[next])
			next++
		}
	}

	admit()
	for len(queue) > 0 || next < len(arrivals) {
		if len(queue) == 0 {
			cpu.IdleUntil(arrivals[next].ArrivalTime)
			admit()
			continue
		}

		process := queue[0]
		queue = queue[1:]
		if err := cpu.Execute(process, params.TimeQuantum); err != nil {
			return err
		}

		admit()
		if process.RemainingTime > 0 {
			log.Println("pid:", process.ID, "context switch detected. send process to back of ready queue")
			queue = append(queue, process)
		}
	}
	return nil
}
