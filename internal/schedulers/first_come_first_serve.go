package schedulers

import (
	"log"

	"cpu-scheduler-simulator/internal/core"
)

func ScheduleFirstComeFirstServe(inputs []core.ProcessInput) (ScheduleResult, error) {
	log.Println("running fcfs algorithm ...")
	return run(PolicyFirstComeFirstServe, inputs, Params{}, firstComeFirstServe)
}

func firstComeFirstServe(cpu *core.CPU, processes []*core.Process, _ Params) error {
	for _, process := range sortByArrival(processes) {
		cpu.IdleUntil(process.ArrivalTime)
		if err := cpu.Execute(process, process.RemainingTime); err != nil {
			return err
		}
	}
	return nil
}
