package requests

import "cpu-scheduler-simulator/internal/core"

type Process struct {
	ID          string `json:"id"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
	Priority    int    `json:"priority"`
}

// ScheduleRequests is the body of every schedule endpoint. A missing
// TimeQuantum means "use the configured quantum".
type ScheduleRequests struct {
	Processes   []Process `json:"processes"`
	TimeQuantum *int      `json:"time_quantum"`
}

func (r *ScheduleRequests) Inputs() []core.ProcessInput {
	inputs := make([]core.ProcessInput, 0, len(r.Processes))
	for _, p := range r.Processes {
		inputs = append(inputs, core.ProcessInput{
			ID:          p.ID,
			ArrivalTime: p.ArrivalTime,
			BurstTime:   p.BurstTime,
			Priority:    p.Priority,
		})
	}
	return inputs
}

func FromInputs(inputs []core.ProcessInput) []Process {
	processes := make([]Process, 0, len(inputs))
	for _, in := range inputs {
		processes = append(processes, Process{
			ID:          in.ID,
			ArrivalTime: in.ArrivalTime,
			BurstTime:   in.BurstTime,
			Priority:    in.Priority,
		})
	}
	return processes
}
