package schedulers

import (
	"fmt"
	"sort"
	"strings"

	"cpu-scheduler-simulator/internal/core"
)

const (
	PolicyFirstComeFirstServe = "FCFS"
	PolicyShortestJobFirst    = "SJF"
	PolicyPriority            = "Priority"
	PolicyRoundRobin          = "RoundRobin"
)

// Policies lists every supported policy in comparison order.
var Policies = []string{
	PolicyFirstComeFirstServe,
	PolicyShortestJobFirst,
	PolicyPriority,
	PolicyRoundRobin,
}

// Params carries policy parameters. TimeQuantum is only read by round robin.
type Params struct {
	TimeQuantum int
}

type policyFunc func(cpu *core.CPU, processes []*core.Process, params Params) error

// ParsePolicy maps a user supplied name to a policy constant. Matching is case
// insensitive and accepts "rr" for round robin.
func ParsePolicy(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fcfs":
		return PolicyFirstComeFirstServe, nil
	case "sjf":
		return PolicyShortestJobFirst, nil
	case "priority":
		return PolicyPriority, nil
	case "roundrobin", "rr":
		return PolicyRoundRobin, nil
	}
	return "", fmt.Errorf("%w: unknown policy %q", core.ErrInvalidParameter, name)
}

// Schedule runs the named policy over a private copy of inputs.
func Schedule(policyName string, inputs []core.ProcessInput, params Params) (ScheduleResult, error) {
	policy, err := ParsePolicy(policyName)
	if err != nil {
		return ScheduleResult{}, err
	}

	switch policy {
	case PolicyFirstComeFirstServe:
		return ScheduleFirstComeFirstServe(inputs)
	case PolicyShortestJobFirst:
		return ScheduleShortestJobFirst(inputs)
	case PolicyPriority:
		return SchedulePriority(inputs)
	default:
		return ScheduleRoundRobin(inputs, params.TimeQuantum)
	}
}

// ScheduleAll runs every policy on the same workload, in Policies order.
func ScheduleAll(inputs []core.ProcessInput, params Params) ([]ScheduleResult, error) {
	results := make([]ScheduleResult, 0, len(Policies))
	for _, policy := range Policies {
		result, err := Schedule(policy, inputs, params)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func run(policy string, inputs []core.ProcessInput, params Params, schedule policyFunc) (ScheduleResult, error) {
	processes, err := core.NewProcesses(inputs)
	if err != nil {
		return ScheduleResult{}, err
	}

	cpu := core.NewCPU()
	if err := schedule(cpu, processes, params); err != nil {
		return ScheduleResult{}, fmt.Errorf("%s: %w", policy, err)
	}
	return generateResult(policy, processes, cpu), nil
}

// sortByArrival returns processes ordered by arrival time, keeping input
// order among equal arrivals. The argument is left untouched.
func sortByArrival(processes []*core.Process) []*core.Process {
	sorted := make([]*core.Process, len(processes))
	copy(sorted, processes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ArrivalTime < sorted[j].ArrivalTime
	})
	return sorted
}
