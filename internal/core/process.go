package core

import "fmt"

type ProcessState int

const (
	ProcessStateReady ProcessState = iota
	ProcessStateRunning
	ProcessStateCompleted
)

func (s ProcessState) String() string {
	switch s {
	case ProcessStateReady:
		return "Ready"
	case ProcessStateRunning:
		return "Running"
	case ProcessStateCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// ProcessInput is the caller supplied description of a process.
// Lower Priority values are more urgent.
type ProcessInput struct {
	ID          string
	ArrivalTime int
	BurstTime   int
	Priority    int
}

func (in ProcessInput) Validate() error {
	if in.ID == "" {
		return fmt.Errorf("%w: missing process id", ErrInvalidProcess)
	}
	if in.ArrivalTime < 0 {
		return fmt.Errorf("%w: pid %s has negative arrival time %d", ErrInvalidProcess, in.ID, in.ArrivalTime)
	}
	if in.BurstTime <= 0 {
		return fmt.Errorf("%w: pid %s has non-positive burst time %d", ErrInvalidProcess, in.ID, in.BurstTime)
	}
	return nil
}

// Process is a ProcessInput plus the bookkeeping a single scheduling run
// fills in. Derived times are only meaningful once State is Completed.
type Process struct {
	ProcessInput

	RemainingTime  int
	State          ProcessState
	StartTime      int
	CompletionTime int
	TurnaroundTime int
	WaitingTime    int
	ResponseTime   int

	started bool
	order   int
}

// Order is the position of the process in the input list. Policies use it as
// the final tie-break.
func (p *Process) Order() int {
	return p.order
}

func NewProcess(in ProcessInput, order int) (*Process, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return &Process{
		ProcessInput:  in,
		RemainingTime: in.BurstTime,
		State:         ProcessStateReady,
		order:         order,
	}, nil
}

// NewProcesses validates inputs and returns fresh processes in input order.
// The inputs slice is only read.
func NewProcesses(inputs []ProcessInput) ([]*Process, error) {
	processes := make([]*Process, 0, len(inputs))
	for i, in := range inputs {
		p, err := NewProcess(in, i)
		if err != nil {
			return nil, err
		}
		processes = append(processes, p)
	}
	return processes, nil
}

func (p *Process) dispatch(now int) {
	if !p.started {
		p.started = true
		p.StartTime = now
		p.ResponseTime = now - p.ArrivalTime
	}
	p.State = ProcessStateRunning
}

func (p *Process) complete(now int) {
	p.State = ProcessStateCompleted
	p.CompletionTime = now
	p.TurnaroundTime = p.CompletionTime - p.ArrivalTime
	p.WaitingTime = p.TurnaroundTime - p.BurstTime
}
