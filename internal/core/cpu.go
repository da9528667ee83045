package core

import (
	"fmt"
	"log"
)

// CpuMetric summarises a run. TotalTime is UtilizationTime plus IdleTime.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// CPU is a single simulated core driven by a logical clock. Policies decide
// what to run next; the CPU records the resulting timeline and metrics.
type CPU struct {
	clock    int
	timeline Timeline
	metric   CpuMetric
}

// NewCPU returns an idle CPU at t=0.
func NewCPU() *CPU {
	return &CPU{}
}

// Now is the current logical time.
func (c *CPU) Now() int {
	return c.clock
}

// IdleUntil advances the clock to t, counting the gap as idle time.
// It does nothing if t is not in the future.
func (c *CPU) IdleUntil(t int) {
	if t <= c.clock {
		return
	}
	c.metric.IdleTime += t - c.clock
	c.clock = t
}

// Execute runs p for slice time units starting now. When the slice uses up
// the remaining time the process is completed, otherwise it goes back to Ready.
func (c *CPU) Execute(p *Process, slice int) error {
	if p.State == ProcessStateCompleted {
		return fmt.Errorf("%w: pid %s is already completed", ErrInvalidSegment, p.ID)
	}
	if p.ArrivalTime > c.clock {
		return fmt.Errorf("%w: pid %s dispatched at t=%d before arrival t=%d", ErrInvalidSegment, p.ID, c.clock, p.ArrivalTime)
	}
	if slice > p.RemainingTime {
		slice = p.RemainingTime
	}
	if err := c.timeline.Append(p.ID, c.clock, slice); err != nil {
		return err
	}

	p.dispatch(c.clock)
	c.clock += slice
	c.metric.UtilizationTime += slice
	p.RemainingTime -= slice

	if p.RemainingTime == 0 {
		p.complete(c.clock)
		log.Println("pid:", p.ID, "process completed at", p.CompletionTime)
	} else {
		p.State = ProcessStateReady
	}
	return nil
}

func (c *CPU) Metric() CpuMetric {
	m := c.metric
	m.TotalTime = c.clock
	return m
}

func (c *CPU) Timeline() []Segment {
	return c.timeline.Segments()
}
