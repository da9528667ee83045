package schedulers

import (
	"container/heap"

	"cpu-scheduler-simulator/internal/core"
)

// readyQueue is a min-heap of arrived processes ordered by less.
type readyQueue struct {
	items []*core.Process
	less  func(a, b *core.Process) bool
}

func (q *readyQueue) Len() int { return len(q.items) }

func (q *readyQueue) Less(i, j int) bool { return q.less(q.items[i], q.items[j]) }

func (q *readyQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *readyQueue) Push(x any) {
	q.items = append(q.items, x.(*core.Process))
}

func (q *readyQueue) Pop() any {
	old := q.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	q.items = old[:n-1]
	return item
}

// scheduleNonPreemptive runs the most urgent arrived process to completion,
// re-evaluating the ready set after every completion. When nothing has
// arrived the CPU idles until the next arrival.
func scheduleNonPreemptive(cpu *core.CPU, processes []*core.Process, less func(a, b *core.Process) bool) error {
	arrivals := sortByArrival(processes)
	ready := &readyQueue{less: less}

	next := 0
	for next < len(arrivals) || ready.Len() > 0 {
		for next < len(arrivals) && arrivals[next].ArrivalTime <= cpu.Now() {
			heap.Push(ready, arrivals[next])
			next++
		}
		if ready.Len() == 0 {
			cpu.IdleUntil(arrivals[next].ArrivalTime)
			continue
		}

		process := heap.Pop(ready).(*core.Process)
		if err := cpu.Execute(process, process.RemainingTime); err != nil {
			return err
		}
	}
	return nil
}

// byArrivalThenOrder is the shared tie-break once the policy key is equal.
func byArrivalThenOrder(a, b *core.Process) bool {
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.Order() < b.Order()
}
