package workload

import (
	"fmt"
	"math/rand"
	"time"

	"cpu-scheduler-simulator/internal/core"
)

// Ranges bounds generated values: arrival in [0, MaxArrival), burst in
// [1, MaxBurst] and priority in [1, MaxPriority].
type Ranges struct {
	MaxArrival  int
	MaxBurst    int
	MaxPriority int
}

func DefaultRanges() Ranges {
	return Ranges{MaxArrival: 10, MaxBurst: 10, MaxPriority: 5}
}

func (r Ranges) Validate() error {
	if r.MaxArrival <= 0 || r.MaxBurst <= 0 || r.MaxPriority <= 0 {
		return fmt.Errorf("%w: workload ranges must be positive, got %+v", core.ErrInvalidParameter, r)
	}
	return nil
}

type Generator struct {
	rng    *rand.Rand
	ranges Ranges
}

// NewGenerator returns a generator whose output depends only on seed and ranges.
func NewGenerator(seed int64, ranges Ranges) (*Generator, error) {
	if err := ranges.Validate(); err != nil {
		return nil, err
	}
	return &Generator{rng: rand.New(rand.NewSource(seed)), ranges: ranges}, nil
}

// Generate returns count processes named P1..Pn.
func (g *Generator) Generate(count int) ([]core.ProcessInput, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: process count must not be negative, got %d", core.ErrInvalidParameter, count)
	}

	processes := make([]core.ProcessInput, 0, count)
	for i := 0; i < count; i++ {
		processes = append(processes, core.ProcessInput{
			ID:          fmt.Sprintf("P%d", i+1),
			ArrivalTime: g.rng.Intn(g.ranges.MaxArrival),
			BurstTime:   g.rng.Intn(g.ranges.MaxBurst) + 1,
			Priority:    g.rng.Intn(g.ranges.MaxPriority) + 1,
		})
	}
	return processes, nil
}

// GenerateWorkload is a one-shot helper. A nil seed picks a time based one.
func GenerateWorkload(count int, seed *int64, ranges Ranges) ([]core.ProcessInput, error) {
	s := time.Now().UnixNano()
	if seed != nil {
		s = *seed
	}
	g, err := NewGenerator(s, ranges)
	if err != nil {
		return nil, err
	}
	return g.Generate(count)
}
