package core

import "fmt"

// Segment is one interval [StartTime, EndTime) during which ProcessID held the CPU.
type Segment struct {
	ProcessID string
	StartTime int
	EndTime   int
}

func (s Segment) Duration() int {
	return s.EndTime - s.StartTime
}

// Timeline collects segments in chronological order and refuses overlaps.
// Idle gaps between segments are not recorded.
type Timeline struct {
	segments []Segment
}

func (t *Timeline) Append(processID string, start, duration int) error {
	if duration <= 0 {
		return fmt.Errorf("%w: pid %s has duration %d at t=%d", ErrInvalidSegment, processID, duration, start)
	}
	if n := len(t.segments); n > 0 && start < t.segments[n-1].EndTime {
		return fmt.Errorf("%w: pid %s starts at t=%d before pid %s ends at t=%d",
			ErrInvalidSegment, processID, start, t.segments[n-1].ProcessID, t.segments[n-1].EndTime)
	}
	t.segments = append(t.segments, Segment{ProcessID: processID, StartTime: start, EndTime: start + duration})
	return nil
}

// Segments returns a copy of the recorded segments.
func (t *Timeline) Segments() []Segment {
	out := make([]Segment, len(t.segments))
	copy(out, t.segments)
	return out
}
