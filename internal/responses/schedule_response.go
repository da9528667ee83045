package responses

import (
	"cpu-scheduler-simulator/internal/requests"
	"cpu-scheduler-simulator/internal/schedulers"
)

type ProcessResponse struct {
	ProcessId      string `json:"process_id"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	Priority       int    `json:"priority"`
	State          string `json:"state"`
	CompletionTime int    `json:"completion_time"`
	ResponseTime   int    `json:"response_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	WaitingTime    int    `json:"waiting_time"`
}

type SegmentResponse struct {
	ProcessId string `json:"process_id"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
}

type ScheduleResponse struct {
	RunId                 string            `json:"run_id"`
	Policy                string            `json:"policy"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Details               []ProcessResponse `json:"details"`
	Timeline              []SegmentResponse `json:"timeline"`
}

type CompareResponse struct {
	RunId   string             `json:"run_id"`
	Results []ScheduleResponse `json:"results"`
}

type WorkloadResponse struct {
	Seed      int64              `json:"seed"`
	Processes []requests.Process `json:"processes"`
}

func NewScheduleResponse(runId string, result schedulers.ScheduleResult) ScheduleResponse {
	details := make([]ProcessResponse, 0, len(result.Processes))
	for _, p := range result.Processes {
		details = append(details, ProcessResponse{
			ProcessId:      p.ID,
			ArrivalTime:    p.ArrivalTime,
			BurstTime:      p.BurstTime,
			Priority:       p.Priority,
			State:          p.State.String(),
			CompletionTime: p.CompletionTime,
			ResponseTime:   p.ResponseTime,
			TurnAroundTime: p.TurnaroundTime,
			WaitingTime:    p.WaitingTime,
		})
	}

	timeline := make([]SegmentResponse, 0, len(result.Timeline))
	for _, s := range result.Timeline {
		timeline = append(timeline, SegmentResponse{ProcessId: s.ProcessID, Start: s.StartTime, End: s.EndTime})
	}

	return ScheduleResponse{
		RunId:                 runId,
		Policy:                result.Policy,
		TotalTime:             result.Cpu.TotalTime,
		IdleTime:              result.Cpu.IdleTime,
		AverageWaitingTime:    result.Stats.AverageWaitingTime,
		AverageResponseTime:   result.Stats.AverageResponseTime,
		AverageTurnAroundTime: result.Stats.AverageTurnaroundTime,
		CpuUtilization:        result.Utilization,
		CpuThroughput:         result.Throughput,
		Details:               details,
		Timeline:              timeline,
	}
}

func NewCompareResponse(runId string, results []schedulers.ScheduleResult) CompareResponse {
	out := CompareResponse{RunId: runId, Results: make([]ScheduleResponse, 0, len(results))}
	for _, result := range results {
		out.Results = append(out.Results, NewScheduleResponse(runId, result))
	}
	return out
}
