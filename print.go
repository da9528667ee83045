package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/schedulers"
)

var policyTitles = map[string]string{
	schedulers.PolicyFirstComeFirstServe: "First-come, first-serve",
	schedulers.PolicyShortestJobFirst:    "Shortest-job-first",
	schedulers.PolicyPriority:            "Priority",
	schedulers.PolicyRoundRobin:          "Round-robin",
}

func printResult(w io.Writer, result schedulers.ScheduleResult) {
	title, ok := policyTitles[result.Policy]
	if !ok {
		title = result.Policy
	}
	outputTitle(w, title)
	outputGantt(w, result.Timeline)
	outputSchedule(w, result)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// outputGantt prints one cell per segment. Idle gaps get their own "-" cell.
func outputGantt(w io.Writer, timeline []core.Segment) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(timeline) == 0 {
		_, _ = fmt.Fprintf(w, "(empty)\n\n")
		return
	}

	type cell struct {
		label string
		start int
	}
	cells := make([]cell, 0, len(timeline))
	end := 0
	for _, seg := range timeline {
		if seg.StartTime > end {
			cells = append(cells, cell{label: "-", start: end})
		}
		cells = append(cells, cell{label: seg.ProcessID, start: seg.StartTime})
		end = seg.EndTime
	}

	_, _ = fmt.Fprint(w, "|")
	for _, c := range cells {
		padding := strings.Repeat(" ", max(0, (8-len(c.label))/2))
		_, _ = fmt.Fprint(w, padding, c.label, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for _, c := range cells {
		_, _ = fmt.Fprint(w, c.start, "\t")
	}
	_, _ = fmt.Fprint(w, end)
	_, _ = fmt.Fprintf(w, "\n\n")
}

func outputSchedule(w io.Writer, result schedulers.ScheduleResult) {
	rows := make([][]string, 0, len(result.Processes))
	for _, p := range result.Processes {
		rows = append(rows, []string{
			p.ID,
			fmt.Sprint(p.Priority),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.ResponseTime),
			fmt.Sprint(p.WaitingTime),
			fmt.Sprint(p.TurnaroundTime),
			fmt.Sprint(p.CompletionTime),
		})
	}

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Response", "Wait", "Turnaround", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", result.Stats.AverageResponseTime),
		fmt.Sprintf("Average\n%.2f", result.Stats.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", result.Stats.AverageTurnaroundTime),
		fmt.Sprintf("Throughput\n%.2f/t", result.Throughput)})
	table.Render()
	_, _ = fmt.Fprintf(w, "CPU utilization %.2f%% (idle %d of %d)\n\n", result.Utilization*100, result.Cpu.IdleTime, result.Cpu.TotalTime)
}
