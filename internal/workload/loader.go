package workload

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cpu-scheduler-simulator/internal/core"
)

// LoadCSV reads rows of id,arrival,burst[,priority]. A first row whose first
// column is "id" is treated as a header.
func LoadCSV(r io.Reader) ([]core.ProcessInput, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV: %v", core.ErrInvalidProcess, err)
	}
	if len(rows) > 0 && strings.EqualFold(strings.TrimSpace(rows[0][0]), "id") {
		rows = rows[1:]
	}

	processes := make([]core.ProcessInput, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("%w: row %d has %d columns, want 3 or 4", core.ErrInvalidProcess, i+1, len(row))
		}
		in := core.ProcessInput{ID: strings.TrimSpace(row[0])}
		if in.ArrivalTime, err = parseField(row[1], i, "arrival"); err != nil {
			return nil, err
		}
		if in.BurstTime, err = parseField(row[2], i, "burst"); err != nil {
			return nil, err
		}
		if len(row) == 4 && strings.TrimSpace(row[3]) != "" {
			if in.Priority, err = parseField(row[3], i, "priority"); err != nil {
				return nil, err
			}
		}
		if err := in.Validate(); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		processes = append(processes, in)
	}
	return processes, nil
}

// WriteCSV writes processes in the format LoadCSV reads, header included.
func WriteCSV(w io.Writer, processes []core.ProcessInput) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"id", "arrival", "burst", "priority"}); err != nil {
		return err
	}
	for _, p := range processes {
		record := []string{p.ID, strconv.Itoa(p.ArrivalTime), strconv.Itoa(p.BurstTime), strconv.Itoa(p.Priority)}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func parseField(s string, row int, name string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: row %d: bad %s %q", core.ErrInvalidProcess, row+1, name, s)
	}
	return v, nil
}
