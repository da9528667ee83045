package workload

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"cpu-scheduler-simulator/internal/core"
)

func TestLoadCSV(t *testing.T) {
	input := `id,arrival,burst,priority
# comment lines are skipped
P1,0,5,2
P2, 1, 3
P3,2,8,-1
`
	processes, err := LoadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}
	want := []core.ProcessInput{
		{ID: "P1", ArrivalTime: 0, BurstTime: 5, Priority: 2},
		{ID: "P2", ArrivalTime: 1, BurstTime: 3},
		{ID: "P3", ArrivalTime: 2, BurstTime: 8, Priority: -1},
	}
	if !reflect.DeepEqual(processes, want) {
		t.Fatalf("got %+v, want %+v", processes, want)
	}
}

func TestLoadCSVErrors(t *testing.T) {
	tests := map[string]string{
		"too few columns": "P1,0\n",
		"bad arrival":     "P1,x,3\n",
		"zero burst":      "P1,0,0\n",
		"missing id":      ",0,3\n",
		"bare quote":      "P1,\"0,3\n",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadCSV(strings.NewReader(input)); !errors.Is(err, core.ErrInvalidProcess) {
				t.Fatalf("expected ErrInvalidProcess, got %v", err)
			}
		})
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	seed := int64(3)
	processes, err := GenerateWorkload(6, &seed, DefaultRanges())
	if err != nil {
		t.Fatalf("GenerateWorkload failed: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, processes); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	loaded, err := LoadCSV(&buf)
	if err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}
	if !reflect.DeepEqual(processes, loaded) {
		t.Fatalf("round trip mismatch:\n%v\n%v", processes, loaded)
	}
}
