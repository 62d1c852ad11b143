// Package testutil provides shared test infrastructure for the simulation
// engines. It loads the golden dataset used by the sim/fcfs and sim/lru tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	FCFS []GoldenFCFSCase `json:"fcfs"`
	LRU  []GoldenLRUCase  `json:"lru"`
}

// GoldenProcess is a process descriptor as stored in the dataset.
type GoldenProcess struct {
	ID          string `json:"id"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
}

// GoldenScheduled is the expected timing of one process, in execution order.
type GoldenScheduled struct {
	ID             string `json:"id"`
	StartTime      int    `json:"start_time"`
	CompletionTime int    `json:"completion_time"`
	TurnaroundTime int    `json:"turnaround_time"`
	WaitingTime    int    `json:"waiting_time"`
}

// GoldenFCFSCase is a single FCFS scheduling case.
type GoldenFCFSCase struct {
	Name      string            `json:"name"`
	Processes []GoldenProcess   `json:"processes"`
	Expected  []GoldenScheduled `json:"expected"`
	Makespan  int               `json:"makespan"`
}

// GoldenLRUCase is a single LRU paging case. ReferenceString is raw text and goes
// through the boundary parser like user input does.
type GoldenLRUCase struct {
	Name            string `json:"name"`
	ReferenceString string `json:"reference_string"`
	FrameCount      int    `json:"frame_count"`
	Faults          int    `json:"faults"`
	Hits            int    `json:"hits"`
	Evictions       []int  `json:"evictions"`
	FinalFrames     []int  `json:"final_frames"`
}

// LoadGoldenDataset loads the golden dataset from the repository testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}
	if len(dataset.FCFS) == 0 || len(dataset.LRU) == 0 {
		t.Fatal("golden dataset has no fcfs or lru cases")
	}

	return &dataset
}
