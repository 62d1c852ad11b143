// Package trace records simulation runs so they can be inspected, replayed or
// stored. A Record holds the inputs and the fully materialized engine output of
// exactly one run.
package trace

import (
	"github.com/os-sim/os-sim/sim/fcfs"
	"github.com/os-sim/os-sim/sim/lru"
)

// Kind identifies which simulator produced a Record.
type Kind string

const (
	// KindFCFS marks a scheduling run.
	KindFCFS Kind = "fcfs"
	// KindLRU marks a paging run.
	KindLRU Kind = "lru"
)

// Record captures one simulation run.
type Record struct {
	Kind     Kind     `json:"kind"`
	Scenario string   `json:"scenario,omitempty"`
	FCFS     *FCFSRun `json:"fcfs,omitempty"`
	LRU      *LRURun  `json:"lru,omitempty"`
}

// FCFSRun is the input and output of a scheduling run.
type FCFSRun struct {
	Processes []fcfs.Process          `json:"processes"`
	Schedule  []fcfs.ScheduledProcess `json:"schedule"`
	Timeline  []fcfs.Segment          `json:"timeline"`
	Summary   fcfs.Summary            `json:"summary"`
}

// LRURun is the input and output of a paging run.
type LRURun struct {
	ReferenceString []int       `json:"reference_string"`
	FrameCount      int         `json:"frame_count"`
	Steps           []lru.Step  `json:"steps"`
	Summary         lru.Summary `json:"summary"`
}

// RunFCFS schedules processes and records the result. Input must already have
// passed fcfs.Validate.
func RunFCFS(scenario string, processes []fcfs.Process) *Record {
	schedule := fcfs.Schedule(processes)
	in := make([]fcfs.Process, len(processes))
	copy(in, processes)
	return &Record{
		Kind:     KindFCFS,
		Scenario: scenario,
		FCFS: &FCFSRun{
			Processes: in,
			Schedule:  schedule,
			Timeline:  fcfs.Timeline(schedule),
			Summary:   fcfs.Summarize(schedule),
		},
	}
}

// RunLRU simulates refs over frameCount frames and records the result. Input
// must already have passed the lru boundary validators.
func RunLRU(scenario string, refs []int, frameCount int) *Record {
	steps := lru.Simulate(refs, frameCount)
	in := make([]int, len(refs))
	copy(in, refs)
	return &Record{
		Kind:     KindLRU,
		Scenario: scenario,
		LRU: &LRURun{
			ReferenceString: in,
			FrameCount:      frameCount,
			Steps:           steps,
			Summary:         lru.Summarize(steps),
		},
	}
}

// Len returns the number of replayable units: time ticks up to the makespan for
// a scheduling run, steps for a paging run.
func (r *Record) Len() int {
	switch {
	case r.FCFS != nil:
		return r.FCFS.Summary.Makespan
	case r.LRU != nil:
		return len(r.LRU.Steps)
	}
	return 0
}
