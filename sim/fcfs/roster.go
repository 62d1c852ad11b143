package fcfs

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// DefaultArrival is used when an arrival time edit cannot be parsed.
	DefaultArrival = 0
	// DefaultBurst is used when a burst time edit cannot be parsed.
	DefaultBurst = 1
)

// Roster is the caller-editable, ordered list of processes that feeds Schedule.
// It is not safe for concurrent use; each view or command owns its own Roster.
type Roster struct {
	processes []Process
}

// NewRoster creates a roster holding a copy of ps.
func NewRoster(ps ...Process) *Roster {
	r := &Roster{processes: make([]Process, len(ps))}
	copy(r.processes, ps)
	return r
}

// DefaultRoster returns the three-process example roster.
func DefaultRoster() *Roster {
	return NewRoster(
		Process{ID: "P1", ArrivalTime: 0, BurstTime: 4},
		Process{ID: "P2", ArrivalTime: 1, BurstTime: 3},
		Process{ID: "P3", ArrivalTime: 2, BurstTime: 1},
	)
}

// Len returns the number of processes in the roster.
func (r *Roster) Len() int {
	return len(r.processes)
}

// Processes returns a copy of the roster in order.
func (r *Roster) Processes() []Process {
	out := make([]Process, len(r.processes))
	copy(out, r.processes)
	return out
}

// Add appends a new process labelled P{n+1} with arrival 0 and burst 1.
// n starts at the roster length and is bumped until the label is unused, so a
// removal followed by an add never produces a duplicate ID.
func (r *Roster) Add() Process {
	n := len(r.processes) + 1
	for r.index(fmt.Sprintf("P%d", n)) >= 0 {
		n++
	}
	p := Process{ID: fmt.Sprintf("P%d", n), ArrivalTime: DefaultArrival, BurstTime: DefaultBurst}
	r.processes = append(r.processes, p)
	return p
}

// Remove deletes the process with the given ID. It reports whether it was found.
func (r *Roster) Remove(id string) bool {
	i := r.index(id)
	if i < 0 {
		return false
	}
	r.processes = append(r.processes[:i], r.processes[i+1:]...)
	return true
}

// SetArrival replaces the arrival time of process id with the parsed raw value.
// It returns the value stored and whether the process exists.
func (r *Roster) SetArrival(id, raw string) (int, bool) {
	i := r.index(id)
	if i < 0 {
		return 0, false
	}
	r.processes[i].ArrivalTime = ParseArrival(raw)
	return r.processes[i].ArrivalTime, true
}

// SetBurst replaces the burst time of process id with the parsed raw value.
// It returns the value stored and whether the process exists.
func (r *Roster) SetBurst(id, raw string) (int, bool) {
	i := r.index(id)
	if i < 0 {
		return 0, false
	}
	r.processes[i].BurstTime = ParseBurst(raw)
	return r.processes[i].BurstTime, true
}

func (r *Roster) index(id string) int {
	for i, p := range r.processes {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// ParseArrival parses an arrival time edit. Unparseable or negative input yields
// DefaultArrival.
func ParseArrival(raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 0 {
		return DefaultArrival
	}
	return v
}

// ParseBurst parses a burst time edit. Unparseable input or values below one
// yield DefaultBurst.
func ParseBurst(raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 1 {
		return DefaultBurst
	}
	return v
}
