// Package fcfs implements First-Come-First-Served CPU scheduling on a single,
// non-preemptive CPU.
//
// Schedule is a pure function: it copies its input, orders it by arrival time
// and returns a freshly built schedule. Everything that deals with raw user
// input (Roster, ParseArrival, ParseBurst, Validate) lives on the boundary side
// and must run before Schedule is called.
package fcfs

// Process is a caller-supplied job descriptor.
type Process struct {
	ID          string `json:"id" yaml:"id" toml:"id"`
	ArrivalTime int    `json:"arrival_time" yaml:"arrival_time" toml:"arrival_time"`
	BurstTime   int    `json:"burst_time" yaml:"burst_time" toml:"burst_time"`
}

// ScheduledProcess is a Process with the timing metrics derived by Schedule.
type ScheduledProcess struct {
	Process
	StartTime      int `json:"start_time"`
	CompletionTime int `json:"completion_time"`
	TurnaroundTime int `json:"turnaround_time"` // completion - arrival
	WaitingTime    int `json:"waiting_time"`    // turnaround - burst
	ResponseTime   int `json:"response_time"`   // start - arrival; equals waiting time without preemption
}

// Interval returns the half-open CPU interval [start, completion) of the process.
func (sp ScheduledProcess) Interval() (start, end int) {
	return sp.StartTime, sp.CompletionTime
}
