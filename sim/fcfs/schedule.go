package fcfs

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// Schedule runs FCFS over processes and returns the schedule in execution order.
// Processes are stably sorted by arrival time, so equal arrivals keep their input
// order. The CPU idles whenever the next arrival is later than the current clock.
// The input slice is not modified.
func Schedule(processes []Process) []ScheduledProcess {
	ordered := make([]Process, len(processes))
	copy(ordered, processes)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ArrivalTime < ordered[j].ArrivalTime
	})

	schedule := make([]ScheduledProcess, 0, len(ordered))
	clock := 0
	for _, p := range ordered {
		start := max(clock, p.ArrivalTime)
		if start > clock {
			logrus.Debugf("fcfs: cpu idle [%d, %d) before %s", clock, start, p.ID)
		}
		completion := start + p.BurstTime
		turnaround := completion - p.ArrivalTime
		schedule = append(schedule, ScheduledProcess{
			Process:        p,
			StartTime:      start,
			CompletionTime: completion,
			TurnaroundTime: turnaround,
			WaitingTime:    turnaround - p.BurstTime,
			ResponseTime:   start - p.ArrivalTime,
		})
		clock = completion
	}
	return schedule
}

// Makespan returns the completion time of the last scheduled process, or 0.
func Makespan(schedule []ScheduledProcess) int {
	if len(schedule) == 0 {
		return 0
	}
	return schedule[len(schedule)-1].CompletionTime
}
