package fcfs

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidInput is wrapped by every boundary validation error in this package.
	ErrInvalidInput = errors.New("invalid fcfs input")
	// ErrNoProcesses reports an empty process list.
	ErrNoProcesses = fmt.Errorf("%w: add at least one process to simulate", ErrInvalidInput)
)

// Validate checks that processes form a well-defined FCFS input: at least one
// process, unique non-empty IDs, non-negative arrival times and bursts of at
// least one time unit. The latest arrival plus the total burst must fit in an
// int, which bounds every completion time of the schedule.
func Validate(processes []Process) error {
	if len(processes) == 0 {
		return ErrNoProcesses
	}
	var latestArrival, totalBurst int
	seen := make(map[string]bool, len(processes))
	for i, p := range processes {
		prefix := fmt.Sprintf("process[%d]", i)
		if p.ID == "" {
			return fmt.Errorf("%w: %s: id must not be empty", ErrInvalidInput, prefix)
		}
		if seen[p.ID] {
			return fmt.Errorf("%w: %s: duplicate id %q", ErrInvalidInput, prefix, p.ID)
		}
		seen[p.ID] = true
		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: %s (%s): arrival_time must be non-negative, got %d", ErrInvalidInput, prefix, p.ID, p.ArrivalTime)
		}
		if p.BurstTime < 1 {
			return fmt.Errorf("%w: %s (%s): burst_time must be at least 1, got %d", ErrInvalidInput, prefix, p.ID, p.BurstTime)
		}
		if p.BurstTime > math.MaxInt-totalBurst {
			return fmt.Errorf("%w: %s (%s): total burst time overflows", ErrInvalidInput, prefix, p.ID)
		}
		totalBurst += p.BurstTime
		latestArrival = max(latestArrival, p.ArrivalTime)
	}
	if latestArrival > math.MaxInt-totalBurst {
		return fmt.Errorf("%w: latest arrival %d plus total burst %d overflows", ErrInvalidInput, latestArrival, totalBurst)
	}
	return nil
}
