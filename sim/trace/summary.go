package trace

import "fmt"

// Describe returns a one-line, human-readable summary of a record.
// Safe for nil or empty records.
func Describe(r *Record) string {
	if r == nil {
		return "empty trace"
	}
	switch {
	case r.FCFS != nil:
		s := r.FCFS.Summary
		return fmt.Sprintf("fcfs: %d processes, makespan %d, avg turnaround %.2f, avg waiting %.2f, utilization %.0f%%",
			s.Count, s.Makespan, s.AverageTurnaround, s.AverageWaiting, s.Utilization*100)
	case r.LRU != nil:
		s := r.LRU.Summary
		return fmt.Sprintf("lru: %d references over %d frames, %d faults, %d hits, %d evictions, hit ratio %.2f",
			s.References, r.LRU.FrameCount, s.Faults, s.Hits, s.Evictions, s.HitRatio)
	}
	return fmt.Sprintf("%s: no result", r.Kind)
}
