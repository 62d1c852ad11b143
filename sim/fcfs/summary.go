package fcfs

// Summary aggregates a schedule into the statistics shown next to the Gantt chart.
type Summary struct {
	Count             int     `json:"count"`
	Makespan          int     `json:"makespan"`
	BusyTime          int     `json:"busy_time"`
	IdleTime          int     `json:"idle_time"`
	AverageTurnaround float64 `json:"average_turnaround"`
	AverageWaiting    float64 `json:"average_waiting"`
	AverageResponse   float64 `json:"average_response"`
	Utilization       float64 `json:"utilization"` // busy / makespan
	Throughput        float64 `json:"throughput"`  // processes per time unit
}

// Summarize computes aggregate statistics. Safe for an empty schedule (all zero).
func Summarize(schedule []ScheduledProcess) Summary {
	summary := Summary{Count: len(schedule)}
	if len(schedule) == 0 {
		return summary
	}

	var turnaround, waiting, response int
	for _, sp := range schedule {
		turnaround += sp.TurnaroundTime
		waiting += sp.WaitingTime
		response += sp.ResponseTime
		summary.BusyTime += sp.BurstTime
	}

	n := float64(len(schedule))
	summary.Makespan = Makespan(schedule)
	summary.IdleTime = summary.Makespan - summary.BusyTime
	summary.AverageTurnaround = float64(turnaround) / n
	summary.AverageWaiting = float64(waiting) / n
	summary.AverageResponse = float64(response) / n
	if summary.Makespan > 0 {
		summary.Utilization = float64(summary.BusyTime) / float64(summary.Makespan)
		summary.Throughput = n / float64(summary.Makespan)
	}
	return summary
}
