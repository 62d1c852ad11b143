package fcfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize_EmptySchedule_ZeroValues(t *testing.T) {
	// GIVEN an empty schedule
	// WHEN summarized
	summary := Summarize(nil)

	// THEN all fields are zero (no division by zero)
	assert.Equal(t, Summary{}, summary)
}

func TestSummarize_DefaultRoster(t *testing.T) {
	// GIVEN the default roster schedule (turnaround 4,6,6; waiting 0,3,5)
	summary := Summarize(Schedule(DefaultRoster().Processes()))

	// THEN averages and totals match
	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, 8, summary.Makespan)
	assert.Equal(t, 8, summary.BusyTime)
	assert.Equal(t, 0, summary.IdleTime)
	assert.InDelta(t, 16.0/3.0, summary.AverageTurnaround, 1e-9)
	assert.InDelta(t, 8.0/3.0, summary.AverageWaiting, 1e-9)
	assert.InDelta(t, summary.AverageWaiting, summary.AverageResponse, 1e-9,
		"response equals waiting without preemption")
	assert.InDelta(t, 1.0, summary.Utilization, 1e-9)
	assert.InDelta(t, 3.0/8.0, summary.Throughput, 1e-9)
}

func TestSummarize_IdleTimeLowersUtilization(t *testing.T) {
	// GIVEN 4 busy units inside a makespan of 12
	summary := Summarize(Schedule([]Process{
		{ID: "A", ArrivalTime: 3, BurstTime: 2},
		{ID: "B", ArrivalTime: 10, BurstTime: 2},
	}))

	assert.Equal(t, 12, summary.Makespan)
	assert.Equal(t, 8, summary.IdleTime)
	assert.InDelta(t, 4.0/12.0, summary.Utilization, 1e-9)
}
