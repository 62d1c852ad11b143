package fcfs

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		processes []Process
		wantErr   string
	}{
		{name: "valid", processes: DefaultRoster().Processes()},
		{name: "empty", processes: nil, wantErr: "at least one process"},
		{name: "empty id", processes: []Process{{ID: "", BurstTime: 1}}, wantErr: "id must not be empty"},
		{
			name:      "duplicate id",
			processes: []Process{{ID: "P1", BurstTime: 1}, {ID: "P1", BurstTime: 2}},
			wantErr:   `duplicate id "P1"`,
		},
		{name: "negative arrival", processes: []Process{{ID: "P1", ArrivalTime: -1, BurstTime: 1}}, wantErr: "arrival_time"},
		{name: "zero burst", processes: []Process{{ID: "P1", BurstTime: 0}}, wantErr: "burst_time"},
		{
			name:      "bursts overflow",
			processes: []Process{{ID: "P1", BurstTime: math.MaxInt}, {ID: "P2", BurstTime: 1}},
			wantErr:   "total burst time overflows",
		},
		{
			name: "arrival plus bursts overflow",
			processes: []Process{
				{ID: "P1", ArrivalTime: math.MaxInt, BurstTime: 1},
				{ID: "P2", ArrivalTime: 0, BurstTime: 1},
			},
			wantErr: "overflows",
		},
		{name: "largest representable schedule", processes: []Process{{ID: "P1", ArrivalTime: math.MaxInt - 2, BurstTime: 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.processes)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.True(t, errors.Is(err, ErrInvalidInput), "error must wrap ErrInvalidInput")
			}
		})
	}
}

func TestValidate_EmptyList_IsErrNoProcesses(t *testing.T) {
	assert.ErrorIs(t, Validate([]Process{}), ErrNoProcesses)
}

func TestValidate_AcceptedInput_ScheduleStaysNonNegative(t *testing.T) {
	// GIVEN input right at the overflow boundary
	processes := []Process{
		{ID: "P1", ArrivalTime: math.MaxInt - 10, BurstTime: 4},
		{ID: "P2", ArrivalTime: 0, BurstTime: 6},
	}
	if !assert.NoError(t, Validate(processes)) {
		return
	}

	// WHEN scheduled
	schedule := Schedule(processes)

	// THEN every derived field is non-negative and intervals are ordered
	for _, sp := range schedule {
		start, end := sp.Interval()
		assert.GreaterOrEqual(t, end, start, sp.ID)
		assert.GreaterOrEqual(t, sp.TurnaroundTime, 0, sp.ID)
		assert.GreaterOrEqual(t, sp.WaitingTime, 0, sp.ID)
	}
	assert.Equal(t, math.MaxInt-6, Makespan(schedule))
}
