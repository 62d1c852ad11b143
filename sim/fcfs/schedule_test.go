package fcfs

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/os-sim/os-sim/sim/internal/testutil"
)

func TestSchedule_GoldenDataset(t *testing.T) {
	dataset := testutil.LoadGoldenDataset(t)

	for _, tc := range dataset.FCFS {
		t.Run(tc.Name, func(t *testing.T) {
			// GIVEN the golden process list
			processes := make([]Process, len(tc.Processes))
			for i, p := range tc.Processes {
				processes[i] = Process{ID: p.ID, ArrivalTime: p.ArrivalTime, BurstTime: p.BurstTime}
			}

			// WHEN scheduled
			schedule := Schedule(processes)

			// THEN every process matches the expected timing in execution order
			require.Len(t, schedule, len(tc.Expected))
			for i, want := range tc.Expected {
				got := schedule[i]
				if got.ID != want.ID {
					t.Errorf("order[%d]: got %s, want %s", i, got.ID, want.ID)
				}
				if got.StartTime != want.StartTime || got.CompletionTime != want.CompletionTime {
					t.Errorf("%s: got [%d, %d), want [%d, %d)", want.ID,
						got.StartTime, got.CompletionTime, want.StartTime, want.CompletionTime)
				}
				if got.TurnaroundTime != want.TurnaroundTime {
					t.Errorf("%s turnaround: got %d, want %d", want.ID, got.TurnaroundTime, want.TurnaroundTime)
				}
				if got.WaitingTime != want.WaitingTime {
					t.Errorf("%s waiting: got %d, want %d", want.ID, got.WaitingTime, want.WaitingTime)
				}
			}
			assert.Equal(t, tc.Makespan, Makespan(schedule))
		})
	}
}

func TestSchedule_ThreeProcessExample(t *testing.T) {
	// GIVEN P1(0,4), P2(1,3), P3(2,1)
	schedule := Schedule(DefaultRoster().Processes())

	// THEN turnaround [4,6,6] and waiting [0,3,5]
	var turnaround, waiting []int
	for _, sp := range schedule {
		turnaround = append(turnaround, sp.TurnaroundTime)
		waiting = append(waiting, sp.WaitingTime)
	}
	assert.Equal(t, []int{4, 6, 6}, turnaround)
	assert.Equal(t, []int{0, 3, 5}, waiting)
}

func TestSchedule_EqualArrivals_KeepInputOrder(t *testing.T) {
	// GIVEN three processes arriving at the same time, listed C, A, B
	processes := []Process{
		{ID: "C", ArrivalTime: 2, BurstTime: 1},
		{ID: "A", ArrivalTime: 2, BurstTime: 5},
		{ID: "B", ArrivalTime: 2, BurstTime: 2},
	}

	// WHEN scheduled
	schedule := Schedule(processes)

	// THEN insertion order breaks the tie
	ids := []string{schedule[0].ID, schedule[1].ID, schedule[2].ID}
	assert.Equal(t, []string{"C", "A", "B"}, ids)
	assert.Equal(t, 2, schedule[0].StartTime, "first process starts at its arrival, not at 0")
}

func TestSchedule_DoesNotReorderInput(t *testing.T) {
	// GIVEN an input slice in reverse arrival order
	processes := []Process{
		{ID: "late", ArrivalTime: 5, BurstTime: 1},
		{ID: "early", ArrivalTime: 0, BurstTime: 1},
	}

	// WHEN scheduled
	_ = Schedule(processes)

	// THEN the caller's slice is untouched
	assert.Equal(t, "late", processes[0].ID)
	assert.Equal(t, "early", processes[1].ID)
}

func TestSchedule_Empty_ReturnsEmptyNonNil(t *testing.T) {
	schedule := Schedule(nil)
	if schedule == nil {
		t.Fatal("expected non-nil empty schedule")
	}
	assert.Empty(t, schedule)
	assert.Equal(t, 0, Makespan(schedule))
}

func TestSchedule_Idempotent(t *testing.T) {
	// GIVEN a fixed input
	processes := randomProcesses(rand.New(rand.NewSource(7)), 20)

	// WHEN scheduled twice
	first := Schedule(processes)
	second := Schedule(processes)

	// THEN results are identical
	assert.Equal(t, first, second)
}

// TestSchedule_Properties checks the scheduling invariants over random inputs:
// same cardinality, completion = start + burst, waiting >= 0, no overlap,
// start times non-decreasing.
func TestSchedule_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		processes := randomProcesses(rng, 1+rng.Intn(12))
		schedule := Schedule(processes)

		require.Len(t, schedule, len(processes), "trial %d", trial)
		for i, sp := range schedule {
			if sp.CompletionTime != sp.StartTime+sp.BurstTime {
				t.Fatalf("trial %d %s: completion %d != start %d + burst %d",
					trial, sp.ID, sp.CompletionTime, sp.StartTime, sp.BurstTime)
			}
			if sp.WaitingTime < 0 {
				t.Fatalf("trial %d %s: negative waiting time %d", trial, sp.ID, sp.WaitingTime)
			}
			if sp.StartTime < sp.ArrivalTime {
				t.Fatalf("trial %d %s: started at %d before arrival %d", trial, sp.ID, sp.StartTime, sp.ArrivalTime)
			}
			if i > 0 {
				prev := schedule[i-1]
				start, end := sp.Interval()
				prevStart, prevEnd := prev.Interval()
				if start < prevEnd {
					t.Fatalf("trial %d: %s [%d,%d) overlaps %s [%d,%d)", trial,
						sp.ID, start, end, prev.ID, prevStart, prevEnd)
				}
				if sp.StartTime < prev.StartTime {
					t.Fatalf("trial %d: start times decrease at %d", trial, i)
				}
			}
		}
	}
}

func randomProcesses(rng *rand.Rand, n int) []Process {
	processes := make([]Process, n)
	for i := range processes {
		processes[i] = Process{
			ID:          fmt.Sprintf("P%d", i+1),
			ArrivalTime: rng.Intn(30),
			BurstTime:   1 + rng.Intn(8),
		}
	}
	return processes
}
