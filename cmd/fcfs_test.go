package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/os-sim/os-sim/sim/fcfs"
	"github.com/os-sim/os-sim/sim/trace"
)

func TestBuildRoster_LenientColumns(t *testing.T) {
	// GIVEN three arrivals, one of them garbled, and a single burst
	r := buildRoster([]string{"0", "1", "x"}, []string{"4"})

	// THEN missing or unparseable entries take the defaults
	want := []fcfs.Process{
		{ID: "P1", ArrivalTime: 0, BurstTime: 4},
		{ID: "P2", ArrivalTime: 1, BurstTime: fcfs.DefaultBurst},
		{ID: "P3", ArrivalTime: fcfs.DefaultArrival, BurstTime: fcfs.DefaultBurst},
	}
	assert.Equal(t, want, r.Processes())
}

func TestBuildRoster_SignedAndPaddedValues(t *testing.T) {
	r := buildRoster([]string{"+3", "03"}, []string{" 2 ", "007"})

	want := []fcfs.Process{
		{ID: "P1", ArrivalTime: 3, BurstTime: 2},
		{ID: "P2", ArrivalTime: 3, BurstTime: 7},
	}
	assert.Equal(t, want, r.Processes())
}

func TestReplaced(t *testing.T) {
	tests := []struct {
		raw    string
		stored int
		want   bool
	}{
		{raw: "+3", stored: 3, want: false},
		{raw: "03", stored: 3, want: false},
		{raw: " 5 ", stored: 5, want: false},
		{raw: "x", stored: fcfs.DefaultArrival, want: true},
		{raw: "-4", stored: fcfs.DefaultArrival, want: true},
		{raw: "0", stored: fcfs.DefaultBurst, want: true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, replaced(tt.raw, tt.stored), "raw %q", tt.raw)
	}
}

func TestFCFSInput_NoFlags_UsesDefaultRoster(t *testing.T) {
	name, ps, err := fcfsInput("", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "default", name)
	assert.Equal(t, fcfs.DefaultRoster().Processes(), ps)
}

func TestFCFSInput_Scenario(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "convoy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`fcfs:
  processes:
    - id: long
      arrival_time: 0
      burst_time: 10
    - id: short
      arrival_time: 1
      burst_time: 1
`), 0o644))

	name, ps, err := fcfsInput(path, []string{"99"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "convoy", name, "name defaults to the file stem")
	require.Len(t, ps, 2, "scenario replaces the flags")
	assert.Equal(t, "long", ps[0].ID)
}

func TestFCFSInput_ScenarioWithoutSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paging.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lru:\n  reference_string: \"1,2\"\n"), 0o644))

	_, _, err := fcfsInput(path, nil, nil)
	assert.ErrorContains(t, err, "no fcfs section")
}

func TestPrintSchedule_DefaultExample(t *testing.T) {
	rec := trace.RunFCFS("default", fcfs.DefaultRoster().Processes())
	var buf bytes.Buffer

	printSchedule(&buf, rec.FCFS)

	out := buf.String()
	assert.Contains(t, out, "| P1 0-4 | P2 4-7 | P3 7-8 |")
	assert.Contains(t, out, "Average turnaround time: 5.33")
	assert.Contains(t, out, "Average waiting time:    2.67")
	assert.Contains(t, out, "CPU utilization:         100%")
}

func TestPrintSchedule_IdleSegment(t *testing.T) {
	rec := trace.RunFCFS("", []fcfs.Process{{ID: "P1", ArrivalTime: 2, BurstTime: 1}})
	var buf bytes.Buffer

	printSchedule(&buf, rec.FCFS)

	assert.Contains(t, buf.String(), "| idle 0-2 | P1 2-3 |")
}

func TestAnimateSchedule_OneLinePerTimeUnit(t *testing.T) {
	// GIVEN a schedule that starts with two idle units
	rec := trace.RunFCFS("", []fcfs.Process{{ID: "P1", ArrivalTime: 2, BurstTime: 1}})
	var buf bytes.Buffer

	// WHEN replayed
	err := animateSchedule(context.Background(), &buf, rec.FCFS, time.Millisecond)

	// THEN each tick shows the running process or idle
	require.NoError(t, err)
	assert.Equal(t, "t=0   idle\nt=1   idle\nt=2   P1\n", buf.String())
}

func TestAnimateSchedule_Cancelled(t *testing.T) {
	rec := trace.RunFCFS("", fcfs.DefaultRoster().Processes())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer

	err := animateSchedule(ctx, &buf, rec.FCFS, time.Hour)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}
