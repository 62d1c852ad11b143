package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/os-sim/os-sim/sim/fcfs"
	"github.com/os-sim/os-sim/sim/replay"
	"github.com/os-sim/os-sim/sim/scenario"
	"github.com/os-sim/os-sim/sim/trace"
)

var (
	arrivals     []string      // Raw arrival times, one per process
	bursts       []string      // Raw burst times, one per process
	fcfsScenario string        // Scenario file with an fcfs section
	fcfsAnimate  time.Duration // Pause between replayed time units
	fcfsOut      string        // Trace output path
)

// fcfsCmd schedules a process list and prints the Gantt chart and metrics
var fcfsCmd = &cobra.Command{
	Use:   "fcfs",
	Short: "Run the first-come-first-served scheduler",
	Run: func(cmd *cobra.Command, args []string) {
		name, processes, err := fcfsInput(fcfsScenario, arrivals, bursts)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		if err := fcfs.Validate(processes); err != nil {
			logrus.Fatalf("%v", err)
		}
		logrus.Infof("Scheduling %d processes", len(processes))

		rec := trace.RunFCFS(name, processes)
		if fcfsAnimate > 0 {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			if err := animateSchedule(ctx, os.Stdout, rec.FCFS, fcfsAnimate); err != nil {
				logrus.Warnf("replay stopped: %v", err)
			}
		}
		printSchedule(os.Stdout, rec.FCFS)

		if fcfsOut != "" {
			if err := trace.Write(fcfsOut, rec); err != nil {
				logrus.Fatalf("%v", err)
			}
			logrus.Infof("Trace written to %s: %s", fcfsOut, trace.Describe(rec))
		}
	},
}

// fcfsInput resolves the process list from a scenario file, from the
// --arrivals/--bursts flags, or from the default roster, in that order.
func fcfsInput(path string, arrivals, bursts []string) (string, []fcfs.Process, error) {
	if path != "" {
		sc, err := scenario.Load(path)
		if err != nil {
			return "", nil, err
		}
		if sc.FCFS == nil {
			return "", nil, fmt.Errorf("scenario %q has no fcfs section", sc.Name)
		}
		return sc.Name, sc.FCFS.Processes, nil
	}
	if len(arrivals) == 0 && len(bursts) == 0 {
		return "default", fcfs.DefaultRoster().Processes(), nil
	}
	return "", buildRoster(arrivals, bursts).Processes(), nil
}

// buildRoster adds one process per column. Values go through the roster's
// lenient parsers, so a missing or garbled entry takes the default.
func buildRoster(arrivals, bursts []string) *fcfs.Roster {
	n := max(len(arrivals), len(bursts))
	r := fcfs.NewRoster()
	for i := 0; i < n; i++ {
		p := r.Add()
		if i < len(arrivals) {
			if v, _ := r.SetArrival(p.ID, arrivals[i]); replaced(arrivals[i], v) {
				logrus.Warnf("%s: arrival %q replaced by %d", p.ID, arrivals[i], v)
			}
		}
		if i < len(bursts) {
			if v, _ := r.SetBurst(p.ID, bursts[i]); replaced(bursts[i], v) {
				logrus.Warnf("%s: burst %q replaced by %d", p.ID, bursts[i], v)
			}
		}
	}
	return r
}

// replaced reports whether the stored value is a fallback rather than raw itself.
func replaced(raw string, stored int) bool {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	return err != nil || v != stored
}

// animateSchedule prints which process holds the CPU at each time unit.
func animateSchedule(ctx context.Context, w io.Writer, run *trace.FCFSRun, interval time.Duration) error {
	return replay.Run(ctx, run.Summary.Makespan, interval, func(t int) {
		id := fcfs.RunningAt(run.Schedule, t)
		if id == "" {
			id = "idle"
		}
		fmt.Fprintf(w, "t=%-3d %s\n", t, id)
	})
}

func init() {
	fcfsCmd.Flags().StringSliceVar(&arrivals, "arrivals", nil, "Comma-separated arrival times (P1, P2, ...)")
	fcfsCmd.Flags().StringSliceVar(&bursts, "bursts", nil, "Comma-separated burst times (P1, P2, ...)")
	fcfsCmd.Flags().StringVar(&fcfsScenario, "scenario", "", "Scenario file (.yaml, .yml, .toml)")
	fcfsCmd.Flags().DurationVar(&fcfsAnimate, "animate", 0, "Replay the timeline with this pause per time unit (e.g. 500ms)")
	fcfsCmd.Flags().StringVar(&fcfsOut, "out", "", "Write the run as a trace (.json, .json.gz, .json.zst)")
}
