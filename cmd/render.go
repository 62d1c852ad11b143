package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/os-sim/os-sim/sim/lru"
	"github.com/os-sim/os-sim/sim/trace"
)

// printSchedule writes the Gantt chart, the per-process table and the averages.
func printSchedule(w io.Writer, run *trace.FCFSRun) {
	var gantt strings.Builder
	gantt.WriteString("|")
	for _, seg := range run.Timeline {
		label := seg.ProcessID
		if seg.Idle {
			label = "idle"
		}
		fmt.Fprintf(&gantt, " %s %d-%d |", label, seg.Start, seg.End)
	}
	fmt.Fprintln(w, "Gantt chart:")
	fmt.Fprintln(w, gantt.String())
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Process\tArrival\tBurst\tStart\tCompletion\tTurnaround\tWaiting")
	for _, sp := range run.Schedule {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%d\n",
			sp.ID, sp.ArrivalTime, sp.BurstTime, sp.StartTime, sp.CompletionTime, sp.TurnaroundTime, sp.WaitingTime)
	}
	_ = tw.Flush()
	fmt.Fprintln(w)

	s := run.Summary
	fmt.Fprintf(w, "Average turnaround time: %.2f\n", s.AverageTurnaround)
	fmt.Fprintf(w, "Average waiting time:    %.2f\n", s.AverageWaiting)
	fmt.Fprintf(w, "CPU utilization:         %.0f%%\n", s.Utilization*100)
}

// printPaging writes every step followed by the totals.
func printPaging(w io.Writer, run *trace.LRURun) {
	for _, step := range run.Steps {
		printStep(w, step)
	}
	printPagingTotals(w, run)
}

// printStep writes one line: time, page, frame contents and outcome.
// Empty slots print as "-"; the slot that changed or hit is marked with "*".
func printStep(w io.Writer, step lru.Step) {
	cells := make([]string, len(step.Frames))
	for i, f := range step.Frames {
		switch {
		case !f.Occupied:
			cells[i] = "-"
		case f.IsNew || f.IsHit:
			cells[i] = fmt.Sprintf("%d*", f.Page)
		default:
			cells[i] = fmt.Sprint(f.Page)
		}
	}
	outcome := "hit"
	if step.Fault {
		outcome = "fault"
		if page, ok := step.Evicted(); ok {
			outcome = fmt.Sprintf("fault, evicted %d", page)
		}
	}
	fmt.Fprintf(w, "t=%-3d page %-3d [%s] %s\n", step.Time, step.Page, strings.Join(cells, " "), outcome)
}

func printPagingTotals(w io.Writer, run *trace.LRURun) {
	s := run.Summary
	fmt.Fprintf(w, "\nReferences: %d  Frames: %d  Faults: %d  Hits: %d  Hit ratio: %.2f%%\n",
		s.References, run.FrameCount, s.Faults, s.Hits, s.HitRatio*100)
}
