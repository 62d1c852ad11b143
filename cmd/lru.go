package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/os-sim/os-sim/sim/lru"
	"github.com/os-sim/os-sim/sim/replay"
	"github.com/os-sim/os-sim/sim/scenario"
	"github.com/os-sim/os-sim/sim/trace"
)

var (
	refs        string        // Raw reference string
	frames      string        // Raw frame count
	lruScenario string        // Scenario file with an lru section
	lruAnimate  time.Duration // Pause between replayed steps
	lruStep     bool          // Advance one step per line read from stdin
	lruOut      string        // Trace output path
)

// lruCmd runs LRU page replacement and prints every step
var lruCmd = &cobra.Command{
	Use:   "lru",
	Short: "Run the least-recently-used page replacement simulator",
	Run: func(cmd *cobra.Command, args []string) {
		name, pages, frameCount, err := lruInput(lruScenario, refs, frames)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		logrus.Infof("Simulating %d references over %d frames", len(pages), frameCount)

		rec := trace.RunLRU(name, pages, frameCount)
		var w io.Writer = os.Stdout
		switch {
		case lruStep:
			stepThrough(os.Stdin, w, rec.LRU)
		case lruAnimate > 0:
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			if err := replay.Run(ctx, len(rec.LRU.Steps), lruAnimate, func(i int) {
				printStep(w, rec.LRU.Steps[i])
			}); err != nil {
				logrus.Warnf("replay stopped: %v", err)
			}
			printPagingTotals(w, rec.LRU)
		default:
			printPaging(w, rec.LRU)
		}

		if lruOut != "" {
			if err := trace.Write(lruOut, rec); err != nil {
				logrus.Fatalf("%v", err)
			}
			logrus.Infof("Trace written to %s: %s", lruOut, trace.Describe(rec))
		}
	},
}

// stepThrough prints one step per line read from r, like pressing a step
// button. A line of "q" or the end of r stops early; totals are printed only
// after the last step.
func stepThrough(r io.Reader, w io.Writer, run *trace.LRURun) {
	cursor := replay.NewCursor(len(run.Steps))
	scanner := bufio.NewScanner(r)
	for !cursor.Done() {
		fmt.Fprintf(w, "step %d/%d, enter to continue, q to quit: ", cursor.Position()+2, len(run.Steps))
		if !scanner.Scan() || strings.TrimSpace(scanner.Text()) == "q" {
			fmt.Fprintln(w)
			return
		}
		cursor.Next()
		printStep(w, run.Steps[cursor.Position()])
	}
	printPagingTotals(w, run)
}

// lruInput resolves and validates the reference string and frame count. The
// scenario file, when given, replaces both flags.
func lruInput(path, rawRefs, rawFrames string) (string, []int, int, error) {
	name := ""
	if path != "" {
		sc, err := scenario.Load(path)
		if err != nil {
			return "", nil, 0, err
		}
		if sc.LRU == nil {
			return "", nil, 0, fmt.Errorf("scenario %q has no lru section", sc.Name)
		}
		name = sc.Name
		rawRefs = sc.LRU.ReferenceString
		rawFrames = fmt.Sprint(sc.LRU.Frames())
	}

	pages := lru.ParseReferenceString(rawRefs)
	if err := lru.ValidateReferenceString(pages); err != nil {
		return "", nil, 0, err
	}
	frameCount := lru.ParseFrameCount(rawFrames, lru.DefaultFrameCount)
	if err := lru.ValidateFrameCount(frameCount, lru.MinFrameCount, lru.MaxFrameCount); err != nil {
		return "", nil, 0, err
	}
	return name, pages, frameCount, nil
}

func init() {
	lruCmd.Flags().StringVar(&refs, "refs", "7,0,1,2,0,3,0,4,2,3,0,3,2", "Comma-separated page reference string")
	lruCmd.Flags().StringVar(&frames, "frames", fmt.Sprint(lru.DefaultFrameCount), "Number of physical frames (1-10)")
	lruCmd.Flags().StringVar(&lruScenario, "scenario", "", "Scenario file (.yaml, .yml, .toml)")
	lruCmd.Flags().DurationVar(&lruAnimate, "animate", 0, "Replay steps with this pause between them (e.g. 600ms)")
	lruCmd.Flags().BoolVar(&lruStep, "step", false, "Step through the run, one reference per enter key")
	lruCmd.MarkFlagsMutuallyExclusive("step", "animate")
	lruCmd.Flags().StringVar(&lruOut, "out", "", "Write the run as a trace (.json, .json.gz, .json.zst)")
}
