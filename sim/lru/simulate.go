package lru

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// frameSet holds the live slots of one simulation run. Slot i is empty when
// occupied[i] is false.
type frameSet struct {
	pages    []int
	occupied []bool
}

func newFrameSet(n int) *frameSet {
	return &frameSet{pages: make([]int, n), occupied: make([]bool, n)}
}

// find returns the slot holding page, or -1.
func (fs *frameSet) find(page int) int {
	for i := range fs.pages {
		if fs.occupied[i] && fs.pages[i] == page {
			return i
		}
	}
	return -1
}

// firstEmpty returns the lowest empty slot index, or -1 when full.
func (fs *frameSet) firstEmpty() int {
	for i, occ := range fs.occupied {
		if !occ {
			return i
		}
	}
	return -1
}

// victim scans every occupied slot and returns the one whose page has the
// oldest recency. Strict comparison keeps the lowest slot index on ties.
func (fs *frameSet) victim(lastUsed map[int]int) int {
	slot := -1
	oldest := 0
	for i := range fs.pages {
		if !fs.occupied[i] {
			continue
		}
		used := lastUsed[fs.pages[i]]
		if slot < 0 || used < oldest {
			slot, oldest = i, used
		}
	}
	return slot
}

func (fs *frameSet) snapshot(newSlot, hitSlot int) []Frame {
	frames := make([]Frame, len(fs.pages))
	for i := range fs.pages {
		frames[i] = Frame{
			Page:     fs.pages[i],
			Occupied: fs.occupied[i],
			IsNew:    i == newSlot,
			IsHit:    i == hitSlot,
		}
	}
	return frames
}

// Simulate runs LRU replacement for refs over frameCount frames and returns one
// Step per reference, in order. Identical inputs always produce identical steps.
// frameCount must be at least 1; callers validate it with ValidateFrameCount.
func Simulate(refs []int, frameCount int) []Step {
	if frameCount < 1 {
		panic(fmt.Sprintf("lru.Simulate: frameCount must be >= 1, got %d", frameCount))
	}

	frames := newFrameSet(frameCount)
	lastUsed := make(map[int]int, frameCount) // page -> time of most recent reference
	steps := make([]Step, 0, len(refs))

	for t, page := range refs {
		step := Step{Time: t, Page: page}
		newSlot, hitSlot := -1, -1

		if slot := frames.find(page); slot >= 0 {
			hitSlot = slot
		} else {
			step.Fault = true
			slot := frames.firstEmpty()
			if slot < 0 {
				slot = frames.victim(lastUsed)
				evicted := frames.pages[slot]
				step.EvictedPage = &evicted
				delete(lastUsed, evicted)
				logrus.Debugf("lru: t=%d page %d evicts %d from frame %d", t, page, evicted, slot)
			}
			frames.pages[slot] = page
			frames.occupied[slot] = true
			newSlot = slot
		}
		lastUsed[page] = t

		step.Frames = frames.snapshot(newSlot, hitSlot)
		steps = append(steps, step)
	}
	return steps
}
