// Package lru simulates Least-Recently-Used page replacement over a fixed set
// of frames.
//
// Simulate consumes a clean reference string in a single pass and returns one
// immutable Step per reference. Raw text must go through ParseReferenceString
// and the frame count through ParseFrameCount/ValidateFrameCount first.
package lru

// Frame is one slot of a frame set snapshot.
type Frame struct {
	Page     int  `json:"page"`
	Occupied bool `json:"occupied"`
	IsNew    bool `json:"is_new,omitempty"` // slot received the faulting page in this step
	IsHit    bool `json:"is_hit,omitempty"` // slot satisfied the reference in this step
}

// Step is the state of the frame set after processing one reference.
type Step struct {
	Time        int     `json:"time"` // 0-based index into the reference string
	Page        int     `json:"page"`
	Frames      []Frame `json:"frames"`
	Fault       bool    `json:"fault"`
	EvictedPage *int    `json:"evicted_page"` // nil when nothing was evicted
}

// Evicted returns the evicted page and whether an eviction happened.
func (s Step) Evicted() (int, bool) {
	if s.EvictedPage == nil {
		return 0, false
	}
	return *s.EvictedPage, true
}

// Resident returns the occupied pages of the snapshot in slot order.
func (s Step) Resident() []int {
	pages := make([]int, 0, len(s.Frames))
	for _, f := range s.Frames {
		if f.Occupied {
			pages = append(pages, f.Page)
		}
	}
	return pages
}
