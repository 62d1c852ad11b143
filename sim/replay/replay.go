// Package replay paces the playback of an already computed simulation result.
//
// Engines produce their whole result eagerly; replay only decides when each
// element is shown. Stopping a replay never touches engine state.
package replay

import (
	"context"
	"time"
)

const (
	// DefaultScheduleInterval is the pause between timeline ticks of an FCFS replay.
	DefaultScheduleInterval = 500 * time.Millisecond
	// DefaultPagingInterval is the pause between steps of an LRU replay.
	DefaultPagingInterval = 600 * time.Millisecond
)

// Run calls fn(i) for i in [0, n), waiting interval before each call.
// A non-positive interval replays without pausing. Run returns ctx.Err() if the
// context is cancelled before all n calls were made, and nil otherwise.
func Run(ctx context.Context, n int, interval time.Duration, fn func(i int)) error {
	if interval <= 0 {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(i)
		}
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			fn(i)
		}
	}
	return nil
}

// Cursor steps through n items one at a time. Position is -1 before the first
// step, matching a view that shows nothing until stepped.
type Cursor struct {
	n   int
	pos int
}

// NewCursor returns a cursor over n items, positioned before the first.
func NewCursor(n int) *Cursor {
	return &Cursor{n: n, pos: -1}
}

// Next advances to the next item and reports whether it moved.
func (c *Cursor) Next() bool {
	if c.pos >= c.n-1 {
		return false
	}
	c.pos++
	return true
}

// Position returns the index of the current item, or -1.
func (c *Cursor) Position() int {
	return c.pos
}

// Done reports whether the last item has been reached.
func (c *Cursor) Done() bool {
	return c.pos >= c.n-1
}

// Reset moves the cursor back before the first item.
func (c *Cursor) Reset() {
	c.pos = -1
}
