package fcfs

// Segment is one bar of a Gantt chart. Idle segments have an empty ProcessID.
type Segment struct {
	ProcessID string `json:"process_id,omitempty"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
	Idle      bool   `json:"idle,omitempty"`
}

// Length returns End - Start.
func (s Segment) Length() int {
	return s.End - s.Start
}

// Timeline converts a schedule into Gantt segments, inserting an idle segment for
// every gap where the CPU waits for the next arrival. The schedule must be in
// execution order, as returned by Schedule.
func Timeline(schedule []ScheduledProcess) []Segment {
	segments := make([]Segment, 0, len(schedule))
	clock := 0
	for _, sp := range schedule {
		if sp.StartTime > clock {
			segments = append(segments, Segment{Start: clock, End: sp.StartTime, Idle: true})
		}
		segments = append(segments, Segment{ProcessID: sp.ID, Start: sp.StartTime, End: sp.CompletionTime})
		clock = sp.CompletionTime
	}
	return segments
}

// RunningAt returns the ID of the process holding the CPU at time t, or "" when
// the CPU is idle or t is outside the schedule. Used when replaying a timeline.
func RunningAt(schedule []ScheduledProcess, t int) string {
	for _, sp := range schedule {
		if t >= sp.StartTime && t < sp.CompletionTime {
			return sp.ID
		}
	}
	return ""
}
