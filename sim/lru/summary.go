package lru

// Summary holds the totals of a simulation run.
type Summary struct {
	References int     `json:"references"`
	Faults     int     `json:"faults"`
	Hits       int     `json:"hits"`
	Evictions  int     `json:"evictions"`
	HitRatio   float64 `json:"hit_ratio"`
	FaultRatio float64 `json:"fault_ratio"`
}

// Summarize reduces a Step sequence. Faults + Hits always equals len(steps).
func Summarize(steps []Step) Summary {
	summary := Summary{References: len(steps)}
	for _, s := range steps {
		if s.Fault {
			summary.Faults++
		} else {
			summary.Hits++
		}
		if s.EvictedPage != nil {
			summary.Evictions++
		}
	}
	if len(steps) > 0 {
		summary.HitRatio = float64(summary.Hits) / float64(len(steps))
		summary.FaultRatio = float64(summary.Faults) / float64(len(steps))
	}
	return summary
}
