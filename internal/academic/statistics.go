package academic

import "time"

// Statistics summarizes a generated week sequence
type Statistics struct {
	Total     int
	OddWeeks  int
	EvenWeeks int
	Start     time.Time
	End       time.Time
	// CurrentWeek is the number of the current week, 0 when today is outside the range
	CurrentWeek int
}

// HasCurrent reports whether one of the weeks is the current one
func (s Statistics) HasCurrent() bool {
	return s.CurrentWeek > 0
}

// Summarize counts weeks by parity and finds the covered date range
func Summarize(weeks []Week) Statistics {
	var stats Statistics
	for _, w := range weeks {
		stats.Total++
		switch w.Parity {
		case Odd:
			stats.OddWeeks++
		case Even:
			stats.EvenWeeks++
		}

		if stats.Start.IsZero() || w.Start.Before(stats.Start) {
			stats.Start = w.Start
		}
		if w.End.After(stats.End) {
			stats.End = w.End
		}
		if w.IsCurrent && stats.CurrentWeek == 0 {
			stats.CurrentWeek = w.Number
		}
	}
	return stats
}

// CurrentWeek returns the first week flagged current
func CurrentWeek(weeks []Week) (Week, bool) {
	for _, w := range weeks {
		if w.IsCurrent {
			return w, true
		}
	}
	return Week{}, false
}
