package utils

import "time"

// Stats for performance monitoring of a stabilization run
type Stats struct {
	RoundsPerSecond float64
	AverageRemoved  float64
	TotalRounds     int
	TotalRemoved    int
	StartTime       time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(round, removed int, duration time.Duration) {
	s.TotalRounds = round
	s.TotalRemoved += removed
	if duration > 0 {
		s.RoundsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for removals per round
	if s.AverageRemoved == 0 {
		s.AverageRemoved = float64(removed)
	} else {
		s.AverageRemoved = (s.AverageRemoved * 0.9) + (float64(removed) * 0.1)
	}
}
