package services

import "time"

// Log dates are calendar days; time of day is discarded at insert.
func dayStart(t time.Time) time.Time {
	tt := t.UTC()
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.UTC)
}

func today() time.Time { return dayStart(time.Now()) }
