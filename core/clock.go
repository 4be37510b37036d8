package core

import "time"

// Clock supplies the current time. The production implementation wraps
// time.Now; tests substitute a fixed clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall clock.
func SystemClock() Clock { return systemClock{} }

// Date/time layouts used throughout: calendar dates, clock times and full
// stamps are plain strings so they compare and display without conversion.
const (
	DateLayout  = "2006-01-02"
	TimeLayout  = "15:04"
	StampLayout = "2006-01-02 15:04"
)

func dateOf(t time.Time) string  { return t.Format(DateLayout) }
func timeOf(t time.Time) string  { return t.Format(TimeLayout) }
func stampOf(t time.Time) string { return t.Format(StampLayout) }
