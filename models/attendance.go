package models

import (
	"github.com/google/uuid"
)

// GeoPoint is a best-effort coordinate pair. Everywhere it appears it is
// optional: a missing location is a normal outcome, never an error.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// TimeEntry is one attendance record. Date is YYYY-MM-DD, clock times are
// HH:MM strings; an entry with no clock-out is "open".
type TimeEntry struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	Date             string    `json:"date"`
	ClockIn          string    `json:"clock_in"`
	ClockInLocation  *GeoPoint `json:"clock_in_location,omitempty"`
	ClockOut         string    `json:"clock_out,omitempty"`
	ClockOutLocation *GeoPoint `json:"clock_out_location,omitempty"`
}

func NewTimeEntry(userID, date, clockIn string, loc *GeoPoint) *TimeEntry {
	return &TimeEntry{
		ID:              uuid.New().String(),
		UserID:          userID,
		Date:            date,
		ClockIn:         clockIn,
		ClockInLocation: loc,
	}
}

func (e *TimeEntry) Open() bool {
	return e.ClockOut == ""
}

type Shift struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Position  string `json:"position"`
}

func NewShift(userID, date, startTime, endTime, position string) *Shift {
	return &Shift{
		ID:        uuid.New().String(),
		UserID:    userID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		Position:  position,
	}
}

type EventKind string

const (
	EventLogin    EventKind = "login"
	EventLogout   EventKind = "logout"
	EventClockIn  EventKind = "clock_in"
	EventClockOut EventKind = "clock_out"
)

// Rolling feed caps: session events and clock events keep only the most
// recent entries of their kind.
const (
	SessionFeedCap = 10
	ClockFeedCap   = 15
)

// ConnectionEvent is an audit entry for login/logout and station clock
// actions, kept most-recent-first in a capped feed.
type ConnectionEvent struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Kind      EventKind `json:"type"`
	Timestamp string    `json:"timestamp"`
	Location  *GeoPoint `json:"location,omitempty"`
}

func NewConnectionEvent(user *User, kind EventKind, timestamp string, loc *GeoPoint) ConnectionEvent {
	return ConnectionEvent{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		UserName:  user.FullName(),
		Kind:      kind,
		Timestamp: timestamp,
		Location:  loc,
	}
}
