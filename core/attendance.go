package core

import (
	"fmt"

	"WorkforceBackend/models"
	"WorkforceBackend/notify"
	"WorkforceBackend/store"
)

// Notice is a transient dashboard banner. TTLMillis tells the client how
// long to keep it on screen.
type Notice struct {
	Message   string `json:"message"`
	TTLMillis int64  `json:"ttl_ms"`
}

// ClockIn opens today's time entry for the caller. One entry per user per
// day: once an entry exists, open or closed, the self-service path refuses.
func (s *Service) ClockIn(userID string, loc *models.GeoPoint) (*models.TimeEntry, error) {
	now := s.clock.Now()
	var out *models.TimeEntry

	err := s.store.Update(func(st *store.AppState) error {
		u := st.UserByID(userID)
		if u == nil {
			return ErrNotFound
		}
		if st.EntryForDate(userID, dateOf(now)) != nil {
			return ErrAlreadyClockedIn
		}
		entry := models.NewTimeEntry(userID, dateOf(now), timeOf(now), loc)
		st.Entries = append(st.Entries, entry)
		snapshot := *entry
		out = &snapshot
		return nil
	})
	return out, err
}

// ClockOut closes the caller's open entry for today.
func (s *Service) ClockOut(userID string, loc *models.GeoPoint) (*models.TimeEntry, error) {
	now := s.clock.Now()
	var out *models.TimeEntry

	err := s.store.Update(func(st *store.AppState) error {
		u := st.UserByID(userID)
		if u == nil {
			return ErrNotFound
		}
		entry := st.OpenEntry(userID, dateOf(now))
		if entry == nil {
			return ErrNoOpenEntry
		}
		entry.ClockOut = timeOf(now)
		entry.ClockOutLocation = loc
		snapshot := *entry
		out = &snapshot
		return nil
	})
	return out, err
}

// StationClockIn is the dashboard clock action: the manager clocks any
// selected worker in by id. It refuses only while an entry is still open,
// so a worker can clock back in after a mid-day clock-out. The action lands
// in the clock feed and returns a short confirmation notice.
func (s *Service) StationClockIn(userID string, loc *models.GeoPoint) (*Notice, error) {
	now := s.clock.Now()
	var out *Notice

	err := s.store.Update(func(st *store.AppState) error {
		u := st.UserByID(userID)
		if u == nil {
			return ErrNotFound
		}
		if st.OpenEntry(u.ID, dateOf(now)) != nil {
			return ErrAlreadyClockedIn
		}
		entry := models.NewTimeEntry(u.ID, dateOf(now), timeOf(now), loc)
		st.Entries = append(st.Entries, entry)
		st.PushClockEvent(models.NewConnectionEvent(u, models.EventClockIn, stampOf(now), loc))
		out = &Notice{
			Message:   fmt.Sprintf("%s clocked in at %s", u.FullName(), timeOf(now)),
			TTLMillis: ClockNoticeTTL.Milliseconds(),
		}
		return nil
	})
	return out, err
}

// StationClockOut closes the selected worker's open entry from the
// dashboard.
func (s *Service) StationClockOut(userID string, loc *models.GeoPoint) (*Notice, error) {
	now := s.clock.Now()
	var out *Notice

	err := s.store.Update(func(st *store.AppState) error {
		u := st.UserByID(userID)
		if u == nil {
			return ErrNotFound
		}
		entry := st.OpenEntry(u.ID, dateOf(now))
		if entry == nil {
			return ErrNoOpenEntry
		}
		entry.ClockOut = timeOf(now)
		entry.ClockOutLocation = loc
		st.PushClockEvent(models.NewConnectionEvent(u, models.EventClockOut, stampOf(now), loc))
		out = &Notice{
			Message:   fmt.Sprintf("%s clocked out at %s", u.FullName(), timeOf(now)),
			TTLMillis: ClockNoticeTTL.Milliseconds(),
		}
		return nil
	})
	return out, err
}

// AttendanceLog returns every time entry for managers. Other roles get an
// empty log; their own entries come from MyEntries.
func (s *Service) AttendanceLog(userID string) ([]models.TimeEntry, error) {
	var out []models.TimeEntry
	var fail error

	s.store.View(func(st *store.AppState) {
		u := st.UserByID(userID)
		if u == nil {
			fail = ErrNotFound
			return
		}
		if u.Role != models.RoleManager {
			return
		}
		for _, e := range st.Entries {
			out = append(out, *e)
		}
	})
	return out, fail
}

// MyEntries returns the caller's own time entries.
func (s *Service) MyEntries(userID string) []models.TimeEntry {
	var out []models.TimeEntry
	s.store.View(func(st *store.AppState) {
		for _, e := range st.Entries {
			if e.UserID == userID {
				out = append(out, *e)
			}
		}
	})
	return out
}

// ClockEvents returns the station clock feed, most recent first.
func (s *Service) ClockEvents() []models.ConnectionEvent {
	var out []models.ConnectionEvent
	s.store.View(func(st *store.AppState) {
		out = append(out, st.ClockEvents...)
	})
	return out
}

// EmailAttendanceReport composes today's attendance summary and hands it to
// the notice recipient. Manager only.
func (s *Service) EmailAttendanceReport(managerID string) error {
	var fail error
	s.store.View(func(st *store.AppState) {
		u := st.UserByID(managerID)
		switch {
		case u == nil:
			fail = ErrNotFound
		case u.Role != models.RoleManager:
			fail = ErrNotPermitted
		}
	})
	if fail != nil {
		return fail
	}

	today := dateOf(s.clock.Now())
	entries, err := s.AttendanceLog(managerID)
	if err != nil {
		return err
	}

	var lines []string
	s.store.View(func(st *store.AppState) {
		for _, e := range entries {
			if e.Date != today {
				continue
			}
			name := e.UserID
			if u := st.UserByID(e.UserID); u != nil {
				name = u.FullName()
			}
			clockOut := e.ClockOut
			if clockOut == "" {
				clockOut = "still clocked in"
			}
			lines = append(lines, fmt.Sprintf("%s: %s - %s", name, e.ClockIn, clockOut))
		}
	})

	body := notify.AttendanceReportBody(today, lines)
	subject := "Attendance report " + today
	return s.composer.ComposeEmail(s.opts.NoticeRecipient, subject, body)
}
