package store

import (
	"sync"

	"WorkforceBackend/models"
)

// AppState is the whole application dataset. Everything lives in memory and
// is only reachable through a Store, which owns the locking.
type AppState struct {
	Users     []*models.User
	Tasks     []*models.Task
	Shifts    []*models.Shift
	Absences  []*models.AbsenceRequest
	Entries   []*models.TimeEntry
	Inventory []*models.InventoryItem
	Orders    []*models.EquipmentOrder
	Reports   []*models.IssueReport

	// SessionEvents holds login/logout audit entries, ClockEvents holds
	// station clock actions. Both are most-recent-first and capped.
	SessionEvents []models.ConnectionEvent
	ClockEvents   []models.ConnectionEvent
}

// Store guards AppState behind a single RWMutex. Compound operations run
// inside one Update call so readers never observe a half-applied change.
type Store struct {
	mu    sync.RWMutex
	state AppState
}

func New() *Store {
	return &Store{}
}

// Update runs fn with exclusive access to the state. If fn returns an error
// the error is passed through; fn must not retain pointers into the state
// beyond the call.
func (s *Store) Update(fn func(*AppState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.state)
}

// View runs fn with shared read access. fn must not mutate the state.
func (s *Store) View(fn func(*AppState)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.state)
}

// UserByID returns the user with the given id, or nil.
func (st *AppState) UserByID(id string) *models.User {
	for _, u := range st.Users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// UserByIdentifier finds the first non-manager user whose phone or identity
// number matches. Manager accounts are unreachable through this lookup.
func (st *AppState) UserByIdentifier(identifier string) *models.User {
	for _, u := range st.Users {
		if u.Role == models.RoleManager {
			continue
		}
		if u.Phone == identifier || u.TZ == identifier {
			return u
		}
	}
	return nil
}

// FirstManager returns the first manager account in creation order, or nil.
func (st *AppState) FirstManager() *models.User {
	for _, u := range st.Users {
		if u.Role == models.RoleManager {
			return u
		}
	}
	return nil
}

// OpenEntry returns the user's open time entry for the date, or nil. The
// clock rules guarantee at most one exists.
func (st *AppState) OpenEntry(userID, date string) *models.TimeEntry {
	for _, e := range st.Entries {
		if e.UserID == userID && e.Date == date && e.Open() {
			return e
		}
	}
	return nil
}

// EntryForDate returns any of the user's entries for the date, open or not.
func (st *AppState) EntryForDate(userID, date string) *models.TimeEntry {
	for _, e := range st.Entries {
		if e.UserID == userID && e.Date == date {
			return e
		}
	}
	return nil
}

// TaskByID returns the task with the given id, or nil.
func (st *AppState) TaskByID(id string) *models.Task {
	for _, t := range st.Tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// AbsenceByID returns the absence request with the given id, or nil.
func (st *AppState) AbsenceByID(id string) *models.AbsenceRequest {
	for _, a := range st.Absences {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// OrderByID returns the equipment order with the given id, or nil.
func (st *AppState) OrderByID(id string) *models.EquipmentOrder {
	for _, o := range st.Orders {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// ItemByID returns the inventory item with the given id, or nil.
func (st *AppState) ItemByID(id string) *models.InventoryItem {
	for _, it := range st.Inventory {
		if it.ID == id {
			return it
		}
	}
	return nil
}

// PushSessionEvent prepends a login/logout event and trims the feed to its
// cap, dropping the oldest entries.
func (st *AppState) PushSessionEvent(ev models.ConnectionEvent) {
	st.SessionEvents = pushCapped(st.SessionEvents, ev, models.SessionFeedCap)
}

// PushClockEvent prepends a station clock event and trims the feed to its cap.
func (st *AppState) PushClockEvent(ev models.ConnectionEvent) {
	st.ClockEvents = pushCapped(st.ClockEvents, ev, models.ClockFeedCap)
}

func pushCapped(feed []models.ConnectionEvent, ev models.ConnectionEvent, limit int) []models.ConnectionEvent {
	feed = append([]models.ConnectionEvent{ev}, feed...)
	if len(feed) > limit {
		feed = feed[:limit]
	}
	return feed
}
