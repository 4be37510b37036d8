package core

import (
	"WorkforceBackend/models"
	"WorkforceBackend/store"
)

// DashboardStats is the manager landing-page summary.
type DashboardStats struct {
	PendingTasks    int `json:"pending_tasks"`
	SubmittedTasks  int `json:"submitted_tasks"`
	CreationQueue   int `json:"creation_queue"`
	PendingAbsences int `json:"pending_absences"`
	ClockedInNow    int `json:"clocked_in_now"`
	OnLeaveToday    int `json:"on_leave_today"`
	ShortItems      int `json:"short_items"`
	PendingOrders   int `json:"pending_orders"`
	CriticalReports int `json:"critical_reports"`
	ShiftsToday     int `json:"shifts_today"`
}

// DashboardStats aggregates the counters the manager dashboard shows.
// Manager only.
func (s *Service) DashboardStats(managerID string) (*DashboardStats, error) {
	today := dateOf(s.clock.Now())
	var out *DashboardStats
	var fail error

	s.store.View(func(st *store.AppState) {
		u := st.UserByID(managerID)
		if u == nil {
			fail = ErrNotFound
			return
		}
		if u.Role != models.RoleManager {
			fail = ErrNotPermitted
			return
		}

		stats := &DashboardStats{}
		for _, t := range st.Tasks {
			switch t.Status {
			case models.TaskPending, models.TaskInProgress:
				stats.PendingTasks++
			case models.TaskSubmitted:
				stats.SubmittedTasks++
			case models.TaskPendingManagerApproval:
				stats.CreationQueue++
			}
		}
		for _, a := range st.Absences {
			if a.Status == models.AbsencePending {
				stats.PendingAbsences++
			}
		}
		onLeave := make(map[string]bool)
		for _, a := range st.Absences {
			if a.Status == models.AbsenceApproved && a.Covers(today) {
				onLeave[a.UserID] = true
			}
		}
		stats.OnLeaveToday = len(onLeave)
		for _, e := range st.Entries {
			if e.Date == today && e.Open() {
				stats.ClockedInNow++
			}
		}
		for _, it := range st.Inventory {
			if it.Status == models.StockLow || it.Status == models.StockOutOfStock {
				stats.ShortItems++
			}
		}
		for _, o := range st.Orders {
			if o.Status == models.OrderPending {
				stats.PendingOrders++
			}
		}
		for _, r := range st.Reports {
			if r.Critical() {
				stats.CriticalReports++
			}
		}
		for _, sh := range st.Shifts {
			if sh.Date == today {
				stats.ShiftsToday++
			}
		}
		out = stats
	})
	return out, fail
}
