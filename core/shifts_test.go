package core

import (
	"errors"
	"testing"

	"WorkforceBackend/models"
)

func TestAssignShift(t *testing.T) {
	f := newFixture(t)

	shift, err := f.svc.AssignShift(f.manager.ID, f.employee.ID, "2025-03-11", "08:00", "16:00", "register")
	if err != nil {
		t.Fatalf("AssignShift: %v", err)
	}
	if shift.UserID != f.employee.ID || shift.Position != "register" {
		t.Errorf("shift = %+v", shift)
	}

	if _, err := f.svc.AssignShift(f.supervisor.ID, f.employee.ID, "2025-03-11", "08:00", "16:00", ""); !errors.Is(err, ErrNotPermitted) {
		t.Errorf("supervisor assign err = %v, want ErrNotPermitted", err)
	}
	if _, err := f.svc.AssignShift(f.manager.ID, f.manager.ID, "2025-03-11", "08:00", "16:00", ""); !errors.Is(err, ErrNotPermitted) {
		t.Errorf("manager on schedule err = %v, want ErrNotPermitted", err)
	}
	if _, err := f.svc.AssignShift(f.manager.ID, f.employee.ID, "2025-03-11", "16:00", "08:00", ""); err == nil {
		t.Error("shift ending before it starts accepted")
	}
}

func TestVisibleShiftsScopedByRole(t *testing.T) {
	f := newFixture(t)

	f.svc.AssignShift(f.manager.ID, f.employee.ID, "2025-03-11", "08:00", "16:00", "register")
	f.svc.AssignShift(f.manager.ID, f.supervisor.ID, "2025-03-11", "12:00", "20:00", "floor")

	mine, err := f.svc.VisibleShifts(f.employee.ID)
	if err != nil {
		t.Fatalf("VisibleShifts: %v", err)
	}
	if len(mine) != 1 || mine[0].UserID != f.employee.ID {
		t.Errorf("employee sees %+v, want only their own shift", mine)
	}

	roster, _ := f.svc.VisibleShifts(f.supervisor.ID)
	if len(roster) != 2 {
		t.Errorf("supervisor sees %d shifts, want 2", len(roster))
	}

	onDate := f.svc.ShiftsOn("2025-03-11")
	if len(onDate) != 2 {
		t.Errorf("ShiftsOn = %d shifts, want 2", len(onDate))
	}
	if len(f.svc.ShiftsOn("2025-03-12")) != 0 {
		t.Error("ShiftsOn returned shifts for an empty date")
	}
}

func TestDashboardStats(t *testing.T) {
	f := newFixture(t)

	f.svc.CreateTask(f.manager.ID, taskInput(f.employee.ID, "2025-03-10"))
	f.svc.CreateTask(f.supervisor.ID, taskInput(f.employee.ID, "2025-03-10"))
	f.svc.RequestAbsence(f.employee.ID, models.AbsenceVacation, "2025-03-12", "2025-03-12", "")
	f.svc.ClockIn(f.employee.ID, nil)
	f.svc.AssignShift(f.manager.ID, f.employee.ID, "2025-03-10", "08:00", "16:00", "")
	f.svc.CreateOrder("Gloves", 5, "")
	f.svc.CreateReport(f.supervisor.ID, models.ReportShortage, "gloves running out", "", models.SeverityHigh)

	stats, err := f.svc.DashboardStats(f.manager.ID)
	if err != nil {
		t.Fatalf("DashboardStats: %v", err)
	}
	want := DashboardStats{
		PendingTasks:    1,
		CreationQueue:   1,
		PendingAbsences: 1,
		ClockedInNow:    1,
		PendingOrders:   1,
		CriticalReports: 1,
		ShiftsToday:     1,
	}
	if *stats != want {
		t.Errorf("stats = %+v, want %+v", *stats, want)
	}

	if _, err := f.svc.DashboardStats(f.supervisor.ID); !errors.Is(err, ErrNotPermitted) {
		t.Errorf("supervisor err = %v, want ErrNotPermitted", err)
	}
}
