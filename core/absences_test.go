package core

import (
	"errors"
	"testing"

	"WorkforceBackend/models"
)

func TestRequestAndApproveAbsence(t *testing.T) {
	f := newFixture(t)

	req, err := f.svc.RequestAbsence(f.employee.ID, models.AbsenceVacation, "2025-03-12", "2025-03-14", "family trip")
	if err != nil {
		t.Fatalf("RequestAbsence: %v", err)
	}
	if req.Status != models.AbsencePending {
		t.Errorf("status = %s, want pending", req.Status)
	}

	decided, err := f.svc.DecideAbsence(f.manager.ID, req.ID, models.AbsenceApproved)
	if err != nil {
		t.Fatalf("DecideAbsence: %v", err)
	}
	if decided.Status != models.AbsenceApproved {
		t.Errorf("status = %s, want approved", decided.Status)
	}
}

func TestManagerCannotRequestAbsence(t *testing.T) {
	f := newFixture(t)

	if _, err := f.svc.RequestAbsence(f.manager.ID, models.AbsenceSick, "2025-03-12", "2025-03-12", ""); !errors.Is(err, ErrNotPermitted) {
		t.Errorf("err = %v, want ErrNotPermitted", err)
	}
}

func TestDecisionsAreTerminal(t *testing.T) {
	f := newFixture(t)

	req, _ := f.svc.RequestAbsence(f.employee.ID, models.AbsenceSick, "2025-03-12", "2025-03-12", "flu")
	if _, err := f.svc.DecideAbsence(f.manager.ID, req.ID, models.AbsenceRejected); err != nil {
		t.Fatalf("first decision: %v", err)
	}

	if _, err := f.svc.DecideAbsence(f.manager.ID, req.ID, models.AbsenceApproved); !errors.Is(err, models.ErrAlreadyDecided) {
		t.Errorf("re-decision err = %v, want ErrAlreadyDecided", err)
	}
}

func TestOnlyManagerDecides(t *testing.T) {
	f := newFixture(t)

	req, _ := f.svc.RequestAbsence(f.employee.ID, models.AbsenceOther, "2025-03-12", "2025-03-12", "")
	if _, err := f.svc.DecideAbsence(f.supervisor.ID, req.ID, models.AbsenceApproved); !errors.Is(err, ErrNotPermitted) {
		t.Errorf("err = %v, want ErrNotPermitted", err)
	}
}

func TestAbsenceDateValidation(t *testing.T) {
	f := newFixture(t)

	if _, err := f.svc.RequestAbsence(f.employee.ID, models.AbsenceVacation, "2025-03-14", "2025-03-12", ""); err == nil {
		t.Error("start after end accepted, want error")
	}
	if _, err := f.svc.RequestAbsence(f.employee.ID, models.AbsenceVacation, "", "2025-03-12", ""); err == nil {
		t.Error("missing start date accepted, want error")
	}
	if _, err := f.svc.RequestAbsence(f.employee.ID, "holiday", "2025-03-12", "2025-03-12", ""); err == nil {
		t.Error("unknown absence type accepted, want error")
	}
}

func TestVisibleAbsencesScopedByRole(t *testing.T) {
	f := newFixture(t)

	f.svc.RequestAbsence(f.employee.ID, models.AbsenceVacation, "2025-03-12", "2025-03-12", "")
	f.svc.RequestAbsence(f.supervisor.ID, models.AbsenceSick, "2025-03-13", "2025-03-13", "")

	mine, err := f.svc.VisibleAbsences(f.employee.ID)
	if err != nil {
		t.Fatalf("VisibleAbsences: %v", err)
	}
	if len(mine) != 1 || mine[0].UserID != f.employee.ID {
		t.Errorf("employee sees %+v, want only their own request", mine)
	}

	all, _ := f.svc.VisibleAbsences(f.manager.ID)
	if len(all) != 2 {
		t.Errorf("manager sees %d requests, want 2", len(all))
	}
}

func TestCurrentlyOnLeave(t *testing.T) {
	f := newFixture(t)

	covering, _ := f.svc.RequestAbsence(f.employee.ID, models.AbsenceVacation, "2025-03-09", "2025-03-11", "")
	f.svc.DecideAbsence(f.manager.ID, covering.ID, models.AbsenceApproved)

	// Approved but not covering today
	past, _ := f.svc.RequestAbsence(f.supervisor.ID, models.AbsenceSick, "2025-03-01", "2025-03-02", "")
	f.svc.DecideAbsence(f.manager.ID, past.ID, models.AbsenceApproved)

	onLeave := f.svc.CurrentlyOnLeave()
	if len(onLeave) != 1 || onLeave[0].ID != f.employee.ID {
		t.Errorf("on leave = %+v, want just the employee", onLeave)
	}
}
