package models

import (
	"errors"
	"testing"
	"time"
)

func newPendingTask(t *testing.T, status TaskStatus) *Task {
	t.Helper()
	task, err := NewTask("Open register", "", "emp-1", "mgr-1", status, "", "", "2025-03-10", false, time.Now())
	if err != nil {
		t.Fatalf("NewTask: %v", err)
	}
	return task
}

func TestTaskTransitions(t *testing.T) {
	cases := []struct {
		name string
		from TaskStatus
		to   TaskStatus
		ok   bool
	}{
		{"submit from pending", TaskPending, TaskSubmitted, true},
		{"submit from in_progress", TaskInProgress, TaskSubmitted, true},
		{"approve submission", TaskSubmitted, TaskCompleted, true},
		{"reject submission", TaskSubmitted, TaskPending, true},
		{"release queued task", TaskPendingManagerApproval, TaskPending, true},
		{"complete without submission", TaskPending, TaskCompleted, false},
		{"submit a queued task", TaskPendingManagerApproval, TaskSubmitted, false},
		{"reopen completed", TaskCompleted, TaskPending, false},
		{"resubmit completed", TaskCompleted, TaskSubmitted, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			task := newPendingTask(t, tc.from)
			err := task.Transition(tc.to)
			if tc.ok && err != nil {
				t.Fatalf("transition %s -> %s: %v", tc.from, tc.to, err)
			}
			if !tc.ok {
				if !errors.Is(err, ErrInvalidTransition) {
					t.Fatalf("err = %v, want ErrInvalidTransition", err)
				}
				if task.Status != tc.from {
					t.Errorf("status mutated on refused transition: %s", task.Status)
				}
			}
		})
	}
}

func TestInDatedFeed(t *testing.T) {
	for status, want := range map[TaskStatus]bool{
		TaskPending:                true,
		TaskInProgress:             true,
		TaskSubmitted:              true,
		TaskCompleted:              false,
		TaskPendingManagerApproval: false,
	} {
		task := newPendingTask(t, status)
		if got := task.InDatedFeed(); got != want {
			t.Errorf("InDatedFeed(%s) = %v, want %v", status, got, want)
		}
	}
}

func TestNewTaskDefaults(t *testing.T) {
	task := newPendingTask(t, TaskPending)
	if task.Priority != PriorityMedium {
		t.Errorf("priority = %s, want medium default", task.Priority)
	}
	if task.ProofRequired != ProofNone {
		t.Errorf("proof = %s, want none default", task.ProofRequired)
	}

	if _, err := NewTask("", "", "emp-1", "mgr-1", TaskPending, "", "", "", false, time.Now()); err == nil {
		t.Error("empty title accepted")
	}
	if _, err := NewTask("Open register", "", "", "mgr-1", TaskPending, "", "", "", false, time.Now()); err == nil {
		t.Error("unassigned task accepted")
	}
}
