package core

import (
	"fmt"

	"WorkforceBackend/models"
	"WorkforceBackend/store"
)

// TaskInput carries the fields a caller supplies when creating a task.
type TaskInput struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	AssignedTo  string              `json:"assigned_to"`
	Priority    models.TaskPriority `json:"priority"`
	Proof       models.ProofType    `json:"proof_required"`
	DueDate     string              `json:"due_date"`
	Recurring   bool                `json:"is_recurring"`
}

// Task list filters. "today" and "future" cover the active feed partitioned
// by due date; completed and approval-queue tasks live in their own lists.
const (
	FilterToday           = "today"
	FilterFuture          = "future"
	FilterCompleted       = "completed"
	FilterPendingApproval = "pending_approval"
	FilterAll             = "all"
)

// CreateTask creates a task on behalf of the creator. Managers create
// directly into pending; supervisors with the assignment grant create into
// the manager approval queue; everyone else is refused.
func (s *Service) CreateTask(creatorID string, in TaskInput) (*models.Task, error) {
	now := s.clock.Now()
	var out *models.Task

	err := s.store.Update(func(st *store.AppState) error {
		creator := st.UserByID(creatorID)
		if creator == nil {
			return ErrNotFound
		}

		var status models.TaskStatus
		switch creator.Role {
		case models.RoleManager:
			status = models.TaskPending
		case models.RoleSupervisor:
			if !creator.CanAssignTasks {
				return ErrNotPermitted
			}
			status = models.TaskPendingManagerApproval
		default:
			return ErrNotPermitted
		}

		if st.UserByID(in.AssignedTo) == nil {
			return ErrNotFound
		}

		task, err := models.NewTask(in.Title, in.Description, in.AssignedTo, creatorID,
			status, in.Priority, in.Proof, in.DueDate, in.Recurring, now)
		if err != nil {
			return err
		}
		st.Tasks = append(st.Tasks, task)
		snapshot := *task
		out = &snapshot
		return nil
	})
	return out, err
}

// SubmitTask turns in the assignee's work. Tasks that demand proof refuse
// submission without a proof URL; the completion location and timestamp are
// recorded alongside.
func (s *Service) SubmitTask(userID, taskID, proofURL string, loc *models.GeoPoint) (*models.Task, error) {
	now := s.clock.Now()
	var out *models.Task

	err := s.store.Update(func(st *store.AppState) error {
		task := st.TaskByID(taskID)
		if task == nil {
			return ErrNotFound
		}
		if task.AssignedTo != userID {
			return ErrNotPermitted
		}
		if task.ProofRequired != models.ProofNone && proofURL == "" {
			return ErrProofRequired
		}
		if err := task.Transition(models.TaskSubmitted); err != nil {
			return err
		}
		task.ProofURL = proofURL
		task.CompletionLocation = loc
		task.CompletionTimestamp = stampOf(now)
		snapshot := *task
		out = &snapshot
		return nil
	})
	return out, err
}

// ApproveTask accepts a submitted task. Manager only.
func (s *Service) ApproveTask(managerID, taskID string) (*models.Task, error) {
	return s.reviewTask(managerID, taskID, models.TaskSubmitted, models.TaskCompleted)
}

// RejectTask sends a submitted task back to pending. The proof and
// completion details stay on the task as a record of the rejected attempt.
func (s *Service) RejectTask(managerID, taskID string) (*models.Task, error) {
	return s.reviewTask(managerID, taskID, models.TaskSubmitted, models.TaskPending)
}

// ApproveCreation releases a supervisor-created task from the approval
// queue into pending. There is no rejection path; unwanted queued tasks
// simply stay queued.
func (s *Service) ApproveCreation(managerID, taskID string) (*models.Task, error) {
	return s.reviewTask(managerID, taskID, models.TaskPendingManagerApproval, models.TaskPending)
}

// reviewTask applies one manager decision. Each review path accepts
// exactly one source status; without the check, reject on a queued task
// would perform the approve-creation move, since both land on pending.
func (s *Service) reviewTask(managerID, taskID string, from, next models.TaskStatus) (*models.Task, error) {
	var out *models.Task

	err := s.store.Update(func(st *store.AppState) error {
		reviewer := st.UserByID(managerID)
		if reviewer == nil {
			return ErrNotFound
		}
		if reviewer.Role != models.RoleManager {
			return ErrNotPermitted
		}
		task := st.TaskByID(taskID)
		if task == nil {
			return ErrNotFound
		}
		if task.Status != from {
			return fmt.Errorf("%w: %s -> %s", models.ErrInvalidTransition, task.Status, next)
		}
		if err := task.Transition(next); err != nil {
			return err
		}
		snapshot := *task
		out = &snapshot
		return nil
	})
	return out, err
}

// VisibleTasks returns the tasks the user may see: managers everything,
// supervisors what they created or were assigned, employees only their own
// assignments.
func (s *Service) VisibleTasks(userID string) ([]models.Task, error) {
	var out []models.Task
	var fail error

	s.store.View(func(st *store.AppState) {
		u := st.UserByID(userID)
		if u == nil {
			fail = ErrNotFound
			return
		}
		for _, t := range st.Tasks {
			switch u.Role {
			case models.RoleManager:
			case models.RoleSupervisor:
				if t.CreatedBy != userID && t.AssignedTo != userID {
					continue
				}
			default:
				if t.AssignedTo != userID {
					continue
				}
			}
			out = append(out, *t)
		}
	})
	return out, fail
}

// FilterTasks narrows the user's visible tasks to one feed.
func (s *Service) FilterTasks(userID, filter string) ([]models.Task, error) {
	tasks, err := s.VisibleTasks(userID)
	if err != nil {
		return nil, err
	}
	if filter == FilterAll || filter == "" {
		return tasks, nil
	}

	today := dateOf(s.clock.Now())
	var out []models.Task
	for _, t := range tasks {
		switch filter {
		case FilterToday:
			if t.InDatedFeed() && t.DueDate == today {
				out = append(out, t)
			}
		case FilterFuture:
			if t.InDatedFeed() && t.DueDate > today {
				out = append(out, t)
			}
		case FilterCompleted:
			if t.Status == models.TaskCompleted {
				out = append(out, t)
			}
		case FilterPendingApproval:
			if t.Status == models.TaskPendingManagerApproval {
				out = append(out, t)
			}
		}
	}
	return out, nil
}
