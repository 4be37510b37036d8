package store

import (
	"time"

	"github.com/rs/zerolog/log"

	"WorkforceBackend/models"
)

// Seed loads the demo dataset: one account per role, a handful of tasks for
// the employee due today, and a starter inventory. It is meant for a fresh
// store; calling it twice duplicates the data.
func (s *Store) Seed(now time.Time) error {
	today := now.Format("2006-01-02")

	return s.Update(func(st *AppState) error {
		manager, err := models.NewUser("Dana", "Peretz", "123456789", "0501112222", "dana@bt.local", "1234", models.RoleManager, now)
		if err != nil {
			return err
		}
		manager.Onboarded = true
		manager.PasswordChanged = true

		supervisor, err := models.NewUser("Avi", "Cohen", "987654321", "0523334444", "avi@bt.local", "2222", models.RoleSupervisor, now)
		if err != nil {
			return err
		}
		supervisor.Onboarded = true
		supervisor.PasswordChanged = true

		employee, err := models.NewUser("Noa", "Levi", "556677889", "0545556666", "noa@bt.local", "3333", models.RoleEmployee, now)
		if err != nil {
			return err
		}
		employee.Onboarded = true

		st.Users = append(st.Users, manager, supervisor, employee)

		seedTasks := []struct {
			title, description string
			priority           models.TaskPriority
			proof              models.ProofType
		}{
			{"Open the front register", "Count the float and log the opening balance", models.PriorityHigh, models.ProofPhoto},
			{"Restock shelf displays", "Refill from the back room, front-facing labels", models.PriorityMedium, models.ProofNone},
			{"Clean the break area", "Wipe surfaces and empty the bins", models.PriorityLow, models.ProofPhoto},
		}
		for _, t := range seedTasks {
			task, err := models.NewTask(t.title, t.description, employee.ID, manager.ID,
				models.TaskPending, t.priority, t.proof, today, false, now)
			if err != nil {
				return err
			}
			st.Tasks = append(st.Tasks, task)
		}

		st.Inventory = append(st.Inventory,
			&models.InventoryItem{ID: "inv-register-rolls", Name: "Register paper rolls", Category: "supplies", Status: models.StockAvailable},
			&models.InventoryItem{ID: "inv-cleaning-kit", Name: "Cleaning kit", Category: "maintenance", Status: models.StockLow},
			&models.InventoryItem{ID: "inv-price-labels", Name: "Price label sheets", Category: "supplies", Status: models.StockAvailable},
		)

		log.Info().
			Int("users", len(st.Users)).
			Int("tasks", len(st.Tasks)).
			Int("inventory", len(st.Inventory)).
			Msg("seeded demo data")
		return nil
	})
}
