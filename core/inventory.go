package core

import (
	"WorkforceBackend/models"
	"WorkforceBackend/notify"
	"WorkforceBackend/store"
)

// ListInventory returns every inventory item.
func (s *Service) ListInventory() []models.InventoryItem {
	var out []models.InventoryItem
	s.store.View(func(st *store.AppState) {
		for _, it := range st.Inventory {
			out = append(out, *it)
		}
	})
	return out
}

// ReportInventoryStatus records a stock status change, stamping the item
// with the reporter's name and the time. Reporting an item out of stock
// also composes a shortage email and returns a dashboard notice.
func (s *Service) ReportInventoryStatus(userID, itemID string, status models.StockStatus) (*models.InventoryItem, *Notice, error) {
	if !status.Valid() {
		return nil, nil, models.ErrInvalidTransition
	}
	now := s.clock.Now()
	var out *models.InventoryItem
	var notice *Notice
	var reporter string

	err := s.store.Update(func(st *store.AppState) error {
		u := st.UserByID(userID)
		if u == nil {
			return ErrNotFound
		}
		item := st.ItemByID(itemID)
		if item == nil {
			return ErrNotFound
		}

		reporter = u.FullName()
		item.Status = status
		item.LastReportedBy = reporter + " (" + stampOf(now) + ")"

		if status == models.StockOutOfStock {
			notice = &Notice{
				Message:   "Shortage reported: " + item.Name,
				TTLMillis: ShortageNoticeTTL.Milliseconds(),
			}
		}
		snapshot := *item
		out = &snapshot
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	if notice != nil {
		body := notify.ShortageReportBody(out.Name, string(status), reporter, dateOf(now))
		if mailErr := s.composer.ComposeEmail(s.opts.NoticeRecipient, "Equipment shortage: "+out.Name, body); mailErr != nil {
			return out, notice, mailErr
		}
	}
	return out, notice, nil
}

// CreateOrder opens a pending equipment order.
func (s *Service) CreateOrder(itemName string, quantity int, priceEstimate string) (*models.EquipmentOrder, error) {
	now := s.clock.Now()
	var out *models.EquipmentOrder

	err := s.store.Update(func(st *store.AppState) error {
		order, err := models.NewEquipmentOrder(itemName, quantity, priceEstimate, dateOf(now))
		if err != nil {
			return err
		}
		st.Orders = append(st.Orders, order)
		snapshot := *order
		out = &snapshot
		return nil
	})
	return out, err
}

// AdvanceOrder moves an order one step forward in its lifecycle.
func (s *Service) AdvanceOrder(orderID string, next models.OrderStatus) (*models.EquipmentOrder, error) {
	var out *models.EquipmentOrder

	err := s.store.Update(func(st *store.AppState) error {
		order := st.OrderByID(orderID)
		if order == nil {
			return ErrNotFound
		}
		if err := order.Advance(next); err != nil {
			return err
		}
		snapshot := *order
		out = &snapshot
		return nil
	})
	return out, err
}

// ListOrders returns every equipment order.
func (s *Service) ListOrders() []models.EquipmentOrder {
	var out []models.EquipmentOrder
	s.store.View(func(st *store.AppState) {
		for _, o := range st.Orders {
			out = append(out, *o)
		}
	})
	return out
}

// CreateReport files an issue report from the caller.
func (s *Service) CreateReport(userID string, repType models.ReportType, description, targetName string, severity models.Severity) (*models.IssueReport, error) {
	now := s.clock.Now()
	var out *models.IssueReport

	err := s.store.Update(func(st *store.AppState) error {
		u := st.UserByID(userID)
		if u == nil {
			return ErrNotFound
		}
		report, err := models.NewIssueReport(userID, repType, description, dateOf(now), targetName, severity)
		if err != nil {
			return err
		}
		st.Reports = append(st.Reports, report)
		snapshot := *report
		out = &snapshot
		return nil
	})
	return out, err
}

// ListReports returns the manager's full feed, or just the caller's own
// reports for other roles.
func (s *Service) ListReports(userID string) ([]models.IssueReport, error) {
	var out []models.IssueReport
	var fail error

	s.store.View(func(st *store.AppState) {
		u := st.UserByID(userID)
		if u == nil {
			fail = ErrNotFound
			return
		}
		for _, r := range st.Reports {
			if u.Role != models.RoleManager && r.ReportedBy != userID {
				continue
			}
			out = append(out, *r)
		}
	})
	return out, fail
}

// CriticalReports returns the reports the manager dashboard highlights.
func (s *Service) CriticalReports() []models.IssueReport {
	var out []models.IssueReport
	s.store.View(func(st *store.AppState) {
		for _, r := range st.Reports {
			if r.Critical() {
				out = append(out, *r)
			}
		}
	})
	return out
}
