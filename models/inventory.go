package models

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type StockStatus string

const (
	StockAvailable  StockStatus = "available"
	StockLow        StockStatus = "low"
	StockOutOfStock StockStatus = "out_of_stock"
)

func (s StockStatus) Valid() bool {
	switch s {
	case StockAvailable, StockLow, StockOutOfStock:
		return true
	}
	return false
}

type InventoryItem struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Category string      `json:"category"`
	Status   StockStatus `json:"status"`
	// LastReportedBy holds the display name of whoever last changed the
	// status; it is free text, not a user reference.
	LastReportedBy string `json:"last_reported_by,omitempty"`
}

type OrderStatus string

const (
	OrderPending  OrderStatus = "pending"
	OrderOrdered  OrderStatus = "ordered"
	OrderReceived OrderStatus = "received"
)

type EquipmentOrder struct {
	ID            string      `json:"id"`
	ItemName      string      `json:"item_name"`
	Quantity      int         `json:"quantity"`
	Status        OrderStatus `json:"status"`
	Date          string      `json:"date"`
	PriceEstimate string      `json:"price_estimate,omitempty"`
}

func NewEquipmentOrder(itemName string, quantity int, priceEstimate, date string) (*EquipmentOrder, error) {
	if itemName == "" {
		return nil, errors.New("item name is required")
	}
	if quantity < 1 {
		return nil, errors.New("quantity must be at least 1")
	}

	return &EquipmentOrder{
		ID:            uuid.New().String(),
		ItemName:      itemName,
		Quantity:      quantity,
		Status:        OrderPending,
		Date:          date,
		PriceEstimate: priceEstimate,
	}, nil
}

// Advance moves the order one step forward: pending -> ordered -> received.
// Orders never move backwards.
func (o *EquipmentOrder) Advance(next OrderStatus) error {
	switch {
	case o.Status == OrderPending && next == OrderOrdered:
	case o.Status == OrderOrdered && next == OrderReceived:
	default:
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, next)
	}
	o.Status = next
	return nil
}

type ReportType string

const (
	ReportEmployeeIssue    ReportType = "employee_issue"
	ReportShortage         ReportType = "shortage"
	ReportTechnical        ReportType = "technical"
	ReportMonthlySummary   ReportType = "monthly_summary"
	ReportStaffingShortage ReportType = "staffing_shortage"
)

func (t ReportType) Valid() bool {
	switch t {
	case ReportEmployeeIssue, ReportShortage, ReportTechnical,
		ReportMonthlySummary, ReportStaffingShortage:
		return true
	}
	return false
}

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// IssueReport is a supervisor or manager report to the manager feed.
type IssueReport struct {
	ID          string     `json:"id"`
	ReportedBy  string     `json:"reported_by"`
	Type        ReportType `json:"type"`
	Description string     `json:"description"`
	Date        string     `json:"date"`
	// TargetName is the manually typed display name of the person the
	// report concerns. It is deliberately not a user reference.
	TargetName string   `json:"target_name,omitempty"`
	Severity   Severity `json:"severity"`
}

func NewIssueReport(reportedBy string, repType ReportType, description, date, targetName string, severity Severity) (*IssueReport, error) {
	if !repType.Valid() {
		return nil, fmt.Errorf("invalid report type %q", repType)
	}
	if description == "" {
		return nil, errors.New("report description is required")
	}
	if severity == "" {
		severity = SeverityMedium
	}

	return &IssueReport{
		ID:          uuid.New().String(),
		ReportedBy:  reportedBy,
		Type:        repType,
		Description: description,
		Date:        date,
		TargetName:  targetName,
		Severity:    severity,
	}, nil
}

// Critical reports surface on the manager dashboard: anything high severity
// plus every report kind that demands manager attention by type.
func (r *IssueReport) Critical() bool {
	if r.Severity == SeverityHigh {
		return true
	}
	switch r.Type {
	case ReportStaffingShortage, ReportShortage, ReportEmployeeIssue, ReportMonthlySummary:
		return true
	}
	return false
}
