package domain

import "time"

// RefreshKind classifies a RefreshEvent
type RefreshKind string

const (
	RefreshKindCreated       RefreshKind = "created"
	RefreshKindUpdated       RefreshKind = "updated"
	RefreshKindDeleted       RefreshKind = "deleted"
	RefreshKindPeriodChanged RefreshKind = "periodChanged"
	RefreshKindTick          RefreshKind = "tick"
)

// Entities whose writes are broadcast on the refresh bus
const (
	EntityResource      = "resource"
	EntityProject       = "project"
	EntityFinancialData = "financialData"
	EntityEscalation    = "escalation"
	EntityDashboard     = "dashboard"
)

// RefreshEvent is an ephemeral "something changed" notification. It is never persisted.
type RefreshEvent struct {
	Kind      RefreshKind `json:"kind"`
	Entity    string      `json:"entity"`
	Operation string      `json:"operation,omitempty"`
	Payload   any         `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}
