package domain

import "time"

const (
	EscalationStatusOpen     = "Open"
	EscalationStatusResolved = "Resolved"
	EscalationStatusClosed   = "Closed"
)

type Escalation struct {
	ID               int        `json:"id"`
	Title            string     `json:"title"`
	Customer         string     `json:"customer"`
	Project          string     `json:"project"`
	ProjectID        *int       `json:"project_id,omitempty"`
	Owner            string     `json:"owner"`
	Priority         string     `json:"priority"`
	Status           string     `json:"status"`
	Severity         string     `json:"severity"`
	RiskLevel        string     `json:"risk_level"`
	Description      *string    `json:"description,omitempty"`
	EscalationDate   time.Time  `json:"escalation_date"`
	ResolutionDate   *time.Time `json:"resolution_date,omitempty"`
	ResolutionStatus *string    `json:"resolution_status,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// IsOpen reports whether the escalation still needs attention
func (e *Escalation) IsOpen() bool {
	return e.Status != EscalationStatusResolved && e.Status != EscalationStatusClosed
}
