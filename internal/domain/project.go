package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project status values used by the dashboard health cards
const (
	ProjectStatusOnTrack  = "On Track"
	ProjectStatusAtRisk   = "At Risk"
	ProjectStatusCritical = "Critical"
	ProjectStatusDelayed  = "Delayed"
)

type Project struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Description  *string         `json:"description,omitempty"`
	Customer     string          `json:"customer"`
	Category     string          `json:"category"`
	Status       string          `json:"status"`
	Progress     int             `json:"progress"`
	TeamLead     string          `json:"team_lead"`
	Priority     string          `json:"priority"`
	ProjectType  string          `json:"project_type"`
	HealthStatus string          `json:"health_status"`
	Budget       decimal.Decimal `json:"budget"`
	StartDate    *time.Time      `json:"start_date,omitempty"`
	EndDate      *time.Time      `json:"end_date,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ValidProjectStatus reports whether status is one of the known project statuses
func ValidProjectStatus(status string) bool {
	switch status {
	case ProjectStatusOnTrack, ProjectStatusAtRisk, ProjectStatusCritical, ProjectStatusDelayed:
		return true
	}
	return false
}
