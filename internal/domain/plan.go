package domain

import "time"

// Milestone status values
const (
	MilestoneStatusPlanned    = "Planned"
	MilestoneStatusInProgress = "In Progress"
	MilestoneStatusCompleted  = "Completed"
	MilestoneStatusDelayed    = "Delayed"
)

// Risk status values
const (
	RiskStatusOpen      = "Open"
	RiskStatusMitigated = "Mitigated"
	RiskStatusClosed    = "Closed"
)

type Milestone struct {
	ID             int        `json:"id"`
	ProjectID      int        `json:"project_id"`
	Name           string     `json:"name"`
	MilestoneType  string     `json:"milestone_type"`
	Owner          string     `json:"owner"`
	Status         string     `json:"status"`
	Progress       int        `json:"progress"`
	RiskLevel      string     `json:"risk_level"`
	DueDate        *time.Time `json:"due_date,omitempty"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type Risk struct {
	ID             int        `json:"id"`
	ProjectID      int        `json:"project_id"`
	Issue          string     `json:"issue"`
	RiskType       string     `json:"risk_type"`
	Owner          string     `json:"owner"`
	Priority       string     `json:"priority"`
	Status         string     `json:"status"`
	RiskLevel      string     `json:"risk_level"`
	Impact         string     `json:"impact"`
	Probability    string     `json:"probability"`
	MitigationPlan *string    `json:"mitigation_plan,omitempty"`
	RiskDate       *time.Time `json:"risk_date,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func ValidMilestoneStatus(status string) bool {
	switch status {
	case MilestoneStatusPlanned, MilestoneStatusInProgress, MilestoneStatusCompleted, MilestoneStatusDelayed:
		return true
	}
	return false
}

func ValidRiskStatus(status string) bool {
	switch status {
	case RiskStatusOpen, RiskStatusMitigated, RiskStatusClosed:
		return true
	}
	return false
}
