package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Resource is a staffable person: employee, contractor or intern
type Resource struct {
	ID                 int             `json:"id"`
	EmployeeID         string          `json:"employee_id"`
	FullName           string          `json:"full_name"`
	Email              string          `json:"email"`
	Designation        string          `json:"designation"`
	Department         string          `json:"department"`
	Location           string          `json:"location"`
	EmploymentType     string          `json:"employment_type"`
	PrimarySkills      []string        `json:"primary_skills"`
	BillableStatus     bool            `json:"billable_status"`
	CurrentBenchStatus bool            `json:"current_bench_status"`
	IsIntern           bool            `json:"is_intern"`
	MentorName         *string         `json:"mentor_name,omitempty"`
	ProjectName        *string         `json:"project_name,omitempty"`
	JoiningDate        *time.Time      `json:"joining_date,omitempty"`
	InternshipEndDate  *time.Time      `json:"internship_end_date,omitempty"`
	LastWorkingDay     *time.Time      `json:"last_working_day,omitempty"`
	MonthlySalaryCost  decimal.Decimal `json:"monthly_salary_cost"`
	BillingRate        decimal.Decimal `json:"billing_rate"`
	UtilizationRate    *float64        `json:"utilization_rate,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// ActiveIn reports whether the resource was on the payroll at some point of the period
func (r *Resource) ActiveIn(p Period) bool {
	if r.JoiningDate != nil && r.JoiningDate.After(p.End) {
		return false
	}
	if r.LastWorkingDay != nil && r.LastWorkingDay.Before(p.Start) {
		return false
	}
	return true
}
