package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type HeadcountSummary struct {
	Total    int `json:"total"`
	Billable int `json:"billable"`
	Bench    int `json:"bench"`
	Interns  int `json:"interns"`
}

type FinancialSummary struct {
	Revenue decimal.Decimal `json:"revenue"`
	Cost    decimal.Decimal `json:"cost"`
	Margin  decimal.Decimal `json:"margin"`
	// MarginPercent is Margin over Revenue, rounded to two places. Zero when there is no revenue.
	MarginPercent decimal.Decimal `json:"margin_percent"`
}

// DashboardSummary aggregates the KPI cards shown at the top of the dashboard
type DashboardSummary struct {
	Period           Period           `json:"period"`
	Headcount        HeadcountSummary `json:"headcount"`
	ProjectsByStatus map[string]int   `json:"projects_by_status"`
	OpenEscalations  int              `json:"open_escalations"`
	Financials       FinancialSummary `json:"financials"`
	GeneratedAt      time.Time        `json:"generated_at"`
}
