package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinancialData is a dated financial record, optionally tied to a project
type FinancialData struct {
	ID               int             `json:"id"`
	ProjectID        *int            `json:"project_id,omitempty"`
	FinanceType      string          `json:"finance_type"`
	FinanceCategory  string          `json:"finance_category"`
	FinanceDate      time.Time       `json:"finance_date"`
	SOWValue         decimal.Decimal `json:"sow_value"`
	RevenueGenerated decimal.Decimal `json:"revenue_generated"`
	ActualCostToDate decimal.Decimal `json:"actual_cost_to_date"`
	BillableCost     decimal.Decimal `json:"billable_cost"`
	NonBillableCost  decimal.Decimal `json:"non_billable_cost"`
	MonthlyBurn      decimal.Decimal `json:"monthly_burn"`
	HealthStatus     string          `json:"health_status"`
	Notes            *string         `json:"notes,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
