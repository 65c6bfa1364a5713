package handler

import (
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/workforce-dashboard-api/internal/domain"
	"github.com/vfg2006/workforce-dashboard-api/internal/usecases/financing"
	"github.com/vfg2006/workforce-dashboard-api/pkg/apiErrors"
)

type FinancialDataRequest struct {
	ProjectID        *int            `json:"project_id"`
	FinanceType      string          `json:"finance_type"`
	FinanceCategory  string          `json:"finance_category"`
	FinanceDate      string          `json:"finance_date"`
	SOWValue         decimal.Decimal `json:"sow_value"`
	RevenueGenerated decimal.Decimal `json:"revenue_generated"`
	ActualCostToDate decimal.Decimal `json:"actual_cost_to_date"`
	BillableCost     decimal.Decimal `json:"billable_cost"`
	NonBillableCost  decimal.Decimal `json:"non_billable_cost"`
	MonthlyBurn      decimal.Decimal `json:"monthly_burn"`
	HealthStatus     string          `json:"health_status"`
	Notes            *string         `json:"notes"`
}

func (req FinancialDataRequest) toDomain(id int) (*domain.FinancialData, error) {
	dates := &dateFields{}
	data := &domain.FinancialData{
		ID:               id,
		ProjectID:        req.ProjectID,
		FinanceType:      req.FinanceType,
		FinanceCategory:  req.FinanceCategory,
		FinanceDate:      dates.required("finance_date", req.FinanceDate),
		SOWValue:         req.SOWValue,
		RevenueGenerated: req.RevenueGenerated,
		ActualCostToDate: req.ActualCostToDate,
		BillableCost:     req.BillableCost,
		NonBillableCost:  req.NonBillableCost,
		MonthlyBurn:      req.MonthlyBurn,
		HealthStatus:     req.HealthStatus,
		Notes:            req.Notes,
	}
	return data, dates.err()
}

func ListFinancialData(service financing.FinancialService, periods PeriodProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		period, err := requestPeriod(r, periods)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		var projectID *int
		if raw := r.URL.Query().Get("project_id"); raw != "" {
			id, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid project_id", nil)
				return
			}
			projectID = &id
		}

		data, err := service.ListFinancialData(r.Context(), period, projectID)
		if err != nil {
			writeServiceError(w, r, err, "error listing financial data")
			return
		}

		writeJSON(w, r, http.StatusOK, data)
	})
}

func GetFinancialData(service financing.FinancialService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid financial data id", nil)
			return
		}

		data, err := service.GetFinancialData(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "error fetching financial data")
			return
		}

		writeJSON(w, r, http.StatusOK, data)
	})
}

func CreateFinancialData(service financing.FinancialService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req FinancialDataRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body: "+err.Error(), nil)
			return
		}

		data, err := req.toDomain(0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		created, err := service.CreateFinancialData(r.Context(), data)
		if err != nil {
			writeServiceError(w, r, err, "error creating financial data")
			return
		}

		writeJSON(w, r, http.StatusCreated, created)
	})
}

func UpdateFinancialData(service financing.FinancialService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid financial data id", nil)
			return
		}

		var req FinancialDataRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body: "+err.Error(), nil)
			return
		}

		data, err := req.toDomain(id)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		updated, err := service.UpdateFinancialData(r.Context(), data)
		if err != nil {
			writeServiceError(w, r, err, "error updating financial data")
			return
		}

		writeJSON(w, r, http.StatusOK, updated)
	})
}

func DeleteFinancialData(service financing.FinancialService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid financial data id", nil)
			return
		}

		if err := service.DeleteFinancialData(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "error deleting financial data")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
