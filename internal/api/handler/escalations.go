package handler

import (
	"net/http"

	"github.com/vfg2006/workforce-dashboard-api/internal/domain"
	"github.com/vfg2006/workforce-dashboard-api/internal/usecases/escalating"
	"github.com/vfg2006/workforce-dashboard-api/pkg/apiErrors"
)

type EscalationRequest struct {
	Title            string  `json:"title"`
	Customer         string  `json:"customer"`
	Project          string  `json:"project"`
	ProjectID        *int    `json:"project_id"`
	Owner            string  `json:"owner"`
	Priority         string  `json:"priority"`
	Status           string  `json:"status"`
	Severity         string  `json:"severity"`
	RiskLevel        string  `json:"risk_level"`
	Description      *string `json:"description"`
	EscalationDate   string  `json:"escalation_date"`
	ResolutionDate   string  `json:"resolution_date"`
	ResolutionStatus *string `json:"resolution_status"`
}

// toDomain leaves EscalationDate zero when absent so the usecase can default it
func (req EscalationRequest) toDomain(id int) (*domain.Escalation, error) {
	dates := &dateFields{}
	escalation := &domain.Escalation{
		ID:               id,
		Title:            req.Title,
		Customer:         req.Customer,
		Project:          req.Project,
		ProjectID:        req.ProjectID,
		Owner:            req.Owner,
		Priority:         req.Priority,
		Status:           req.Status,
		Severity:         req.Severity,
		RiskLevel:        req.RiskLevel,
		Description:      req.Description,
		EscalationDate:   dates.required("escalation_date", req.EscalationDate),
		ResolutionDate:   dates.optional("resolution_date", req.ResolutionDate),
		ResolutionStatus: req.ResolutionStatus,
	}
	return escalation, dates.err()
}

func ListEscalations(service escalating.EscalationService, periods PeriodProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		period, err := requestPeriod(r, periods)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		escalations, err := service.ListEscalations(r.Context(), period)
		if err != nil {
			writeServiceError(w, r, err, "error listing escalations")
			return
		}

		writeJSON(w, r, http.StatusOK, escalations)
	})
}

func GetEscalation(service escalating.EscalationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid escalation id", nil)
			return
		}

		escalation, err := service.GetEscalation(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "error fetching escalation")
			return
		}

		writeJSON(w, r, http.StatusOK, escalation)
	})
}

func CreateEscalation(service escalating.EscalationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req EscalationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body: "+err.Error(), nil)
			return
		}

		escalation, err := req.toDomain(0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		created, err := service.CreateEscalation(r.Context(), escalation)
		if err != nil {
			writeServiceError(w, r, err, "error creating escalation")
			return
		}

		writeJSON(w, r, http.StatusCreated, created)
	})
}

func UpdateEscalation(service escalating.EscalationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid escalation id", nil)
			return
		}

		var req EscalationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body: "+err.Error(), nil)
			return
		}

		escalation, err := req.toDomain(id)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		updated, err := service.UpdateEscalation(r.Context(), escalation)
		if err != nil {
			writeServiceError(w, r, err, "error updating escalation")
			return
		}

		writeJSON(w, r, http.StatusOK, updated)
	})
}

func DeleteEscalation(service escalating.EscalationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid escalation id", nil)
			return
		}

		if err := service.DeleteEscalation(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "error deleting escalation")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
