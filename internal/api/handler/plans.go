package handler

import (
	"net/http"

	"github.com/vfg2006/workforce-dashboard-api/internal/domain"
	"github.com/vfg2006/workforce-dashboard-api/internal/usecases/projecting"
	"github.com/vfg2006/workforce-dashboard-api/pkg/apiErrors"
)

type MilestoneRequest struct {
	Name           string  `json:"name"`
	MilestoneType  string  `json:"milestone_type"`
	Owner          string  `json:"owner"`
	Status         string  `json:"status"`
	Progress       int     `json:"progress"`
	RiskLevel      string  `json:"risk_level"`
	DueDate        string  `json:"due_date"`
	CompletionDate string  `json:"completion_date"`
	Notes          *string `json:"notes"`
}

func (req MilestoneRequest) toDomain(projectID int) (*domain.Milestone, error) {
	dates := &dateFields{}
	milestone := &domain.Milestone{
		ProjectID:      projectID,
		Name:           req.Name,
		MilestoneType:  req.MilestoneType,
		Owner:          req.Owner,
		Status:         req.Status,
		Progress:       req.Progress,
		RiskLevel:      req.RiskLevel,
		DueDate:        dates.optional("due_date", req.DueDate),
		CompletionDate: dates.optional("completion_date", req.CompletionDate),
		Notes:          req.Notes,
	}
	return milestone, dates.err()
}

type RiskRequest struct {
	Issue          string  `json:"issue"`
	RiskType       string  `json:"risk_type"`
	Owner          string  `json:"owner"`
	Priority       string  `json:"priority"`
	Status         string  `json:"status"`
	RiskLevel      string  `json:"risk_level"`
	Impact         string  `json:"impact"`
	Probability    string  `json:"probability"`
	MitigationPlan *string `json:"mitigation_plan"`
	RiskDate       string  `json:"risk_date"`
	Notes          *string `json:"notes"`
}

func (req RiskRequest) toDomain(projectID int) (*domain.Risk, error) {
	dates := &dateFields{}
	risk := &domain.Risk{
		ProjectID:      projectID,
		Issue:          req.Issue,
		RiskType:       req.RiskType,
		Owner:          req.Owner,
		Priority:       req.Priority,
		Status:         req.Status,
		RiskLevel:      req.RiskLevel,
		Impact:         req.Impact,
		Probability:    req.Probability,
		MitigationPlan: req.MitigationPlan,
		RiskDate:       dates.optional("risk_date", req.RiskDate),
		Notes:          req.Notes,
	}
	return risk, dates.err()
}

func ListMilestones(service projecting.PlanService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid project id", nil)
			return
		}

		milestones, err := service.ListMilestones(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "error listing milestones")
			return
		}

		writeJSON(w, r, http.StatusOK, milestones)
	})
}

func CreateMilestone(service projecting.PlanService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid project id", nil)
			return
		}

		var req MilestoneRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body: "+err.Error(), nil)
			return
		}

		milestone, err := req.toDomain(id)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		created, err := service.CreateMilestone(r.Context(), milestone)
		if err != nil {
			writeServiceError(w, r, err, "error creating milestone")
			return
		}

		writeJSON(w, r, http.StatusCreated, created)
	})
}

func ListRisks(service projecting.PlanService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid project id", nil)
			return
		}

		risks, err := service.ListRisks(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "error listing risks")
			return
		}

		writeJSON(w, r, http.StatusOK, risks)
	})
}

func CreateRisk(service projecting.PlanService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid project id", nil)
			return
		}

		var req RiskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body: "+err.Error(), nil)
			return
		}

		risk, err := req.toDomain(id)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		created, err := service.CreateRisk(r.Context(), risk)
		if err != nil {
			writeServiceError(w, r, err, "error creating risk")
			return
		}

		writeJSON(w, r, http.StatusCreated, created)
	})
}

func ListTeamMembers(service projecting.PlanService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid project id", nil)
			return
		}

		members, err := service.ListTeamMembers(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "error listing team members")
			return
		}

		writeJSON(w, r, http.StatusOK, members)
	})
}
