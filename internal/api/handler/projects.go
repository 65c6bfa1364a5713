package handler

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/workforce-dashboard-api/internal/domain"
	"github.com/vfg2006/workforce-dashboard-api/internal/usecases/projecting"
	"github.com/vfg2006/workforce-dashboard-api/pkg/apiErrors"
)

type ProjectRequest struct {
	Name         string          `json:"name"`
	Description  *string         `json:"description"`
	Customer     string          `json:"customer"`
	Category     string          `json:"category"`
	Status       string          `json:"status"`
	Progress     int             `json:"progress"`
	TeamLead     string          `json:"team_lead"`
	Priority     string          `json:"priority"`
	ProjectType  string          `json:"project_type"`
	HealthStatus string          `json:"health_status"`
	Budget       decimal.Decimal `json:"budget"`
	StartDate    string          `json:"start_date"`
	EndDate      string          `json:"end_date"`
}

func (req ProjectRequest) toDomain(id int) (*domain.Project, error) {
	dates := &dateFields{}
	project := &domain.Project{
		ID:           id,
		Name:         req.Name,
		Description:  req.Description,
		Customer:     req.Customer,
		Category:     req.Category,
		Status:       req.Status,
		Progress:     req.Progress,
		TeamLead:     req.TeamLead,
		Priority:     req.Priority,
		ProjectType:  req.ProjectType,
		HealthStatus: req.HealthStatus,
		Budget:       req.Budget,
		StartDate:    dates.optional("start_date", req.StartDate),
		EndDate:      dates.optional("end_date", req.EndDate),
	}
	return project, dates.err()
}

func ListProjects(service projecting.ProjectService, periods PeriodProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		period, err := requestPeriod(r, periods)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		projects, err := service.ListProjects(r.Context(), period)
		if err != nil {
			writeServiceError(w, r, err, "error listing projects")
			return
		}

		writeJSON(w, r, http.StatusOK, projects)
	})
}

func GetProject(service projecting.ProjectService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid project id", nil)
			return
		}

		project, err := service.GetProject(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "error fetching project")
			return
		}

		writeJSON(w, r, http.StatusOK, project)
	})
}

func CreateProject(service projecting.ProjectService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body: "+err.Error(), nil)
			return
		}

		project, err := req.toDomain(0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		created, err := service.CreateProject(r.Context(), project)
		if err != nil {
			writeServiceError(w, r, err, "error creating project")
			return
		}

		writeJSON(w, r, http.StatusCreated, created)
	})
}

func UpdateProject(service projecting.ProjectService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid project id", nil)
			return
		}

		var req ProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body: "+err.Error(), nil)
			return
		}

		project, err := req.toDomain(id)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		updated, err := service.UpdateProject(r.Context(), project)
		if err != nil {
			writeServiceError(w, r, err, "error updating project")
			return
		}

		writeJSON(w, r, http.StatusOK, updated)
	})
}

func DeleteProject(service projecting.ProjectService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid project id", nil)
			return
		}

		if err := service.DeleteProject(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "error deleting project")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
