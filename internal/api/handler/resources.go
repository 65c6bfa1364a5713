package handler

import (
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/workforce-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/workforce-dashboard-api/internal/domain"
	"github.com/vfg2006/workforce-dashboard-api/internal/usecases/staffing"
	"github.com/vfg2006/workforce-dashboard-api/pkg/apiErrors"
)

type ResourceRequest struct {
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
	MentorName         *string         `json:"mentor_name"`
	ProjectName        *string         `json:"project_name"`
	JoiningDate        string          `json:"joining_date"`
	InternshipEndDate  string          `json:"internship_end_date"`
	LastWorkingDay     string          `json:"last_working_day"`
	MonthlySalaryCost  decimal.Decimal `json:"monthly_salary_cost"`
	BillingRate        decimal.Decimal `json:"billing_rate"`
	UtilizationRate    *float64        `json:"utilization_rate"`
}

func (req ResourceRequest) toDomain(id int) (*domain.Resource, error) {
	dates := &dateFields{}
	resource := &domain.Resource{
		ID:                 id,
		EmployeeID:         req.EmployeeID,
		FullName:           req.FullName,
		Email:              req.Email,
		Designation:        req.Designation,
		Department:         req.Department,
		Location:           req.Location,
		EmploymentType:     req.EmploymentType,
		PrimarySkills:      req.PrimarySkills,
		BillableStatus:     req.BillableStatus,
		CurrentBenchStatus: req.CurrentBenchStatus,
		IsIntern:           req.IsIntern,
		MentorName:         req.MentorName,
		ProjectName:        req.ProjectName,
		JoiningDate:        dates.optional("joining_date", req.JoiningDate),
		InternshipEndDate:  dates.optional("internship_end_date", req.InternshipEndDate),
		LastWorkingDay:     dates.optional("last_working_day", req.LastWorkingDay),
		MonthlySalaryCost:  req.MonthlySalaryCost,
		BillingRate:        req.BillingRate,
		UtilizationRate:    req.UtilizationRate,
	}
	return resource, dates.err()
}

func ListResources(service staffing.ResourceService, periods PeriodProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		period, err := requestPeriod(r, periods)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		filters := repository.ResourceFilters{Period: period}
		query := r.URL.Query()
		if department := query.Get("department"); department != "" {
			filters.Department = &department
		}
		if billable, err := strconv.ParseBool(query.Get("billable")); err == nil {
			filters.Billable = &billable
		}
		if interns, err := strconv.ParseBool(query.Get("interns")); err == nil {
			filters.Interns = &interns
		}

		resources, err := service.ListResources(r.Context(), filters)
		if err != nil {
			writeServiceError(w, r, err, "error listing resources")
			return
		}

		writeJSON(w, r, http.StatusOK, resources)
	})
}

func GetResource(service staffing.ResourceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid resource id", nil)
			return
		}

		resource, err := service.GetResource(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "error fetching resource")
			return
		}

		writeJSON(w, r, http.StatusOK, resource)
	})
}

func CreateResource(service staffing.ResourceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ResourceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body: "+err.Error(), nil)
			return
		}

		resource, err := req.toDomain(0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		created, err := service.CreateResource(r.Context(), resource)
		if err != nil {
			writeServiceError(w, r, err, "error creating resource")
			return
		}

		writeJSON(w, r, http.StatusCreated, created)
	})
}

func UpdateResource(service staffing.ResourceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid resource id", nil)
			return
		}

		var req ResourceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body: "+err.Error(), nil)
			return
		}

		resource, err := req.toDomain(id)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		updated, err := service.UpdateResource(r.Context(), resource)
		if err != nil {
			writeServiceError(w, r, err, "error updating resource")
			return
		}

		writeJSON(w, r, http.StatusOK, updated)
	})
}

func DeleteResource(service staffing.ResourceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid resource id", nil)
			return
		}

		if err := service.DeleteResource(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "error deleting resource")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
