package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/workforce-dashboard-api/internal/domain"
	"github.com/vfg2006/workforce-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/workforce-dashboard-api/internal/usecases/escalating"
	"github.com/vfg2006/workforce-dashboard-api/internal/usecases/financing"
	"github.com/vfg2006/workforce-dashboard-api/internal/usecases/projecting"
	"github.com/vfg2006/workforce-dashboard-api/internal/usecases/staffing"
	"github.com/vfg2006/workforce-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/workforce-dashboard-api/pkg/log"
	"github.com/vfg2006/workforce-dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PeriodProvider exposes the globally selected period used to scope listings
type PeriodProvider interface {
	Selected() domain.Period
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("error encoding response")
	}
}

func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(httprouter.ParamsFromContext(r.Context()).ByName("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// requestPeriod resolves the window a listing is scoped to. Explicit from/to dates
// win, all=true disables scoping, otherwise the selected period applies.
func requestPeriod(r *http.Request, periods PeriodProvider) (*domain.Period, error) {
	query := r.URL.Query()

	if query.Get("all") == "true" {
		return nil, nil
	}

	from, err := utils.ParseDate(query.Get("from"))
	if err != nil {
		return nil, err
	}
	to, err := utils.ParseDate(query.Get("to"))
	if err != nil {
		return nil, err
	}

	if from == nil && to == nil {
		selected := periods.Selected()
		return &selected, nil
	}
	if from == nil || to == nil {
		return nil, errors.New("from and to must be given together")
	}
	if to.Before(*from) {
		return nil, errors.New("to is before from")
	}

	return &domain.Period{Start: *from, End: utils.EndOfDay(*to)}, nil
}

// writeServiceError maps usecase errors to API errors
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	log.ForContext(r.Context()).WithError(err).Warn(fallback)

	var (
		resourceErr   *staffing.ResourceError
		projectErr    *projecting.ProjectError
		financialErr  *financing.FinancialError
		escalationErr *escalating.EscalationError
		authErr       *authenticating.AuthError
	)

	switch {
	case errors.As(err, &resourceErr):
		apiErrors.WriteError(w, resourceErr.Code, resourceErr.Error(), nil)
	case errors.As(err, &projectErr):
		apiErrors.WriteError(w, projectErr.Code, projectErr.Error(), nil)
	case errors.As(err, &financialErr):
		apiErrors.WriteError(w, financialErr.Code, financialErr.Error(), nil)
	case errors.As(err, &escalationErr):
		apiErrors.WriteError(w, escalationErr.Code, escalationErr.Error(), nil)
	case errors.As(err, &authErr):
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}

// dateFields parses yyyy-mm-dd request fields, collecting every invalid one
type dateFields struct {
	invalid []string
}

func (d *dateFields) optional(field, value string) *time.Time {
	date, err := utils.ParseDate(value)
	if err != nil {
		d.invalid = append(d.invalid, field)
		return nil
	}
	return date
}

// required returns the zero time when value is empty, leaving the check to the usecase
func (d *dateFields) required(field, value string) time.Time {
	date := d.optional(field, value)
	if date == nil {
		return time.Time{}
	}
	return *date
}

func (d *dateFields) err() error {
	if len(d.invalid) == 0 {
		return nil
	}
	return errors.Errorf("invalid date in %s, expected yyyy-mm-dd", strings.Join(d.invalid, ", "))
}
