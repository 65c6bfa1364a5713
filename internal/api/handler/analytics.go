package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/workforce-dashboard-api/internal/usecases/staffing"
	"github.com/vfg2006/workforce-dashboard-api/pkg/apiErrors"
)

func GetWorkforceAnalytics(service staffing.AnalyticsService, periods PeriodProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		period, err := requestPeriod(r, periods)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		analytics, err := service.WorkforceAnalytics(r.Context(), period)
		if err != nil {
			writeServiceError(w, r, err, "error computing workforce analytics")
			return
		}

		writeJSON(w, r, http.StatusOK, analytics)
	})
}

func ListResignations(service staffing.AnalyticsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		days, ok := lookaheadDays(w, r)
		if !ok {
			return
		}

		resources, err := service.ListResignations(r.Context(), days)
		if err != nil {
			writeServiceError(w, r, err, "error listing resignations")
			return
		}

		writeJSON(w, r, http.StatusOK, resources)
	})
}

func ListUpcomingReleases(service staffing.AnalyticsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		days, ok := lookaheadDays(w, r)
		if !ok {
			return
		}

		releases, err := service.ListUpcomingReleases(r.Context(), days)
		if err != nil {
			writeServiceError(w, r, err, "error listing upcoming releases")
			return
		}

		writeJSON(w, r, http.StatusOK, releases)
	})
}

// lookaheadDays reads ?days=, zero when absent so the service default applies
func lookaheadDays(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("days")
	if raw == "" {
		return 0, true
	}

	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "days must be a positive integer", nil)
		return 0, false
	}
	return days, true
}
