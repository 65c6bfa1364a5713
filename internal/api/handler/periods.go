package handler

import (
	"net/http"

	"github.com/vfg2006/workforce-dashboard-api/internal/domain"
	"github.com/vfg2006/workforce-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/workforce-dashboard-api/pkg/log"
)

// PeriodStore is the part of the date range store exposed over HTTP
type PeriodStore interface {
	PeriodProvider
	State() domain.PeriodState
	Select(id string) bool
	Touch()
}

func GetPeriods(store PeriodStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, store.State())
	})
}

// SelectPeriod changes the global selection. An unknown id leaves the state
// untouched and still answers with it.
func SelectPeriod(store PeriodStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.SelectPeriodRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		if !store.Select(req.ID) {
			log.ForContext(r.Context()).WithField("period_id", req.ID).Info("ignoring unknown period")
		}

		writeJSON(w, r, http.StatusOK, store.State())
	})
}

func TouchPeriods(store PeriodStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		store.Touch()
		writeJSON(w, r, http.StatusOK, store.State())
	})
}
