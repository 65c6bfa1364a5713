package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/workforce-dashboard-api/internal/scheduler"
	"github.com/vfg2006/workforce-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/workforce-dashboard-api/pkg/log"
)

const (
	CronJobTypePeriodRollover = "period-rollover"
	CronJobTypeAll            = "all"
)

// CronJobServices holds the jobs that can be triggered by hand
type CronJobServices struct {
	PeriodRollover *scheduler.PeriodRolloverService
}

func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "cron job type not given", nil)
			return
		}

		switch cronType {
		case CronJobTypePeriodRollover, CronJobTypeAll:
			if services.PeriodRollover == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "period rollover job not available", nil)
				return
			}
			services.PeriodRollover.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid cron job type, accepted: period-rollover, all", nil)
			return
		}

		log.ForContext(r.Context()).WithField("type", cronType).Info("cron job triggered manually")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "cron job started",
			"type":    cronType,
		})
	})
}

func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.PeriodRollover != nil {
			status[CronJobTypePeriodRollover] = services.PeriodRollover.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	})
}
