package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/workforce-dashboard-api/internal/domain"
)

// SummarySource serves the cached dashboard summary for the selected period
type SummarySource interface {
	Snapshot(ctx context.Context) *domain.DashboardSummary
}

func GetDashboardSummary(source SummarySource) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, source.Snapshot(r.Context()))
	})
}
