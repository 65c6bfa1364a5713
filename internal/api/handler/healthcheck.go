package handler

import (
	"net/http"

	"github.com/jonboulle/clockwork"
	"github.com/vfg2006/workforce-dashboard-api/pkg/log"
)

func HealthcheckHandler(clock clockwork.Clock) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(clock.Now().String()))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("error responding to healthcheck")
		}
	})
}
