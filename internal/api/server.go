package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/workforce-dashboard-api/internal/api/handler"
	"github.com/vfg2006/workforce-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/workforce-dashboard-api/internal/config"
	"github.com/vfg2006/workforce-dashboard-api/internal/refresh"
	"github.com/vfg2006/workforce-dashboard-api/internal/scheduler"
	"github.com/vfg2006/workforce-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/workforce-dashboard-api/internal/usecases/escalating"
	"github.com/vfg2006/workforce-dashboard-api/internal/usecases/financing"
	"github.com/vfg2006/workforce-dashboard-api/internal/usecases/projecting"
	"github.com/vfg2006/workforce-dashboard-api/internal/usecases/staffing"
	"github.com/vfg2006/workforce-dashboard-api/pkg/metrics"
	"github.com/vfg2006/workforce-dashboard-api/pkg/middleware"
)

// Dependencies groups everything the HTTP layer serves
type Dependencies struct {
	Authenticator  authenticating.Authenticator
	Periods        handler.PeriodStore
	Subscriber     refresh.Subscriber
	Resources      staffing.ResourceService
	Analytics      staffing.AnalyticsService
	Projects       projecting.ProjectService
	ProjectPlans   projecting.PlanService
	FinancialData  financing.FinancialService
	Escalations    escalating.EscalationService
	Dashboard      handler.SummarySource
	PeriodRollover *scheduler.PeriodRolloverService
	Recorder       metrics.Recorder
	MetricsHandler http.Handler
	Clock          clockwork.Clock
}

type Server struct {
	httpServer *http.Server
}

func New(config *config.Config, deps Dependencies) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, deps),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler builds the routed handler wrapped in the global middleware chain
func NewHandler(config *config.Config, deps Dependencies) http.Handler {
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}
	if deps.Recorder == nil {
		deps.Recorder = metrics.NoopRecorder{}
	}

	cronServices := handler.CronJobServices{
		PeriodRollover: deps.PeriodRollover,
	}

	routes := []router.ConfigRouter{
		router.WithRoutes(handler.Healthcheck(deps.Clock)...),
		router.WithRoutes(handler.Authentication(deps.Authenticator)...),
		router.WithRoutes(handler.Periods(deps.Periods)...),
		router.WithRoutes(handler.Events(deps.Subscriber, config.Refresh, deps.Recorder, deps.Clock)...),
		router.WithRoutes(handler.Resources(deps.Resources, deps.Periods)...),
		router.WithRoutes(handler.Analytics(deps.Analytics, deps.Periods)...),
		router.WithRoutes(handler.Projects(deps.Projects, deps.Periods)...),
		router.WithRoutes(handler.ProjectPlans(deps.ProjectPlans)...),
		router.WithRoutes(handler.FinancialData(deps.FinancialData, deps.Periods)...),
		router.WithRoutes(handler.Escalations(deps.Escalations, deps.Periods)...),
		router.WithRoutes(handler.Dashboard(deps.Dashboard)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	}
	if deps.MetricsHandler != nil {
		routes = append(routes, router.WithRoutes(handler.Metrics(deps.MetricsHandler)...))
	}

	rt := router.New(routes...)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(deps.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("error running server")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("interrupt signal received")
	case <-ctx.Done():
		logrus.Info("application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("starting graceful shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("error shutting down server")
		return err
	}

	logrus.Info("server stopped")
	return nil
}

// Shutdown stops accepting connections. Open event streams end when their
// request contexts are cancelled.
func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
