package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/workforce-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/workforce-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/workforce-dashboard-api/internal/api"
	"github.com/vfg2006/workforce-dashboard-api/internal/config"
	"github.com/vfg2006/workforce-dashboard-api/internal/daterange"
	"github.com/vfg2006/workforce-dashboard-api/internal/refresh"
	"github.com/vfg2006/workforce-dashboard-api/internal/scheduler"
	"github.com/vfg2006/workforce-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/workforce-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/workforce-dashboard-api/internal/usecases/escalating"
	"github.com/vfg2006/workforce-dashboard-api/internal/usecases/financing"
	"github.com/vfg2006/workforce-dashboard-api/internal/usecases/projecting"
	"github.com/vfg2006/workforce-dashboard-api/internal/usecases/staffing"
	"github.com/vfg2006/workforce-dashboard-api/pkg/metrics"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, using info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("log level set to %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	clock := clockwork.NewRealClock()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder := metrics.NewPrometheusRecorder(registry)

	bus := refresh.NewBus(refresh.WithClock(clock), refresh.WithRecorder(recorder))
	store := daterange.NewStore(clock, bus)

	resourceRepo := repository.NewResourceRepository(pgConn)
	projectRepo := repository.NewProjectRepository(pgConn)
	planRepo := repository.NewProjectPlanRepository(pgConn)
	financialRepo := repository.NewFinancialDataRepository(pgConn)
	escalationRepo := repository.NewEscalationRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg, clock)
	resourceService := staffing.NewService(resourceRepo, bus)
	analyticsService := staffing.NewAnalyticsService(resourceRepo, clock)
	projectService := projecting.NewService(projectRepo, bus)
	planService := projecting.NewPlanService(projectRepo, planRepo, resourceRepo, bus)
	financialService := financing.NewService(financialRepo, bus)
	escalationService := escalating.NewService(escalationRepo, bus, clock)

	summarizer := dashboard.NewService(resourceRepo, projectRepo, escalationRepo, financialRepo, clock)
	view := dashboard.NewView(summarizer, store)
	unmount := view.Mount(bus)
	defer unmount()

	if cfg.Refresh.TickEnabled {
		stopTicker := bus.StartTicker(cfg.Refresh.TickInterval, store)
		defer stopTicker()
		logrus.WithField("interval", cfg.Refresh.TickInterval).Info("refresh ticker started")
	}

	periodRollover := scheduler.NewPeriodRolloverService(store, cfg.PeriodRollover, clock)
	if err := periodRollover.Start(ctx); err != nil {
		logrus.WithError(err).Error("error starting period rollover scheduler")
	}

	server, err := api.New(cfg, api.Dependencies{
		Authenticator:  authenticator,
		Periods:        store,
		Subscriber:     bus,
		Resources:      resourceService,
		Analytics:      analyticsService,
		Projects:       projectService,
		ProjectPlans:   planService,
		FinancialData:  financialService,
		Escalations:    escalationService,
		Dashboard:      view,
		PeriodRollover: periodRollover,
		Recorder:       recorder,
		MetricsHandler: metrics.HTTPHandler(registry),
		Clock:          clock,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("error connecting to postgres")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("error pinging postgres")
	}

	logrus.Info("postgres connection established")
	return conn
}
