package handler

import (
	"net/http"

	"github.com/jonboulle/clockwork"
	"github.com/vfg2006/workforce-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/workforce-dashboard-api/internal/config"
	"github.com/vfg2006/workforce-dashboard-api/internal/refresh"
	"github.com/vfg2006/workforce-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/workforce-dashboard-api/internal/usecases/escalating"
	"github.com/vfg2006/workforce-dashboard-api/internal/usecases/financing"
	"github.com/vfg2006/workforce-dashboard-api/internal/usecases/projecting"
	"github.com/vfg2006/workforce-dashboard-api/internal/usecases/staffing"
	"github.com/vfg2006/workforce-dashboard-api/pkg/metrics"
	"github.com/vfg2006/workforce-dashboard-api/pkg/middleware"
)

type middlewares = []func(http.Handler) http.Handler

func Healthcheck(clock clockwork.Clock) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(clock),
		},
	}
}

func Metrics(handler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: handler,
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Periods(store PeriodStore) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/periods",
			Method:      http.MethodGet,
			Handler:     GetPeriods(store),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/periods/selected",
			Method:      http.MethodPut,
			Handler:     SelectPeriod(store),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/periods/touch",
			Method:      http.MethodPost,
			Handler:     TouchPeriods(store),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Events(subscriber refresh.Subscriber, cfg config.Refresh, recorder metrics.Recorder, clock clockwork.Clock) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/events",
			Method:      http.MethodGet,
			Handler:     StreamEvents(subscriber, cfg, recorder, clock),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Resources(service staffing.ResourceService, periods PeriodProvider) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/resources",
			Method:      http.MethodGet,
			Handler:     ListResources(service, periods),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/resources",
			Method:      http.MethodPost,
			Handler:     CreateResource(service),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/resources/:id",
			Method:      http.MethodGet,
			Handler:     GetResource(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/resources/:id",
			Method:      http.MethodPut,
			Handler:     UpdateResource(service),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/resources/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteResource(service),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
	}
}

func Projects(service projecting.ProjectService, periods PeriodProvider) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/projects",
			Method:      http.MethodGet,
			Handler:     ListProjects(service, periods),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/projects",
			Method:      http.MethodPost,
			Handler:     CreateProject(service),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/projects/:id",
			Method:      http.MethodGet,
			Handler:     GetProject(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/projects/:id",
			Method:      http.MethodPut,
			Handler:     UpdateProject(service),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/projects/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteProject(service),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
	}
}

func Analytics(service staffing.AnalyticsService, periods PeriodProvider) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/analytics/workforce",
			Method:      http.MethodGet,
			Handler:     GetWorkforceAnalytics(service, periods),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/resignations",
			Method:      http.MethodGet,
			Handler:     ListResignations(service),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/analytics/upcoming-releases",
			Method:      http.MethodGet,
			Handler:     ListUpcomingReleases(service),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
	}
}

func ProjectPlans(service projecting.PlanService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/projects/:id/milestones",
			Method:      http.MethodGet,
			Handler:     ListMilestones(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/projects/:id/milestones",
			Method:      http.MethodPost,
			Handler:     CreateMilestone(service),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/projects/:id/risks",
			Method:      http.MethodGet,
			Handler:     ListRisks(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/projects/:id/risks",
			Method:      http.MethodPost,
			Handler:     CreateRisk(service),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/projects/:id/team-members",
			Method:      http.MethodGet,
			Handler:     ListTeamMembers(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func FinancialData(service financing.FinancialService, periods PeriodProvider) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/financial-data",
			Method:      http.MethodGet,
			Handler:     ListFinancialData(service, periods),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/financial-data",
			Method:      http.MethodPost,
			Handler:     CreateFinancialData(service),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/financial-data/:id",
			Method:      http.MethodGet,
			Handler:     GetFinancialData(service),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/financial-data/:id",
			Method:      http.MethodPut,
			Handler:     UpdateFinancialData(service),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/financial-data/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteFinancialData(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}

func Escalations(service escalating.EscalationService, periods PeriodProvider) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/escalations",
			Method:      http.MethodGet,
			Handler:     ListEscalations(service, periods),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/escalations",
			Method:      http.MethodPost,
			Handler:     CreateEscalation(service),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/escalations/:id",
			Method:      http.MethodGet,
			Handler:     GetEscalation(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/escalations/:id",
			Method:      http.MethodPut,
			Handler:     UpdateEscalation(service),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/escalations/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteEscalation(service),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
	}
}

func Dashboard(source SummarySource) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/summary",
			Method:      http.MethodGet,
			Handler:     GetDashboardSummary(source),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}
