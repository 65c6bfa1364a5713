// Package dashboard builds the KPI summary shown on the dashboard landing page.
package dashboard

import (
	"context"

	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/workforce-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/workforce-dashboard-api/internal/domain"
	"github.com/vfg2006/workforce-dashboard-api/pkg/log"
)

var hundred = decimal.NewFromInt(100)

type Summarizer interface {
	// Summary never fails: a section whose source errors is left empty and logged
	Summary(ctx context.Context, period domain.Period) *domain.DashboardSummary
}

type Service struct {
	resourceRepo   repository.ResourceRepository
	projectRepo    repository.ProjectRepository
	escalationRepo repository.EscalationRepository
	financialRepo  repository.FinancialDataRepository
	clock          clockwork.Clock
}

func NewService(
	resourceRepo repository.ResourceRepository,
	projectRepo repository.ProjectRepository,
	escalationRepo repository.EscalationRepository,
	financialRepo repository.FinancialDataRepository,
	clock clockwork.Clock,
) Summarizer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Service{
		resourceRepo:   resourceRepo,
		projectRepo:    projectRepo,
		escalationRepo: escalationRepo,
		financialRepo:  financialRepo,
		clock:          clock,
	}
}

func (s *Service) Summary(ctx context.Context, period domain.Period) *domain.DashboardSummary {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"period_start": period.Start,
		"period_end":   period.End,
	})

	summary := &domain.DashboardSummary{
		Period:           period,
		ProjectsByStatus: map[string]int{},
		GeneratedAt:      s.clock.Now(),
	}

	if headcount, err := s.resourceRepo.Headcount(ctx, &period); err != nil {
		logger.WithError(err).Error("dashboard: headcount unavailable")
	} else {
		summary.Headcount = *headcount
	}

	if byStatus, err := s.projectRepo.CountByStatus(ctx, &period); err != nil {
		logger.WithError(err).Error("dashboard: project status counts unavailable")
	} else {
		summary.ProjectsByStatus = byStatus
	}

	if escalations, err := s.escalationRepo.List(ctx, &period); err != nil {
		logger.WithError(err).Error("dashboard: escalations unavailable")
	} else {
		for _, escalation := range escalations {
			if escalation.IsOpen() {
				summary.OpenEscalations++
			}
		}
	}

	if revenue, cost, err := s.financialRepo.Totals(ctx, &period); err != nil {
		logger.WithError(err).Error("dashboard: financial totals unavailable")
	} else {
		summary.Financials = financialSummary(revenue, cost)
	}

	return summary
}

func financialSummary(revenue, cost decimal.Decimal) domain.FinancialSummary {
	margin := revenue.Sub(cost)

	percent := decimal.Zero
	if !revenue.IsZero() {
		percent = margin.Div(revenue).Mul(hundred).Round(2)
	}

	return domain.FinancialSummary{
		Revenue:       revenue,
		Cost:          cost,
		Margin:        margin,
		MarginPercent: percent,
	}
}
