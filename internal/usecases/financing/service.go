package financing

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/workforce-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/workforce-dashboard-api/internal/domain"
	"github.com/vfg2006/workforce-dashboard-api/internal/refresh"
	"github.com/vfg2006/workforce-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/workforce-dashboard-api/pkg/log"
)

type FinancialService interface {
	ListFinancialData(ctx context.Context, period *domain.Period, projectID *int) ([]*domain.FinancialData, error)
	GetFinancialData(ctx context.Context, id int) (*domain.FinancialData, error)
	CreateFinancialData(ctx context.Context, data *domain.FinancialData) (*domain.FinancialData, error)
	UpdateFinancialData(ctx context.Context, data *domain.FinancialData) (*domain.FinancialData, error)
	DeleteFinancialData(ctx context.Context, id int) error
}

type Service struct {
	financialRepo repository.FinancialDataRepository
	publisher     refresh.Publisher
}

func NewService(financialRepo repository.FinancialDataRepository, publisher refresh.Publisher) FinancialService {
	return &Service{
		financialRepo: financialRepo,
		publisher:     publisher,
	}
}

func (s *Service) ListFinancialData(ctx context.Context, period *domain.Period, projectID *int) ([]*domain.FinancialData, error) {
	records, err := s.financialRepo.List(ctx, period, projectID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("error listing financial data")
		return nil, NewFinancialError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, 0, "failed to list financial data")
	}

	return records, nil
}

func (s *Service) GetFinancialData(ctx context.Context, id int) (*domain.FinancialData, error) {
	record, err := s.financialRepo.GetByID(ctx, id)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("error fetching financial data")
		return nil, NewFinancialError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "failed to fetch financial data")
	}
	if record == nil {
		return nil, NewFinancialError(ErrFinancialDataNotFound, apiErrors.ErrNotFound, id, "")
	}

	return record, nil
}

func (s *Service) CreateFinancialData(ctx context.Context, data *domain.FinancialData) (*domain.FinancialData, error) {
	if err := validateFinancialData(data); err != nil {
		return nil, err
	}

	created, err := s.financialRepo.Create(ctx, data)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("error creating financial data")
		return nil, NewFinancialError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, 0, "failed to create financial data")
	}

	refresh.PublishWrite(s.publisher, domain.EntityFinancialData, refresh.OperationCreated, created)

	return created, nil
}

func (s *Service) UpdateFinancialData(ctx context.Context, data *domain.FinancialData) (*domain.FinancialData, error) {
	if data.ID == 0 {
		return nil, NewFinancialError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, 0, "id is required")
	}

	if err := validateFinancialData(data); err != nil {
		return nil, err
	}

	updated, err := s.financialRepo.Update(ctx, data)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("error updating financial data")
		return nil, NewFinancialError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, data.ID, "failed to update financial data")
	}
	if updated == nil {
		return nil, NewFinancialError(ErrFinancialDataNotFound, apiErrors.ErrNotFound, data.ID, "")
	}

	refresh.PublishWrite(s.publisher, domain.EntityFinancialData, refresh.OperationUpdated, updated)

	return updated, nil
}

func (s *Service) DeleteFinancialData(ctx context.Context, id int) error {
	deleted, err := s.financialRepo.Delete(ctx, id)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("error deleting financial data")
		return NewFinancialError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "failed to delete financial data")
	}
	if !deleted {
		return NewFinancialError(ErrFinancialDataNotFound, apiErrors.ErrNotFound, id, "")
	}

	refresh.PublishWrite(s.publisher, domain.EntityFinancialData, refresh.OperationDeleted, map[string]int{"id": id})

	return nil
}

func validateFinancialData(data *domain.FinancialData) error {
	data.FinanceType = strings.TrimSpace(data.FinanceType)
	if data.FinanceType == "" || data.FinanceDate.IsZero() {
		return NewFinancialError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, data.ID, "finance_type and finance_date are required")
	}

	amounts := []decimal.Decimal{
		data.SOWValue,
		data.RevenueGenerated,
		data.ActualCostToDate,
		data.BillableCost,
		data.NonBillableCost,
		data.MonthlyBurn,
	}
	for _, amount := range amounts {
		if amount.IsNegative() {
			return NewFinancialError(ErrInvalidFinancialData, apiErrors.ErrInvalidFormat, data.ID, "amounts must not be negative")
		}
	}

	return nil
}
