package financing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/workforce-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/workforce-dashboard-api/internal/domain"
	"github.com/vfg2006/workforce-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type recordingPublisher struct {
	names []string
}

func (p *recordingPublisher) Publish(name string, _ domain.RefreshEvent) {
	p.names = append(p.names, name)
}

func newRecord() *domain.FinancialData {
	return &domain.FinancialData{
		FinanceType:      "Revenue",
		FinanceCategory:  "Services",
		FinanceDate:      time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
		RevenueGenerated: decimal.RequireFromString("12500.50"),
		ActualCostToDate: decimal.RequireFromString("8000"),
	}
}

func TestService_CreateFinancialData(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		record    func() *domain.FinancialData
		setup     func(repo *mocks.MockFinancialDataRepository)
		wantCode  string
		wantNames []string
	}{
		{
			name:   "publishes financialDataCreated",
			record: newRecord,
			setup: func(repo *mocks.MockFinancialDataRepository) {
				repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, f *domain.FinancialData) (*domain.FinancialData, error) {
					f.ID = 1
					return f, nil
				})
			},
			wantNames: []string{"financialDataCreated"},
		},
		{
			name: "missing date",
			record: func() *domain.FinancialData {
				f := newRecord()
				f.FinanceDate = time.Time{}
				return f
			},
			setup:    func(repo *mocks.MockFinancialDataRepository) {},
			wantCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name: "negative burn",
			record: func() *domain.FinancialData {
				f := newRecord()
				f.MonthlyBurn = decimal.NewFromInt(-5)
				return f
			},
			setup:    func(repo *mocks.MockFinancialDataRepository) {},
			wantCode: apiErrors.ErrInvalidFormat,
		},
		{
			name:   "insert error",
			record: newRecord,
			setup: func(repo *mocks.MockFinancialDataRepository) {
				repo.EXPECT().Create(ctx, gomock.Any()).Return(nil, errors.New("fk violation"))
			},
			wantCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockFinancialDataRepository(ctrl)
			publisher := &recordingPublisher{}
			tt.setup(repo)

			_, err := NewService(repo, publisher).CreateFinancialData(ctx, tt.record())

			if tt.wantCode != "" {
				var financialErr *FinancialError
				require.ErrorAs(t, err, &financialErr)
				assert.Equal(t, tt.wantCode, financialErr.Code)
				assert.Empty(t, publisher.names)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantNames, publisher.names)
		})
	}
}

func TestService_UpdateAndDeleteFinancialData(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockFinancialDataRepository(ctrl)
	publisher := &recordingPublisher{}
	service := NewService(repo, publisher)

	record := newRecord()
	record.ID = 4

	repo.EXPECT().Update(ctx, record).Return(record, nil)
	repo.EXPECT().Delete(ctx, 4).Return(true, nil)
	repo.EXPECT().Delete(ctx, 5).Return(false, errors.New("deadlock"))

	_, err := service.UpdateFinancialData(ctx, record)
	require.NoError(t, err)

	require.NoError(t, service.DeleteFinancialData(ctx, 4))
	assert.ErrorIs(t, service.DeleteFinancialData(ctx, 5), ErrDatabaseOperation)

	assert.Equal(t, []string{"financialDataUpdated", "financialDataDeleted"}, publisher.names)
}

func TestService_ListFinancialData(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockFinancialDataRepository(ctrl)

	projectID := 3
	repo.EXPECT().List(ctx, nil, &projectID).Return([]*domain.FinancialData{newRecord()}, nil)
	repo.EXPECT().GetByID(ctx, 99).Return(nil, nil)

	service := NewService(repo, &recordingPublisher{})

	records, err := service.ListFinancialData(ctx, nil, &projectID)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	_, err = service.GetFinancialData(ctx, 99)
	assert.ErrorIs(t, err, ErrFinancialDataNotFound)
}
