package escalating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/workforce-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/workforce-dashboard-api/internal/domain"
	"github.com/vfg2006/workforce-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type recordingPublisher struct {
	names  []string
	events []domain.RefreshEvent
}

func (p *recordingPublisher) Publish(name string, event domain.RefreshEvent) {
	p.names = append(p.names, name)
	p.events = append(p.events, event)
}

var now = time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)

func TestService_Prepare(t *testing.T) {
	service := &Service{clock: clockwork.NewFakeClockAt(now)}
	earlier := now.AddDate(0, 0, -3)
	beforeOpening := earlier.AddDate(0, 0, -1)

	tests := []struct {
		name           string
		escalation     domain.Escalation
		wantErr        error
		wantStatus     string
		wantResolution *time.Time
	}{
		{
			name:       "defaults to open today",
			escalation: domain.Escalation{Title: "Late delivery"},
			wantStatus: domain.EscalationStatusOpen,
		},
		{
			name:           "resolving stamps the resolution date",
			escalation:     domain.Escalation{Title: "Late delivery", Status: domain.EscalationStatusResolved, EscalationDate: earlier},
			wantStatus:     domain.EscalationStatusResolved,
			wantResolution: &now,
		},
		{
			name:       "reopening clears the resolution date",
			escalation: domain.Escalation{Title: "Late delivery", Status: domain.EscalationStatusOpen, EscalationDate: earlier, ResolutionDate: &now},
			wantStatus: domain.EscalationStatusOpen,
		},
		{
			name:       "resolution before escalation",
			escalation: domain.Escalation{Title: "Late delivery", Status: domain.EscalationStatusClosed, EscalationDate: earlier, ResolutionDate: &beforeOpening},
			wantErr:    ErrInvalidEscalation,
		},
		{
			name:       "missing title",
			escalation: domain.Escalation{},
			wantErr:    ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			escalation := tt.escalation
			err := service.prepare(&escalation)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, escalation.Status)
			assert.False(t, escalation.EscalationDate.IsZero())
			if tt.wantResolution == nil {
				assert.Nil(t, escalation.ResolutionDate)
			} else {
				require.NotNil(t, escalation.ResolutionDate)
				assert.Equal(t, *tt.wantResolution, *escalation.ResolutionDate)
			}
		})
	}
}

func TestService_EscalationWrites(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockEscalationRepository(ctrl)
	publisher := &recordingPublisher{}
	service := NewService(repo, publisher, clockwork.NewFakeClockAt(now))

	gomock.InOrder(
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *domain.Escalation) (*domain.Escalation, error) {
			e.ID = 11
			return e, nil
		}),
		repo.EXPECT().Update(ctx, gomock.Any()).Return(nil, errors.New("lock timeout")),
		repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *domain.Escalation) (*domain.Escalation, error) {
			return e, nil
		}),
		repo.EXPECT().Delete(ctx, 11).Return(true, nil),
	)

	created, err := service.CreateEscalation(ctx, &domain.Escalation{Title: "SLA breach", Customer: "Acme"})
	require.NoError(t, err)

	created.Status = domain.EscalationStatusResolved
	_, err = service.UpdateEscalation(ctx, created)
	var escalationErr *EscalationError
	require.ErrorAs(t, err, &escalationErr)
	assert.Equal(t, apiErrors.ErrDatabaseOperation, escalationErr.Code)

	_, err = service.UpdateEscalation(ctx, created)
	require.NoError(t, err)

	require.NoError(t, service.DeleteEscalation(ctx, 11))

	assert.Equal(t, []string{"escalationCreated", "escalationUpdated", "escalationDeleted"}, publisher.names)
	assert.Equal(t, domain.RefreshKindUpdated, publisher.events[1].Kind)
	assert.Equal(t, map[string]int{"id": 11}, publisher.events[2].Payload)
}
