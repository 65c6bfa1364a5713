package escalating

import (
	"context"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/vfg2006/workforce-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/workforce-dashboard-api/internal/domain"
	"github.com/vfg2006/workforce-dashboard-api/internal/refresh"
	"github.com/vfg2006/workforce-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/workforce-dashboard-api/pkg/log"
)

type EscalationService interface {
	ListEscalations(ctx context.Context, period *domain.Period) ([]*domain.Escalation, error)
	GetEscalation(ctx context.Context, id int) (*domain.Escalation, error)
	CreateEscalation(ctx context.Context, escalation *domain.Escalation) (*domain.Escalation, error)
	UpdateEscalation(ctx context.Context, escalation *domain.Escalation) (*domain.Escalation, error)
	DeleteEscalation(ctx context.Context, id int) error
}

type Service struct {
	escalationRepo repository.EscalationRepository
	publisher      refresh.Publisher
	clock          clockwork.Clock
}

func NewService(escalationRepo repository.EscalationRepository, publisher refresh.Publisher, clock clockwork.Clock) EscalationService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Service{
		escalationRepo: escalationRepo,
		publisher:      publisher,
		clock:          clock,
	}
}

func (s *Service) ListEscalations(ctx context.Context, period *domain.Period) ([]*domain.Escalation, error) {
	escalations, err := s.escalationRepo.List(ctx, period)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("error listing escalations")
		return nil, NewEscalationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, 0, "failed to list escalations")
	}

	return escalations, nil
}

func (s *Service) GetEscalation(ctx context.Context, id int) (*domain.Escalation, error) {
	escalation, err := s.escalationRepo.GetByID(ctx, id)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("error fetching escalation")
		return nil, NewEscalationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "failed to fetch escalation")
	}
	if escalation == nil {
		return nil, NewEscalationError(ErrEscalationNotFound, apiErrors.ErrNotFound, id, "")
	}

	return escalation, nil
}

func (s *Service) CreateEscalation(ctx context.Context, escalation *domain.Escalation) (*domain.Escalation, error) {
	if err := s.prepare(escalation); err != nil {
		return nil, err
	}

	created, err := s.escalationRepo.Create(ctx, escalation)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("error creating escalation")
		return nil, NewEscalationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, 0, "failed to create escalation")
	}

	refresh.PublishWrite(s.publisher, domain.EntityEscalation, refresh.OperationCreated, created)

	return created, nil
}

func (s *Service) UpdateEscalation(ctx context.Context, escalation *domain.Escalation) (*domain.Escalation, error) {
	if escalation.ID == 0 {
		return nil, NewEscalationError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, 0, "id is required")
	}

	if err := s.prepare(escalation); err != nil {
		return nil, err
	}

	updated, err := s.escalationRepo.Update(ctx, escalation)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("error updating escalation")
		return nil, NewEscalationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, escalation.ID, "failed to update escalation")
	}
	if updated == nil {
		return nil, NewEscalationError(ErrEscalationNotFound, apiErrors.ErrNotFound, escalation.ID, "")
	}

	refresh.PublishWrite(s.publisher, domain.EntityEscalation, refresh.OperationUpdated, updated)

	return updated, nil
}

func (s *Service) DeleteEscalation(ctx context.Context, id int) error {
	deleted, err := s.escalationRepo.Delete(ctx, id)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("error deleting escalation")
		return NewEscalationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "failed to delete escalation")
	}
	if !deleted {
		return NewEscalationError(ErrEscalationNotFound, apiErrors.ErrNotFound, id, "")
	}

	refresh.PublishWrite(s.publisher, domain.EntityEscalation, refresh.OperationDeleted, map[string]int{"id": id})

	return nil
}

// prepare validates the escalation and fills defaults. Closing an escalation stamps its resolution date.
func (s *Service) prepare(escalation *domain.Escalation) error {
	escalation.Title = strings.TrimSpace(escalation.Title)
	if escalation.Title == "" {
		return NewEscalationError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, escalation.ID, "title is required")
	}

	now := s.clock.Now()

	if escalation.Status == "" {
		escalation.Status = domain.EscalationStatusOpen
	}
	if escalation.EscalationDate.IsZero() {
		escalation.EscalationDate = now
	}

	if escalation.IsOpen() {
		escalation.ResolutionDate = nil
	} else if escalation.ResolutionDate == nil {
		escalation.ResolutionDate = &now
	}

	if escalation.ResolutionDate != nil && escalation.ResolutionDate.Before(escalation.EscalationDate) {
		return NewEscalationError(ErrInvalidEscalation, apiErrors.ErrInvalidFormat, escalation.ID, "resolution_date is before escalation_date")
	}

	return nil
}
