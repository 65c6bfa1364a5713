package staffing

import (
	"context"
	"strings"

	"github.com/vfg2006/workforce-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/workforce-dashboard-api/internal/domain"
	"github.com/vfg2006/workforce-dashboard-api/internal/refresh"
	"github.com/vfg2006/workforce-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/workforce-dashboard-api/pkg/log"
)

type ResourceService interface {
	ListResources(ctx context.Context, filters repository.ResourceFilters) ([]*domain.Resource, error)
	GetResource(ctx context.Context, id int) (*domain.Resource, error)
	CreateResource(ctx context.Context, resource *domain.Resource) (*domain.Resource, error)
	UpdateResource(ctx context.Context, resource *domain.Resource) (*domain.Resource, error)
	DeleteResource(ctx context.Context, id int) error
}

type Service struct {
	resourceRepo repository.ResourceRepository
	publisher    refresh.Publisher
}

func NewService(resourceRepo repository.ResourceRepository, publisher refresh.Publisher) ResourceService {
	return &Service{
		resourceRepo: resourceRepo,
		publisher:    publisher,
	}
}

func (s *Service) ListResources(ctx context.Context, filters repository.ResourceFilters) ([]*domain.Resource, error) {
	resources, err := s.resourceRepo.List(ctx, filters)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("error listing resources")
		return nil, NewResourceError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "failed to list resources")
	}

	return resources, nil
}

func (s *Service) GetResource(ctx context.Context, id int) (*domain.Resource, error) {
	resource, err := s.resourceRepo.GetByID(ctx, id)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("error fetching resource")
		return nil, NewResourceErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "failed to fetch resource")
	}
	if resource == nil {
		return nil, NewResourceErrorWithID(ErrResourceNotFound, apiErrors.ErrNotFound, id, "")
	}

	return resource, nil
}

func (s *Service) CreateResource(ctx context.Context, resource *domain.Resource) (*domain.Resource, error) {
	if err := validateResource(resource); err != nil {
		return nil, err
	}

	if err := s.ensureEmployeeIDFree(ctx, resource); err != nil {
		return nil, err
	}

	created, err := s.resourceRepo.Create(ctx, resource)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("error creating resource")
		return nil, NewResourceError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "failed to create resource")
	}

	refresh.PublishWrite(s.publisher, domain.EntityResource, refresh.OperationCreated, created)

	return created, nil
}

func (s *Service) UpdateResource(ctx context.Context, resource *domain.Resource) (*domain.Resource, error) {
	if resource.ID == 0 {
		return nil, NewResourceError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "id is required")
	}

	if err := validateResource(resource); err != nil {
		return nil, err
	}

	if err := s.ensureEmployeeIDFree(ctx, resource); err != nil {
		return nil, err
	}

	updated, err := s.resourceRepo.Update(ctx, resource)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("error updating resource")
		return nil, NewResourceErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, resource.ID, "failed to update resource")
	}
	if updated == nil {
		return nil, NewResourceErrorWithID(ErrResourceNotFound, apiErrors.ErrNotFound, resource.ID, "")
	}

	refresh.PublishWrite(s.publisher, domain.EntityResource, refresh.OperationUpdated, updated)

	return updated, nil
}

func (s *Service) DeleteResource(ctx context.Context, id int) error {
	deleted, err := s.resourceRepo.Delete(ctx, id)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("error deleting resource")
		return NewResourceErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "failed to delete resource")
	}
	if !deleted {
		return NewResourceErrorWithID(ErrResourceNotFound, apiErrors.ErrNotFound, id, "")
	}

	refresh.PublishWrite(s.publisher, domain.EntityResource, refresh.OperationDeleted, map[string]int{"id": id})

	return nil
}

func (s *Service) ensureEmployeeIDFree(ctx context.Context, resource *domain.Resource) error {
	existing, err := s.resourceRepo.GetByEmployeeID(ctx, resource.EmployeeID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("error checking employee id")
		return NewResourceError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "failed to check employee id")
	}
	if existing != nil && existing.ID != resource.ID {
		return NewResourceErrorWithID(ErrEmployeeIDTaken, apiErrors.ErrConflict, existing.ID, resource.EmployeeID)
	}
	return nil
}

func validateResource(resource *domain.Resource) error {
	resource.EmployeeID = strings.TrimSpace(resource.EmployeeID)
	resource.FullName = strings.TrimSpace(resource.FullName)
	resource.Email = strings.ToLower(strings.TrimSpace(resource.Email))

	if resource.EmployeeID == "" || resource.FullName == "" {
		return NewResourceError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "employee_id and full_name are required")
	}

	if resource.MonthlySalaryCost.IsNegative() || resource.BillingRate.IsNegative() {
		return NewResourceError(ErrInvalidResource, apiErrors.ErrInvalidFormat, "amounts must not be negative")
	}

	if resource.UtilizationRate != nil && (*resource.UtilizationRate < 0 || *resource.UtilizationRate > 100) {
		return NewResourceError(ErrInvalidResource, apiErrors.ErrInvalidFormat, "utilization_rate must be between 0 and 100")
	}

	if resource.JoiningDate != nil && resource.LastWorkingDay != nil && resource.LastWorkingDay.Before(*resource.JoiningDate) {
		return NewResourceError(ErrInvalidResource, apiErrors.ErrInvalidFormat, "last_working_day is before joining_date")
	}

	if resource.IsIntern {
		if resource.JoiningDate != nil && resource.InternshipEndDate != nil && resource.InternshipEndDate.Before(*resource.JoiningDate) {
			return NewResourceError(ErrInvalidResource, apiErrors.ErrInvalidFormat, "internship_end_date is before joining_date")
		}
	} else {
		resource.InternshipEndDate = nil
		resource.MentorName = nil
	}

	if resource.PrimarySkills == nil {
		resource.PrimarySkills = []string{}
	}

	return nil
}
