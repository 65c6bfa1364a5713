package projecting

import (
	"context"
	"fmt"
	"strings"

	"github.com/vfg2006/workforce-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/workforce-dashboard-api/internal/domain"
	"github.com/vfg2006/workforce-dashboard-api/internal/refresh"
	"github.com/vfg2006/workforce-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/workforce-dashboard-api/pkg/log"
)

type ProjectService interface {
	ListProjects(ctx context.Context, period *domain.Period) ([]*domain.Project, error)
	GetProject(ctx context.Context, id int) (*domain.Project, error)
	CreateProject(ctx context.Context, project *domain.Project) (*domain.Project, error)
	UpdateProject(ctx context.Context, project *domain.Project) (*domain.Project, error)
	DeleteProject(ctx context.Context, id int) error
}

type Service struct {
	projectRepo repository.ProjectRepository
	publisher   refresh.Publisher
}

func NewService(projectRepo repository.ProjectRepository, publisher refresh.Publisher) ProjectService {
	return &Service{
		projectRepo: projectRepo,
		publisher:   publisher,
	}
}

func (s *Service) ListProjects(ctx context.Context, period *domain.Period) ([]*domain.Project, error) {
	projects, err := s.projectRepo.List(ctx, period)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("error listing projects")
		return nil, NewProjectError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, 0, "failed to list projects")
	}

	return projects, nil
}

func (s *Service) GetProject(ctx context.Context, id int) (*domain.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("error fetching project")
		return nil, NewProjectError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "failed to fetch project")
	}
	if project == nil {
		return nil, NewProjectError(ErrProjectNotFound, apiErrors.ErrNotFound, id, "")
	}

	return project, nil
}

func (s *Service) CreateProject(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	if err := validateProject(project); err != nil {
		return nil, err
	}

	created, err := s.projectRepo.Create(ctx, project)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("error creating project")
		return nil, NewProjectError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, 0, "failed to create project")
	}

	refresh.PublishWrite(s.publisher, domain.EntityProject, refresh.OperationCreated, created)

	return created, nil
}

func (s *Service) UpdateProject(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	if project.ID == 0 {
		return nil, NewProjectError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, 0, "id is required")
	}

	if err := validateProject(project); err != nil {
		return nil, err
	}

	updated, err := s.projectRepo.Update(ctx, project)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("error updating project")
		return nil, NewProjectError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, project.ID, "failed to update project")
	}
	if updated == nil {
		return nil, NewProjectError(ErrProjectNotFound, apiErrors.ErrNotFound, project.ID, "")
	}

	refresh.PublishWrite(s.publisher, domain.EntityProject, refresh.OperationUpdated, updated)

	return updated, nil
}

func (s *Service) DeleteProject(ctx context.Context, id int) error {
	deleted, err := s.projectRepo.Delete(ctx, id)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("error deleting project")
		return NewProjectError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "failed to delete project")
	}
	if !deleted {
		return NewProjectError(ErrProjectNotFound, apiErrors.ErrNotFound, id, "")
	}

	refresh.PublishWrite(s.publisher, domain.EntityProject, refresh.OperationDeleted, map[string]int{"id": id})

	return nil
}

func validateProject(project *domain.Project) error {
	project.Name = strings.TrimSpace(project.Name)
	if project.Name == "" {
		return NewProjectError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, project.ID, "name is required")
	}

	if project.Status == "" {
		project.Status = domain.ProjectStatusOnTrack
	}
	if !domain.ValidProjectStatus(project.Status) {
		return NewProjectError(ErrInvalidProject, apiErrors.ErrInvalidFormat, project.ID, fmt.Sprintf("unknown status %q", project.Status))
	}

	if project.Progress < 0 || project.Progress > 100 {
		return NewProjectError(ErrInvalidProject, apiErrors.ErrInvalidFormat, project.ID, "progress must be between 0 and 100")
	}

	if project.Budget.IsNegative() {
		return NewProjectError(ErrInvalidProject, apiErrors.ErrInvalidFormat, project.ID, "budget must not be negative")
	}

	if project.StartDate != nil && project.EndDate != nil && project.EndDate.Before(*project.StartDate) {
		return NewProjectError(ErrInvalidProject, apiErrors.ErrInvalidFormat, project.ID, "end_date is before start_date")
	}

	return nil
}
