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

// PlanService manages what is tracked under a single project: milestones, risks and the assigned team
type PlanService interface {
	ListMilestones(ctx context.Context, projectID int) ([]*domain.Milestone, error)
	CreateMilestone(ctx context.Context, milestone *domain.Milestone) (*domain.Milestone, error)
	ListRisks(ctx context.Context, projectID int) ([]*domain.Risk, error)
	CreateRisk(ctx context.Context, risk *domain.Risk) (*domain.Risk, error)
	ListTeamMembers(ctx context.Context, projectID int) ([]*domain.Resource, error)
}

type Plans struct {
	projectRepo  repository.ProjectRepository
	planRepo     repository.ProjectPlanRepository
	resourceRepo repository.ResourceRepository
	publisher    refresh.Publisher
}

func NewPlanService(
	projectRepo repository.ProjectRepository,
	planRepo repository.ProjectPlanRepository,
	resourceRepo repository.ResourceRepository,
	publisher refresh.Publisher,
) PlanService {
	return &Plans{
		projectRepo:  projectRepo,
		planRepo:     planRepo,
		resourceRepo: resourceRepo,
		publisher:    publisher,
	}
}

func (s *Plans) ListMilestones(ctx context.Context, projectID int) ([]*domain.Milestone, error) {
	if err := s.ensureProject(ctx, projectID); err != nil {
		return nil, err
	}

	milestones, err := s.planRepo.ListMilestones(ctx, projectID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("error listing milestones")
		return nil, NewProjectError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, projectID, "failed to list milestones")
	}

	return milestones, nil
}

func (s *Plans) CreateMilestone(ctx context.Context, milestone *domain.Milestone) (*domain.Milestone, error) {
	if err := validateMilestone(milestone); err != nil {
		return nil, err
	}
	if err := s.ensureProject(ctx, milestone.ProjectID); err != nil {
		return nil, err
	}

	created, err := s.planRepo.CreateMilestone(ctx, milestone)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("error creating milestone")
		return nil, NewProjectError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, milestone.ProjectID, "failed to create milestone")
	}

	refresh.PublishWrite(s.publisher, domain.EntityProject, refresh.OperationUpdated, created)

	return created, nil
}

func (s *Plans) ListRisks(ctx context.Context, projectID int) ([]*domain.Risk, error) {
	if err := s.ensureProject(ctx, projectID); err != nil {
		return nil, err
	}

	risks, err := s.planRepo.ListRisks(ctx, projectID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("error listing risks")
		return nil, NewProjectError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, projectID, "failed to list risks")
	}

	return risks, nil
}

func (s *Plans) CreateRisk(ctx context.Context, risk *domain.Risk) (*domain.Risk, error) {
	if err := validateRisk(risk); err != nil {
		return nil, err
	}
	if err := s.ensureProject(ctx, risk.ProjectID); err != nil {
		return nil, err
	}

	created, err := s.planRepo.CreateRisk(ctx, risk)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("error creating risk")
		return nil, NewProjectError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, risk.ProjectID, "failed to create risk")
	}

	refresh.PublishWrite(s.publisher, domain.EntityProject, refresh.OperationUpdated, created)

	return created, nil
}

// ListTeamMembers returns the resources whose current project is this one
func (s *Plans) ListTeamMembers(ctx context.Context, projectID int) ([]*domain.Resource, error) {
	if err := s.ensureProject(ctx, projectID); err != nil {
		return nil, err
	}

	members, err := s.resourceRepo.List(ctx, repository.ResourceFilters{ProjectID: &projectID})
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("error listing team members")
		return nil, NewProjectError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, projectID, "failed to list team members")
	}

	return members, nil
}

func (s *Plans) ensureProject(ctx context.Context, projectID int) error {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("error fetching project")
		return NewProjectError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, projectID, "failed to fetch project")
	}
	if project == nil {
		return NewProjectError(ErrProjectNotFound, apiErrors.ErrNotFound, projectID, "")
	}
	return nil
}

func validateMilestone(milestone *domain.Milestone) error {
	milestone.Name = strings.TrimSpace(milestone.Name)
	if milestone.Name == "" {
		return NewProjectError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, milestone.ProjectID, "name is required")
	}

	if milestone.Status == "" {
		milestone.Status = domain.MilestoneStatusPlanned
	}
	if !domain.ValidMilestoneStatus(milestone.Status) {
		return NewProjectError(ErrInvalidMilestone, apiErrors.ErrInvalidFormat, milestone.ProjectID, fmt.Sprintf("unknown status %q", milestone.Status))
	}

	if milestone.Progress < 0 || milestone.Progress > 100 {
		return NewProjectError(ErrInvalidMilestone, apiErrors.ErrInvalidFormat, milestone.ProjectID, "progress must be between 0 and 100")
	}

	return nil
}

func validateRisk(risk *domain.Risk) error {
	risk.Issue = strings.TrimSpace(risk.Issue)
	if risk.Issue == "" {
		return NewProjectError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, risk.ProjectID, "issue is required")
	}

	if risk.Status == "" {
		risk.Status = domain.RiskStatusOpen
	}
	if !domain.ValidRiskStatus(risk.Status) {
		return NewProjectError(ErrInvalidRisk, apiErrors.ErrInvalidFormat, risk.ProjectID, fmt.Sprintf("unknown status %q", risk.Status))
	}

	return nil
}
