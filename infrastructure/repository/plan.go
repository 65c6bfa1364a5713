package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/workforce-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/workforce-dashboard-api/internal/domain"
)

const (
	milestonesTable = "milestones"
	risksTable      = "risks"
)

var milestoneColumns = []string{
	"id", "project_id", "name", "milestone_type", "owner", "status", "progress", "risk_level",
	"due_date", "completion_date", "notes", "created_at", "updated_at",
}

var riskColumns = []string{
	"id", "project_id", "issue", "risk_type", "owner", "priority", "status", "risk_level",
	"impact", "probability", "mitigation_plan", "risk_date", "notes", "created_at", "updated_at",
}

// ProjectPlanRepository stores the milestones and risks tracked under a project
type ProjectPlanRepository interface {
	ListMilestones(ctx context.Context, projectID int) ([]*domain.Milestone, error)
	CreateMilestone(ctx context.Context, milestone *domain.Milestone) (*domain.Milestone, error)
	ListRisks(ctx context.Context, projectID int) ([]*domain.Risk, error)
	CreateRisk(ctx context.Context, risk *domain.Risk) (*domain.Risk, error)
}

type projectPlanRepository struct {
	conn postgres.Queryer
}

func NewProjectPlanRepository(conn postgres.Queryer) ProjectPlanRepository {
	return &projectPlanRepository{
		conn: conn,
	}
}

func listMilestonesQuery(projectID int) squirrel.SelectBuilder {
	return psql.Select(milestoneColumns...).
		From(milestonesTable).
		Where(squirrel.Eq{"project_id": projectID}).
		OrderBy("due_date ASC NULLS LAST", "id ASC")
}

// risks are listed worst first, newest first within a level
func listRisksQuery(projectID int) squirrel.SelectBuilder {
	return psql.Select(riskColumns...).
		From(risksTable).
		Where(squirrel.Eq{"project_id": projectID}).
		OrderBy("CASE risk_level WHEN 'High' THEN 0 WHEN 'Medium' THEN 1 WHEN 'Low' THEN 2 ELSE 3 END", "risk_date DESC NULLS LAST", "id DESC")
}

func (r *projectPlanRepository) ListMilestones(ctx context.Context, projectID int) ([]*domain.Milestone, error) {
	query, args, err := listMilestonesQuery(projectID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing milestones of project %d: %w", projectID, err)
	}
	defer rows.Close()

	milestones := make([]*domain.Milestone, 0)
	for rows.Next() {
		var m domain.Milestone
		err := rows.Scan(
			&m.ID, &m.ProjectID, &m.Name, &m.MilestoneType, &m.Owner, &m.Status, &m.Progress, &m.RiskLevel,
			&m.DueDate, &m.CompletionDate, &m.Notes, &m.CreatedAt, &m.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning milestone: %w", err)
		}
		milestones = append(milestones, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating milestones: %w", err)
	}

	return milestones, nil
}

func (r *projectPlanRepository) CreateMilestone(ctx context.Context, m *domain.Milestone) (*domain.Milestone, error) {
	query, args, err := psql.Insert(milestonesTable).
		Columns(milestoneColumns[1:11]...).
		Values(m.ProjectID, m.Name, m.MilestoneType, m.Owner, m.Status, m.Progress, m.RiskLevel,
			m.DueDate, m.CompletionDate, m.Notes).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	if err := r.conn.QueryRow(ctx, query, args...).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, fmt.Errorf("error creating milestone: %w", err)
	}

	return m, nil
}

func (r *projectPlanRepository) ListRisks(ctx context.Context, projectID int) ([]*domain.Risk, error) {
	query, args, err := listRisksQuery(projectID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing risks of project %d: %w", projectID, err)
	}
	defer rows.Close()

	risks := make([]*domain.Risk, 0)
	for rows.Next() {
		var risk domain.Risk
		err := rows.Scan(
			&risk.ID, &risk.ProjectID, &risk.Issue, &risk.RiskType, &risk.Owner, &risk.Priority, &risk.Status, &risk.RiskLevel,
			&risk.Impact, &risk.Probability, &risk.MitigationPlan, &risk.RiskDate, &risk.Notes, &risk.CreatedAt, &risk.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning risk: %w", err)
		}
		risks = append(risks, &risk)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating risks: %w", err)
	}

	return risks, nil
}

func (r *projectPlanRepository) CreateRisk(ctx context.Context, risk *domain.Risk) (*domain.Risk, error) {
	query, args, err := psql.Insert(risksTable).
		Columns(riskColumns[1:13]...).
		Values(risk.ProjectID, risk.Issue, risk.RiskType, risk.Owner, risk.Priority, risk.Status, risk.RiskLevel,
			risk.Impact, risk.Probability, risk.MitigationPlan, risk.RiskDate, risk.Notes).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	if err := r.conn.QueryRow(ctx, query, args...).Scan(&risk.ID, &risk.CreatedAt, &risk.UpdatedAt); err != nil {
		return nil, fmt.Errorf("error creating risk: %w", err)
	}

	return risk, nil
}
