package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/workforce-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/workforce-dashboard-api/internal/domain"
)

const projectsTable = "projects"

var projectColumns = []string{
	"id", "name", "description", "customer", "category", "status", "progress", "team_lead",
	"priority", "project_type", "health_status", "budget", "start_date", "end_date",
	"created_at", "updated_at",
}

type ProjectRepository interface {
	List(ctx context.Context, period *domain.Period) ([]*domain.Project, error)
	GetByID(ctx context.Context, id int) (*domain.Project, error)
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	Update(ctx context.Context, project *domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, id int) (bool, error)
	CountByStatus(ctx context.Context, period *domain.Period) (map[string]int, error)
}

type projectRepository struct {
	conn postgres.Queryer
}

func NewProjectRepository(conn postgres.Queryer) ProjectRepository {
	return &projectRepository{
		conn: conn,
	}
}

func listProjectsQuery(period *domain.Period) squirrel.SelectBuilder {
	query := psql.Select(projectColumns...).
		From(projectsTable).
		OrderBy("name ASC")

	if period != nil {
		query = query.Where(overlapsPeriod("start_date", "end_date", period))
	}

	return query
}

func countProjectsByStatusQuery(period *domain.Period) squirrel.SelectBuilder {
	query := psql.Select("status", "COUNT(*)").
		From(projectsTable).
		GroupBy("status")

	if period != nil {
		query = query.Where(overlapsPeriod("start_date", "end_date", period))
	}

	return query
}

func (r *projectRepository) List(ctx context.Context, period *domain.Period) ([]*domain.Project, error) {
	query, args, err := listProjectsQuery(period).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing projects: %w", err)
	}
	defer rows.Close()

	projects := make([]*domain.Project, 0)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning project: %w", err)
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}

	return projects, nil
}

func (r *projectRepository) CountByStatus(ctx context.Context, period *domain.Period) (map[string]int, error) {
	query, args, err := countProjectsByStatusQuery(period).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error counting projects: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("error scanning project count: %w", err)
		}
		counts[status] = count
	}

	return counts, rows.Err()
}

func (r *projectRepository) GetByID(ctx context.Context, id int) (*domain.Project, error) {
	query, args, err := psql.Select(projectColumns...).
		From(projectsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	project, err := scanProject(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching project %d: %w", id, err)
	}

	return project, nil
}

func (r *projectRepository) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	query, args, err := psql.Insert(projectsTable).
		Columns(projectColumns[1:14]...).
		Values(p.Name, p.Description, p.Customer, p.Category, p.Status, p.Progress, p.TeamLead,
			p.Priority, p.ProjectType, p.HealthStatus, p.Budget, p.StartDate, p.EndDate).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	if err := r.conn.QueryRow(ctx, query, args...).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, fmt.Errorf("error creating project: %w", err)
	}

	return p, nil
}

func (r *projectRepository) Update(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	query, args, err := psql.Update(projectsTable).
		SetMap(map[string]interface{}{
			"name":          p.Name,
			"description":   p.Description,
			"customer":      p.Customer,
			"category":      p.Category,
			"status":        p.Status,
			"progress":      p.Progress,
			"team_lead":     p.TeamLead,
			"priority":      p.Priority,
			"project_type":  p.ProjectType,
			"health_status": p.HealthStatus,
			"budget":        p.Budget,
			"start_date":    p.StartDate,
			"end_date":      p.EndDate,
			"updated_at":    squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": p.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	if err := r.conn.QueryRow(ctx, query, args...).Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error updating project %d: %w", p.ID, err)
	}

	return p, nil
}

func (r *projectRepository) Delete(ctx context.Context, id int) (bool, error) {
	return deleteByID(ctx, r.conn, projectsTable, id)
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Customer, &p.Category, &p.Status, &p.Progress, &p.TeamLead,
		&p.Priority, &p.ProjectType, &p.HealthStatus, &p.Budget, &p.StartDate, &p.EndDate,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
