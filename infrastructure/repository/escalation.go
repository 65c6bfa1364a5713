package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/workforce-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/workforce-dashboard-api/internal/domain"
)

const escalationsTable = "escalations"

var escalationColumns = []string{
	"id", "title", "customer", "project", "project_id", "owner", "priority", "status",
	"severity", "risk_level", "description", "escalation_date", "resolution_date",
	"resolution_status", "created_at", "updated_at",
}

type EscalationRepository interface {
	List(ctx context.Context, period *domain.Period) ([]*domain.Escalation, error)
	GetByID(ctx context.Context, id int) (*domain.Escalation, error)
	Create(ctx context.Context, escalation *domain.Escalation) (*domain.Escalation, error)
	Update(ctx context.Context, escalation *domain.Escalation) (*domain.Escalation, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type escalationRepository struct {
	conn postgres.Queryer
}

func NewEscalationRepository(conn postgres.Queryer) EscalationRepository {
	return &escalationRepository{
		conn: conn,
	}
}

func listEscalationsQuery(period *domain.Period) squirrel.SelectBuilder {
	query := psql.Select(escalationColumns...).
		From(escalationsTable).
		OrderBy("escalation_date DESC", "id DESC")

	if period != nil {
		query = query.Where(betweenPeriod("escalation_date", period))
	}

	return query
}

func (r *escalationRepository) List(ctx context.Context, period *domain.Period) ([]*domain.Escalation, error) {
	query, args, err := listEscalationsQuery(period).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing escalations: %w", err)
	}
	defer rows.Close()

	escalations := make([]*domain.Escalation, 0)
	for rows.Next() {
		escalation, err := scanEscalation(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning escalation: %w", err)
		}
		escalations = append(escalations, escalation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating escalations: %w", err)
	}

	return escalations, nil
}

func (r *escalationRepository) GetByID(ctx context.Context, id int) (*domain.Escalation, error) {
	query, args, err := psql.Select(escalationColumns...).
		From(escalationsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	escalation, err := scanEscalation(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching escalation %d: %w", id, err)
	}

	return escalation, nil
}

func (r *escalationRepository) Create(ctx context.Context, e *domain.Escalation) (*domain.Escalation, error) {
	query, args, err := psql.Insert(escalationsTable).
		Columns(escalationColumns[1:14]...).
		Values(e.Title, e.Customer, e.Project, e.ProjectID, e.Owner, e.Priority, e.Status,
			e.Severity, e.RiskLevel, e.Description, e.EscalationDate, e.ResolutionDate, e.ResolutionStatus).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	if err := r.conn.QueryRow(ctx, query, args...).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, fmt.Errorf("error creating escalation: %w", err)
	}

	return e, nil
}

func (r *escalationRepository) Update(ctx context.Context, e *domain.Escalation) (*domain.Escalation, error) {
	query, args, err := psql.Update(escalationsTable).
		SetMap(map[string]interface{}{
			"title":             e.Title,
			"customer":          e.Customer,
			"project":           e.Project,
			"project_id":        e.ProjectID,
			"owner":             e.Owner,
			"priority":          e.Priority,
			"status":            e.Status,
			"severity":          e.Severity,
			"risk_level":        e.RiskLevel,
			"description":       e.Description,
			"escalation_date":   e.EscalationDate,
			"resolution_date":   e.ResolutionDate,
			"resolution_status": e.ResolutionStatus,
			"updated_at":        squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": e.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	if err := r.conn.QueryRow(ctx, query, args...).Scan(&e.CreatedAt, &e.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error updating escalation %d: %w", e.ID, err)
	}

	return e, nil
}

func (r *escalationRepository) Delete(ctx context.Context, id int) (bool, error) {
	return deleteByID(ctx, r.conn, escalationsTable, id)
}

func scanEscalation(row rowScanner) (*domain.Escalation, error) {
	var e domain.Escalation
	err := row.Scan(
		&e.ID, &e.Title, &e.Customer, &e.Project, &e.ProjectID, &e.Owner, &e.Priority, &e.Status,
		&e.Severity, &e.RiskLevel, &e.Description, &e.EscalationDate, &e.ResolutionDate,
		&e.ResolutionStatus, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
