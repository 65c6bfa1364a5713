package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/workforce-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/workforce-dashboard-api/internal/domain"
)

const financialDataTable = "financial_data"

var financialDataColumns = []string{
	"id", "project_id", "finance_type", "finance_category", "finance_date", "sow_value",
	"revenue_generated", "actual_cost_to_date", "billable_cost", "non_billable_cost",
	"monthly_burn", "health_status", "notes", "created_at", "updated_at",
}

type FinancialDataRepository interface {
	List(ctx context.Context, period *domain.Period, projectID *int) ([]*domain.FinancialData, error)
	GetByID(ctx context.Context, id int) (*domain.FinancialData, error)
	Create(ctx context.Context, data *domain.FinancialData) (*domain.FinancialData, error)
	Update(ctx context.Context, data *domain.FinancialData) (*domain.FinancialData, error)
	Delete(ctx context.Context, id int) (bool, error)
	// Totals sums revenue and cost of the records dated inside the period
	Totals(ctx context.Context, period *domain.Period) (revenue, cost decimal.Decimal, err error)
}

type financialDataRepository struct {
	conn postgres.Queryer
}

func NewFinancialDataRepository(conn postgres.Queryer) FinancialDataRepository {
	return &financialDataRepository{
		conn: conn,
	}
}

func listFinancialDataQuery(period *domain.Period, projectID *int) squirrel.SelectBuilder {
	query := psql.Select(financialDataColumns...).
		From(financialDataTable).
		OrderBy("finance_date DESC", "id DESC")

	if period != nil {
		query = query.Where(betweenPeriod("finance_date", period))
	}
	if projectID != nil {
		query = query.Where(squirrel.Eq{"project_id": *projectID})
	}

	return query
}

func financialTotalsQuery(period *domain.Period) squirrel.SelectBuilder {
	query := psql.Select(
		"COALESCE(SUM(revenue_generated), 0)",
		"COALESCE(SUM(actual_cost_to_date), 0)",
	).From(financialDataTable)

	if period != nil {
		query = query.Where(betweenPeriod("finance_date", period))
	}

	return query
}

func (r *financialDataRepository) List(ctx context.Context, period *domain.Period, projectID *int) ([]*domain.FinancialData, error) {
	query, args, err := listFinancialDataQuery(period, projectID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing financial data: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.FinancialData, 0)
	for rows.Next() {
		record, err := scanFinancialData(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning financial data: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating financial data: %w", err)
	}

	return records, nil
}

func (r *financialDataRepository) Totals(ctx context.Context, period *domain.Period) (decimal.Decimal, decimal.Decimal, error) {
	query, args, err := financialTotalsQuery(period).ToSql()
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("error building query: %w", err)
	}

	var revenue, cost decimal.Decimal
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&revenue, &cost); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("error summing financial data: %w", err)
	}

	return revenue, cost, nil
}

func (r *financialDataRepository) GetByID(ctx context.Context, id int) (*domain.FinancialData, error) {
	query, args, err := psql.Select(financialDataColumns...).
		From(financialDataTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	record, err := scanFinancialData(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching financial data %d: %w", id, err)
	}

	return record, nil
}

func (r *financialDataRepository) Create(ctx context.Context, f *domain.FinancialData) (*domain.FinancialData, error) {
	query, args, err := psql.Insert(financialDataTable).
		Columns(financialDataColumns[1:13]...).
		Values(f.ProjectID, f.FinanceType, f.FinanceCategory, f.FinanceDate, f.SOWValue,
			f.RevenueGenerated, f.ActualCostToDate, f.BillableCost, f.NonBillableCost,
			f.MonthlyBurn, f.HealthStatus, f.Notes).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	if err := r.conn.QueryRow(ctx, query, args...).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, fmt.Errorf("error creating financial data: %w", err)
	}

	return f, nil
}

func (r *financialDataRepository) Update(ctx context.Context, f *domain.FinancialData) (*domain.FinancialData, error) {
	query, args, err := psql.Update(financialDataTable).
		SetMap(map[string]interface{}{
			"project_id":          f.ProjectID,
			"finance_type":        f.FinanceType,
			"finance_category":    f.FinanceCategory,
			"finance_date":        f.FinanceDate,
			"sow_value":           f.SOWValue,
			"revenue_generated":   f.RevenueGenerated,
			"actual_cost_to_date": f.ActualCostToDate,
			"billable_cost":       f.BillableCost,
			"non_billable_cost":   f.NonBillableCost,
			"monthly_burn":        f.MonthlyBurn,
			"health_status":       f.HealthStatus,
			"notes":               f.Notes,
			"updated_at":          squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": f.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	if err := r.conn.QueryRow(ctx, query, args...).Scan(&f.CreatedAt, &f.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error updating financial data %d: %w", f.ID, err)
	}

	return f, nil
}

func (r *financialDataRepository) Delete(ctx context.Context, id int) (bool, error) {
	return deleteByID(ctx, r.conn, financialDataTable, id)
}

func scanFinancialData(row rowScanner) (*domain.FinancialData, error) {
	var f domain.FinancialData
	err := row.Scan(
		&f.ID, &f.ProjectID, &f.FinanceType, &f.FinanceCategory, &f.FinanceDate, &f.SOWValue,
		&f.RevenueGenerated, &f.ActualCostToDate, &f.BillableCost, &f.NonBillableCost,
		&f.MonthlyBurn, &f.HealthStatus, &f.Notes, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
