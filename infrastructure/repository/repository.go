package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/workforce-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/workforce-dashboard-api/internal/domain"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// psql is the statement builder shared by every repository
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// betweenPeriod keeps rows whose column falls inside the period
func betweenPeriod(column string, period *domain.Period) squirrel.Sqlizer {
	return squirrel.And{
		squirrel.GtOrEq{column: period.Start},
		squirrel.LtOrEq{column: period.End},
	}
}

// overlapsPeriod keeps rows whose [startColumn, endColumn] range touches the period; NULL bounds are open
func overlapsPeriod(startColumn, endColumn string, period *domain.Period) squirrel.Sqlizer {
	return squirrel.And{
		squirrel.Or{squirrel.Eq{startColumn: nil}, squirrel.LtOrEq{startColumn: period.End}},
		squirrel.Or{squirrel.Eq{endColumn: nil}, squirrel.GtOrEq{endColumn: period.Start}},
	}
}

func deleteByID(ctx context.Context, conn postgres.Queryer, table string, id int) (bool, error) {
	query, args, err := psql.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("error building query: %w", err)
	}

	result, err := conn.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("error deleting from %s: %w", table, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error reading affected rows: %w", err)
	}

	return affected > 0, nil
}
