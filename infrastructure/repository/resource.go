package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/workforce-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/workforce-dashboard-api/internal/domain"
)

const resourcesTable = "resources"

var resourceColumns = []string{
	"id", "employee_id", "full_name", "email", "designation", "department", "location",
	"employment_type", "primary_skills", "billable_status", "current_bench_status", "is_intern",
	"mentor_name", "project_name", "joining_date", "internship_end_date", "last_working_day",
	"monthly_salary_cost", "billing_rate", "utilization_rate", "created_at", "updated_at",
}

// Dimensions a resource breakdown can group by
const (
	DimensionDepartment  = "department"
	DimensionDesignation = "designation"
	DimensionLocation    = "location"
)

var breakdownColumns = map[string]string{
	DimensionDepartment:  "department",
	DimensionDesignation: "designation",
	DimensionLocation:    "location",
}

// ResourceFilters narrows a resource listing. Nil fields are ignored.
type ResourceFilters struct {
	Period     *domain.Period
	Department *string
	Billable   *bool
	Interns    *bool
	// ProjectID keeps the resources assigned to the project by name
	ProjectID *int
	// Leaving keeps the resources whose last working day falls inside the period
	Leaving *domain.Period
}

type ResourceRepository interface {
	List(ctx context.Context, filters ResourceFilters) ([]*domain.Resource, error)
	GetByID(ctx context.Context, id int) (*domain.Resource, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*domain.Resource, error)
	Create(ctx context.Context, resource *domain.Resource) (*domain.Resource, error)
	Update(ctx context.Context, resource *domain.Resource) (*domain.Resource, error)
	Delete(ctx context.Context, id int) (bool, error)
	Headcount(ctx context.Context, period *domain.Period) (*domain.HeadcountSummary, error)
	Breakdown(ctx context.Context, dimension string, period *domain.Period) ([]domain.BreakdownItem, error)
	SkillCounts(ctx context.Context, period *domain.Period) ([]domain.BreakdownItem, error)
	UpcomingReleases(ctx context.Context, window domain.Period) ([]*domain.UpcomingRelease, error)
}

type resourceRepository struct {
	conn postgres.Queryer
}

func NewResourceRepository(conn postgres.Queryer) ResourceRepository {
	return &resourceRepository{
		conn: conn,
	}
}

func listResourcesQuery(filters ResourceFilters) squirrel.SelectBuilder {
	query := psql.Select(resourceColumns...).
		From(resourcesTable).
		OrderBy("full_name ASC")

	if filters.Period != nil {
		query = query.Where(overlapsPeriod("joining_date", "last_working_day", filters.Period))
	}
	if filters.Department != nil {
		query = query.Where(squirrel.Eq{"department": *filters.Department})
	}
	if filters.Billable != nil {
		query = query.Where(squirrel.Eq{"billable_status": *filters.Billable})
	}
	if filters.Interns != nil {
		query = query.Where(squirrel.Eq{"is_intern": *filters.Interns})
	}
	if filters.ProjectID != nil {
		query = query.Where(squirrel.Expr("project_name = (SELECT name FROM projects WHERE id = ?)", *filters.ProjectID))
	}
	if filters.Leaving != nil {
		query = query.Where(betweenPeriod("last_working_day", filters.Leaving))
	}

	return query
}

func headcountQuery(period *domain.Period) squirrel.SelectBuilder {
	query := psql.Select(
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE billable_status)",
		"COUNT(*) FILTER (WHERE current_bench_status)",
		"COUNT(*) FILTER (WHERE is_intern)",
	).From(resourcesTable)

	if period != nil {
		query = query.Where(overlapsPeriod("joining_date", "last_working_day", period))
	}

	return query
}

func breakdownQuery(dimension string, period *domain.Period) (squirrel.SelectBuilder, error) {
	column, ok := breakdownColumns[dimension]
	if !ok {
		return squirrel.SelectBuilder{}, fmt.Errorf("unknown breakdown dimension %q", dimension)
	}

	query := psql.Select(
		fmt.Sprintf("COALESCE(NULLIF(%s, ''), 'Unassigned') AS name", column),
		"COUNT(*) AS count",
	).
		From(resourcesTable).
		GroupBy("name").
		OrderBy("count DESC", "name ASC")

	if period != nil {
		query = query.Where(overlapsPeriod("joining_date", "last_working_day", period))
	}

	return query, nil
}

func skillCountsQuery(period *domain.Period) squirrel.SelectBuilder {
	query := psql.Select("skill AS name", "COUNT(*) AS count").
		From(resourcesTable + ", unnest(primary_skills) AS skill").
		GroupBy("skill").
		OrderBy("count DESC", "name ASC")

	if period != nil {
		query = query.Where(overlapsPeriod("joining_date", "last_working_day", period))
	}

	return query
}

// upcomingReleasesQuery joins resources to their project by name. Resources leaving
// before the project ends are not released, they are resigning.
func upcomingReleasesQuery(window domain.Period) squirrel.SelectBuilder {
	return psql.Select("r.id", "r.full_name", "p.name", "p.end_date", "r.primary_skills").
		From(resourcesTable + " r").
		Join(projectsTable + " p ON p.name = r.project_name").
		Where(betweenPeriod("p.end_date", &window)).
		Where(squirrel.Or{
			squirrel.Eq{"r.last_working_day": nil},
			squirrel.Expr("r.last_working_day >= p.end_date"),
		}).
		OrderBy("p.end_date ASC", "r.full_name ASC")
}

func (r *resourceRepository) List(ctx context.Context, filters ResourceFilters) ([]*domain.Resource, error) {
	query, args, err := listResourcesQuery(filters).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing resources: %w", err)
	}
	defer rows.Close()

	resources := make([]*domain.Resource, 0)
	for rows.Next() {
		resource, err := scanResource(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning resource: %w", err)
		}
		resources = append(resources, resource)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating resources: %w", err)
	}

	return resources, nil
}

func (r *resourceRepository) Headcount(ctx context.Context, period *domain.Period) (*domain.HeadcountSummary, error) {
	query, args, err := headcountQuery(period).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	var summary domain.HeadcountSummary
	err = r.conn.QueryRow(ctx, query, args...).Scan(&summary.Total, &summary.Billable, &summary.Bench, &summary.Interns)
	if err != nil {
		return nil, fmt.Errorf("error counting resources: %w", err)
	}

	return &summary, nil
}

func (r *resourceRepository) Breakdown(ctx context.Context, dimension string, period *domain.Period) ([]domain.BreakdownItem, error) {
	builder, err := breakdownQuery(dimension, period)
	if err != nil {
		return nil, err
	}

	return r.countBuckets(ctx, builder, "error counting resources by "+dimension)
}

func (r *resourceRepository) SkillCounts(ctx context.Context, period *domain.Period) ([]domain.BreakdownItem, error) {
	return r.countBuckets(ctx, skillCountsQuery(period), "error counting skills")
}

func (r *resourceRepository) countBuckets(ctx context.Context, builder squirrel.SelectBuilder, failure string) ([]domain.BreakdownItem, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", failure, err)
	}
	defer rows.Close()

	items := make([]domain.BreakdownItem, 0)
	for rows.Next() {
		var item domain.BreakdownItem
		if err := rows.Scan(&item.Name, &item.Count); err != nil {
			return nil, fmt.Errorf("error scanning count: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *resourceRepository) UpcomingReleases(ctx context.Context, window domain.Period) ([]*domain.UpcomingRelease, error) {
	query, args, err := upcomingReleasesQuery(window).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing upcoming releases: %w", err)
	}
	defer rows.Close()

	releases := make([]*domain.UpcomingRelease, 0)
	for rows.Next() {
		var release domain.UpcomingRelease
		if err := rows.Scan(&release.ResourceID, &release.FullName, &release.ProjectName,
			&release.ReleaseDate, pq.Array(&release.Skills)); err != nil {
			return nil, fmt.Errorf("error scanning upcoming release: %w", err)
		}
		releases = append(releases, &release)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating upcoming releases: %w", err)
	}

	return releases, nil
}

func (r *resourceRepository) GetByID(ctx context.Context, id int) (*domain.Resource, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

func (r *resourceRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*domain.Resource, error) {
	return r.getOne(ctx, squirrel.Eq{"employee_id": employeeID})
}

func (r *resourceRepository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Resource, error) {
	query, args, err := psql.Select(resourceColumns...).
		From(resourcesTable).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	resource, err := scanResource(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching resource: %w", err)
	}

	return resource, nil
}

func (r *resourceRepository) Create(ctx context.Context, res *domain.Resource) (*domain.Resource, error) {
	query, args, err := psql.Insert(resourcesTable).
		Columns(resourceColumns[1:20]...).
		Values(res.EmployeeID, res.FullName, res.Email, res.Designation, res.Department, res.Location,
			res.EmploymentType, pq.Array(res.PrimarySkills), res.BillableStatus, res.CurrentBenchStatus, res.IsIntern,
			res.MentorName, res.ProjectName, res.JoiningDate, res.InternshipEndDate, res.LastWorkingDay,
			res.MonthlySalaryCost, res.BillingRate, res.UtilizationRate).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	if err := r.conn.QueryRow(ctx, query, args...).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt); err != nil {
		return nil, fmt.Errorf("error creating resource: %w", err)
	}

	return res, nil
}

func (r *resourceRepository) Update(ctx context.Context, res *domain.Resource) (*domain.Resource, error) {
	query, args, err := psql.Update(resourcesTable).
		SetMap(map[string]interface{}{
			"employee_id":          res.EmployeeID,
			"full_name":            res.FullName,
			"email":                res.Email,
			"designation":          res.Designation,
			"department":           res.Department,
			"location":             res.Location,
			"employment_type":      res.EmploymentType,
			"primary_skills":       pq.Array(res.PrimarySkills),
			"billable_status":      res.BillableStatus,
			"current_bench_status": res.CurrentBenchStatus,
			"is_intern":            res.IsIntern,
			"mentor_name":          res.MentorName,
			"project_name":         res.ProjectName,
			"joining_date":         res.JoiningDate,
			"internship_end_date":  res.InternshipEndDate,
			"last_working_day":     res.LastWorkingDay,
			"monthly_salary_cost":  res.MonthlySalaryCost,
			"billing_rate":         res.BillingRate,
			"utilization_rate":     res.UtilizationRate,
			"updated_at":           squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": res.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	if err := r.conn.QueryRow(ctx, query, args...).Scan(&res.CreatedAt, &res.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error updating resource %d: %w", res.ID, err)
	}

	return res, nil
}

func (r *resourceRepository) Delete(ctx context.Context, id int) (bool, error) {
	return deleteByID(ctx, r.conn, resourcesTable, id)
}

func scanResource(row rowScanner) (*domain.Resource, error) {
	var res domain.Resource
	err := row.Scan(
		&res.ID, &res.EmployeeID, &res.FullName, &res.Email, &res.Designation, &res.Department, &res.Location,
		&res.EmploymentType, pq.Array(&res.PrimarySkills), &res.BillableStatus, &res.CurrentBenchStatus, &res.IsIntern,
		&res.MentorName, &res.ProjectName, &res.JoiningDate, &res.InternshipEndDate, &res.LastWorkingDay,
		&res.MonthlySalaryCost, &res.BillingRate, &res.UtilizationRate, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
