package repository

import (
	"context"
	"fmt"

	"labor-intel/internal/database"
)

type Entity string

const (
	EntityJobs         Entity = "jobs"
	EntityActiveJobs   Entity = "active_jobs"
	EntityCompanies    Entity = "companies"
	EntitySkills       Entity = "skills"
	EntityUniversities Entity = "universities"
	EntityPrograms     Entity = "programs"
)

type SalaryGrouping string

const (
	SalaryByExperience SalaryGrouping = "experience"
	SalaryByIndustry   SalaryGrouping = "industry"
)

type TrendDimension string

const (
	TrendByLocation       TrendDimension = "location"
	TrendByIndustry       TrendDimension = "industry"
	TrendByEmploymentType TrendDimension = "employment_type"
)

type SalaryTrend struct {
	Label string
	Value float64
	Count int
}

type AnalyticsRepository interface {
	Count(ctx context.Context, e Entity) (int, error)
	SalaryTrends(ctx context.Context, by SalaryGrouping) ([]SalaryTrend, error)
	JobTrends(ctx context.Context, by TrendDimension, limit int) ([]LabelCount, error)
}

type PostgresAnalyticsRepository struct {
	db database.DB
}

func NewPostgresAnalyticsRepository(db database.DB) *PostgresAnalyticsRepository {
	return &PostgresAnalyticsRepository{db: db}
}

var countQueries = map[Entity]string{
	EntityJobs:         `SELECT COUNT(1) FROM jobs`,
	EntityActiveJobs:   `SELECT COUNT(1) FROM jobs WHERE is_active = true`,
	EntityCompanies:    `SELECT COUNT(1) FROM companies`,
	EntitySkills:       `SELECT COUNT(1) FROM skills`,
	EntityUniversities: `SELECT COUNT(1) FROM universities`,
	EntityPrograms:     `SELECT COUNT(1) FROM programs`,
}

func (r *PostgresAnalyticsRepository) Count(ctx context.Context, e Entity) (int, error) {
	q, ok := countQueries[e]
	if !ok {
		return 0, fmt.Errorf("unknown entity %q", e)
	}
	var n int
	if err := r.db.QueryRow(ctx, q).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

const avgSalaryExpr = `AVG((j.salary_min_usd + j.salary_max_usd) / 2)`

func (r *PostgresAnalyticsRepository) SalaryTrends(ctx context.Context, by SalaryGrouping) ([]SalaryTrend, error) {
	var q string
	switch by {
	case SalaryByIndustry:
		q = `SELECT COALESCE(c.industry, ''), ROUND(` + avgSalaryExpr + `::numeric, 2)::float8, COUNT(j.id)
			FROM jobs j JOIN companies c ON c.id = j.company_id
			WHERE j.salary_min_usd > 0
			GROUP BY c.industry
			HAVING COUNT(j.id) > 5
			ORDER BY ` + avgSalaryExpr + ` DESC
			LIMIT 10`
	case SalaryByExperience:
		q = `SELECT COALESCE(j.experience_level, ''), ROUND(` + avgSalaryExpr + `::numeric, 2)::float8, COUNT(j.id)
			FROM jobs j
			WHERE j.salary_min_usd > 0
			GROUP BY j.experience_level
			ORDER BY CASE j.experience_level
				WHEN 'Entry Level' THEN 1 WHEN 'Mid Level' THEN 2
				WHEN 'Senior' THEN 3 WHEN 'Executive' THEN 4 ELSE 5 END`
	default:
		return nil, fmt.Errorf("unknown salary grouping %q", by)
	}

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SalaryTrend, 0)
	for rows.Next() {
		var s SalaryTrend
		if err := rows.Scan(&s.Label, &s.Value, &s.Count); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresAnalyticsRepository) JobTrends(ctx context.Context, by TrendDimension, limit int) ([]LabelCount, error) {
	var q string
	switch by {
	case TrendByIndustry:
		q = `SELECT COALESCE(c.industry, ''), COUNT(j.id)
			FROM companies c JOIN jobs j ON j.company_id = c.id
			GROUP BY c.industry ORDER BY COUNT(j.id) DESC, c.industry ASC LIMIT $1`
	case TrendByEmploymentType:
		q = `SELECT COALESCE(employment_type, ''), COUNT(id)
			FROM jobs GROUP BY employment_type ORDER BY COUNT(id) DESC, employment_type ASC LIMIT $1`
	case TrendByLocation:
		q = `SELECT COALESCE(location, ''), COUNT(id)
			FROM jobs GROUP BY location ORDER BY COUNT(id) DESC, location ASC LIMIT $1`
	default:
		return nil, fmt.Errorf("unknown trend dimension %q", by)
	}
	return queryLabelCounts(ctx, r.db, q, limit)
}
