package repository

import (
	"context"
	"errors"
	"time"

	"labor-intel/internal/database"
	"labor-intel/internal/domain/job"

	"github.com/jackc/pgx/v5"
)

type JobFilter struct {
	ActiveOnly      bool
	Location        string
	Industry        string
	ExperienceLevel job.ExperienceLevel
	EmploymentType  job.EmploymentType
	Skill           string
	SkillID         int64

	// Search matches jobs whose title or description contains any term.
	Search []string
}

type JobStats struct {
	TotalJobs      int
	ActiveJobs     int
	TotalCompanies int
	AvgSalary      *float64
	TopIndustries  []LabelCount
	TopLocations   []LabelCount
}

type JobRepository interface {
	List(ctx context.Context, f JobFilter, p Page) ([]job.Job, int, error)
	// ListAll returns every job matching f ordered by id, skills attached.
	ListAll(ctx context.Context, f JobFilter) ([]job.Job, error)
	GetByID(ctx context.Context, id string) (job.Job, error)
	Stats(ctx context.Context) (JobStats, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobSelect = `SELECT j.id, j.title, j.company_id, COALESCE(c.name, ''), COALESCE(c.industry, ''),
	COALESCE(j.location, ''), COALESCE(j.employment_type, ''), COALESCE(j.experience_level, ''),
	j.salary_min_usd, j.salary_max_usd, COALESCE(j.degree_required, ''), COALESCE(j.languages_required, ''),
	COALESCE(j.description, ''), j.posted_date, j.is_active
	FROM jobs j
	LEFT JOIN companies c ON c.id = j.company_id`

const jobFrom = ` FROM jobs j LEFT JOIN companies c ON c.id = j.company_id`

func (r *PostgresJobRepository) List(ctx context.Context, f JobFilter, p Page) ([]job.Job, int, error) {
	c := jobConditions(f)

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(1)`+jobFrom+c.where(), c.args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []job.Job{}, 0, nil
	}

	q := jobSelect + c.where() +
		` ORDER BY j.posted_date DESC NULLS LAST, j.id ASC LIMIT ` + c.arg(p.PerPage) + ` OFFSET ` + c.arg(p.Offset())
	out, err := r.query(ctx, q, c.args...)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresJobRepository) ListAll(ctx context.Context, f JobFilter) ([]job.Job, error) {
	c := jobConditions(f)
	return r.query(ctx, jobSelect+c.where()+` ORDER BY j.id ASC`, c.args...)
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id string) (job.Job, error) {
	j, err := scanJob(r.db.QueryRow(ctx, jobSelect+` WHERE j.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, ErrNotFound
		}
		return job.Job{}, err
	}

	skills, err := loadSkillNames(ctx, r.db, jobSkillsQuery, []string{j.ID})
	if err != nil {
		return job.Job{}, err
	}
	j.Skills = nonNil(skills[j.ID])
	return j, nil
}

func (r *PostgresJobRepository) Stats(ctx context.Context) (JobStats, error) {
	var s JobStats
	err := r.db.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(1) FROM jobs),
			(SELECT COUNT(1) FROM jobs WHERE is_active = true),
			(SELECT COUNT(1) FROM companies),
			(SELECT ROUND(AVG((salary_min_usd + salary_max_usd) / 2)::numeric)::float8
			 FROM jobs WHERE salary_min_usd IS NOT NULL AND salary_max_usd IS NOT NULL)`,
	).Scan(&s.TotalJobs, &s.ActiveJobs, &s.TotalCompanies, &s.AvgSalary)
	if err != nil {
		return JobStats{}, err
	}

	s.TopIndustries, err = queryLabelCounts(ctx, r.db,
		`SELECT COALESCE(c.industry, ''), COUNT(j.id)
		 FROM companies c JOIN jobs j ON j.company_id = c.id
		 GROUP BY c.industry ORDER BY COUNT(j.id) DESC, c.industry ASC LIMIT 5`)
	if err != nil {
		return JobStats{}, err
	}

	s.TopLocations, err = queryLabelCounts(ctx, r.db,
		`SELECT COALESCE(location, ''), COUNT(id)
		 FROM jobs GROUP BY location ORDER BY COUNT(id) DESC, location ASC LIMIT 5`)
	if err != nil {
		return JobStats{}, err
	}
	return s, nil
}

func (r *PostgresJobRepository) query(ctx context.Context, q string, args ...any) ([]job.Job, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	ids := make([]string, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
		ids = append(ids, j.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	skills, err := loadSkillNames(ctx, r.db, jobSkillsQuery, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Skills = nonNil(skills[out[i].ID])
	}
	return out, nil
}

func jobConditions(f JobFilter) *conditions {
	c := &conditions{}
	if f.ActiveOnly {
		c.add("j.is_active = true")
	}
	if f.Location != "" {
		c.add("j.location ILIKE %s", containsPattern(f.Location))
	}
	if f.Industry != "" {
		c.add("c.industry ILIKE %s", containsPattern(f.Industry))
	}
	if f.ExperienceLevel != "" {
		c.add("j.experience_level = %s", string(f.ExperienceLevel))
	}
	if f.EmploymentType != "" {
		c.add("j.employment_type = %s", string(f.EmploymentType))
	}
	if f.Skill != "" {
		c.add(`EXISTS (SELECT 1 FROM job_skills js JOIN skills s ON s.id = js.skill_id
			WHERE js.job_id = j.id AND s.name ILIKE %s)`, containsPattern(f.Skill))
	}
	if f.SkillID > 0 {
		c.add("EXISTS (SELECT 1 FROM job_skills js WHERE js.job_id = j.id AND js.skill_id = %s)", f.SkillID)
	}
	c.anyContains([]string{"j.title", "j.description"}, f.Search)
	return c
}

func scanJob(row database.Row) (job.Job, error) {
	var (
		j          job.Job
		empType    string
		expLevel   string
		postedDate *time.Time
	)
	err := row.Scan(
		&j.ID, &j.Title, &j.CompanyID, &j.Company, &j.Industry,
		&j.Location, &empType, &expLevel,
		&j.SalaryMin, &j.SalaryMax, &j.DegreeRequired, &j.LanguagesRequired,
		&j.Description, &postedDate, &j.IsActive,
	)
	if err != nil {
		return job.Job{}, err
	}
	j.EmploymentType = job.EmploymentType(empType)
	j.ExperienceLevel = job.ExperienceLevel(expLevel)
	j.PostedDate = postedDate
	return j, nil
}
