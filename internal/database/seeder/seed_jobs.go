package seeder

import (
	"context"
	"fmt"
	"time"

	"labor-intel/internal/database"
	"labor-intel/internal/domain/job"
)

type JobsSeeder struct{}

func (JobsSeeder) Name() string { return "jobs" }

func salary(v float64) *float64 { return &v }

var seedJobs = []job.Job{
	{
		ID: "JOB-0001", Title: "Backend Engineer (Go)", Company: "Gulf Data Systems", Location: "Dubai",
		EmploymentType: job.EmploymentFullTime, ExperienceLevel: job.ExperienceMid,
		SalaryMin: salary(60000), SalaryMax: salary(85000), DegreeRequired: "Bachelor", LanguagesRequired: "English",
		Description: "Build Go services and PostgreSQL-backed REST APIs.",
		Skills:      []string{"Go", "SQL", "Docker", "Kubernetes"},
	},
	{
		ID: "JOB-0002", Title: "Data Analyst", Company: "Marina Analytics", Location: "Abu Dhabi",
		EmploymentType: job.EmploymentFullTime, ExperienceLevel: job.ExperienceEntry,
		SalaryMin: salary(40000), SalaryMax: salary(55000), DegreeRequired: "Bachelor", LanguagesRequired: "English, Arabic",
		Description: "Turn raw data into dashboards and reports.",
		Skills:      []string{"Python", "SQL", "Statistics", "Communication"},
	},
	{
		ID: "JOB-0003", Title: "Machine Learning Engineer", Company: "Gulf Data Systems", Location: "Dubai",
		EmploymentType: job.EmploymentFullTime, ExperienceLevel: job.ExperienceSenior,
		SalaryMin: salary(95000), SalaryMax: salary(130000), DegreeRequired: "Master", LanguagesRequired: "English",
		Description: "Train and deploy machine learning models to production.",
		Skills:      []string{"Python", "Machine Learning", "Data Science", "Docker", "AWS"},
	},
	{
		ID: "JOB-0004", Title: "Frontend Developer", Company: "Desert Fintech", Location: "Riyadh",
		EmploymentType: job.EmploymentContract, ExperienceLevel: job.ExperienceMid,
		SalaryMin: salary(50000), SalaryMax: salary(70000), DegreeRequired: "Diploma", LanguagesRequired: "English",
		Description: "Own the customer-facing React application.",
		Skills:      []string{"JavaScript", "React", "Communication"},
	},
	{
		ID: "JOB-0005", Title: "Financial Analyst", Company: "Desert Fintech", Location: "Riyadh",
		EmploymentType: job.EmploymentFullTime, ExperienceLevel: job.ExperienceEntry,
		SalaryMin: salary(45000), SalaryMax: salary(60000), DegreeRequired: "Bachelor", LanguagesRequired: "English, Arabic",
		Description: "Build financial models and support budgeting.",
		Skills:      []string{"Financial Modeling", "Accounting", "SQL", "Arabic"},
	},
	{
		ID: "JOB-0006", Title: "Platform Engineering Lead", Company: "Crescent Energy", Location: "Doha",
		EmploymentType: job.EmploymentFullTime, ExperienceLevel: job.ExperienceExecutive,
		SalaryMin: salary(140000), SalaryMax: salary(180000), DegreeRequired: "Bachelor", LanguagesRequired: "English",
		Description: "Lead the platform team running our cloud infrastructure.",
		Skills:      []string{"Kubernetes", "AWS", "Leadership", "Project Management"},
	},
	{
		ID: "JOB-0007", Title: "Health Data Intern", Company: "Oasis Health", Location: "Abu Dhabi",
		EmploymentType: job.EmploymentInternship, ExperienceLevel: job.ExperienceEntry,
		DegreeRequired: "High School", LanguagesRequired: "English",
		Description: "Assist the analytics team with data cleaning.",
		Skills:      []string{"Python", "Statistics"},
	},
	{
		ID: "JOB-0008", Title: "Logistics Coordinator", Company: "Falcon Logistics", Location: "Dubai",
		EmploymentType: job.EmploymentPartTime, ExperienceLevel: job.ExperienceEntry,
		SalaryMin: salary(25000), SalaryMax: salary(32000), DegreeRequired: "Diploma", LanguagesRequired: "English, French",
		Description: "Coordinate shipments with carriers and warehouses.",
		Skills:      []string{"Communication", "Problem Solving", "French"},
	},
}

func (JobsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "jobs",
		"id",
		"title",
		"company_id",
		"location",
		"employment_type",
		"experience_level",
		"salary_min_usd",
		"salary_max_usd",
		"degree_required",
		"languages_required",
		"description",
		"posted_date",
		"is_active",
	); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "job_skills", "job_id", "skill_id"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	today := time.Now().UTC().Truncate(24 * time.Hour)
	for i, j := range seedJobs {
		posted := today.AddDate(0, 0, -i*3)
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO jobs (id, title, company_id, location, employment_type, experience_level,
				salary_min_usd, salary_max_usd, degree_required, languages_required, description, posted_date, is_active)
			 SELECT $1, $2, c.id, $4, $5, $6, $7, $8, $9, $10, $11, $12, true
			 FROM companies c WHERE c.name = $3
			 ON CONFLICT (id) DO NOTHING`,
			j.ID, j.Title, j.Company, j.Location, string(j.EmploymentType), string(j.ExperienceLevel),
			j.SalaryMin, j.SalaryMax, j.DegreeRequired, j.LanguagesRequired, j.Description, posted,
		); err != nil {
			return fmt.Errorf("insert job %s: %w", j.ID, err)
		}

		if err := linkSkills(ctx, tx, "job_skills", "job_id", j.ID, j.Skills); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// linkSkills inserts join rows for every named skill that exists.
func linkSkills(ctx context.Context, tx database.Tx, table, ownerColumn, ownerID string, skills []string) error {
	for _, name := range skills {
		q := fmt.Sprintf(
			`INSERT INTO %s (%s, skill_id) SELECT $1, s.id FROM skills s WHERE s.name = $2 ON CONFLICT DO NOTHING`,
			table, ownerColumn,
		)
		if _, err := tx.Exec(ctx, q, ownerID, name); err != nil {
			return fmt.Errorf("link %s %s -> %s: %w", table, ownerID, name, err)
		}
	}
	return nil
}
