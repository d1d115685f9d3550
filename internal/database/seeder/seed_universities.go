package seeder

import (
	"context"
	"fmt"

	"labor-intel/internal/database"
	"labor-intel/internal/domain/program"
	"labor-intel/internal/domain/university"
)

type UniversitiesSeeder struct{}

func (UniversitiesSeeder) Name() string { return "universities" }

func year(v int) *int { return &v }

var seedUniversities = []university.University{
	{Name: "Emirates Technical University", Type: university.TypePublic, Location: "Abu Dhabi", EstablishedYear: year(1988)},
	{Name: "Gulf Business School", Type: university.TypePrivate, Location: "Dubai", EstablishedYear: year(2004)},
	{Name: "Riyadh Institute of Science", Type: university.TypePublic, Location: "Riyadh", EstablishedYear: year(1975)},
	{Name: "Doha College of Computing", Type: university.TypePrivate, Location: "Doha", EstablishedYear: year(2011)},
}

func (UniversitiesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "universities", "id", "name", "university_type", "location", "established_year"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, u := range seedUniversities {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO universities (name, university_type, location, established_year) VALUES ($1, $2, $3, $4)
			 ON CONFLICT (name) DO NOTHING`,
			u.Name, string(u.Type), u.Location, u.EstablishedYear,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

type ProgramsSeeder struct{}

func (ProgramsSeeder) Name() string { return "programs" }

func tuition(v float64) *float64 { return &v }

var seedPrograms = []program.Program{
	{
		ID: "PRG-0001", University: "Emirates Technical University", Name: "BSc Computer Science",
		Category: "IT/Software", DegreeLevel: program.DegreeBachelor, DurationYears: year(4), TuitionUSD: tuition(12000),
		EnrollmentCapacity: year(200), Accredited: true, Languages: "English", InDemand: true,
		Skills: []string{"Go", "Java", "SQL", "Problem Solving"},
	},
	{
		ID: "PRG-0002", University: "Emirates Technical University", Name: "MSc Data Science",
		Category: "IT/Software", DegreeLevel: program.DegreeMaster, DurationYears: year(2), TuitionUSD: tuition(18000),
		EnrollmentCapacity: year(60), Accredited: true, Languages: "English", InDemand: true,
		Skills: []string{"Python", "Data Science", "Machine Learning", "Statistics"},
	},
	{
		ID: "PRG-0003", University: "Gulf Business School", Name: "Bachelor of Finance",
		Category: "Business", DegreeLevel: program.DegreeBachelor, DurationYears: year(4), TuitionUSD: tuition(22000),
		EnrollmentCapacity: year(150), Accredited: true, Languages: "English, Arabic", InDemand: false,
		Skills: []string{"Financial Modeling", "Accounting", "Communication"},
	},
	{
		ID: "PRG-0004", University: "Gulf Business School", Name: "MBA",
		Category: "Business", DegreeLevel: program.DegreeMaster, DurationYears: year(2), TuitionUSD: tuition(35000),
		EnrollmentCapacity: year(80), Accredited: true, Languages: "English", InDemand: false,
		Skills: []string{"Leadership", "Project Management", "Communication"},
	},
	{
		ID: "PRG-0005", University: "Riyadh Institute of Science", Name: "Diploma in Cloud Operations",
		Category: "IT/Software", DegreeLevel: program.DegreeDiploma, DurationYears: year(1), TuitionUSD: tuition(6000),
		EnrollmentCapacity: year(40), Accredited: false, Languages: "Arabic, English", InDemand: true,
		Skills: []string{"Docker", "Kubernetes", "AWS"},
	},
	{
		ID: "PRG-0006", University: "Riyadh Institute of Science", Name: "BSc Statistics",
		Category: "Science", DegreeLevel: program.DegreeBachelor, DurationYears: year(4), TuitionUSD: tuition(8000),
		EnrollmentCapacity: year(120), Accredited: true, Languages: "Arabic", InDemand: false,
		Skills: []string{"Statistics", "Python", "Arabic"},
	},
	{
		ID: "PRG-0007", University: "Doha College of Computing", Name: "Web Development Bootcamp Diploma",
		Category: "IT/Software", DegreeLevel: program.DegreeDiploma, DurationYears: year(1), TuitionUSD: tuition(9000),
		EnrollmentCapacity: year(50), Accredited: false, Languages: "English", InDemand: true,
		Skills: []string{"JavaScript", "React", "SQL"},
	},
	{
		ID: "PRG-0008", University: "Doha College of Computing", Name: "PhD Artificial Intelligence",
		Category: "IT/Software", DegreeLevel: program.DegreePhD, DurationYears: year(4), TuitionUSD: tuition(15000),
		EnrollmentCapacity: year(10), Accredited: true, Languages: "English", InDemand: true,
		Skills: []string{"Machine Learning", "Python", "Data Science"},
	},
}

func (ProgramsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "programs",
		"id",
		"university_id",
		"program_name",
		"program_category",
		"degree_level",
		"duration_years",
		"annual_tuition_usd",
		"enrollment_capacity",
		"accredited",
		"languages_of_instruction",
		"in_demand_field",
	); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "program_skills", "program_id", "skill_id"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, p := range seedPrograms {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO programs (id, university_id, program_name, program_category, degree_level, duration_years,
				annual_tuition_usd, enrollment_capacity, accredited, languages_of_instruction, in_demand_field)
			 SELECT $1, u.id, $3, $4, $5, $6, $7, $8, $9, $10, $11
			 FROM universities u WHERE u.name = $2
			 ON CONFLICT (id) DO NOTHING`,
			p.ID, p.University, p.Name, p.Category, string(p.DegreeLevel), p.DurationYears,
			p.TuitionUSD, p.EnrollmentCapacity, p.Accredited, p.Languages, p.InDemand,
		); err != nil {
			return fmt.Errorf("insert program %s: %w", p.ID, err)
		}

		if err := linkSkills(ctx, tx, "program_skills", "program_id", p.ID, p.Skills); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
