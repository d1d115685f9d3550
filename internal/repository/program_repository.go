package repository

import (
	"context"
	"errors"

	"labor-intel/internal/database"
	"labor-intel/internal/domain/program"

	"github.com/jackc/pgx/v5"
)

type ProgramFilter struct {
	Category     string
	DegreeLevel  program.DegreeLevel
	UniversityID int64
	SkillID      int64
	MaxTuition   *float64

	// Search matches programs whose name or category contains any term.
	Search []string
}

type ProgramRepository interface {
	List(ctx context.Context, f ProgramFilter, p Page) ([]program.Program, int, error)
	// ListAll returns every program matching f ordered by id, skills attached.
	ListAll(ctx context.Context, f ProgramFilter) ([]program.Program, error)
	GetByID(ctx context.Context, id string) (program.Program, error)
}

type PostgresProgramRepository struct {
	db database.DB
}

func NewPostgresProgramRepository(db database.DB) *PostgresProgramRepository {
	return &PostgresProgramRepository{db: db}
}

const programSelect = `SELECT p.id, p.university_id, COALESCE(u.name, ''), COALESCE(u.university_type, ''),
	COALESCE(u.location, ''), p.program_name, COALESCE(p.program_category, ''), COALESCE(p.degree_level, ''),
	p.duration_years, p.annual_tuition_usd, p.enrollment_capacity, p.accredited,
	COALESCE(p.languages_of_instruction, ''), p.in_demand_field
	FROM programs p
	LEFT JOIN universities u ON u.id = p.university_id`

const programFrom = ` FROM programs p LEFT JOIN universities u ON u.id = p.university_id`

func (r *PostgresProgramRepository) List(ctx context.Context, f ProgramFilter, p Page) ([]program.Program, int, error) {
	c := programConditions(f)

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(1)`+programFrom+c.where(), c.args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []program.Program{}, 0, nil
	}

	q := programSelect + c.where() +
		` ORDER BY p.program_name ASC, p.id ASC LIMIT ` + c.arg(p.PerPage) + ` OFFSET ` + c.arg(p.Offset())
	out, err := r.query(ctx, q, c.args...)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresProgramRepository) ListAll(ctx context.Context, f ProgramFilter) ([]program.Program, error) {
	c := programConditions(f)
	return r.query(ctx, programSelect+c.where()+` ORDER BY p.id ASC`, c.args...)
}

func (r *PostgresProgramRepository) GetByID(ctx context.Context, id string) (program.Program, error) {
	p, err := scanProgram(r.db.QueryRow(ctx, programSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return program.Program{}, ErrNotFound
		}
		return program.Program{}, err
	}

	skills, err := loadSkillNames(ctx, r.db, programSkillsQuery, []string{p.ID})
	if err != nil {
		return program.Program{}, err
	}
	p.Skills = nonNil(skills[p.ID])
	return p, nil
}

func (r *PostgresProgramRepository) query(ctx context.Context, q string, args ...any) ([]program.Program, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]program.Program, 0)
	ids := make([]string, 0)
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	skills, err := loadSkillNames(ctx, r.db, programSkillsQuery, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Skills = nonNil(skills[out[i].ID])
	}
	return out, nil
}

func programConditions(f ProgramFilter) *conditions {
	c := &conditions{}
	if f.Category != "" {
		c.add("p.program_category = %s", f.Category)
	}
	if f.DegreeLevel != "" {
		c.add("p.degree_level = %s", string(f.DegreeLevel))
	}
	if f.UniversityID > 0 {
		c.add("p.university_id = %s", f.UniversityID)
	}
	if f.SkillID > 0 {
		c.add("EXISTS (SELECT 1 FROM program_skills ps WHERE ps.program_id = p.id AND ps.skill_id = %s)", f.SkillID)
	}
	if f.MaxTuition != nil {
		c.add("p.annual_tuition_usd <= %s", *f.MaxTuition)
	}
	c.anyContains([]string{"p.program_name", "p.program_category"}, f.Search)
	return c
}

func scanProgram(row database.Row) (program.Program, error) {
	var (
		p      program.Program
		degree string
	)
	err := row.Scan(
		&p.ID, &p.UniversityID, &p.University, &p.UniversityType,
		&p.Location, &p.Name, &p.Category, &degree,
		&p.DurationYears, &p.TuitionUSD, &p.EnrollmentCapacity, &p.Accredited,
		&p.Languages, &p.InDemand,
	)
	if err != nil {
		return program.Program{}, err
	}
	p.DegreeLevel = program.DegreeLevel(degree)
	return p, nil
}
