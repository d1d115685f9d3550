package repository

import (
	"context"
	"errors"

	"labor-intel/internal/database"
	"labor-intel/internal/domain/skill"

	"github.com/jackc/pgx/v5"
)

type SkillFilter struct {
	Type    skill.Type
	Search  string
	MinJobs int
}

type SkillRepository interface {
	List(ctx context.Context, f SkillFilter) ([]skill.Skill, error)
	Top(ctx context.Context, limit int, t skill.Type) ([]skill.Skill, error)
	GetByID(ctx context.Context, id int64) (skill.Skill, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

const skillSelect = `SELECT s.id, s.name, s.skill_type,
	(SELECT COUNT(1) FROM job_skills js WHERE js.skill_id = s.id) AS job_count,
	(SELECT COUNT(1) FROM program_skills ps WHERE ps.skill_id = s.id) AS program_count
	FROM skills s`

func (r *PostgresSkillRepository) List(ctx context.Context, f SkillFilter) ([]skill.Skill, error) {
	c := &conditions{}
	if f.Type != "" {
		c.add("s.skill_type = %s", string(f.Type))
	}
	if f.Search != "" {
		c.add("s.name ILIKE %s", containsPattern(f.Search))
	}

	q := `SELECT id, name, skill_type, job_count, program_count FROM (` + skillSelect + c.where() + `) t`
	if f.MinJobs > 0 {
		q += ` WHERE job_count >= ` + c.arg(f.MinJobs)
	}
	q += ` ORDER BY name ASC`

	return r.query(ctx, q, c.args...)
}

func (r *PostgresSkillRepository) Top(ctx context.Context, limit int, t skill.Type) ([]skill.Skill, error) {
	c := &conditions{}
	if t != "" {
		c.add("s.skill_type = %s", string(t))
	}

	q := `SELECT s.id, s.name, s.skill_type, COUNT(js.job_id) AS job_count,
		(SELECT COUNT(1) FROM program_skills ps WHERE ps.skill_id = s.id) AS program_count
		FROM skills s
		JOIN job_skills js ON js.skill_id = s.id` + c.where() + `
		GROUP BY s.id
		ORDER BY job_count DESC, s.name ASC
		LIMIT ` + c.arg(limit)

	return r.query(ctx, q, c.args...)
}

func (r *PostgresSkillRepository) GetByID(ctx context.Context, id int64) (skill.Skill, error) {
	s, err := scanSkill(r.db.QueryRow(ctx, skillSelect+` WHERE s.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return skill.Skill{}, ErrNotFound
		}
		return skill.Skill{}, err
	}
	return s, nil
}

func (r *PostgresSkillRepository) query(ctx context.Context, q string, args ...any) ([]skill.Skill, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.Skill, 0)
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanSkill(row database.Row) (skill.Skill, error) {
	var (
		s skill.Skill
		t string
	)
	if err := row.Scan(&s.ID, &s.Name, &t, &s.JobCount, &s.ProgramCount); err != nil {
		return skill.Skill{}, err
	}
	s.Type = skill.Type(t)
	return s, nil
}
