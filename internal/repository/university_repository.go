package repository

import (
	"context"
	"errors"

	"labor-intel/internal/database"
	"labor-intel/internal/domain/university"

	"github.com/jackc/pgx/v5"
)

type UniversityFilter struct {
	Type     university.Type
	Location string
	Search   string
}

type UniversityRepository interface {
	List(ctx context.Context, f UniversityFilter) ([]university.University, error)
	GetByID(ctx context.Context, id int64) (university.University, error)
}

type PostgresUniversityRepository struct {
	db database.DB
}

func NewPostgresUniversityRepository(db database.DB) *PostgresUniversityRepository {
	return &PostgresUniversityRepository{db: db}
}

const universitySelect = `SELECT u.id, u.name, COALESCE(u.university_type, ''), COALESCE(u.location, ''),
	u.established_year,
	(SELECT COUNT(1) FROM programs p WHERE p.university_id = u.id)
	FROM universities u`

func (r *PostgresUniversityRepository) List(ctx context.Context, f UniversityFilter) ([]university.University, error) {
	c := &conditions{}
	if f.Type != "" {
		c.add("u.university_type = %s", string(f.Type))
	}
	if f.Location != "" {
		c.add("u.location ILIKE %s", containsPattern(f.Location))
	}
	if f.Search != "" {
		c.add("u.name ILIKE %s", containsPattern(f.Search))
	}

	rows, err := r.db.Query(ctx, universitySelect+c.where()+` ORDER BY u.name ASC`, c.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]university.University, 0)
	for rows.Next() {
		u, err := scanUniversity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresUniversityRepository) GetByID(ctx context.Context, id int64) (university.University, error) {
	u, err := scanUniversity(r.db.QueryRow(ctx, universitySelect+` WHERE u.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return university.University{}, ErrNotFound
		}
		return university.University{}, err
	}
	return u, nil
}

func scanUniversity(row database.Row) (university.University, error) {
	var (
		u university.University
		t string
	)
	if err := row.Scan(&u.ID, &u.Name, &t, &u.Location, &u.EstablishedYear, &u.ProgramCount); err != nil {
		return university.University{}, err
	}
	u.Type = university.Type(t)
	return u, nil
}
