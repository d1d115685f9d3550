package repository

import (
	"context"

	"labor-intel/internal/database"
)

const (
	jobSkillsQuery = `SELECT js.job_id, s.name
		FROM job_skills js JOIN skills s ON s.id = js.skill_id
		WHERE js.job_id = ANY($1)
		ORDER BY js.job_id, s.name`

	programSkillsQuery = `SELECT ps.program_id, s.name
		FROM program_skills ps JOIN skills s ON s.id = ps.skill_id
		WHERE ps.program_id = ANY($1)
		ORDER BY ps.program_id, s.name`
)

// loadSkillNames fetches the skill names of many owners in one round trip.
func loadSkillNames(ctx context.Context, db database.DB, query string, ownerIDs []string) (map[string][]string, error) {
	out := make(map[string][]string, len(ownerIDs))
	if len(ownerIDs) == 0 {
		return out, nil
	}

	rows, err := db.Query(ctx, query, ownerIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var owner, name string
		if err := rows.Scan(&owner, &name); err != nil {
			return nil, err
		}
		out[owner] = append(out[owner], name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func queryLabelCounts(ctx context.Context, db database.DB, query string, args ...any) ([]LabelCount, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LabelCount, 0)
	for rows.Next() {
		var lc LabelCount
		if err := rows.Scan(&lc.Label, &lc.Count); err != nil {
			return nil, err
		}
		out = append(out, lc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
