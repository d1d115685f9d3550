package seeder

import (
	"context"
	"fmt"

	"labor-intel/internal/database"
	"labor-intel/internal/domain/skill"
)

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

var seedSkills = []skill.Skill{
	{Name: "Python", Type: skill.TypeTechnical},
	{Name: "SQL", Type: skill.TypeTechnical},
	{Name: "Go", Type: skill.TypeTechnical},
	{Name: "Java", Type: skill.TypeTechnical},
	{Name: "JavaScript", Type: skill.TypeTechnical},
	{Name: "React", Type: skill.TypeTechnical},
	{Name: "Docker", Type: skill.TypeTechnical},
	{Name: "Kubernetes", Type: skill.TypeTechnical},
	{Name: "AWS", Type: skill.TypeTechnical},
	{Name: "Machine Learning", Type: skill.TypeTechnical},
	{Name: "Data Science", Type: skill.TypeTechnical},
	{Name: "Statistics", Type: skill.TypeTechnical},
	{Name: "Financial Modeling", Type: skill.TypeTechnical},
	{Name: "Accounting", Type: skill.TypeTechnical},
	{Name: "Communication", Type: skill.TypeSoft},
	{Name: "Leadership", Type: skill.TypeSoft},
	{Name: "Project Management", Type: skill.TypeSoft},
	{Name: "Problem Solving", Type: skill.TypeSoft},
	{Name: "English", Type: skill.TypeLanguage},
	{Name: "Arabic", Type: skill.TypeLanguage},
	{Name: "French", Type: skill.TypeLanguage},
}

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "name", "skill_type", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, s := range seedSkills {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO skills (name, skill_type) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
			s.Name,
			string(s.Type),
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
