package seeder

import (
	"context"
	"fmt"

	"labor-intel/internal/database"
	"labor-intel/internal/domain/company"
)

type CompaniesSeeder struct{}

func (CompaniesSeeder) Name() string { return "companies" }

var seedCompanies = []company.Company{
	{Name: "Gulf Data Systems", Industry: "Technology"},
	{Name: "Desert Fintech", Industry: "Finance"},
	{Name: "Oasis Health", Industry: "Healthcare"},
	{Name: "Falcon Logistics", Industry: "Logistics"},
	{Name: "Marina Analytics", Industry: "Technology"},
	{Name: "Crescent Energy", Industry: "Energy"},
}

func (CompaniesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "companies", "id", "name", "industry"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, c := range seedCompanies {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO companies (name, industry) VALUES ($1, $2)
			 ON CONFLICT (name) DO UPDATE SET industry = EXCLUDED.industry`,
			c.Name,
			c.Industry,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
