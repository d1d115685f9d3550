package main

import (
	"context"
	"flag"
	"os"
	"time"

	"labor-intel/internal/config"
	"labor-intel/internal/database/migration"
	dbpostgres "labor-intel/internal/database/postgres"
	"labor-intel/internal/database/seeder"
	"labor-intel/internal/infrastructure/cache"
	"labor-intel/internal/pkg/logger"
	"labor-intel/migrations"

	"github.com/rs/zerolog/log"
)

func main() {
	seed := flag.Bool("seed", false, "load demo data after migrating")
	flush := flag.Bool("flush-cache", true, "drop cached analytics after changes")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	lg := logger.New(cfg.Log, os.Stdout)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database, cfg.App.AppName+"-migrate")
	if err != nil {
		lg.Fatal().Err(err).Msg("failed to connect database")
	}
	defer func() { _ = db.Close() }()

	applied, err := migration.Runner{FS: migrations.FS, Logger: lg}.Run(ctx, db.SQLDB())
	if err != nil {
		lg.Fatal().Err(err).Msg("migration failed")
	}
	lg.Info().Int("applied", applied).Msg("migrations done")

	changed := applied > 0
	if *seed {
		if err := (seeder.Runner{Seeders: seeder.Defaults(), Logger: lg}).Run(ctx, db); err != nil {
			lg.Fatal().Err(err).Msg("seeding failed")
		}
		changed = true
	}

	if changed && *flush {
		rc := cache.NewRedis(cfg.Redis, lg)
		defer func() { _ = rc.Close() }()
		if err := rc.DeleteByPattern(ctx, "lmi:*"); err != nil {
			lg.Warn().Err(err).Msg("cache flush failed")
		}
	}
}
