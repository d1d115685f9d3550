package app

import (
	"context"
	"errors"

	"labor-intel/internal/config"
	"labor-intel/internal/database"
	dbpostgres "labor-intel/internal/database/postgres"
	"labor-intel/internal/delivery/http/handler"
	"labor-intel/internal/delivery/http/routes"
	"labor-intel/internal/infrastructure/cache"
	"labor-intel/internal/infrastructure/llm"
	"labor-intel/internal/repository"
	"labor-intel/internal/usecase"

	"github.com/rs/zerolog"
)

const Version = "1.0.0"

type Container struct {
	Config config.Config
	Logger zerolog.Logger
	DB     database.DB
	Cache  *cache.Redis
	LLM    *llm.Gemini
}

func NewContainer(ctx context.Context, cfg config.Config, logger zerolog.Logger) (*Container, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.Database.ConnectTimeout)
	defer cancel()

	db, err := dbpostgres.Connect(connectCtx, cfg.Database, cfg.App.AppName)
	if err != nil {
		return nil, err
	}

	gemini, err := llm.NewGemini(ctx, cfg.Gemini, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  cache.NewRedis(cfg.Redis, logger),
		LLM:    gemini,
	}, nil
}

// Routes wires repositories, usecases and handlers over the container's
// connections.
func (c *Container) Routes() *routes.Registry {
	jobs := repository.NewPostgresJobRepository(c.DB)
	skills := repository.NewPostgresSkillRepository(c.DB)
	programs := repository.NewPostgresProgramRepository(c.DB)
	universities := repository.NewPostgresUniversityRepository(c.DB)
	analytics := repository.NewPostgresAnalyticsRepository(c.DB)

	var rc usecase.ResultCache
	if c.Cache != nil {
		rc = c.Cache
	}

	return &routes.Registry{
		Health:       handler.NewHealthHandler(c.Config.App.AppName, Version, c.DB, c.Cache),
		Jobs:         handler.NewJobsHandler(usecase.NewJobUsecase(jobs, rc, c.Logger)),
		Skills:       handler.NewSkillHandler(usecase.NewSkillUsecase(skills, jobs, programs, rc, c.Logger)),
		Universities: handler.NewUniversityHandler(usecase.NewUniversityUsecase(universities, programs)),
		Analytics:    handler.NewAnalyticsHandler(usecase.NewAnalyticsUsecase(analytics, rc, c.Logger)),
		Match:        handler.NewMatchHandler(usecase.NewMatchingUsecase(jobs, programs, c.Logger)),
		Chatbot:      handler.NewChatbotHandler(usecase.NewChatbotUsecase(c.LLM, c.Logger)),
	}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
