package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"labor-intel/internal/config"
	"labor-intel/internal/delivery/http/middleware"
	"labor-intel/internal/delivery/http/routes"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

type App struct {
	Fiber *fiber.App
}

func New(cfg config.Config, logger zerolog.Logger, registry *routes.Registry) *App {
	f := fiber.New(fiber.Config{
		AppName:      cfg.App.AppName,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	})

	registerGlobalMiddleware(f, cfg, logger)
	f.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	registry.Register(f)

	return &App{Fiber: f}
}

// Bootstrap connects dependencies and builds the HTTP app. The returned
// cleanup closes every connection opened here.
func Bootstrap(ctx context.Context, cfg config.Config, logger zerolog.Logger) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return New(cfg, logger, c.Routes()), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, cfg config.Config, logger zerolog.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.Metrics())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.App.CORSOrigins,
		AllowMethods:  []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodOptions},
		AllowHeaders:  []string{fiber.HeaderContentType, fiber.HeaderAccept, middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID},
	}))
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
