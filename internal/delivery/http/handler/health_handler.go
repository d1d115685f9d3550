package handler

import (
	"context"
	"time"

	"labor-intel/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	name    string
	version string
	db      Pinger
	cache   Pinger
	timeout time.Duration
}

func NewHealthHandler(name, version string, db, cache Pinger) *HealthHandler {
	return &HealthHandler{name: name, version: version, db: db, cache: cache, timeout: 2 * time.Second}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil || h == nil {
		return
	}
	r.Get("/", h.Banner)
	r.Get("/api/health", h.Health)
}

type bannerResponse struct {
	Name      string   `json:"name"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}

func (h *HealthHandler) Banner(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, bannerResponse{
		Name:    h.name,
		Version: h.version,
		Endpoints: []string{
			"/api/jobs",
			"/api/skills",
			"/api/universities",
			"/api/programs",
			"/api/analytics",
			"/api/match/jobs",
			"/api/match/skill-gap",
			"/api/recommend/programs",
			"/api/chatbot",
		},
	})
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

// Health reports 503 only when the database is down; the cache is optional.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	out := healthResponse{Status: "healthy", Database: check(ctx, h.db), Cache: check(ctx, h.cache)}
	if out.Database == "down" {
		out.Status = "unhealthy"
		return response.Error(c, fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, out)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func check(ctx context.Context, p Pinger) string {
	if p == nil {
		return "disabled"
	}
	if err := p.Ping(ctx); err != nil {
		return "down"
	}
	return "up"
}
