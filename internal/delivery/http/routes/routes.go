package routes

import (
	"labor-intel/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	Health       *handler.HealthHandler
	Jobs         *handler.JobsHandler
	Skills       *handler.SkillHandler
	Universities *handler.UniversityHandler
	Analytics    *handler.AnalyticsHandler
	Match        *handler.MatchHandler
	Chatbot      *handler.ChatbotHandler
}

type routeRegistrar interface {
	RegisterRoutes(r fiber.Router)
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil || r == nil {
		return
	}

	if r.Health != nil {
		r.Health.RegisterRoutes(app)
	}
	r.registerAPI(app.Group("/api"))
}

func (r *Registry) registerAPI(api fiber.Router) {
	for _, h := range []routeRegistrar{r.Jobs, r.Skills, r.Universities, r.Analytics, r.Match, r.Chatbot} {
		h.RegisterRoutes(api)
	}
}
