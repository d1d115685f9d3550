package handler

import (
	"labor-intel/internal/delivery/http/dto"
	"labor-intel/internal/pkg/response"
	"labor-intel/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AnalyticsHandler struct {
	uc usecase.AnalyticsUsecase
}

func NewAnalyticsHandler(uc usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

func (h *AnalyticsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil || h == nil {
		return
	}

	grp := r.Group("/analytics")
	grp.Get("/overview", h.Overview)
	grp.Get("/salary-trends", h.SalaryTrends)
	grp.Get("/job-trends", h.JobTrends)
}

func (h *AnalyticsHandler) Overview(c fiber.Ctx) error {
	out, err := h.uc.Overview(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *AnalyticsHandler) SalaryTrends(c fiber.Ctx) error {
	items, err := h.uc.SalaryTrends(c.Context(), c.Query("by"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.SuccessWithMeta(c, fiber.StatusOK, response.MessageOK, dto.NewSalaryTrends(items), response.ListMeta{Count: len(items)})
}

func (h *AnalyticsHandler) JobTrends(c fiber.Ctx) error {
	limit, err := parseQueryIntStrict(c, "limit", 0)
	if err != nil {
		return err
	}

	items, err := h.uc.JobTrends(c.Context(), c.Query("type"), limit)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.SuccessWithMeta(c, fiber.StatusOK, response.MessageOK, dto.NewLabelCounts(items), response.ListMeta{Count: len(items)})
}
