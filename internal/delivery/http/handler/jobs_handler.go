package handler

import (
	"labor-intel/internal/delivery/http/dto"
	"labor-intel/internal/pkg/response"
	"labor-intel/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	uc usecase.JobUsecase
}

func NewJobsHandler(uc usecase.JobUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil || h == nil {
		return
	}

	grp := r.Group("/jobs")
	grp.Get("/", h.List)
	grp.Get("/stats", h.Stats)
	grp.Get("/:job_id", h.Get)
}

func (h *JobsHandler) List(c fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return err
	}
	active, err := parseQueryBool(c, "is_active")
	if err != nil {
		return err
	}

	items, p, err := h.uc.ListJobs(c.Context(), usecase.ListJobsInput{
		PageInput:       page,
		Location:        c.Query("location"),
		Industry:        c.Query("industry"),
		ExperienceLevel: c.Query("level"),
		EmploymentType:  c.Query("type"),
		Skill:           c.Query("skill"),
		Search:          c.Query("search"),
		ActiveOnly:      active,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.SuccessWithMeta(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponses(items), pageMeta(p))
}

func (h *JobsHandler) Get(c fiber.Ctx) error {
	j, err := h.uc.GetJob(c.Context(), c.Params("job_id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(j))
}

func (h *JobsHandler) Stats(c fiber.Ctx) error {
	s, err := h.uc.Stats(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobStatsResponse(s))
}
