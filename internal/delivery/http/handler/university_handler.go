package handler

import (
	"labor-intel/internal/delivery/http/dto"
	"labor-intel/internal/pkg/response"
	"labor-intel/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UniversityHandler struct {
	uc usecase.UniversityUsecase
}

func NewUniversityHandler(uc usecase.UniversityUsecase) *UniversityHandler {
	return &UniversityHandler{uc: uc}
}

func (h *UniversityHandler) RegisterRoutes(r fiber.Router) {
	if r == nil || h == nil {
		return
	}

	unis := r.Group("/universities")
	unis.Get("/", h.ListUniversities)
	unis.Get("/:id", h.GetUniversity)

	programs := r.Group("/programs")
	programs.Get("/", h.ListPrograms)
	programs.Get("/:id", h.GetProgram)
}

func (h *UniversityHandler) ListUniversities(c fiber.Ctx) error {
	items, err := h.uc.ListUniversities(c.Context(), usecase.ListUniversitiesInput{
		Type:     c.Query("type"),
		Location: c.Query("location"),
		Search:   c.Query("search"),
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.SuccessWithMeta(c, fiber.StatusOK, response.MessageOK, dto.NewUniversityResponses(items), response.ListMeta{Count: len(items)})
}

func (h *UniversityHandler) GetUniversity(c fiber.Ctx) error {
	id, err := parseParamID(c, "id")
	if err != nil {
		return err
	}

	u, err := h.uc.GetUniversity(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUniversityResponse(u))
}

func (h *UniversityHandler) ListPrograms(c fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return err
	}
	universityID, err := parseQueryIntStrict(c, "university_id", 0)
	if err != nil {
		return err
	}
	maxTuition, err := parseQueryFloat(c, "max_tuition")
	if err != nil {
		return err
	}

	items, p, err := h.uc.ListPrograms(c.Context(), usecase.ListProgramsInput{
		PageInput:    page,
		Category:     c.Query("category"),
		DegreeLevel:  c.Query("degree"),
		UniversityID: int64(universityID),
		MaxTuition:   maxTuition,
		Search:       c.Query("search"),
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.SuccessWithMeta(c, fiber.StatusOK, response.MessageOK, dto.NewProgramResponses(items), pageMeta(p))
}

func (h *UniversityHandler) GetProgram(c fiber.Ctx) error {
	p, err := h.uc.GetProgram(c.Context(), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProgramResponse(p))
}
