package handler

import (
	"labor-intel/internal/delivery/http/dto"
	"labor-intel/internal/pkg/response"
	"labor-intel/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	uc usecase.SkillUsecase
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil || h == nil {
		return
	}

	grp := r.Group("/skills")
	grp.Get("/", h.List)
	grp.Get("/top", h.Top)
	grp.Get("/:skill_id/jobs", h.Jobs)
	grp.Get("/:skill_id/programs", h.Programs)
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	minJobs, err := parseQueryIntStrict(c, "min_jobs", 0)
	if err != nil {
		return err
	}

	items, err := h.uc.ListSkills(c.Context(), usecase.ListSkillsInput{
		Type:    c.Query("type"),
		Search:  c.Query("search"),
		MinJobs: minJobs,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.SuccessWithMeta(c, fiber.StatusOK, response.MessageOK, dto.NewSkillResponses(items), response.ListMeta{Count: len(items)})
}

func (h *SkillHandler) Top(c fiber.Ctx) error {
	limit, err := parseQueryIntStrict(c, "limit", usecase.DefaultTopSkills)
	if err != nil {
		return err
	}

	items, err := h.uc.TopSkills(c.Context(), limit, c.Query("type"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.SuccessWithMeta(c, fiber.StatusOK, response.MessageOK, dto.NewSkillResponses(items), response.ListMeta{Count: len(items)})
}

type skillJobsResponse struct {
	Skill dto.SkillResponse `json:"skill"`
	Jobs  []dto.JobResponse `json:"jobs"`
}

func (h *SkillHandler) Jobs(c fiber.Ctx) error {
	id, err := parseParamID(c, "skill_id")
	if err != nil {
		return err
	}
	page, err := parsePage(c)
	if err != nil {
		return err
	}

	s, items, p, err := h.uc.JobsBySkill(c.Context(), id, page)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.SuccessWithMeta(c, fiber.StatusOK, response.MessageOK, skillJobsResponse{
		Skill: dto.NewSkillResponse(s),
		Jobs:  dto.NewJobResponses(items),
	}, pageMeta(p))
}

type skillProgramsResponse struct {
	Skill    dto.SkillResponse     `json:"skill"`
	Programs []dto.ProgramResponse `json:"programs"`
}

func (h *SkillHandler) Programs(c fiber.Ctx) error {
	id, err := parseParamID(c, "skill_id")
	if err != nil {
		return err
	}

	s, items, err := h.uc.ProgramsBySkill(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.SuccessWithMeta(c, fiber.StatusOK, response.MessageOK, skillProgramsResponse{
		Skill:    dto.NewSkillResponse(s),
		Programs: dto.NewProgramResponses(items),
	}, response.ListMeta{Count: len(items)})
}
