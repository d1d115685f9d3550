package handler

import (
	"labor-intel/internal/delivery/http/dto"
	"labor-intel/internal/pkg/response"
	"labor-intel/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	uc usecase.MatchingUsecase
}

func NewMatchHandler(uc usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil || h == nil {
		return
	}

	r.Post("/match/jobs", h.MatchJobs)
	r.Post("/match/skill-gap", h.SkillGap)
	r.Post("/recommend/programs", h.RecommendPrograms)
}

func (h *MatchHandler) MatchJobs(c fiber.Ctx) error {
	var req dto.MatchJobsRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	out, err := h.uc.MatchJobs(c.Context(), usecase.MatchJobsInput{
		Skills:          req.Skills,
		ExperienceLevel: req.ExperienceLevel,
		Location:        req.Location,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.SuccessWithMeta(c, fiber.StatusOK, response.MessageOK, dto.NewJobMatchResponses(out), response.ListMeta{
		Count:     out.Total,
		Truncated: out.Truncated,
	})
}

func (h *MatchHandler) SkillGap(c fiber.Ctx) error {
	var req dto.SkillGapRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	out, err := h.uc.AnalyzeSkillGap(c.Context(), usecase.SkillGapInput{
		UserSkills:  req.UserSkills,
		TargetJobID: req.TargetJobID,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.SuccessWithMeta(c, fiber.StatusOK, response.MessageOK, dto.NewSkillGapResponse(out), response.ListMeta{
		Count:     out.Total,
		Truncated: out.Truncated,
	})
}

func (h *MatchHandler) RecommendPrograms(c fiber.Ctx) error {
	var req dto.RecommendProgramsRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	out, err := h.uc.RecommendPrograms(c.Context(), usecase.RecommendProgramsInput{
		TargetSkills: req.TargetSkills,
		DegreeLevel:  req.DegreeLevel,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.SuccessWithMeta(c, fiber.StatusOK, response.MessageOK, dto.NewProgramRecommendationResponses(out), response.ListMeta{
		Count:     out.Total,
		Truncated: out.Truncated,
	})
}
