package handler

import (
	"labor-intel/internal/delivery/http/dto"
	"labor-intel/internal/pkg/response"
	"labor-intel/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ChatbotHandler struct {
	uc usecase.ChatbotUsecase
}

func NewChatbotHandler(uc usecase.ChatbotUsecase) *ChatbotHandler {
	return &ChatbotHandler{uc: uc}
}

func (h *ChatbotHandler) RegisterRoutes(r fiber.Router) {
	if r == nil || h == nil {
		return
	}
	r.Post("/chatbot", h.Reply)
}

func (h *ChatbotHandler) Reply(c fiber.Ctx) error {
	var req dto.ChatbotRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	reply, err := h.uc.Reply(c.Context(), req.Message)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ChatbotResponse{Message: reply})
}
