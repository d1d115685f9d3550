package usecase

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"labor-intel/internal/infrastructure/llm"
	"labor-intel/internal/pkg/metrics"

	"github.com/rs/zerolog"
)

const MaxChatMessageLength = 2000

type Assistant interface {
	Reply(ctx context.Context, prompt string) (string, error)
}

type ChatbotUsecase interface {
	Reply(ctx context.Context, message string) (string, error)
}

type Chatbot struct {
	assistant Assistant
	logger    zerolog.Logger
}

func NewChatbotUsecase(assistant Assistant, logger zerolog.Logger) *Chatbot {
	return &Chatbot{assistant: assistant, logger: logger}
}

func (u *Chatbot) Reply(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		metrics.ChatbotRequestsTotal.WithLabelValues("invalid").Inc()
		return "", invalidf("message is required")
	}
	if utf8.RuneCountInString(message) > MaxChatMessageLength {
		metrics.ChatbotRequestsTotal.WithLabelValues("invalid").Inc()
		return "", invalidf("message is too long")
	}
	if u.assistant == nil {
		metrics.ChatbotRequestsTotal.WithLabelValues("disabled").Inc()
		return "", &Error{Kind: ErrUnavailable, Cause: llm.ErrNotConfigured}
	}

	reply, err := u.assistant.Reply(ctx, message)
	switch {
	case err == nil:
		metrics.ChatbotRequestsTotal.WithLabelValues("ok").Inc()
		return reply, nil
	case errors.Is(err, llm.ErrRateLimited):
		metrics.ChatbotRequestsTotal.WithLabelValues("rate_limited").Inc()
		return "", &Error{Kind: ErrRateLimited, Cause: err}
	case errors.Is(err, llm.ErrNotConfigured):
		metrics.ChatbotRequestsTotal.WithLabelValues("disabled").Inc()
		return "", &Error{Kind: ErrUnavailable, Cause: err}
	default:
		metrics.ChatbotRequestsTotal.WithLabelValues("error").Inc()
		u.logger.Warn().Err(err).Msg("chatbot reply failed")
		return "", &Error{Kind: ErrUnavailable, Cause: err}
	}
}
