// Package llm wraps the Gemini text generation API behind a rate limiter and
// a circuit breaker.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"labor-intel/internal/config"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

var (
	ErrNotConfigured = errors.New("llm not configured")
	ErrRateLimited   = errors.New("llm rate limit exceeded")
	ErrUnavailable   = errors.New("llm unavailable")
)

type generateFunc func(ctx context.Context, model, prompt string) (string, error)

type Gemini struct {
	model    string
	generate generateFunc
	breaker  *gobreaker.CircuitBreaker[string]
	limiter  *rate.Limiter
	logger   zerolog.Logger
}

// NewGemini returns a client that reports ErrNotConfigured on every call when
// no API key is set, so the service can start without one.
func NewGemini(ctx context.Context, cfg config.GeminiConfig, logger zerolog.Logger) (*Gemini, error) {
	logger = logger.With().Str("component", "gemini").Logger()

	if strings.TrimSpace(cfg.APIKey) == "" {
		logger.Info().Msg("GEMINI_API_KEY not set, chatbot disabled")
		return newGemini(cfg.Model, cfg.RequestsPerMin, nil, logger), nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	gen := func(ctx context.Context, model, prompt string) (string, error) {
		res, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
		if err != nil {
			return "", err
		}
		return res.Text(), nil
	}
	return newGemini(cfg.Model, cfg.RequestsPerMin, gen, logger), nil
}

func newGemini(model string, perMinute int, gen generateFunc, logger zerolog.Logger) *Gemini {
	limit := rate.Inf
	burst := 1
	if perMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(perMinute))
		burst = min(perMinute, 5)
	}

	breaker := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        "gemini",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
		},
	})

	return &Gemini{
		model:    model,
		generate: gen,
		breaker:  breaker,
		limiter:  rate.NewLimiter(limit, burst),
		logger:   logger,
	}
}

func (g *Gemini) Enabled() bool {
	return g != nil && g.generate != nil
}

func (g *Gemini) Reply(ctx context.Context, prompt string) (string, error) {
	if !g.Enabled() {
		return "", ErrNotConfigured
	}
	if !g.limiter.Allow() {
		return "", ErrRateLimited
	}

	text, err := g.breaker.Execute(func() (string, error) {
		return g.generate(ctx, g.model, prompt)
	})
	if err != nil {
		g.logger.Error().Err(err).Str("state", g.breaker.State().String()).Msg("generate content failed")
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return text, nil
}
