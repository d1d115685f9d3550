package llm

import (
	"context"
	"errors"
	"testing"

	"labor-intel/internal/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGemini_NoAPIKey(t *testing.T) {
	g, err := NewGemini(context.Background(), config.GeminiConfig{Model: "m"}, zerolog.Nop())
	require.NoError(t, err)
	assert.False(t, g.Enabled())

	_, err = g.Reply(context.Background(), "hi")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestGemini_Reply(t *testing.T) {
	var gotModel, gotPrompt string
	g := newGemini("gemini-test", 0, func(_ context.Context, model, prompt string) (string, error) {
		gotModel, gotPrompt = model, prompt
		return "hello back", nil
	}, zerolog.Nop())

	out, err := g.Reply(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello back", out)
	assert.Equal(t, "gemini-test", gotModel)
	assert.Equal(t, "hello", gotPrompt)
}

func TestGemini_RateLimited(t *testing.T) {
	g := newGemini("m", 1, func(context.Context, string, string) (string, error) {
		return "ok", nil
	}, zerolog.Nop())

	_, err := g.Reply(context.Background(), "first")
	require.NoError(t, err)
	_, err = g.Reply(context.Background(), "second")
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestGemini_BreakerOpens(t *testing.T) {
	calls := 0
	upstream := errors.New("503 from upstream")
	g := newGemini("m", 0, func(context.Context, string, string) (string, error) {
		calls++
		return "", upstream
	}, zerolog.Nop())

	for i := 0; i < 3; i++ {
		_, err := g.Reply(context.Background(), "x")
		assert.ErrorIs(t, err, ErrUnavailable)
		assert.ErrorIs(t, err, upstream)
	}

	_, err := g.Reply(context.Background(), "x")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, 3, calls, "open breaker must not reach upstream")
}
