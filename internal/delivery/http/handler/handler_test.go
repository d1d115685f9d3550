package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"labor-intel/internal/delivery/http/middleware"
	"labor-intel/internal/domain/job"
	"labor-intel/internal/domain/matching"
	"labor-intel/internal/pkg/response"
	"labor-intel/internal/repository"
	"labor-intel/internal/usecase"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMatching struct {
	matches matching.JobMatches
	gap     matching.GapAnalysis
	recs    matching.ProgramRecommendations
	err     error
	lastIn  usecase.MatchJobsInput
}

func (f *fakeMatching) MatchJobs(_ context.Context, in usecase.MatchJobsInput) (matching.JobMatches, error) {
	f.lastIn = in
	return f.matches, f.err
}

func (f *fakeMatching) AnalyzeSkillGap(context.Context, usecase.SkillGapInput) (matching.GapAnalysis, error) {
	return f.gap, f.err
}

func (f *fakeMatching) RecommendPrograms(context.Context, usecase.RecommendProgramsInput) (matching.ProgramRecommendations, error) {
	return f.recs, f.err
}

type fakeJobs struct {
	items  []job.Job
	err    error
	lastIn usecase.ListJobsInput
}

func (f *fakeJobs) ListJobs(_ context.Context, in usecase.ListJobsInput) ([]job.Job, usecase.PageResult, error) {
	f.lastIn = in
	return f.items, usecase.PageResult{Page: 1, PerPage: 20, Total: len(f.items), Pages: 1}, f.err
}

func (f *fakeJobs) GetJob(_ context.Context, id string) (job.Job, error) {
	if f.err != nil {
		return job.Job{}, f.err
	}
	return job.Job{ID: id}, nil
}

func (f *fakeJobs) Stats(context.Context) (repository.JobStats, error) {
	return repository.JobStats{}, f.err
}

type fakeChatbot struct {
	err error
}

func (f fakeChatbot) Reply(_ context.Context, msg string) (string, error) {
	return "echo: " + msg, f.err
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

func newApp(register func(r fiber.Router)) *fiber.App {
	app := fiber.New(fiber.Config{JSONEncoder: json.Marshal, JSONDecoder: json.Unmarshal})
	app.Use(middleware.NewErrorMiddleware(zerolog.Nop()).Middleware())
	register(app.Group("/api"))
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, response.SemanticResponse, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env response.SemanticResponse
	require.NoError(t, json.Unmarshal(b, &env))
	var meta map[string]any
	if m, ok := env.Meta.(map[string]any); ok {
		meta = m
	}
	return resp.StatusCode, env, meta
}

func TestMatchHandler_MatchJobs(t *testing.T) {
	uc := &fakeMatching{matches: matching.JobMatches{
		Items: []matching.JobMatch{{
			Job:      job.Job{ID: "JOB-0001", Title: "Backend"},
			Score:    0.75,
			Matching: []string{"go", "sql", "docker"},
			Missing:  []string{"kubernetes"},
		}},
		Total: 1,
	}}
	app := newApp(NewMatchHandler(uc).RegisterRoutes)

	status, env, meta := do(t, app, fiber.MethodPost, "/api/match/jobs", `{"skills":["Go","SQL","Docker"],"location":"Dubai"}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []string{"Go", "SQL", "Docker"}, uc.lastIn.Skills)
	assert.Equal(t, "Dubai", uc.lastIn.Location)

	items := env.Data.([]any)
	require.Len(t, items, 1)
	first := items[0].(map[string]any)
	assert.InDelta(t, 0.75, first["score"], 1e-9)
	assert.InDelta(t, 75.0, first["match_score"], 1e-9)
	assert.Equal(t, []any{"kubernetes"}, first["missing_skills"])
	assert.Equal(t, "JOB-0001", first["job"].(map[string]any)["id"])
	assert.EqualValues(t, 1, meta["count"])
}

func TestMatchHandler_Validation(t *testing.T) {
	app := newApp(NewMatchHandler(&fakeMatching{}).RegisterRoutes)

	status, env, _ := do(t, app, fiber.MethodPost, "/api/match/jobs", `{"location":"Dubai"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "validation failed", env.Message)
	fields := env.Data.([]any)
	require.Len(t, fields, 1)
	assert.Equal(t, "skills", fields[0].(map[string]any)["field"])

	status, _, _ = do(t, app, fiber.MethodPost, "/api/match/skill-gap", `{"user_skills":["go"]}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _, _ = do(t, app, fiber.MethodPost, "/api/recommend/programs", `{"target_skills":`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestMatchHandler_ErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"invalid", &usecase.Error{Kind: usecase.ErrInvalidInput, Cause: matching.ErrNoSkills}, fiber.StatusBadRequest, "no skills provided"},
		{"not found", &usecase.Error{Kind: usecase.ErrNotFound, Cause: errors.New("job not found")}, fiber.StatusNotFound, "job not found"},
		{"data access", &usecase.Error{Kind: usecase.ErrDataAccess, Cause: errors.New("dial tcp: refused")}, fiber.StatusServiceUnavailable, response.MessageServiceUnavailable},
		{"rate limited", &usecase.Error{Kind: usecase.ErrRateLimited}, fiber.StatusTooManyRequests, response.MessageTooManyRequests},
		{"unexpected", errors.New("boom"), fiber.StatusInternalServerError, response.MessageInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newApp(NewMatchHandler(&fakeMatching{err: tc.err}).RegisterRoutes)
			status, env, _ := do(t, app, fiber.MethodPost, "/api/match/skill-gap", `{"user_skills":[],"target_job_id":"JOB-0001"}`)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.msg, env.Message)
		})
	}
}

func TestMatchHandler_SkillGapResponse(t *testing.T) {
	uc := &fakeMatching{gap: matching.GapAnalysis{
		Job:      job.Job{ID: "JOB-0003", Title: "ML Engineer"},
		Missing:  []string{},
		Programs: []matching.ProgramCoverage{},
	}}
	app := newApp(NewMatchHandler(uc).RegisterRoutes)

	status, env, _ := do(t, app, fiber.MethodPost, "/api/match/skill-gap", `{"target_job_id":"JOB-0003"}`)
	require.Equal(t, fiber.StatusOK, status)
	data := env.Data.(map[string]any)
	assert.Equal(t, "ML Engineer", data["job_title"])
	assert.Equal(t, []any{}, data["missing_skills"])
	assert.Equal(t, []any{}, data["recommended_programs"])
}

func TestJobsHandler_List(t *testing.T) {
	uc := &fakeJobs{items: []job.Job{{ID: "JOB-0001"}, {ID: "JOB-0002"}}}
	app := newApp(NewJobsHandler(uc).RegisterRoutes)

	status, env, meta := do(t, app, fiber.MethodGet, "/api/jobs?page=1&per_page=20&level=senior&is_active=false&search=go", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, env.Data.([]any), 2)
	assert.EqualValues(t, 2, meta["total"])
	assert.Equal(t, "senior", uc.lastIn.ExperienceLevel)
	require.NotNil(t, uc.lastIn.ActiveOnly)
	assert.False(t, *uc.lastIn.ActiveOnly)
	assert.Equal(t, "go", uc.lastIn.Search)

	status, _, _ = do(t, app, fiber.MethodGet, "/api/jobs?page=abc", "")
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _, _ = do(t, app, fiber.MethodGet, "/api/jobs?is_active=maybe", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestJobsHandler_GetNotFound(t *testing.T) {
	uc := &fakeJobs{err: &usecase.Error{Kind: usecase.ErrNotFound, Cause: errors.New("job not found")}}
	app := newApp(NewJobsHandler(uc).RegisterRoutes)

	status, env, _ := do(t, app, fiber.MethodGet, "/api/jobs/JOB-9999", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "job not found", env.Message)
}

func TestSkillHandler_BadID(t *testing.T) {
	app := newApp(NewSkillHandler(nil).RegisterRoutes)

	status, _, _ := do(t, app, fiber.MethodGet, "/api/skills/abc/jobs", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestChatbotHandler(t *testing.T) {
	app := newApp(NewChatbotHandler(fakeChatbot{}).RegisterRoutes)

	status, env, _ := do(t, app, fiber.MethodPost, "/api/chatbot", `{"message":"hello"}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "echo: hello", env.Data.(map[string]any)["message"])

	status, _, _ = do(t, app, fiber.MethodPost, "/api/chatbot", `{"message":""}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	unavailable := newApp(NewChatbotHandler(fakeChatbot{err: &usecase.Error{Kind: usecase.ErrUnavailable}}).RegisterRoutes)
	status, _, _ = do(t, unavailable, fiber.MethodPost, "/api/chatbot", `{"message":"hello"}`)
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
}

func TestHealthHandler(t *testing.T) {
	healthy := fiber.New()
	NewHealthHandler("lmi", "1.0.0", fakePinger{}, nil).RegisterRoutes(healthy)

	status, env, _ := do(t, healthy, fiber.MethodGet, "/api/health", "")
	assert.Equal(t, fiber.StatusOK, status)
	data := env.Data.(map[string]any)
	assert.Equal(t, "up", data["database"])
	assert.Equal(t, "disabled", data["cache"])

	down := fiber.New()
	NewHealthHandler("lmi", "1.0.0", fakePinger{err: errors.New("down")}, fakePinger{}).RegisterRoutes(down)
	status, env, _ = do(t, down, fiber.MethodGet, "/api/health", "")
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Equal(t, "unhealthy", env.Data.(map[string]any)["status"])

	status, env, _ = do(t, healthy, fiber.MethodGet, "/", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "lmi", env.Data.(map[string]any)["name"])
}
