package usecase

import (
	"context"
	"errors"
	"testing"

	"labor-intel/internal/domain/job"
	"labor-intel/internal/domain/matching"
	"labor-intel/internal/domain/program"
	"labor-intel/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matchingFixture() (*fakeJobRepo, *fakeProgramRepo, *Matching) {
	jobs := &fakeJobRepo{items: []job.Job{
		{ID: "J1", Title: "Backend", Skills: []string{"Go", "SQL", "Docker", "AWS"}},
		{ID: "J2", Title: "Data", Skills: []string{"Go", "SQL"}},
		{ID: "J3", Title: "Designer", Skills: []string{"Figma"}},
	}}
	programs := &fakeProgramRepo{items: []program.Program{
		{ID: "P1", Name: "Cloud", Skills: []string{"aws", "docker"}},
		{ID: "P2", Name: "Ops", Skills: []string{"docker"}},
	}}
	return jobs, programs, NewMatchingUsecase(jobs, programs, zerolog.Nop())
}

func TestMatching_MatchJobs(t *testing.T) {
	jobs, _, uc := matchingFixture()

	out, err := uc.MatchJobs(context.Background(), MatchJobsInput{Skills: []string{" go ", "SQL"}, Location: " Jakarta "})
	require.NoError(t, err)
	require.Equal(t, 2, out.Total)
	assert.Equal(t, "J2", out.Items[0].Job.ID)
	assert.InDelta(t, 1.0, out.Items[0].Score, 1e-9)
	assert.Empty(t, out.Items[0].Missing)
	assert.Equal(t, "J1", out.Items[1].Job.ID)
	assert.InDelta(t, 0.5, out.Items[1].Score, 1e-9)
	assert.Equal(t, []string{"aws", "docker"}, out.Items[1].Missing)

	assert.True(t, jobs.lastFilter.ActiveOnly)
	assert.Equal(t, "Jakarta", jobs.lastFilter.Location)
}

func TestMatching_MatchJobs_Validation(t *testing.T) {
	_, _, uc := matchingFixture()

	_, err := uc.MatchJobs(context.Background(), MatchJobsInput{Skills: []string{"", "  "}})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, matching.ErrNoSkills)

	_, err = uc.MatchJobs(context.Background(), MatchJobsInput{Skills: []string{"go"}, ExperienceLevel: "guru"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, job.ErrInvalidExperienceLevel)
}

func TestMatching_MatchJobs_ExperienceFilter(t *testing.T) {
	jobs, _, uc := matchingFixture()

	_, err := uc.MatchJobs(context.Background(), MatchJobsInput{Skills: []string{"go"}, ExperienceLevel: "SENIOR"})
	require.NoError(t, err)
	assert.Equal(t, job.ExperienceSenior, jobs.lastFilter.ExperienceLevel)
}

func TestMatching_MatchJobs_RepositoryError(t *testing.T) {
	jobs, _, uc := matchingFixture()
	jobs.err = errors.New("connection refused")

	_, err := uc.MatchJobs(context.Background(), MatchJobsInput{Skills: []string{"go"}})
	assert.ErrorIs(t, err, ErrDataAccess)
}

func TestMatching_AnalyzeSkillGap(t *testing.T) {
	_, programs, uc := matchingFixture()

	out, err := uc.AnalyzeSkillGap(context.Background(), SkillGapInput{UserSkills: []string{"go", "sql"}, TargetJobID: "J1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"aws", "docker"}, out.Missing)
	require.Len(t, out.Programs, 2)
	assert.Equal(t, "P1", out.Programs[0].Program.ID)
	assert.Equal(t, 2, out.Programs[0].Score)
	assert.Equal(t, 1, programs.listCalls)
}

func TestMatching_AnalyzeSkillGap_NothingMissing(t *testing.T) {
	_, programs, uc := matchingFixture()

	out, err := uc.AnalyzeSkillGap(context.Background(), SkillGapInput{UserSkills: []string{"figma"}, TargetJobID: "J3"})
	require.NoError(t, err)
	assert.Empty(t, out.Missing)
	assert.NotNil(t, out.Programs)
	assert.Empty(t, out.Programs)
	assert.Zero(t, programs.listCalls)
}

func TestMatching_AnalyzeSkillGap_Errors(t *testing.T) {
	_, _, uc := matchingFixture()

	_, err := uc.AnalyzeSkillGap(context.Background(), SkillGapInput{TargetJobID: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.AnalyzeSkillGap(context.Background(), SkillGapInput{TargetJobID: "NOPE"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "job not found")
}

func TestMatching_RecommendPrograms(t *testing.T) {
	_, programs, uc := matchingFixture()

	out, err := uc.RecommendPrograms(context.Background(), RecommendProgramsInput{TargetSkills: []string{"Docker", "AWS"}, DegreeLevel: "bachelor"})
	require.NoError(t, err)
	require.Equal(t, 2, out.Total)
	assert.Equal(t, "P1", out.Items[0].Program.ID)
	assert.Equal(t, 2, out.Items[0].Relevance)
	assert.Equal(t, program.DegreeBachelor, programs.lastFilter.DegreeLevel)
}

func TestMatching_RecommendPrograms_Validation(t *testing.T) {
	_, programs, uc := matchingFixture()

	_, err := uc.RecommendPrograms(context.Background(), RecommendProgramsInput{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.RecommendPrograms(context.Background(), RecommendProgramsInput{TargetSkills: []string{"go"}, DegreeLevel: "wizard"})
	assert.ErrorIs(t, err, program.ErrInvalidDegreeLevel)

	programs.err = repository.ErrNotFound
	_, err = uc.RecommendPrograms(context.Background(), RecommendProgramsInput{TargetSkills: []string{"go"}})
	assert.ErrorIs(t, err, ErrDataAccess)
}
