package usecase

import (
	"context"
	"strings"
	"time"

	"labor-intel/internal/domain/job"
	"labor-intel/internal/domain/matching"
	"labor-intel/internal/domain/program"
	"labor-intel/internal/pkg/metrics"
	"labor-intel/internal/repository"

	"github.com/rs/zerolog"
)

type MatchJobsInput struct {
	Skills          []string
	ExperienceLevel string
	Location        string
}

type SkillGapInput struct {
	UserSkills  []string
	TargetJobID string
}

type RecommendProgramsInput struct {
	TargetSkills []string
	DegreeLevel  string
}

type MatchingUsecase interface {
	MatchJobs(ctx context.Context, in MatchJobsInput) (matching.JobMatches, error)
	AnalyzeSkillGap(ctx context.Context, in SkillGapInput) (matching.GapAnalysis, error)
	RecommendPrograms(ctx context.Context, in RecommendProgramsInput) (matching.ProgramRecommendations, error)
}

type Matching struct {
	jobs     repository.JobRepository
	programs repository.ProgramRepository
	logger   zerolog.Logger
}

func NewMatchingUsecase(jobs repository.JobRepository, programs repository.ProgramRepository, logger zerolog.Logger) *Matching {
	return &Matching{jobs: jobs, programs: programs, logger: logger.With().Str("component", "matching").Logger()}
}

func (u *Matching) MatchJobs(ctx context.Context, in MatchJobsInput) (matching.JobMatches, error) {
	candidate := matching.NewSkillSet(in.Skills...)
	if candidate.Len() == 0 {
		return matching.JobMatches{}, invalid(matching.ErrNoSkills)
	}

	f := repository.JobFilter{ActiveOnly: true, Location: strings.TrimSpace(in.Location)}
	if in.ExperienceLevel != "" {
		lvl, err := job.ParseExperienceLevel(in.ExperienceLevel)
		if err != nil {
			return matching.JobMatches{}, invalid(err)
		}
		f.ExperienceLevel = lvl
	}

	pool, err := u.jobs.ListAll(ctx, f)
	if err != nil {
		return matching.JobMatches{}, dataAccess(err)
	}

	defer observe("match_jobs", time.Now())
	out, err := matching.MatchJobs(candidate, pool)
	if err != nil {
		return matching.JobMatches{}, invalid(err)
	}

	record("match_jobs", len(pool), out.Total)
	u.logger.Debug().
		Int("skills", candidate.Len()).
		Int("pool", len(pool)).
		Int("matches", out.Total).
		Bool("truncated", out.Truncated).
		Msg("jobs matched")
	return out, nil
}

func (u *Matching) AnalyzeSkillGap(ctx context.Context, in SkillGapInput) (matching.GapAnalysis, error) {
	id := strings.TrimSpace(in.TargetJobID)
	if id == "" {
		return matching.GapAnalysis{}, invalidf("target_job_id is required")
	}

	target, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		return matching.GapAnalysis{}, fromRepo(err, "job")
	}

	candidate := matching.NewSkillSet(in.UserSkills...)

	// Programs are only needed when something is missing.
	var pool []program.Program
	if matching.NewSkillSet(target.Skills...).Difference(candidate).Len() > 0 {
		pool, err = u.programs.ListAll(ctx, repository.ProgramFilter{})
		if err != nil {
			return matching.GapAnalysis{}, dataAccess(err)
		}
	}

	defer observe("skill_gap", time.Now())
	out := matching.AnalyzeGap(candidate, target, pool)

	record("skill_gap", len(pool), out.Total)
	u.logger.Debug().
		Str("job_id", target.ID).
		Int("missing", len(out.Missing)).
		Int("programs", out.Total).
		Msg("skill gap analysed")
	return out, nil
}

func (u *Matching) RecommendPrograms(ctx context.Context, in RecommendProgramsInput) (matching.ProgramRecommendations, error) {
	target := matching.NewSkillSet(in.TargetSkills...)
	if target.Len() == 0 {
		return matching.ProgramRecommendations{}, invalid(matching.ErrNoSkills)
	}

	var f repository.ProgramFilter
	if in.DegreeLevel != "" {
		lvl, err := program.ParseDegreeLevel(in.DegreeLevel)
		if err != nil {
			return matching.ProgramRecommendations{}, invalid(err)
		}
		f.DegreeLevel = lvl
	}

	pool, err := u.programs.ListAll(ctx, f)
	if err != nil {
		return matching.ProgramRecommendations{}, dataAccess(err)
	}

	defer observe("recommend_programs", time.Now())
	out, err := matching.RecommendPrograms(target, pool)
	if err != nil {
		return matching.ProgramRecommendations{}, invalid(err)
	}

	record("recommend_programs", len(pool), out.Total)
	u.logger.Debug().
		Int("skills", target.Len()).
		Int("pool", len(pool)).
		Int("recommendations", out.Total).
		Msg("programs recommended")
	return out, nil
}

func observe(op string, start time.Time) {
	metrics.MatchingDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func record(op string, pool, results int) {
	metrics.MatchingPoolSize.WithLabelValues(op).Observe(float64(pool))
	metrics.MatchingResults.WithLabelValues(op).Observe(float64(results))
}
