package usecase

import (
	"context"
	"strings"

	"labor-intel/internal/domain/job"
	"labor-intel/internal/repository"
	"labor-intel/internal/search"

	"github.com/rs/zerolog"
)

type ListJobsInput struct {
	PageInput
	Location        string
	Industry        string
	ExperienceLevel string
	EmploymentType  string
	Skill           string
	Search          string
	// ActiveOnly defaults to true when nil.
	ActiveOnly *bool
}

type JobUsecase interface {
	ListJobs(ctx context.Context, in ListJobsInput) ([]job.Job, PageResult, error)
	GetJob(ctx context.Context, id string) (job.Job, error)
	Stats(ctx context.Context) (repository.JobStats, error)
}

type Jobs struct {
	jobs   repository.JobRepository
	cache  ResultCache
	logger zerolog.Logger
}

func NewJobUsecase(jobs repository.JobRepository, cache ResultCache, logger zerolog.Logger) *Jobs {
	return &Jobs{jobs: jobs, cache: cache, logger: logger}
}

func (u *Jobs) ListJobs(ctx context.Context, in ListJobsInput) ([]job.Job, PageResult, error) {
	p, err := normalizePage(in.PageInput)
	if err != nil {
		return nil, PageResult{}, err
	}

	f := repository.JobFilter{
		ActiveOnly: in.ActiveOnly == nil || *in.ActiveOnly,
		Location:   strings.TrimSpace(in.Location),
		Industry:   strings.TrimSpace(in.Industry),
		Skill:      normalizeSearchValue(in.Skill),
		Search:     search.Expand(in.Search),
	}
	if in.ExperienceLevel != "" {
		if f.ExperienceLevel, err = job.ParseExperienceLevel(in.ExperienceLevel); err != nil {
			return nil, PageResult{}, invalid(err)
		}
	}
	if in.EmploymentType != "" {
		if f.EmploymentType, err = job.ParseEmploymentType(in.EmploymentType); err != nil {
			return nil, PageResult{}, invalid(err)
		}
	}

	jobs, total, err := u.jobs.List(ctx, f, p)
	if err != nil {
		return nil, PageResult{}, dataAccess(err)
	}
	return jobs, pageResult(p, total), nil
}

func (u *Jobs) GetJob(ctx context.Context, id string) (job.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return job.Job{}, invalidf("job_id is required")
	}
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		return job.Job{}, fromRepo(err, "job")
	}
	return j, nil
}

func (u *Jobs) Stats(ctx context.Context) (repository.JobStats, error) {
	key := CacheKey("jobs:stats", nil)
	return cached(ctx, u.cache, u.logger, "jobs_stats", key, func(ctx context.Context) (repository.JobStats, error) {
		s, err := u.jobs.Stats(ctx)
		if err != nil {
			return repository.JobStats{}, dataAccess(err)
		}
		return s, nil
	})
}
