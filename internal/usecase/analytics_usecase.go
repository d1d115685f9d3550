package usecase

import (
	"context"
	"fmt"
	"strings"

	"labor-intel/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultTrendLimit = 10
	MaxTrendLimit     = 50
)

type Overview struct {
	TotalJobs         int `json:"total_jobs"`
	ActiveJobs        int `json:"active_jobs"`
	TotalCompanies    int `json:"total_companies"`
	TotalSkills       int `json:"total_skills"`
	TotalUniversities int `json:"total_universities"`
	TotalPrograms     int `json:"total_programs"`
}

type AnalyticsUsecase interface {
	Overview(ctx context.Context) (Overview, error)
	SalaryTrends(ctx context.Context, by string) ([]repository.SalaryTrend, error)
	JobTrends(ctx context.Context, dimension string, limit int) ([]repository.LabelCount, error)
}

type Analytics struct {
	repo   repository.AnalyticsRepository
	cache  ResultCache
	logger zerolog.Logger
}

func NewAnalyticsUsecase(repo repository.AnalyticsRepository, cache ResultCache, logger zerolog.Logger) *Analytics {
	return &Analytics{repo: repo, cache: cache, logger: logger}
}

func (u *Analytics) Overview(ctx context.Context) (Overview, error) {
	return cached(ctx, u.cache, u.logger, "analytics_overview", CacheKey("analytics:overview", nil), u.loadOverview)
}

func (u *Analytics) loadOverview(ctx context.Context) (Overview, error) {
	var out Overview
	targets := []struct {
		entity repository.Entity
		dst    *int
	}{
		{repository.EntityJobs, &out.TotalJobs},
		{repository.EntityActiveJobs, &out.ActiveJobs},
		{repository.EntityCompanies, &out.TotalCompanies},
		{repository.EntitySkills, &out.TotalSkills},
		{repository.EntityUniversities, &out.TotalUniversities},
		{repository.EntityPrograms, &out.TotalPrograms},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, t := range targets {
		g.Go(func() error {
			n, err := u.repo.Count(gctx, t.entity)
			if err != nil {
				return fmt.Errorf("count %s: %w", t.entity, err)
			}
			*t.dst = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Overview{}, dataAccess(err)
	}
	return out, nil
}

func (u *Analytics) SalaryTrends(ctx context.Context, by string) ([]repository.SalaryTrend, error) {
	grouping := repository.SalaryGrouping(strings.ToLower(strings.TrimSpace(by)))
	if grouping == "" {
		grouping = repository.SalaryByExperience
	}
	if grouping != repository.SalaryByExperience && grouping != repository.SalaryByIndustry {
		return nil, invalidf("by must be one of: experience, industry")
	}

	key := CacheKey("analytics:salary", grouping)
	return cached(ctx, u.cache, u.logger, "analytics_salary", key, func(ctx context.Context) ([]repository.SalaryTrend, error) {
		out, err := u.repo.SalaryTrends(ctx, grouping)
		if err != nil {
			return nil, dataAccess(err)
		}
		return out, nil
	})
}

func (u *Analytics) JobTrends(ctx context.Context, dimension string, limit int) ([]repository.LabelCount, error) {
	dim := repository.TrendDimension(strings.ToLower(strings.TrimSpace(dimension)))
	if dim == "" {
		dim = repository.TrendByLocation
	}
	switch dim {
	case repository.TrendByLocation, repository.TrendByIndustry, repository.TrendByEmploymentType:
	default:
		return nil, invalidf("type must be one of: location, industry, employment_type")
	}
	if limit < 0 {
		return nil, invalidf("limit must not be negative")
	}
	if limit == 0 {
		limit = DefaultTrendLimit
	}
	limit = min(limit, MaxTrendLimit)

	key := CacheKey("analytics:jobs", struct {
		Dimension repository.TrendDimension
		Limit     int
	}{dim, limit})
	return cached(ctx, u.cache, u.logger, "analytics_jobs", key, func(ctx context.Context) ([]repository.LabelCount, error) {
		out, err := u.repo.JobTrends(ctx, dim, limit)
		if err != nil {
			return nil, dataAccess(err)
		}
		return out, nil
	})
}
