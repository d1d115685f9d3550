package usecase

import (
	"context"
	"strings"

	"labor-intel/internal/domain/job"
	"labor-intel/internal/domain/program"
	"labor-intel/internal/domain/skill"
	"labor-intel/internal/repository"

	"github.com/rs/zerolog"
)

const (
	DefaultTopSkills = 10
	MaxTopSkills     = 100
)

type ListSkillsInput struct {
	Type    string
	Search  string
	MinJobs int
}

type SkillUsecase interface {
	ListSkills(ctx context.Context, in ListSkillsInput) ([]skill.Skill, error)
	TopSkills(ctx context.Context, limit int, skillType string) ([]skill.Skill, error)
	JobsBySkill(ctx context.Context, skillID int64, page PageInput) (skill.Skill, []job.Job, PageResult, error)
	ProgramsBySkill(ctx context.Context, skillID int64) (skill.Skill, []program.Program, error)
}

type Skills struct {
	skills   repository.SkillRepository
	jobs     repository.JobRepository
	programs repository.ProgramRepository
	cache    ResultCache
	logger   zerolog.Logger
}

func NewSkillUsecase(skills repository.SkillRepository, jobs repository.JobRepository, programs repository.ProgramRepository, cache ResultCache, logger zerolog.Logger) *Skills {
	return &Skills{skills: skills, jobs: jobs, programs: programs, cache: cache, logger: logger}
}

func parseSkillType(raw string) (skill.Type, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}
	t, err := skill.ParseType(raw)
	if err != nil {
		return "", invalid(err)
	}
	return t, nil
}

func (u *Skills) ListSkills(ctx context.Context, in ListSkillsInput) ([]skill.Skill, error) {
	if in.MinJobs < 0 {
		return nil, invalidf("min_jobs must not be negative")
	}
	t, err := parseSkillType(in.Type)
	if err != nil {
		return nil, err
	}

	out, err := u.skills.List(ctx, repository.SkillFilter{
		Type:    t,
		Search:  strings.TrimSpace(in.Search),
		MinJobs: in.MinJobs,
	})
	if err != nil {
		return nil, dataAccess(err)
	}
	return out, nil
}

func (u *Skills) TopSkills(ctx context.Context, limit int, skillType string) ([]skill.Skill, error) {
	if limit < 0 {
		return nil, invalidf("limit must not be negative")
	}
	if limit == 0 {
		limit = DefaultTopSkills
	}
	limit = min(limit, MaxTopSkills)

	t, err := parseSkillType(skillType)
	if err != nil {
		return nil, err
	}

	key := CacheKey("skills:top", struct {
		Limit int
		Type  skill.Type
	}{limit, t})
	return cached(ctx, u.cache, u.logger, "skills_top", key, func(ctx context.Context) ([]skill.Skill, error) {
		out, err := u.skills.Top(ctx, limit, t)
		if err != nil {
			return nil, dataAccess(err)
		}
		return out, nil
	})
}

func (u *Skills) get(ctx context.Context, id int64) (skill.Skill, error) {
	if id <= 0 {
		return skill.Skill{}, invalidf("skill_id must be a positive integer")
	}
	s, err := u.skills.GetByID(ctx, id)
	if err != nil {
		return skill.Skill{}, fromRepo(err, "skill")
	}
	return s, nil
}

func (u *Skills) JobsBySkill(ctx context.Context, skillID int64, page PageInput) (skill.Skill, []job.Job, PageResult, error) {
	p, err := normalizePage(page)
	if err != nil {
		return skill.Skill{}, nil, PageResult{}, err
	}
	s, err := u.get(ctx, skillID)
	if err != nil {
		return skill.Skill{}, nil, PageResult{}, err
	}

	jobs, total, err := u.jobs.List(ctx, repository.JobFilter{ActiveOnly: true, SkillID: s.ID}, p)
	if err != nil {
		return skill.Skill{}, nil, PageResult{}, dataAccess(err)
	}
	return s, jobs, pageResult(p, total), nil
}

func (u *Skills) ProgramsBySkill(ctx context.Context, skillID int64) (skill.Skill, []program.Program, error) {
	s, err := u.get(ctx, skillID)
	if err != nil {
		return skill.Skill{}, nil, err
	}

	programs, err := u.programs.ListAll(ctx, repository.ProgramFilter{SkillID: s.ID})
	if err != nil {
		return skill.Skill{}, nil, dataAccess(err)
	}
	return s, programs, nil
}
