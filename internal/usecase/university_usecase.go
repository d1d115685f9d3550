package usecase

import (
	"context"
	"strings"

	"labor-intel/internal/domain/program"
	"labor-intel/internal/domain/university"
	"labor-intel/internal/repository"
	"labor-intel/internal/search"
)

type ListUniversitiesInput struct {
	Type     string
	Location string
	Search   string
}

type ListProgramsInput struct {
	PageInput
	Category     string
	DegreeLevel  string
	UniversityID int64
	MaxTuition   *float64
	Search       string
}

type UniversityUsecase interface {
	ListUniversities(ctx context.Context, in ListUniversitiesInput) ([]university.University, error)
	GetUniversity(ctx context.Context, id int64) (university.University, error)
	ListPrograms(ctx context.Context, in ListProgramsInput) ([]program.Program, PageResult, error)
	GetProgram(ctx context.Context, id string) (program.Program, error)
}

type Universities struct {
	universities repository.UniversityRepository
	programs     repository.ProgramRepository
}

func NewUniversityUsecase(universities repository.UniversityRepository, programs repository.ProgramRepository) *Universities {
	return &Universities{universities: universities, programs: programs}
}

func (u *Universities) ListUniversities(ctx context.Context, in ListUniversitiesInput) ([]university.University, error) {
	f := repository.UniversityFilter{
		Location: strings.TrimSpace(in.Location),
		Search:   strings.TrimSpace(in.Search),
	}
	if strings.TrimSpace(in.Type) != "" {
		t, err := university.ParseType(in.Type)
		if err != nil {
			return nil, invalid(err)
		}
		f.Type = t
	}

	out, err := u.universities.List(ctx, f)
	if err != nil {
		return nil, dataAccess(err)
	}
	return out, nil
}

func (u *Universities) GetUniversity(ctx context.Context, id int64) (university.University, error) {
	if id <= 0 {
		return university.University{}, invalidf("university id must be a positive integer")
	}
	uni, err := u.universities.GetByID(ctx, id)
	if err != nil {
		return university.University{}, fromRepo(err, "university")
	}

	programs, err := u.programs.ListAll(ctx, repository.ProgramFilter{UniversityID: uni.ID})
	if err != nil {
		return university.University{}, dataAccess(err)
	}
	uni.Programs = programs
	return uni, nil
}

func (u *Universities) ListPrograms(ctx context.Context, in ListProgramsInput) ([]program.Program, PageResult, error) {
	p, err := normalizePage(in.PageInput)
	if err != nil {
		return nil, PageResult{}, err
	}
	if in.UniversityID < 0 {
		return nil, PageResult{}, invalidf("university_id must be a positive integer")
	}
	if in.MaxTuition != nil && *in.MaxTuition < 0 {
		return nil, PageResult{}, invalidf("max_tuition must not be negative")
	}

	f := repository.ProgramFilter{
		Category:     strings.TrimSpace(in.Category),
		UniversityID: in.UniversityID,
		MaxTuition:   in.MaxTuition,
		Search:       search.Expand(in.Search),
	}
	if strings.TrimSpace(in.DegreeLevel) != "" {
		if f.DegreeLevel, err = program.ParseDegreeLevel(in.DegreeLevel); err != nil {
			return nil, PageResult{}, invalid(err)
		}
	}

	programs, total, err := u.programs.List(ctx, f, p)
	if err != nil {
		return nil, PageResult{}, dataAccess(err)
	}
	return programs, pageResult(p, total), nil
}

func (u *Universities) GetProgram(ctx context.Context, id string) (program.Program, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return program.Program{}, invalidf("program id is required")
	}
	p, err := u.programs.GetByID(ctx, id)
	if err != nil {
		return program.Program{}, fromRepo(err, "program")
	}
	return p, nil
}
