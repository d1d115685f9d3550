package dto

import (
	"labor-intel/internal/domain/program"
	"labor-intel/internal/domain/skill"
	"labor-intel/internal/domain/university"
)

type SkillResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	JobCount     int    `json:"job_count"`
	ProgramCount int    `json:"program_count"`
}

func NewSkillResponse(s skill.Skill) SkillResponse {
	return SkillResponse{ID: s.ID, Name: s.Name, Type: string(s.Type), JobCount: s.JobCount, ProgramCount: s.ProgramCount}
}

func NewSkillResponses(items []skill.Skill) []SkillResponse {
	out := make([]SkillResponse, 0, len(items))
	for _, s := range items {
		out = append(out, NewSkillResponse(s))
	}
	return out
}

type ProgramResponse struct {
	ID                 string   `json:"id"`
	UniversityID       int64    `json:"university_id"`
	University         string   `json:"university"`
	UniversityType     string   `json:"university_type"`
	Location           string   `json:"location"`
	ProgramName        string   `json:"program_name"`
	Category           string   `json:"category"`
	DegreeLevel        string   `json:"degree_level"`
	DurationYears      *int     `json:"duration_years"`
	TuitionUSD         *float64 `json:"tuition_usd"`
	EnrollmentCapacity *int     `json:"enrollment_capacity"`
	Accredited         bool     `json:"accredited"`
	Languages          string   `json:"languages"`
	InDemand           bool     `json:"in_demand"`
	Skills             []string `json:"skills,omitempty"`
}

func NewProgramResponse(p program.Program) ProgramResponse {
	return ProgramResponse{
		ID:                 p.ID,
		UniversityID:       p.UniversityID,
		University:         p.University,
		UniversityType:     p.UniversityType,
		Location:           p.Location,
		ProgramName:        p.Name,
		Category:           p.Category,
		DegreeLevel:        string(p.DegreeLevel),
		DurationYears:      p.DurationYears,
		TuitionUSD:         p.TuitionUSD,
		EnrollmentCapacity: p.EnrollmentCapacity,
		Accredited:         p.Accredited,
		Languages:          p.Languages,
		InDemand:           p.InDemand,
		Skills:             p.Skills,
	}
}

func NewProgramResponses(items []program.Program) []ProgramResponse {
	out := make([]ProgramResponse, 0, len(items))
	for _, p := range items {
		out = append(out, NewProgramResponse(p))
	}
	return out
}

type UniversityResponse struct {
	ID              int64             `json:"id"`
	Name            string            `json:"name"`
	Type            string            `json:"type"`
	Location        string            `json:"location"`
	EstablishedYear *int              `json:"established_year"`
	ProgramCount    int               `json:"program_count"`
	Programs        []ProgramResponse `json:"programs,omitempty"`
}

func NewUniversityResponse(u university.University) UniversityResponse {
	out := UniversityResponse{
		ID:              u.ID,
		Name:            u.Name,
		Type:            string(u.Type),
		Location:        u.Location,
		EstablishedYear: u.EstablishedYear,
		ProgramCount:    u.ProgramCount,
	}
	if u.Programs != nil {
		out.Programs = NewProgramResponses(u.Programs)
	}
	return out
}

func NewUniversityResponses(items []university.University) []UniversityResponse {
	out := make([]UniversityResponse, 0, len(items))
	for _, u := range items {
		out = append(out, NewUniversityResponse(u))
	}
	return out
}
