package dto

import (
	"time"

	"labor-intel/internal/domain/job"
	"labor-intel/internal/repository"
)

type JobResponse struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Company           string   `json:"company"`
	Industry          string   `json:"industry"`
	Location          string   `json:"location"`
	EmploymentType    string   `json:"employment_type"`
	ExperienceLevel   string   `json:"experience_level"`
	SalaryMin         *float64 `json:"salary_min"`
	SalaryMax         *float64 `json:"salary_max"`
	DegreeRequired    string   `json:"degree_required"`
	LanguagesRequired string   `json:"languages_required"`
	Description       string   `json:"description,omitempty"`
	IsActive          bool     `json:"is_active"`
	PostedDate        *string  `json:"posted_date"`
	Skills            []string `json:"skills"`
}

func NewJobResponse(j job.Job) JobResponse {
	var posted *string
	if j.PostedDate != nil && !j.PostedDate.IsZero() {
		s := j.PostedDate.UTC().Format(time.DateOnly)
		posted = &s
	}

	skills := j.Skills
	if skills == nil {
		skills = []string{}
	}

	return JobResponse{
		ID:                j.ID,
		Title:             j.Title,
		Company:           j.Company,
		Industry:          j.Industry,
		Location:          j.Location,
		EmploymentType:    string(j.EmploymentType),
		ExperienceLevel:   string(j.ExperienceLevel),
		SalaryMin:         j.SalaryMin,
		SalaryMax:         j.SalaryMax,
		DegreeRequired:    j.DegreeRequired,
		LanguagesRequired: j.LanguagesRequired,
		Description:       j.Description,
		IsActive:          j.IsActive,
		PostedDate:        posted,
		Skills:            skills,
	}
}

func NewJobResponses(items []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(items))
	for _, j := range items {
		out = append(out, NewJobResponse(j))
	}
	return out
}

type LabelCountResponse struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

func NewLabelCounts(items []repository.LabelCount) []LabelCountResponse {
	out := make([]LabelCountResponse, 0, len(items))
	for _, it := range items {
		out = append(out, LabelCountResponse{Label: it.Label, Count: it.Count})
	}
	return out
}

type JobStatsResponse struct {
	TotalJobs      int                  `json:"total_jobs"`
	ActiveJobs     int                  `json:"active_jobs"`
	TotalCompanies int                  `json:"total_companies"`
	AvgSalary      *float64             `json:"avg_salary"`
	TopIndustries  []LabelCountResponse `json:"top_industries"`
	TopLocations   []LabelCountResponse `json:"top_locations"`
}

func NewJobStatsResponse(s repository.JobStats) JobStatsResponse {
	return JobStatsResponse{
		TotalJobs:      s.TotalJobs,
		ActiveJobs:     s.ActiveJobs,
		TotalCompanies: s.TotalCompanies,
		AvgSalary:      s.AvgSalary,
		TopIndustries:  NewLabelCounts(s.TopIndustries),
		TopLocations:   NewLabelCounts(s.TopLocations),
	}
}
