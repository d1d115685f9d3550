package dto

import "labor-intel/internal/repository"

type SalaryTrendResponse struct {
	Label     string  `json:"label"`
	AvgSalary float64 `json:"avg_salary"`
	JobCount  int     `json:"job_count"`
}

func NewSalaryTrends(items []repository.SalaryTrend) []SalaryTrendResponse {
	out := make([]SalaryTrendResponse, 0, len(items))
	for _, it := range items {
		out = append(out, SalaryTrendResponse{Label: it.Label, AvgSalary: it.Value, JobCount: it.Count})
	}
	return out
}
