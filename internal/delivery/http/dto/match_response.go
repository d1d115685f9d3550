package dto

import "labor-intel/internal/domain/matching"

type MatchJobsRequest struct {
	Skills          []string `json:"skills" validate:"required,max=200,dive,max=100"`
	ExperienceLevel string   `json:"experience_level" validate:"omitempty,max=50"`
	Location        string   `json:"location" validate:"omitempty,max=100"`
}

type SkillGapRequest struct {
	UserSkills  []string `json:"user_skills" validate:"omitempty,max=200,dive,max=100"`
	TargetJobID string   `json:"target_job_id" validate:"required,max=20"`
}

type RecommendProgramsRequest struct {
	TargetSkills []string `json:"target_skills" validate:"required,max=200,dive,max=100"`
	DegreeLevel  string   `json:"degree_level" validate:"omitempty,max=50"`
}

type ChatbotRequest struct {
	Message string `json:"message" validate:"required"`
}

type ChatbotResponse struct {
	Message string `json:"message"`
}

// JobMatchResponse carries the raw score (0-1) and the rounded percentage.
type JobMatchResponse struct {
	Job            JobResponse `json:"job"`
	Score          float64     `json:"score"`
	MatchScore     float64     `json:"match_score"`
	MatchingSkills []string    `json:"matching_skills"`
	MissingSkills  []string    `json:"missing_skills"`
}

func NewJobMatchResponses(m matching.JobMatches) []JobMatchResponse {
	out := make([]JobMatchResponse, 0, len(m.Items))
	for _, it := range m.Items {
		out = append(out, JobMatchResponse{
			Job:            NewJobResponse(it.Job),
			Score:          it.Score,
			MatchScore:     it.Percent(),
			MatchingSkills: nonNil(it.Matching),
			MissingSkills:  nonNil(it.Missing),
		})
	}
	return out
}

type ProgramCoverageResponse struct {
	Program       ProgramResponse `json:"program"`
	CoveredSkills []string        `json:"covered_skills"`
	Score         int             `json:"score"`
}

type SkillGapResponse struct {
	JobID               string                    `json:"job_id"`
	JobTitle            string                    `json:"job_title"`
	MissingSkills       []string                  `json:"missing_skills"`
	RecommendedPrograms []ProgramCoverageResponse `json:"recommended_programs"`
}

func NewSkillGapResponse(g matching.GapAnalysis) SkillGapResponse {
	programs := make([]ProgramCoverageResponse, 0, len(g.Programs))
	for _, p := range g.Programs {
		pr := NewProgramResponse(p.Program)
		pr.Skills = nil
		programs = append(programs, ProgramCoverageResponse{
			Program:       pr,
			CoveredSkills: nonNil(p.Covered),
			Score:         p.Score,
		})
	}
	return SkillGapResponse{
		JobID:               g.Job.ID,
		JobTitle:            g.Job.Title,
		MissingSkills:       nonNil(g.Missing),
		RecommendedPrograms: programs,
	}
}

type ProgramRecommendationResponse struct {
	Program        ProgramResponse `json:"program"`
	RelevanceScore int             `json:"relevance_score"`
	MatchedSkills  []string        `json:"matched_skills"`
}

func NewProgramRecommendationResponses(r matching.ProgramRecommendations) []ProgramRecommendationResponse {
	out := make([]ProgramRecommendationResponse, 0, len(r.Items))
	for _, it := range r.Items {
		out = append(out, ProgramRecommendationResponse{
			Program:        NewProgramResponse(it.Program),
			RelevanceScore: it.Relevance,
			MatchedSkills:  nonNil(it.Matched),
		})
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
