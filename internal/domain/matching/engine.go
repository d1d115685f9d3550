// Package matching scores candidate skill sets against job postings and
// academic programs. Every function here is pure: it reads only its arguments
// and never touches storage.
package matching

import (
	"errors"
	"math"

	"labor-intel/internal/domain/job"
	"labor-intel/internal/domain/program"
)

var ErrNoSkills = errors.New("no skills provided")

type JobMatch struct {
	Job      job.Job
	Score    float64
	Matching []string
	Missing  []string
}

// Percent is the score on a 0-100 scale rounded to one decimal.
func (m JobMatch) Percent() float64 {
	return math.Round(m.Score*1000) / 10
}

type JobMatches struct {
	Items     []JobMatch
	Total     int
	Truncated bool
}

type ProgramCoverage struct {
	Program program.Program
	Covered []string
	Score   int
}

type GapAnalysis struct {
	Job       job.Job
	Missing   []string
	Programs  []ProgramCoverage
	Total     int
	Truncated bool
}

type ProgramRecommendation struct {
	Program   program.Program
	Relevance int
	Matched   []string
}

type ProgramRecommendations struct {
	Items     []ProgramRecommendation
	Total     int
	Truncated bool
}

// MatchJobs scores every job in pool by the fraction of its required skills
// the candidate holds. Jobs without skills or without any overlap are left out.
func MatchJobs(candidate SkillSet, pool []job.Job) (JobMatches, error) {
	if candidate.Len() == 0 {
		return JobMatches{}, ErrNoSkills
	}

	scored := make([]JobMatch, 0, len(pool))
	for _, j := range pool {
		required := NewSkillSet(j.Skills...)
		if required.Len() == 0 {
			continue
		}

		matched := candidate.Intersect(required)
		if matched.Len() == 0 {
			continue
		}

		scored = append(scored, JobMatch{
			Job:      j,
			Score:    float64(matched.Len()) / float64(required.Len()),
			Matching: matched.Sorted(),
			Missing:  required.Difference(candidate).Sorted(),
		})
	}

	top, total, truncated := RankTop(scored, func(m JobMatch) float64 { return m.Score }, MaxJobMatches)
	return JobMatches{Items: top, Total: total, Truncated: truncated}, nil
}

// AnalyzeGap lists the target's skills the candidate lacks and ranks programs
// by how many of those they teach. An empty candidate is allowed: the whole
// requirement set is then the gap. Cost is O(missing x programs).
func AnalyzeGap(candidate SkillSet, target job.Job, programs []program.Program) GapAnalysis {
	missing := NewSkillSet(target.Skills...).Difference(candidate)

	out := GapAnalysis{
		Job:      target,
		Missing:  missing.Sorted(),
		Programs: []ProgramCoverage{},
	}
	if missing.Len() == 0 {
		return out
	}

	covering := make([]ProgramCoverage, 0, len(programs))
	for _, p := range programs {
		covered := missing.Intersect(NewSkillSet(p.Skills...))
		if covered.Len() == 0 {
			continue
		}
		covering = append(covering, ProgramCoverage{
			Program: p,
			Covered: covered.Sorted(),
			Score:   covered.Len(),
		})
	}

	out.Programs, out.Total, out.Truncated = RankTop(covering, func(c ProgramCoverage) float64 { return float64(c.Score) }, MaxGapPrograms)
	return out
}

// RecommendPrograms ranks programs by the raw number of target skills they
// teach.
func RecommendPrograms(target SkillSet, pool []program.Program) (ProgramRecommendations, error) {
	if target.Len() == 0 {
		return ProgramRecommendations{}, ErrNoSkills
	}

	scored := make([]ProgramRecommendation, 0, len(pool))
	for _, p := range pool {
		matched := target.Intersect(NewSkillSet(p.Skills...))
		if matched.Len() == 0 {
			continue
		}
		scored = append(scored, ProgramRecommendation{
			Program:   p,
			Relevance: matched.Len(),
			Matched:   matched.Sorted(),
		})
	}

	top, total, truncated := RankTop(scored, func(r ProgramRecommendation) float64 { return float64(r.Relevance) }, MaxProgramRecommendations)
	return ProgramRecommendations{Items: top, Total: total, Truncated: truncated}, nil
}
