package job

import (
	"errors"
	"time"

	"labor-intel/internal/domain/enum"
)

type ExperienceLevel string

const (
	ExperienceEntry     ExperienceLevel = "Entry Level"
	ExperienceMid       ExperienceLevel = "Mid Level"
	ExperienceSenior    ExperienceLevel = "Senior"
	ExperienceExecutive ExperienceLevel = "Executive"
)

type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "Full-time"
	EmploymentPartTime   EmploymentType = "Part-time"
	EmploymentContract   EmploymentType = "Contract"
	EmploymentInternship EmploymentType = "Internship"
)

var (
	ErrInvalidExperienceLevel = errors.New("invalid experience level")
	ErrInvalidEmploymentType  = errors.New("invalid employment type")
)

var (
	experienceLevels = enum.NewSet(ExperienceEntry, ExperienceMid, ExperienceSenior, ExperienceExecutive)
	employmentTypes  = enum.NewSet(EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentInternship)
)

func ParseExperienceLevel(raw string) (ExperienceLevel, error) {
	v, ok := experienceLevels.Parse(raw)
	if !ok {
		return "", ErrInvalidExperienceLevel
	}
	return v, nil
}

func ParseEmploymentType(raw string) (EmploymentType, error) {
	v, ok := employmentTypes.Parse(raw)
	if !ok {
		return "", ErrInvalidEmploymentType
	}
	return v, nil
}

func ExperienceLevels() []ExperienceLevel { return experienceLevels.Values() }

func EmploymentTypes() []EmploymentType { return employmentTypes.Values() }

type Job struct {
	ID                string
	Title             string
	CompanyID         int64
	Company           string
	Industry          string
	Location          string
	EmploymentType    EmploymentType
	ExperienceLevel   ExperienceLevel
	SalaryMin         *float64
	SalaryMax         *float64
	DegreeRequired    string
	LanguagesRequired string
	Description       string
	PostedDate        *time.Time
	IsActive          bool

	// Skills holds the stored skill names as written; callers normalize them.
	Skills []string
}
