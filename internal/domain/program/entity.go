package program

import (
	"errors"

	"labor-intel/internal/domain/enum"
)

type DegreeLevel string

const (
	DegreeNone       DegreeLevel = "None"
	DegreeHighSchool DegreeLevel = "High School"
	DegreeDiploma    DegreeLevel = "Diploma"
	DegreeBachelor   DegreeLevel = "Bachelor"
	DegreeMaster     DegreeLevel = "Master"
	DegreePhD        DegreeLevel = "PhD"
)

var ErrInvalidDegreeLevel = errors.New("invalid degree level")

var degreeLevels = enum.NewSet(DegreeNone, DegreeHighSchool, DegreeDiploma, DegreeBachelor, DegreeMaster, DegreePhD)

func ParseDegreeLevel(raw string) (DegreeLevel, error) {
	v, ok := degreeLevels.Parse(raw)
	if !ok {
		return "", ErrInvalidDegreeLevel
	}
	return v, nil
}

type Program struct {
	ID                 string
	UniversityID       int64
	University         string
	UniversityType     string
	Location           string
	Name               string
	Category           string
	DegreeLevel        DegreeLevel
	DurationYears      *int
	TuitionUSD         *float64
	EnrollmentCapacity *int
	Accredited         bool
	Languages          string
	InDemand           bool

	Skills []string
}
