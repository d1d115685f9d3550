package skill

import (
	"errors"

	"labor-intel/internal/domain/enum"
)

type Type string

const (
	TypeTechnical Type = "Technical"
	TypeSoft      Type = "Soft"
	TypeLanguage  Type = "Language"
)

var ErrInvalidType = errors.New("invalid skill type")

var types = enum.NewSet(TypeTechnical, TypeSoft, TypeLanguage)

func ParseType(raw string) (Type, error) {
	t, ok := types.Parse(raw)
	if !ok {
		return "", ErrInvalidType
	}
	return t, nil
}

type Skill struct {
	ID           int64
	Name         string
	Type         Type
	JobCount     int
	ProgramCount int
}
