package university

import (
	"errors"

	"labor-intel/internal/domain/enum"
	"labor-intel/internal/domain/program"
)

type Type string

const (
	TypePublic  Type = "Public"
	TypePrivate Type = "Private"
)

var ErrInvalidType = errors.New("invalid university type")

var types = enum.NewSet(TypePublic, TypePrivate)

func ParseType(raw string) (Type, error) {
	v, ok := types.Parse(raw)
	if !ok {
		return "", ErrInvalidType
	}
	return v, nil
}

type University struct {
	ID              int64
	Name            string
	Type            Type
	Location        string
	EstablishedYear *int
	ProgramCount    int

	// Programs is only populated on detail lookups.
	Programs []program.Program
}
