package program

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDegreeLevel(t *testing.T) {
	cases := map[string]DegreeLevel{
		"High School": DegreeHighSchool,
		"high_school": DegreeHighSchool,
		"PHD":         DegreePhD,
		"phd":         DegreePhD,
		"Master":      DegreeMaster,
		"none":        DegreeNone,
	}
	for raw, want := range cases {
		got, err := ParseDegreeLevel(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseDegreeLevel("Doctorate")
	assert.ErrorIs(t, err, ErrInvalidDegreeLevel)
}
