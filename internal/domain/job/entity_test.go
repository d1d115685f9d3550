package job

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExperienceLevel(t *testing.T) {
	for _, raw := range []string{"Entry Level", "entry level", "ENTRY_LEVEL", "entry-level"} {
		got, err := ParseExperienceLevel(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, ExperienceEntry, got)
	}

	got, err := ParseExperienceLevel("senior")
	require.NoError(t, err)
	assert.Equal(t, ExperienceSenior, got)

	_, err = ParseExperienceLevel("Guru")
	assert.ErrorIs(t, err, ErrInvalidExperienceLevel)
}

func TestParseEmploymentType(t *testing.T) {
	got, err := ParseEmploymentType("full_time")
	require.NoError(t, err)
	assert.Equal(t, EmploymentFullTime, got)

	got, err = ParseEmploymentType("Internship")
	require.NoError(t, err)
	assert.Equal(t, EmploymentInternship, got)

	_, err = ParseEmploymentType("Freelance")
	assert.ErrorIs(t, err, ErrInvalidEmploymentType)
}

func TestEnumerations(t *testing.T) {
	assert.Len(t, ExperienceLevels(), 4)
	assert.Equal(t, []EmploymentType{EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentInternship}, EmploymentTypes())
}
