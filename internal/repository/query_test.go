package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConditions(t *testing.T) {
	var c conditions
	assert.Equal(t, "", c.where())

	c.add("j.is_active = true")
	c.add("j.location ILIKE %s", "%jakarta%")
	c.add("(j.title ILIKE %s OR j.description ILIKE %s)", "%go%", "%go%")

	assert.Equal(t, " WHERE j.is_active = true AND j.location ILIKE $1 AND (j.title ILIKE $2 OR j.description ILIKE $3)", c.where())
	assert.Equal(t, []any{"%jakarta%", "%go%", "%go%"}, c.args)
	assert.Equal(t, "$4", c.arg(20))
}

func TestConditions_AnyContains(t *testing.T) {
	var c conditions
	c.add("j.is_active = true")
	c.anyContains([]string{"j.title", "j.description"}, []string{"ml", "machine learning"})
	c.anyContains([]string{"j.title"}, nil)

	assert.Equal(t, " WHERE j.is_active = true AND (j.title ILIKE $1 OR j.description ILIKE $1 OR j.title ILIKE $2 OR j.description ILIKE $2)", c.where())
	assert.Equal(t, []any{"%ml%", "%machine learning%"}, c.args)
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%data%", containsPattern("data"))
	assert.Equal(t, `%100\%\_off%`, containsPattern("100%_off"))
	assert.Equal(t, `%a\\b%`, containsPattern(`a\b`))
}

func TestPage_Offset(t *testing.T) {
	assert.Equal(t, 0, Page{Page: 0, PerPage: 20}.Offset())
	assert.Equal(t, 0, Page{Page: 1, PerPage: 20}.Offset())
	assert.Equal(t, 40, Page{Page: 3, PerPage: 20}.Offset())
}
