package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeQuery(t *testing.T) {
	cases := map[string]string{
		"":                       "",
		"   ":                    "",
		"  Senior   GO/Backend ": "senior go backend",
		"C++ & C# (Node.js)":     "c++ c# node.js",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeQuery(in), in)
	}
}

func TestExpand(t *testing.T) {
	assert.Nil(t, Expand("  "))

	assert.Equal(t, []string{"golang"}, Expand("Golang"))
	assert.Equal(t, []string{"ml", "machine learning"}, Expand("ML"))

	got := Expand("ML engineer")
	assert.Equal(t, "ml engineer", got[0])
	assert.Contains(t, got, "machine learning engineer")

	got = Expand("data scientist jakarta")
	assert.Contains(t, got, "data analyst jakarta")
	assert.Contains(t, got, "machine learning engineer jakarta")
}

func TestExpand_Capped(t *testing.T) {
	got := Expand("designer")
	assert.LessOrEqual(t, len(got), MaxVariants)
	assert.Equal(t, []string{"designer", "ui designer", "ux designer", "graphic designer"}, got)
}

func TestSynonyms_ReturnsCopy(t *testing.T) {
	s := Synonyms("ml")
	s[0] = "changed"
	assert.Equal(t, []string{"machine learning"}, Synonyms("ml"))
}
