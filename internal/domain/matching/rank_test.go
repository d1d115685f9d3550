package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type scoredItem struct {
	name  string
	score float64
}

func itemScore(s scoredItem) float64 { return s.score }

func TestRankTop_StableDescending(t *testing.T) {
	in := []scoredItem{{"a", 1}, {"b", 3}, {"c", 1}, {"d", 2}}
	top, total, truncated := RankTop(in, itemScore, 10)

	assert.Equal(t, 4, total)
	assert.False(t, truncated)
	names := make([]string, 0, len(top))
	for _, it := range top {
		names = append(names, it.name)
	}
	assert.Equal(t, []string{"b", "d", "a", "c"}, names)
	assert.Equal(t, "a", in[0].name, "input must not be reordered")
}

func TestRankTop_TruncatesAfterSorting(t *testing.T) {
	in := []scoredItem{{"low", 0.1}, {"mid", 0.5}, {"high", 0.9}}
	top, total, truncated := RankTop(in, itemScore, 2)

	assert.Equal(t, 3, total)
	assert.True(t, truncated)
	assert.Equal(t, []scoredItem{{"high", 0.9}, {"mid", 0.5}}, top)
}

func TestRankTop_ExactLimitIsNotTruncated(t *testing.T) {
	in := []scoredItem{{"a", 1}, {"b", 2}}
	_, _, truncated := RankTop(in, itemScore, 2)
	assert.False(t, truncated)
}
