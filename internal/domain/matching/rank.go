package matching

import (
	"cmp"
	"slices"
)

const (
	MaxJobMatches             = 50
	MaxGapPrograms            = 5
	MaxProgramRecommendations = 20
)

// RankTop sorts items by descending score and keeps at most limit of them.
// The sort is stable so equal scores keep their input order. It also reports
// how many items were ranked and whether any were cut off.
func RankTop[T any](items []T, score func(T) float64, limit int) (top []T, total int, truncated bool) {
	ranked := slices.Clone(items)
	slices.SortStableFunc(ranked, func(a, b T) int {
		return cmp.Compare(score(b), score(a))
	})

	total = len(ranked)
	if limit >= 0 && total > limit {
		return ranked[:limit], total, true
	}
	return ranked, total, false
}
