package matching

import (
	"slices"
	"strings"
)

// SkillSet is a normalized set of skill names. Two names are the same skill
// when they are equal after Normalize.
type SkillSet map[string]struct{}

// Normalize lowercases name and trims surrounding whitespace.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NewSkillSet lowercases every name and collapses duplicates. Blank names are
// dropped since they can never match a stored skill.
func NewSkillSet(names ...string) SkillSet {
	s := make(SkillSet, len(names))
	for _, n := range names {
		n = Normalize(n)
		if n == "" {
			continue
		}
		s[n] = struct{}{}
	}
	return s
}

func (s SkillSet) Len() int { return len(s) }

func (s SkillSet) Has(name string) bool {
	_, ok := s[Normalize(name)]
	return ok
}

func (s SkillSet) Intersect(other SkillSet) SkillSet {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(SkillSet)
	for k := range small {
		if _, ok := large[k]; ok {
			out[k] = struct{}{}
		}
	}
	return out
}

func (s SkillSet) Difference(other SkillSet) SkillSet {
	out := make(SkillSet)
	for k := range s {
		if _, ok := other[k]; !ok {
			out[k] = struct{}{}
		}
	}
	return out
}

func (s SkillSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
