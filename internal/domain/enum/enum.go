// Package enum parses the closed vocabularies used by the domain types.
//
// A raw value is matched against the canonical display value or the constant
// name, ignoring case. Spaces, hyphens and underscores are interchangeable, so
// "Entry Level", "entry_level" and "ENTRY-LEVEL" all resolve to the same value.
package enum

import "strings"

type Set[T ~string] struct {
	values []T
	byKey  map[string]T
}

func NewSet[T ~string](values ...T) Set[T] {
	s := Set[T]{values: values, byKey: make(map[string]T, len(values))}
	for _, v := range values {
		s.byKey[Key(string(v))] = v
	}
	return s
}

func (s Set[T]) Parse(raw string) (T, bool) {
	v, ok := s.byKey[Key(raw)]
	return v, ok
}

func (s Set[T]) Values() []T {
	out := make([]T, len(s.values))
	copy(out, s.values)
	return out
}

func Key(raw string) string {
	k := strings.ToUpper(strings.TrimSpace(raw))
	k = strings.NewReplacer(" ", "_", "-", "_").Replace(k)
	return k
}
