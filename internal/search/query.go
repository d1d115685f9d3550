// Package search normalizes free-text queries and expands them with
// occupation and skill synonyms.
package search

import (
	"strings"
	"unicode"
)

const MaxVariants = 8

// NormalizeQuery lowercases input, keeps letters, digits and the symbols
// used in skill names (c++, c#, node.js), and collapses whitespace.
func NormalizeQuery(input string) string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return ""
	}

	b := strings.Builder{}
	b.Grow(len(input))
	for _, r := range input {
		switch {
		case unicode.IsLetter(r), unicode.IsNumber(r), strings.ContainsRune("+#.", r):
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Expand returns the normalized query followed by its synonym variants,
// at most MaxVariants entries. An empty query yields nil.
func Expand(input string) []string {
	normalized := NormalizeQuery(input)
	if normalized == "" {
		return nil
	}

	out := make([]string, 0, MaxVariants)
	seen := make(map[string]struct{}, MaxVariants)
	add := func(s string) {
		if s == "" || len(out) >= MaxVariants {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	add(normalized)
	for _, syn := range Synonyms(normalized) {
		add(syn)
	}

	// Replace a leading one- or two-word phrase that has synonyms, keeping the
	// rest: "ml engineer" -> "machine learning engineer".
	words := strings.Fields(normalized)
	for n := 1; n <= 2 && n < len(words); n++ {
		rest := strings.Join(words[n:], " ")
		for _, syn := range Synonyms(strings.Join(words[:n], " ")) {
			add(syn + " " + rest)
		}
	}
	return out
}
