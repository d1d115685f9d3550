package repository

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNotFound = errors.New("record not found")

type Page struct {
	Page    int
	PerPage int
}

func (p Page) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.PerPage
}

type LabelCount struct {
	Label string
	Count int
}

// conditions accumulates WHERE clauses and their positional arguments.
// Each %s in a clause format is replaced by the next $n placeholder.
type conditions struct {
	clauses []string
	args    []any
}

func (c *conditions) add(format string, args ...any) {
	placeholders := make([]any, len(args))
	for i, a := range args {
		placeholders[i] = c.arg(a)
	}
	c.clauses = append(c.clauses, fmt.Sprintf(format, placeholders...))
}

func (c *conditions) arg(v any) string {
	c.args = append(c.args, v)
	return fmt.Sprintf("$%d", len(c.args))
}

// anyContains adds one clause matching when any column contains any term.
func (c *conditions) anyContains(columns []string, terms []string) {
	if len(columns) == 0 || len(terms) == 0 {
		return
	}
	ors := make([]string, 0, len(columns)*len(terms))
	for _, t := range terms {
		ph := c.arg(containsPattern(t))
		for _, col := range columns {
			ors = append(ors, col+" ILIKE "+ph)
		}
	}
	c.clauses = append(c.clauses, "("+strings.Join(ors, " OR ")+")")
}

func (c *conditions) where() string {
	if len(c.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(c.clauses, " AND ")
}

// containsPattern builds an ILIKE pattern matching s anywhere, with LIKE
// metacharacters in s taken literally.
func containsPattern(s string) string {
	s = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
	return "%" + s + "%"
}
