package utils

import (
	"fmt"
	"strings"
)

// WhereBuilder accumulates AND-joined conditions with positional pgx arguments.
type WhereBuilder struct {
	clauses []string
	args    []interface{}
}

func NewWhereBuilder() *WhereBuilder {
	return &WhereBuilder{}
}

// Arg registers a value and returns its placeholder.
func (w *WhereBuilder) Arg(v interface{}) string {
	w.args = append(w.args, v)
	return fmt.Sprintf("$%d", len(w.args))
}

// Add appends a condition; "?" is replaced by the placeholder of v.
func (w *WhereBuilder) Add(clause string, v interface{}) *WhereBuilder {
	w.clauses = append(w.clauses, strings.Replace(clause, "?", w.Arg(v), 1))
	return w
}

// AddIf adds the condition only when ok is true.
func (w *WhereBuilder) AddIf(ok bool, clause string, v interface{}) *WhereBuilder {
	if ok {
		w.Add(clause, v)
	}
	return w
}

// Search adds a case-insensitive substring match over columns, OR-joined.
// Text array columns are matched through array_to_string.
func (w *WhereBuilder) Search(term string, columns ...string) *WhereBuilder {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return w
	}
	ph := w.Arg("%" + EscapeLike(term) + "%")
	parts := make([]string, len(columns))
	for i, col := range columns {
		parts[i] = fmt.Sprintf("%s ILIKE %s", col, ph)
	}
	w.clauses = append(w.clauses, "("+JoinWithOr(parts)+")")
	return w
}

// SQL returns " WHERE ..." or an empty string.
func (w *WhereBuilder) SQL() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + JoinWithAnd(w.clauses)
}

func (w *WhereBuilder) Args() []interface{} {
	return w.args
}

// LimitOffset registers the page window and returns " LIMIT $n OFFSET $m".
// Run the count query before calling it.
func (w *WhereBuilder) LimitOffset(limit, offset int) string {
	return fmt.Sprintf(" LIMIT %s OFFSET %s", w.Arg(limit), w.Arg(offset))
}

// EscapeLike escapes LIKE wildcards so user input matches literally.
func EscapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// JoinWithAnd joins a slice of strings with AND operator
func JoinWithAnd(clauses []string) string {
	return strings.Join(clauses, " AND ")
}

// JoinWithOr joins a slice of strings with OR operator
func JoinWithOr(clauses []string) string {
	return strings.Join(clauses, " OR ")
}
