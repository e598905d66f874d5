package postgres

import (
	"fmt"
	"strings"

	"gothamai/internal/domain"
)

// conditions accumulates WHERE clauses with numbered placeholders.
type conditions struct {
	clauses []string
	args    []any
}

// add appends a clause. Every %s in clause is replaced by the placeholder of arg.
func (c *conditions) add(clause string, arg any) {
	c.args = append(c.args, arg)
	c.clauses = append(c.clauses, strings.ReplaceAll(clause, "%s", fmt.Sprintf("$%d", len(c.args))))
}

// addRaw appends a clause that takes no argument.
func (c *conditions) addRaw(clause string) {
	c.clauses = append(c.clauses, clause)
}

// next returns the placeholder for an argument appended after the conditions.
func (c *conditions) next(arg any) string {
	c.args = append(c.args, arg)
	return fmt.Sprintf("$%d", len(c.args))
}

func (c *conditions) where() string {
	if len(c.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(c.clauses, " AND ")
}

// orderBy renders sort as an ORDER BY clause using only whitelisted columns.
func orderBy(sort []domain.SortField, columns map[string]string) string {
	var parts []string
	for _, s := range sort {
		col, ok := columns[s.Field]
		if !ok {
			continue
		}
		if s.Desc {
			parts = append(parts, col+" DESC NULLS LAST")
		} else {
			parts = append(parts, col+" ASC")
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return " ORDER BY " + strings.Join(parts, ", ")
}

// pageOrderBy is orderBy ending in id, so rows with equal sort keys keep a
// single order across pages.
func pageOrderBy(sort []domain.SortField, columns map[string]string) string {
	if clause := orderBy(sort, columns); clause != "" {
		return clause + ", id DESC"
	}
	return " ORDER BY id DESC"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern returns an ILIKE pattern matching s literally anywhere in a value.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
