package pagination

import "strings"

// Condition is a single SQL predicate with its arguments.
// Placeholders are written as "?" and renumbered to $1..$n at Build time,
// so conditions can be composed without coordinating positions.
type Condition struct {
	Expr string
	Args []any
}

// TagConditions turns a comma-separated tag string into one membership
// condition per tag, combined with AND by the builder. Empty input yields
// no conditions (no filtering). Order of tags is preserved.
func TagConditions(csv string) []Condition {
	if csv == "" {
		return nil
	}

	parts := strings.Split(csv, ",")
	conds := make([]Condition, 0, len(parts))
	for _, tag := range parts {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		conds = append(conds, Condition{
			Expr: "EXISTS (SELECT 1 FROM author_tag WHERE author_tag.author_id = author_main.id AND author_tag.tag_name = ?)",
			Args: []any{tag},
		})
	}

	return conds
}
