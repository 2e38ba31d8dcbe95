package pagination

import (
	"fmt"
	"strings"
)

// Query is a runnable SQL statement with positional arguments.
type Query struct {
	SQL  string
	Args []any
}

// Builder composes a data-page query and its matching count query from a
// base SELECT and a base COUNT. It is a value type: every With* call
// returns a new Builder, and nothing touches the database until the caller
// executes the queries returned by Build. This keeps composition testable
// without a connection.
type Builder struct {
	selectSQL string
	countSQL  string

	conds     []Condition
	orderBy   string
	direction string
	limit     int
	offset    int
	paginated bool
}

// NewBuilder starts a composition from a base select and count statement.
// The bases carry FROM and JOIN clauses but no WHERE / ORDER BY / LIMIT.
func NewBuilder(selectSQL, countSQL string) Builder {
	return Builder{
		selectSQL: selectSQL,
		countSQL:  countSQL,
	}
}

func (b Builder) withCondition(c Condition) Builder {
	// Clone so shared backing arrays never leak between copies
	conds := make([]Condition, len(b.conds), len(b.conds)+1)
	copy(conds, b.conds)
	b.conds = append(conds, c)
	return b
}

// WithOrderBy appends a single-column sort. Direction is normalized to
// ASC unless the client explicitly asked for desc.
func (b Builder) WithOrderBy(direction, column string) Builder {
	b.orderBy = column
	if strings.EqualFold(direction, "desc") {
		b.direction = "DESC"
	} else {
		b.direction = "ASC"
	}
	return b
}

// WithPagination applies a 1-indexed page window.
// Callers clamp page to >= 1 (see ParseListParams); a negative offset is
// never produced here.
func (b Builder) WithPagination(page, pageSize int) Builder {
	b.offset = (page - 1) * pageSize
	b.limit = pageSize
	b.paginated = true
	return b
}

// WithTableIsNot excludes rows whose column equals value.
// Used to hide placeholder rows with an empty name.
func (b Builder) WithTableIsNot(column, value string) Builder {
	return b.withCondition(Condition{
		Expr: column + " <> ?",
		Args: []any{value},
	})
}

// WithAndFilter ANDs in a list of previously built conditions.
func (b Builder) WithAndFilter(conds []Condition) Builder {
	out := b
	for _, c := range conds {
		out = out.withCondition(c)
	}
	return out
}

// WithIlikeSearch applies a case-insensitive substring match on column.
// Empty search text is a no-op.
func (b Builder) WithIlikeSearch(searchText, column string) Builder {
	if searchText == "" {
		return b
	}
	return b.withCondition(Condition{
		Expr: column + " ILIKE ?",
		Args: []any{"%" + searchText + "%"},
	})
}

// WithFilterEventName restricts event-scoped listings to a named event.
func (b Builder) WithFilterEventName(eventName string) Builder {
	if eventName == "" {
		return b
	}
	return b.withCondition(Condition{
		Expr: "event.name = ?",
		Args: []any{eventName},
	})
}

// Build finalizes both statements. The count query shares the WHERE
// clause but not ordering or the page window, so the two stay consistent.
func (b Builder) Build() (selectQuery Query, countQuery Query) {
	where, whereArgs := b.whereClause()

	var sb strings.Builder
	sb.WriteString(b.selectSQL)
	sb.WriteString(where)
	if b.orderBy != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(b.orderBy)
		sb.WriteString(" ")
		sb.WriteString(b.direction)
	}

	selectArgs := append([]any{}, whereArgs...)
	if b.paginated {
		sb.WriteString(" LIMIT ? OFFSET ?")
		selectArgs = append(selectArgs, b.limit, b.offset)
	}

	selectQuery = Query{SQL: numberPlaceholders(sb.String()), Args: selectArgs}
	countQuery = Query{SQL: numberPlaceholders(b.countSQL + where), Args: whereArgs}
	return selectQuery, countQuery
}

func (b Builder) whereClause() (string, []any) {
	if len(b.conds) == 0 {
		return "", nil
	}

	exprs := make([]string, len(b.conds))
	var args []any
	for i, c := range b.conds {
		exprs[i] = c.Expr
		args = append(args, c.Args...)
	}

	return " WHERE " + strings.Join(exprs, " AND "), args
}

// numberPlaceholders rewrites "?" placeholders to PostgreSQL's $1..$n.
func numberPlaceholders(sql string) string {
	var sb strings.Builder
	n := 0
	for _, r := range sql {
		if r == '?' {
			n++
			sb.WriteString(fmt.Sprintf("$%d", n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
