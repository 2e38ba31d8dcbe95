package pagination

import (
	"strconv"
	"strings"
)

const (
	DefaultPageSize = 30
	MaxPageSize     = 100
)

// ListParams are the query-string knobs shared by the list endpoints.
type ListParams struct {
	Page          int
	PageSize      int
	SortColumn    string // resolved storage column
	SortDirection string // "asc" or "desc"
	Search        string
	SearchColumn  string // resolved storage column
	TagCSV        string
	EventName     string
}

// ParseListParams reads the listing parameters through a query getter
// (gin's c.Query fits the signature). Page is clamped to 1 so a page of
// 0 or below can never turn into a negative offset downstream.
func ParseListParams(get func(string) string) ListParams {
	p := ListParams{
		Page:          1,
		PageSize:      DefaultPageSize,
		SortColumn:    DefaultColumn,
		SortDirection: "asc",
		SearchColumn:  DefaultColumn,
	}

	if pageStr := get("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil && page > 1 {
			p.Page = page
		}
	}

	if sizeStr := get("pageSize"); sizeStr != "" {
		if size, err := strconv.Atoi(sizeStr); err == nil && size > 0 {
			if size > MaxPageSize {
				size = MaxPageSize
			}
			p.PageSize = size
		}
	}

	// sort arrives as "column,direction"
	if sort := get("sort"); sort != "" {
		parts := strings.SplitN(sort, ",", 2)
		p.SortColumn = ResolveColumn(parts[0])
		if len(parts) == 2 && strings.EqualFold(parts[1], "desc") {
			p.SortDirection = "desc"
		}
	}

	p.Search = get("search")

	// both spellings appear in the wild
	searchTable := get("searchtable")
	if searchTable == "" {
		searchTable = get("searchTable")
	}
	p.SearchColumn = ResolveColumn(searchTable)

	p.TagCSV = get("tag")
	p.EventName = get("eventName")

	return p
}
