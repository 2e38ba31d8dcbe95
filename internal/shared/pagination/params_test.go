package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func getter(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestParseListParams_Defaults(t *testing.T) {
	p := ParseListParams(getter(nil))

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageSize, p.PageSize)
	assert.Equal(t, DefaultColumn, p.SortColumn)
	assert.Equal(t, "asc", p.SortDirection)
	assert.Equal(t, DefaultColumn, p.SearchColumn)
}

func TestParseListParams_PageClamping(t *testing.T) {
	for _, raw := range []string{"0", "-3", "abc", ""} {
		p := ParseListParams(getter(map[string]string{"page": raw}))
		assert.Equalf(t, 1, p.Page, "page=%q", raw)
	}

	p := ParseListParams(getter(map[string]string{"page": "7"}))
	assert.Equal(t, 7, p.Page)
}

func TestParseListParams_SortToken(t *testing.T) {
	p := ParseListParams(getter(map[string]string{"sort": "Booth_name,desc"}))

	assert.Equal(t, "event_artist.booth_name", p.SortColumn)
	assert.Equal(t, "desc", p.SortDirection)

	// unknown token falls back, direction defaults to asc
	p = ParseListParams(getter(map[string]string{"sort": "unexpected"}))
	assert.Equal(t, DefaultColumn, p.SortColumn)
	assert.Equal(t, "asc", p.SortDirection)
}

func TestParseListParams_SearchTableSpellings(t *testing.T) {
	p := ParseListParams(getter(map[string]string{"searchtable": "Booth_name"}))
	assert.Equal(t, "event_artist.booth_name", p.SearchColumn)

	p = ParseListParams(getter(map[string]string{"searchTable": "Author_Main.Author"}))
	assert.Equal(t, "author_main.name", p.SearchColumn)
}

func TestParseListParams_PageSizeClamping(t *testing.T) {
	p := ParseListParams(getter(map[string]string{"pageSize": "500"}))
	assert.Equal(t, MaxPageSize, p.PageSize)

	p = ParseListParams(getter(map[string]string{"pageSize": "0"}))
	assert.Equal(t, DefaultPageSize, p.PageSize)
}

func TestParseListParams_Filters(t *testing.T) {
	p := ParseListParams(getter(map[string]string{
		"tag":       "原創,百合",
		"search":    "alice",
		"eventName": "FF44",
	}))

	assert.Equal(t, "原創,百合", p.TagCSV)
	assert.Equal(t, "alice", p.Search)
	assert.Equal(t, "FF44", p.EventName)
}
