package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSelect = "SELECT author_main.id, author_main.name FROM author_main"
	testCount  = "SELECT COUNT(*) FROM author_main"
)

func TestBuilder_PlainBuild(t *testing.T) {
	sel, cnt := NewBuilder(testSelect, testCount).Build()

	assert.Equal(t, testSelect, sel.SQL)
	assert.Empty(t, sel.Args)
	assert.Equal(t, testCount, cnt.SQL)
	assert.Empty(t, cnt.Args)
}

func TestBuilder_OrderAndPagination(t *testing.T) {
	sel, cnt := NewBuilder(testSelect, testCount).
		WithOrderBy("desc", "author_main.name").
		WithPagination(3, 20).
		Build()

	assert.Equal(t, testSelect+" ORDER BY author_main.name DESC LIMIT $1 OFFSET $2", sel.SQL)
	assert.Equal(t, []any{20, 40}, sel.Args)

	// count ignores ordering and the page window
	assert.Equal(t, testCount, cnt.SQL)
	assert.Empty(t, cnt.Args)
}

func TestBuilder_OrderDirectionDefaultsToAsc(t *testing.T) {
	sel, _ := NewBuilder(testSelect, testCount).
		WithOrderBy("sideways", "author_main.name").
		Build()

	assert.Contains(t, sel.SQL, "ORDER BY author_main.name ASC")
}

func TestBuilder_ConditionsSharedWithCount(t *testing.T) {
	sel, cnt := NewBuilder(testSelect, testCount).
		WithTableIsNot("author_main.name", "").
		WithIlikeSearch("alice", "author_main.name").
		WithPagination(1, 30).
		Build()

	assert.Equal(t,
		testSelect+" WHERE author_main.name <> $1 AND author_main.name ILIKE $2 LIMIT $3 OFFSET $4",
		sel.SQL)
	assert.Equal(t, []any{"", "%alice%", 30, 0}, sel.Args)

	assert.Equal(t,
		testCount+" WHERE author_main.name <> $1 AND author_main.name ILIKE $2",
		cnt.SQL)
	assert.Equal(t, []any{"", "%alice%"}, cnt.Args)
}

func TestBuilder_TagFilterAndEventName(t *testing.T) {
	sel, cnt := NewBuilder(testSelect, testCount).
		WithAndFilter(TagConditions("a,b")).
		WithFilterEventName("FF44").
		Build()

	require.Equal(t, []any{"a", "b", "FF44"}, sel.Args)
	assert.Contains(t, sel.SQL, "author_tag.tag_name = $1")
	assert.Contains(t, sel.SQL, "author_tag.tag_name = $2")
	assert.Contains(t, sel.SQL, "event.name = $3")
	assert.Equal(t, sel.Args, cnt.Args)
}

func TestBuilder_EmptySearchIsNoOp(t *testing.T) {
	sel, _ := NewBuilder(testSelect, testCount).
		WithIlikeSearch("", "author_main.name").
		Build()

	assert.Equal(t, testSelect, sel.SQL)
}

func TestBuilder_CopyOnWrite(t *testing.T) {
	base := NewBuilder(testSelect, testCount).WithTableIsNot("author_main.name", "")

	// two divergent compositions from the same base must not interfere
	a, _ := base.WithIlikeSearch("alice", "author_main.name").Build()
	b, _ := base.WithIlikeSearch("bob", "event_artist.booth_name").Build()

	assert.Equal(t, []any{"", "%alice%"}, a.Args)
	assert.Equal(t, []any{"", "%bob%"}, b.Args)
	assert.Contains(t, b.SQL, "event_artist.booth_name ILIKE $2")

	// base itself stays untouched
	plain, _ := base.Build()
	assert.Equal(t, []any{""}, plain.Args)
}

func TestBuilder_PaginationOffsets(t *testing.T) {
	cases := []struct {
		page, pageSize int
		wantOffset     int
	}{
		{1, 30, 0},
		{2, 30, 30},
		{5, 10, 40},
	}

	for _, tc := range cases {
		sel, _ := NewBuilder(testSelect, testCount).WithPagination(tc.page, tc.pageSize).Build()
		require.Len(t, sel.Args, 2)
		assert.Equal(t, tc.pageSize, sel.Args[0])
		assert.Equal(t, tc.wantOffset, sel.Args[1])
	}
}
