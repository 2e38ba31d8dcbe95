package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEnvelope_MiddlePage(t *testing.T) {
	items := []string{"item1", "item2"}

	env := NewEnvelope(items, 2, 10, 25)

	assert.Equal(t, int64(25), env.TotalCount)
	assert.Equal(t, 3, env.TotalPage)
	assert.True(t, env.NextPageAvailable)
	assert.True(t, env.PreviousPageAvailable)
	assert.Equal(t, 10, env.PageSize)
	assert.Equal(t, items, env.Data)
}

func TestNewEnvelope_EmptyResult(t *testing.T) {
	env := NewEnvelope([]string{}, 1, 10, 0)

	assert.Equal(t, 0, env.TotalPage)
	assert.False(t, env.NextPageAvailable)
	assert.False(t, env.PreviousPageAvailable)
}

func TestNewEnvelope_TotalPageIsCeiling(t *testing.T) {
	cases := []struct {
		total    int64
		pageSize int
		want     int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{30, 10, 3},
		{1, 1, 1},
		{7, 3, 3},
	}

	for _, tc := range cases {
		env := NewEnvelope(nil, 1, tc.pageSize, tc.total)
		assert.Equalf(t, tc.want, env.TotalPage, "total=%d pageSize=%d", tc.total, tc.pageSize)
	}
}

func TestNewEnvelope_AvailabilityFlags(t *testing.T) {
	// totalCount 50, pageSize 10 -> 5 pages
	first := NewEnvelope(nil, 1, 10, 50)
	assert.True(t, first.NextPageAvailable)
	assert.False(t, first.PreviousPageAvailable)

	last := NewEnvelope(nil, 5, 10, 50)
	assert.False(t, last.NextPageAvailable)
	assert.True(t, last.PreviousPageAvailable)

	// page beyond the end: no next, still has previous
	beyond := NewEnvelope(nil, 9, 10, 50)
	assert.False(t, beyond.NextPageAvailable)
	assert.True(t, beyond.PreviousPageAvailable)
}

func TestNewEnvelope_DataPassThrough(t *testing.T) {
	// scalar and object payloads pass through untouched
	scalar := NewEnvelope(42, 1, 10, 1)
	assert.Equal(t, 42, scalar.Data)

	obj := map[string]string{"name": "FF44"}
	wrapped := NewEnvelope(obj, 1, 10, 1)
	assert.Equal(t, obj, wrapped.Data)
}
