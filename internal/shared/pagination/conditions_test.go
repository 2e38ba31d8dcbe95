package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagConditions_Empty(t *testing.T) {
	assert.Empty(t, TagConditions(""))
}

func TestTagConditions_TwoTagsOrderPreserving(t *testing.T) {
	conds := TagConditions("a,b")

	require.Len(t, conds, 2)
	assert.Equal(t, []any{"a"}, conds[0].Args)
	assert.Equal(t, []any{"b"}, conds[1].Args)
	assert.Contains(t, conds[0].Expr, "author_tag.tag_name = ?")
}

func TestTagConditions_SkipsBlankEntries(t *testing.T) {
	conds := TagConditions("原創, ,百合")

	require.Len(t, conds, 2)
	assert.Equal(t, []any{"原創"}, conds[0].Args)
	assert.Equal(t, []any{"百合"}, conds[1].Args)
}
