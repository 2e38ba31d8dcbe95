package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveColumn_KnownTokens(t *testing.T) {
	cases := map[string]string{
		"Author_Main(Author)": "author_main.name",
		"Author_Main.Author":  "author_main.name",
		"Booth_name":          "event_artist.booth_name",
		"Location_Day01":      "event_artist.location_day01",
		"Location_Day02":      "event_artist.location_day02",
		"Location_Day03":      "event_artist.location_day03",
	}

	for token, want := range cases {
		assert.Equal(t, want, ResolveColumn(token), token)
	}
}

func TestResolveColumn_UnknownFallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultColumn, ResolveColumn("unexpected"))
	assert.Equal(t, DefaultColumn, ResolveColumn(""))

	// matching is case-sensitive: a near miss is still a miss
	assert.Equal(t, DefaultColumn, ResolveColumn("booth_name"))
	assert.Equal(t, DefaultColumn, ResolveColumn(" Booth_name"))
}

func TestResolveColumn_Deterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, "event_artist.booth_name", ResolveColumn("Booth_name"))
	}
}
