package pagination

// DefaultColumn is where sorting and searching fall back to when the
// client sends a token we do not recognize.
const DefaultColumn = "author_main.name"

// columnTokens maps the user-facing sort/search tokens (kept verbatim from
// the public sites' query strings) to real storage columns. Matching is
// exact and case-sensitive - no trimming, no case folding.
var columnTokens = map[string]string{
	"Author_Main(Author)": "author_main.name",
	"Author_Main.Author":  "author_main.name",
	"Booth_name":          "event_artist.booth_name",
	"Location_Day01":      "event_artist.location_day01",
	"Location_Day02":      "event_artist.location_day02",
	"Location_Day03":      "event_artist.location_day03",
}

// ResolveColumn returns the storage column for a user-facing token.
// Unknown or empty tokens resolve to DefaultColumn; this never fails.
func ResolveColumn(token string) string {
	if col, ok := columnTokens[token]; ok {
		return col
	}
	return DefaultColumn
}
