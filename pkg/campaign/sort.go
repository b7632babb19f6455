package campaign

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortByRelease orders campaigns by release date, oldest first. Campaigns
// released on the same day are ordered by name.
func SortByRelease(campaigns []*Campaign) {
	col := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(campaigns, func(i, j int) bool {
		a, b := campaigns[i], campaigns[j]
		if a.ReleaseDate != b.ReleaseDate {
			return a.ReleaseDate < b.ReleaseDate
		}
		return col.CompareString(a.Name, b.Name) < 0
	})
}
