package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AggregateGenres turns tag usages into a single genre string: tags with
// category "Genres", most-used first, title-cased and joined with "; ".
// Returns "" when nothing qualifies. The sort is stable so equal counts
// keep their upstream order.
func AggregateGenres(tags []APITagUsage) string {
	sorted := make([]APITagUsage, len(tags))
	copy(sorted, tags)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})

	titler := cases.Title(language.English)
	var genres []string
	for _, usage := range sorted {
		if usage.Tag.CategoryName == "Genres" {
			genres = append(genres, titler.String(usage.Tag.Name))
		}
	}
	return strings.Join(genres, "; ")
}
