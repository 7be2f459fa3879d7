package inventory

import (
	"sort"
	"strings"
)

// DefaultKeywords identify roofed-accommodation categories in the provider's
// category names. Observed vocabulary; override per run if the provider adds
// new roofed types.
var DefaultKeywords = []string{
	"cabin",
	"cottage",
	"shelter",
	"roof",
	"yurt",
	"otent",
	"rustic",
	"soft-sided",
}

// RoofedCategoryIDs returns the sorted distinct ids of categories whose name
// contains any of the keywords, case-insensitive. An empty keyword list
// matches nothing.
func RoofedCategoryIDs(categories []Category, keywords []string) []int {
	keys := make([]string, 0, len(keywords))
	for _, k := range keywords {
		keys = append(keys, strings.ToLower(k))
	}

	seen := make(map[int]struct{})
	for _, c := range categories {
		name := strings.ToLower(c.Name)
		for _, k := range keys {
			if strings.Contains(name, k) {
				seen[c.ID] = struct{}{}
				break
			}
		}
	}

	out := make([]int, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
