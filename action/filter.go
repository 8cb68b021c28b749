package action

import (
	"github.com/wirvsvirus/measures-dashboard/consts"
	"github.com/wirvsvirus/measures-dashboard/schema"
)

// Filter returns the actions located in region that carry at least one of
// the requested categories. An empty category list matches nothing. The
// result is a new slice; its order is not significant.
func Filter(actions []schema.ActionRecord, region string, categories []string) []schema.ActionRecord {
	result := []schema.ActionRecord{}
	if len(categories) == 0 {
		return result
	}

	for _, a := range actions {
		if a.Location != region {
			continue
		}
		for _, c := range categories {
			if a.HasCategory(c) {
				result = append(result, a)
				break
			}
		}
	}
	return result
}

// ExpandCategories resolves the "all" selector into the full list of known
// categories. Other selections are returned unchanged.
func ExpandCategories(requested, known []string) []string {
	for _, c := range requested {
		if c == consts.AllCategories {
			expanded := make([]string, len(known))
			copy(expanded, known)
			return expanded
		}
	}
	return requested
}
