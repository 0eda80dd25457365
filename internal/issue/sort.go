package issue

import (
	"cmp"
	"slices"
	"time"
)

// Sort orders items by score, most urgent first. now is read once for the
// whole sort so every comparison agrees on each item's age.
func Sort(items []WorkItem, now time.Time) {
	slices.SortFunc(items, func(a, b WorkItem) int {
		return cmp.Compare(b.Score(now), a.Score(now))
	})
}

// Merge concatenates result sets, keeps the first occurrence of each ID and
// re-sorts the union as a whole.
func Merge(now time.Time, sets ...[]WorkItem) []WorkItem {
	seen := make(map[string]bool)
	var merged []WorkItem
	for _, set := range sets {
		for _, item := range set {
			if seen[item.id] {
				continue
			}
			seen[item.id] = true
			merged = append(merged, item)
		}
	}

	Sort(merged, now)
	return merged
}
