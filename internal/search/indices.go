// Package search queries the product search index with filter expressions built by
// the browse package.
package search

import (
	"fmt"
	"sort"

	"resale/internal/domain"
)

// HitsPerPage matches the page size of the browse grid.
const HitsPerPage = 20

const DefaultSort = "search"

// sortSuffixes maps a browse sort to its replica index suffix; the relevance sort uses
// the primary index.
var sortSuffixes = map[string]string{
	"search":            "",
	"mostPopular":       "most_popular",
	"mostPopularSG":     "most_popular-sg",
	"mostPopularMY":     "most_popular-my",
	"mostPopularID":     "most_popular-id",
	"mostPopularAU":     "most_popular-au",
	"mostPopularNZ":     "most_popular-nz",
	"mostPopularTW":     "most_popular-tw",
	"mostPopularJP":     "most_popular-jp",
	"latestRelease":     "latest_release",
	"priceLowToHigh":    "price_low_to_high",
	"priceHighToLow":    "price_high_to_low",
	"upcomingReleaseUS": "upcoming_release-us",
	"upcomingReleaseSG": "upcoming_release-sg",
	"upcomingReleaseTW": "upcoming_release-tw",
	"upcomingReleaseJP": "upcoming_release-jp",
	"upcomingReleaseID": "upcoming_release-id",
	"upcomingReleaseMY": "upcoming_release-my",
}

// IndexName resolves the index to query for a sort. An empty sort means relevance.
func IndexName(base, sortName string) (string, error) {
	if sortName == "" {
		sortName = DefaultSort
	}
	suffix, ok := sortSuffixes[sortName]
	if !ok {
		return "", domain.ValidationError{Field: "sort", Msg: fmt.Sprintf("unknown sort %q", sortName)}
	}
	if suffix == "" {
		return base, nil
	}
	return base + "-" + suffix, nil
}

// Sorts lists the accepted sort names.
func Sorts() []string {
	out := make([]string, 0, len(sortSuffixes))
	for k := range sortSuffixes {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
