package store

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortOption string

const (
	SortBestAverageRating SortOption = "bestAverageRating"
	SortMostReviews       SortOption = "mostReviews"
	SortBranchAZ          SortOption = "branchAZ"
	SortNameAZ            SortOption = "nameAZ"
)

// ParseSortOption maps a query value to a sort mode, defaulting to the
// Bayesian-adjusted rating order.
func ParseSortOption(s string) SortOption {
	switch SortOption(s) {
	case SortNameAZ, SortMostReviews, SortBranchAZ, SortBestAverageRating:
		return SortOption(s)
	default:
		return SortBestAverageRating
	}
}

// GlobalAverage is the mean rating across every review of every barista,
// 0 when no reviews exist. It is the prior the default sort shrinks toward.
func GlobalAverage(baristas []Barista) float64 {
	var sum float64
	var count int
	for _, b := range baristas {
		for _, r := range b.Reviews {
			sum += r.Rating
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// bayesianScore blends a barista's own average toward the global mean with a
// fixed pseudo-count weight of one review. A single 5-star review barely
// lifts a profile above the crowd; many reviews converge to the raw average.
func bayesianScore(b Barista, global float64) float64 {
	v := float64(len(b.Reviews))
	return (v*b.AverageRating + global) / (v + 1)
}

// SortBaristas orders the slice in place under the given mode. Name and
// branch compares are collation-aware so Georgian labels sort correctly.
func SortBaristas(baristas []Barista, opt SortOption, global float64) {
	switch opt {
	case SortNameAZ:
		c := collate.New(language.Georgian, collate.IgnoreCase)
		sort.SliceStable(baristas, func(i, j int) bool {
			return c.CompareString(baristas[i].Name, baristas[j].Name) < 0
		})
	case SortMostReviews:
		sort.SliceStable(baristas, func(i, j int) bool {
			return len(baristas[i].Reviews) > len(baristas[j].Reviews)
		})
	case SortBranchAZ:
		c := collate.New(language.Georgian, collate.IgnoreCase)
		sort.SliceStable(baristas, func(i, j int) bool {
			return c.CompareString(baristas[i].Branch, baristas[j].Branch) < 0
		})
	default: // SortBestAverageRating
		sort.SliceStable(baristas, func(i, j int) bool {
			vi, vj := len(baristas[i].Reviews), len(baristas[j].Reviews)
			// unrated baristas sort strictly last
			if vi == 0 || vj == 0 {
				return vi > 0 && vj == 0
			}
			return bayesianScore(baristas[i], global) > bayesianScore(baristas[j], global)
		})
	}
}
