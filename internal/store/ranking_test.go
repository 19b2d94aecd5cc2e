package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ratedBarista(id string, ratings ...float64) Barista {
	reviews := make([]Review, len(ratings))
	for i, r := range ratings {
		reviews[i] = Review{Rating: r}
	}
	return Barista{ID: id, Reviews: reviews, AverageRating: AverageRating(reviews)}
}

func TestParseSortOption(t *testing.T) {
	assert.Equal(t, SortNameAZ, ParseSortOption("nameAZ"))
	assert.Equal(t, SortBestAverageRating, ParseSortOption(""))
	assert.Equal(t, SortBestAverageRating, ParseSortOption("bogus"))
}

func TestGlobalAverage(t *testing.T) {
	assert.Zero(t, GlobalAverage(nil))

	baristas := []Barista{
		ratedBarista("B0000001", 5, 3),
		ratedBarista("B0000002", 4),
		ratedBarista("B0000003"),
	}
	assert.InDelta(t, 4.0, GlobalAverage(baristas), 1e-9)
}

func TestSortBaristas_UnratedLast(t *testing.T) {
	baristas := []Barista{
		ratedBarista("B0000001"),
		ratedBarista("B0000002", 5),
		ratedBarista("B0000003"),
		ratedBarista("B0000004", 1),
	}
	SortBaristas(baristas, SortBestAverageRating, GlobalAverage(baristas))

	require.Len(t, baristas, 4)
	assert.NotEmpty(t, baristas[0].Reviews)
	assert.NotEmpty(t, baristas[1].Reviews)
	assert.Empty(t, baristas[2].Reviews)
	assert.Empty(t, baristas[3].Reviews)
}

func TestSortBaristas_BayesianDampensSmallSamples(t *testing.T) {
	// a single 5-star review gets pulled toward the (low) global mean, so a
	// veteran with a slightly lower raw average still outranks the newcomer
	newcomer := ratedBarista("B0000001", 5)

	veteranRatings := make([]float64, 20)
	for i := range veteranRatings {
		veteranRatings[i] = 4.8
	}
	veteran := ratedBarista("B0000002", veteranRatings...)

	crowdRatings := make([]float64, 30)
	for i := range crowdRatings {
		crowdRatings[i] = 2
	}
	crowd := ratedBarista("B0000003", crowdRatings...)

	baristas := []Barista{newcomer, veteran, crowd}
	SortBaristas(baristas, SortBestAverageRating, GlobalAverage(baristas))

	assert.Equal(t, "B0000002", baristas[0].ID)
	assert.Equal(t, "B0000001", baristas[1].ID)
	assert.Equal(t, "B0000003", baristas[2].ID)
}

func TestBayesianScore_MonotoneInReviewCount(t *testing.T) {
	// holding R fixed above C, more reviews pull the score toward R
	const global = 3.0
	prev := bayesianScore(ratedBarista("b", 5), global)
	for v := 2; v <= 50; v++ {
		ratings := make([]float64, v)
		for i := range ratings {
			ratings[i] = 5
		}
		score := bayesianScore(ratedBarista("b", ratings...), global)
		assert.Greater(t, score, prev)
		assert.Less(t, score, 5.0)
		prev = score
	}
}

func TestSortBaristas_MostReviews(t *testing.T) {
	baristas := []Barista{
		ratedBarista("B0000001", 5),
		ratedBarista("B0000002", 1, 1, 1),
		ratedBarista("B0000003", 3, 3),
	}
	SortBaristas(baristas, SortMostReviews, 0)

	assert.Equal(t, "B0000002", baristas[0].ID)
	assert.Equal(t, "B0000003", baristas[1].ID)
	assert.Equal(t, "B0000001", baristas[2].ID)
}

func TestSortBaristas_NameAZ(t *testing.T) {
	baristas := []Barista{
		{ID: "1", Name: "nino"},
		{ID: "2", Name: "Ana"},
		{ID: "3", Name: "giorgi"},
	}
	SortBaristas(baristas, SortNameAZ, 0)

	assert.Equal(t, "Ana", baristas[0].Name)
	assert.Equal(t, "giorgi", baristas[1].Name)
	assert.Equal(t, "nino", baristas[2].Name)
}

func TestSortBaristas_BranchAZ(t *testing.T) {
	baristas := []Barista{
		{ID: "1", Branch: "Vake Branch"},
		{ID: "2", Branch: "Batumi Plaza"},
	}
	SortBaristas(baristas, SortBranchAZ, 0)
	assert.Equal(t, "Batumi Plaza", baristas[0].Branch)
}
