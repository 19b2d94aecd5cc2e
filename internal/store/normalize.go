package store

import (
	"strconv"
	"strings"
	"time"
)

// Sheet column layout. The backend tables are positional; these constants are
// the schema contract with the Apps Script deployment.
const (
	colBaristaID     = 0
	colBaristaName   = 1
	colBaristaBranch = 2
	colBaristaPhoto  = 3
	colBaristaStatus = 5

	colReviewID       = 0
	colReviewDate     = 1
	colReviewCustomer = 2
	colReviewReviewer = 3
	colReviewBarista  = 4
	colReviewRating   = 6
	colReviewText     = 7
	colReviewImage    = 8
	colReviewStatus   = 9
)

const statusInactive = "inactive"

// cell reads a column defensively; short rows read as empty cells. The value
// is trimmed, so it is for comparisons, defaults and id/link normalization.
func cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// rawCell reads a column verbatim. Free-text cells (names, review text) keep
// whatever whitespace the sheet holds.
func rawCell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return row[col]
}

func isInactive(row []string, col int) bool {
	return strings.EqualFold(cell(row, col), statusInactive)
}

// ParseTables turns the two raw sheet tables into the barista model. Each
// table's first row is a header. Bad rows are skipped, never fatal: the
// caller decides what an empty result means.
func ParseTables(baristaRows, reviewRows [][]string) []Barista {
	reviews := parseReviews(skipHeader(reviewRows))

	byBarista := make(map[string][]Review, len(reviews))
	for _, r := range reviews {
		byBarista[r.BaristaID] = append(byBarista[r.BaristaID], r)
	}

	var baristas []Barista
	for _, row := range skipHeader(baristaRows) {
		if len(row) < 2 || cell(row, colBaristaName) == "" {
			continue
		}
		if isInactive(row, colBaristaStatus) {
			continue
		}

		id := FormatID("B", cell(row, colBaristaID))
		branch := FormatBranchName(cell(row, colBaristaBranch))
		if branch == "" {
			branch = "Main Branch"
		}

		baristaReviews := byBarista[id]
		baristas = append(baristas, Barista{
			ID:            id,
			Name:          rawCell(row, colBaristaName),
			Branch:        branch,
			Photo:         ProcessDriveLink(cell(row, colBaristaPhoto)),
			Reviews:       baristaReviews,
			AverageRating: AverageRating(baristaReviews),
		})
	}
	return baristas
}

func parseReviews(rows [][]string) []Review {
	var reviews []Review
	for _, row := range rows {
		if len(row) < 5 || isInactive(row, colReviewStatus) {
			continue
		}

		rating, err := strconv.ParseFloat(cell(row, colReviewRating), 64)
		if err != nil || rating == 0 {
			rating = 5
		}

		date := cell(row, colReviewDate)
		if i := strings.Index(date, "T"); i >= 0 {
			date = date[:i]
		}
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		reviewer := rawCell(row, colReviewReviewer)
		if reviewer == "" {
			reviewer = "Anonymous"
		}

		var imageURL string
		if img := cell(row, colReviewImage); img != "" {
			imageURL = ProcessDriveLink(img)
		}

		reviews = append(reviews, Review{
			ID:         FormatID("R", cell(row, colReviewID)),
			BaristaID:  FormatID("B", cell(row, colReviewBarista)),
			CustomerID: FormatID("C", cell(row, colReviewCustomer)),
			Rating:     rating,
			Text:       rawCell(row, colReviewText),
			Reviewer:   reviewer,
			Date:       date,
			ImageURL:   imageURL,
		})
	}
	return reviews
}

func skipHeader(rows [][]string) [][]string {
	if len(rows) == 0 {
		return nil
	}
	return rows[1:]
}

// AverageRating is the arithmetic mean of the ratings, 0 for an empty list.
// It is always recomputed from the full list so the cached value cannot drift.
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum float64
	for _, r := range reviews {
		sum += r.Rating
	}
	return sum / float64(len(reviews))
}
