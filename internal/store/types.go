package store

// Review is a single rating left for a barista. Reviews come either from the
// sheet backend or from an optimistic local insert after a submission.
type Review struct {
	ID         string  `json:"id"`
	BaristaID  string  `json:"barista_id,omitempty"`
	CustomerID string  `json:"customer_id,omitempty"`
	Rating     float64 `json:"rating"` // 1-5
	Text       string  `json:"text,omitempty"`
	Reviewer   string  `json:"reviewer"`
	Date       string  `json:"date"` // YYYY-MM-DD
	ImageURL   string  `json:"image_url,omitempty"`
}

type Barista struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Photo         string   `json:"photo"`
	Branch        string   `json:"branch"`
	Reviews       []Review `json:"reviews"`
	AverageRating float64  `json:"average_rating"`
}
