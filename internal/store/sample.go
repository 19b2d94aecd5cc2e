package store

import "fmt"

// Built-in demonstration data, served when no sheet endpoint is configured.
// Deterministic so tests and the demo UI are stable between runs.

var sampleTexts = []string{
	"Exceptional service and the coffee was perfect. A true professional!",
	"",
	"Best flat white in town, every single time.",
	"Friendly and fast, remembered my order from last week.",
	"",
}

var sampleOffsets = []float64{0, 0.5, -0.5, 0, 1, -1, 0.5, 0}

func sampleReviews(seq *int, count int, base float64) []Review {
	reviews := make([]Review, 0, count)
	for i := 0; i < count; i++ {
		*seq++
		rating := base + sampleOffsets[i%len(sampleOffsets)]
		rating = float64(int(rating + 0.5)) // round to whole stars
		if rating < 1 {
			rating = 1
		}
		if rating > 5 {
			rating = 5
		}
		reviews = append(reviews, Review{
			ID:         fmt.Sprintf("R%07d", 1000+*seq),
			CustomerID: fmt.Sprintf("C%07d", 1000+*seq),
			Rating:     rating,
			Text:       sampleTexts[i%len(sampleTexts)],
			Reviewer:   "Anonymous User",
			Date:       fmt.Sprintf("2024-%02d-%02d", i%5+1, i%28+1),
		})
	}
	return reviews
}

// SampleBaristas builds the demonstration directory.
func SampleBaristas() []Barista {
	seq := 0
	entries := []struct {
		name    string
		photo   string
		branch  string
		reviews int
		base    float64
	}{
		{"Giorgi Beridze", "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?q=80&w=800&auto=format&fit=crop", "Vake Branch", 24, 4.8},
		{"Nino Kapanadze", "https://images.unsplash.com/photo-1494790108377-be9c29b29330?q=80&w=800&auto=format&fit=crop", "Saburtalo Branch", 19, 4.9},
		{"Davit Gelashvili", "https://images.unsplash.com/photo-1564564321837-a57b7070ac4f?q=80&w=800&auto=format&fit=crop", "Batumi Plaza", 15, 4.6},
		{"Mariam Tsiklauri", "https://images.unsplash.com/photo-1580489944761-15a19d654956?q=80&w=800&auto=format&fit=crop", "Tbilisi Mall", 11, 4.7},
		{"Luka Janelidze", "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?q=80&w=800&auto=format&fit=crop", "Vake Branch", 6, 4.2},
		{"Ana Khurtsidze", "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?q=80&w=800&auto=format&fit=crop", "Rustaveli Avenue", 0, 0},
	}

	baristas := make([]Barista, 0, len(entries))
	for i, e := range entries {
		reviews := sampleReviews(&seq, e.reviews, e.base)
		baristas = append(baristas, Barista{
			ID:            fmt.Sprintf("B%07d", i+1),
			Name:          e.name,
			Photo:         e.photo,
			Branch:        e.branch,
			Reviews:       reviews,
			AverageRating: AverageRating(reviews),
		})
	}
	return baristas
}
