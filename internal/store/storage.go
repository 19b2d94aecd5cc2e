package store

import (
	"errors"
)

var (
	ErrNotFound = errors.New("resource not found")
)

// Source records where the current snapshot came from.
type Source string

const (
	SourceSheet  Source = "sheet"
	SourceSample Source = "sample"
)

type ListQuery struct {
	Search   string
	Location string
	Sort     SortOption
}

type Stats struct {
	Baristas int `json:"baristas"`
	Reviews  int `json:"reviews"`
}

type Storage struct {
	Baristas interface {
		Replace(baristas []Barista, source Source, notice string)
		SetNotice(notice string)
		Status() (Source, string)
		List(q ListQuery) []Barista
		GetByID(id string) (*Barista, error)
		AddReview(baristaID string, review Review) (*Barista, error)
		HasCustomerReview(baristaID, customerID string) (bool, error)
		Locations() []string
		Stats() Stats
	}
}

func NewStorage() Storage {
	return Storage{
		Baristas: NewBaristaStore(),
	}
}
