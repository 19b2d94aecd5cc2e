package store

import (
	"sort"
	"strings"
	"sync"
)

// BaristaStore holds the normalized in-memory snapshot. Reads are concurrent;
// the snapshot is only replaced wholesale by an ingest or mutated by an
// optimistic review insert, both under the write lock. Mutations build fresh
// slices so copies handed to earlier readers stay stable.
type BaristaStore struct {
	mu       sync.RWMutex
	baristas []Barista
	source   Source
	notice   string
}

func NewBaristaStore() *BaristaStore {
	return &BaristaStore{source: SourceSample}
}

func (s *BaristaStore) Replace(baristas []Barista, source Source, notice string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.baristas = baristas
	s.source = source
	s.notice = notice
}

func (s *BaristaStore) SetNotice(notice string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notice = notice
}

func (s *BaristaStore) Status() (Source, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source, s.notice
}

// List filters by location and search term, then sorts. Search matches the
// raw name and its Latin transliteration, case-insensitively.
func (s *BaristaStore) List(q ListQuery) []Barista {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// The global average is computed over the full snapshot, not the
	// filtered subset, so filtering does not move the prior.
	global := GlobalAverage(s.baristas)

	term := strings.ToLower(strings.TrimSpace(q.Search))
	filtered := make([]Barista, 0, len(s.baristas))
	for _, b := range s.baristas {
		if q.Location != "" && q.Location != "All" && b.Branch != q.Location {
			continue
		}
		if term != "" {
			name := strings.ToLower(b.Name)
			latin := strings.ToLower(Transliterate(b.Name))
			if !strings.Contains(name, term) && !strings.Contains(latin, term) {
				continue
			}
		}
		filtered = append(filtered, b)
	}

	SortBaristas(filtered, q.Sort, global)
	return filtered
}

// GetByID returns a copy of the barista with reviews ordered newest-first.
func (s *BaristaStore) GetByID(id string) (*Barista, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.baristas {
		if b.ID == id {
			cp := b
			cp.Reviews = append([]Review(nil), b.Reviews...)
			sort.SliceStable(cp.Reviews, func(i, j int) bool {
				return cp.Reviews[i].Date > cp.Reviews[j].Date
			})
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

// AddReview prepends an optimistic review to the barista and recomputes its
// average. Every review in the snapshot carrying the same customer id gets
// its reviewer rewritten, so a customer's earlier reviews pick up their
// latest display name.
func (s *BaristaStore) AddReview(baristaID string, review Review) (*Barista, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var updated *Barista
	next := make([]Barista, len(s.baristas))
	for i, b := range s.baristas {
		reviews := make([]Review, 0, len(b.Reviews)+1)
		if b.ID == baristaID {
			reviews = append(reviews, review)
		}
		for _, r := range b.Reviews {
			if review.CustomerID != "" && r.CustomerID == review.CustomerID {
				r.Reviewer = review.Reviewer
			}
			reviews = append(reviews, r)
		}
		b.Reviews = reviews
		b.AverageRating = AverageRating(reviews)
		next[i] = b
		if b.ID == baristaID {
			cp := b
			updated = &cp
		}
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	s.baristas = next
	return updated, nil
}

// HasCustomerReview reports whether the barista already has a review from
// this customer, the remote half of the duplicate-rating guard.
func (s *BaristaStore) HasCustomerReview(baristaID, customerID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.baristas {
		if b.ID != baristaID {
			continue
		}
		for _, r := range b.Reviews {
			if r.CustomerID != "" && r.CustomerID == customerID {
				return true, nil
			}
		}
		return false, nil
	}
	return false, ErrNotFound
}

func (s *BaristaStore) Locations() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{}, len(s.baristas))
	var locations []string
	for _, b := range s.baristas {
		if _, ok := seen[b.Branch]; ok {
			continue
		}
		seen[b.Branch] = struct{}{}
		locations = append(locations, b.Branch)
	}
	sort.Strings(locations)
	return locations
}

func (s *BaristaStore) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{Baristas: len(s.baristas)}
	for _, b := range s.baristas {
		st.Reviews += len(b.Reviews)
	}
	return st
}
