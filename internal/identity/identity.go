// Package identity manages the device-local pseudo-identity used to attribute
// and deduplicate reviews. It is not an account system: the customer id is a
// random token persisted in device-scoped storage, and the duplicate-rating
// guard is an honor-system check, not server-side enforcement.
package identity

import (
	"fmt"
	"math/rand"
	"strings"
)

// KV is the persisted string key/value surface the identity lives in.
// Implementations: SQLiteKV for the device, MemoryKV for tests.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

const (
	customerIDKey  = "meama_customer_id"
	usernameKey    = "meama_username"
	ratedKeyPrefix = "rated_barista_"
)

type Store struct {
	kv KV
}

func New(kv KV) *Store {
	return &Store{kv: kv}
}

// CustomerID returns the persisted customer id, creating one on first use.
// The id is immutable once created.
func (s *Store) CustomerID() (string, error) {
	id, err := s.kv.Get(customerIDKey)
	if err != nil {
		return "", err
	}
	if id != "" {
		return id, nil
	}

	id = fmt.Sprintf("C%07d", rand.Intn(9999999)+1)
	if err := s.kv.Set(customerIDKey, id); err != nil {
		return "", err
	}
	return id, nil
}

// ResolveUsername picks the display name for a submission. A non-empty input
// becomes the new stored name; an empty one falls back to the stored name and
// finally to a synthesized "Meama Customer NNN".
func (s *Store) ResolveUsername(input string) (string, error) {
	username := strings.TrimSpace(input)
	if username != "" {
		if err := s.kv.Set(usernameKey, username); err != nil {
			return "", err
		}
		return username, nil
	}

	stored, err := s.kv.Get(usernameKey)
	if err != nil {
		return "", err
	}
	if stored != "" {
		return stored, nil
	}

	customerID, err := s.CustomerID()
	if err != nil {
		return "", err
	}
	return "Meama Customer " + strings.TrimLeft(customerID[1:], "0"), nil
}

// StoredUsername returns the persisted display name, "" if none was chosen.
func (s *Store) StoredUsername() (string, error) {
	return s.kv.Get(usernameKey)
}

// HasRated reports the local half of the duplicate-rating guard.
func (s *Store) HasRated(baristaID string) (bool, error) {
	v, err := s.kv.Get(ratedKeyPrefix + baristaID)
	if err != nil {
		return false, err
	}
	return v == "true", nil
}

// MarkRated sets the local rated flag, also used to backfill when an
// existing remote review from this customer is detected.
func (s *Store) MarkRated(baristaID string) error {
	return s.kv.Set(ratedKeyPrefix+baristaID, "true")
}
