// Package wishlist is an order-preserving set of tour ids persisted after
// every mutation. Transitions are pure functions over the id slice; the
// kvstore adapter is invoked by the store after each transition, so the
// persisted value always matches the in-memory set when a mutator returns.
package wishlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mapmytour/tour-api/internal/pkg/kvstore"
)

const storageKey = "wishlist"

// Store is the wishlist state container for one client session.
type Store struct {
	kv  kvstore.Store
	ids []string
}

// Load creates a store seeded from persisted state. A missing or corrupted
// value starts an empty wishlist.
func Load(ctx context.Context, kv kvstore.Store) (*Store, error) {
	s := &Store{kv: kv}

	raw, err := kv.Get(ctx, storageKey)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to load wishlist: %w", err)
	}
	if err := json.Unmarshal(raw, &s.ids); err != nil {
		s.ids = nil
	}
	return s, nil
}

// add appends id unless already present.
func add(ids []string, id string) []string {
	if contains(ids, id) {
		return ids
	}
	return append(ids[:len(ids):len(ids)], id)
}

// remove drops id, preserving the order of the rest.
func remove(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// toggle flips membership of id.
func toggle(ids []string, id string) []string {
	if contains(ids, id) {
		return remove(ids, id)
	}
	return add(ids, id)
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// Add inserts id into the wishlist. No-op if already present; the set is
// still re-persisted.
func (s *Store) Add(ctx context.Context, id string) error {
	return s.commit(ctx, add(s.ids, id))
}

// Remove deletes id from the wishlist.
func (s *Store) Remove(ctx context.Context, id string) error {
	return s.commit(ctx, remove(s.ids, id))
}

// Toggle flips membership of id. Applying it twice restores the set.
func (s *Store) Toggle(ctx context.Context, id string) error {
	return s.commit(ctx, toggle(s.ids, id))
}

// commit applies the transition result and persists the full set
// synchronously before returning.
func (s *Store) commit(ctx context.Context, next []string) error {
	s.ids = next
	data, err := json.Marshal(s.ids)
	if err != nil {
		return fmt.Errorf("failed to encode wishlist: %w", err)
	}
	if err := s.kv.Set(ctx, storageKey, data); err != nil {
		return fmt.Errorf("failed to persist wishlist: %w", err)
	}
	return nil
}

// IsWishlisted reports membership of id.
func (s *Store) IsWishlisted(id string) bool {
	return contains(s.ids, id)
}

// IDs returns the wishlisted tour ids in insertion order.
func (s *Store) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}
