// Package favorites holds the persisted set of favorite resource names and
// the overlay that composes it with the in-memory resource list.
package favorites

import (
	"context"
	"errors"

	"github.com/trojanworks/resourcehub/pkg/resource"
)

// ErrPersistence covers an unreadable or unwritable favorites store.
var ErrPersistence = errors.New("favorites store unavailable")

// Store is the persisted key-value backing for the favorite set. Read
// returns the names in insertion order; Write replaces the whole set. Only
// set membership is guaranteed to round-trip.
type Store interface {
	Read(ctx context.Context) ([]string, error)
	Write(ctx context.Context, names []string) error
}

// Overlay mediates all favorite-set mutations. Every mutation re-reads the
// current state immediately before writing, so independent callers sharing
// one store observe each other's changes (last writer wins).
type Overlay struct {
	store Store
}

func NewOverlay(store Store) *Overlay {
	return &Overlay{store: store}
}

// Toggle removes name if present, appends it otherwise, and reports whether
// the name is a favorite after the call. The write is durable before Toggle
// returns.
func (o *Overlay) Toggle(ctx context.Context, name string) (bool, error) {
	names, err := o.store.Read(ctx)
	if err != nil {
		return false, err
	}

	next := make([]string, 0, len(names)+1)
	removed := false
	for _, n := range names {
		if n == name {
			removed = true
			continue
		}
		next = append(next, n)
	}
	if !removed {
		next = append(next, name)
	}

	if err := o.store.Write(ctx, next); err != nil {
		return false, err
	}
	return !removed, nil
}

// IsFavorite reports whether name is in the persisted set.
func (o *Overlay) IsFavorite(ctx context.Context, name string) (bool, error) {
	names, err := o.store.Read(ctx)
	if err != nil {
		return false, err
	}
	for _, n := range names {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

// Names returns the stored favorite names in insertion order.
func (o *Overlay) Names(ctx context.Context) ([]string, error) {
	return o.store.Read(ctx)
}

// Materialize returns every resource whose name is in the favorite set,
// in the order the full resource list is scanned (not favorite-insertion
// order). Each returned resource already carries its provenance type and
// grouping key from normalization.
func (o *Overlay) Materialize(ctx context.Context, all []resource.Resource) ([]resource.Resource, error) {
	names, err := o.store.Read(ctx)
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]struct{}, len(names))
	for _, n := range names {
		wanted[n] = struct{}{}
	}

	matched := make([]resource.Resource, 0, len(names))
	for _, r := range all {
		if _, ok := wanted[r.Name]; ok {
			matched = append(matched, r)
		}
	}
	return matched, nil
}
