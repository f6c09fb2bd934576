// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/leseb/watson-go/pkg/fixturestore"
)

func init() {
	fixturestore.Providers.Register("memory", func(_ context.Context, _ map[string]string) (fixturestore.FixtureStore, error) {
		return New(), nil
	})
}

// compile-time check
var _ fixturestore.FixtureStore = (*Store)(nil)

// Store is an in-memory fixture store.
type Store struct {
	mu       sync.RWMutex
	fixtures map[string]*fixturestore.Fixture
}

// New creates a new in-memory fixture store.
func New() *Store {
	return &Store{
		fixtures: make(map[string]*fixturestore.Fixture),
	}
}

// PutFixture stores a new fixture. IDs are unique.
func (s *Store) PutFixture(_ context.Context, f *fixturestore.Fixture) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.fixtures[f.ID]; exists {
		return fmt.Errorf("fixture %s already exists", f.ID)
	}

	cp := *f
	cp.Content = append([]byte(nil), f.Content...)
	s.fixtures[f.ID] = &cp
	return nil
}

// GetFixture returns fixture metadata (Content is nil).
func (s *Store) GetFixture(_ context.Context, id string) (*fixturestore.Fixture, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, exists := s.fixtures[id]
	if !exists {
		return nil, fmt.Errorf("fixture %s: %w", id, fixturestore.ErrFixtureNotFound)
	}

	cp := *f
	cp.Content = nil
	return &cp, nil
}

// GetFixtureContent returns the raw payload.
func (s *Store) GetFixtureContent(_ context.Context, id string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, exists := s.fixtures[id]
	if !exists {
		return nil, fmt.Errorf("fixture %s: %w", id, fixturestore.ErrFixtureNotFound)
	}
	return append([]byte(nil), f.Content...), nil
}

// DeleteFixture removes a fixture.
func (s *Store) DeleteFixture(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.fixtures[id]; !exists {
		return fmt.Errorf("fixture %s: %w", id, fixturestore.ErrFixtureNotFound)
	}

	delete(s.fixtures, id)
	return nil
}

// ListFixtures returns one page of fixtures, optionally filtered by kind.
func (s *Store) ListFixtures(_ context.Context, after, before string, limit int, order, kind string) ([]*fixturestore.Fixture, bool, error) {
	s.mu.RLock()
	all := make([]*fixturestore.Fixture, 0, len(s.fixtures))
	for _, f := range s.fixtures {
		if kind != "" && f.Kind != kind {
			continue
		}
		cp := *f
		cp.Content = nil
		all = append(all, &cp)
	}
	s.mu.RUnlock()

	page, hasMore := fixturestore.Paginate(all, after, before, limit, order)
	return page, hasMore, nil
}

// Close is a no-op for the in-memory store.
func (s *Store) Close(_ context.Context) error {
	return nil
}
