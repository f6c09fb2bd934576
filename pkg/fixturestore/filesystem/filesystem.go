// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

package filesystem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/leseb/watson-go/pkg/fixturestore"
)

func init() {
	fixturestore.Providers.Register("filesystem", func(_ context.Context, params map[string]string) (fixturestore.FixtureStore, error) {
		return New(params["base_dir"])
	})
}

// compile-time check
var _ fixturestore.FixtureStore = (*Store)(nil)

// Store implements fixturestore.FixtureStore backed by a local directory.
//
// Layout:
//
//	<baseDir>/<fixture_id>/payload.json   raw payload
//	<baseDir>/<fixture_id>/metadata.json  metadata sidecar
type Store struct {
	baseDir string
}

// New creates a filesystem-backed Store, creating baseDir if it does not exist.
func New(baseDir string) (*Store, error) {
	if baseDir == "" {
		return nil, errors.New("filesystem fixturestore: base_dir is required")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create base dir %s: %w", baseDir, err)
	}
	return &Store{baseDir: baseDir}, nil
}

// PutFixture writes the payload and its metadata, each through a temp
// file and a rename.
func (s *Store) PutFixture(_ context.Context, f *fixturestore.Fixture) error {
	if err := validID(f.ID); err != nil {
		return err
	}
	dir := filepath.Join(s.baseDir, f.ID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create fixture dir: %w", err)
	}

	if err := writeAtomic(filepath.Join(dir, "payload.json"), f.Content); err != nil {
		return fmt.Errorf("write payload: %w", err)
	}

	metaBytes, err := json.Marshal(fixturestore.MetadataOf(f))
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}
	if err := writeAtomic(filepath.Join(dir, "metadata.json"), metaBytes); err != nil {
		return fmt.Errorf("write metadata: %w", err)
	}
	return nil
}

// GetFixture returns fixture metadata (Content is nil).
func (s *Store) GetFixture(_ context.Context, id string) (*fixturestore.Fixture, error) {
	meta, err := s.readMetadata(id)
	if err != nil {
		return nil, err
	}
	return meta.Fixture(), nil
}

// GetFixtureContent returns the raw payload.
func (s *Store) GetFixtureContent(_ context.Context, id string) ([]byte, error) {
	if err := validID(id); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "payload.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("fixture %s: %w", id, fixturestore.ErrFixtureNotFound)
		}
		return nil, fmt.Errorf("read payload: %w", err)
	}
	return data, nil
}

// DeleteFixture removes the fixture directory.
func (s *Store) DeleteFixture(_ context.Context, id string) error {
	if err := validID(id); err != nil {
		return err
	}
	dir := filepath.Join(s.baseDir, id)
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("fixture %s: %w", id, fixturestore.ErrFixtureNotFound)
		}
		return fmt.Errorf("stat fixture dir: %w", err)
	}
	return os.RemoveAll(dir)
}

// ListFixtures reads every metadata sidecar and pages through them.
func (s *Store) ListFixtures(_ context.Context, after, before string, limit int, order, kind string) ([]*fixturestore.Fixture, bool, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, false, fmt.Errorf("read base dir: %w", err)
	}

	var all []*fixturestore.Fixture
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.readMetadata(entry.Name())
		if err != nil {
			continue // skip half-written or foreign directories
		}
		if kind != "" && meta.Kind != kind {
			continue
		}
		all = append(all, meta.Fixture())
	}

	page, hasMore := fixturestore.Paginate(all, after, before, limit, order)
	return page, hasMore, nil
}

// Close is a no-op for the filesystem store.
func (s *Store) Close(_ context.Context) error {
	return nil
}

func (s *Store) readMetadata(id string) (*fixturestore.Metadata, error) {
	if err := validID(id); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "metadata.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("fixture %s: %w", id, fixturestore.ErrFixtureNotFound)
		}
		return nil, fmt.Errorf("read metadata: %w", err)
	}

	var meta fixturestore.Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("unmarshal metadata for %s: %w", id, err)
	}
	return &meta, nil
}

// validID keeps IDs inside baseDir.
func validID(id string) error {
	if id == "" || id == "." || id == ".." || filepath.Base(id) != id {
		return fmt.Errorf("fixture %q: invalid id", id)
	}
	return nil
}

func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
