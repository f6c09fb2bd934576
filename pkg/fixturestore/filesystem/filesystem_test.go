// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

package filesystem_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/leseb/watson-go/pkg/fixturestore"
	"github.com/leseb/watson-go/pkg/fixturestore/filesystem"
	"github.com/leseb/watson-go/pkg/fixturestore/fixturestoretest"
)

func TestFilesystemConformance(t *testing.T) {
	fixturestoretest.RunConformanceTests(t, func(t *testing.T) fixturestore.FixtureStore {
		store, err := filesystem.New(t.TempDir())
		if err != nil {
			t.Fatalf("filesystem.New: %v", err)
		}
		return store
	})
}

func TestFilesystem_Layout(t *testing.T) {
	dir := t.TempDir()
	store, err := filesystem.New(dir)
	if err != nil {
		t.Fatalf("filesystem.New: %v", err)
	}

	f := fixturestore.New("assistant.Context", "ctx.json", []byte(`{"a":1}`))
	if err := store.PutFixture(context.Background(), f); err != nil {
		t.Fatalf("PutFixture: %v", err)
	}

	for _, name := range []string{"payload.json", "metadata.json"} {
		if _, err := os.Stat(filepath.Join(dir, f.ID, name)); err != nil {
			t.Errorf("expected %s on disk: %v", name, err)
		}
	}
}

func TestFilesystem_RejectsTraversal(t *testing.T) {
	store, err := filesystem.New(t.TempDir())
	if err != nil {
		t.Fatalf("filesystem.New: %v", err)
	}
	if _, err := store.GetFixture(context.Background(), "../etc"); err == nil {
		t.Error("expected error for path traversal id")
	}
}

func TestFilesystem_RegisteredProvider(t *testing.T) {
	store, err := fixturestore.Providers.New(context.Background(), "filesystem", map[string]string{"base_dir": t.TempDir()})
	if err != nil {
		t.Fatalf("Providers.New: %v", err)
	}
	defer store.Close(context.Background())
}
