// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

// Package fixturestoretest provides a shared conformance test suite for
// fixturestore.FixtureStore implementations. Each backend should call
// RunConformanceTests from its own _test.go file.
package fixturestoretest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/leseb/watson-go/pkg/fixturestore"
)

const sampleIntent = `{"intent":"greeting","confidence":0.93}`

func fixture(id, kind string, content string, createdAt time.Time) *fixturestore.Fixture {
	return &fixturestore.Fixture{
		ID:        id,
		Kind:      kind,
		Name:      id + ".json",
		Bytes:     int64(len(content)),
		Content:   []byte(content),
		CreatedAt: createdAt,
	}
}

func ids(fixtures []*fixturestore.Fixture) []string {
	out := make([]string, len(fixtures))
	for i, f := range fixtures {
		out[i] = f.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// RunConformanceTests exercises a FixtureStore implementation against the
// shared contract. The newStore function is called once per sub-test to
// provide an isolated store instance.
func RunConformanceTests(t *testing.T, newStore func(t *testing.T) fixturestore.FixtureStore) {
	t.Helper()

	t.Run("PutAndGet", func(t *testing.T) {
		store := newStore(t)
		defer store.Close(context.Background())
		ctx := context.Background()

		f := fixture("fx_get1", "assistant.RuntimeIntent", sampleIntent, time.Now().UTC().Truncate(time.Millisecond))
		if err := store.PutFixture(ctx, f); err != nil {
			t.Fatalf("PutFixture: %v", err)
		}

		got, err := store.GetFixture(ctx, f.ID)
		if err != nil {
			t.Fatalf("GetFixture: %v", err)
		}
		if got.ID != f.ID || got.Kind != f.Kind || got.Name != f.Name || got.Bytes != f.Bytes {
			t.Errorf("GetFixture returned unexpected metadata: %+v", got)
		}
		if !got.CreatedAt.Equal(f.CreatedAt) {
			t.Errorf("CreatedAt mismatch: got %v, want %v", got.CreatedAt, f.CreatedAt)
		}

		// metadata only
		if got.Content != nil {
			t.Errorf("expected Content to be nil from GetFixture, got %d bytes", len(got.Content))
		}
	})

	t.Run("GetContent", func(t *testing.T) {
		store := newStore(t)
		defer store.Close(context.Background())
		ctx := context.Background()

		f := fixture("fx_content1", "assistant.RuntimeIntent", sampleIntent, time.Now().UTC().Truncate(time.Millisecond))
		if err := store.PutFixture(ctx, f); err != nil {
			t.Fatalf("PutFixture: %v", err)
		}

		got, err := store.GetFixtureContent(ctx, f.ID)
		if err != nil {
			t.Fatalf("GetFixtureContent: %v", err)
		}
		if string(got) != sampleIntent {
			t.Errorf("content mismatch: got %q, want %q", got, sampleIntent)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		store := newStore(t)
		defer store.Close(context.Background())
		ctx := context.Background()

		f := fixture("fx_del1", "assistant.RuntimeIntent", sampleIntent, time.Now().UTC().Truncate(time.Millisecond))
		if err := store.PutFixture(ctx, f); err != nil {
			t.Fatalf("PutFixture: %v", err)
		}
		if err := store.DeleteFixture(ctx, f.ID); err != nil {
			t.Fatalf("DeleteFixture: %v", err)
		}

		_, err := store.GetFixture(ctx, f.ID)
		if !errors.Is(err, fixturestore.ErrFixtureNotFound) {
			t.Errorf("expected ErrFixtureNotFound after delete, got: %v", err)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		store := newStore(t)
		defer store.Close(context.Background())
		ctx := context.Background()

		_, err := store.GetFixture(ctx, "fx_nonexistent")
		if !errors.Is(err, fixturestore.ErrFixtureNotFound) {
			t.Errorf("GetFixture expected ErrFixtureNotFound, got: %v", err)
		}

		_, err = store.GetFixtureContent(ctx, "fx_nonexistent")
		if !errors.Is(err, fixturestore.ErrFixtureNotFound) {
			t.Errorf("GetFixtureContent expected ErrFixtureNotFound, got: %v", err)
		}

		err = store.DeleteFixture(ctx, "fx_nonexistent")
		if !errors.Is(err, fixturestore.ErrFixtureNotFound) {
			t.Errorf("DeleteFixture expected ErrFixtureNotFound, got: %v", err)
		}
	})

	t.Run("ListPaginated", func(t *testing.T) {
		store := newStore(t)
		defer store.Close(context.Background())
		ctx := context.Background()

		baseTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 5; i++ {
			f := fixture("fx_list"+string(rune('a'+i)), "assistant.RuntimeIntent", sampleIntent, baseTime.Add(time.Duration(i)*time.Second))
			if err := store.PutFixture(ctx, f); err != nil {
				t.Fatalf("PutFixture[%d]: %v", i, err)
			}
		}

		fixtures, hasMore, err := store.ListFixtures(ctx, "", "", 10, "asc", "")
		if err != nil {
			t.Fatalf("ListFixtures: %v", err)
		}
		want := []string{"fx_lista", "fx_listb", "fx_listc", "fx_listd", "fx_liste"}
		if !equalIDs(ids(fixtures), want) {
			t.Errorf("asc order: got %v, want %v", ids(fixtures), want)
		}
		if hasMore {
			t.Errorf("expected hasMore=false")
		}

		fixtures, hasMore, err = store.ListFixtures(ctx, "", "", 3, "asc", "")
		if err != nil {
			t.Fatalf("ListFixtures: %v", err)
		}
		if len(fixtures) != 3 {
			t.Errorf("expected 3 fixtures, got %d", len(fixtures))
		}
		if !hasMore {
			t.Errorf("expected hasMore=true with limit=3 and 5 fixtures")
		}

		fixtures, hasMore, err = store.ListFixtures(ctx, "fx_listc", "", 10, "asc", "")
		if err != nil {
			t.Fatalf("ListFixtures after: %v", err)
		}
		if got := ids(fixtures); !equalIDs(got, []string{"fx_listd", "fx_liste"}) {
			t.Errorf("after cursor: got %v", got)
		}
		if hasMore {
			t.Errorf("expected hasMore=false after cursor")
		}

		fixtures, _, err = store.ListFixtures(ctx, "", "fx_listc", 10, "asc", "")
		if err != nil {
			t.Fatalf("ListFixtures before: %v", err)
		}
		if got := ids(fixtures); !equalIDs(got, []string{"fx_lista", "fx_listb"}) {
			t.Errorf("before cursor: got %v", got)
		}

		fixtures, _, err = store.ListFixtures(ctx, "", "", 2, "desc", "")
		if err != nil {
			t.Fatalf("ListFixtures desc: %v", err)
		}
		if got := ids(fixtures); !equalIDs(got, []string{"fx_liste", "fx_listd"}) {
			t.Errorf("desc order: got %v", got)
		}

		fixtures, hasMore, err = store.ListFixtures(ctx, "fx_unknown", "", 10, "asc", "")
		if err != nil {
			t.Fatalf("ListFixtures unknown cursor: %v", err)
		}
		if len(fixtures) != 0 || hasMore {
			t.Errorf("unknown after cursor: got %v, hasMore=%v", ids(fixtures), hasMore)
		}
	})

	t.Run("ListFilterByKind", func(t *testing.T) {
		store := newStore(t)
		defer store.Close(context.Background())
		ctx := context.Background()

		baseTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		kinds := []string{"assistant.RuntimeIntent", "discovery.QueryResponse", "assistant.RuntimeIntent"}
		for i, k := range kinds {
			f := fixture("fx_kind"+string(rune('a'+i)), k, sampleIntent, baseTime.Add(time.Duration(i)*time.Second))
			if err := store.PutFixture(ctx, f); err != nil {
				t.Fatalf("PutFixture[%d]: %v", i, err)
			}
		}

		fixtures, _, err := store.ListFixtures(ctx, "", "", 10, "asc", "assistant.RuntimeIntent")
		if err != nil {
			t.Fatalf("ListFixtures: %v", err)
		}
		if len(fixtures) != 2 {
			t.Errorf("expected 2 intent fixtures, got %d", len(fixtures))
		}
		for _, f := range fixtures {
			if f.Kind != "assistant.RuntimeIntent" {
				t.Errorf("expected kind=assistant.RuntimeIntent, got %s", f.Kind)
			}
		}
	})

	t.Run("DuplicatePut", func(t *testing.T) {
		store := newStore(t)
		defer store.Close(context.Background())
		ctx := context.Background()

		f := fixture("fx_dup1", "assistant.RuntimeIntent", sampleIntent, time.Now().UTC().Truncate(time.Millisecond))
		if err := store.PutFixture(ctx, f); err != nil {
			t.Fatalf("first PutFixture: %v", err)
		}

		// Memory and SQL backends reject duplicates; object stores overwrite.
		// We just ensure no panic.
		_ = store.PutFixture(ctx, f)
	})
}
