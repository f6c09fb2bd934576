// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

package postgres_test

import (
	"context"
	"os"
	"testing"

	"github.com/leseb/watson-go/pkg/fixturestore"
	"github.com/leseb/watson-go/pkg/fixturestore/fixturestoretest"
	"github.com/leseb/watson-go/pkg/fixturestore/postgres"
)

func TestPostgresConformance(t *testing.T) {
	dsn := os.Getenv("WATSON_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("Skipping PostgreSQL conformance tests: WATSON_POSTGRES_DSN not set")
	}

	fixturestoretest.RunConformanceTests(t, func(t *testing.T) fixturestore.FixtureStore {
		ctx := context.Background()
		store, err := postgres.New(ctx, dsn)
		if err != nil {
			t.Fatalf("postgres.New: %v", err)
		}
		// Sub-tests reuse fixed IDs, so each starts from an empty table.
		if err := store.Truncate(ctx); err != nil {
			t.Fatalf("Truncate: %v", err)
		}
		return store
	})
}

func TestPostgres_DSNRequired(t *testing.T) {
	if _, err := postgres.New(context.Background(), ""); err == nil {
		t.Fatal("expected error without dsn")
	}
}
