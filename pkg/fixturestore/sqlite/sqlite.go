// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

// Package sqlite registers a SQLite fixture store backed by the pure-Go
// modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/leseb/watson-go/pkg/fixturestore"
	"github.com/leseb/watson-go/pkg/fixturestore/sqlstore"

	_ "modernc.org/sqlite"
)

func init() {
	fixturestore.Providers.Register("sqlite", func(ctx context.Context, params map[string]string) (fixturestore.FixtureStore, error) {
		path := params["path"]
		if path == "" {
			path = "watson-fixtures.db"
		}
		return New(ctx, path)
	})
}

// New opens (or creates) the database at path. ":memory:" is accepted.
func New(ctx context.Context, path string) (*sqlstore.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}
	// One connection: an in-memory database is per connection, and SQLite
	// serializes writers anyway.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite ping: %w", err)
	}

	s, err := sqlstore.New(ctx, db, sqlstore.SQLite)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}
