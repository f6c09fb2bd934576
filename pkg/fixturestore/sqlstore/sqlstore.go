// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

// Package sqlstore implements fixturestore.FixtureStore on database/sql.
// The sqlite and postgres packages supply the driver and a Dialect.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/leseb/watson-go/pkg/fixturestore"
)

// Dialect captures the SQL differences between drivers.
type Dialect struct {
	Name     string
	BlobType string
	// Numbered placeholders ($1, $2) instead of "?".
	Numbered bool
}

var (
	SQLite   = Dialect{Name: "sqlite", BlobType: "BLOB"}
	Postgres = Dialect{Name: "postgres", BlobType: "BYTEA", Numbered: true}
)

// compile-time check
var _ fixturestore.FixtureStore = (*Store)(nil)

// Store keeps fixtures in a single "fixtures" table. created_at is stored as
// Unix nanoseconds so both drivers order it identically.
type Store struct {
	db      *sql.DB
	dialect Dialect
}

// New creates the schema if needed and returns a Store that owns db.
func New(ctx context.Context, db *sql.DB, dialect Dialect) (*Store, error) {
	s := &Store{db: db, dialect: dialect}
	if err := s.createTables(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) createTables(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS fixtures (
			id TEXT PRIMARY KEY,
			kind TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			bytes BIGINT NOT NULL,
			content ` + s.dialect.BlobType + ` NOT NULL,
			created_at BIGINT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_fixtures_created ON fixtures(created_at, id)`,
		`CREATE INDEX IF NOT EXISTS idx_fixtures_kind ON fixtures(kind)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%s create tables: %w", s.dialect.Name, err)
		}
	}
	return nil
}

// query rewrites "?" placeholders for numbered dialects.
func (s *Store) query(q string) string {
	if !s.dialect.Numbered {
		return q
	}
	var b strings.Builder
	n := 0
	for _, r := range q {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// PutFixture inserts f. Duplicate IDs are rejected.
func (s *Store) PutFixture(ctx context.Context, f *fixturestore.Fixture) error {
	content := f.Content
	if content == nil {
		content = []byte{}
	}
	_, err := s.db.ExecContext(ctx, s.query(
		`INSERT INTO fixtures (id, kind, name, bytes, content, created_at) VALUES (?, ?, ?, ?, ?, ?)`),
		f.ID, f.Kind, f.Name, f.Bytes, content, f.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("%s insert fixture %s: %w", s.dialect.Name, f.ID, err)
	}
	return nil
}

// GetFixture returns fixture metadata (Content is nil).
func (s *Store) GetFixture(ctx context.Context, id string) (*fixturestore.Fixture, error) {
	row := s.db.QueryRowContext(ctx, s.query(
		`SELECT id, kind, name, bytes, created_at FROM fixtures WHERE id = ?`), id)
	f, err := scanFixture(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("fixture %s: %w", id, fixturestore.ErrFixtureNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s get fixture: %w", s.dialect.Name, err)
	}
	return f, nil
}

// GetFixtureContent returns the raw payload.
func (s *Store) GetFixtureContent(ctx context.Context, id string) ([]byte, error) {
	var content []byte
	err := s.db.QueryRowContext(ctx, s.query(`SELECT content FROM fixtures WHERE id = ?`), id).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("fixture %s: %w", id, fixturestore.ErrFixtureNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s get content: %w", s.dialect.Name, err)
	}
	return content, nil
}

// DeleteFixture removes a fixture.
func (s *Store) DeleteFixture(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, s.query(`DELETE FROM fixtures WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("%s delete fixture: %w", s.dialect.Name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s delete fixture: %w", s.dialect.Name, err)
	}
	if n == 0 {
		return fmt.Errorf("fixture %s: %w", id, fixturestore.ErrFixtureNotFound)
	}
	return nil
}

type position struct {
	createdAt int64
	id        string
}

// cursor resolves id to its sort position among fixtures of kind.
func (s *Store) cursor(ctx context.Context, id, kind string) (*position, error) {
	q := `SELECT created_at FROM fixtures WHERE id = ?`
	args := []any{id}
	if kind != "" {
		q += ` AND kind = ?`
		args = append(args, kind)
	}
	var ts int64
	err := s.db.QueryRowContext(ctx, s.query(q), args...).Scan(&ts)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s resolve cursor: %w", s.dialect.Name, err)
	}
	return &position{createdAt: ts, id: id}, nil
}

// ListFixtures pages through fixtures ordered by (created_at, id). Cursor
// handling matches fixturestore.Paginate.
func (s *Store) ListFixtures(ctx context.Context, after, before string, limit int, order, kind string) ([]*fixturestore.Fixture, bool, error) {
	limit = fixturestore.NormalizeLimit(limit)
	desc := order == "desc"

	var afterPos, beforePos *position
	var err error
	if after != "" {
		if afterPos, err = s.cursor(ctx, after, kind); err != nil {
			return nil, false, err
		}
		if afterPos == nil {
			return []*fixturestore.Fixture{}, false, nil
		}
	}
	if before != "" {
		if beforePos, err = s.cursor(ctx, before, kind); err != nil {
			return nil, false, err
		}
		// A before cursor at or ahead of the after cursor bounds nothing.
		if beforePos != nil && afterPos != nil && !precedes(*afterPos, *beforePos, desc) {
			beforePos = nil
		}
	}

	next, prev := ">", "<"
	dir := "ASC"
	if desc {
		next, prev, dir = "<", ">", "DESC"
	}

	q := `SELECT id, kind, name, bytes, created_at FROM fixtures`
	var where []string
	var args []any
	if kind != "" {
		where = append(where, `kind = ?`)
		args = append(args, kind)
	}
	if afterPos != nil {
		where = append(where, `(created_at `+next+` ? OR (created_at = ? AND id `+next+` ?))`)
		args = append(args, afterPos.createdAt, afterPos.createdAt, afterPos.id)
	}
	if beforePos != nil {
		where = append(where, `(created_at `+prev+` ? OR (created_at = ? AND id `+prev+` ?))`)
		args = append(args, beforePos.createdAt, beforePos.createdAt, beforePos.id)
	}
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, ` AND `)
	}
	q += ` ORDER BY created_at ` + dir + `, id ` + dir + ` LIMIT ?`
	args = append(args, limit+1)

	rows, err := s.db.QueryContext(ctx, s.query(q), args...)
	if err != nil {
		return nil, false, fmt.Errorf("%s list fixtures: %w", s.dialect.Name, err)
	}
	defer rows.Close()

	fixtures := []*fixturestore.Fixture{}
	for rows.Next() {
		f, err := scanFixture(rows)
		if err != nil {
			return nil, false, fmt.Errorf("%s scan fixture: %w", s.dialect.Name, err)
		}
		fixtures = append(fixtures, f)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("%s list fixtures: %w", s.dialect.Name, err)
	}

	if len(fixtures) > limit {
		return fixtures[:limit], true, nil
	}
	return fixtures, false, nil
}

// precedes reports whether a sorts strictly before b in the listing order.
func precedes(a, b position, desc bool) bool {
	if desc {
		a, b = b, a
	}
	if a.createdAt != b.createdAt {
		return a.createdAt < b.createdAt
	}
	return a.id < b.id
}

// Truncate deletes every fixture. Test suites sharing one database use it
// to start clean.
func (s *Store) Truncate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM fixtures`); err != nil {
		return fmt.Errorf("%s truncate: %w", s.dialect.Name, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close(_ context.Context) error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanFixture(sc scanner) (*fixturestore.Fixture, error) {
	var f fixturestore.Fixture
	var ts int64
	if err := sc.Scan(&f.ID, &f.Kind, &f.Name, &f.Bytes, &ts); err != nil {
		return nil, err
	}
	f.CreatedAt = time.Unix(0, ts).UTC()
	return &f, nil
}
