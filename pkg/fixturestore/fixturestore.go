// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

// Package fixturestore keeps captured Watson payloads ("fixtures") so they
// can be re-checked against the record models after every model change.
package fixturestore

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/leseb/watson-go/pkg/provider"
)

// ErrFixtureNotFound is returned when a fixture does not exist.
var ErrFixtureNotFound = errors.New("fixture not found")

// Providers is the registry of fixture store backend implementations.
// Import implementation packages with blank imports to register them:
//
//	import _ "github.com/leseb/watson-go/pkg/fixturestore/memory"
//	import _ "github.com/leseb/watson-go/pkg/fixturestore/filesystem"
//	import _ "github.com/leseb/watson-go/pkg/fixturestore/s3"
//	import _ "github.com/leseb/watson-go/pkg/fixturestore/sqlite"
//	import _ "github.com/leseb/watson-go/pkg/fixturestore/postgres"
var Providers = provider.NewRegistry[FixtureStore]("fixture_store")

// Fixture is a stored payload with its metadata.
type Fixture struct {
	ID        string
	Kind      string // catalog kind name, e.g. "assistant.MessageResponse"
	Name      string // free-form label, usually the source file name
	Bytes     int64
	Content   []byte // populated for PutFixture input; nil for GetFixture output
	CreatedAt time.Time
}

// New builds a fixture with a fresh ID and the current time.
func New(kind, name string, content []byte) *Fixture {
	return &Fixture{
		ID:        "fx_" + uuid.NewString(),
		Kind:      kind,
		Name:      name,
		Bytes:     int64(len(content)),
		Content:   content,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
}

// FixtureStore defines the interface for pluggable fixture storage backends.
type FixtureStore interface {
	PutFixture(ctx context.Context, f *Fixture) error
	GetFixture(ctx context.Context, id string) (*Fixture, error)
	GetFixtureContent(ctx context.Context, id string) ([]byte, error)
	DeleteFixture(ctx context.Context, id string) error

	// ListFixtures returns fixtures ordered by creation time ("asc" or
	// "desc"), starting after the after cursor and stopping before the
	// before cursor. kind filters when not empty. hasMore reports whether
	// the page was cut short by limit.
	ListFixtures(ctx context.Context, after, before string, limit int, order, kind string) (fixtures []*Fixture, hasMore bool, err error)

	Close(ctx context.Context) error
}

// Metadata is the JSON sidecar that object-style backends store next to
// the fixture content.
type Metadata struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Name      string    `json:"name"`
	Bytes     int64     `json:"bytes"`
	CreatedAt time.Time `json:"created_at"`
}

// MetadataOf returns the sidecar of f.
func MetadataOf(f *Fixture) Metadata {
	return Metadata{ID: f.ID, Kind: f.Kind, Name: f.Name, Bytes: f.Bytes, CreatedAt: f.CreatedAt}
}

// Fixture returns the fixture described by m, without content.
func (m Metadata) Fixture() *Fixture {
	return &Fixture{ID: m.ID, Kind: m.Kind, Name: m.Name, Bytes: m.Bytes, CreatedAt: m.CreatedAt}
}
