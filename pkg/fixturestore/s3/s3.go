// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

package s3

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"golang.org/x/sync/errgroup"

	"github.com/leseb/watson-go/pkg/fixturestore"
)

func init() {
	fixturestore.Providers.Register("s3", func(ctx context.Context, params map[string]string) (fixturestore.FixtureStore, error) {
		return New(ctx, Options{
			Bucket:   params["bucket"],
			Region:   params["region"],
			Prefix:   params["prefix"],
			Endpoint: params["endpoint"],
		})
	})
}

// compile-time check
var _ fixturestore.FixtureStore = (*Store)(nil)

// Options configures the S3 backend.
type Options struct {
	Bucket   string // required
	Region   string // e.g. "us-east-1"
	Prefix   string // key prefix, e.g. "fixtures/"
	Endpoint string // custom endpoint for MinIO compatibility
}

// metadataFetchers bounds concurrent metadata reads while listing.
const metadataFetchers = 10

// Store implements fixturestore.FixtureStore backed by S3 (or MinIO).
//
// Object layout:
//
//	<prefix><fixture_id>/payload.json
//	<prefix><fixture_id>/metadata.json
type Store struct {
	client *s3.Client
	bucket string
	prefix string
}

// New creates an S3-backed Store.
func New(ctx context.Context, opts Options) (*Store, error) {
	if opts.Bucket == "" {
		return nil, fmt.Errorf("s3 fixturestore: bucket is required")
	}

	optFns := []func(*awsconfig.LoadOptions) error{}
	if opts.Region != "" {
		optFns = append(optFns, awsconfig.WithRegion(opts.Region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	s3Opts := []func(*s3.Options){}
	if opts.Endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true // required for MinIO
		})
	}

	return &Store{
		client: s3.NewFromConfig(cfg, s3Opts...),
		bucket: opts.Bucket,
		prefix: opts.Prefix,
	}, nil
}

func (s *Store) payloadKey(id string) string {
	return s.prefix + id + "/payload.json"
}

func (s *Store) metadataKey(id string) string {
	return s.prefix + id + "/metadata.json"
}

// PutFixture uploads the payload, then the metadata. A fixture is only
// listed once its metadata exists.
func (s *Store) PutFixture(ctx context.Context, f *fixturestore.Fixture) error {
	metaBytes, err := json.Marshal(fixturestore.MetadataOf(f))
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.payloadKey(f.ID)),
		Body:        bytes.NewReader(f.Content),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("put payload: %w", err)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.metadataKey(f.ID)),
		Body:        bytes.NewReader(metaBytes),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("put metadata: %w", err)
	}
	return nil
}

// GetFixture returns fixture metadata (Content is nil).
func (s *Store) GetFixture(ctx context.Context, id string) (*fixturestore.Fixture, error) {
	meta, err := s.readMetadata(ctx, id)
	if err != nil {
		return nil, err
	}
	return meta.Fixture(), nil
}

// GetFixtureContent returns the raw payload.
func (s *Store) GetFixtureContent(ctx context.Context, id string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.payloadKey(id)),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("fixture %s: %w", id, fixturestore.ErrFixtureNotFound)
		}
		return nil, fmt.Errorf("get payload: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read payload body: %w", err)
	}
	return data, nil
}

// DeleteFixture removes both objects of a fixture.
func (s *Store) DeleteFixture(ctx context.Context, id string) error {
	if _, err := s.readMetadata(ctx, id); err != nil {
		return err
	}

	_, err := s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(s.bucket),
		Delete: &s3types.Delete{
			Objects: []s3types.ObjectIdentifier{
				{Key: aws.String(s.payloadKey(id))},
				{Key: aws.String(s.metadataKey(id))},
			},
			Quiet: aws.Bool(true),
		},
	})
	if err != nil {
		return fmt.Errorf("delete objects: %w", err)
	}
	return nil
}

// ListFixtures lists fixture prefixes, fetches their metadata concurrently
// and pages through the result.
func (s *Store) ListFixtures(ctx context.Context, after, before string, limit int, order, kind string) ([]*fixturestore.Fixture, bool, error) {
	var ids []string
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket:    aws.String(s.bucket),
		Prefix:    aws.String(s.prefix),
		Delimiter: aws.String("/"),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, false, fmt.Errorf("list objects: %w", err)
		}
		for _, cp := range page.CommonPrefixes {
			// "<prefix><fixture_id>/"
			id := strings.TrimSuffix(strings.TrimPrefix(aws.ToString(cp.Prefix), s.prefix), "/")
			if id != "" {
				ids = append(ids, id)
			}
		}
	}

	metas := make([]*fixturestore.Metadata, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(metadataFetchers)
	for i, id := range ids {
		g.Go(func() error {
			meta, err := s.readMetadata(gctx, id)
			if errors.Is(err, fixturestore.ErrFixtureNotFound) {
				return nil // payload uploaded, metadata not yet
			}
			if err != nil {
				return err
			}
			metas[i] = meta
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, false, err
	}

	var all []*fixturestore.Fixture
	for _, meta := range metas {
		if meta == nil || (kind != "" && meta.Kind != kind) {
			continue
		}
		all = append(all, meta.Fixture())
	}

	page, hasMore := fixturestore.Paginate(all, after, before, limit, order)
	return page, hasMore, nil
}

// Close is a no-op for the S3 store.
func (s *Store) Close(_ context.Context) error {
	return nil
}

func (s *Store) readMetadata(ctx context.Context, id string) (*fixturestore.Metadata, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.metadataKey(id)),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("fixture %s: %w", id, fixturestore.ErrFixtureNotFound)
		}
		return nil, fmt.Errorf("get metadata: %w", err)
	}
	defer out.Body.Close()

	var meta fixturestore.Metadata
	if err := json.NewDecoder(out.Body).Decode(&meta); err != nil {
		return nil, fmt.Errorf("decode metadata for %s: %w", id, err)
	}
	return &meta, nil
}

// isNotFound checks whether the error indicates a missing S3 object.
func isNotFound(err error) bool {
	var nsk *s3types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	// Some S3-compatible services return a generic "NotFound" status.
	return strings.Contains(err.Error(), "NoSuchKey") || strings.Contains(err.Error(), "NotFound")
}
