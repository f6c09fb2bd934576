// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

package s3_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"

	"github.com/leseb/watson-go/pkg/fixturestore"
	"github.com/leseb/watson-go/pkg/fixturestore/fixturestoretest"
	fss3 "github.com/leseb/watson-go/pkg/fixturestore/s3"
)

func TestS3Conformance(t *testing.T) {
	bucket := os.Getenv("WATSON_S3_BUCKET")
	endpoint := os.Getenv("WATSON_S3_ENDPOINT")
	if bucket == "" || endpoint == "" {
		t.Skip("Skipping S3 conformance tests: WATSON_S3_BUCKET and WATSON_S3_ENDPOINT must be set (e.g. with MinIO)")
	}

	region := os.Getenv("WATSON_S3_REGION")
	if region == "" {
		region = "us-east-1"
	}

	fixturestoretest.RunConformanceTests(t, func(t *testing.T) fixturestore.FixtureStore {
		store, err := fss3.New(context.Background(), fss3.Options{
			Bucket:   bucket,
			Region:   region,
			Prefix:   "conformance-" + uuid.NewString() + "/",
			Endpoint: endpoint,
		})
		if err != nil {
			t.Fatalf("s3.New: %v", err)
		}
		return store
	})
}

func TestS3_BucketRequired(t *testing.T) {
	if _, err := fss3.New(context.Background(), fss3.Options{}); err == nil {
		t.Fatal("expected error without bucket")
	}
}
