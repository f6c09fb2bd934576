// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

package memory_test

import (
	"testing"

	"github.com/leseb/watson-go/pkg/fixturestore"
	"github.com/leseb/watson-go/pkg/fixturestore/fixturestoretest"
	"github.com/leseb/watson-go/pkg/fixturestore/memory"
)

func TestMemoryConformance(t *testing.T) {
	fixturestoretest.RunConformanceTests(t, func(t *testing.T) fixturestore.FixtureStore {
		return memory.New()
	})
}
