// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

package fixturestore

import (
	"strings"
	"testing"
	"time"
)

func ids(fs []*Fixture) string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.ID
	}
	return strings.Join(out, ",")
}

func sample() []*Fixture {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return []*Fixture{
		{ID: "c", CreatedAt: base.Add(2 * time.Second)},
		{ID: "a", CreatedAt: base},
		{ID: "b2", CreatedAt: base.Add(time.Second)},
		{ID: "b1", CreatedAt: base.Add(time.Second)},
		{ID: "d", CreatedAt: base.Add(3 * time.Second)},
	}
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name          string
		after, before string
		limit         int
		order         string
		want          string
		wantMore      bool
	}{
		{name: "all asc", limit: 10, order: "asc", want: "a,b1,b2,c,d"},
		{name: "all desc", limit: 10, order: "desc", want: "d,c,b2,b1,a"},
		{name: "limited", limit: 2, order: "asc", want: "a,b1", wantMore: true},
		{name: "after", after: "b1", limit: 10, order: "asc", want: "b2,c,d"},
		{name: "after and limit", after: "a", limit: 3, order: "asc", want: "b1,b2,c", wantMore: true},
		{name: "before", before: "c", limit: 10, order: "asc", want: "a,b1,b2"},
		{name: "window", after: "a", before: "d", limit: 10, order: "asc", want: "b1,b2,c"},
		{name: "exact fit", after: "a", before: "c", limit: 2, order: "asc", want: "b1,b2"},
		{name: "unknown after", after: "zz", limit: 10, order: "asc", want: ""},
		{name: "unknown before", before: "zz", limit: 10, order: "asc", want: "a,b1,b2,c,d"},
		{name: "desc after", after: "c", limit: 10, order: "desc", want: "b2,b1,a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, more := Paginate(sample(), tt.after, tt.before, tt.limit, tt.order)
			if ids(got) != tt.want {
				t.Errorf("page = %q, want %q", ids(got), tt.want)
			}
			if more != tt.wantMore {
				t.Errorf("hasMore = %v, want %v", more, tt.wantMore)
			}
		})
	}
}

func TestNormalizeLimit(t *testing.T) {
	for in, want := range map[int]int{0: 50, -3: 50, 7: 7, 100: 100, 101: 100} {
		if got := NormalizeLimit(in); got != want {
			t.Errorf("NormalizeLimit(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestNew(t *testing.T) {
	f := New("assistant.Context", "ctx.json", []byte(`{}`))
	if !strings.HasPrefix(f.ID, "fx_") {
		t.Errorf("ID = %q, want fx_ prefix", f.ID)
	}
	if f.Bytes != 2 {
		t.Errorf("Bytes = %d, want 2", f.Bytes)
	}
	if f.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}

	m := MetadataOf(f)
	back := m.Fixture()
	if back.ID != f.ID || back.Kind != f.Kind || back.Content != nil {
		t.Errorf("metadata round trip lost data: %+v", back)
	}
}
