// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

package fixturestore

import (
	"sort"
)

const (
	DefaultLimit = 50
	MaxLimit     = 100
)

// NormalizeLimit applies the default and maximum page sizes.
func NormalizeLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}

// Paginate sorts all by creation time (ties broken by ID) and cuts one page
// out of it. An unknown after cursor yields an empty page; an unknown before
// cursor is ignored. Backends that cannot page natively share it.
func Paginate(all []*Fixture, after, before string, limit int, order string) ([]*Fixture, bool) {
	limit = NormalizeLimit(limit)

	sort.Slice(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if order == "desc" {
			a, b = b, a
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	start := 0
	if after != "" {
		start = len(all)
		for i, f := range all {
			if f.ID == after {
				start = i + 1
				break
			}
		}
	}

	end := len(all)
	if before != "" {
		for i := start; i < len(all); i++ {
			if all[i].ID == before {
				end = i
				break
			}
		}
	}

	page := all[start:end]
	if len(page) > limit {
		return page[:limit], true
	}
	return page, false
}
