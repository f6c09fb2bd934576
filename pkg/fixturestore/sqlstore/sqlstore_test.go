// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

package sqlstore

import "testing"

func TestQueryPlaceholders(t *testing.T) {
	pg := &Store{dialect: Postgres}
	got := pg.query(`SELECT id FROM fixtures WHERE kind = ? AND id > ? LIMIT ?`)
	want := `SELECT id FROM fixtures WHERE kind = $1 AND id > $2 LIMIT $3`
	if got != want {
		t.Errorf("postgres query = %q, want %q", got, want)
	}

	lite := &Store{dialect: SQLite}
	q := `SELECT id FROM fixtures WHERE id = ?`
	if got := lite.query(q); got != q {
		t.Errorf("sqlite query rewritten to %q", got)
	}
}

func TestPrecedes(t *testing.T) {
	a := position{createdAt: 1, id: "a"}
	b := position{createdAt: 1, id: "b"}
	c := position{createdAt: 2, id: "a"}

	tests := []struct {
		name string
		x, y position
		desc bool
		want bool
	}{
		{"earlier time", a, c, false, true},
		{"later time", c, a, false, false},
		{"tie broken by id", a, b, false, true},
		{"same position", a, a, false, false},
		{"desc reverses", c, a, true, true},
		{"desc tie", b, a, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := precedes(tt.x, tt.y, tt.desc); got != tt.want {
				t.Errorf("precedes(%v, %v, desc=%v) = %v, want %v", tt.x, tt.y, tt.desc, got, tt.want)
			}
		})
	}
}
