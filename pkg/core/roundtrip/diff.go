// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

package roundtrip

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"sort"
	"strconv"
)

// Difference is one key-level mismatch between a payload and its re-encoding.
type Difference struct {
	Path string // "" for the payload itself
	Want any    // value in the original payload
	Got  any    // value after the round trip

	Added   bool // key only present after the round trip
	Dropped bool // key lost by the round trip
}

func (d Difference) String() string {
	path := d.Path
	if path == "" {
		path = "$"
	}
	switch {
	case d.Dropped:
		return fmt.Sprintf("%s: dropped (was %s)", path, render(d.Want))
	case d.Added:
		return fmt.Sprintf("%s: added (now %s)", path, render(d.Got))
	default:
		return fmt.Sprintf("%s: want %s, got %s", path, render(d.Want), render(d.Got))
	}
}

func render(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

// parse decodes a JSON document keeping numbers as json.Number.
func parse(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// differ compares two parsed JSON documents as sets of key/value pairs.
type differ struct {
	strictNulls bool
	out         []Difference
}

func (d *differ) compare(path string, want, got any) {
	switch w := want.(type) {
	case map[string]any:
		g, ok := got.(map[string]any)
		if !ok {
			d.changed(path, want, got)
			return
		}
		d.compareObjects(path, w, g)
	case []any:
		g, ok := got.([]any)
		if !ok || len(g) != len(w) {
			d.changed(path, want, got)
			return
		}
		for i := range w {
			d.compare(path+"["+strconv.Itoa(i)+"]", w[i], g[i])
		}
	case json.Number:
		g, ok := got.(json.Number)
		if !ok || !sameNumber(w, g) {
			d.changed(path, want, got)
		}
	default:
		if want != got {
			d.changed(path, want, got)
		}
	}
}

func (d *differ) compareObjects(path string, want, got map[string]any) {
	keys := make([]string, 0, len(want)+len(got))
	for k := range want {
		keys = append(keys, k)
	}
	for k := range got {
		if _, ok := want[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		p := k
		if path != "" {
			p = path + "." + k
		}
		w, inWant := want[k]
		g, inGot := got[k]
		switch {
		case inWant && inGot:
			d.compare(p, w, g)
		case inWant:
			if w == nil && !d.strictNulls {
				continue
			}
			d.out = append(d.out, Difference{Path: p, Want: w, Dropped: true})
		default:
			if g == nil && !d.strictNulls {
				continue
			}
			d.out = append(d.out, Difference{Path: p, Got: g, Added: true})
		}
	}
}

func (d *differ) changed(path string, want, got any) {
	d.out = append(d.out, Difference{Path: path, Want: want, Got: got})
}

// sameNumber compares two JSON numbers by value, so 1, 1.0 and 1e0 match.
func sameNumber(a, b json.Number) bool {
	if a == b {
		return true
	}
	x, ok := new(big.Rat).SetString(string(a))
	if !ok {
		return false
	}
	y, ok := new(big.Rat).SetString(string(b))
	if !ok {
		return false
	}
	return x.Cmp(y) == 0
}
