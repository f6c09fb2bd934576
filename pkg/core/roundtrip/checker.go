// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

// Package roundtrip verifies that payloads survive a decode and re-encode
// through their record type unchanged, compared as sets of key/value pairs.
// It is how captured service responses are checked against the models.
package roundtrip

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/leseb/watson-go/pkg/catalog"
	"github.com/leseb/watson-go/pkg/observability/logging"
)

// DefaultConcurrency bounds CheckAll when Checker.Concurrency is unset.
const DefaultConcurrency = 4

// Report is the outcome of checking one payload.
type Report struct {
	Kind  string
	Label string // caller supplied, e.g. a file name or fixture ID

	OK bool

	// DecodeErr is set when the payload does not decode into Kind.
	DecodeErr error

	Differences []Difference
}

func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s): ", r.Label, r.Kind)
	switch {
	case r.DecodeErr != nil:
		fmt.Fprintf(&b, "decode failed: %v", r.DecodeErr)
	case r.OK:
		b.WriteString("ok")
	default:
		fmt.Fprintf(&b, "%d difference(s)", len(r.Differences))
		for _, d := range r.Differences {
			b.WriteString("\n  ")
			b.WriteString(d.String())
		}
	}
	return b.String()
}

// Item is one payload to check.
type Item struct {
	Kind    catalog.Kind
	Label   string
	Payload []byte
}

// Checker runs round-trip checks. The zero value is ready to use.
type Checker struct {
	// Concurrency bounds CheckAll. Zero means DefaultConcurrency.
	Concurrency int

	// StrictNulls reports an explicit null for an optional key that the
	// re-encoding omits. By default null and absent are equivalent.
	StrictNulls bool

	Logger *logging.Logger
}

// Check decodes payload as kind, re-encodes it and compares the two. A
// payload that fails to decode yields a report with DecodeErr set, not an
// error; err is only returned when ctx is done or re-encoding fails.
func (c *Checker) Check(ctx context.Context, kind catalog.Kind, payload []byte) (Report, error) {
	return c.check(ctx, Item{Kind: kind, Payload: payload})
}

func (c *Checker) check(ctx context.Context, item Item) (Report, error) {
	rep := Report{Kind: item.Kind.Name, Label: item.Label}
	if err := ctx.Err(); err != nil {
		return rep, err
	}

	v, err := item.Kind.Decode(item.Payload)
	if err != nil {
		rep.DecodeErr = err
		c.logger().Debug("payload failed to decode", "kind", rep.Kind, "label", rep.Label, "error", err)
		return rep, nil
	}

	out, err := json.Marshal(v)
	if err != nil {
		return rep, fmt.Errorf("re-encode %s: %w", rep.Kind, err)
	}

	want, err := parse(item.Payload)
	if err != nil {
		return rep, fmt.Errorf("parse %s payload: %w", rep.Kind, err)
	}
	got, err := parse(out)
	if err != nil {
		return rep, fmt.Errorf("parse re-encoded %s: %w", rep.Kind, err)
	}

	d := &differ{strictNulls: c.StrictNulls}
	d.compare("", want, got)
	rep.Differences = d.out
	rep.OK = len(d.out) == 0

	c.logger().Debug("payload checked", "kind", rep.Kind, "label", rep.Label, "ok", rep.OK, "differences", len(d.out))
	return rep, nil
}

// CheckAll checks every item with bounded parallelism and returns the
// reports in input order. It stops at the first error.
func (c *Checker) CheckAll(ctx context.Context, items []Item) ([]Report, error) {
	reports := make([]Report, len(items))

	limit := c.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, item := range items {
		g.Go(func() error {
			rep, err := c.check(gctx, item)
			if err != nil {
				return err
			}
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func (c *Checker) logger() *logging.Logger {
	if c.Logger == nil {
		return logging.Discard()
	}
	return c.Logger
}
