// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

// Package discovery holds the request and response records of the Watson
// Discovery v1 API: environments, collections, documents, queries with their
// aggregations, training data and query expansions.
//
// Query aggregations form a tagged union discriminated by their "type" key.
// Use DecodeQueryAggregation to decode a single aggregation and
// AggregationList wherever a list of them appears. Aggregation kinds this
// package does not know decode into GenericAggregation instead of failing.
package discovery
