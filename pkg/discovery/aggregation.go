// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

package discovery

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/leseb/watson-go/pkg/core/wire"
)

// Aggregation type tags.
const (
	AggregationTypeTerm        = "term"
	AggregationTypeFilter      = "filter"
	AggregationTypeNested      = "nested"
	AggregationTypeHistogram   = "histogram"
	AggregationTypeTimeslice   = "timeslice"
	AggregationTypeTopHits     = "top_hits"
	AggregationTypeUniqueCount = "unique_count"
	AggregationTypeMax         = "max"
	AggregationTypeMin         = "min"
	AggregationTypeAverage     = "average"
	AggregationTypeSum         = "sum"
)

// tagKey is the discriminator member of every aggregation object.
const tagKey = "type"

// QueryAggregation is one aggregation of a query response. It is one of
// *Term, *Filter, *Nested, *Histogram, *Timeslice, *TopHits, *UniqueCount,
// *Max, *Min, *Average, *Sum or *GenericAggregation.
type QueryAggregation interface {
	// AggregationType returns the discriminator written on encode.
	AggregationType() string

	// Common returns the members every aggregation kind shares.
	Common() AggregationCommon

	isQueryAggregation()
}

// AggregationCommon is the part of an aggregation shared by all kinds.
type AggregationCommon struct {
	Results         []AggregationResult
	MatchingResults *int64
	Aggregations    AggregationList
}

// DecodeQueryAggregation decodes one aggregation object. The "type" member
// is read first without decoding anything else; a known tag selects the
// variant, while a missing or unknown tag falls back to
// GenericAggregation. A known tag whose body does not fit its variant fails
// with wire.ErrVariantMismatch.
func DecodeQueryAggregation(data []byte) (QueryAggregation, error) {
	if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsObject() {
		return nil, &wire.FieldError{
			Record: "QueryAggregation",
			Kind:   wire.ErrTypeMismatch,
			Err:    errors.New("expected object"),
		}
	}
	tag, _ := wire.PeekTag(data, tagKey)

	var agg QueryAggregation
	switch tag {
	case AggregationTypeTerm:
		agg = &Term{}
	case AggregationTypeFilter:
		agg = &Filter{}
	case AggregationTypeNested:
		agg = &Nested{}
	case AggregationTypeHistogram:
		agg = &Histogram{}
	case AggregationTypeTimeslice:
		agg = &Timeslice{}
	case AggregationTypeTopHits:
		agg = &TopHits{}
	case AggregationTypeUniqueCount:
		agg = &UniqueCount{}
	case AggregationTypeMax:
		agg = &Max{}
	case AggregationTypeMin:
		agg = &Min{}
	case AggregationTypeAverage:
		agg = &Average{}
	case AggregationTypeSum:
		agg = &Sum{}
	default:
		g := &GenericAggregation{}
		if err := json.Unmarshal(data, g); err != nil {
			return nil, err
		}
		return g, nil
	}

	if err := json.Unmarshal(data, agg); err != nil {
		return nil, &wire.FieldError{
			Record: "QueryAggregation",
			Kind:   wire.ErrVariantMismatch,
			Err:    fmt.Errorf("%s: %w", tag, err),
		}
	}
	return agg, nil
}

// AggregationList is a list of aggregations of mixed kinds.
type AggregationList []QueryAggregation

func (l *AggregationList) UnmarshalJSON(data []byte) error {
	r := gjson.ParseBytes(data)
	if r.Type == gjson.Null {
		*l = nil
		return nil
	}
	if !r.IsArray() {
		return &wire.FieldError{
			Record: "AggregationList",
			Kind:   wire.ErrTypeMismatch,
			Err:    errors.New("expected array"),
		}
	}

	elems := r.Array()
	out := make(AggregationList, len(elems))
	for i, elem := range elems {
		agg, err := DecodeQueryAggregation([]byte(elem.Raw))
		if err != nil {
			return wire.At("AggregationList", "["+strconv.Itoa(i)+"]", err)
		}
		out[i] = agg
	}
	*l = out
	return nil
}

// MarshalJSON encodes every element with its own discriminator. A nil
// element is an error rather than a silent null.
func (l AggregationList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("null"), nil
	}
	elems := make([]json.RawMessage, len(l))
	for i, agg := range l {
		if agg == nil {
			return nil, fmt.Errorf("discovery: aggregations[%d] is nil", i)
		}
		b, err := json.Marshal(agg)
		if err != nil {
			return nil, err
		}
		elems[i] = b
	}
	return json.Marshal(elems)
}

// AggregationResult is one bucket of an aggregation.
type AggregationResult struct {
	Key             *string         `json:"key,omitempty"`
	MatchingResults *int64          `json:"matching_results,omitempty"`
	Aggregations    AggregationList `json:"aggregations,omitempty"`
}

func (r *AggregationResult) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r AggregationResult) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// GenericAggregation is an aggregation of a kind this package does not know.
// Type keeps the tag as received, if any, and every type-specific member is
// kept in Additional.
type GenericAggregation struct {
	Type            *string             `json:"type,omitempty"`
	Results         []AggregationResult `json:"results,omitempty"`
	MatchingResults *int64              `json:"matching_results,omitempty"`
	Aggregations    AggregationList     `json:"aggregations,omitempty"`
	Additional      map[string]any      `json:"-" wire:"additional"`
}

func (r *GenericAggregation) AggregationType() string {
	if r.Type == nil {
		return ""
	}
	return *r.Type
}

func (r *GenericAggregation) Common() AggregationCommon {
	return AggregationCommon{Results: r.Results, MatchingResults: r.MatchingResults, Aggregations: r.Aggregations}
}

func (*GenericAggregation) isQueryAggregation() {}

func (r *GenericAggregation) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r GenericAggregation) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// Term groups results by the values of a field.
type Term struct {
	Results         []AggregationResult `json:"results,omitempty"`
	MatchingResults *int64              `json:"matching_results,omitempty"`
	Aggregations    AggregationList     `json:"aggregations,omitempty"`
	Field           *string             `json:"field,omitempty"`
	Count           *int64              `json:"count,omitempty"`
}

func (*Term) AggregationType() string { return AggregationTypeTerm }
func (r *Term) Common() AggregationCommon {
	return AggregationCommon{Results: r.Results, MatchingResults: r.MatchingResults, Aggregations: r.Aggregations}
}
func (*Term) isQueryAggregation() {}

func (r *Term) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r Term) MarshalJSON() ([]byte, error) {
	return wire.MarshalVariant(tagKey, AggregationTypeTerm, r)
}

// Filter narrows the results with a query filter.
type Filter struct {
	Results         []AggregationResult `json:"results,omitempty"`
	MatchingResults *int64              `json:"matching_results,omitempty"`
	Aggregations    AggregationList     `json:"aggregations,omitempty"`
	Match           *string             `json:"match,omitempty"`
}

func (*Filter) AggregationType() string { return AggregationTypeFilter }
func (r *Filter) Common() AggregationCommon {
	return AggregationCommon{Results: r.Results, MatchingResults: r.MatchingResults, Aggregations: r.Aggregations}
}
func (*Filter) isQueryAggregation() {}

func (r *Filter) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r Filter) MarshalJSON() ([]byte, error) {
	return wire.MarshalVariant(tagKey, AggregationTypeFilter, r)
}

// Nested applies sub-aggregations to a nested document path.
type Nested struct {
	Results         []AggregationResult `json:"results,omitempty"`
	MatchingResults *int64              `json:"matching_results,omitempty"`
	Aggregations    AggregationList     `json:"aggregations,omitempty"`
	Path            *string             `json:"path,omitempty"`
}

func (*Nested) AggregationType() string { return AggregationTypeNested }
func (r *Nested) Common() AggregationCommon {
	return AggregationCommon{Results: r.Results, MatchingResults: r.MatchingResults, Aggregations: r.Aggregations}
}
func (*Nested) isQueryAggregation() {}

func (r *Nested) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r Nested) MarshalJSON() ([]byte, error) {
	return wire.MarshalVariant(tagKey, AggregationTypeNested, r)
}

// Histogram buckets a numeric field by a fixed interval.
type Histogram struct {
	Results         []AggregationResult `json:"results,omitempty"`
	MatchingResults *int64              `json:"matching_results,omitempty"`
	Aggregations    AggregationList     `json:"aggregations,omitempty"`
	Field           *string             `json:"field,omitempty"`
	Interval        *int64              `json:"interval,omitempty"`
}

func (*Histogram) AggregationType() string { return AggregationTypeHistogram }
func (r *Histogram) Common() AggregationCommon {
	return AggregationCommon{Results: r.Results, MatchingResults: r.MatchingResults, Aggregations: r.Aggregations}
}
func (*Histogram) isQueryAggregation() {}

func (r *Histogram) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r Histogram) MarshalJSON() ([]byte, error) {
	return wire.MarshalVariant(tagKey, AggregationTypeHistogram, r)
}

// Timeslice buckets a date field by a calendar interval such as "1day".
type Timeslice struct {
	Results         []AggregationResult `json:"results,omitempty"`
	MatchingResults *int64              `json:"matching_results,omitempty"`
	Aggregations    AggregationList     `json:"aggregations,omitempty"`
	Field           *string             `json:"field,omitempty"`
	Interval        *string             `json:"interval,omitempty"`
	Anomaly         *bool               `json:"anomaly,omitempty"`
}

func (*Timeslice) AggregationType() string { return AggregationTypeTimeslice }
func (r *Timeslice) Common() AggregationCommon {
	return AggregationCommon{Results: r.Results, MatchingResults: r.MatchingResults, Aggregations: r.Aggregations}
}
func (*Timeslice) isQueryAggregation() {}

func (r *Timeslice) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r Timeslice) MarshalJSON() ([]byte, error) {
	return wire.MarshalVariant(tagKey, AggregationTypeTimeslice, r)
}

// TopHits returns the best matching documents of each bucket.
type TopHits struct {
	Results         []AggregationResult `json:"results,omitempty"`
	MatchingResults *int64              `json:"matching_results,omitempty"`
	Aggregations    AggregationList     `json:"aggregations,omitempty"`
	Size            *int64              `json:"size,omitempty"`
	Hits            *TopHitsResults     `json:"hits,omitempty"`
}

func (*TopHits) AggregationType() string { return AggregationTypeTopHits }
func (r *TopHits) Common() AggregationCommon {
	return AggregationCommon{Results: r.Results, MatchingResults: r.MatchingResults, Aggregations: r.Aggregations}
}
func (*TopHits) isQueryAggregation() {}

func (r *TopHits) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r TopHits) MarshalJSON() ([]byte, error) {
	return wire.MarshalVariant(tagKey, AggregationTypeTopHits, r)
}

type TopHitsResults struct {
	MatchingResults *int64        `json:"matching_results,omitempty"`
	Hits            []QueryResult `json:"hits,omitempty"`
}

func (r *TopHitsResults) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r TopHitsResults) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// UniqueCount counts the distinct values of a field.
type UniqueCount struct {
	Results         []AggregationResult `json:"results,omitempty"`
	MatchingResults *int64              `json:"matching_results,omitempty"`
	Aggregations    AggregationList     `json:"aggregations,omitempty"`
	Field           *string             `json:"field,omitempty"`
	Value           *float64            `json:"value,omitempty"`
}

func (*UniqueCount) AggregationType() string { return AggregationTypeUniqueCount }
func (r *UniqueCount) Common() AggregationCommon {
	return AggregationCommon{Results: r.Results, MatchingResults: r.MatchingResults, Aggregations: r.Aggregations}
}
func (*UniqueCount) isQueryAggregation() {}

func (r *UniqueCount) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r UniqueCount) MarshalJSON() ([]byte, error) {
	return wire.MarshalVariant(tagKey, AggregationTypeUniqueCount, r)
}

// Calculation is the body shared by the max, min, average and sum
// aggregations: a numeric field and the computed value.
type Calculation struct {
	Results         []AggregationResult `json:"results,omitempty"`
	MatchingResults *int64              `json:"matching_results,omitempty"`
	Aggregations    AggregationList     `json:"aggregations,omitempty"`
	Field           *string             `json:"field,omitempty"`
	Value           *float64            `json:"value,omitempty"`
}

func (r *Calculation) Common() AggregationCommon {
	return AggregationCommon{Results: r.Results, MatchingResults: r.MatchingResults, Aggregations: r.Aggregations}
}

// Max is the largest value of a numeric field.
type Max struct{ Calculation }

func (*Max) AggregationType() string { return AggregationTypeMax }
func (*Max) isQueryAggregation()     {}

func (r *Max) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, &r.Calculation) }
func (r Max) MarshalJSON() ([]byte, error) {
	return wire.MarshalVariant(tagKey, AggregationTypeMax, r.Calculation)
}

// Min is the smallest value of a numeric field.
type Min struct{ Calculation }

func (*Min) AggregationType() string { return AggregationTypeMin }
func (*Min) isQueryAggregation()     {}

func (r *Min) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, &r.Calculation) }
func (r Min) MarshalJSON() ([]byte, error) {
	return wire.MarshalVariant(tagKey, AggregationTypeMin, r.Calculation)
}

// Average is the mean value of a numeric field.
type Average struct{ Calculation }

func (*Average) AggregationType() string { return AggregationTypeAverage }
func (*Average) isQueryAggregation()     {}

func (r *Average) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, &r.Calculation) }
func (r Average) MarshalJSON() ([]byte, error) {
	return wire.MarshalVariant(tagKey, AggregationTypeAverage, r.Calculation)
}

// Sum is the total of a numeric field.
type Sum struct{ Calculation }

func (*Sum) AggregationType() string { return AggregationTypeSum }
func (*Sum) isQueryAggregation()     {}

func (r *Sum) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, &r.Calculation) }
func (r Sum) MarshalJSON() ([]byte, error) {
	return wire.MarshalVariant(tagKey, AggregationTypeSum, r.Calculation)
}
