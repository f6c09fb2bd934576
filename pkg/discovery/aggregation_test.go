// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

package discovery

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leseb/watson-go/pkg/core/wire"
)

func TestDecodeQueryAggregation_UnknownTagFallsBack(t *testing.T) {
	input := `{"type": "future_unknown_kind", "matching_results": 5}`

	agg, err := DecodeQueryAggregation([]byte(input))
	require.NoError(t, err)

	g, ok := agg.(*GenericAggregation)
	require.True(t, ok, "got %T", agg)
	assert.Equal(t, "future_unknown_kind", g.AggregationType())
	require.NotNil(t, g.MatchingResults)
	assert.Equal(t, int64(5), *g.MatchingResults)

	out, err := json.Marshal(agg)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(out))
}

func TestDecodeQueryAggregation_MissingTag(t *testing.T) {
	input := `{"matching_results": 2, "field": "author", "results": [{"key": "ann", "matching_results": 2}]}`

	agg, err := DecodeQueryAggregation([]byte(input))
	require.NoError(t, err)

	g, ok := agg.(*GenericAggregation)
	require.True(t, ok)
	assert.Nil(t, g.Type)
	assert.Equal(t, "", g.AggregationType())
	assert.Equal(t, "author", g.Additional["field"])
	assert.Len(t, g.Common().Results, 1)

	out, err := json.Marshal(agg)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(out))
}

func TestDecodeQueryAggregation_KnownTags(t *testing.T) {
	tests := []struct {
		input string
		want  QueryAggregation
	}{
		{`{"type": "term", "field": "enriched_text.entities.text", "count": 10, "matching_results": 40}`, &Term{}},
		{`{"type": "filter", "match": "enriched_text.sentiment.document.label:positive", "matching_results": 7}`, &Filter{}},
		{`{"type": "nested", "path": "enriched_text.entities", "matching_results": 3}`, &Nested{}},
		{`{"type": "histogram", "field": "price", "interval": 100, "results": [{"key": "0", "matching_results": 4}]}`, &Histogram{}},
		{`{"type": "timeslice", "field": "publication_date", "interval": "1day", "anomaly": true}`, &Timeslice{}},
		{`{"type": "top_hits", "size": 1, "hits": {"matching_results": 9, "hits": [{"id": "doc1", "title": "Annual report", "result_metadata": {"score": 1.25}}]}}`, &TopHits{}},
		{`{"type": "unique_count", "field": "author", "value": 12}`, &UniqueCount{}},
		{`{"type": "max", "field": "price", "value": 999.5}`, &Max{}},
		{`{"type": "min", "field": "price", "value": 0.5}`, &Min{}},
		{`{"type": "average", "field": "price", "value": 42.25}`, &Average{}},
		{`{"type": "sum", "field": "price", "value": 1024}`, &Sum{}},
	}

	for _, tt := range tests {
		t.Run(tt.want.AggregationType(), func(t *testing.T) {
			agg, err := DecodeQueryAggregation([]byte(tt.input))
			require.NoError(t, err)
			assert.IsType(t, tt.want, agg)
			assert.Equal(t, tt.want.AggregationType(), agg.AggregationType())

			out, err := json.Marshal(agg)
			require.NoError(t, err)
			assert.JSONEq(t, tt.input, string(out))
		})
	}
}

func TestDecodeQueryAggregation_Nested(t *testing.T) {
	input := `{
	  "type": "term",
	  "field": "enriched_text.entities.type",
	  "results": [{
	    "key": "Company",
	    "matching_results": 12,
	    "aggregations": [
	      {"type": "max", "field": "revenue", "value": 3.5},
	      {"type": "brand_new", "window": "7d"}
	    ]
	  }]
	}`

	agg, err := DecodeQueryAggregation([]byte(input))
	require.NoError(t, err)
	term := agg.(*Term)
	require.Len(t, term.Results, 1)

	sub := term.Results[0].Aggregations
	require.Len(t, sub, 2)
	m, ok := sub[0].(*Max)
	require.True(t, ok)
	assert.Equal(t, 3.5, *m.Value)
	assert.Equal(t, "brand_new", sub[1].AggregationType())

	out, err := json.Marshal(agg)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(out))
}

func TestDecodeQueryAggregation_VariantMismatch(t *testing.T) {
	_, err := DecodeQueryAggregation([]byte(`{"type": "term", "count": "many"}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, wire.ErrVariantMismatch))
	assert.True(t, errors.Is(err, wire.ErrTypeMismatch))
	assert.Contains(t, err.Error(), "term")
}

func TestDecodeQueryAggregation_NotAnObject(t *testing.T) {
	for _, input := range []string{`[1, 2]`, `"term"`, `null`, `{`} {
		_, err := DecodeQueryAggregation([]byte(input))
		assert.True(t, errors.Is(err, wire.ErrTypeMismatch), "input %s", input)
	}
}

func TestAggregationList_ErrorPath(t *testing.T) {
	var resp QueryResponse
	err := json.Unmarshal([]byte(`{"aggregations": [{"type": "term"}, {"type": "max", "value": "high"}]}`), &resp)
	require.Error(t, err)

	var fe *wire.FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "QueryResponse", fe.Record)
	assert.Equal(t, "aggregations[1]", fe.Path)
	assert.True(t, errors.Is(err, wire.ErrVariantMismatch))
}

func TestAggregationList_Null(t *testing.T) {
	var l AggregationList
	require.NoError(t, json.Unmarshal([]byte(`null`), &l))
	assert.Nil(t, l)

	err := json.Unmarshal([]byte(`{"type": "term"}`), &l)
	assert.True(t, errors.Is(err, wire.ErrTypeMismatch))
}

func TestMarshalVariant_TagFirst(t *testing.T) {
	out, err := json.Marshal(&Term{Field: wire.Ptr("author"), Count: wire.Ptr(int64(5))})
	require.NoError(t, err)
	assert.Equal(t, `{"type":"term","field":"author","count":5}`, string(out))

	out, err = json.Marshal(&Sum{Calculation{Field: wire.Ptr("price")}})
	require.NoError(t, err)
	assert.Equal(t, `{"type":"sum","field":"price"}`, string(out))
}

func TestAggregationList_NilElement(t *testing.T) {
	_, err := json.Marshal(AggregationList{&Term{}, nil})
	assert.Error(t, err)
}
