// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLeaf struct {
	Name  string   `json:"name,required"`
	Score *float64 `json:"score,omitempty"`
}

func (r *testLeaf) UnmarshalJSON(data []byte) error { return Unmarshal(data, r) }
func (r testLeaf) MarshalJSON() ([]byte, error)     { return Marshal(r) }

type testOpen struct {
	ID         string         `json:"id,required"`
	Tags       []string       `json:"tags,omitempty"`
	Leaf       *testLeaf      `json:"leaf,omitempty"`
	Leaves     []testLeaf     `json:"leaves,omitempty"`
	Count      int64          `json:"count"`
	Created    *DateTime      `json:"created,omitempty"`
	Additional map[string]any `json:"-" wire:"additional"`
}

func (r *testOpen) UnmarshalJSON(data []byte) error { return Unmarshal(data, r) }
func (r testOpen) MarshalJSON() ([]byte, error)     { return Marshal(r) }

func TestUnmarshal_KnownAndAdditional(t *testing.T) {
	input := `{"id":"a1","tags":["x"],"leaf":{"name":"n","score":0.5},"count":3,"extra":{"deep":[1,2.50,"s"]},"flag":true}`

	var rec testOpen
	require.NoError(t, json.Unmarshal([]byte(input), &rec))

	assert.Equal(t, "a1", rec.ID)
	assert.Equal(t, []string{"x"}, rec.Tags)
	require.NotNil(t, rec.Leaf)
	assert.Equal(t, 0.5, *rec.Leaf.Score)
	assert.Equal(t, int64(3), rec.Count)
	assert.Len(t, rec.Additional, 2)
	assert.Equal(t, true, rec.Additional["flag"])
	assert.NotContains(t, rec.Additional, "id")

	out, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(out))
}

func TestUnmarshal_NumbersInBagKeepText(t *testing.T) {
	input := `{"id":"a1","count":0,"big":12345678901234567890}`

	var rec testOpen
	require.NoError(t, json.Unmarshal([]byte(input), &rec))
	assert.Equal(t, json.Number("12345678901234567890"), rec.Additional["big"])

	out, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"big":12345678901234567890`)
}

func TestUnmarshal_MissingRequired(t *testing.T) {
	var rec testOpen
	err := json.Unmarshal([]byte(`{"tags":[]}`), &rec)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingField))

	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "testOpen", fe.Record)
	assert.Equal(t, "id", fe.Path)
}

func TestUnmarshal_NullRequiredIsMissing(t *testing.T) {
	var leaf testLeaf
	err := json.Unmarshal([]byte(`{"name":null}`), &leaf)
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestUnmarshal_TypeMismatchNamesKey(t *testing.T) {
	var rec testOpen
	err := json.Unmarshal([]byte(`{"id":"a","count":"three"}`), &rec)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTypeMismatch)

	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "count", fe.Path)
}

func TestUnmarshal_NestedErrorPath(t *testing.T) {
	var rec testOpen
	err := json.Unmarshal([]byte(`{"id":"a","leaves":[{"name":"ok"},{"score":1}]}`), &rec)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingField)

	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "testOpen", fe.Record)
	assert.Equal(t, "leaves[1].name", fe.Path)
	assert.Equal(t, "wire: testOpen.leaves[1].name: missing required field", err.Error())
}

func TestUnmarshal_NotAnObject(t *testing.T) {
	var rec testOpen
	err := Unmarshal([]byte(`["a"]`), &rec)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestUnmarshal_NullIsNoop(t *testing.T) {
	rec := testOpen{ID: "keep"}
	require.NoError(t, Unmarshal([]byte(`null`), &rec))
	assert.Equal(t, "keep", rec.ID)
}

func TestUnmarshal_RejectsNonPointer(t *testing.T) {
	err := Unmarshal([]byte(`{}`), testOpen{})
	assert.Error(t, err)
}

func TestMarshal_OmitsUnsetOptional(t *testing.T) {
	out, err := json.Marshal(testOpen{ID: "a"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"a","count":0}`, string(out))
	assert.NotContains(t, string(out), "null")
}

func TestMarshal_EmptySliceIsKept(t *testing.T) {
	out, err := json.Marshal(testOpen{ID: "a", Tags: []string{}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"a","tags":[],"count":0}`, string(out))
}

type testRequiredList struct {
	Items []string       `json:"items,required"`
	Attrs map[string]any `json:"attrs,required"`
}

func (r *testRequiredList) UnmarshalJSON(data []byte) error { return Unmarshal(data, r) }
func (r testRequiredList) MarshalJSON() ([]byte, error)     { return Marshal(r) }

func TestMarshal_NilRequiredCollectionsAreEmpty(t *testing.T) {
	out, err := json.Marshal(testRequiredList{})
	require.NoError(t, err)
	assert.Equal(t, `{"items":[],"attrs":{}}`, string(out))

	var back testRequiredList
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Empty(t, back.Items)
}

func TestMarshal_BagCannotShadowDeclaredKey(t *testing.T) {
	rec := testOpen{ID: "real", Additional: map[string]any{"id": "fake", "z": 1, "a": 2}}
	out, err := Marshal(rec)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"real","count":0,"a":2,"z":1}`, string(out))
}

func TestMarshalVariant_TagFirst(t *testing.T) {
	out, err := MarshalVariant("type", "leaf", testLeaf{Name: "n"})
	require.NoError(t, err)
	assert.Equal(t, `{"type":"leaf","name":"n"}`, string(out))
}

func TestPeekTag(t *testing.T) {
	tag, ok := PeekTag([]byte(`{"a":1,"type":"term"}`), "type")
	assert.True(t, ok)
	assert.Equal(t, "term", tag)

	_, ok = PeekTag([]byte(`{"type":4}`), "type")
	assert.False(t, ok)

	_, ok = PeekTag([]byte(`{"a":1}`), "type")
	assert.False(t, ok)
}

func TestDateTime_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		created string
		want    time.Time
	}{
		{"milliseconds", "2015-12-06T23:53:59.150Z", time.Date(2015, 12, 6, 23, 53, 59, 150_000_000, time.UTC)},
		{"seconds only", "2015-12-06T23:53:59Z", time.Date(2015, 12, 6, 23, 53, 59, 0, time.UTC)},
		{"microseconds", "2015-12-06T23:53:59.153456Z", time.Date(2015, 12, 6, 23, 53, 59, 153_456_000, time.UTC)},
		{"numeric zero offset", "2015-12-06T23:53:59.153+00:00", time.Date(2015, 12, 6, 23, 53, 59, 153_000_000, time.UTC)},
		{"non-UTC offset", "2015-12-07T01:53:59+02:00", time.Date(2015, 12, 6, 23, 53, 59, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := `{"id":"a","count":0,"created":"` + tt.created + `"}`

			var rec testOpen
			require.NoError(t, json.Unmarshal([]byte(input), &rec))
			require.NotNil(t, rec.Created)
			assert.True(t, tt.want.Equal(rec.Created.Time), "decoded %v", rec.Created.Time)

			out, err := json.Marshal(rec)
			require.NoError(t, err)
			assert.Equal(t, input, string(out))
		})
	}
}

func TestDateTime_BuiltInGoUsesLayout(t *testing.T) {
	d := DateTime{Time: time.Date(2015, 12, 6, 23, 53, 59, 153_456_000, time.UTC)}
	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2015-12-06T23:53:59.153Z"`, string(out))
}

func TestDateTime_ChangedTimeDropsSourceText(t *testing.T) {
	var d DateTime
	require.NoError(t, json.Unmarshal([]byte(`"2015-12-06T23:53:59Z"`), &d))

	d.Time = d.Add(time.Hour)
	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2015-12-07T00:53:59.000Z"`, string(out))
}

func TestDateTime_RejectsNonString(t *testing.T) {
	var rec testOpen
	err := json.Unmarshal([]byte(`{"id":"a","created":17}`), &rec)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, []string{"id", "tags", "leaf", "leaves", "count", "created"}, Keys(&testOpen{}))
}

type badRecord struct {
	A string `json:"a"`
	B string `json:"a"`
}

func TestSchema_DuplicateKeyPanics(t *testing.T) {
	assert.Panics(t, func() { _ = Unmarshal([]byte(`{}`), &badRecord{}) })
}
