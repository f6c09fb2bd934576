// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/tidwall/gjson"
)

var unmarshalerT = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()

// Unmarshal decodes the JSON object in data into the record pointed to by v.
//
// A JSON null leaves v untouched. Required keys that are absent or null fail
// with ErrMissingField; values of the wrong shape fail with ErrTypeMismatch.
// Keys outside the declared set are kept in the record's additional
// properties bag when it has one and are dropped otherwise.
func Unmarshal(data []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("wire: Unmarshal needs a non-nil pointer to a struct, got %T", v)
	}
	return decodeRecord(data, rv.Elem())
}

func decodeRecord(data []byte, rv reflect.Value) error {
	s := schemaOf(rv.Type())

	if !gjson.ValidBytes(data) {
		return &FieldError{Record: s.name, Kind: ErrTypeMismatch, Err: errors.New("invalid JSON")}
	}
	doc := gjson.ParseBytes(data)
	if doc.Type == gjson.Null {
		return nil
	}
	if !doc.IsObject() {
		return &FieldError{Record: s.name, Kind: ErrTypeMismatch, Err: fmt.Errorf("expected object, got %s", describe(doc))}
	}

	members := make(map[string]gjson.Result)
	doc.ForEach(func(key, value gjson.Result) bool {
		members[key.String()] = value
		return true
	})

	for _, f := range s.fields {
		value, ok := members[f.key]
		if !ok || value.Type == gjson.Null {
			if f.required {
				return &FieldError{Record: s.name, Path: f.key, Kind: ErrMissingField}
			}
			continue
		}
		if err := decodeValue(rv.Field(f.index), value); err != nil {
			return rootAt(s.name, f.key, err)
		}
	}

	if s.additional < 0 {
		return nil
	}
	var extra map[string]any
	for key, value := range members {
		if _, declared := s.known[key]; declared {
			continue
		}
		var x any
		if err := decodeJSON([]byte(value.Raw), &x); err != nil {
			return rootAt(s.name, key, err)
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[key] = x
	}
	rv.Field(s.additional).Set(reflect.ValueOf(extra))
	return nil
}

// decodeValue decodes one member into fv. Plain slices are decoded element
// by element so errors can name the failing index.
func decodeValue(fv reflect.Value, value gjson.Result) error {
	t := fv.Type()
	if t.Kind() == reflect.Slice && value.IsArray() &&
		t.Elem().Kind() != reflect.Uint8 && !reflect.PointerTo(t).Implements(unmarshalerT) {
		elems := value.Array()
		out := reflect.MakeSlice(t, len(elems), len(elems))
		for i, elem := range elems {
			if err := decodeJSON([]byte(elem.Raw), out.Index(i).Addr().Interface()); err != nil {
				return rootAt("", "["+strconv.Itoa(i)+"]", err)
			}
		}
		fv.Set(out)
		return nil
	}
	return decodeJSON([]byte(value.Raw), fv.Addr().Interface())
}

// decodeJSON keeps untyped numbers as json.Number so they re-encode verbatim.
func decodeJSON(raw []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	return dec.Decode(v)
}

func describe(r gjson.Result) string {
	switch {
	case r.IsArray():
		return "array"
	case r.Type == gjson.String:
		return "string"
	case r.Type == gjson.Number:
		return "number"
	case r.Type == gjson.True, r.Type == gjson.False:
		return "boolean"
	default:
		return "unknown"
	}
}
