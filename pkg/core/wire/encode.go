// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
)

// Marshal encodes the record v as one flat JSON object: declared fields in
// declaration order, then the additional properties sorted by key. Optional
// fields that are unset are omitted, never written as null; required slices
// and maps that are nil are written as [] and {} so the output decodes again. Bag entries whose
// key collides with a declared key are skipped.
func Marshal(v any) ([]byte, error) {
	return marshal(v, "", "")
}

// MarshalVariant encodes v like Marshal but writes key:tag as the first
// member. It is used by tagged unions to re-inject their discriminator.
func MarshalVariant(key, tag string, v any) ([]byte, error) {
	return marshal(v, key, tag)
}

func marshal(v any, tagKey, tag string) ([]byte, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return []byte("null"), nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("wire: Marshal needs a struct, got %T", v)
	}
	s := schemaOf(rv.Type())

	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	write := func(key string, value any) error {
		b, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("wire: encode %s.%s: %w", s.name, key, err)
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, _ := json.Marshal(key)
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(b)
		return nil
	}

	if tagKey != "" {
		if err := write(tagKey, tag); err != nil {
			return nil, err
		}
	}

	for _, f := range s.fields {
		if f.key == tagKey {
			continue
		}
		fv := rv.Field(f.index)
		if f.optional && isUnset(fv) {
			continue
		}
		value := fv.Interface()
		if f.required {
			value = emptyIfNil(fv)
		}
		if err := write(f.key, value); err != nil {
			return nil, err
		}
	}

	if s.additional >= 0 {
		extra := rv.Field(s.additional).Interface().(map[string]any)
		keys := make([]string, 0, len(extra))
		for k := range extra {
			if _, declared := s.known[k]; declared || k == tagKey {
				continue
			}
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := write(k, extra[k]); err != nil {
				return nil, err
			}
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func isUnset(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
		return v.IsNil()
	default:
		return v.IsZero()
	}
}

func emptyIfNil(v reflect.Value) any {
	switch {
	case v.Kind() == reflect.Slice && v.IsNil():
		return reflect.MakeSlice(v.Type(), 0, 0).Interface()
	case v.Kind() == reflect.Map && v.IsNil():
		return reflect.MakeMap(v.Type()).Interface()
	default:
		return v.Interface()
	}
}
