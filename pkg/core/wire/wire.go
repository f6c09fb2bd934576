// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

// Package wire is the single encode/decode engine behind every Watson record.
//
// A record is a struct whose fields carry json tags. The tag option
// "required" marks keys that must be present and non-null; "omitempty" marks
// optional keys, which are omitted on encode while nil (or zero for
// non-nillable kinds). A field of type map[string]any tagged `wire:"additional"`
// turns the record into an open record that keeps unknown keys for re-encoding.
//
// Records hook into encoding/json with two one-line methods:
//
//	func (r *RuntimeIntent) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
//	func (r RuntimeIntent) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }
package wire

import "github.com/tidwall/gjson"

// Ptr returns a pointer to v. It is the usual way to fill optional fields.
func Ptr[T any](v T) *T {
	return &v
}

// PeekTag reads the string member key of the JSON object in data without
// decoding anything else. ok is false when the member is absent or not a
// string. key is a plain member name, not a gjson path.
func PeekTag(data []byte, key string) (tag string, ok bool) {
	r := gjson.GetBytes(data, key)
	if r.Type != gjson.String {
		return "", false
	}
	return r.String(), true
}
