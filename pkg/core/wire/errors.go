// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"errors"
	"strings"
)

// Sentinel kinds carried by FieldError. Match them with errors.Is.
var (
	ErrMissingField    = errors.New("missing required field")
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrVariantMismatch = errors.New("variant mismatch")
)

// FieldError reports a decode failure for a single key of a record.
//
// Path is relative to Record and uses dots for nested objects and brackets
// for array elements, e.g. "output.generic[2].options". An empty Path means
// the record itself was the wrong shape.
type FieldError struct {
	Record string
	Path   string
	Kind   error
	Err    error
}

func (e *FieldError) Error() string {
	var b strings.Builder
	b.WriteString("wire: ")
	b.WriteString(e.Record)
	if e.Path != "" {
		if !strings.HasPrefix(e.Path, "[") {
			b.WriteByte('.')
		}
		b.WriteString(e.Path)
	}
	b.WriteString(": ")
	b.WriteString(e.Kind.Error())
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *FieldError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// rootAt re-roots err under record at key. A FieldError raised by a nested
// record keeps its kind and cause; anything else is a type mismatch.
func rootAt(record, key string, err error) error {
	var fe *FieldError
	if errors.As(err, &fe) {
		return &FieldError{Record: record, Path: joinPath(key, fe.Path), Kind: fe.Kind, Err: fe.Err}
	}
	return &FieldError{Record: record, Path: key, Kind: ErrTypeMismatch, Err: err}
}

func joinPath(prefix, path string) string {
	switch {
	case path == "":
		return prefix
	case prefix == "":
		return path
	case strings.HasPrefix(path, "["):
		return prefix + path
	default:
		return prefix + "." + path
	}
}

// At re-roots err at key under record. Hand-written decoders, such as union
// lists, use it so their failures carry the same paths as engine errors.
func At(record, key string, err error) error {
	return rootAt(record, key, err)
}
