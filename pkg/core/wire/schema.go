// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// field describes one declared wire key of a record.
type field struct {
	index    int
	key      string
	required bool
	optional bool
}

// schema is the cached wire description of a record type.
type schema struct {
	name       string
	fields     []field
	known      map[string]struct{}
	additional int // struct index of the additional-properties bag, -1 when closed
}

var (
	schemas     sync.Map // reflect.Type -> *schema
	additionalT = reflect.TypeOf(map[string]any(nil))
)

func schemaOf(t reflect.Type) *schema {
	if s, ok := schemas.Load(t); ok {
		return s.(*schema)
	}
	s, _ := schemas.LoadOrStore(t, buildSchema(t))
	return s.(*schema)
}

// buildSchema reads the json and wire struct tags of t. Malformed record
// declarations are programming errors and panic, the same way a duplicate
// backend registration does.
func buildSchema(t reflect.Type) *schema {
	s := &schema{
		name:       t.Name(),
		known:      make(map[string]struct{}),
		additional: -1,
	}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		if sf.Tag.Get("wire") == "additional" {
			if sf.Type != additionalT {
				panic(fmt.Sprintf("wire: %s.%s: additional properties must be map[string]any", s.name, sf.Name))
			}
			if s.additional >= 0 {
				panic(fmt.Sprintf("wire: %s declares more than one additional properties field", s.name))
			}
			s.additional = i
			continue
		}

		tag, ok := sf.Tag.Lookup("json")
		if !ok {
			panic(fmt.Sprintf("wire: %s.%s has no json tag", s.name, sf.Name))
		}
		if tag == "-" {
			continue
		}
		key, opts, _ := strings.Cut(tag, ",")
		if key == "" {
			panic(fmt.Sprintf("wire: %s.%s has an empty wire key", s.name, sf.Name))
		}
		if _, dup := s.known[key]; dup {
			panic(fmt.Sprintf("wire: %s maps wire key %q twice", s.name, key))
		}

		f := field{index: i, key: key}
		for _, opt := range strings.Split(opts, ",") {
			switch opt {
			case "required":
				f.required = true
			case "omitempty":
				f.optional = true
			}
		}
		s.known[key] = struct{}{}
		s.fields = append(s.fields, f)
	}
	return s
}

// Keys returns the declared wire keys of the record type of v, in
// declaration order.
func Keys(v any) []string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	s := schemaOf(t)
	keys := make([]string, len(s.fields))
	for i, f := range s.fields {
		keys[i] = f.key
	}
	return keys
}
