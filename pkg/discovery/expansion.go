// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

package discovery

import "github.com/leseb/watson-go/pkg/core/wire"

// Expansions is the query expansion list of a collection. It is both the
// request and the response body.
type Expansions struct {
	Expansions []Expansion `json:"expansions,required" validate:"required,min=1,dive"`
}

func (r *Expansions) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r Expansions) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// Expansion expands InputTerms into ExpandedTerms. Without input terms the
// expansion is bidirectional: every expanded term expands to all others.
type Expansion struct {
	InputTerms    []string `json:"input_terms,omitempty" validate:"omitempty,dive,required"`
	ExpandedTerms []string `json:"expanded_terms,required" validate:"required,min=1,dive,required"`
}

func (r *Expansion) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r Expansion) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }
