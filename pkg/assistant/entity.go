// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

package assistant

import "github.com/leseb/watson-go/pkg/core/wire"

// Entity is an entity as returned by the service. The service always sends
// a description, possibly empty.
type Entity struct {
	Entity      string         `json:"entity,required"`
	Description string         `json:"description,required"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	FuzzyMatch  *bool          `json:"fuzzy_match,omitempty"`
	Created     *wire.DateTime `json:"created,omitempty"`
	Updated     *wire.DateTime `json:"updated,omitempty"`
	Values      []Value        `json:"values,omitempty"`
}

func (r *Entity) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r Entity) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// CreateEntity is the body of a create entity call, and the entity element
// of CreateWorkspace.
type CreateEntity struct {
	Entity      string         `json:"entity,required" validate:"required,max=64,watsonname"`
	Description *string        `json:"description,omitempty" validate:"omitempty,max=128,singleline"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	FuzzyMatch  *bool          `json:"fuzzy_match,omitempty"`
	Values      []CreateValue  `json:"values,omitempty" validate:"omitempty,dive"`
}

func (r *CreateEntity) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r CreateEntity) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

type EntityCollection struct {
	Entities   []Entity   `json:"entities,required"`
	Pagination Pagination `json:"pagination,required"`
}

func (r *EntityCollection) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r EntityCollection) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// Known values of Value.Type.
const (
	ValueTypeSynonyms = "synonyms"
	ValueTypePatterns = "patterns"
)

// Value is one value of an entity, matched by synonyms or by patterns.
type Value struct {
	Value    string         `json:"value,required"`
	Metadata map[string]any `json:"metadata,omitempty"`
	Type     string         `json:"type,required"`
	Synonyms []string       `json:"synonyms,omitempty"`
	Patterns []string       `json:"patterns,omitempty"`
	Created  *wire.DateTime `json:"created,omitempty"`
	Updated  *wire.DateTime `json:"updated,omitempty"`
}

func (r *Value) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r Value) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// CreateValue is the body of a create value call. A value may have
// synonyms or patterns, not both.
type CreateValue struct {
	Value    string         `json:"value,required" validate:"required,max=64,singleline"`
	Metadata map[string]any `json:"metadata,omitempty"`
	Type     *string        `json:"type,omitempty"`
	Synonyms []string       `json:"synonyms,omitempty" validate:"omitempty,excluded_with=Patterns,dive,max=64,singleline"`
	Patterns []string       `json:"patterns,omitempty" validate:"omitempty,max=5,dive,max=512"`
}

func (r *CreateValue) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r CreateValue) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

type ValueCollection struct {
	Values     []Value    `json:"values,required"`
	Pagination Pagination `json:"pagination,required"`
}

func (r *ValueCollection) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r ValueCollection) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

type Synonym struct {
	Synonym string         `json:"synonym,required" validate:"required,max=64,singleline"`
	Created *wire.DateTime `json:"created,omitempty"`
	Updated *wire.DateTime `json:"updated,omitempty"`
}

func (r *Synonym) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r Synonym) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

type SynonymCollection struct {
	Synonyms   []Synonym  `json:"synonyms,required"`
	Pagination Pagination `json:"pagination,required"`
}

func (r *SynonymCollection) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r SynonymCollection) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// Counterexample is an input the workspace must not match to any intent.
type Counterexample struct {
	Text    string         `json:"text,required" validate:"required,max=1024,singleline"`
	Created *wire.DateTime `json:"created,omitempty"`
	Updated *wire.DateTime `json:"updated,omitempty"`
}

func (r *Counterexample) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r Counterexample) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

type CounterexampleCollection struct {
	Counterexamples []Counterexample `json:"counterexamples,required"`
	Pagination      Pagination       `json:"pagination,required"`
}

func (r *CounterexampleCollection) UnmarshalJSON(data []byte) error {
	return wire.Unmarshal(data, r)
}
func (r CounterexampleCollection) MarshalJSON() ([]byte, error) { return wire.Marshal(r) }
