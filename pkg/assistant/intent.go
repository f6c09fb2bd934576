// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

package assistant

import "github.com/leseb/watson-go/pkg/core/wire"

type Intent struct {
	Intent      string         `json:"intent,required"`
	Description *string        `json:"description,omitempty"`
	Created     *wire.DateTime `json:"created,omitempty"`
	Updated     *wire.DateTime `json:"updated,omitempty"`
	Examples    []Example      `json:"examples,omitempty"`
}

func (r *Intent) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r Intent) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// CreateIntent is the body of a create intent call, and the intent element
// of CreateWorkspace.
type CreateIntent struct {
	// Letters, digits, underscores, hyphens and dots; must not start
	// with "sys-".
	Intent      string    `json:"intent,required" validate:"required,max=128,watsonname"`
	Description *string   `json:"description,omitempty" validate:"omitempty,max=128,singleline"`
	Examples    []Example `json:"examples,omitempty" validate:"omitempty,dive"`
}

func (r *CreateIntent) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r CreateIntent) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

type IntentCollection struct {
	Intents    []Intent   `json:"intents,required"`
	Pagination Pagination `json:"pagination,required"`
}

func (r *IntentCollection) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r IntentCollection) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// Example is a user input example of an intent.
type Example struct {
	Text     string         `json:"text,required" validate:"required,max=1024,singleline"`
	Mentions []Mention      `json:"mentions,omitempty"`
	Created  *wire.DateTime `json:"created,omitempty"`
	Updated  *wire.DateTime `json:"updated,omitempty"`
}

func (r *Example) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r Example) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// CreateExample is the body of a create example call.
type CreateExample struct {
	Text     string    `json:"text,required" validate:"required,max=1024,singleline"`
	Mentions []Mention `json:"mentions,omitempty"`
}

func (r *CreateExample) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r CreateExample) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

type ExampleCollection struct {
	Examples   []Example  `json:"examples,required"`
	Pagination Pagination `json:"pagination,required"`
}

func (r *ExampleCollection) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r ExampleCollection) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// Mention is a contextual entity mention inside an example.
type Mention struct {
	Entity   string  `json:"entity,required"`
	Location []int64 `json:"location,required"`
}

func (r *Mention) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r Mention) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }
