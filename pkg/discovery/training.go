// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

package discovery

import "github.com/leseb/watson-go/pkg/core/wire"

// TrainingDataSet is the relevancy training data of a collection.
type TrainingDataSet struct {
	EnvironmentID *string         `json:"environment_id,omitempty"`
	CollectionID  *string         `json:"collection_id,omitempty"`
	Queries       []TrainingQuery `json:"queries,omitempty"`
}

func (r *TrainingDataSet) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r TrainingDataSet) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

type TrainingQuery struct {
	QueryID              *string           `json:"query_id,omitempty"`
	NaturalLanguageQuery *string           `json:"natural_language_query,omitempty"`
	Filter               *string           `json:"filter,omitempty"`
	Created              *wire.DateTime    `json:"created,omitempty"`
	Updated              *wire.DateTime    `json:"updated,omitempty"`
	Examples             []TrainingExample `json:"examples,omitempty"`
}

func (r *TrainingQuery) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r TrainingQuery) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// NewTrainingQuery is the body of an add training data call.
type NewTrainingQuery struct {
	NaturalLanguageQuery *string           `json:"natural_language_query,omitempty" validate:"required"`
	Filter               *string           `json:"filter,omitempty"`
	Examples             []TrainingExample `json:"examples,omitempty" validate:"omitempty,dive"`
}

func (r *NewTrainingQuery) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r NewTrainingQuery) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// TrainingExample rates one document for a training query. Relevance is
// 0 (not relevant) to 10 (very relevant).
type TrainingExample struct {
	DocumentID     *string        `json:"document_id,omitempty" validate:"required"`
	CrossReference *string        `json:"cross_reference,omitempty"`
	Relevance      *int64         `json:"relevance,omitempty" validate:"omitempty,gte=0,lte=10"`
	Created        *wire.DateTime `json:"created,omitempty"`
	Updated        *wire.DateTime `json:"updated,omitempty"`
}

func (r *TrainingExample) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r TrainingExample) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

type TrainingExampleList struct {
	Examples []TrainingExample `json:"examples,omitempty"`
}

func (r *TrainingExampleList) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r TrainingExampleList) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }
