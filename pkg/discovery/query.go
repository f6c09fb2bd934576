// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

package discovery

import "github.com/leseb/watson-go/pkg/core/wire"

// QueryResponse is the result of a collection or environment query.
type QueryResponse struct {
	MatchingResults   *int64            `json:"matching_results,omitempty"`
	Results           []QueryResult     `json:"results,omitempty"`
	Aggregations      AggregationList   `json:"aggregations,omitempty"`
	Passages          []QueryPassages   `json:"passages,omitempty"`
	DuplicatesRemoved *int64            `json:"duplicates_removed,omitempty"`
	SessionToken      *string           `json:"session_token,omitempty"`
	RetrievalDetails  *RetrievalDetails `json:"retrieval_details,omitempty"`
	SuggestedQuery    *string           `json:"suggested_query,omitempty"`
}

func (r *QueryResponse) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r QueryResponse) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// QueryResult is one matching document. The document's own fields are
// returned at the top level next to the fixed keys, so they land in
// Additional.
type QueryResult struct {
	ID             *string              `json:"id,omitempty"`
	Metadata       map[string]any       `json:"metadata,omitempty"`
	CollectionID   *string              `json:"collection_id,omitempty"`
	ResultMetadata *QueryResultMetadata `json:"result_metadata,omitempty"`
	Additional     map[string]any       `json:"-" wire:"additional"`
}

func (r *QueryResult) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r QueryResult) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

type QueryResultMetadata struct {
	// Unbounded relevance score of the result.
	Score float64 `json:"score,required"`

	// Confidence between 0 and 1, only present on trained collections.
	Confidence *float64 `json:"confidence,omitempty"`
}

func (r *QueryResultMetadata) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r QueryResultMetadata) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// QueryPassages is a passage extracted from a matching document.
type QueryPassages struct {
	DocumentID   *string  `json:"document_id,omitempty"`
	PassageScore *float64 `json:"passage_score,omitempty"`
	PassageText  *string  `json:"passage_text,omitempty"`
	StartOffset  *int64   `json:"start_offset,omitempty"`
	EndOffset    *int64   `json:"end_offset,omitempty"`
	Field        *string  `json:"field,omitempty"`
}

func (r *QueryPassages) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r QueryPassages) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// Known values of RetrievalDetails.DocumentRetrievalStrategy.
const (
	RetrievalDetailsDocumentRetrievalStrategyUntrained                   = "untrained"
	RetrievalDetailsDocumentRetrievalStrategyRelevancyTraining           = "relevancy_training"
	RetrievalDetailsDocumentRetrievalStrategyContinuousRelevancyTraining = "continuous_relevancy_training"
)

type RetrievalDetails struct {
	DocumentRetrievalStrategy *string `json:"document_retrieval_strategy,omitempty"`
}

func (r *RetrievalDetails) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r RetrievalDetails) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// QueryNoticesResponse is the result of a notices query.
type QueryNoticesResponse struct {
	MatchingResults   *int64               `json:"matching_results,omitempty"`
	Results           []QueryNoticesResult `json:"results,omitempty"`
	Aggregations      AggregationList      `json:"aggregations,omitempty"`
	Passages          []QueryPassages      `json:"passages,omitempty"`
	DuplicatesRemoved *int64               `json:"duplicates_removed,omitempty"`
}

func (r *QueryNoticesResponse) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r QueryNoticesResponse) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// QueryNoticesResult is one document that produced ingestion notices.
type QueryNoticesResult struct {
	ID             *string              `json:"id,omitempty"`
	Metadata       map[string]any       `json:"metadata,omitempty"`
	CollectionID   *string              `json:"collection_id,omitempty"`
	ResultMetadata *QueryResultMetadata `json:"result_metadata,omitempty"`
	Code           *int64               `json:"code,omitempty"`
	Filename       *string              `json:"filename,omitempty"`
	FileType       *string              `json:"file_type,omitempty"`
	Sha1           *string              `json:"sha1,omitempty"`
	Notices        []Notice             `json:"notices,omitempty"`
	Additional     map[string]any       `json:"-" wire:"additional"`
}

func (r *QueryNoticesResult) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r QueryNoticesResult) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }
