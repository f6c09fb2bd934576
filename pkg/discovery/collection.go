// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

package discovery

import "github.com/leseb/watson-go/pkg/core/wire"

// Known values of Collection.Status.
const (
	CollectionStatusActive      = "active"
	CollectionStatusPending     = "pending"
	CollectionStatusMaintenance = "maintenance"
)

type Collection struct {
	CollectionID    *string              `json:"collection_id,omitempty"`
	Name            *string              `json:"name,omitempty"`
	Description     *string              `json:"description,omitempty"`
	Created         *wire.DateTime       `json:"created,omitempty"`
	Updated         *wire.DateTime       `json:"updated,omitempty"`
	Status          *string              `json:"status,omitempty"`
	ConfigurationID *string              `json:"configuration_id,omitempty"`
	Language        *string              `json:"language,omitempty"`
	DocumentCounts  *DocumentCounts      `json:"document_counts,omitempty"`
	DiskUsage       *CollectionDiskUsage `json:"disk_usage,omitempty"`
	TrainingStatus  *TrainingStatus      `json:"training_status,omitempty"`
}

func (r *Collection) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r Collection) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

type ListCollectionsResponse struct {
	Collections []Collection `json:"collections,omitempty"`
}

func (r *ListCollectionsResponse) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r ListCollectionsResponse) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

type DocumentCounts struct {
	Available  *int64 `json:"available,omitempty"`
	Processing *int64 `json:"processing,omitempty"`
	Failed     *int64 `json:"failed,omitempty"`
	Pending    *int64 `json:"pending,omitempty"`
}

func (r *DocumentCounts) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r DocumentCounts) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

type CollectionDiskUsage struct {
	UsedBytes *int64 `json:"used_bytes,omitempty"`
}

func (r *CollectionDiskUsage) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r CollectionDiskUsage) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// TrainingStatus summarizes the relevancy training data of a collection.
type TrainingStatus struct {
	TotalExamples            *int64         `json:"total_examples,omitempty"`
	Available                *bool          `json:"available,omitempty"`
	Processing               *bool          `json:"processing,omitempty"`
	MinimumQueriesAdded      *bool          `json:"minimum_queries_added,omitempty"`
	MinimumExamplesAdded     *bool          `json:"minimum_examples_added,omitempty"`
	SufficientLabelDiversity *bool          `json:"sufficient_label_diversity,omitempty"`
	Notices                  *int64         `json:"notices,omitempty"`
	SuccessfullyTrained      *wire.DateTime `json:"successfully_trained,omitempty"`
	DataUpdated              *wire.DateTime `json:"data_updated,omitempty"`
}

func (r *TrainingStatus) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r TrainingStatus) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }
