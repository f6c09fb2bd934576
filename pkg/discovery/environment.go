// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

package discovery

import "github.com/leseb/watson-go/pkg/core/wire"

// Known values of Environment.Status.
const (
	EnvironmentStatusActive      = "active"
	EnvironmentStatusPending     = "pending"
	EnvironmentStatusMaintenance = "maintenance"
	EnvironmentStatusResizing    = "resizing"
)

// Known values of Environment.Size.
const (
	EnvironmentSizeLT = "LT"
	EnvironmentSizeXS = "XS"
	EnvironmentSizeS  = "S"
	EnvironmentSizeMS = "MS"
	EnvironmentSizeM  = "M"
	EnvironmentSizeML = "ML"
	EnvironmentSizeL  = "L"
	EnvironmentSizeXL = "XL"
)

type Environment struct {
	EnvironmentID *string        `json:"environment_id,omitempty"`
	Name          *string        `json:"name,omitempty"`
	Description   *string        `json:"description,omitempty"`
	Created       *wire.DateTime `json:"created,omitempty"`
	Updated       *wire.DateTime `json:"updated,omitempty"`
	Status        *string        `json:"status,omitempty"`
	ReadOnly      *bool          `json:"read_only,omitempty"`
	Size          *string        `json:"size,omitempty"`
	RequestedSize *string        `json:"requested_size,omitempty"`
	IndexCapacity *IndexCapacity `json:"index_capacity,omitempty"`
	SearchStatus  *SearchStatus  `json:"search_status,omitempty"`
}

func (r *Environment) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r Environment) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

type ListEnvironmentsResponse struct {
	Environments []Environment `json:"environments,omitempty"`
}

func (r *ListEnvironmentsResponse) UnmarshalJSON(data []byte) error {
	return wire.Unmarshal(data, r)
}
func (r ListEnvironmentsResponse) MarshalJSON() ([]byte, error) { return wire.Marshal(r) }

// IndexCapacity reports how much of the environment is in use.
type IndexCapacity struct {
	Documents   *EnvironmentDocuments `json:"documents,omitempty"`
	DiskUsage   *DiskUsage            `json:"disk_usage,omitempty"`
	Collections *CollectionUsage      `json:"collections,omitempty"`
}

func (r *IndexCapacity) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r IndexCapacity) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

type EnvironmentDocuments struct {
	Available      int64 `json:"available,required"`
	MaximumAllowed int64 `json:"maximum_allowed,required"`
}

func (r *EnvironmentDocuments) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r EnvironmentDocuments) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

type DiskUsage struct {
	UsedBytes           *int64 `json:"used_bytes,omitempty"`
	MaximumAllowedBytes *int64 `json:"maximum_allowed_bytes,omitempty"`
}

func (r *DiskUsage) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r DiskUsage) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

type CollectionUsage struct {
	Available      *int64 `json:"available,omitempty"`
	MaximumAllowed *int64 `json:"maximum_allowed,omitempty"`
}

func (r *CollectionUsage) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r CollectionUsage) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// SearchStatus is the state of the environment's relevancy training.
type SearchStatus struct {
	Scope             *string `json:"scope,omitempty"`
	Status            *string `json:"status,omitempty"` // NO_DATA, INSUFFICENT_DATA, TRAINING, TRAINED, NOT_APPLICABLE
	StatusDescription *string `json:"status_description,omitempty"`
	LastTrained       *string `json:"last_trained,omitempty"` // date only, e.g. 2017-11-30
}

func (r *SearchStatus) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r SearchStatus) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }
