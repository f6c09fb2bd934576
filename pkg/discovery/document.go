// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

package discovery

import "github.com/leseb/watson-go/pkg/core/wire"

// Known values of DocumentAccepted.Status.
const (
	DocumentAcceptedStatusProcessing = "processing"
	DocumentAcceptedStatusPending    = "pending"
)

// DocumentAccepted is the response to a document upload.
type DocumentAccepted struct {
	DocumentID *string  `json:"document_id,omitempty"`
	Status     *string  `json:"status,omitempty"`
	Notices    []Notice `json:"notices,omitempty"`
}

func (r *DocumentAccepted) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r DocumentAccepted) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// Known values of DocumentStatus.Status.
const (
	DocumentStatusStatusAvailable            = "available"
	DocumentStatusStatusAvailableWithNotices = "available with notices"
	DocumentStatusStatusFailed               = "failed"
	DocumentStatusStatusProcessing           = "processing"
	DocumentStatusStatusPending              = "pending"
)

// DocumentStatus is the ingestion state of one document.
type DocumentStatus struct {
	DocumentID        string   `json:"document_id,required"`
	ConfigurationID   *string  `json:"configuration_id,omitempty"`
	Status            string   `json:"status,required"`
	StatusDescription string   `json:"status_description,required"`
	Filename          *string  `json:"filename,omitempty"`
	FileType          *string  `json:"file_type,omitempty"`
	Sha1              *string  `json:"sha1,omitempty"`
	Notices           []Notice `json:"notices,required"`
}

func (r *DocumentStatus) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r DocumentStatus) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// Known values of DeleteDocumentResponse.Status.
const DeleteDocumentResponseStatusDeleted = "deleted"

type DeleteDocumentResponse struct {
	DocumentID *string `json:"document_id,omitempty"`
	Status     *string `json:"status,omitempty"`
}

func (r *DeleteDocumentResponse) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r DeleteDocumentResponse) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// Known values of Notice.Severity.
const (
	NoticeSeverityWarning = "warning"
	NoticeSeverityError   = "error"
)

// Notice is a warning or error raised while ingesting a document or
// running a query.
type Notice struct {
	NoticeID    *string        `json:"notice_id,omitempty"`
	Created     *wire.DateTime `json:"created,omitempty"`
	DocumentID  *string        `json:"document_id,omitempty"`
	QueryID     *string        `json:"query_id,omitempty"`
	Severity    *string        `json:"severity,omitempty"`
	Step        *string        `json:"step,omitempty"`
	Description *string        `json:"description,omitempty"`
}

func (r *Notice) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r Notice) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }
