// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

package assistant

import "github.com/leseb/watson-go/pkg/core/wire"

// Context carries conversation state between turns. Besides the keys below,
// every context variable set by the dialog is kept in Additional and sent
// back verbatim on the next turn.
type Context struct {
	// Unique identifier of the conversation.
	ConversationID *string `json:"conversation_id,omitempty"`

	// Dialog runtime bookkeeping (dialog stack, turn counter, ...).
	System *SystemResponse `json:"system,omitempty"`

	// Deployment and user metadata.
	Metadata *MessageContextMetadata `json:"metadata,omitempty"`

	Additional map[string]any `json:"-" wire:"additional"`
}

func (r *Context) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r Context) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// SystemResponse is the opaque system section of a Context. The service owns
// its layout, so every key is kept as an additional property.
type SystemResponse struct {
	Additional map[string]any `json:"-" wire:"additional"`
}

func (r *SystemResponse) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r SystemResponse) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// MessageContextMetadata identifies where a message came from.
type MessageContextMetadata struct {
	Deployment *string `json:"deployment,omitempty"` // deployment name, e.g. "slack"
	UserID     *string `json:"user_id,omitempty"`    // used for billing and GDPR deletion
}

func (r *MessageContextMetadata) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r MessageContextMetadata) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }
