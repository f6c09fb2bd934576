// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

package assistant

import "github.com/leseb/watson-go/pkg/core/wire"

// Log is one logged message exchange.
type Log struct {
	Request           MessageRequest  `json:"request,required"`
	Response          MessageResponse `json:"response,required"`
	LogID             string          `json:"log_id,required"`
	RequestTimestamp  string          `json:"request_timestamp,required"`
	ResponseTimestamp string          `json:"response_timestamp,required"`
	WorkspaceID       string          `json:"workspace_id,required"`
	Language          string          `json:"language,required"`
}

func (r *Log) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r Log) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

type LogCollection struct {
	Logs       []Log         `json:"logs,required"`
	Pagination LogPagination `json:"pagination,required"`
}

func (r *LogCollection) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r LogCollection) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// LogPagination is the cursor of a log listing. Logs have no refresh link.
type LogPagination struct {
	NextURL    *string `json:"next_url,omitempty"`
	Matched    *int64  `json:"matched,omitempty"`
	NextCursor *string `json:"next_cursor,omitempty"`
}

func (r *LogPagination) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r LogPagination) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }
