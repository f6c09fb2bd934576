// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

package assistant

import "github.com/leseb/watson-go/pkg/core/wire"

// ErrorResponse is the body the service returns with a non-2xx status.
type ErrorResponse struct {
	Error  string        `json:"error,required"`
	Errors []ErrorDetail `json:"errors,omitempty"`
	Code   int64         `json:"code,required"`
}

func (r *ErrorResponse) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r ErrorResponse) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

type ErrorDetail struct {
	Message string  `json:"message,required"`
	Path    *string `json:"path,omitempty"`
}

func (r *ErrorDetail) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r ErrorDetail) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }
