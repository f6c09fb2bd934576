// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

package discovery

import "github.com/leseb/watson-go/pkg/core/validation"

// Validate checks the request before it is sent.
func (r *NewTrainingQuery) Validate() error { return validation.Struct(r) }

// Validate checks the request before it is sent.
func (r *Expansions) Validate() error { return validation.Struct(r) }
