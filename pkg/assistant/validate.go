// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

package assistant

import "github.com/leseb/watson-go/pkg/core/validation"

// Validate checks the request against the limits the service enforces, so
// a bad request fails before it is sent.
func (r *MessageRequest) Validate() error { return validation.Struct(r) }

func (r *CreateWorkspace) Validate() error  { return validation.Struct(r) }
func (r *CreateIntent) Validate() error     { return validation.Struct(r) }
func (r *CreateExample) Validate() error    { return validation.Struct(r) }
func (r *CreateEntity) Validate() error     { return validation.Struct(r) }
func (r *CreateValue) Validate() error      { return validation.Struct(r) }
func (r *CreateDialogNode) Validate() error { return validation.Struct(r) }
func (r *Counterexample) Validate() error   { return validation.Struct(r) }
