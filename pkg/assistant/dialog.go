// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

package assistant

import "github.com/leseb/watson-go/pkg/core/wire"

// Known values of DialogNode.Type.
const (
	DialogNodeTypeStandard          = "standard"
	DialogNodeTypeEventHandler      = "event_handler"
	DialogNodeTypeFrame             = "frame"
	DialogNodeTypeSlot              = "slot"
	DialogNodeTypeResponseCondition = "response_condition"
	DialogNodeTypeFolder            = "folder"
)

// Known values of DialogNode.EventName.
const (
	DialogNodeEventNameFocus                    = "focus"
	DialogNodeEventNameInput                    = "input"
	DialogNodeEventNameFilled                   = "filled"
	DialogNodeEventNameValidate                 = "validate"
	DialogNodeEventNameFilledMultiple           = "filled_multiple"
	DialogNodeEventNameGeneric                  = "generic"
	DialogNodeEventNameNomatch                  = "nomatch"
	DialogNodeEventNameNomatchResponsesDepleted = "nomatch_responses_depleted"
	DialogNodeEventNameDigressionReturnPrompt   = "digression_return_prompt"
)

// Known values of DialogNode.DigressIn.
const (
	DialogNodeDigressInNotAvailable  = "not_available"
	DialogNodeDigressInReturns       = "returns"
	DialogNodeDigressInDoesNotReturn = "does_not_return"
)

// Known values of DialogNode.DigressOut.
const (
	DialogNodeDigressOutAllowReturning      = "allow_returning"
	DialogNodeDigressOutAllowAll            = "allow_all"
	DialogNodeDigressOutAllowAllNeverReturn = "allow_all_never_return"
)

// Known values of DialogNode.DigressOutSlots.
const (
	DialogNodeDigressOutSlotsNotAllowed     = "not_allowed"
	DialogNodeDigressOutSlotsAllowReturning = "allow_returning"
	DialogNodeDigressOutSlotsAllowAll       = "allow_all"
)

// DialogNode is a node of the dialog tree as returned by the service.
type DialogNode struct {
	DialogNode      string              `json:"dialog_node,required"`
	Description     *string             `json:"description,omitempty"`
	Conditions      *string             `json:"conditions,omitempty"`
	Parent          *string             `json:"parent,omitempty"`
	PreviousSibling *string             `json:"previous_sibling,omitempty"`
	Output          *DialogNodeOutput   `json:"output,omitempty"`
	Context         map[string]any      `json:"context,omitempty"`
	Metadata        map[string]any      `json:"metadata,omitempty"`
	NextStep        *DialogNodeNextStep `json:"next_step,omitempty"`
	Title           *string             `json:"title,omitempty"`
	Type            *string             `json:"type,omitempty"`
	EventName       *string             `json:"event_name,omitempty"`
	Variable        *string             `json:"variable,omitempty"`
	Actions         []DialogNodeAction  `json:"actions,omitempty"`
	DigressIn       *string             `json:"digress_in,omitempty"`
	DigressOut      *string             `json:"digress_out,omitempty"`
	DigressOutSlots *string             `json:"digress_out_slots,omitempty"`
	UserLabel       *string             `json:"user_label,omitempty"`
	Disabled        *bool               `json:"disabled,omitempty"`
	Created         *wire.DateTime      `json:"created,omitempty"`
	Updated         *wire.DateTime      `json:"updated,omitempty"`
}

func (r *DialogNode) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r DialogNode) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// CreateDialogNode is the body of a create dialog node call, and the dialog
// node element of CreateWorkspace.
type CreateDialogNode struct {
	DialogNode      string              `json:"dialog_node,required" validate:"required,max=1024,singleline"`
	Description     *string             `json:"description,omitempty" validate:"omitempty,max=128,singleline"`
	Conditions      *string             `json:"conditions,omitempty" validate:"omitempty,max=2048,singleline"`
	Parent          *string             `json:"parent,omitempty"`
	PreviousSibling *string             `json:"previous_sibling,omitempty"`
	Output          *DialogNodeOutput   `json:"output,omitempty" validate:"-"`
	Context         map[string]any      `json:"context,omitempty"`
	Metadata        map[string]any      `json:"metadata,omitempty"`
	NextStep        *DialogNodeNextStep `json:"next_step,omitempty"`
	Title           *string             `json:"title,omitempty" validate:"omitempty,max=64,singleline"`
	Type            *string             `json:"type,omitempty"`
	EventName       *string             `json:"event_name,omitempty"`
	Variable        *string             `json:"variable,omitempty" validate:"omitempty,max=64,singleline"`
	Actions         []DialogNodeAction  `json:"actions,omitempty"`
	DigressIn       *string             `json:"digress_in,omitempty"`
	DigressOut      *string             `json:"digress_out,omitempty"`
	DigressOutSlots *string             `json:"digress_out_slots,omitempty"`
	UserLabel       *string             `json:"user_label,omitempty" validate:"omitempty,max=512"`
	Disabled        *bool               `json:"disabled,omitempty"`
}

func (r *CreateDialogNode) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r CreateDialogNode) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

type DialogNodeCollection struct {
	DialogNodes []DialogNode `json:"dialog_nodes,required"`
	Pagination  Pagination   `json:"pagination,required"`
}

func (r *DialogNodeCollection) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r DialogNodeCollection) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// DialogNodeOutput is the output of a dialog node. Legacy workspaces put
// free-form keys (text, ...) next to generic, so the record is open.
type DialogNodeOutput struct {
	Generic    []DialogNodeOutputGeneric  `json:"generic,omitempty"`
	Modifiers  *DialogNodeOutputModifiers `json:"modifiers,omitempty"`
	Additional map[string]any             `json:"-" wire:"additional"`
}

func (r *DialogNodeOutput) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r DialogNodeOutput) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// Known values of DialogNodeOutputGeneric.ResponseType.
const (
	DialogNodeOutputGenericResponseTypeText           = "text"
	DialogNodeOutputGenericResponseTypePause          = "pause"
	DialogNodeOutputGenericResponseTypeImage          = "image"
	DialogNodeOutputGenericResponseTypeOption         = "option"
	DialogNodeOutputGenericResponseTypeConnectToAgent = "connect_to_agent"
	DialogNodeOutputGenericResponseTypeSearchSkill    = "search_skill"
)

// Known values of DialogNodeOutputGeneric.SelectionPolicy.
const (
	DialogNodeOutputGenericSelectionPolicySequential = "sequential"
	DialogNodeOutputGenericSelectionPolicyRandom     = "random"
	DialogNodeOutputGenericSelectionPolicyMultiline  = "multiline"
)

// Known values of DialogNodeOutputGeneric.QueryType.
const (
	DialogNodeOutputGenericQueryTypeNaturalLanguage        = "natural_language"
	DialogNodeOutputGenericQueryTypeDiscoveryQueryLanguage = "discovery_query_language"
)

// DialogNodeOutputGeneric is one authored response of a dialog node.
type DialogNodeOutputGeneric struct {
	ResponseType string `json:"response_type,required"`

	Values          []DialogNodeOutputTextValuesElement `json:"values,omitempty"`
	SelectionPolicy *string                             `json:"selection_policy,omitempty"`
	Delimiter       *string                             `json:"delimiter,omitempty"`

	Time   *int64  `json:"time,omitempty"`
	Typing *bool   `json:"typing,omitempty"`
	Source *string `json:"source,omitempty"`

	Title       *string                          `json:"title,omitempty"`
	Description *string                          `json:"description,omitempty"`
	Preference  *string                          `json:"preference,omitempty"`
	Options     []DialogNodeOutputOptionsElement `json:"options,omitempty"`

	MessageToHumanAgent *string `json:"message_to_human_agent,omitempty"`

	// search_skill
	Query            *string `json:"query,omitempty"`
	QueryType        *string `json:"query_type,omitempty"`
	Filter           *string `json:"filter,omitempty"`
	DiscoveryVersion *string `json:"discovery_version,omitempty"`
}

func (r *DialogNodeOutputGeneric) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r DialogNodeOutputGeneric) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

type DialogNodeOutputTextValuesElement struct {
	Text *string `json:"text,omitempty"`
}

func (r *DialogNodeOutputTextValuesElement) UnmarshalJSON(data []byte) error {
	return wire.Unmarshal(data, r)
}
func (r DialogNodeOutputTextValuesElement) MarshalJSON() ([]byte, error) { return wire.Marshal(r) }

type DialogNodeOutputModifiers struct {
	// Overwrite the existing output when the node is updated.
	Overwrite *bool `json:"overwrite,omitempty"`
}

func (r *DialogNodeOutputModifiers) UnmarshalJSON(data []byte) error {
	return wire.Unmarshal(data, r)
}
func (r DialogNodeOutputModifiers) MarshalJSON() ([]byte, error) { return wire.Marshal(r) }

// Known values of DialogNodeNextStep.Behavior.
const (
	DialogNodeNextStepBehaviorGetUserInput  = "get_user_input"
	DialogNodeNextStepBehaviorSkipUserInput = "skip_user_input"
	DialogNodeNextStepBehaviorJumpTo        = "jump_to"
	DialogNodeNextStepBehaviorReprompt      = "reprompt"
	DialogNodeNextStepBehaviorSkipSlot      = "skip_slot"
	DialogNodeNextStepBehaviorSkipAllSlots  = "skip_all_slots"
)

// Known values of DialogNodeNextStep.Selector.
const (
	DialogNodeNextStepSelectorCondition = "condition"
	DialogNodeNextStepSelectorClient    = "client"
	DialogNodeNextStepSelectorUserInput = "user_input"
	DialogNodeNextStepSelectorBody      = "body"
)

// DialogNodeNextStep says what happens after a node is processed.
type DialogNodeNextStep struct {
	Behavior   string  `json:"behavior,required"`
	DialogNode *string `json:"dialog_node,omitempty"` // required by jump_to
	Selector   *string `json:"selector,omitempty"`
}

func (r *DialogNodeNextStep) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r DialogNodeNextStep) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }
