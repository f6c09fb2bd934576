// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

package assistant

import "github.com/leseb/watson-go/pkg/core/wire"

// MessageInput is the user input of a message.
type MessageInput struct {
	// Text of the user input. At most 2048 characters, no carriage
	// returns, newlines or tabs.
	Text *string `json:"text,omitempty" validate:"omitempty,max=2048,singleline"`

	// Spelling correction controls and results.
	SpellingSuggestions *bool   `json:"spelling_suggestions,omitempty"`
	SpellingAutoCorrect *bool   `json:"spelling_auto_correct,omitempty"`
	SuggestedText       *string `json:"suggested_text,omitempty"`
	OriginalText        *string `json:"original_text,omitempty"`

	Additional map[string]any `json:"-" wire:"additional"`
}

func (r *MessageInput) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r MessageInput) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// MessageRequest is the body of POST /v1/workspaces/{workspace_id}/message.
type MessageRequest struct {
	Input *MessageInput `json:"input,omitempty"`

	// Intents and entities to use instead of classifying the input.
	Intents  []RuntimeIntent `json:"intents,omitempty"`
	Entities []RuntimeEntity `json:"entities,omitempty"`

	// Return more than the top intent.
	AlternateIntents *bool `json:"alternate_intents,omitempty"`

	// Context returned by the previous turn, if any.
	Context *Context `json:"context,omitempty"`

	Output  *OutputData        `json:"output,omitempty"`
	Actions []DialogNodeAction `json:"actions,omitempty"`
}

func (r *MessageRequest) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r MessageRequest) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// MessageResponse is the result of a message call. Unlike the request, input,
// intents, entities, context and output are always present.
type MessageResponse struct {
	Input            MessageInput       `json:"input,required"`
	Intents          []RuntimeIntent    `json:"intents,required"`
	Entities         []RuntimeEntity    `json:"entities,required"`
	AlternateIntents *bool              `json:"alternate_intents,omitempty"`
	Context          Context            `json:"context,required"`
	Output           OutputData         `json:"output,required"`
	Actions          []DialogNodeAction `json:"actions,omitempty"`
	UserID           *string            `json:"user_id,omitempty"`
}

func (r *MessageResponse) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r MessageResponse) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// TopIntent returns the highest-confidence intent, if any was recognized.
func (r *MessageResponse) TopIntent() (RuntimeIntent, bool) {
	if len(r.Intents) == 0 {
		return RuntimeIntent{}, false
	}
	top := r.Intents[0]
	for _, in := range r.Intents[1:] {
		if in.Confidence > top.Confidence {
			top = in
		}
	}
	return top, true
}

// RuntimeIntent is an intent recognized in the user input.
type RuntimeIntent struct {
	Intent     string         `json:"intent,required"`
	Confidence float64        `json:"confidence,required"`
	Additional map[string]any `json:"-" wire:"additional"`
}

func (r *RuntimeIntent) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r RuntimeIntent) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// RuntimeEntity is an entity value recognized in the user input.
type RuntimeEntity struct {
	Entity string `json:"entity,required"`

	// Zero-based character offsets [start, end) of the mention.
	Location []int64 `json:"location,required"`

	Value      string         `json:"value,required"`
	Confidence *float64       `json:"confidence,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	Groups     []CaptureGroup `json:"groups,omitempty"`
	Additional map[string]any `json:"-" wire:"additional"`
}

func (r *RuntimeEntity) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r RuntimeEntity) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// CaptureGroup is a regular expression capture group of a pattern entity.
type CaptureGroup struct {
	Group    string  `json:"group,required"`
	Location []int64 `json:"location,omitempty"`
}

func (r *CaptureGroup) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r CaptureGroup) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// OutputData is the output of the dialog for one turn.
type OutputData struct {
	NodesVisited        []string                       `json:"nodes_visited,omitempty"`
	NodesVisitedDetails []DialogNodeVisitedDetails     `json:"nodes_visited_details,omitempty"`
	LogMessages         []LogMessage                   `json:"log_messages,required"`
	Text                []string                       `json:"text,required"`
	Generic             []DialogRuntimeResponseGeneric `json:"generic,omitempty"`
	Additional          map[string]any                 `json:"-" wire:"additional"`
}

func (r *OutputData) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r OutputData) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// Known values of LogMessage.Level.
const (
	LogMessageLevelInfo  = "info"
	LogMessageLevelError = "error"
	LogMessageLevelWarn  = "warn"
)

// LogMessage is a dialog runtime log entry.
type LogMessage struct {
	Level      string         `json:"level,required"`
	Msg        string         `json:"msg,required"`
	Additional map[string]any `json:"-" wire:"additional"`
}

func (r *LogMessage) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r LogMessage) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// DialogNodeVisitedDetails describes a dialog node visited during a turn.
type DialogNodeVisitedDetails struct {
	DialogNode *string `json:"dialog_node,omitempty"`
	Title      *string `json:"title,omitempty"`
	Conditions *string `json:"conditions,omitempty"`
}

func (r *DialogNodeVisitedDetails) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r DialogNodeVisitedDetails) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// Known values of DialogNodeAction.Type.
const (
	DialogNodeActionTypeClient        = "client"
	DialogNodeActionTypeServer        = "server"
	DialogNodeActionTypeCloudFunction = "cloud_function"
	DialogNodeActionTypeWebAction     = "web_action"
	DialogNodeActionTypeWebhook       = "webhook"
)

// DialogNodeAction is a programmatic call made by a dialog node.
type DialogNodeAction struct {
	Name           string         `json:"name,required"`
	Type           *string        `json:"type,omitempty"`
	Parameters     map[string]any `json:"parameters,omitempty"`
	ResultVariable string         `json:"result_variable,required"`
	Credentials    *string        `json:"credentials,omitempty"`
}

func (r *DialogNodeAction) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r DialogNodeAction) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// Known values of DialogRuntimeResponseGeneric.ResponseType.
const (
	DialogRuntimeResponseGenericResponseTypeText           = "text"
	DialogRuntimeResponseGenericResponseTypePause          = "pause"
	DialogRuntimeResponseGenericResponseTypeImage          = "image"
	DialogRuntimeResponseGenericResponseTypeOption         = "option"
	DialogRuntimeResponseGenericResponseTypeConnectToAgent = "connect_to_agent"
	DialogRuntimeResponseGenericResponseTypeSuggestion     = "suggestion"
)

// Known values of DialogRuntimeResponseGeneric.Preference.
const (
	DialogRuntimeResponseGenericPreferenceDropdown = "dropdown"
	DialogRuntimeResponseGenericPreferenceButton   = "button"
)

// DialogRuntimeResponseGeneric is one rich response element returned by the
// dialog. Which fields are set depends on ResponseType.
type DialogRuntimeResponseGeneric struct {
	ResponseType string `json:"response_type,required"`

	Text   *string `json:"text,omitempty"`   // text
	Time   *int64  `json:"time,omitempty"`   // pause, milliseconds
	Typing *bool   `json:"typing,omitempty"` // pause
	Source *string `json:"source,omitempty"` // image URL

	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`

	// option
	Preference *string                          `json:"preference,omitempty"`
	Options    []DialogNodeOutputOptionsElement `json:"options,omitempty"`

	// connect_to_agent
	MessageToHumanAgent *string `json:"message_to_human_agent,omitempty"`
	Topic               *string `json:"topic,omitempty"`
	DialogNode          *string `json:"dialog_node,omitempty"`

	// suggestion
	Suggestions []DialogSuggestion `json:"suggestions,omitempty"`
}

func (r *DialogRuntimeResponseGeneric) UnmarshalJSON(data []byte) error {
	return wire.Unmarshal(data, r)
}
func (r DialogRuntimeResponseGeneric) MarshalJSON() ([]byte, error) { return wire.Marshal(r) }

// DialogNodeOutputOptionsElement is one selectable option.
type DialogNodeOutputOptionsElement struct {
	Label string                              `json:"label,required"`
	Value DialogNodeOutputOptionsElementValue `json:"value,required"`
}

func (r *DialogNodeOutputOptionsElement) UnmarshalJSON(data []byte) error {
	return wire.Unmarshal(data, r)
}
func (r DialogNodeOutputOptionsElement) MarshalJSON() ([]byte, error) { return wire.Marshal(r) }

// DialogNodeOutputOptionsElementValue is what gets sent when an option is
// selected.
type DialogNodeOutputOptionsElementValue struct {
	Input    *MessageInput   `json:"input,omitempty"`
	Intents  []RuntimeIntent `json:"intents,omitempty"`
	Entities []RuntimeEntity `json:"entities,omitempty"`
}

func (r *DialogNodeOutputOptionsElementValue) UnmarshalJSON(data []byte) error {
	return wire.Unmarshal(data, r)
}
func (r DialogNodeOutputOptionsElementValue) MarshalJSON() ([]byte, error) { return wire.Marshal(r) }

// DialogSuggestion is a disambiguation suggestion.
type DialogSuggestion struct {
	Label      string                `json:"label,required"`
	Value      DialogSuggestionValue `json:"value,required"`
	Output     map[string]any        `json:"output,omitempty"`
	DialogNode *string               `json:"dialog_node,omitempty"`
}

func (r *DialogSuggestion) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r DialogSuggestion) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

type DialogSuggestionValue struct {
	Input    *MessageInput   `json:"input,omitempty"`
	Intents  []RuntimeIntent `json:"intents,omitempty"`
	Entities []RuntimeEntity `json:"entities,omitempty"`
}

func (r *DialogSuggestionValue) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r DialogSuggestionValue) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }
