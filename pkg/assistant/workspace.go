// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

package assistant

import "github.com/leseb/watson-go/pkg/core/wire"

// Known values of Workspace.Status.
const (
	WorkspaceStatusNonExistent = "Non Existent"
	WorkspaceStatusTraining    = "Training"
	WorkspaceStatusFailed      = "Failed"
	WorkspaceStatusAvailable   = "Available"
	WorkspaceStatusUnavailable = "Unavailable"
)

// Workspace is a workspace as returned by the service. The training data
// collections are only present when the workspace was exported.
type Workspace struct {
	Name           string                   `json:"name,required"`
	Description    *string                  `json:"description,omitempty"`
	Language       string                   `json:"language,required"`
	Metadata       map[string]any           `json:"metadata,omitempty"`
	LearningOptOut bool                     `json:"learning_opt_out,required"`
	SystemSettings *WorkspaceSystemSettings `json:"system_settings,omitempty"`
	WorkspaceID    string                   `json:"workspace_id,required"`
	Status         string                   `json:"status,required"`
	Created        *wire.DateTime           `json:"created,omitempty"`
	Updated        *wire.DateTime           `json:"updated,omitempty"`

	Intents         []Intent         `json:"intents,omitempty"`
	Entities        []Entity         `json:"entities,omitempty"`
	DialogNodes     []DialogNode     `json:"dialog_nodes,omitempty"`
	Counterexamples []Counterexample `json:"counterexamples,omitempty"`
}

func (r *Workspace) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r Workspace) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// CreateWorkspace is the body of a create or update workspace call.
type CreateWorkspace struct {
	Name           *string                  `json:"name,omitempty" validate:"omitempty,max=64,singleline"`
	Description    *string                  `json:"description,omitempty" validate:"omitempty,max=128,singleline"`
	Language       *string                  `json:"language,omitempty"`
	Metadata       map[string]any           `json:"metadata,omitempty"`
	LearningOptOut *bool                    `json:"learning_opt_out,omitempty"`
	SystemSettings *WorkspaceSystemSettings `json:"system_settings,omitempty"`

	Intents         []CreateIntent     `json:"intents,omitempty" validate:"omitempty,dive"`
	Entities        []CreateEntity     `json:"entities,omitempty" validate:"omitempty,dive"`
	DialogNodes     []CreateDialogNode `json:"dialog_nodes,omitempty" validate:"omitempty,dive"`
	Counterexamples []Counterexample   `json:"counterexamples,omitempty" validate:"omitempty,dive"`
}

func (r *CreateWorkspace) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r CreateWorkspace) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// WorkspaceSystemSettings holds global workspace settings.
type WorkspaceSystemSettings struct {
	Tooling             *WorkspaceSystemSettingsTooling        `json:"tooling,omitempty"`
	Disambiguation      *WorkspaceSystemSettingsDisambiguation `json:"disambiguation,omitempty"`
	HumanAgentAssist    map[string]any                         `json:"human_agent_assist,omitempty"`
	SpellingSuggestions *bool                                  `json:"spelling_suggestions,omitempty"`
	SpellingAutoCorrect *bool                                  `json:"spelling_auto_correct,omitempty"`
	SystemEntities      *WorkspaceSystemSettingsSystemEntities `json:"system_entities,omitempty"`
	OffTopic            *WorkspaceSystemSettingsOffTopic       `json:"off_topic,omitempty"`
}

func (r *WorkspaceSystemSettings) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r WorkspaceSystemSettings) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

type WorkspaceSystemSettingsTooling struct {
	StoreGenericResponses *bool `json:"store_generic_responses,omitempty"`
}

func (r *WorkspaceSystemSettingsTooling) UnmarshalJSON(data []byte) error {
	return wire.Unmarshal(data, r)
}
func (r WorkspaceSystemSettingsTooling) MarshalJSON() ([]byte, error) { return wire.Marshal(r) }

// Known values of WorkspaceSystemSettingsDisambiguation.Sensitivity.
const (
	DisambiguationSensitivityAuto       = "auto"
	DisambiguationSensitivityHigh       = "high"
	DisambiguationSensitivityMediumHigh = "medium_high"
	DisambiguationSensitivityMedium     = "medium"
	DisambiguationSensitivityMediumLow  = "medium_low"
	DisambiguationSensitivityLow        = "low"
)

// WorkspaceSystemSettingsDisambiguation controls how the dialog asks the
// user to choose between matching nodes.
type WorkspaceSystemSettingsDisambiguation struct {
	Prompt               *string `json:"prompt,omitempty"`
	NoneOfTheAbovePrompt *string `json:"none_of_the_above_prompt,omitempty"`
	Enabled              *bool   `json:"enabled,omitempty"`
	Sensitivity          *string `json:"sensitivity,omitempty"`
	Randomize            *bool   `json:"randomize,omitempty"`
	MaxSuggestions       *int64  `json:"max_suggestions,omitempty"`
	SuggestionTextPolicy *string `json:"suggestion_text_policy,omitempty"`
}

func (r *WorkspaceSystemSettingsDisambiguation) UnmarshalJSON(data []byte) error {
	return wire.Unmarshal(data, r)
}
func (r WorkspaceSystemSettingsDisambiguation) MarshalJSON() ([]byte, error) {
	return wire.Marshal(r)
}

type WorkspaceSystemSettingsSystemEntities struct {
	Enabled *bool `json:"enabled,omitempty"`
}

func (r *WorkspaceSystemSettingsSystemEntities) UnmarshalJSON(data []byte) error {
	return wire.Unmarshal(data, r)
}
func (r WorkspaceSystemSettingsSystemEntities) MarshalJSON() ([]byte, error) {
	return wire.Marshal(r)
}

type WorkspaceSystemSettingsOffTopic struct {
	Enabled *bool `json:"enabled,omitempty"`
}

func (r *WorkspaceSystemSettingsOffTopic) UnmarshalJSON(data []byte) error {
	return wire.Unmarshal(data, r)
}
func (r WorkspaceSystemSettingsOffTopic) MarshalJSON() ([]byte, error) { return wire.Marshal(r) }

// WorkspaceCollection is one page of workspaces.
type WorkspaceCollection struct {
	Workspaces []Workspace `json:"workspaces,required"`
	Pagination Pagination  `json:"pagination,required"`
}

func (r *WorkspaceCollection) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r WorkspaceCollection) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// Pagination links a collection page to its neighbours.
type Pagination struct {
	RefreshURL    string  `json:"refresh_url,required"`
	NextURL       *string `json:"next_url,omitempty"`
	Total         *int64  `json:"total,omitempty"`
	Matched       *int64  `json:"matched,omitempty"`
	RefreshCursor *string `json:"refresh_cursor,omitempty"`
	NextCursor    *string `json:"next_cursor,omitempty"`
}

func (r *Pagination) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, r) }
func (r Pagination) MarshalJSON() ([]byte, error)     { return wire.Marshal(r) }

// HasMore reports whether another page can be fetched.
func (r *Pagination) HasMore() bool {
	return r.NextURL != nil || r.NextCursor != nil
}
