// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

package assistant

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leseb/watson-go/pkg/core/wire"
)

const messageResponseJSON = `{
  "input": {"text": "turn on the lights", "channel": "voice"},
  "intents": [{"intent": "turn_on", "confidence": 0.9731, "score_debug": [1, 2]}],
  "entities": [{
    "entity": "appliance",
    "location": [12, 18],
    "value": "lights",
    "confidence": 1,
    "groups": [{"group": "group_0", "location": [12, 18]}]
  }],
  "context": {
    "conversation_id": "f1e3b7c2",
    "system": {"dialog_stack": [{"dialog_node": "root"}], "dialog_turn_counter": 1},
    "metadata": {"deployment": "slack", "user_id": "u-42"},
    "room": "kitchen"
  },
  "output": {
    "nodes_visited": ["node_1"],
    "log_messages": [{"level": "warn", "msg": "slot skipped", "code": "W12"}],
    "text": ["OK, turning on the lights."],
    "generic": [
      {"response_type": "text", "text": "OK, turning on the lights."},
      {"response_type": "option", "title": "Which room?", "preference": "button",
       "options": [{"label": "Kitchen", "value": {"input": {"text": "kitchen"}}}]}
    ],
    "debug": {"branch_exited": true}
  },
  "user_id": "u-42"
}`

func TestMessageResponse_NestedComposition(t *testing.T) {
	var resp MessageResponse
	require.NoError(t, json.Unmarshal([]byte(messageResponseJSON), &resp))

	require.NotNil(t, resp.Context.Metadata)
	assert.Equal(t, "slack", *resp.Context.Metadata.Deployment)
	assert.Equal(t, "u-42", *resp.Context.Metadata.UserID)
	assert.Equal(t, "f1e3b7c2", *resp.Context.ConversationID)
	assert.Equal(t, "kitchen", resp.Context.Additional["room"])
	require.NotNil(t, resp.Context.System)
	assert.Contains(t, resp.Context.System.Additional, "dialog_stack")

	assert.Equal(t, "turn on the lights", *resp.Input.Text)
	assert.Equal(t, "voice", resp.Input.Additional["channel"])

	top, ok := resp.TopIntent()
	require.True(t, ok)
	assert.Equal(t, "turn_on", top.Intent)
	assert.InDelta(t, 0.9731, top.Confidence, 1e-9)

	require.Len(t, resp.Entities, 1)
	assert.Equal(t, []int64{12, 18}, resp.Entities[0].Location)
	assert.Equal(t, "group_0", resp.Entities[0].Groups[0].Group)

	require.Len(t, resp.Output.Generic, 2)
	assert.Equal(t, DialogRuntimeResponseGenericResponseTypeOption, resp.Output.Generic[1].ResponseType)
	assert.Equal(t, "kitchen", *resp.Output.Generic[1].Options[0].Value.Input.Text)
	assert.Equal(t, LogMessageLevelWarn, resp.Output.LogMessages[0].Level)
	assert.Equal(t, "W12", resp.Output.LogMessages[0].Additional["code"])

	out, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, messageResponseJSON, string(out))
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		into  any
	}{
		{
			name:  "context with only additional keys",
			input: `{"counter": 3, "nested": {"a": [null, true]}}`,
			into:  &Context{},
		},
		{
			name:  "runtime intent with extra property",
			input: `{"intent": "hello", "confidence": 0.5, "source": "override"}`,
			into:  &RuntimeIntent{},
		},
		{
			name:  "message request",
			input: `{"input": {"text": "hi"}, "alternate_intents": true, "context": {"conversation_id": "c1"}}`,
			into:  &MessageRequest{},
		},
		{
			name: "workspace",
			input: `{"name": "Car Dashboard", "language": "en", "learning_opt_out": false,
				"workspace_id": "9978a49e", "status": "Available",
				"created": "2015-12-06T23:53:59.153Z", "updated": "2015-12-07T18:53:59.153Z",
				"system_settings": {"disambiguation": {"enabled": true, "sensitivity": "medium_high"}},
				"intents": [{"intent": "greet", "examples": [{"text": "hello", "mentions": [{"entity": "x", "location": [0, 1]}]}]}],
				"counterexamples": [{"text": "not this"}]}`,
			into: &Workspace{},
		},
		{
			name: "dialog node with legacy output keys",
			input: `{"dialog_node": "node_1", "conditions": "#greet", "output": {
				"text": {"values": ["Hi"], "selection_policy": "random"},
				"generic": [{"response_type": "text", "values": [{"text": "Hi"}], "selection_policy": "sequential"}]},
				"next_step": {"behavior": "jump_to", "dialog_node": "node_2", "selector": "body"},
				"digress_in": "does_not_return"}`,
			into: &DialogNode{},
		},
		{
			name: "entity collection",
			input: `{"entities": [{"entity": "appliance", "description": "", "values": [
				{"value": "lights", "type": "synonyms", "synonyms": ["lamp", "light"]}]}],
				"pagination": {"refresh_url": "/v1/workspaces/x/entities", "total": 1, "matched": 1}}`,
			into: &EntityCollection{},
		},
		{
			name: "log collection",
			input: `{"logs": [{"request": {"input": {"text": "hi"}},
				"response": {"input": {"text": "hi"}, "intents": [], "entities": [], "context": {},
					"output": {"log_messages": [], "text": []}},
				"log_id": "l1", "request_timestamp": "2024-01-01T00:00:00Z",
				"response_timestamp": "2024-01-01T00:00:01Z", "workspace_id": "w1", "language": "en"}],
				"pagination": {"next_cursor": "abc"}}`,
			into: &LogCollection{},
		},
		{
			name:  "error response",
			input: `{"error": "Resource not found", "code": 404, "errors": [{"message": "no workspace", "path": ".workspace_id"}]}`,
			into:  &ErrorResponse{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, json.Unmarshal([]byte(tt.input), tt.into))
			out, err := json.Marshal(tt.into)
			require.NoError(t, err)
			assert.JSONEq(t, tt.input, string(out))
		})
	}
}

func TestRequiredFieldRejection(t *testing.T) {
	tests := []struct {
		name  string
		input string
		into  any
		path  string
	}{
		{"intent without confidence", `{"intent": "hello"}`, &RuntimeIntent{}, "confidence"},
		{"entity without location", `{"entity": "e", "value": "v"}`, &RuntimeEntity{}, "location"},
		{"pagination without refresh_url", `{"next_url": "/next"}`, &Pagination{}, "refresh_url"},
		{"entity without description", `{"entity": "e"}`, &Entity{}, "description"},
		{"workspace without status", `{"name": "n", "language": "en", "learning_opt_out": true, "workspace_id": "w"}`, &Workspace{}, "status"},
		{"response without output", `{"input": {}, "intents": [], "entities": [], "context": {}}`, &MessageResponse{}, "output"},
		{"nested log message", `{"input": {}, "intents": [], "entities": [], "context": {}, "output": {"text": [], "log_messages": [{"level": "info"}]}}`, &MessageResponse{}, "output.log_messages[0].msg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := json.Unmarshal([]byte(tt.input), tt.into)
			require.Error(t, err)
			assert.True(t, errors.Is(err, wire.ErrMissingField), "got %v", err)

			var fe *wire.FieldError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.path, fe.Path)
		})
	}
}

func TestTypeMismatch(t *testing.T) {
	var in RuntimeIntent
	err := json.Unmarshal([]byte(`{"intent": "hello", "confidence": "high"}`), &in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, wire.ErrTypeMismatch))
	assert.Contains(t, err.Error(), "RuntimeIntent.confidence")
}

func TestOptionalFieldOmission(t *testing.T) {
	out, err := json.Marshal(RuntimeEntity{
		Entity:   "appliance",
		Location: []int64{0, 6},
		Value:    "lights",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"entity":"appliance","location":[0,6],"value":"lights"}`, string(out))

	out, err = json.Marshal(MessageRequest{Input: &MessageInput{Text: wire.Ptr("hi")}})
	require.NoError(t, err)
	assert.Equal(t, `{"input":{"text":"hi"}}`, string(out))

	out, err = json.Marshal(CreateEntity{Entity: "appliance"})
	require.NoError(t, err)
	assert.Equal(t, `{"entity":"appliance"}`, string(out))
}

func TestExplicitNullOptionalIsOmitted(t *testing.T) {
	var ex Example
	require.NoError(t, json.Unmarshal([]byte(`{"text": "hi", "created": null}`), &ex))
	assert.Nil(t, ex.Created)

	out, err := json.Marshal(ex)
	require.NoError(t, err)
	assert.Equal(t, `{"text":"hi"}`, string(out))
}

func TestEnumLeniency(t *testing.T) {
	input := `{"response_type": "some_new_type_not_yet_known"}`

	var g DialogNodeOutputGeneric
	require.NoError(t, json.Unmarshal([]byte(input), &g))
	assert.Equal(t, "some_new_type_not_yet_known", g.ResponseType)

	out, err := json.Marshal(g)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(out))

	var w Workspace
	require.NoError(t, json.Unmarshal([]byte(`{"name": "n", "language": "en", "learning_opt_out": false, "workspace_id": "w", "status": "Migrating"}`), &w))
	assert.Equal(t, "Migrating", w.Status)
}

func TestPaginationHasMore(t *testing.T) {
	p := Pagination{RefreshURL: "/r"}
	assert.False(t, p.HasMore())
	p.NextCursor = wire.Ptr("c2")
	assert.True(t, p.HasMore())
}

func TestTopIntent_Empty(t *testing.T) {
	_, ok := (&MessageResponse{}).TopIntent()
	assert.False(t, ok)
}
