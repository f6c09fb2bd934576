// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

// Package catalog names every top-level Watson record so tools can decode a
// payload when the record type is only known at run time, e.g. from a CLI
// flag or a stored fixture.
package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"

	"github.com/leseb/watson-go/pkg/assistant"
	"github.com/leseb/watson-go/pkg/core/wire"
	"github.com/leseb/watson-go/pkg/discovery"
)

// Kind is one decodable record type.
type Kind struct {
	// Name is "<package>.<Record>", e.g. "assistant.MessageResponse".
	Name string

	// Decode decodes data into a new value of the record. The result is a
	// pointer to the record, or a discovery.QueryAggregation for the union.
	Decode func(data []byte) (any, error)

	// Keys lists the declared wire keys of the record in declaration order.
	// It is empty for the aggregation union, whose keys depend on the variant.
	Keys []string
}

var kinds = map[string]Kind{}

func register(k Kind) {
	if _, exists := kinds[k.Name]; exists {
		panic(fmt.Sprintf("catalog: kind %q already registered", k.Name))
	}
	kinds[k.Name] = k
}

func record[T any](name string) Kind {
	recordName := reflect.TypeFor[T]().Name()
	return Kind{
		Name: name,
		Decode: func(data []byte) (any, error) {
			// wire.Unmarshal treats null as "leave as is"; a top-level
			// payload must be an object.
			if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
				return nil, &wire.FieldError{Record: recordName, Kind: wire.ErrTypeMismatch, Err: errors.New("expected object, got null")}
			}
			v := new(T)
			if err := json.Unmarshal(data, v); err != nil {
				return nil, err
			}
			return v, nil
		},
		Keys: wire.Keys(new(T)),
	}
}

func init() {
	for _, k := range []Kind{
		record[assistant.Context]("assistant.Context"),
		record[assistant.MessageInput]("assistant.MessageInput"),
		record[assistant.MessageRequest]("assistant.MessageRequest"),
		record[assistant.MessageResponse]("assistant.MessageResponse"),
		record[assistant.RuntimeIntent]("assistant.RuntimeIntent"),
		record[assistant.RuntimeEntity]("assistant.RuntimeEntity"),
		record[assistant.OutputData]("assistant.OutputData"),
		record[assistant.LogMessage]("assistant.LogMessage"),
		record[assistant.DialogRuntimeResponseGeneric]("assistant.DialogRuntimeResponseGeneric"),
		record[assistant.Workspace]("assistant.Workspace"),
		record[assistant.CreateWorkspace]("assistant.CreateWorkspace"),
		record[assistant.WorkspaceCollection]("assistant.WorkspaceCollection"),
		record[assistant.Intent]("assistant.Intent"),
		record[assistant.CreateIntent]("assistant.CreateIntent"),
		record[assistant.IntentCollection]("assistant.IntentCollection"),
		record[assistant.Example]("assistant.Example"),
		record[assistant.CreateExample]("assistant.CreateExample"),
		record[assistant.ExampleCollection]("assistant.ExampleCollection"),
		record[assistant.Entity]("assistant.Entity"),
		record[assistant.CreateEntity]("assistant.CreateEntity"),
		record[assistant.EntityCollection]("assistant.EntityCollection"),
		record[assistant.Value]("assistant.Value"),
		record[assistant.CreateValue]("assistant.CreateValue"),
		record[assistant.ValueCollection]("assistant.ValueCollection"),
		record[assistant.Synonym]("assistant.Synonym"),
		record[assistant.SynonymCollection]("assistant.SynonymCollection"),
		record[assistant.Counterexample]("assistant.Counterexample"),
		record[assistant.CounterexampleCollection]("assistant.CounterexampleCollection"),
		record[assistant.DialogNode]("assistant.DialogNode"),
		record[assistant.CreateDialogNode]("assistant.CreateDialogNode"),
		record[assistant.DialogNodeCollection]("assistant.DialogNodeCollection"),
		record[assistant.DialogNodeOutput]("assistant.DialogNodeOutput"),
		record[assistant.DialogNodeOutputGeneric]("assistant.DialogNodeOutputGeneric"),
		record[assistant.Pagination]("assistant.Pagination"),
		record[assistant.Log]("assistant.Log"),
		record[assistant.LogCollection]("assistant.LogCollection"),
		record[assistant.ErrorResponse]("assistant.ErrorResponse"),

		record[discovery.QueryResponse]("discovery.QueryResponse"),
		record[discovery.QueryResult]("discovery.QueryResult"),
		record[discovery.QueryNoticesResponse]("discovery.QueryNoticesResponse"),
		record[discovery.Environment]("discovery.Environment"),
		record[discovery.ListEnvironmentsResponse]("discovery.ListEnvironmentsResponse"),
		record[discovery.Collection]("discovery.Collection"),
		record[discovery.ListCollectionsResponse]("discovery.ListCollectionsResponse"),
		record[discovery.DocumentAccepted]("discovery.DocumentAccepted"),
		record[discovery.DocumentStatus]("discovery.DocumentStatus"),
		record[discovery.DeleteDocumentResponse]("discovery.DeleteDocumentResponse"),
		record[discovery.Notice]("discovery.Notice"),
		record[discovery.TrainingDataSet]("discovery.TrainingDataSet"),
		record[discovery.TrainingQuery]("discovery.TrainingQuery"),
		record[discovery.NewTrainingQuery]("discovery.NewTrainingQuery"),
		record[discovery.TrainingExample]("discovery.TrainingExample"),
		record[discovery.TrainingExampleList]("discovery.TrainingExampleList"),
		record[discovery.Expansions]("discovery.Expansions"),
		{
			Name: "discovery.QueryAggregation",
			Decode: func(data []byte) (any, error) {
				return discovery.DecodeQueryAggregation(data)
			},
		},
	} {
		register(k)
	}
}

// ErrUnknownKind is returned by Lookup for names that are not registered.
var ErrUnknownKind = errors.New("unknown record kind")

// Lookup returns the kind registered under name.
func Lookup(name string) (Kind, error) {
	k, ok := kinds[name]
	if !ok {
		return Kind{}, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return k, nil
}

// Names returns every registered kind name, sorted.
func Names() []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
