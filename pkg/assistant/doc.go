// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

// Package assistant holds the request and response records of the Watson
// Assistant v1 API: message exchange, conversation context, and workspace
// training data (intents, entities, dialog nodes, counterexamples, logs).
//
// Records decode and encode through the wire engine. Fields that the service
// documents as an enumeration are plain strings; the constants declared next
// to each record list the values known when this package was written, and
// any other value round-trips unchanged.
package assistant
