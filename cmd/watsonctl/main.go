// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

// Command watsonctl checks captured Watson Assistant and Discovery payloads
// against the record models and manages a store of such fixtures.
package main

import (
	"fmt"
	"os"

	"github.com/leseb/watson-go/cmd/watsonctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
