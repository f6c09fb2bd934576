// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leseb/watson-go/pkg/catalog"
)

func newKindsCmd() *cobra.Command {
	var showKeys bool

	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List the record kinds payloads can be checked as",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range catalog.Names() {
				if !showKeys {
					fmt.Fprintln(cmd.OutOrStdout(), name)
					continue
				}
				k, err := catalog.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, strings.Join(k.Keys, ", "))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showKeys, "keys", false, "Also print each kind's declared wire keys")
	return cmd
}
