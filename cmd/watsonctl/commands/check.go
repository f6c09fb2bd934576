// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/leseb/watson-go/pkg/catalog"
	"github.com/leseb/watson-go/pkg/core/roundtrip"
)

func newCheckCmd(a *app) *cobra.Command {
	var kindName string

	cmd := &cobra.Command{
		Use:   "check --kind KIND FILE...",
		Short: "Round-trip JSON payloads through a record type",
		Long: `Decode each FILE as KIND, re-encode it and report keys that were lost,
added or changed. Use "-" to read a payload from standard input.

Examples:
  watsonctl check --kind assistant.MessageResponse reply.json
  curl ... | watsonctl check --kind discovery.QueryResponse -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := catalog.Lookup(kindName)
			if err != nil {
				return err
			}

			items := make([]roundtrip.Item, 0, len(args))
			for _, path := range args {
				payload, err := readPayload(cmd, path)
				if err != nil {
					return err
				}
				items = append(items, roundtrip.Item{Kind: kind, Label: path, Payload: payload})
			}

			reports, err := a.checker().CheckAll(cmd.Context(), items)
			if err != nil {
				return err
			}
			return printReports(cmd.OutOrStdout(), reports)
		},
	}
	cmd.Flags().StringVar(&kindName, "kind", "", "Record kind, see 'watsonctl kinds'")
	_ = cmd.MarkFlagRequired("kind")
	return cmd
}

func readPayload(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	return data, nil
}

// printReports writes one line per report and fails when any did not pass.
func printReports(w io.Writer, reports []roundtrip.Report) error {
	failed := 0
	for _, r := range reports {
		fmt.Fprintln(w, r.String())
		if !r.OK {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d payload(s) failed the round trip", failed, len(reports))
	}
	return nil
}
