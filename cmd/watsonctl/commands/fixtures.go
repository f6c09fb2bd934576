// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/leseb/watson-go/pkg/catalog"
	"github.com/leseb/watson-go/pkg/core/roundtrip"
	"github.com/leseb/watson-go/pkg/fixturestore"
)

func newFixturesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fixtures",
		Short: "Manage stored payload fixtures",
	}
	cmd.AddCommand(newFixturesAddCmd(a))
	cmd.AddCommand(newFixturesListCmd(a))
	cmd.AddCommand(newFixturesVerifyCmd(a))
	cmd.AddCommand(newFixturesRmCmd(a))
	return cmd
}

// withStore opens the fixture store for the duration of fn.
func (a *app) withStore(ctx context.Context, fn func(fixturestore.FixtureStore) error) error {
	store, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close(context.Background())
	return fn(store)
}

func newFixturesAddCmd(a *app) *cobra.Command {
	var kindName, name string

	cmd := &cobra.Command{
		Use:   "add --kind KIND [--name NAME] FILE",
		Short: "Store a payload as a fixture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := catalog.Lookup(kindName); err != nil {
				return err
			}
			payload, err := readPayload(cmd, args[0])
			if err != nil {
				return err
			}
			if name == "" {
				name = filepath.Base(args[0])
			}

			f := fixturestore.New(kindName, name, payload)
			return a.withStore(cmd.Context(), func(store fixturestore.FixtureStore) error {
				if err := store.PutFixture(cmd.Context(), f); err != nil {
					return err
				}
				a.logger.Info("fixture stored", "id", f.ID, "kind", f.Kind, "bytes", f.Bytes)
				fmt.Fprintln(cmd.OutOrStdout(), f.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&kindName, "kind", "", "Record kind, see 'watsonctl kinds'")
	cmd.Flags().StringVar(&name, "name", "", "Fixture label (defaults to the file name)")
	_ = cmd.MarkFlagRequired("kind")
	return cmd
}

func newFixturesListCmd(a *app) *cobra.Command {
	var kind, after, order string
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored fixtures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withStore(cmd.Context(), func(store fixturestore.FixtureStore) error {
				fixtures, hasMore, err := store.ListFixtures(cmd.Context(), after, "", limit, order, kind)
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tKIND\tNAME\tBYTES\tCREATED\t")
				for _, f := range fixtures {
					fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t\n", f.ID, f.Kind, f.Name, f.Bytes, f.CreatedAt.Format(time.RFC3339))
				}
				if err := w.Flush(); err != nil {
					return err
				}
				if hasMore && len(fixtures) > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "more fixtures available, continue with --after %s\n", fixtures[len(fixtures)-1].ID)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "Only list fixtures of this kind")
	cmd.Flags().StringVar(&after, "after", "", "List fixtures after this ID")
	cmd.Flags().StringVar(&order, "order", "asc", "Sort order by creation time (asc|desc)")
	cmd.Flags().IntVar(&limit, "limit", fixturestore.DefaultLimit, "Page size")
	return cmd
}

func newFixturesVerifyCmd(a *app) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Round-trip every stored fixture through its record type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			return a.withStore(ctx, func(store fixturestore.FixtureStore) error {
				items, err := loadItems(ctx, store, kind)
				if err != nil {
					return err
				}
				a.logger.Info("verifying fixtures", "count", len(items))

				reports, err := a.checker().CheckAll(ctx, items)
				if err != nil {
					return err
				}
				return printReports(cmd.OutOrStdout(), reports)
			})
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "Only verify fixtures of this kind")
	return cmd
}

// loadItems pages through the store and loads every fixture's content.
func loadItems(ctx context.Context, store fixturestore.FixtureStore, kind string) ([]roundtrip.Item, error) {
	var items []roundtrip.Item
	after := ""
	for {
		page, hasMore, err := store.ListFixtures(ctx, after, "", fixturestore.MaxLimit, "asc", kind)
		if err != nil {
			return nil, err
		}
		for _, f := range page {
			k, err := catalog.Lookup(f.Kind)
			if err != nil {
				return nil, fmt.Errorf("fixture %s: %w", f.ID, err)
			}
			content, err := store.GetFixtureContent(ctx, f.ID)
			if err != nil {
				return nil, err
			}
			items = append(items, roundtrip.Item{Kind: k, Label: f.ID + " " + f.Name, Payload: content})
		}
		if !hasMore || len(page) == 0 {
			return items, nil
		}
		after = page[len(page)-1].ID
	}
}

func newFixturesRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID...",
		Short: "Delete stored fixtures",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd.Context(), func(store fixturestore.FixtureStore) error {
				for _, id := range args {
					if err := store.DeleteFixture(cmd.Context(), id); err != nil {
						return err
					}
					a.logger.Info("fixture deleted", "id", id)
				}
				return nil
			})
		},
	}
}
