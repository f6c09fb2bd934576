// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands provides the watsonctl CLI commands.
package commands

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/leseb/watson-go/pkg/core/config"
	"github.com/leseb/watson-go/pkg/core/roundtrip"
	"github.com/leseb/watson-go/pkg/fixturestore"
	"github.com/leseb/watson-go/pkg/observability/logging"
	"github.com/leseb/watson-go/pkg/provider"

	_ "github.com/leseb/watson-go/pkg/fixturestore/filesystem"
	_ "github.com/leseb/watson-go/pkg/fixturestore/memory"
	_ "github.com/leseb/watson-go/pkg/fixturestore/postgres"
	_ "github.com/leseb/watson-go/pkg/fixturestore/s3"
	_ "github.com/leseb/watson-go/pkg/fixturestore/sqlite"
)

var (
	// Version information set at build time
	Version   = "dev"
	BuildTime = "unknown"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	configPath  string
	logLevel    string
	logFormat   string
	store       string
	storeParams []string

	cfg    *config.Config
	logger *logging.Logger
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "watsonctl",
		Short: "Check Watson Assistant and Discovery payloads against the record models",
		Long: `watsonctl decodes captured Watson Assistant v1 and Discovery v1 JSON
payloads into their record types, re-encodes them and reports every key that
did not survive the round trip. Captured payloads can be kept in a fixture
store and re-verified after model changes.`,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetVersionTemplate(fmt.Sprintf("watsonctl %s (%s)\n", Version, BuildTime))

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Path to configuration file (defaults plus WATSON_* environment when empty)")
	pf.StringVar(&a.logLevel, "log-level", "", "Log level (debug|info|warn|error)")
	pf.StringVar(&a.logFormat, "log-format", "", "Log format (text|json)")
	pf.StringVar(&a.store, "store", "", "Fixture store backend (memory|filesystem|s3|sqlite|postgres)")
	pf.StringArrayVar(&a.storeParams, "store-param", nil, "Fixture store parameter as key=value, repeatable")

	root.AddCommand(newKindsCmd())
	root.AddCommand(newCheckCmd(a))
	root.AddCommand(newFixturesCmd(a))
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	// .env is optional
	_ = godotenv.Load()

	var err error
	if a.configPath != "" {
		a.cfg, err = config.Load(a.configPath)
	} else {
		a.cfg, err = config.Default()
	}
	if err != nil {
		return err
	}

	if a.logLevel != "" {
		if _, err := logging.ParseLevel(a.logLevel); err != nil {
			return err
		}
		a.cfg.Logging.Level = a.logLevel
	}
	if a.logFormat != "" {
		a.cfg.Logging.Format = a.logFormat
	}
	if a.store != "" {
		a.cfg.FixtureStore.Type = a.store
	}

	a.logger = logging.New(logging.Config{
		Level:  a.cfg.Logging.Level,
		Format: a.cfg.Logging.Format,
		Output: cmd.ErrOrStderr(),
	})
	return nil
}

func (a *app) checker() *roundtrip.Checker {
	return &roundtrip.Checker{
		Concurrency: a.cfg.Check.Concurrency,
		StrictNulls: a.cfg.Check.StrictNulls,
		Logger:      a.logger,
	}
}

// openStore opens the configured fixture backend. --store-param values
// override the ones derived from configuration.
func (a *app) openStore(ctx context.Context) (fixturestore.FixtureStore, error) {
	name := a.cfg.FixtureStore.Type
	if !fixturestore.Providers.Has(name) {
		return nil, fmt.Errorf("unknown fixture store %q (available: %v)", name, fixturestore.Providers.Available())
	}

	params := a.cfg.FixtureStore.StoreParams()
	overrides, err := provider.ParseParams(a.storeParams)
	if err != nil {
		return nil, err
	}
	for k, v := range overrides {
		params[k] = v
	}

	store, err := fixturestore.Providers.New(ctx, name, params)
	if err != nil {
		return nil, fmt.Errorf("open %s fixture store: %w", name, err)
	}
	a.logger.Debug("opened fixture store", "type", name)
	return store, nil
}
