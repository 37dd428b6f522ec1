// Package main provides aromactl, a command-line client for the storefront search.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/aromax/storefront/internal/domain"
	"github.com/aromax/storefront/internal/infrastructure/catalog"
	"github.com/aromax/storefront/internal/observability"
	"github.com/aromax/storefront/internal/usecase"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const loadTimeout = 30 * time.Second

// cli holds global flags and the services built from them
type cli struct {
	catalogPath string
	outputJSON  bool
	noColor     bool
	logLevel    string
	debug       bool

	out    io.Writer
	ui     *UI
	store  *catalog.Store
	search *usecase.SearchService
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &cli{out: out}

	rootCmd := &cobra.Command{
		Use:   "aromactl",
		Short: "Search the Aromax fragrance catalog from the terminal",
		Long: `aromactl runs storefront searches against the built-in catalog or a
YAML/JSON catalog file.

Queries understand price bounds ("under $80", "over 90", "$70-$90"),
day or evening wear, scent families and notes.

All commands support --json for automation.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	rootCmd.SetOut(out)
	rootCmd.PersistentFlags().StringVar(&c.catalogPath, "catalog", "", "catalog file (.yaml, .yml or .json); defaults to the built-in catalog")
	rootCmd.PersistentFlags().BoolVar(&c.outputJSON, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&c.noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&c.debug, "debug", false, "log how each query is parsed and filtered")

	rootCmd.AddCommand(
		newSearchCmd(c),
		newParseCmd(c),
		newSuggestCmd(c),
		newRecommendCmd(c),
		newAskCmd(c),
		newTrackCmd(c),
	)

	return rootCmd
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the catalog and builds the search service
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	if c.noColor {
		color.NoColor = true
	}
	c.ui = NewUI(c.out, c.outputJSON)

	level := c.logLevel
	if c.debug {
		level = "debug"
	}
	logger := observability.NewLogger(observability.LogConfig{
		Level:       level,
		Format:      "console",
		Output:      os.Stderr,
		ServiceName: "aromactl",
	})

	var source domain.CatalogSource = catalog.NewEmbeddedSource()
	if c.catalogPath != "" {
		source = catalog.NewFileSource(c.catalogPath)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), loadTimeout)
	defer cancel()

	c.store = catalog.NewStore(source, observability.Component(logger, "catalog"))
	if _, err := c.store.Reload(ctx); err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	c.search = usecase.NewSearchService(c.store, nil, observability.Component(logger, "search"), usecase.SearchServiceConfig{
		EnableDebugLogging: c.debug,
	})
	return nil
}

// writeJSON prints v as indented JSON
func (c *cli) writeJSON(v interface{}) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
