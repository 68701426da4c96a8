// Package cli implements the osm2graph command-line interface.
//
// Commands:
//   - build: build graph from local OSM file (.osm, .xml, .pbf or Overpass .json)
//   - fetch: request street network for a bounding box from Overpass API and build graph
//   - inspect: print summary of a graph snapshot
//
// All commands support --verbose (-v) for debug-level logging and --config for TOML settings.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the osm2graph CLI.
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:          "osm2graph",
		Short:        "osm2graph converts OSM street network into a planar graph",
		Long:         `osm2graph splits OSM ways at intersections, assigns dense identifiers, optionally contracts degree-2 vertices and keeps only the component connected to a road class.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if flags.verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("osm2graph %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to TOML config")

	root.AddCommand(newBuildCmd(flags))
	root.AddCommand(newFetchCmd(flags))
	root.AddCommand(newInspectCmd())
	return root
}
