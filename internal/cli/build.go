package cli

import (
	"github.com/LdDl/osm2graph"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newBuildCmd(root *rootFlags) *cobra.Command {
	flags := &processFlags{}
	var file string
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build graph from local OSM file",
		Long:  `Build graph from local OSM file. Supported formats: OSM XML (.osm, .xml), PBF (.pbf) and Overpass JSON answer (.json).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg, err := loadConfig(root.configPath)
			if err != nil {
				return err
			}
			flags.apply(cmd, &cfg)
			if err := validateConfig(cfg); err != nil {
				return err
			}

			p := newProgress(logger)
			data, metadata, err := osm2graph.ReadOSM(ctx, file)
			if err != nil {
				return errors.Wrap(err, "Can't read OSM data")
			}
			p.done("Read OSM data")

			graph, err := processGraph(ctx, data, metadata, cfg)
			if err != nil {
				return err
			}
			return writeGraph(cmd.OutOrStdout(), graph, cfg)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "OSM file (.osm, .xml, .pbf, .json)")
	_ = cmd.MarkFlagRequired("file")
	flags.register(cmd)
	return cmd
}
