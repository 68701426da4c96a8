package cli

import (
	"github.com/LdDl/osm2graph"
	"github.com/LdDl/osm2graph/overpass"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newFetchCmd(root *rootFlags) *cobra.Command {
	flags := &processFlags{}
	var (
		bboxStr  string
		endpoint string
	)
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch street network from Overpass API and build graph",
		Example: `  osm2graph fetch --bbox 48.85,2.33,48.86,2.35 --simplify -o paris.geojson
  osm2graph fetch --bbox 55.75,37.61,55.76,37.63 --component primary`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg, err := loadConfig(root.configPath)
			if err != nil {
				return err
			}
			flags.apply(cmd, &cfg)
			if cmd.Flags().Changed("endpoint") {
				cfg.Overpass.Endpoint = endpoint
			}
			if err := validateConfig(cfg); err != nil {
				return err
			}

			bbox, err := overpass.ParseBBox(bboxStr)
			if err != nil {
				return err
			}
			highways := cfg.Highways
			if len(highways) == 0 {
				highways = osm2graph.DefaultHighwayTypes
			}

			options := []func(*overpass.Client){
				overpass.WithLogger(logger),
				overpass.WithTimeout(cfg.Overpass.Timeout()),
			}
			if cfg.Overpass.Endpoint != "" {
				options = append(options, overpass.WithEndpoint(cfg.Overpass.Endpoint))
			}
			client := overpass.NewClient(options...)

			p := newProgress(logger)
			data, metadata, err := client.Fetch(ctx, bbox, highways)
			if err != nil {
				return errors.Wrap(err, "Can't fetch OSM data")
			}
			p.done("Fetched OSM data")

			graph, err := processGraph(ctx, data, metadata, cfg)
			if err != nil {
				return err
			}
			return writeGraph(cmd.OutOrStdout(), graph, cfg)
		},
	}
	cmd.Flags().StringVar(&bboxStr, "bbox", "", "bounding box: south,west,north,east")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "Overpass interpreter URL")
	_ = cmd.MarkFlagRequired("bbox")
	flags.register(cmd)
	return cmd
}
