package cli

import (
	"fmt"
	"os"

	"github.com/LdDl/osm2graph"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print summary of graph snapshot",
		Long:  `Print metadata and numbers of records of graph snapshot written with '--format snapshot'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return errors.Wrap(err, "Can't read snapshot")
			}
			graph, err := osm2graph.UnmarshalSnapshot(data)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "source: %s\n", graph.Metadata.Source)
			if graph.Metadata.Timestamp != "" {
				fmt.Fprintf(out, "timestamp: %s\n", graph.Metadata.Timestamp)
			}
			fmt.Fprintln(out, graph.Stats())
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "graph snapshot")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
