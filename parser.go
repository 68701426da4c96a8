package osm2graph

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/paulmach/osm"
)

// Builder turns raw OSM data into Graph
type Builder struct {
	logger     *log.Logger
	cfg        *OsmConfiguration
	metadata   *Metadata
	strictMode bool
}

func (builder *Builder) String() string {
	tags := "all"
	if builder.cfg != nil && len(builder.cfg.Tags) > 0 {
		tags = strings.Join(builder.cfg.Tags, ",")
	}
	return fmt.Sprintf(`
Graph builder parameters:
	strict_mode enabled?: %t
	highway types: '%s'
	`,
		builder.strictMode,
		tags,
	)
}

// NewBuilder returns builder with strict mode enabled and discarding logger
func NewBuilder(options ...func(*Builder)) *Builder {
	builder := &Builder{
		logger:     log.New(io.Discard),
		strictMode: true,
	}
	for _, option := range options {
		option(builder)
	}
	return builder
}

// WithLogger sets logger for progress and warnings
func WithLogger(logger *log.Logger) func(*Builder) {
	return func(builder *Builder) {
		if logger != nil {
			builder.logger = logger
		}
	}
}

// WithStrictMode defines what to do with degenerate ways: abort (true) or skip with warning (false)
func WithStrictMode(strictMode bool) func(*Builder) {
	return func(builder *Builder) {
		builder.strictMode = strictMode
	}
}

// WithHighwayTypes keeps only ways which `highway` tag is one of given values
func WithHighwayTypes(highwayTypes []string) func(*Builder) {
	return func(builder *Builder) {
		builder.cfg = &OsmConfiguration{
			EntityName: "highway",
			Tags:       highwayTypes,
		}
	}
}

// WithMetadata overrides metadata otherwise taken from OSM data
func WithMetadata(metadata Metadata) func(*Builder) {
	return func(builder *Builder) {
		builder.metadata = &metadata
	}
}

// BuildGraph converts raw OSM nodes and ways into graph
func BuildGraph(data *osm.OSM, options ...func(*Builder)) (*Graph, error) {
	return NewBuilder(options...).Build(data)
}
