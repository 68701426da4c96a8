package osm2graph

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"
)

// OSMScanner is implemented by osmxml and osmpbf scanners
type OSMScanner interface {
	Scan() bool
	Close() error
	Err() error
	Object() osm.Object
}

// ReadOSM reads nodes and ways from file. Format is guessed by extension:
// '.osm' or '.xml' for OSM XML, '.pbf' for PBF and '.json' for Overpass JSON answer.
// Order of elements is preserved.
func ReadOSM(ctx context.Context, filename string) (*osm.OSM, Metadata, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, Metadata{}, errors.Wrap(err, "File open")
	}
	defer file.Close()

	var scanner OSMScanner
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		data, metadata, err := DecodeOverpassJSON(file)
		if err != nil {
			return nil, Metadata{}, errors.Wrapf(err, "Can't decode file '%s'", filename)
		}
		metadata.Source = filename
		return data, metadata, nil
	case ".osm", ".xml":
		scanner = osmxml.New(ctx, file)
	case ".pbf":
		scanner = osmpbf.New(ctx, file, runtime.GOMAXPROCS(-1))
	default:
		return nil, Metadata{}, fmt.Errorf("File extension '%s' for file '%s' is not handled yet", ext, filename)
	}
	defer scanner.Close()

	data, err := scanOSM(scanner)
	if err != nil {
		return nil, Metadata{}, errors.Wrapf(err, "Can't scan file '%s'", filename)
	}
	return data, Metadata{Source: filename}, nil
}

// scanOSM collects nodes and ways in order they are met. Relations are ignored.
func scanOSM(scanner OSMScanner) (*osm.OSM, error) {
	data := &osm.OSM{}
	for scanner.Scan() {
		switch obj := scanner.Object().(type) {
		case *osm.Node:
			data.Nodes = append(data.Nodes, obj)
		case *osm.Way:
			data.Ways = append(data.Ways, obj)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return data, nil
}
