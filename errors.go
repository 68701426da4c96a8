package osm2graph

import (
	"github.com/pkg/errors"
)

var (
	// ErrMalformedInput is returned when a way references node which is not present in the data
	ErrMalformedInput = errors.New("malformed input")
	// ErrDegenerateWay is returned for a way with fewer than 2 nodes (strict mode only)
	ErrDegenerateWay = errors.New("degenerate way")
	// ErrInconsistentAdjacency is returned when vertex adjacency disagrees with the live edges.
	// It indicates a bug in a previous structural pass.
	ErrInconsistentAdjacency = errors.New("inconsistent adjacency")
)
