package overpass

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// BBox is a bounding box in Overpass order: south, west, north, east
type BBox struct {
	South float64
	West  float64
	North float64
	East  float64
}

func (bbox BBox) String() string {
	return fmt.Sprintf("%s,%s,%s,%s",
		strconv.FormatFloat(bbox.South, 'f', -1, 64),
		strconv.FormatFloat(bbox.West, 'f', -1, 64),
		strconv.FormatFloat(bbox.North, 'f', -1, 64),
		strconv.FormatFloat(bbox.East, 'f', -1, 64),
	)
}

// Validate checks coordinates ranges and order
func (bbox BBox) Validate() error {
	if bbox.South < -90 || bbox.North > 90 || bbox.South >= bbox.North {
		return errors.Errorf("Bad latitudes in bbox: south %f, north %f", bbox.South, bbox.North)
	}
	if bbox.West < -180 || bbox.East > 180 || bbox.West >= bbox.East {
		return errors.Errorf("Bad longitudes in bbox: west %f, east %f", bbox.West, bbox.East)
	}
	return nil
}

// ParseBBox parses 'south,west,north,east' string
func ParseBBox(str string) (BBox, error) {
	parts := strings.Split(str, ",")
	if len(parts) != 4 {
		return BBox{}, errors.Errorf("BBox should contain 4 comma-separated values, got '%s'", str)
	}
	values := [4]float64{}
	for i, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return BBox{}, errors.Wrapf(err, "Can't parse bbox value '%s'", part)
		}
		values[i] = value
	}
	bbox := BBox{South: values[0], West: values[1], North: values[2], East: values[3]}
	return bbox, bbox.Validate()
}
