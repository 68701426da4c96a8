package osm2graph

var (
	// DefaultHighwayTypes are `highway` values of roads passable by motor vehicles
	DefaultHighwayTypes = []string{
		"motorway", "motorway_link",
		"trunk", "trunk_link",
		"primary", "primary_link",
		"secondary", "secondary_link",
		"tertiary", "tertiary_link",
		"unclassified", "residential", "living_street", "service", "road",
	}

	highwaysTypes = map[string]struct{}{
		"motorway": {}, "motorway_link": {}, "trunk": {}, "trunk_link": {},
		"primary": {}, "primary_link": {}, "secondary": {}, "secondary_link": {},
		"tertiary": {}, "tertiary_link": {}, "residential": {}, "residential_link": {},
		"living_street": {}, "service": {}, "services": {}, "cycleway": {}, "footway": {},
		"pedestrian": {}, "steps": {}, "track": {}, "unclassified": {}, "road": {},
		"path": {}, "bridleway": {}, "busway": {},
	}
)

// IsKnownHighway returns true for commonly used `highway` tag values
func IsKnownHighway(value string) bool {
	_, ok := highwaysTypes[value]
	return ok
}
