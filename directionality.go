package osm2graph

// Directionality tells whether an edge may be traversed in its stored order only or in both orders
type Directionality int8

const (
	DIRECTIONALITY_REVERSE = Directionality(iota - 1)
	DIRECTIONALITY_BIDIRECTIONAL
	DIRECTIONALITY_ONEWAY
)

func (iotaIdx Directionality) String() string {
	return [...]string{"reverse", "bidirectional", "oneway"}[iotaIdx+1]
}

// IsDirected returns true for anything but bidirectional
func (iotaIdx Directionality) IsDirected() bool {
	return iotaIdx != DIRECTIONALITY_BIDIRECTIONAL
}

// onewayValue returns normalized value for `oneway` tag
func (iotaIdx Directionality) onewayValue() string {
	if iotaIdx == DIRECTIONALITY_ONEWAY {
		return "yes"
	}
	return "no"
}

// parseDirectionality returns directionality for given `oneway` tag value.
// Empty string stands for absent tag.
func parseDirectionality(oneway string) Directionality {
	switch oneway {
	case "-1", "reverse":
		return DIRECTIONALITY_REVERSE
	case "", "0", "no", "false", "reversible":
		return DIRECTIONALITY_BIDIRECTIONAL
	default:
		return DIRECTIONALITY_ONEWAY
	}
}
