package influenza

import (
	"fmt"
	"strings"
)

// Segment identifies one of the eight genomic segments of an influenza
// virus, numbered by decreasing length.
type Segment uint8

const (
	PB2 Segment = iota + 1
	PB1
	PA
	HA
	NP
	NA
	MP
	NS
)

var segmentNames = [...]string{"PB2", "PB1", "PA", "HA", "NP", "NA", "MP", "NS"}

func (s Segment) String() string {
	if s < PB2 || s > NS {
		return fmt.Sprintf("Segment(%d)", uint8(s))
	}
	return segmentNames[s-1]
}

// ParseSegment maps a segment name to its Segment. "M" is accepted as an
// alias for MP, as some databases name segment 7 that way.
func ParseSegment(name string) (Segment, error) {
	upper := strings.ToUpper(name)
	if upper == "M" {
		return MP, nil
	}
	for i, n := range segmentNames {
		if n == upper {
			return Segment(i + 1), nil
		}
	}
	return 0, fmt.Errorf("unknown segment %q", name)
}
