package lanes

// WidthReason pairs a candidate width with a short label explaining where
// it came from. typicalWidths returns these ordered most-to-least specific;
// the engine always takes the first one. The ordered-list shape (rather
// than a single float) keeps the "why this width" reasoning inspectable for
// callers that want to explain their output, without complicating the
// common path.
type WidthReason struct {
	Width  Distance
	Reason string
}

// Meters-based defaults. Ideally this table lives in a configuration
// artifact rather than Go source, but the engine has no config-loading
// layer of its own, so it stays a plain map for now.
var defaultLaneWidth = map[LaneType]Distance{
	Driving:        3.5,
	Bus:            3.5,
	Parking:        2.5,
	Sidewalk:       1.5,
	Shoulder:       1.5,
	Biking:         1.8,
	SharedLeftTurn: 3.0,
	SharedUse:      3.0,
	Footway:        1.5,
	Construction:   3.5,
	LightRail:      5.0,
	Buffer:         0.5,
}

var narrowHighways = map[string]bool{
	"service":       true,
	"track":         true,
	"living_street": true,
}

var wideHighways = map[string]bool{
	"motorway":      true,
	"motorway_link": true,
	"trunk":         true,
}

// typicalWidths is the width oracle: (lane_type, tags) -> ordered
// (width, reason) pairs, first wins. Always returns at least one element.
func typicalWidths(lt LaneType, t Tags) []WidthReason {
	base, ok := defaultLaneWidth[lt]
	if !ok {
		base = 3.0
	}

	hw := get(t, "highway")
	var out []WidthReason

	if w, ok := getPositiveFloat(t, "width:lanes"); ok {
		out = append(out, WidthReason{Distance(w), "width:lanes tag"})
	}

	if lt == Driving || lt == Bus {
		switch {
		case wideHighways[hw]:
			out = append(out, WidthReason{3.75, "wide highway class " + hw})
		case narrowHighways[hw]:
			out = append(out, WidthReason{2.75, "narrow highway class " + hw})
		}
	}

	out = append(out, WidthReason{base, "default " + lt.String() + " width"})
	return out
}

// defaultWidth returns the first (most specific) candidate width for lt
// given tags.
func defaultWidth(lt LaneType, t Tags) Distance {
	return typicalWidths(lt, t)[0].Width
}
