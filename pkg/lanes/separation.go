package lanes

// separationBufferKind maps an OSM cycleway:*:separation:* value to a
// BufferKind. Grounded on classic.rs::osm_separation_type. Unknown values
// (including the deliberately-suppressed "parking_lane") return
// ok == false: no buffer is inserted.
func separationBufferKind(val string) (BufferKind, bool) {
	switch val {
	case "bollard", "vertical_panel":
		return FlexPosts, true
	case "kerb", "separation_kerb":
		return Curb, true
	case "grass_verge", "planter", "tree_row":
		return Planters, true
	case "guard_rail", "jersey_barrier", "railing":
		return JerseyBarrier, true
	case "barred_area", "dashed_line", "solid_line":
		return Stripes, true
	default:
		// "parking_lane" and anything unrecognized fall here.
		return 0, false
	}
}
