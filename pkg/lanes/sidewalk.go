package lanes

const sidewalkKey = "sidewalk"

// inferSidewalkTags fills in a missing "sidewalk" tag before the main
// cascade runs. It works on its own copy of tags (the caller's Tags,
// already cloned by InferLanes) and may insert a synthetic "sidewalk" tag.
// Grounded directly on osm2streets/src/lanes/classic.rs::infer_sidewalk_tags.
func inferSidewalkTags(t Tags, cfg Config) Tags {
	if has(t, sidewalkKey) || !cfg.InferredSidewalks {
		return t
	}

	if has(t, "sidewalk:left") || has(t, "sidewalk:right") {
		right := !is(t, "sidewalk:right", "no")
		left := !is(t, "sidewalk:left", "no")
		switch {
		case right && left:
			t = upsert(t, sidewalkKey, "both")
		case right && !left:
			t = upsert(t, sidewalkKey, "right")
		case !right && left:
			t = upsert(t, sidewalkKey, "left")
		default:
			t = upsert(t, sidewalkKey, "none")
		}
		return t
	}

	if isAny(t, "highway", "motorway", "motorway_link") ||
		isAny(t, "junction", "intersection", "roundabout") ||
		is(t, "foot", "no") ||
		is(t, "highway", "service") ||
		isAny(t, "highway", "cycleway", "pedestrian", "track") {
		return upsert(t, sidewalkKey, "none")
	}

	if is(t, "oneway", "yes") {
		if cfg.DrivingSide == Right {
			t = upsert(t, sidewalkKey, "right")
		} else {
			t = upsert(t, sidewalkKey, "left")
		}
		if isAny(t, "highway", "residential", "living_street") && !is(t, "dual_carriageway", "yes") {
			t = upsert(t, sidewalkKey, "both")
		}
		return t
	}

	return upsert(t, sidewalkKey, "both")
}
