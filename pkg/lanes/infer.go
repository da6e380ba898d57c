package lanes

// InferLanes is the engine's single public operation: a pure function from
// (tags, config) to a left-to-right sequence of lanes. It never fails and
// never mutates the tags the caller passed in -- the sidewalk pre-pass and
// all subsequent lookups operate on a local clone.
//
// Grounded on osm2streets/src/lanes/classic.rs::get_lane_specs_ltr; the
// branch order below is load-bearing and must not be reordered or
// "cleaned up" -- real-world tag combinations depend on the exact
// priority this cascade encodes.
func InferLanes(tags Tags, cfg Config) []Lane {
	if cfg.ExperimentalInference {
		// The osm2lanes-style engine is a separate, pluggable alternative
		// that this function doesn't implement. Callers that want it must
		// dispatch to a different engine before reaching here -- we fall
		// through to the classic behavior rather than panicking, keeping
		// the engine total.
	}

	t := clone(tags)
	t = inferSidewalkTags(t, cfg)

	mkFwd := func(lt LaneType) Lane {
		return Lane{Type: lt, Dir: Fwd, Width: defaultWidth(lt, t)}
	}
	mkBack := func(lt LaneType) Lane {
		return Lane{Type: lt, Dir: Back, Width: defaultWidth(lt, t)}
	}

	// --- Easy special cases first ---

	if isAny(t, "railway", "light_rail", "rail") {
		return []Lane{mkFwd(LightRail)}
	}

	if is(t, "highway", "cycleway") {
		fwdSide := []Lane{mkFwd(Biking)}
		var backSide []Lane
		if !is(t, "oneway", "yes") {
			backSide = []Lane{mkBack(Biking)}
		}
		if !is(t, "foot", "no") {
			fwdSide = append(fwdSide, mkFwd(Shoulder))
			if len(backSide) > 0 {
				backSide = append(backSide, mkBack(Shoulder))
			}
		}
		return assembleLTR(fwdSide, backSide, cfg.DrivingSide)
	}

	if is(t, "highway", "footway") && isAny(t, "footway", "crossing", "sidewalk") {
		return []Lane{mkFwd(Sidewalk)}
	}

	if isAny(t, "highway", "footway", "path", "pedestrian", "steps", "track") {
		if isAny(t, "bicycle", "designated", "yes", "dismount") {
			return []Lane{mkFwd(SharedUse)}
		}
		return []Lane{mkFwd(Footway)}
	}

	// --- Normal road construction ---

	oneway := isAny(t, "oneway", "yes", "reversible") || is(t, "junction", "roundabout")

	numFwd := 1
	if n, ok := getUint(t, "lanes:forward"); ok {
		numFwd = n
	} else if n, ok := getUint(t, "lanes"); ok {
		if oneway {
			numFwd = n
		} else if n%2 == 0 {
			numFwd = n / 2
		} else {
			numFwd = n/2 + 1
		}
	}

	numBack := 0
	if n, ok := getUint(t, "lanes:backward"); ok {
		numBack = n
	} else if n, ok := getUint(t, "lanes"); ok {
		base := n - numFwd
		if base < 0 {
			base = 0
		}
		if oneway {
			numBack = base
		} else {
			numBack = base
			if numBack < 1 {
				numBack = 1
			}
		}
	} else if !oneway {
		numBack = 1
	}

	drivingLane := classifyDrivingLane(t)

	fwdSide := make([]Lane, 0, numFwd+2)
	for i := 0; i < numFwd; i++ {
		fwdSide = append(fwdSide, mkFwd(drivingLane))
	}
	backSide := make([]Lane, 0, numBack+2)
	for i := 0; i < numBack; i++ {
		backSide = append(backSide, mkBack(drivingLane))
	}

	if is(t, "lanes:both_ways", "1") || is(t, "centre_turn_lane", "yes") {
		fwdSide = append([]Lane{mkFwd(SharedLeftTurn)}, fwdSide...)
	}

	if drivingLane == Construction {
		return assembleLTR(fwdSide, backSide, cfg.DrivingSide)
	}

	applyBusLaneSpecs(t, oneway, &fwdSide, &backSide)
	applyCycleways(t, cfg, oneway, mkFwd, mkBack, &fwdSide, &backSide)
	applySeparationBuffers(t, mkFwd, mkBack, &fwdSide, &backSide)

	if drivingLane == Driving {
		applyParking(t, mkFwd, mkBack, &fwdSide, &backSide)
	}

	applySidewalks(t, cfg, mkFwd, mkBack, &fwdSide, &backSide)
	applySidewalkWidths(t, cfg, &fwdSide, &backSide)
	applyShoulders(t, cfg, mkFwd, mkBack, &fwdSide, &backSide)

	return assembleLTR(fwdSide, backSide, cfg.DrivingSide)
}

// classifyDrivingLane picks the driving-lane type per a fixed priority list:
// bus-only access overrides win first, then construction/no-access, then
// plain driving.
func classifyDrivingLane(t Tags) LaneType {
	if is(t, "access", "no") && (is(t, "bus", "yes") || isAny(t, "psv", "yes", "designated")) {
		return Bus
	}
	if cond := get(t, "motor_vehicle:conditional"); hasPrefix(cond, "no") && is(t, "bus", "yes") {
		return Bus
	}
	if is(t, "access", "no") || is(t, "highway", "construction") {
		return Construction
	}
	return Driving
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

// applyBusLaneSpecs applies per-lane bus/psv designations sourced from a
// priority list of tags, only when the part count exactly matches the
// side's lane count (after allowing for a leading SharedLeftTurn on the
// forward side). Mismatches are silently ignored, keeping the engine total.
func applyBusLaneSpecs(t Tags, oneway bool, fwdSide, backSide *[]Lane) {
	fwdSpec := get(t, "bus:lanes:forward")
	if fwdSpec == "" {
		fwdSpec = get(t, "psv:lanes:forward")
	}
	if fwdSpec == "" && oneway {
		fwdSpec = get(t, "bus:lanes")
		if fwdSpec == "" {
			fwdSpec = get(t, "psv:lanes")
		}
	}
	if fwdSpec != "" {
		parts := splitBusLanesSpec(fwdSpec)
		offset := 0
		if len(*fwdSide) > 0 && (*fwdSide)[0].Type == SharedLeftTurn {
			offset = 1
		}
		if len(parts) == len(*fwdSide)-offset {
			for idx, part := range parts {
				if part == "designated" {
					(*fwdSide)[idx+offset].Type = Bus
				}
			}
		}
	}

	backSpec := get(t, "bus:lanes:backward")
	if backSpec == "" {
		backSpec = get(t, "psv:lanes:backward")
	}
	if backSpec != "" {
		parts := splitBusLanesSpec(backSpec)
		if len(parts) == len(*backSide) {
			for idx, part := range parts {
				if part == "designated" {
					(*backSide)[idx].Type = Bus
				}
			}
		}
	}
}

// applyCycleways runs the fixed-priority bike lane / cycle track logic.
// The cycleway:left branch under left-hand driving is reproduced exactly
// as the source leaves it (asymmetric, not symmetrized) -- a known,
// intentional limitation, not an oversight.
func applyCycleways(t Tags, cfg Config, oneway bool, mkFwd, mkBack func(LaneType) Lane, fwdSide, backSide *[]Lane) {
	if isAny(t, "cycleway", "lane", "track") {
		*fwdSide = append(*fwdSide, mkFwd(Biking))
		if len(*backSide) > 0 {
			*backSide = append(*backSide, mkBack(Biking))
		}
		return
	}
	if isAny(t, "cycleway:both", "lane", "track") {
		*fwdSide = append(*fwdSide, mkFwd(Biking))
		*backSide = append(*backSide, mkBack(Biking))
		return
	}

	// Note: we look at driving_side frequently here to match up left/right
	// with fwd/back. Driving right: right == fwd. Driving left: right == back.
	if isAny(t, "cycleway:right", "lane", "track") {
		if cfg.DrivingSide == Right {
			if is(t, "cycleway:right:oneway", "no") || is(t, "oneway:bicycle", "no") {
				*fwdSide = append(*fwdSide, mkBack(Biking))
			}
			*fwdSide = append(*fwdSide, mkFwd(Biking))
		} else {
			if is(t, "cycleway:right:oneway", "no") || is(t, "oneway:bicycle", "no") {
				*backSide = append(*backSide, mkFwd(Biking))
			}
			*backSide = append(*backSide, mkBack(Biking))
		}
	}

	if is(t, "cycleway:left", "opposite_lane") || is(t, "cycleway", "opposite_lane") {
		if cfg.DrivingSide == Right {
			*backSide = append(*backSide, mkBack(Biking))
		} else {
			*fwdSide = append(*fwdSide, mkFwd(Biking))
		}
	}

	if isAny(t, "cycleway:left", "lane", "opposite_track", "track") {
		if cfg.DrivingSide == Right {
			if is(t, "cycleway:left:oneway", "no") || is(t, "oneway:bicycle", "no") {
				*backSide = append(*backSide, mkFwd(Biking))
				*backSide = append(*backSide, mkBack(Biking))
			} else if oneway {
				*fwdSide = append([]Lane{mkFwd(Biking)}, *fwdSide...)
			} else {
				*backSide = append(*backSide, mkBack(Biking))
			}
		} else {
			// Left-hand driving: the source explicitly defers a full
			// mirror of the right-hand logic above pending test cases.
			// Reproduced literally here, not symmetrized.
			if is(t, "cycleway:left:oneway", "no") || is(t, "oneway:bicycle", "no") {
				*fwdSide = append(*fwdSide, mkBack(Biking))
			}
			*fwdSide = append(*fwdSide, mkFwd(Biking))
		}
	}
}

// applySeparationBuffers translates up to three cycleway:*:separation:*
// tags into Buffer lanes adjacent to the first Biking lane found on the
// relevant side. Grounded on classic.rs's "post-processing" approach to
// Proposed_features/cycleway:separation.
func applySeparationBuffers(t Tags, mkFwd, mkBack func(LaneType) Lane, fwdSide, backSide *[]Lane) {
	if kind, ok := separationBufferKind(get(t, "cycleway:right:separation:left")); ok {
		if idx := firstBiking(*fwdSide); idx >= 0 {
			*fwdSide = insertAt(*fwdSide, idx, fwdBuffer(mkFwd, kind))
		}
	}
	if kind, ok := separationBufferKind(get(t, "cycleway:left:separation:left")); ok {
		if idx := firstBiking(*backSide); idx >= 0 {
			*backSide = insertAt(*backSide, idx, fwdBuffer(mkBack, kind))
		}
	}
	if kind, ok := separationBufferKind(get(t, "cycleway:left:separation:right")); ok {
		// Assumes a one-way road -- that's why we don't look at backSide.
		if idx := firstBiking(*fwdSide); idx >= 0 {
			*fwdSide = insertAt(*fwdSide, idx+1, fwdBuffer(mkFwd, kind))
		}
	}
}

func fwdBuffer(mk func(LaneType) Lane, kind BufferKind) Lane {
	l := mk(Buffer)
	l.Buffer = kind
	return l
}

func firstBiking(side []Lane) int {
	for i, l := range side {
		if l.Type == Biking {
			return i
		}
	}
	return -1
}

func insertAt(side []Lane, idx int, l Lane) []Lane {
	side = append(side, Lane{})
	copy(side[idx+1:], side[idx:])
	side[idx] = l
	return side
}

// applyParking is only ever called when the driving-lane type is Driving.
func applyParking(t Tags, mkFwd, mkBack func(LaneType) Lane, fwdSide, backSide *[]Lane) {
	hasParking := func(key string) bool {
		return isAny(t, key, "parallel", "diagonal", "perpendicular")
	}
	if hasParking("parking:lane:right") || hasParking("parking:lane:both") {
		*fwdSide = append(*fwdSide, mkFwd(Parking))
	}
	if hasParking("parking:lane:left") || hasParking("parking:lane:both") {
		*backSide = append(*backSide, mkBack(Parking))
	}
}

// applySidewalks turns the sidewalk tag (set directly or by the pre-pass)
// into Sidewalk lanes.
func applySidewalks(t Tags, cfg Config, mkFwd, mkBack func(LaneType) Lane, fwdSide, backSide *[]Lane) {
	switch get(t, sidewalkKey) {
	case "both":
		*fwdSide = append(*fwdSide, mkFwd(Sidewalk))
		*backSide = append(*backSide, mkBack(Sidewalk))
	case "separate":
		if cfg.InferredSidewalks {
			*fwdSide = append(*fwdSide, mkFwd(Sidewalk))
			if len(*backSide) > 0 {
				*backSide = append(*backSide, mkBack(Sidewalk))
			}
		}
	case "right":
		if cfg.DrivingSide == Right {
			*fwdSide = append(*fwdSide, mkFwd(Sidewalk))
		} else {
			*backSide = append(*backSide, mkBack(Sidewalk))
		}
	case "left":
		if cfg.DrivingSide == Right {
			*backSide = append(*backSide, mkBack(Sidewalk))
		} else {
			*fwdSide = append(*fwdSide, mkFwd(Sidewalk))
		}
	}
}

// applySidewalkWidths applies an explicit sidewalk width override. Plays
// fast-and-loose about checking the modified lane actually is a sidewalk,
// matching the source's own caveat about this being provisional pending a
// more careful osm2lanes cutover.
func applySidewalkWidths(t Tags, cfg Config, fwdSide, backSide *[]Lane) {
	if w, ok := getPositiveFloat(t, "sidewalk:left:width"); ok {
		if cfg.DrivingSide == Right {
			setLast(*backSide, Distance(w))
		} else {
			setLast(*fwdSide, Distance(w))
		}
	}
	if w, ok := getPositiveFloat(t, "sidewalk:right:width"); ok {
		if cfg.DrivingSide == Right {
			setLast(*fwdSide, Distance(w))
		} else {
			setLast(*backSide, Distance(w))
		}
	}
}

func setLast(side []Lane, w Distance) {
	if len(side) == 0 {
		return
	}
	side[len(side)-1].Width = w
}

// applyShoulders fills in Shoulder lanes at the outer edges, skipping any
// side that already ends in a Sidewalk lane.
func applyShoulders(t Tags, cfg Config, mkFwd, mkBack func(LaneType) Lane, fwdSide, backSide *[]Lane) {
	needFwd := len(*fwdSide) == 0 || (*fwdSide)[len(*fwdSide)-1].Type != Sidewalk
	needBack := len(*backSide) == 0 || (*backSide)[len(*backSide)-1].Type != Sidewalk

	if isAny(t, "highway", "motorway", "motorway_link", "construction") ||
		is(t, "foot", "no") || is(t, "access", "no") || is(t, "motorroad", "yes") {
		needFwd = false
		needBack = false
	}
	if is(t, "oneway", "yes") {
		needBack = false
	}

	if cfg.InferredSidewalks || is(t, "highway", "living_street") {
		if needFwd {
			*fwdSide = append(*fwdSide, mkFwd(Shoulder))
		}
		if needBack {
			*backSide = append(*backSide, mkBack(Shoulder))
		}
	}
}
