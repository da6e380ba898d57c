// Package streets is the thin boundary between the lane inference engine
// and the graph-level street network. The network itself -- intersection
// merging, geometry clipping, cycletrack snapping, dual-carriageway
// merging -- is a downstream graph transform this module doesn't build;
// Road is the shape such a transform would consume.
package streets

import (
	"github.com/paulmach/osm"

	"github.com/azybler/osmlanes/pkg/lanes"
)

// Road is one OSM way's centerline, tagged and reduced to its inferred
// lane sequence. It carries no geometry of its own -- that lives on the
// way the caller read from OSM -- only the way's identity, its tags and
// its lanes.
type Road struct {
	WayID osm.WayID
	Tags  osm.Tags
	Lanes []lanes.Lane
}

// BuildRoad runs the full tags -> lanes pipeline for a single way:
// sidewalk pre-pass, lane inference, and assembly, all performed inside
// lanes.InferLanes. BuildRoad itself adds nothing but the wrapper identity
// (way ID), which the lane engine has no business knowing about.
func BuildRoad(wayID osm.WayID, tags osm.Tags, cfg lanes.Config) Road {
	return Road{
		WayID: wayID,
		Tags:  tags,
		Lanes: lanes.InferLanes(tags, cfg),
	}
}
