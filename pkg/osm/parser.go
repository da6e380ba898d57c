// Package osm ingests an OSM PBF extract and turns each way into a Road
// (tags + inferred lanes). The lane-inference engine itself stays agnostic
// to how tags were obtained; this package is the "named consumer" that
// calls it, kept deliberately close to how a real ingestion pipeline would
// invoke it.
package osm

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"

	"github.com/azybler/osmlanes/pkg/geo"
	"github.com/azybler/osmlanes/pkg/lanes"
	"github.com/azybler/osmlanes/pkg/streets"
)

// ParseResult holds the output of parsing an OSM PBF file.
type ParseResult struct {
	Roads []streets.Road

	// NodeLat/NodeLon retain coordinates for every node referenced by a
	// relevant way, purely so callers can report way length (see
	// WayLength). The lane engine itself never looks at geometry.
	NodeLat map[osm.NodeID]float64
	NodeLon map[osm.NodeID]float64

	endpoints map[osm.WayID][2]osm.NodeID
}

// relevantHighways lists highway tag values the lane engine has a branch
// for. Anything else (buildings, areas, non-highway features) is skipped
// during ingestion; railway=light_rail/rail is handled separately since
// it carries no "highway" tag at all.
var relevantHighways = map[string]bool{
	"motorway": true, "motorway_link": true, "trunk": true, "trunk_link": true,
	"primary": true, "primary_link": true, "secondary": true, "secondary_link": true,
	"tertiary": true, "tertiary_link": true, "unclassified": true,
	"residential": true, "living_street": true, "service": true,
	"cycleway": true, "footway": true, "path": true, "pedestrian": true,
	"steps": true, "track": true, "construction": true,
}

// isRelevantWay reports whether w carries tags the lane engine (and
// sidewalk pre-pass) can meaningfully act on.
func isRelevantWay(tags osm.Tags) bool {
	if relevantHighways[tags.Find("highway")] {
		return true
	}
	v := tags.Find("railway")
	return v == "light_rail" || v == "rail"
}

// wayInfo holds parsed way data collected during Pass 1.
type wayInfo struct {
	ID      osm.WayID
	Tags    osm.Tags
	NodeIDs []osm.NodeID
}

// BBox defines a geographic bounding box for filtering.
// If non-zero, only ways with both endpoints inside the box are kept.
type BBox struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

// IsZero returns true if the bbox is unset.
func (b BBox) IsZero() bool {
	return b.MinLat == 0 && b.MaxLat == 0 && b.MinLng == 0 && b.MaxLng == 0
}

// Contains returns true if the point is inside the bounding box.
func (b BBox) Contains(lat, lng float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lng >= b.MinLng && lng <= b.MaxLng
}

// ParseOptions configures the OSM parser.
type ParseOptions struct {
	BBox   BBox // if non-zero, filter ways to this bounding box
	Config lanes.Config
}

// Parse reads an OSM PBF file and returns one streets.Road per relevant
// way, with lanes already inferred. The reader is consumed twice (seeks
// back to start for the second pass), so it must implement io.ReadSeeker.
func Parse(ctx context.Context, rs io.ReadSeeker, opts ...ParseOptions) (*ParseResult, error) {
	var opt ParseOptions
	if len(opts) > 0 {
		opt = opts[0]
	}
	useBBox := !opt.BBox.IsZero()

	// Pass 1: scan ways to collect referenced node IDs and way tags.
	referencedNodes := make(map[osm.NodeID]struct{})
	var ways []wayInfo

	scanner := osmpbf.New(ctx, rs, 1)
	scanner.SkipNodes = true
	scanner.SkipRelations = true

	for scanner.Scan() {
		obj := scanner.Object()
		w, ok := obj.(*osm.Way)
		if !ok {
			continue
		}
		if !isRelevantWay(w.Tags) {
			continue
		}
		if len(w.Nodes) < 2 {
			continue
		}

		nodeIDs := make([]osm.NodeID, len(w.Nodes))
		for i, wn := range w.Nodes {
			nodeIDs[i] = wn.ID
			referencedNodes[wn.ID] = struct{}{}
		}

		ways = append(ways, wayInfo{ID: w.ID, Tags: w.Tags, NodeIDs: nodeIDs})
	}
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, fmt.Errorf("pass 1 (ways): %w", err)
	}
	scanner.Close()

	log.Printf("Pass 1 complete: %d relevant ways, %d referenced nodes", len(ways), len(referencedNodes))

	// Pass 2: scan nodes to collect coordinates for referenced nodes only.
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek for pass 2: %w", err)
	}

	nodeLat := make(map[osm.NodeID]float64, len(referencedNodes))
	nodeLon := make(map[osm.NodeID]float64, len(referencedNodes))

	scanner = osmpbf.New(ctx, rs, 1)
	scanner.SkipWays = true
	scanner.SkipRelations = true

	for scanner.Scan() {
		obj := scanner.Object()
		n, ok := obj.(*osm.Node)
		if !ok {
			continue
		}
		if _, needed := referencedNodes[n.ID]; !needed {
			continue
		}
		nodeLat[n.ID] = n.Lat
		nodeLon[n.ID] = n.Lon
	}
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, fmt.Errorf("pass 2 (nodes): %w", err)
	}
	scanner.Close()

	log.Printf("Pass 2 complete: %d node coordinates collected", len(nodeLat))

	// Build roads from ways: bbox-filter on endpoints, then run the full
	// tags -> lanes pipeline for each surviving way.
	var roads []streets.Road
	endpoints := make(map[osm.WayID][2]osm.NodeID, len(ways))
	var bboxFiltered int
	var skipped int

	for _, w := range ways {
		first := w.NodeIDs[0]
		last := w.NodeIDs[len(w.NodeIDs)-1]
		fromLat, fromOk := nodeLat[first]
		fromLon := nodeLon[first]
		toLat, toOk := nodeLat[last]
		toLon := nodeLon[last]

		if !fromOk || !toOk {
			skipped++
			continue
		}

		if useBBox && (!opt.BBox.Contains(fromLat, fromLon) || !opt.BBox.Contains(toLat, toLon)) {
			bboxFiltered++
			continue
		}

		roads = append(roads, streets.BuildRoad(w.ID, w.Tags, opt.Config))
		endpoints[w.ID] = [2]osm.NodeID{first, last}
	}

	if skipped > 0 {
		log.Printf("Warning: skipped %d ways due to missing node coordinates", skipped)
	}
	if bboxFiltered > 0 {
		log.Printf("Filtered %d ways outside bounding box", bboxFiltered)
	}
	log.Printf("Built %d roads", len(roads))

	return &ParseResult{
		Roads:     roads,
		NodeLat:   nodeLat,
		NodeLon:   nodeLon,
		endpoints: endpoints,
	}, nil
}

// WayLength returns the great-circle distance in meters between a road's
// first and last node, using the coordinates collected during Parse.
// Returns ok == false if wayID wasn't part of this parse.
func (r *ParseResult) WayLength(wayID osm.WayID) (meters float64, ok bool) {
	ends, found := r.endpoints[wayID]
	if !found {
		return 0, false
	}
	fromLat, fromLon := r.NodeLat[ends[0]], r.NodeLon[ends[0]]
	toLat, toLon := r.NodeLat[ends[1]], r.NodeLon[ends[1]]
	return geo.Haversine(fromLat, fromLon, toLat, toLon), true
}
