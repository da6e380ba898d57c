package main

import (
	"github.com/azybler/osmlanes/pkg/lanes"
	"github.com/azybler/osmlanes/pkg/streets"
)

// laneJSON is the newline-delimited JSON shape for one lane. Lane's own
// types (LaneType, Direction, BufferKind) are small enums with String()
// methods meant for debug output, not JSON tags, so this view renders them
// as their string form rather than their bare int value.
type laneJSON struct {
	Type      string  `json:"type"`
	Direction string  `json:"direction"`
	WidthM    float64 `json:"width_m"`
	Buffer    string  `json:"buffer,omitempty"`
}

type roadJSONView struct {
	WayID int64      `json:"way_id"`
	Lanes []laneJSON `json:"lanes"`
}

func roadJSON(r streets.Road) roadJSONView {
	out := roadJSONView{WayID: int64(r.WayID), Lanes: make([]laneJSON, 0, len(r.Lanes))}
	for _, l := range r.Lanes {
		lj := laneJSON{
			Type:      l.Type.String(),
			Direction: l.Dir.String(),
			WidthM:    l.Width.Meters(),
		}
		if l.Type == lanes.Buffer {
			lj.Buffer = l.Buffer.String()
		}
		out.Lanes = append(out.Lanes, lj)
	}
	return out
}
