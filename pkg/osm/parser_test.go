package osm

import (
	"testing"

	"github.com/paulmach/osm"
)

func TestIsRelevantWay(t *testing.T) {
	tests := []struct {
		name string
		tags osm.Tags
		want bool
	}{
		{
			name: "residential road",
			tags: osm.Tags{{Key: "highway", Value: "residential"}},
			want: true,
		},
		{
			name: "motorway",
			tags: osm.Tags{{Key: "highway", Value: "motorway"}},
			want: true,
		},
		{
			name: "footway",
			tags: osm.Tags{{Key: "highway", Value: "footway"}},
			want: true,
		},
		{
			name: "cycleway",
			tags: osm.Tags{{Key: "highway", Value: "cycleway"}},
			want: true,
		},
		{
			name: "service road",
			tags: osm.Tags{{Key: "highway", Value: "service"}},
			want: true,
		},
		{
			name: "light rail",
			tags: osm.Tags{{Key: "railway", Value: "light_rail"}},
			want: true,
		},
		{
			name: "heavy rail",
			tags: osm.Tags{{Key: "railway", Value: "rail"}},
			want: true,
		},
		{
			name: "subway (not a lane-bearing railway)",
			tags: osm.Tags{{Key: "railway", Value: "subway"}},
			want: false,
		},
		{
			name: "building, no highway tag",
			tags: osm.Tags{{Key: "building", Value: "yes"}},
			want: false,
		},
		{
			name: "no highway or railway tag",
			tags: osm.Tags{{Key: "name", Value: "Some Street"}},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isRelevantWay(tt.tags)
			if got != tt.want {
				t.Errorf("isRelevantWay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBBoxContains(t *testing.T) {
	b := BBox{MinLat: 1.0, MaxLat: 2.0, MinLng: 103.0, MaxLng: 104.0}

	tests := []struct {
		name     string
		lat, lng float64
		want     bool
	}{
		{"inside", 1.5, 103.5, true},
		{"on min corner", 1.0, 103.0, true},
		{"on max corner", 2.0, 104.0, true},
		{"north of box", 2.5, 103.5, false},
		{"west of box", 1.5, 102.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.lat, tt.lng); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.lat, tt.lng, got, tt.want)
			}
		})
	}
}

func TestBBoxIsZero(t *testing.T) {
	if !(BBox{}).IsZero() {
		t.Error("zero-value BBox should report IsZero() == true")
	}
	if (BBox{MaxLat: 1}).IsZero() {
		t.Error("non-zero BBox should report IsZero() == false")
	}
}
