package lanes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInferSidewalkTags(t *testing.T) {
	tests := []struct {
		name string
		tags Tags
		cfg  Config
		want string // expected sidewalk value, "" if untouched
	}{
		{
			name: "disabled by config",
			tags: Tags{tag("highway", "residential")},
			cfg:  Config{InferredSidewalks: false},
			want: "",
		},
		{
			name: "already tagged, left alone",
			tags: Tags{tag("highway", "residential"), tag("sidewalk", "none")},
			cfg:  Config{InferredSidewalks: true},
			want: "none",
		},
		{
			name: "sidewalk:right present, sidewalk:left absent -> both (absence defaults to present)",
			tags: Tags{tag("highway", "residential"), tag("sidewalk:right", "yes")},
			cfg:  Config{InferredSidewalks: true},
			want: "both",
		},
		{
			name: "sidewalk:left=no, sidewalk:right=yes -> right",
			tags: Tags{
				tag("highway", "residential"),
				tag("sidewalk:left", "no"), tag("sidewalk:right", "yes"),
			},
			cfg:  Config{InferredSidewalks: true},
			want: "right",
		},
		{
			name: "both sides explicitly present -> both",
			tags: Tags{
				tag("highway", "residential"),
				tag("sidewalk:left", "yes"), tag("sidewalk:right", "yes"),
			},
			cfg:  Config{InferredSidewalks: true},
			want: "both",
		},
		{
			name: "both sides no -> none",
			tags: Tags{
				tag("highway", "residential"),
				tag("sidewalk:left", "no"), tag("sidewalk:right", "no"),
			},
			cfg:  Config{InferredSidewalks: true},
			want: "none",
		},
		{
			name: "motorway -> none",
			tags: Tags{tag("highway", "motorway")},
			cfg:  Config{InferredSidewalks: true},
			want: "none",
		},
		{
			name: "service road -> none",
			tags: Tags{tag("highway", "service")},
			cfg:  Config{InferredSidewalks: true},
			want: "none",
		},
		{
			name: "roundabout junction -> none",
			tags: Tags{tag("highway", "primary"), tag("junction", "roundabout")},
			cfg:  Config{InferredSidewalks: true},
			want: "none",
		},
		{
			name: "foot=no -> none",
			tags: Tags{tag("highway", "tertiary"), tag("foot", "no")},
			cfg:  Config{InferredSidewalks: true},
			want: "none",
		},
		{
			name: "oneway drive-right -> right",
			tags: Tags{tag("highway", "tertiary"), tag("oneway", "yes")},
			cfg:  Config{InferredSidewalks: true, DrivingSide: Right},
			want: "right",
		},
		{
			name: "oneway drive-left -> left",
			tags: Tags{tag("highway", "tertiary"), tag("oneway", "yes")},
			cfg:  Config{InferredSidewalks: true, DrivingSide: Left},
			want: "left",
		},
		{
			name: "oneway residential -> both (override)",
			tags: Tags{tag("highway", "residential"), tag("oneway", "yes")},
			cfg:  Config{InferredSidewalks: true, DrivingSide: Right},
			want: "both",
		},
		{
			name: "oneway residential but dual_carriageway -> no override",
			tags: Tags{
				tag("highway", "residential"), tag("oneway", "yes"),
				tag("dual_carriageway", "yes"),
			},
			cfg:  Config{InferredSidewalks: true, DrivingSide: Right},
			want: "right",
		},
		{
			name: "plain two-way road -> both",
			tags: Tags{tag("highway", "tertiary")},
			cfg:  Config{InferredSidewalks: true},
			want: "both",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := inferSidewalkTags(clone(tt.tags), tt.cfg)
			if tt.want == "" {
				require.False(t, has(got, sidewalkKey), "expected no sidewalk tag to be set")
				return
			}
			require.Equal(t, tt.want, get(got, sidewalkKey))
		})
	}
}

func TestInferSidewalkTags_DoesNotMutateInput(t *testing.T) {
	original := Tags{tag("highway", "residential")}
	before := clone(original)

	_ = inferSidewalkTags(original, Config{InferredSidewalks: true})

	require.Equal(t, before, original)
}
