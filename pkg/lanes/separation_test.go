package lanes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeparationBufferKind(t *testing.T) {
	tests := []struct {
		val    string
		want   BufferKind
		wantOK bool
	}{
		{"bollard", FlexPosts, true},
		{"vertical_panel", FlexPosts, true},
		{"kerb", Curb, true},
		{"separation_kerb", Curb, true},
		{"grass_verge", Planters, true},
		{"planter", Planters, true},
		{"tree_row", Planters, true},
		{"guard_rail", JerseyBarrier, true},
		{"jersey_barrier", JerseyBarrier, true},
		{"railing", JerseyBarrier, true},
		{"barred_area", Stripes, true},
		{"dashed_line", Stripes, true},
		{"solid_line", Stripes, true},
		{"parking_lane", 0, false},
		{"something_unknown", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			got, ok := separationBufferKind(tt.val)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				require.Equal(t, tt.want, got)
			}
		})
	}
}
