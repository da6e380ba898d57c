package lanes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypicalWidths_FirstIsMostSpecific(t *testing.T) {
	t.Run("motorway driving lane is wider than default", func(t *testing.T) {
		motorway := typicalWidths(Driving, Tags{tag("highway", "motorway")})[0]
		plain := typicalWidths(Driving, Tags{tag("highway", "residential")})[0]
		require.Greater(t, motorway.Width, plain.Width)
	})

	t.Run("service road driving lane is narrower than default", func(t *testing.T) {
		service := typicalWidths(Driving, Tags{tag("highway", "service")})[0]
		plain := typicalWidths(Driving, Tags{tag("highway", "residential")})[0]
		require.Less(t, service.Width, plain.Width)
	})

	t.Run("width:lanes tag overrides the highway-class default", func(t *testing.T) {
		got := typicalWidths(Driving, Tags{tag("highway", "motorway"), tag("width:lanes", "4.2")})[0]
		require.Equal(t, Distance(4.2), got.Width)
	})

	t.Run("unparseable width:lanes falls back to the default", func(t *testing.T) {
		got := defaultWidth(Driving, Tags{tag("width:lanes", "not-a-number")})
		require.Equal(t, defaultLaneWidth[Driving], got)
	})
}

func TestTypicalWidths_NeverEmpty(t *testing.T) {
	for lt := Driving; lt <= Buffer; lt++ {
		got := typicalWidths(lt, Tags{})
		require.NotEmpty(t, got, "lane type %v must always have at least one width candidate", lt)
		require.Greater(t, got[0].Width, Distance(0))
	}
}
