package lanes

import (
	"strconv"
	"strings"

	"github.com/paulmach/osm"
)

// Tags is the tag dictionary the engine operates on: an unordered mapping
// from OSM key to value. It's a type alias for osm.Tags (a []osm.Tag) so
// callers can hand the engine tags straight off a paulmach/osm scan, the
// way the rest of this module's ingestion layer already does.
type Tags = osm.Tags

// get returns the tag value, or "" if absent.
func get(t Tags, key string) string {
	return t.Find(key)
}

// has reports whether key is present at all (even with an empty value).
func has(t Tags, key string) bool {
	return t.HasTag(key)
}

// is reports whether key's value equals val exactly.
func is(t Tags, key, val string) bool {
	return get(t, key) == val
}

// isAny reports whether key's value equals any of vals.
func isAny(t Tags, key string, vals ...string) bool {
	v := get(t, key)
	for _, want := range vals {
		if v == want {
			return true
		}
	}
	return false
}

// getUint parses key's value as a non-negative integer. ok is false if the
// tag is absent or unparseable -- malformed values are treated as absent,
// never as an error.
func getUint(t Tags, key string) (n int, ok bool) {
	v := get(t, key)
	if v == "" {
		return 0, false
	}
	parsed, err := strconv.Atoi(v)
	if err != nil || parsed < 0 {
		return 0, false
	}
	return parsed, true
}

// getPositiveFloat parses key's value as a strictly positive float.
func getPositiveFloat(t Tags, key string) (f float64, ok bool) {
	v := get(t, key)
	if v == "" {
		return 0, false
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}

// clone makes a caller-local copy of tags so the sidewalk pre-pass never
// mutates the original the caller handed us.
func clone(t Tags) Tags {
	out := make(Tags, len(t))
	copy(out, t)
	return out
}

// upsert sets key to val in t, replacing any existing entry, and returns
// the (possibly reallocated) slice.
func upsert(t Tags, key, val string) Tags {
	for i := range t {
		if t[i].Key == key {
			t[i].Value = val
			return t
		}
	}
	return append(t, osm.Tag{Key: key, Value: val})
}

// splitBusLanesSpec splits a bus/psv:lanes[:forward|:backward] value on '|'.
func splitBusLanesSpec(spec string) []string {
	if spec == "" {
		return nil
	}
	return strings.Split(spec, "|")
}
