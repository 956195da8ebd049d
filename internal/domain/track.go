package domain

import "strings"

// Track is the coarse grouping of guide events. Two named sub-brands plus
// the catch-all community track.
type Track string

const (
	TrackBeefDip   Track = "beefdip"
	TrackBearadise Track = "bearadise"
	TrackCommunity Track = "community"
)

func (t Track) Valid() bool {
	return t == TrackBeefDip || t == TrackBearadise || t == TrackCommunity
}

type Category string

const (
	CategoryBeef      Category = "beef"
	CategoryCommunity Category = "community"
)

// TrackFromGroup derives the track from the free-text source group column.
// Case-insensitive substring match, community when nothing matches.
func TrackFromGroup(group string) Track {
	g := strings.ToLower(group)
	if strings.Contains(g, "beefdip") {
		return TrackBeefDip
	}
	if strings.Contains(g, "bearadise") {
		return TrackBearadise
	}
	return TrackCommunity
}

func (t Track) Category() Category {
	if t == TrackBeefDip {
		return CategoryBeef
	}
	return CategoryCommunity
}

// Color returns the UI theme token for a track. The tokens are CSS custom
// properties resolved by the web client.
func (t Track) Color() string {
	switch t {
	case TrackBeefDip:
		return "var(--s)"
	case TrackBearadise:
		return "var(--ok)"
	default:
		return "var(--o)"
	}
}
