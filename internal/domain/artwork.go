package domain

import "strings"

// Artwork URLs keyed by visual category. Served as-is to clients.
var artworkByCategory = map[string]string{
	"pool":     "https://images.unsplash.com/photo-1534447677768-be436bb09401?auto=format&fit=crop&w=800&q=60",
	"night":    "https://images.unsplash.com/photo-1566737236500-c8ac40014582?auto=format&fit=crop&w=800&q=60",
	"drag":     "https://images.unsplash.com/photo-1492684223066-81342ee5ff30?auto=format&fit=crop&w=800&q=60",
	"beach":    "https://images.unsplash.com/photo-1571216664264-83984715f271?auto=format&fit=crop&w=800&q=60",
	"dining":   "https://images.unsplash.com/photo-1519671482749-fd09be7ccebf?auto=format&fit=crop&w=800&q=60",
	"leather":  "https://images.unsplash.com/photo-1514525253361-bee8718a7439?auto=format&fit=crop&w=800&q=60",
	"foam":     "https://images.unsplash.com/photo-1530103043960-ef38714abb15?auto=format&fit=crop&w=800&q=60",
	"activity": "https://images.unsplash.com/photo-1545128485-c400e7702796?auto=format&fit=crop&w=800&q=60",
	"bear":     "https://images.unsplash.com/photo-1572511443159-462a7424d67e?auto=format&fit=crop&w=800&q=60",
	"default":  "https://images.unsplash.com/photo-1514525253361-bee8718a7439?auto=format&fit=crop&w=800&q=60",
}

// ArtworkFor picks an artwork URL from the free-text kind/venue columns.
// Rules are ordered; the first match wins.
func ArtworkFor(kind, venue string) string {
	k := strings.ToLower(kind)
	v := strings.ToLower(venue)

	switch {
	case strings.Contains(k, "pool"):
		return artworkByCategory["pool"]
	case strings.Contains(k, "drag") || strings.Contains(k, "show"):
		return artworkByCategory["drag"]
	case strings.Contains(k, "beach") || strings.Contains(v, "beach"):
		return artworkByCategory["beach"]
	case strings.Contains(k, "brunch") || strings.Contains(k, "hour") || strings.Contains(k, "dinner"):
		return artworkByCategory["dining"]
	case strings.Contains(k, "leather") || strings.Contains(k, "underwear") || strings.Contains(k, "jock"):
		return artworkByCategory["leather"]
	case strings.Contains(k, "foam"):
		return artworkByCategory["foam"]
	case strings.Contains(k, "tour") || strings.Contains(k, "adventure"):
		return artworkByCategory["activity"]
	case strings.Contains(k, "club") || strings.Contains(k, "party"):
		return artworkByCategory["night"]
	default:
		return artworkByCategory["default"]
	}
}
