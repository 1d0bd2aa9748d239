package domain

import (
	"math"
	"sort"
)

const earthRadiusKm = 6371

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (p GeoPoint) Valid() bool {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lng) {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// Haversine returns the great-circle distance between two points in
// kilometers.
func Haversine(a, b GeoPoint) float64 {
	latA := a.Lat * math.Pi / 180
	latB := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

type ListingDistance struct {
	Listing    *Listing `json:"listing"`
	DistanceKm float64  `json:"distance_km"`
}

// FilterByRadius keeps the listings within radiusKm of center, ordered by
// ascending distance with ties broken by listing id so pagination stays
// deterministic. Listings lacking valid coordinates are dropped silently.
func FilterByRadius(listings []*Listing, center GeoPoint, radiusKm float64) []ListingDistance {
	res := make([]ListingDistance, 0, len(listings))
	for _, l := range listings {
		p, ok := l.Coordinates()
		if !ok {
			continue
		}
		d := Haversine(center, p)
		if d <= radiusKm {
			res = append(res, ListingDistance{Listing: l, DistanceKm: d})
		}
	}

	sort.Slice(res, func(i, j int) bool {
		if res[i].DistanceKm != res[j].DistanceKm {
			return res[i].DistanceKm < res[j].DistanceKm
		}
		return res[i].Listing.ID < res[j].Listing.ID
	})

	return res
}
