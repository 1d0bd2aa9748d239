package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

func TestGeoPoint_Valid(t *testing.T) {
	assert.True(t, GeoPoint{Lat: 34.0522, Lng: -118.2437}.Valid())
	assert.True(t, GeoPoint{Lat: 90, Lng: 180}.Valid())
	assert.True(t, GeoPoint{Lat: -90, Lng: -180}.Valid())

	assert.False(t, GeoPoint{Lat: 91, Lng: 0}.Valid())
	assert.False(t, GeoPoint{Lat: 0, Lng: 181}.Valid())
	assert.False(t, GeoPoint{Lat: math.NaN(), Lng: 0}.Valid())
}

func TestHaversine(t *testing.T) {
	losAngeles := GeoPoint{Lat: 34.0522, Lng: -118.2437}
	newYork := GeoPoint{Lat: 40.7128, Lng: -74.0060}

	d := Haversine(losAngeles, newYork)
	// Known distance is roughly 3936 km.
	assert.InDelta(t, 3936, d, 40)

	assert.Zero(t, Haversine(losAngeles, losAngeles))
	assert.InDelta(t, Haversine(newYork, losAngeles), d, 1e-9)
}

func TestFilterByRadius(t *testing.T) {
	center := GeoPoint{Lat: 34.0522, Lng: -118.2437}

	near := &Listing{ID: "a", Lat: ptr(34.05), Lng: ptr(-118.25)}
	far := &Listing{ID: "b", Lat: ptr(40.7128), Lng: ptr(-74.0060)}
	noCoords := &Listing{ID: "c"}

	res := FilterByRadius([]*Listing{far, noCoords, near}, center, 5)

	require.Len(t, res, 1)
	assert.Equal(t, "a", res[0].Listing.ID)
	assert.Less(t, res[0].DistanceKm, 5.0)
}

func TestFilterByRadius_SortsByDistance(t *testing.T) {
	center := GeoPoint{Lat: 0, Lng: 0}

	closest := &Listing{ID: "z", Lat: ptr(0.01), Lng: ptr(0.0)}
	farther := &Listing{ID: "a", Lat: ptr(0.05), Lng: ptr(0.0)}

	res := FilterByRadius([]*Listing{farther, closest}, center, 100)

	require.Len(t, res, 2)
	assert.Equal(t, "z", res[0].Listing.ID)
	assert.Equal(t, "a", res[1].Listing.ID)
}

func TestFilterByRadius_TieBreaksByID(t *testing.T) {
	center := GeoPoint{Lat: 0, Lng: 0}

	// Same coordinates, so identical distances.
	b := &Listing{ID: "b", Lat: ptr(0.01), Lng: ptr(0.01)}
	a := &Listing{ID: "a", Lat: ptr(0.01), Lng: ptr(0.01)}

	res := FilterByRadius([]*Listing{b, a}, center, 100)

	require.Len(t, res, 2)
	assert.Equal(t, "a", res[0].Listing.ID)
	assert.Equal(t, "b", res[1].Listing.ID)
}

func TestFilterByRadius_DropsInvalidCoordinates(t *testing.T) {
	center := GeoPoint{Lat: 0, Lng: 0}

	bad := &Listing{ID: "bad", Lat: ptr(200), Lng: ptr(0)}
	missing := &Listing{ID: "missing", Lat: ptr(0.01)}

	res := FilterByRadius([]*Listing{bad, missing}, center, 10000)
	assert.Empty(t, res)
}
