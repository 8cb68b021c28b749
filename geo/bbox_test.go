package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wirvsvirus/measures-dashboard/schema"
)

func TestBoundingBoxCenter(t *testing.T) {
	rings := [][][]float64{
		{{10, 50}, {12, 50}, {12, 51}, {10, 50}},
		{{11, 48}, {11.5, 49}},
	}

	c, ok := BoundingBoxCenter(rings)
	assert.True(t, ok)
	assert.InDelta(t, 49.5, c.Latitude, 1e-9)
	assert.InDelta(t, 11, c.Longitude, 1e-9)

	_, ok = BoundingBoxCenter(nil)
	assert.False(t, ok)
}

func TestBoundingBoxCentersIsNotPolygonCentroid(t *testing.T) {
	// an L-shaped outline: the polygon centroid would lean to the corner,
	// the box center does not
	features := []schema.Feature{{
		Attributes: map[string]interface{}{"county": "LK Test"},
		Geometry: schema.Geometry{Rings: [][][]float64{{
			{0, 0}, {4, 0}, {4, 1}, {1, 1}, {1, 4}, {0, 4}, {0, 0},
		}}},
	}}

	table, err := BoundingBoxCenters(features, "county")
	assert.NoError(t, err)
	assert.Equal(t, schema.Coordinate{Latitude: 2, Longitude: 2}, table["LK Test"])

	_, err = BoundingBoxCenters(features, "missing")
	assert.Error(t, err)
}

func TestBoundingBoxCentersNumericKey(t *testing.T) {
	features := []schema.Feature{{
		Attributes: map[string]interface{}{"AdmUnitId": float64(9162), "RS": "09162"},
		Geometry:   schema.Geometry{Rings: [][][]float64{{{11, 48}, {12, 49}}}},
	}}

	table, err := BoundingBoxCenters(features, "AdmUnitId")
	assert.NoError(t, err)
	assert.Contains(t, table, "9162")

	table, err = BoundingBoxCenters(features, "RS")
	assert.NoError(t, err)
	assert.Equal(t, schema.Coordinate{Latitude: 48.5, Longitude: 11.5}, table["09162"])
}
