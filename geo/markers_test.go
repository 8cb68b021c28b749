package geo

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wirvsvirus/measures-dashboard/schema"
)

const markersJSON = `[
	{"fields": {"cca_2": "09162", "name_2": "München", "geo_point_2d": [48.15, 11.54]}},
	{"fields": {"name_2": "Bodensee", "geo_point_2d": [47.6, 9.4]}},
	{"fields": {"cca_2": "09174", "name_2": "Dachau"}},
	{"fields": {"gen": "Bayern", "geo_point_2d": [48.95, 11.4]}}
]`

func TestReadMarkers(t *testing.T) {
	points, skipped, err := ReadMarkers(strings.NewReader(markersJSON), "cca_2")
	assert.NoError(t, err)
	assert.Equal(t, 3, skipped)
	assert.Equal(t, map[string]schema.Coordinate{
		"09162": {Latitude: 48.15, Longitude: 11.54},
	}, points)

	points, _, err = ReadMarkers(strings.NewReader(markersJSON), "gen")
	assert.NoError(t, err)
	assert.Equal(t, schema.Coordinate{Latitude: 48.95, Longitude: 11.4}, points["Bayern"])
}

func TestReadMarkersInvalid(t *testing.T) {
	_, _, err := ReadMarkers(strings.NewReader(`{"fields": {}}`), "cca_2")
	assert.True(t, errors.Is(err, ErrInvalidTable))
}
