package geo

import (
	"encoding/json"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/wirvsvirus/measures-dashboard/schema"
)

type markerRecord struct {
	Fields map[string]interface{} `json:"fields"`
}

// ReadMarkers builds a coordinate table from an opendatasoft record export.
// Each record carries a [lat, lon] geo_point_2d field; keyField names the
// field used as key. Records without key or point are skipped and counted.
func ReadMarkers(r io.Reader, keyField string) (map[string]schema.Coordinate, int, error) {
	var records []markerRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, 0, fmt.Errorf("%w: %s", ErrInvalidTable, err)
	}

	points := make(map[string]schema.Coordinate, len(records))
	skipped := 0
	for _, rec := range records {
		key, ok := rec.Fields[keyField]
		if !ok || key == nil {
			log.WithFields(log.Fields{"prefix": logPrefix, "name": rec.Fields["name_2"]}).Warn("marker without id")
			skipped++
			continue
		}

		p, ok := rec.Fields["geo_point_2d"].([]interface{})
		if !ok || len(p) != 2 {
			skipped++
			continue
		}
		lat, latOK := p[0].(float64)
		lon, lonOK := p[1].(float64)
		if !latOK || !lonOK {
			skipped++
			continue
		}

		points[fmt.Sprint(key)] = schema.Coordinate{Latitude: lat, Longitude: lon}
	}
	return points, skipped, nil
}
