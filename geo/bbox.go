package geo

import (
	"fmt"
	"strconv"

	"github.com/golang/geo/r2"

	"github.com/wirvsvirus/measures-dashboard/schema"
)

// BoundingBoxCenter returns the midpoint of the planar bounding box around
// all ring points, where x is longitude and y is latitude. This is not the
// polygon centroid.
func BoundingBoxCenter(rings [][][]float64) (schema.Coordinate, bool) {
	var rect r2.Rect
	empty := true
	for _, ring := range rings {
		for _, p := range ring {
			if len(p) < 2 {
				continue
			}
			point := r2.Point{X: p[0], Y: p[1]}
			if empty {
				rect = r2.RectFromPoints(point)
				empty = false
				continue
			}
			rect = rect.AddPoint(point)
		}
	}
	if empty {
		return schema.Coordinate{}, false
	}

	center := rect.Center()
	return schema.Coordinate{Latitude: center.Y, Longitude: center.X}, true
}

// BoundingBoxCenters builds a coordinate table from polygon outlines, keyed
// by the given feature attribute.
func BoundingBoxCenters(features []schema.Feature, keyAttribute string) (map[string]schema.Coordinate, error) {
	result := make(map[string]schema.Coordinate, len(features))
	for _, f := range features {
		key, ok := f.Attributes[keyAttribute]
		if !ok {
			return nil, fmt.Errorf("feature without %s attribute", keyAttribute)
		}
		id := attributeKey(key)

		center, ok := BoundingBoxCenter(f.Geometry.Rings)
		if !ok {
			return nil, fmt.Errorf("feature %s has no outline", id)
		}
		result[id] = center
	}
	return result, nil
}

// attributeKey formats an attribute value as a table key. ArcGIS hands out
// numbers as float64, which must not end up in exponent notation.
func attributeKey(v interface{}) string {
	switch k := v.(type) {
	case string:
		return k
	case float64:
		return strconv.FormatFloat(k, 'f', -1, 64)
	default:
		return fmt.Sprint(k)
	}
}
