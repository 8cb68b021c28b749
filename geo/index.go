package geo

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/wirvsvirus/measures-dashboard/schema"
)

const (
	logPrefix = "geo"
)

var (
	ErrUnknownGeography = fmt.Errorf("unknown geography")
	ErrInvalidTable     = fmt.Errorf("invalid coordinate table")
)

// CentroidResolver - interface for looking up the representative coordinate
// of a region
type CentroidResolver interface {
	CentroidOf(id string) (schema.Coordinate, error)
}

// Index is an exact-match lookup from region id to coordinate. It is never
// modified after construction and safe for concurrent reads.
type Index struct {
	level  schema.GeographicLevel
	points map[string]schema.Coordinate
}

// NewIndex copies the given table into a new index.
func NewIndex(level schema.GeographicLevel, points map[string]schema.Coordinate) *Index {
	copied := make(map[string]schema.Coordinate, len(points))
	for id, c := range points {
		copied[id] = c
	}
	return &Index{
		level:  level,
		points: copied,
	}
}

// CentroidOf returns the coordinate of id or ErrUnknownGeography.
func (i *Index) CentroidOf(id string) (schema.Coordinate, error) {
	if c, ok := i.points[id]; ok {
		return c, nil
	}
	return schema.Coordinate{}, fmt.Errorf("%w: %s", ErrUnknownGeography, id)
}

func (i *Index) Level() schema.GeographicLevel {
	return i.level
}

func (i *Index) Len() int {
	return len(i.points)
}

// Centroids lists the index content for persisting it.
func (i *Index) Centroids() []schema.Centroid {
	result := make([]schema.Centroid, 0, len(i.points))
	for id, c := range i.points {
		result = append(result, schema.Centroid{ID: id, Level: i.level, Coordinate: c})
	}
	return result
}

// LoadIndex reads a flat JSON table of the form {"id": [lat, lon]}.
func LoadIndex(level schema.GeographicLevel, r io.Reader) (*Index, error) {
	var raw map[string][]float64
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTable, err)
	}

	points := make(map[string]schema.Coordinate, len(raw))
	for id, p := range raw {
		if len(p) != 2 {
			return nil, fmt.Errorf("%w: %s has %d values", ErrInvalidTable, id, len(p))
		}
		points[id] = schema.Coordinate{Latitude: p[0], Longitude: p[1]}
	}

	log.WithFields(log.Fields{
		"prefix":    logPrefix,
		"geo_level": level,
		"entries":   len(points),
	}).Debug("load coordinate table")

	return &Index{level: level, points: points}, nil
}

// LoadIndexFile reads a coordinate table from disk.
func LoadIndexFile(level schema.GeographicLevel, file string) (*Index, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadIndex(level, f)
}

// WriteIndex writes the table in the format read by LoadIndex.
func WriteIndex(w io.Writer, points map[string]schema.Coordinate) error {
	raw := make(map[string][]float64, len(points))
	for id, c := range points {
		raw[id] = []float64{c.Latitude, c.Longitude}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(raw)
}
