package schema

import "time"

const (
	CentroidCollection = "centroids"
)

type Coordinate struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// Centroid is the representative coordinate of a state or county outline.
type Centroid struct {
	ID         string          `bson:"id"`
	Level      GeographicLevel `bson:"level"`
	Coordinate `bson:",inline"`
}

// BubbleRow is one frame entry of the animated map layer.
type BubbleRow struct {
	Key                string    `json:"key"`
	Name               string    `json:"name"`
	Latitude           float64   `json:"lat"`
	Longitude          float64   `json:"lon"`
	CumulativeInfected int64     `json:"cumulative_infected"`
	CumulativeDeaths   int64     `json:"cumulative_deaths"`
	Date               time.Time `json:"date"`
}

type Geometry struct {
	Rings [][][]float64 `json:"rings"`
}

// Feature is one polygon outline of an ArcGIS feature layer export.
type Feature struct {
	Attributes map[string]interface{} `json:"attributes"`
	Geometry   Geometry               `json:"geometry"`
}

type FeatureSet struct {
	Features              []Feature `json:"features"`
	ExceededTransferLimit bool      `json:"exceededTransferLimit,omitempty"`
}
