package store

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wirvsvirus/measures-dashboard/geo"
	"github.com/wirvsvirus/measures-dashboard/schema"
)

// CentroidStore - persist the coordinate tables of the map layer
type CentroidStore interface {
	ImportCentroids(ctx context.Context, level schema.GeographicLevel, points map[string]schema.Coordinate) error
	LoadCentroids(ctx context.Context, level schema.GeographicLevel) (*geo.Index, error)
}

// ImportCentroids upserts one coordinate per id of the given level.
func (m *mongoDB) ImportCentroids(ctx context.Context, level schema.GeographicLevel, points map[string]schema.Coordinate) error {
	c := m.collection(schema.CentroidCollection)
	for id, p := range points {
		filter := bson.M{"level": level, "id": id}
		replacement := schema.Centroid{ID: id, Level: level, Coordinate: p}
		opts := options.Replace().SetUpsert(true)
		if _, err := c.ReplaceOne(ctx, filter, replacement, opts); err != nil {
			log.WithFields(log.Fields{"prefix": mongoLogPrefix, "geo_level": level, "id": id}).Errorf("centroid upsert with error: %s", err)
			return err
		}
	}
	log.WithFields(log.Fields{"prefix": mongoLogPrefix, "geo_level": level, "records": len(points)}).Info("centroids imported")
	return nil
}

// LoadCentroids reads the coordinate table of a level into an index.
func (m mongoDB) LoadCentroids(ctx context.Context, level schema.GeographicLevel) (*geo.Index, error) {
	cur, err := m.collection(schema.CentroidCollection).Find(ctx, bson.M{"level": level})
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("centroid find with error: %s", err)
		return nil, err
	}
	defer cur.Close(ctx)

	points := map[string]schema.Coordinate{}
	for cur.Next(ctx) {
		var c schema.Centroid
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		points[c.ID] = c.Coordinate
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return geo.NewIndex(level, points), nil
}
