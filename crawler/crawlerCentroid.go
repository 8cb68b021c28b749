package main

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/wirvsvirus/measures-dashboard/external/arcgis"
	"github.com/wirvsvirus/measures-dashboard/geo"
	"github.com/wirvsvirus/measures-dashboard/schema"
	"github.com/wirvsvirus/measures-dashboard/store"
)

type centroidCrawler struct {
	centroidStore store.CentroidStore
	level         schema.GeographicLevel
	keyAttribute  string
	source        arcgis.FeatureSource
}

func (c centroidCrawler) Run(ctx context.Context) error {
	features, err := c.source.Features(ctx)
	if err != nil {
		log.WithFields(log.Fields{"prefix": logPrefix, "geo_level": c.level, "error": err}).Error("fetch outlines")
		return err
	}

	points, err := geo.BoundingBoxCenters(features, c.keyAttribute)
	if err != nil {
		return err
	}

	if err := c.centroidStore.ImportCentroids(ctx, c.level, points); err != nil {
		return err
	}
	log.WithFields(log.Fields{"prefix": logPrefix, "geo_level": c.level, "centroids": len(points)}).Info("centroids imported")
	return nil
}

// newCentroidCrawler - new job importing the outline centers of a level
func newCentroidCrawler(centroidStore store.CentroidStore, level schema.GeographicLevel, keyAttribute string, source arcgis.FeatureSource) *centroidCrawler {
	return &centroidCrawler{
		centroidStore: centroidStore,
		level:         level,
		keyAttribute:  keyAttribute,
		source:        source,
	}
}
