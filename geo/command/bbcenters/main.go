package main

import (
	"encoding/json"
	"flag"
	"os"

	log "github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/wirvsvirus/measures-dashboard/geo"
	"github.com/wirvsvirus/measures-dashboard/schema"
)

const logPrefix = "bbcenters"

// bbcenters turns an exported ArcGIS feature layer into the coordinate
// table the map layer reads.
func main() {
	var input, output, key string
	flag.StringVar(&input, "i", "counties.json", "feature layer export")
	flag.StringVar(&output, "o", "counties_bbcenters.json", "coordinate table to write")
	flag.StringVar(&key, "k", "RS", "feature attribute used as key")
	flag.Parse()

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})

	in, err := os.Open(input)
	if err != nil {
		log.WithField("prefix", logPrefix).Fatal(err)
	}
	defer in.Close()

	var set schema.FeatureSet
	if err := json.NewDecoder(in).Decode(&set); err != nil {
		log.WithField("prefix", logPrefix).Fatalf("decode %s: %s", input, err)
	}

	points, err := geo.BoundingBoxCenters(set.Features, key)
	if err != nil {
		log.WithField("prefix", logPrefix).Fatal(err)
	}

	out, err := os.Create(output)
	if err != nil {
		log.WithField("prefix", logPrefix).Fatal(err)
	}
	defer out.Close()

	if err := geo.WriteIndex(out, points); err != nil {
		log.WithField("prefix", logPrefix).Fatal(err)
	}
	log.WithFields(log.Fields{"prefix": logPrefix, "centroids": len(points), "output": output}).Info("coordinate table written")
}
