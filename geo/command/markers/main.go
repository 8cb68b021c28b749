package main

import (
	"context"
	"flag"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wirvsvirus/measures-dashboard/geo"
	"github.com/wirvsvirus/measures-dashboard/loader"
	"github.com/wirvsvirus/measures-dashboard/schema"
	"github.com/wirvsvirus/measures-dashboard/store"
)

const logPrefix = "markers"

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("dashboard")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

// markers converts an opendatasoft export of German states or counties into
// a coordinate table. The table is written to a file, or imported into
// mongo when no output file is given.
func main() {
	var input, output, key, level string
	flag.StringVar(&input, "i", "landkreise-in-germany.json", "opendatasoft record export")
	flag.StringVar(&output, "o", "", "coordinate table to write")
	flag.StringVar(&key, "k", "cca_2", "record field used as key")
	flag.StringVar(&level, "l", "county", "geographic level of the records")
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

	points, skipped, err := geo.ReadMarkers(in, key)
	if err != nil {
		log.WithField("prefix", logPrefix).Fatal(err)
	}
	log.WithFields(log.Fields{"prefix": logPrefix, "markers": len(points), "skipped": skipped}).Info("markers read")

	if output != "" {
		out, err := os.Create(output)
		if err != nil {
			log.WithField("prefix", logPrefix).Fatal(err)
		}
		defer out.Close()

		if err := geo.WriteIndex(out, points); err != nil {
			log.WithField("prefix", logPrefix).Fatal(err)
		}
		return
	}

	gl := loader.ParseLevel(level)
	if gl != schema.LevelState && gl != schema.LevelCounty {
		log.WithField("prefix", logPrefix).Fatalf("unsupported level: %s", level)
	}

	ctx := context.Background()
	mongoClient, err := mongo.NewClient(options.Client().ApplyURI(viper.GetString("mongo.conn")))
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}
	if err := mongoClient.Connect(ctx); nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	s := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))
	defer s.Close()

	if err := s.ImportCentroids(ctx, gl, points); err != nil {
		log.WithField("prefix", logPrefix).Fatal(err)
	}
}
