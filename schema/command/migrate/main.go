package main

import (
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/wirvsvirus/measures-dashboard/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("dashboard")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	indexer := schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database"))
	indexer.IndexAll()
	log.WithField("prefix", "migrate").Info("mongo indexes created")
}
