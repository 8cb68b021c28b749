package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wirvsvirus/measures-dashboard/external/arcgis"
	"github.com/wirvsvirus/measures-dashboard/loader"
	"github.com/wirvsvirus/measures-dashboard/schema"
	"github.com/wirvsvirus/measures-dashboard/store"
)

const (
	logPrefix      = "cron"
	rkiCountyURL   = "https://services7.arcgis.com/mOBPykOjAyBO2ZKk/arcgis/rest/services/RKI_Landkreisdaten/FeatureServer/0/query"
	defaultTimeout = 15 * time.Second
)

type Cron interface {
	Run(ctx context.Context) error
}

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("dashboard")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("dashboard")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("crawler.arcgis.county.url", rkiCountyURL)
	viper.SetDefault("crawler.arcgis.county.key", "RS")
	viper.SetDefault("crawler.arcgis.state.key", "LAN_ew_GEN")
}

func main() {
	var configFile string
	var skipDataset, skipCentroids bool

	initialCtx, cancelInitialization := context.WithCancel(context.Background())
	defer cancelInitialization()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.BoolVar(&skipDataset, "skip-dataset", false, "do not import case and action tables")
	flag.BoolVar(&skipCentroids, "skip-centroids", false, "do not import outline centers")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	var err error

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(initialCtx)
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	mStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
	)

	httpClient := &http.Client{
		Timeout: 5 * time.Minute,
	}

	jobs := []Cron{}
	if !skipDataset {
		dataset := newDatasetCrawler(
			mStore,
			firstNonEmpty(viper.GetString("crawler.cases"), viper.GetString("data.cases")),
			firstNonEmpty(viper.GetString("crawler.actions"), viper.GetString("data.actions")),
			loader.Encoding(viper.GetString("data.encoding")),
			httpClient)
		if serverURL := viper.GetString("crawler.server"); serverURL != "" {
			dataset.invalidator = invalidateServer(httpClient, serverURL, viper.GetString("server.apikey.admin"))
		}
		jobs = append(jobs, dataset)
	}

	if !skipCentroids {
		for _, level := range []schema.GeographicLevel{schema.LevelState, schema.LevelCounty} {
			url := viper.GetString(fmt.Sprintf("crawler.arcgis.%s.url", level))
			if url == "" {
				continue
			}
			key := viper.GetString(fmt.Sprintf("crawler.arcgis.%s.key", level))
			jobs = append(jobs, newCentroidCrawler(mStore, level, key, arcgis.New(url, httpClient)))
		}
	}

	failed := false
	for _, job := range jobs {
		if err := job.Run(initialCtx); err != nil {
			log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("crawler job failed")
			failed = true
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if mongoClient != nil {
		log.Info("Shutting down mongo store")
		_ = mongoClient.Disconnect(ctx)
	}

	if failed {
		os.Exit(1)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
