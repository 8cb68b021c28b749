package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wirvsvirus/measures-dashboard/api"
	"github.com/wirvsvirus/measures-dashboard/geo"
	"github.com/wirvsvirus/measures-dashboard/loader"
	"github.com/wirvsvirus/measures-dashboard/schema"
	"github.com/wirvsvirus/measures-dashboard/store"
	"github.com/wirvsvirus/measures-dashboard/utils"
)

const (
	sourceFile  = "file"
	sourceMongo = "mongo"
)

var (
	server     *api.Server
	mongoStore store.MongoStore
)

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

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("data.source", sourceFile)
	viper.SetDefault("data.encoding", string(loader.EncodingAuto))
	viper.SetDefault("mongo.pool", 10)
}

func connectMongo(ctx context.Context) store.MongoStore {
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	if err := mongoClient.Connect(ctx); nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	return store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))
}

// loadCentroids reads the coordinate table of a level from its configured
// file, or from mongo when no file is given.
func loadCentroids(ctx context.Context, level schema.GeographicLevel, file string) geo.CentroidResolver {
	var index *geo.Index
	var err error
	switch {
	case file != "":
		index, err = geo.LoadIndexFile(level, file)
	case mongoStore != nil:
		index, err = mongoStore.LoadCentroids(ctx, level)
	default:
		return nil
	}
	if err != nil {
		log.WithFields(log.Fields{"prefix": "init", "geo_level": level}).Warnf("map layer disabled: %s", err)
		return nil
	}
	log.WithFields(log.Fields{"prefix": "init", "geo_level": level, "centroids": index.Len()}).Info("Loaded centroids")
	return index
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown dashboard api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if mongoStore != nil {
			log.Info("Shutting down db store")
			mongoStore.Close()
		}

		sentry.Flush(2 * time.Second)
		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	if err := utils.InitI18NBundle(viper.GetString("i18n.dir")); err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Info("Initialized i18n bundle")

	// Records source
	var source store.RecordSource
	var db store.Pinger
	switch viper.GetString("data.source") {
	case sourceMongo:
		mongoStore = connectMongo(initialCtx)
		source = mongoStore
		db = mongoStore
	case sourceFile:
		source = loader.NewFileLoader(
			viper.GetString("data.cases"),
			viper.GetString("data.actions"),
			loader.Encoding(viper.GetString("data.encoding")))
	default:
		log.Panicf("unknown data source: %s", viper.GetString("data.source"))
	}
	snapshots := store.NewSnapshotCache(source)
	if _, err := snapshots.Snapshot(initialCtx); err != nil {
		log.WithField("prefix", "init").Warnf("data-set not loaded yet: %s", err)
	}
	log.WithFields(log.Fields{"prefix": "init", "source": viper.GetString("data.source")}).Info("Initialized records source")

	var population map[string]int64
	if file := viper.GetString("data.population"); file != "" {
		p, err := loader.LoadPopulationFile(file)
		if err != nil {
			log.Panic(err)
		}
		population = p
	}

	centroids := map[schema.GeographicLevel]geo.CentroidResolver{}
	for level, file := range map[schema.GeographicLevel]string{
		schema.LevelState:  viper.GetString("geo.state"),
		schema.LevelCounty: viper.GetString("geo.county"),
	} {
		if r := loadCentroids(initialCtx, level, file); r != nil {
			centroids[level] = r
		}
	}

	// Init http server
	server = api.NewServer(snapshots, db, population, centroids)
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
