package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"googlemaps.github.io/maps"

	"github.com/bitmark-inc/covid-map/api"
	"github.com/bitmark-inc/covid-map/casemap"
	"github.com/bitmark-inc/covid-map/external/cdc"
	"github.com/bitmark-inc/covid-map/external/jhu"
	"github.com/bitmark-inc/covid-map/geo"
	"github.com/bitmark-inc/covid-map/metrics"
	"github.com/bitmark-inc/covid-map/schema"
	"github.com/bitmark-inc/covid-map/store"
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
	// .env is optional
	_ = godotenv.Load()

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

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("source.kind", "jhu")
	viper.SetDefault("source.timeout", 30*time.Second)
	viper.SetDefault("source.crawler", "jhu")
	viper.SetDefault("casemap.pin", "first-seen")
	viper.SetDefault("mongo.pool", 10)

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("casemap")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func connectMongo(ctx context.Context) *mongo.Client {
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(ctx)
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}
	return mongoClient
}

// caseSource returns the configured source and the mongo client when one is needed
func caseSource(ctx context.Context) (casemap.CaseSource, *mongo.Client) {
	url := viper.GetString("source.url")
	timeout := viper.GetDuration("source.timeout")

	switch kind := viper.GetString("source.kind"); kind {
	case "jhu":
		return jhu.New(url, timeout), nil
	case "cds":
		return cdc.NewCDS(viper.GetString("source.country"), url, timeout), nil
	case "mongo":
		client := connectMongo(ctx)
		mongoStore = store.NewMongoStore(client, viper.GetString("mongo.database"), viper.GetString("source.crawler"))
		return mongoStore, client
	default:
		log.Panicf("unknown case source: %s", kind)
	}
	return nil, nil
}

func coordinateFiller(mongoClient *mongo.Client) casemap.CoordinateFiller {
	resolvers := make([]geo.CoordinateResolver, 0, 2)
	if mongoClient != nil {
		resolvers = append(resolvers, geo.NewMongodbCoordinateResolver(mongoClient, viper.GetString("mongo.database")))
	}

	if key := viper.GetString("map.apikey"); key != "" {
		mapClient, err := maps.NewClient(maps.WithAPIKey(key))
		if err != nil {
			log.Panicf("init google map client with error: %s", err)
		}
		resolvers = append(resolvers, geo.NewGeocodingCoordinateResolver(mapClient))
	}

	return geo.NewFiller(geo.NewMultipleCoordinateResolver(resolvers...))
}

func main() {
	var configFile string

	ctx, cancel := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		log.Info("Cancelling background refresh")
		cancel()

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancelShutdown()

		if server != nil {
			log.Info("Shutdown map api server")
			if err := server.Shutdown(shutdownCtx); err != nil {
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

	scope, scopeCloser := metrics.New("casemap", viper.GetDuration("metrics.interval"), map[string]string{
		"version": viper.GetString("server.version"),
	})
	defer scopeCloser.Close()
	log.WithField("prefix", "init").Info("Initialized metrics")

	pin, err := casemap.ParsePinPolicy(viper.GetString("casemap.pin"))
	if err != nil {
		log.Panic(err)
	}

	source, mongoClient := caseSource(ctx)
	log.WithField("prefix", "init").Infof("Initialized %s case source", viper.GetString("source.kind"))

	if mongoClient != nil && viper.GetBool("mongo.index") {
		indexer := schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database"))
		indexer.IndexAll()
		_ = indexer.Close()
		log.WithField("prefix", "init").Info("Ensured mongo indexes")
	}

	opts := []casemap.Option{
		casemap.WithPinPolicy(pin),
		casemap.WithMetrics(scope),
	}
	if viper.GetBool("geocode.enabled") {
		opts = append(opts, casemap.WithCoordinateFiller(coordinateFiller(mongoClient)))
		log.WithField("prefix", "init").Info("Initialized coordinate filler")
	}
	controller := casemap.NewController(source, opts...)

	go controller.OnReady(ctx)
	go controller.Watch(ctx, viper.GetDuration("casemap.refresh"))

	// Init http server
	var pinger store.Pinger
	if mongoStore != nil {
		pinger = mongoStore
	}
	server = api.NewServer(controller, pinger, api.Options{
		Version:   viper.GetString("server.version"),
		MapAPIKey: viper.GetString("map.apikey"),
		AdminKey:  viper.GetString("server.apikey.admin"),
	})
	log.WithField("prefix", "init").Info("Initialized http server")

	if err := server.Run(":" + viper.GetString("server.port")); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
