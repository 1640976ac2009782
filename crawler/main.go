package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/covid-map/casemap"
	"github.com/bitmark-inc/covid-map/external/cdc"
	"github.com/bitmark-inc/covid-map/external/jhu"
	"github.com/bitmark-inc/covid-map/schema"
	"github.com/bitmark-inc/covid-map/store"
)

const (
	logPrefix      = "cron"
	defaultTimeout = 15 * time.Second
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

	viper.SetDefault("crawler.sources", []string{"jhu"})
	viper.SetDefault("source.timeout", 30*time.Second)

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("casemap")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func sourceByName(name string) (casemap.CaseSource, bool) {
	timeout := viper.GetDuration("source.timeout")
	switch name {
	case "jhu":
		return jhu.New(viper.GetString("crawler.jhu.url"), timeout), true
	case "cds":
		return cdc.NewCDS(viper.GetString("crawler.cds.country"), viper.GetString("crawler.cds.url"), timeout), true
	}
	return nil, false
}

func main() {
	var configFile string

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	ctx := context.Background()

	// initialise mongodb connections
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

	indexer := schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database"))
	indexer.IndexAll()
	_ = indexer.Close()

	failed := 0
	for _, name := range viper.GetStringSlice("crawler.sources") {
		source, ok := sourceByName(name)
		if !ok {
			log.WithFields(log.Fields{"prefix": logPrefix, "source": name}).Error("unknown source")
			failed++
			continue
		}

		mStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"), name)
		if err := newCountyCrawler(name, mStore, source).Run(ctx); err != nil {
			failed++
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	log.Info("Shutting down mongo store")
	_ = mongoClient.Disconnect(shutdownCtx)

	if failed > 0 {
		os.Exit(1)
	}
}
