package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexCountyCaseCollection())
}

// IndexCountyCaseCollection - one record per source, name and snapshot, newest snapshot first
func (m *MongoDBIndexer) IndexCountyCaseCollection() error {
	if err := m.createIndex(CountyCaseCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "source", Value: 1},
			{Key: "name", Value: 1},
			{Key: "report_ts", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	return m.createIndex(CountyCaseCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "source", Value: 1},
			{Key: "level", Value: 1},
			{Key: "report_ts", Value: -1},
		},
	})
}

// Close - disconnect the indexer client
func (m *MongoDBIndexer) Close() error {
	return m.Client.Disconnect(m.ctx)
}
