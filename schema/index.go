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
	panicIfError(m.IndexCaseCollection())
	panicIfError(m.IndexActionCollection())
	panicIfError(m.IndexCentroidCollection())
	panicIfError(m.IndexDatasetCollection())
}

func (m *MongoDBIndexer) IndexCaseCollection() error {
	if err := m.createIndex(CaseCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "dataset", Value: 1},
			{Key: "region", Value: 1},
			{Key: "report_date", Value: 1},
		},
	}); err != nil {
		return err
	}

	return m.createIndex(CaseCollection, mongo.IndexModel{
		Keys: bson.M{
			"county_id": 1,
		},
	})
}

func (m *MongoDBIndexer) IndexActionCollection() error {
	return m.createIndex(ActionCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "dataset", Value: 1},
			{Key: "location", Value: 1},
			{Key: "start_date", Value: 1},
		},
	})
}

func (m *MongoDBIndexer) IndexCentroidCollection() error {
	return m.createIndex(CentroidCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "level", Value: 1},
			{Key: "id", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
}

func (m *MongoDBIndexer) IndexDatasetCollection() error {
	return m.createIndex(DatasetCollection, mongo.IndexModel{
		Keys: bson.M{
			"imported_at": -1,
		},
	})
}
