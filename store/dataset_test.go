package store

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wirvsvirus/measures-dashboard/geo"
	"github.com/wirvsvirus/measures-dashboard/loader"
	"github.com/wirvsvirus/measures-dashboard/schema"
)

type DatasetTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
	store        MongoStore
}

func NewDatasetTestSuite(connURI, dbName string) *DatasetTestSuite {
	return &DatasetTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *DatasetTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)
	s.store = NewMongoStore(mongoClient, s.testDBName)
}

func (s *DatasetTestSuite) SetupTest() {
	// make sure every test runs with a clean environment
	if err := s.testDatabase.Drop(context.Background()); err != nil {
		s.T().Fatal(err)
	}
	indexer := schema.NewMongoDBIndexer(s.connURI, s.testDBName)
	if err := indexer.IndexCentroidCollection(); err != nil {
		s.T().Fatal(err)
	}
}

func (s *DatasetTestSuite) TearDownSuite() {
	_ = s.testDatabase.Drop(context.Background())
	s.store.Close()
}

func (s *DatasetTestSuite) TestNoDataset() {
	_, err := s.store.Version(context.Background())
	s.True(errors.Is(err, loader.ErrDataUnavailable))

	_, _, err = s.store.Load(context.Background(), "missing")
	s.True(errors.Is(err, loader.ErrDataUnavailable))
}

func (s *DatasetTestSuite) TestImportReplacesDataset() {
	ctx := context.Background()
	cases := []schema.CaseRecord{
		{Region: "Bayern", Subregion: "SK München", CountyID: "09162", ReportDate: time.Date(2020, 3, 2, 0, 0, 0, 0, time.UTC), NewInfected: 3},
		{Region: "Bayern", Subregion: "SK München", CountyID: "09162", ReportDate: time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC), NewInfected: 5},
	}
	actions := []schema.ActionRecord{
		{
			Location:   "Bayern",
			Label:      "Veranstaltungsverbot",
			StartDate:  time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC),
			Level:      schema.LevelState,
			Categories: []string{"Versammlungen"},
		},
	}

	first, err := s.store.Import(ctx, cases, actions)
	s.NoError(err)
	s.Equal(2, first.Cases)

	version, err := s.store.Version(ctx)
	s.NoError(err)
	s.Equal(first.Version, version)

	loadedCases, loadedActions, err := s.store.Load(ctx, version)
	s.NoError(err)
	s.Len(loadedCases, 2)
	s.Equal(time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC), loadedCases[0].ReportDate)
	s.Equal(int64(5), loadedCases[0].NewInfected)

	s.Len(loadedActions, 1)
	s.True(loadedActions[0].EndDate.IsZero())
	s.Equal([]string{"Versammlungen"}, loadedActions[0].Categories)

	second, err := s.store.Import(ctx, cases[:1], nil)
	s.NoError(err)
	s.NotEqual(first.Version, second.Version)

	count, err := s.testDatabase.Collection(schema.CaseCollection).CountDocuments(ctx, bson.M{})
	s.NoError(err)
	s.Equal(int64(1), count)

	_, _, err = s.store.Load(ctx, first.Version)
	s.True(errors.Is(err, loader.ErrVersionChanged))

	_, loadedActions, err = s.store.Load(ctx, second.Version)
	s.NoError(err)
	s.Empty(loadedActions)
}

func (s *DatasetTestSuite) TestCentroids() {
	ctx := context.Background()
	s.NoError(s.store.ImportCentroids(ctx, schema.LevelCounty, map[string]schema.Coordinate{
		"09162": {Latitude: 48.14, Longitude: 11.58},
	}))
	s.NoError(s.store.ImportCentroids(ctx, schema.LevelCounty, map[string]schema.Coordinate{
		"09162": {Latitude: 48.15, Longitude: 11.57},
	}))

	index, err := s.store.LoadCentroids(ctx, schema.LevelCounty)
	s.NoError(err)
	s.Equal(1, index.Len())
	c, err := index.CentroidOf("09162")
	s.NoError(err)
	s.Equal(48.15, c.Latitude)

	_, err = index.CentroidOf("Bayern")
	s.True(errors.Is(err, geo.ErrUnknownGeography))
}

func TestDatasetTestSuite(t *testing.T) {
	connURI := os.Getenv("DASHBOARD_TEST_MONGO")
	if connURI == "" {
		t.Skip("DASHBOARD_TEST_MONGO not set")
	}
	suite.Run(t, NewDatasetTestSuite(connURI, "test-db"))
}
