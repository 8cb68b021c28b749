package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wirvsvirus/measures-dashboard/loader"
	"github.com/wirvsvirus/measures-dashboard/schema"
)

var (
	ErrNoDataset     = fmt.Errorf("no data-set")
	ErrDatasetFetch  = fmt.Errorf("fetch data-set fail")
	ErrDatasetDecode = fmt.Errorf("decode data-set fail")
)

// RecordSource - provide the case and action records of the current data-set.
// Load fails with loader.ErrVersionChanged when version is no longer current.
type RecordSource interface {
	Version(ctx context.Context) (string, error)
	Load(ctx context.Context, version string) ([]schema.CaseRecord, []schema.ActionRecord, error)
}

// Importer - replace the stored data-set
type Importer interface {
	Import(ctx context.Context, cases []schema.CaseRecord, actions []schema.ActionRecord) (*schema.Dataset, error)
}

// Import stores cases and actions as a new data-set and removes the records
// of every older one. Readers keep seeing the previous data-set until its
// dataset document is replaced.
func (m *mongoDB) Import(ctx context.Context, cases []schema.CaseRecord, actions []schema.ActionRecord) (*schema.Dataset, error) {
	dataset := schema.Dataset{
		Version:    uuid.New().String(),
		ImportedAt: time.Now().UTC(),
		Cases:      len(cases),
		Actions:    len(actions),
	}

	caseDocs := make([]interface{}, len(cases))
	for i, c := range cases {
		c.Dataset = dataset.Version
		caseDocs[i] = c
	}
	if err := m.insert(ctx, schema.CaseCollection, caseDocs); err != nil {
		return nil, err
	}

	actionDocs := make([]interface{}, len(actions))
	for i, a := range actions {
		a.Dataset = dataset.Version
		actionDocs[i] = a
	}
	if err := m.insert(ctx, schema.ActionCollection, actionDocs); err != nil {
		return nil, err
	}

	if _, err := m.collection(schema.DatasetCollection).InsertOne(ctx, dataset); err != nil {
		return nil, err
	}

	stale := bson.M{"dataset": bson.M{"$ne": dataset.Version}}
	for _, name := range []string{schema.CaseCollection, schema.ActionCollection} {
		res, err := m.collection(name).DeleteMany(ctx, stale)
		if err != nil {
			log.WithField("prefix", mongoLogPrefix).Warnf("delete stale %s with error: %s", name, err)
			continue
		}
		log.WithFields(log.Fields{"prefix": mongoLogPrefix, "collection": name, "records": res.DeletedCount}).Debug("stale records deleted")
	}
	if _, err := m.collection(schema.DatasetCollection).DeleteMany(ctx, bson.M{"version": bson.M{"$ne": dataset.Version}}); err != nil {
		log.WithField("prefix", mongoLogPrefix).Warnf("delete stale data-sets with error: %s", err)
	}

	log.WithFields(log.Fields{
		"prefix":  mongoLogPrefix,
		"version": dataset.Version,
		"cases":   dataset.Cases,
		"actions": dataset.Actions,
	}).Info("data-set imported")

	return &dataset, nil
}

func (m *mongoDB) insert(ctx context.Context, collection string, docs []interface{}) error {
	if len(docs) == 0 {
		return nil
	}
	opts := options.InsertMany().SetOrdered(false)
	res, err := m.collection(collection).InsertMany(ctx, docs, opts)
	if err != nil {
		log.WithFields(log.Fields{"prefix": mongoLogPrefix, "collection": collection, "error": err}).Error("insert records")
		return err
	}
	log.WithFields(log.Fields{"prefix": mongoLogPrefix, "collection": collection, "records": len(res.InsertedIDs)}).Debug("records inserted")
	return nil
}

// Version returns the version of the latest imported data-set.
func (m mongoDB) Version(ctx context.Context) (string, error) {
	var dataset schema.Dataset
	opts := options.FindOne().SetSort(bson.M{"imported_at": -1})
	if err := m.collection(schema.DatasetCollection).FindOne(ctx, bson.M{}, opts).Decode(&dataset); err != nil {
		if err == mongo.ErrNoDocuments {
			return "", fmt.Errorf("%w: %s", loader.ErrDataUnavailable, ErrNoDataset)
		}
		log.WithField("prefix", mongoLogPrefix).Errorf("%v: %s", ErrDatasetFetch, err)
		return "", fmt.Errorf("%w: %s", loader.ErrDataUnavailable, err)
	}
	return dataset.Version, nil
}

// Load reads the records of the given data-set version. The version is
// checked again afterwards, since an import deletes older records.
func (m mongoDB) Load(ctx context.Context, version string) ([]schema.CaseRecord, []schema.ActionRecord, error) {
	cases, err := m.loadCases(ctx, version)
	if err != nil {
		return nil, nil, err
	}
	actions, err := m.loadActions(ctx, version)
	if err != nil {
		return nil, nil, err
	}

	current, err := m.Version(ctx)
	if err != nil {
		return nil, nil, err
	}
	if current != version {
		return nil, nil, fmt.Errorf("%w: %s replaced by %s", loader.ErrVersionChanged, version, current)
	}
	return cases, actions, nil
}

func (m mongoDB) loadCases(ctx context.Context, version string) ([]schema.CaseRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "report_date", Value: 1}})
	cur, err := m.collection(schema.CaseCollection).Find(ctx, bson.M{"dataset": version}, opts)
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("%v: %s", ErrDatasetFetch, err)
		return nil, fmt.Errorf("%w: %s", loader.ErrDataUnavailable, err)
	}
	defer cur.Close(ctx)

	records := []schema.CaseRecord{}
	for cur.Next(ctx) {
		var r schema.CaseRecord
		if err := cur.Decode(&r); err != nil {
			log.WithField("prefix", mongoLogPrefix).Errorf("case decode with error: %s", err)
			return nil, ErrDatasetDecode
		}
		r.ReportDate = r.ReportDate.UTC()
		records = append(records, r)
	}
	return records, cur.Err()
}

func (m mongoDB) loadActions(ctx context.Context, version string) ([]schema.ActionRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "start_date", Value: 1}})
	cur, err := m.collection(schema.ActionCollection).Find(ctx, bson.M{"dataset": version}, opts)
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("%v: %s", ErrDatasetFetch, err)
		return nil, fmt.Errorf("%w: %s", loader.ErrDataUnavailable, err)
	}
	defer cur.Close(ctx)

	records := []schema.ActionRecord{}
	for cur.Next(ctx) {
		var r schema.ActionRecord
		if err := cur.Decode(&r); err != nil {
			log.WithField("prefix", mongoLogPrefix).Errorf("action decode with error: %s", err)
			return nil, ErrDatasetDecode
		}
		r.StartDate = r.StartDate.UTC()
		r.EndDate = r.EndDate.UTC()
		r.ReportTime = r.ReportTime.UTC()
		records = append(records, r)
	}
	return records, cur.Err()
}
