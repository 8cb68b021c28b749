package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/wirvsvirus/measures-dashboard/loader"
	"github.com/wirvsvirus/measures-dashboard/schema"
	"github.com/wirvsvirus/measures-dashboard/store/mocks"
)

const casesCSV = `country,county,idlandkreis,timestamp,infected,deaths
Bayern,SK München,09162,2020-03-01,5,0
Bayern,SK München,09162,2020-03-03,3,1
`

const actionsCSV = `location,startdate_action,enddate_action,geographic_level,action,details_action,zielgruppe
Bayern,2020-03-01,2020-03-20,Bundesland,Veranstaltungsverbot,,"Versammlungen, Schulen"
`

type featureSource []schema.Feature

func (f featureSource) Features(ctx context.Context) ([]schema.Feature, error) {
	return f, nil
}

func TestDatasetCrawler(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	invalidated := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/cases.csv":
			fmt.Fprint(w, casesCSV)
		case "/actions.csv":
			fmt.Fprint(w, actionsCSV)
		case "/secret/datasets/invalidate":
			assert.Equal(t, "secret", r.Header.Get("Api-Token"))
			invalidated = true
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	importer := mocks.NewMockImporter(ctl)
	importer.EXPECT().Import(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, cases []schema.CaseRecord, actions []schema.ActionRecord) (*schema.Dataset, error) {
			assert.Len(t, cases, 2)
			assert.Len(t, actions, 1)
			assert.Equal(t, []string{"Versammlungen", "Schulen"}, actions[0].Categories)
			return &schema.Dataset{Version: "v1", Cases: len(cases), Actions: len(actions)}, nil
		}).Times(1)

	c := newDatasetCrawler(importer, ts.URL+"/cases.csv", ts.URL+"/actions.csv", loader.EncodingAuto, ts.Client())
	c.invalidator = invalidateServer(ts.Client(), ts.URL+"/", "secret")

	assert.NoError(t, c.Run(context.Background()))
	assert.True(t, invalidated)
}

func TestDatasetCrawlerDownloadFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	importer := mocks.NewMockImporter(ctl)
	importer.EXPECT().Import(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	c := newDatasetCrawler(importer, ts.URL+"/cases.csv", ts.URL+"/actions.csv", loader.EncodingAuto, ts.Client())
	assert.Error(t, c.Run(context.Background()))
}

func TestCentroidCrawler(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	source := featureSource{
		{
			Attributes: map[string]interface{}{"county": "SK München", "RS": "09162"},
			Geometry:   schema.Geometry{Rings: [][][]float64{{{11.0, 48.0}, {12.0, 48.4}, {11.5, 49.0}}}},
		},
	}

	centroids := mocks.NewMockCentroidStore(ctl)
	centroids.EXPECT().ImportCentroids(gomock.Any(), schema.LevelCounty, map[string]schema.Coordinate{
		"09162": {Latitude: 48.5, Longitude: 11.5},
	}).Return(nil).Times(1)

	c := newCentroidCrawler(centroids, schema.LevelCounty, "RS", source)
	assert.NoError(t, c.Run(context.Background()))
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", firstNonEmpty("", "b", "c"))
	assert.Equal(t, "", firstNonEmpty())
}
