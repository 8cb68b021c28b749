package main

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/wirvsvirus/measures-dashboard/loader"
	"github.com/wirvsvirus/measures-dashboard/store"
)

type datasetCrawler struct {
	importer    store.Importer
	casesURL    string
	actionsURL  string
	encoding    loader.Encoding
	httpClient  *http.Client
	invalidator func(ctx context.Context) error
}

func (c datasetCrawler) Run(ctx context.Context) error {
	dir, err := ioutil.TempDir("", "dataset")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	casesPath, err := c.fetch(ctx, c.casesURL, filepath.Join(dir, "cases.csv"))
	if err != nil {
		return err
	}
	actionsPath, err := c.fetch(ctx, c.actionsURL, filepath.Join(dir, "actions.csv"))
	if err != nil {
		return err
	}

	l := loader.NewFileLoader(casesPath, actionsPath, c.encoding)
	cases, err := l.LoadCases(ctx)
	if err != nil {
		return err
	}
	actions, err := l.LoadActions(ctx)
	if err != nil {
		return err
	}

	dataset, err := c.importer.Import(ctx, cases, actions)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"version": dataset.Version,
		"cases":   dataset.Cases,
		"actions": dataset.Actions,
	}).Info("data-set imported")

	if c.invalidator != nil {
		if err := c.invalidator(ctx); err != nil {
			log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Warn("invalidate server snapshot")
		}
	}
	return nil
}

// fetch downloads source into dest when it is an http url. Local paths are
// returned unchanged.
func (c datasetCrawler) fetch(ctx context.Context, source, dest string) (string, error) {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		return source, nil
	}

	req, err := http.NewRequest(http.MethodGet, source, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.httpClient.Do(req.WithContext(ctx))
	if err != nil {
		log.WithFields(log.Fields{"prefix": logPrefix, "url": source, "error": err}).Error("download data-set")
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download %s: status %d", source, resp.StatusCode)
	}

	f, err := os.Create(dest)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return "", err
	}
	return dest, nil
}

// newDatasetCrawler - new job importing the case and action tables
func newDatasetCrawler(importer store.Importer, casesURL, actionsURL string, encoding loader.Encoding, httpClient *http.Client) *datasetCrawler {
	return &datasetCrawler{
		importer:   importer,
		casesURL:   casesURL,
		actionsURL: actionsURL,
		encoding:   encoding,
		httpClient: httpClient,
	}
}

// invalidateServer asks the dashboard server to drop its cached snapshot.
func invalidateServer(httpClient *http.Client, serverURL, apikey string) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		req, err := http.NewRequest(http.MethodPost, strings.TrimRight(serverURL, "/")+"/secret/datasets/invalidate", nil)
		if err != nil {
			return err
		}
		req.Header.Set("Api-Token", apikey)

		resp, err := httpClient.Do(req.WithContext(ctx))
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("invalidate: status %d", resp.StatusCode)
		}
		return nil
	}
}
